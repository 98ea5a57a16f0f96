package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"pitchdeck/internal/deck"
	"pitchdeck/internal/eventbus"
	"pitchdeck/internal/icons"
	"pitchdeck/internal/navigation"
	"pitchdeck/internal/pagination"
	"pitchdeck/internal/ui/views"
)

// startSession creates the navigation state machine for the current deck
// and registers the presenter observers in stage order.
func (m *Model) startSession(start int) error {
	for _, unsub := range m.unsubs {
		unsub()
	}
	m.unsubs = nil

	nav, err := navigation.NewService(m.deck.Len(), m.logger)
	if err != nil {
		return err
	}
	m.nav = nav
	m.unsubs = append(m.unsubs,
		nav.Subscribe(navigation.StageViewModel, m.onViewModel),
		nav.Subscribe(navigation.StageRender, m.onRender),
		nav.Subscribe(navigation.StageHook, m.onHook),
	)

	start = min(max(start, 1), nav.Total())
	if !nav.Goto(start) {
		// Already on the first slide: show it with its entrance animation
		m.recomputeWindow()
		m.renderCurrent()
		m.restartAnimation()
		m.expandIcons()
		m.pending = append(m.pending, m.progress.SetPercent(nav.Progress()))
	}
	return nil
}

func (m *Model) onViewModel(navigation.SlideChangedEvent) {
	m.recomputeWindow()
}

func (m *Model) onRender(navigation.SlideChangedEvent) {
	m.renderCurrent()
	m.restartAnimation()
}

func (m *Model) onHook(e navigation.SlideChangedEvent) {
	m.expandIcons()
	m.pending = append(m.pending, m.progress.SetPercent(m.nav.Progress()))
	if cmd := m.preload(e.NewIndex + 1); cmd != nil {
		m.pending = append(m.pending, cmd)
	}
	m.publish(eventbus.SlideChangedEvent{
		From:  m.deck.Ref(e.OldIndex),
		To:    m.deck.Ref(e.NewIndex),
		Total: e.Total,
	})
}

func (m *Model) recomputeWindow() {
	m.pager = pagination.NewView(m.nav.State(), m.constrained())
}

// renderCurrent renders the active slide. A failed render keeps the
// previous body.
func (m *Model) renderCurrent() {
	slide, ok := m.deck.Slide(m.nav.Current())
	if !ok {
		return
	}
	out, err := m.slides.Render(slide)
	if err != nil {
		m.logger.Error("failed to render slide", zap.Int("slide", slide.Index), zap.Error(err))
		return
	}
	m.body = out
}

func (m *Model) expandIcons() {
	m.body = icons.Expand(m.body)
}

// preload warms the render cache for slide i in the background
func (m *Model) preload(i int) tea.Cmd {
	slide, ok := m.deck.Slide(i)
	if !ok || m.slides.Cached(i) {
		return nil
	}
	r := m.slides
	gen := r.Generation()
	return func() tea.Msg {
		r.Preload(slide, gen)
		return preloadedMsg{index: slide.Index}
	}
}

// restartAnimation replays the staggered entrance of the active slide.
// Ticks of earlier generations are discarded.
func (m *Model) restartAnimation() {
	m.animGen++
	m.blocks = views.CountBlocks(m.body)
	if !m.cfg.UI.Animations || m.blocks <= 1 {
		m.revealed = -1
		return
	}
	m.revealed = 1
	m.pending = append(m.pending, m.animTick())
}

func (m *Model) animTick() tea.Cmd {
	gen := m.animGen
	delay := time.Duration(m.cfg.UI.StaggerMs) * time.Millisecond
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return animTickMsg{gen: gen}
	})
}

func (m *Model) advanceAnimation(msg animTickMsg) tea.Cmd {
	if msg.gen != m.animGen || m.revealed < 0 {
		return nil
	}
	m.revealed++
	if m.revealed >= m.blocks {
		m.revealed = -1
		return nil
	}
	return m.animTick()
}

func (m *Model) reloadDeck() tea.Cmd {
	if m.reload == nil {
		return m.setStatus("reload unavailable", true)
	}
	reload := m.reload
	return func() tea.Msg {
		d, err := reload()
		return deckReloadedMsg{deck: d, err: err}
	}
}

// applyReload swaps in a reloaded deck. With an unchanged slide count the
// content is replaced in place and the active slide kept without a
// transition. Otherwise a new session starts, clamped to the new deck.
func (m *Model) applyReload(msg deckReloadedMsg) tea.Cmd {
	if msg.err != nil {
		m.logger.Error("failed to reload deck", zap.Error(msg.err))
		m.publish(eventbus.ErrorEvent{Message: "reload failed", Err: msg.err})
		return m.setStatus(fmt.Sprintf("reload failed: %v", msg.err), true)
	}

	previous := m.nav.Current()
	sameSize := msg.deck.Len() == m.nav.Total()
	m.deck = msg.deck
	m.slides.Purge()

	if sameSize {
		m.renderCurrent()
		m.expandIcons()
		m.blocks = views.CountBlocks(m.body)
	} else {
		if err := m.startSession(previous); err != nil {
			m.logger.Error("failed to restart session", zap.Error(err))
			return m.setStatus(err.Error(), true)
		}
		m.cursor = min(m.cursor, m.nav.Total())
	}

	m.logger.Info("deck reloaded", zap.Int("slides", m.deck.Len()), zap.Bool("new_session", !sameSize))
	m.publish(eventbus.DeckLoadedEvent{Deck: m.deck.Info(), Reloaded: true})
	return m.setStatus(fmt.Sprintf("reloaded %d slides", m.deck.Len()), false)
}

// Deck returns the deck being presented
func (m *Model) Deck() *deck.Deck {
	return m.deck
}
