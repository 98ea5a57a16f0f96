// Package ui is the Bubble Tea presenter composing navigation, rendering
// and input.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"pitchdeck/internal/config"
	"pitchdeck/internal/deck"
	"pitchdeck/internal/eventbus"
	"pitchdeck/internal/navigation"
	"pitchdeck/internal/pagination"
	"pitchdeck/internal/render"
	"pitchdeck/internal/ui/input"
	inputtypes "pitchdeck/internal/ui/input/types"
	"pitchdeck/internal/ui/views"
)

const statusTimeout = 4 * time.Second

// Options configures a presenter model
type Options struct {
	Config     *config.Config
	Deck       *deck.Deck
	Renderer   *render.Renderer
	Pagination pagination.Renderer
	Bus        eventbus.EventBus
	Logger     *zap.Logger
	Fullscreen Fullscreen
	// Reload reads the deck again from its source; nil disables reloading
	Reload     func() (*deck.Deck, error)
	StartSlide int
}

// Model represents the UI state
type Model struct {
	cfg        *config.Config
	deck       *deck.Deck
	nav        *navigation.Service
	unsubs     []func()
	slides     *render.Renderer
	view       *views.Renderer
	bus        eventbus.EventBus
	logger     *zap.Logger
	fullscreen Fullscreen
	reload     func() (*deck.Deck, error)

	width  int
	height int

	inputHandler *input.Handler
	help         help.Model
	progress     progress.Model

	// Derived pagination view, recomputed on transitions and resizes
	pager pagination.View

	// Active slide output with icons expanded, and its reveal state
	body     string
	blocks   int
	revealed int
	animGen  uint64

	presentation  bool
	chromeVisible bool
	idleSeq       uint64
	altScreen     bool
	showHelp      bool
	inOverview    bool
	cursor        int

	statusMessage string
	statusError   bool
	statusSeq     uint64

	swipe input.SwipeDetector
	wheel *input.WheelCoalescer
	drag  *dragStart

	// Commands produced by observers, flushed at the end of Update
	pending []tea.Cmd
}

// NewModel creates a presenter for a non-empty deck
func NewModel(opts Options) (*Model, error) {
	if opts.Deck == nil || opts.Deck.Len() == 0 {
		return nil, deck.ErrNoSlides
	}
	if opts.Renderer == nil {
		return nil, fmt.Errorf("ui: renderer is required")
	}
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Pagination == nil {
		p, err := pagination.New(opts.Config.UI.Pagination, pagination.DefaultStyles())
		if err != nil {
			return nil, err
		}
		opts.Pagination = p
	}
	if opts.Fullscreen == nil {
		opts.Fullscreen = TerminalFullscreen{}
	}

	h := help.New()
	h.ShowAll = true

	m := &Model{
		cfg:          opts.Config,
		deck:         opts.Deck,
		slides:       opts.Renderer,
		view:         views.NewRenderer(opts.Pagination),
		bus:          opts.Bus,
		logger:       opts.Logger.Named("ui"),
		fullscreen:   opts.Fullscreen,
		reload:       opts.Reload,
		inputHandler: input.New(input.DefaultKeyMap()),
		help:         h,
		progress:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		revealed:     -1,
		cursor:       1,
		swipe:        input.SwipeDetector{Threshold: opts.Config.Input.SwipeThreshold},
		wheel: &input.WheelCoalescer{
			Delay: time.Duration(opts.Config.Input.WheelDebounceMs) * time.Millisecond,
		},
	}
	m.chromeVisible = true

	if err := m.startSession(opts.StartSlide); err != nil {
		return nil, err
	}
	m.publish(eventbus.DeckLoadedEvent{Deck: m.deck.Info()})
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	cmds := m.flush()
	if m.cfg.UI.StartFullscreen {
		cmds = append(cmds, m.toggleFullscreen())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		cmds = append(cmds, m.wake())
		if m.showHelp && msg.String() == "esc" {
			m.showHelp = false
			break
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	case input.WheelSettledMsg:
		if dir, ok := m.wheel.Settle(msg); ok && m.inputHandler.CurrentMode() == inputtypes.ModeNormal {
			m.nav.Navigate(dir)
		}

	case animTickMsg:
		cmds = append(cmds, m.advanceAnimation(msg))

	case idleMsg:
		if msg.seq == m.idleSeq && m.presentation {
			m.chromeVisible = false
		}

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.statusMessage = ""
			m.statusError = false
		}

	case preloadedMsg:
		m.logger.Debug("slide preloaded", zap.Int("slide", msg.index))

	case progress.FrameMsg:
		pm, cmd := m.progress.Update(msg)
		m.progress = pm.(progress.Model)
		cmds = append(cmds, cmd)

	case deckReloadedMsg:
		cmds = append(cmds, m.applyReload(msg))

	case EventMsg:
		cmds = append(cmds, m.handleEvent(msg.Event))

	default:
		// Cursor blink and similar text input messages
		cmds = append(cmds, m.inputHandler.Update(msg))
	}

	cmds = append(cmds, m.flush()...)
	return m, tea.Batch(cmds...)
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.DeckChangedEvent:
		m.logger.Info("deck changed on disk", zap.String("path", e.Path))
		return m.reloadDeck()
	case eventbus.ErrorEvent:
		return m.setStatus(e.Message, true)
	}
	return nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	layout := views.NewLayout(m.width, m.height, m.chromeShown())
	state := views.ViewState{
		Layout:        layout,
		Progress:      m.progress.View(),
		Body:          views.RevealBlocks(m.body, m.revealed),
		Pagination:    m.pager,
		DeckTitle:     m.deck.Title,
		StatusMessage: m.statusMessage,
		StatusError:   m.statusError,
		ShowHelp:      m.showHelp,
	}
	if s, ok := m.deck.Slide(m.nav.Current()); ok {
		state.SlideTitle = s.Title
	}
	if m.inOverview {
		state.Overview = true
		state.OverviewLayout = m.overviewLayout()
		state.Titles = m.deck.Titles()
		state.Cursor = m.cursor
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		state.Prompt = "Go to: "
		state.InputView = ti.View()
	}
	if m.showHelp {
		state.HelpView = m.help.View(m.inputHandler.Keys())
	}
	return m.view.Render(state)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.progress.Width = max(1, width)

	wrap := width
	if m.cfg.UI.WordWrap > 0 {
		wrap = min(width, m.cfg.UI.WordWrap)
	}
	if err := m.slides.SetWidth(wrap); err != nil {
		m.logger.Error("failed to resize renderer", zap.Error(err))
	}
	m.recomputeWindow()
	m.renderCurrent()
	m.expandIcons()
	if m.revealed >= 0 {
		m.blocks = views.CountBlocks(m.body)
	}
}

// constrained reports whether the terminal is narrow enough to window the
// pagination markers
func (m *Model) constrained() bool {
	return m.width > 0 && m.width <= m.cfg.UI.ConstrainedWidth
}

func (m *Model) chromeShown() bool {
	return !m.presentation || m.chromeVisible
}

func (m *Model) overviewLayout() views.OverviewLayout {
	layout := views.NewLayout(m.width, m.height, m.chromeShown())
	return views.NewOverviewLayout(m.nav.Total(), m.cfg.UI.OverviewColumns, m.width, layout.BodyHeight, m.cursor)
}

func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.statusMessage = msg
	m.statusError = isErr
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

func (m *Model) flush() []tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return cmds
}

// CurrentIndex implements the input context
func (m *Model) CurrentIndex() int {
	return m.nav.Current()
}

// TotalSlides implements the input context
func (m *Model) TotalSlides() int {
	return m.nav.Total()
}

// OverviewColumns implements the input context. It matches the grid as
// laid out, which drops columns on narrow terminals.
func (m *Model) OverviewColumns() int {
	if m.width == 0 {
		return max(1, m.cfg.UI.OverviewColumns)
	}
	return m.overviewLayout().Columns
}

// Navigation exposes the session state machine
func (m *Model) Navigation() *navigation.Service {
	return m.nav
}

// Mode returns the active input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}
