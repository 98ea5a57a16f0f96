package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"pitchdeck/internal/ui/input"
	inputtypes "pitchdeck/internal/ui/input/types"
	"pitchdeck/internal/ui/views"
)

type dragStart struct {
	x, y int
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	wake := m.wake()

	switch {
	case msg.Button == tea.MouseButtonWheelDown && msg.Action == tea.MouseActionPress:
		return tea.Batch(wake, m.wheel.Push(1))
	case msg.Button == tea.MouseButtonWheelUp && msg.Action == tea.MouseActionPress:
		return tea.Batch(wake, m.wheel.Push(-1))
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.drag = &dragStart{x: msg.X, y: msg.Y}
	case msg.Action == tea.MouseActionRelease && m.drag != nil:
		start := *m.drag
		m.drag = nil
		return tea.Batch(wake, m.handleRelease(start, msg.X, msg.Y))
	}
	return wake
}

// handleRelease finishes a press: a drag is a swipe, otherwise a click
func (m *Model) handleRelease(start dragStart, x, y int) tea.Cmd {
	if m.showHelp {
		m.showHelp = false
		return nil
	}
	mode := m.inputHandler.CurrentMode()

	if x != start.x || y != start.y {
		if mode != inputtypes.ModeNormal {
			return nil
		}
		dx := float64(start.x-x) * m.cfg.Input.CellWidthPx
		dy := float64(start.y-y) * m.cfg.Input.CellHeightPx
		if dir, ok := m.swipe.Detect(dx, dy); ok {
			m.nav.Navigate(dir)
		}
		return nil
	}
	return m.handleClick(x, y)
}

func (m *Model) handleClick(x, y int) tea.Cmd {
	layout := views.NewLayout(m.width, m.height, m.chromeShown())

	if layout.Chrome && y == layout.FooterRow {
		hit := m.view.Footer().HitTest(m.pager, m.width, x)
		switch hit.Kind {
		case views.HitPrevious:
			m.nav.Previous()
		case views.HitNext:
			m.nav.Next()
		case views.HitMarker:
			m.nav.Goto(hit.Index)
		}
		return nil
	}
	if !layout.InBody(y) {
		return nil
	}

	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeOverview:
		idx, ok := m.overviewLayout().CardAt(x, y-layout.BodyTop)
		if !ok {
			return nil
		}
		m.inputHandler.Overview().Select(idx, m)
		var cmds []tea.Cmd
		for _, action := range m.inputHandler.ChangeMode(inputtypes.ModeNormal, m) {
			cmds = append(cmds, m.processAction(action))
		}
		cmds = append(cmds,
			m.processAction(inputtypes.ChangeModeAction{Mode: inputtypes.ModeNormal}),
			m.processAction(inputtypes.GotoAction{Index: idx}),
		)
		return tea.Batch(cmds...)

	case inputtypes.ModeNormal:
		if dir, ok := input.ClickZone(x, m.width); ok {
			m.nav.Navigate(dir)
		}
	}
	return nil
}
