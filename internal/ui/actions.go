package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"pitchdeck/internal/eventbus"
	inputtypes "pitchdeck/internal/ui/input/types"
)

// processAction executes an input action. Navigation goes through the
// state machine only; the observers update the display.
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.nav.Navigate(a.Direction)

	case inputtypes.GotoAction:
		m.nav.Goto(a.Index)

	case inputtypes.ChangeModeAction:
		switch a.Mode {
		case inputtypes.ModeOverview:
			m.inOverview = true
		case inputtypes.ModeNormal:
			if m.inOverview {
				// Leaving the grid shows the slide again
				m.inOverview = false
				m.restartAnimation()
			}
		}

	case inputtypes.OverviewCursorAction:
		m.cursor = a.Index

	case inputtypes.SubmitJumpAction:
		if idx, ok := m.deck.Find(a.Query); ok {
			m.nav.Goto(idx)
			return nil
		}
		if a.Query == "" {
			return nil
		}
		return m.setStatus(fmt.Sprintf("no slide matches %q", a.Query), true)

	case inputtypes.UpdateTextAction, inputtypes.CancelTextAction:
		// The text input is rendered straight from the handler

	case inputtypes.ToggleFullscreenAction:
		return m.toggleFullscreen()

	case inputtypes.TogglePresentationAction:
		m.presentation = !m.presentation
		m.chromeVisible = true
		if m.presentation {
			return m.idleTimer()
		}

	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp

	case inputtypes.ReloadAction:
		return m.reloadDeck()

	case inputtypes.QuitAction:
		m.logger.Info("quitting", zap.Bool("force", a.Force), zap.Int("slide", m.nav.Current()))
		return tea.Quit
	}
	return nil
}

// toggleFullscreen switches the alternate screen. Refusal is reported and
// never affects navigation.
func (m *Model) toggleFullscreen() tea.Cmd {
	if m.altScreen {
		m.altScreen = false
		return tea.ExitAltScreen
	}
	if err := m.fullscreen.Available(); err != nil {
		m.logger.Warn("fullscreen refused", zap.Error(err))
		m.publish(eventbus.ErrorEvent{Message: "fullscreen unavailable", Err: err})
		return m.setStatus(err.Error(), true)
	}
	m.altScreen = true
	return tea.EnterAltScreen
}
