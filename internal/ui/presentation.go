package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// idleTimer schedules hiding the chrome after the configured idle period
func (m *Model) idleTimer() tea.Cmd {
	m.idleSeq++
	seq := m.idleSeq
	delay := time.Duration(m.cfg.UI.IdleHideMs) * time.Millisecond
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return idleMsg{seq: seq}
	})
}

// wake shows the chrome again after input in presentation mode
func (m *Model) wake() tea.Cmd {
	if !m.presentation {
		return nil
	}
	m.chromeVisible = true
	return m.idleTimer()
}

// Presenting reports whether presentation mode is on and whether its
// chrome is currently visible
func (m *Model) Presenting() (on, chrome bool) {
	return m.presentation, m.chromeShown()
}

// AltScreen reports whether the alternate screen is active
func (m *Model) AltScreen() bool {
	return m.altScreen
}
