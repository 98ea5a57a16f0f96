package types

import "pitchdeck/internal/navigation"

// Navigation actions
type NavigateAction struct {
	Direction navigation.Direction
}

func (a NavigateAction) Type() string { return "navigate" }

// GotoAction jumps to a slide; out-of-range indexes are ignored downstream
type GotoAction struct {
	Index int
}

func (a GotoAction) Type() string { return "goto" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// OverviewCursorAction moves the highlighted card of the overview grid
type OverviewCursorAction struct {
	Index int
}

func (a OverviewCursorAction) Type() string { return "overview_cursor" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitJumpAction struct {
	Query string
}

func (a SubmitJumpAction) Type() string { return "submit_jump" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Presentation actions
type ToggleFullscreenAction struct{}

func (a ToggleFullscreenAction) Type() string { return "toggle_fullscreen" }

type TogglePresentationAction struct{}

func (a TogglePresentationAction) Type() string { return "toggle_presentation" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
