package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pitchdeck/internal/navigation"
	"pitchdeck/internal/ui/input/types"
)

// NormalKeys is the subset of bindings the normal mode reacts to
type NormalKeys struct {
	Next, Previous, First, Last                key.Binding
	Jump, Overview, Fullscreen, Presentation key.Binding
	Reload, Help, Quit                         key.Binding
}

type NormalMode struct {
	keys NormalKeys
}

func NewNormalMode(keys NormalKeys) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		return []types.Action{types.NavigateAction{Direction: navigation.DirectionNext}}, true
	case key.Matches(msg, m.keys.Previous):
		return []types.Action{types.NavigateAction{Direction: navigation.DirectionPrevious}}, true
	case key.Matches(msg, m.keys.First):
		return []types.Action{types.NavigateAction{Direction: navigation.DirectionFirst}}, true
	case key.Matches(msg, m.keys.Last):
		return []types.Action{types.NavigateAction{Direction: navigation.DirectionLast}}, true
	case key.Matches(msg, m.keys.Jump):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeJump}}, true
	case key.Matches(msg, m.keys.Overview):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeOverview}}, true
	case key.Matches(msg, m.keys.Fullscreen):
		return []types.Action{types.ToggleFullscreenAction{}}, true
	case key.Matches(msg, m.keys.Presentation):
		return []types.Action{types.TogglePresentationAction{}}, true
	case key.Matches(msg, m.keys.Reload):
		return []types.Action{types.ReloadAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	}
	return nil, false
}
