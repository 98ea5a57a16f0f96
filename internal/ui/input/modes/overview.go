package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"pitchdeck/internal/ui/input/types"
)

// OverviewMode moves a card cursor over the slide grid. The cursor is
// local to the mode; the active slide only changes when a card is opened.
type OverviewMode struct {
	cursor int
}

func NewOverviewMode() *OverviewMode {
	return &OverviewMode{cursor: 1}
}

func (m *OverviewMode) Name() string {
	return "overview"
}

// Cursor returns the highlighted card
func (m *OverviewMode) Cursor() int {
	return m.cursor
}

func (m *OverviewMode) Enter(ctx types.Context) []types.Action {
	m.cursor = ctx.CurrentIndex()
	return []types.Action{types.OverviewCursorAction{Index: m.cursor}}
}

func (m *OverviewMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// Select highlights a card, e.g. after a mouse click
func (m *OverviewMode) Select(index int, ctx types.Context) {
	if index >= 1 && index <= ctx.TotalSlides() {
		m.cursor = index
	}
}

func (m *OverviewMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	cols := max(1, ctx.OverviewColumns())
	total := ctx.TotalSlides()

	target := m.cursor
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "o", "O", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "enter", " ":
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeNormal},
			types.GotoAction{Index: m.cursor},
		}, true
	case "left", "h":
		target--
	case "right", "l", "tab":
		target++
	case "up", "k":
		target -= cols
	case "down", "j":
		target += cols
	case "home", "g":
		target = 1
	case "end", "G":
		target = total
	default:
		return nil, false
	}

	if target >= 1 && target <= total {
		m.cursor = target
	}
	return []types.Action{types.OverviewCursorAction{Index: m.cursor}}, true
}
