// Package pagination renders the page markers of a presentation. The
// renderers are interchangeable skins over the same navigation window.
package pagination

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"pitchdeck/internal/navigation"
)

// ErrUnknownStyle is returned for an unsupported pagination style name
var ErrUnknownStyle = errors.New("unknown pagination style")

const ellipsis = "…"

// View is everything a renderer needs to draw the markers
type View struct {
	Current int
	Total   int
	Window  navigation.Window
}

// NewView derives the marker view for the given navigation state
func NewView(state navigation.State, constrained bool) View {
	return View{
		Current: state.Current,
		Total:   state.Total,
		Window:  navigation.ComputeWindow(state.Current, state.Total, constrained),
	}
}

// Renderer draws pagination markers and maps columns back to slides
type Renderer interface {
	Name() string
	Render(v View) string
	// MarkerAt returns the slide whose marker covers column x of the
	// string returned by Render.
	MarkerAt(v View, x int) (int, bool)
}

// Styles contains the styles shared by all renderers
type Styles struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
	Ellipsis lipgloss.Style
}

// DefaultStyles returns the default marker styles
func DefaultStyles() Styles {
	return Styles{
		Active:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Inactive: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Ellipsis: lipgloss.NewStyle().Faint(true),
	}
}

// New returns the renderer registered under name
func New(name string, styles Styles) (Renderer, error) {
	switch name {
	case "counter":
		return &Counter{styles: styles}, nil
	case "numbered":
		return &Numbered{styles: styles}, nil
	case "dots":
		return NewDots(styles), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
}

// Names lists the available renderer names
func Names() []string {
	return []string{"counter", "numbered", "dots"}
}
