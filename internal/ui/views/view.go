package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"pitchdeck/internal/pagination"
)

// Layout splits the terminal into the progress row, the slide body, the
// status line and the footer. Without chrome the body fills the screen.
type Layout struct {
	Width      int
	Height     int
	Chrome     bool
	BodyTop    int
	BodyHeight int
	StatusRow  int
	FooterRow  int
}

// NewLayout computes the layout for a terminal of width x height
func NewLayout(width, height int, chrome bool) Layout {
	l := Layout{Width: width, Height: height, Chrome: chrome}
	if !chrome || height < 4 {
		l.Chrome = false
		l.BodyHeight = max(0, height)
		l.StatusRow, l.FooterRow = -1, -1
		return l
	}
	l.BodyTop = 1
	l.BodyHeight = height - 3
	l.StatusRow = height - 2
	l.FooterRow = height - 1
	return l
}

// InBody reports whether terminal row y is part of the slide body
func (l Layout) InBody(y int) bool {
	return y >= l.BodyTop && y < l.BodyTop+l.BodyHeight
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Layout     Layout
	Progress   string // rendered progress bar
	Body       string // rendered slide, already partially revealed
	Pagination pagination.View

	Overview       bool
	OverviewLayout OverviewLayout
	Titles         []string
	Cursor         int

	DeckTitle     string
	SlideTitle    string
	StatusMessage string
	StatusError   bool
	Prompt        string // non-empty while a text mode is active
	InputView     string

	ShowHelp bool
	HelpView string
}

// Renderer handles all view rendering
type Renderer struct {
	styles   *Styles
	footer   *FooterRenderer
	overview *OverviewRenderer
	popup    *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(pager pagination.Renderer) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:   styles,
		footer:   NewFooterRenderer(styles, pager),
		overview: NewOverviewRenderer(styles),
		popup:    NewPopupRenderer(styles),
	}
}

// Footer exposes the footer renderer for hit testing
func (r *Renderer) Footer() *FooterRenderer {
	return r.footer
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	l := state.Layout
	if l.Width <= 0 || l.Height <= 0 {
		return ""
	}

	var body string
	if state.Overview {
		body = r.overview.Render(state.OverviewLayout, state.Titles, state.Pagination.Current, state.Cursor)
	} else {
		body = state.Body
	}
	body = padLines(fitWidth(body, l.Width), l.BodyHeight)

	var lines []string
	if l.Chrome {
		lines = append(lines, fitWidth(state.Progress, l.Width))
	}
	if l.BodyHeight > 0 {
		lines = append(lines, body)
	}
	if l.Chrome {
		lines = append(lines, r.renderStatus(state))
		lines = append(lines, r.footer.Render(state.Pagination, l.Width))
	}
	content := strings.Join(lines, "\n")

	if state.ShowHelp && state.HelpView != "" {
		content = r.popup.RenderPopupOverlay(content, state.HelpView, l.Height, l.Width, r.styles.HelpBox)
	}
	return content
}

func (r *Renderer) renderStatus(state ViewState) string {
	width := state.Layout.Width
	if state.Prompt != "" {
		return fitWidth(r.styles.Prompt.Render(state.Prompt)+state.InputView, width)
	}

	left := r.styles.StatusTitle.Render(state.DeckTitle)
	if state.SlideTitle != "" {
		if state.DeckTitle != "" {
			left += r.styles.Dim.Render(" · ")
		}
		left += r.styles.Status.Render(state.SlideTitle)
	}

	var right string
	if state.StatusMessage != "" {
		style := r.styles.StatusSuccess
		if state.StatusError {
			style = r.styles.StatusError
		}
		right = style.Render(state.StatusMessage)
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Status messages win over titles on narrow terminals
		if right != "" {
			return ansi.Truncate(right, width, "…")
		}
		return ansi.Truncate(left, width, "…")
	}
	return left + strings.Repeat(" ", gap) + right
}
