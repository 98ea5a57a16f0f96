package pagination

import (
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
)

// Dots renders one dot per visible slide using a bubbles paginator
type Dots struct {
	styles Styles
	model  paginator.Model
}

// NewDots creates a dot indicator renderer
func NewDots(styles Styles) *Dots {
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = styles.Active.Render("●") + " "
	p.InactiveDot = styles.Inactive.Render("○") + " "
	p.KeyMap = paginator.KeyMap{}
	return &Dots{styles: styles, model: p}
}

func (d *Dots) Name() string { return "dots" }

func (d *Dots) prefix(v View) string {
	if v.Window.LeadingEllipsis {
		return d.styles.Ellipsis.Render(ellipsis) + " "
	}
	return ""
}

func (d *Dots) Render(v View) string {
	p := d.model
	p.TotalPages = v.Window.Width()
	p.Page = v.Current - v.Window.Start

	out := d.prefix(v) + p.View()
	if v.Window.TrailingEllipsis {
		out += d.styles.Ellipsis.Render(ellipsis)
	}
	return out
}

func (d *Dots) MarkerAt(v View, x int) (int, bool) {
	x -= lipgloss.Width(d.prefix(v))
	dot := lipgloss.Width(d.model.InactiveDot)
	if x < 0 || dot == 0 {
		return 0, false
	}
	k := x / dot
	if k >= v.Window.Width() {
		return 0, false
	}
	return v.Window.Start + k, true
}
