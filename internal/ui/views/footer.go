package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pitchdeck/internal/pagination"
)

const (
	prevLabel        = "‹ prev"
	nextLabel        = "next ›"
	prevLabelCompact = "‹"
	nextLabelCompact = "›"
)

// FooterHitKind identifies the footer element under a click
type FooterHitKind int

const (
	HitNone FooterHitKind = iota
	HitPrevious
	HitNext
	HitMarker
)

// FooterHit is the result of a footer hit test
type FooterHit struct {
	Kind  FooterHitKind
	Index int // slide for HitMarker
}

// FooterRenderer draws the prev/next buttons around the pagination markers
type FooterRenderer struct {
	styles *Styles
	pager  pagination.Renderer
}

// NewFooterRenderer creates a new footer renderer
func NewFooterRenderer(styles *Styles, pager pagination.Renderer) *FooterRenderer {
	return &FooterRenderer{styles: styles, pager: pager}
}

type footerGeometry struct {
	prev, next string
	pager      string
	pagerStart int
	nextStart  int
	pagerWidth int
}

func (f *FooterRenderer) geometry(v pagination.View, width int) footerGeometry {
	g := footerGeometry{prev: prevLabel, next: nextLabel}
	if f.pager != nil {
		g.pager = f.pager.Render(v)
	}
	g.pagerWidth = lipgloss.Width(g.pager)

	if lipgloss.Width(g.prev)+lipgloss.Width(g.next)+g.pagerWidth+4 > width {
		g.prev, g.next = prevLabelCompact, nextLabelCompact
	}
	g.nextStart = max(0, width-lipgloss.Width(g.next))
	g.pagerStart = max(lipgloss.Width(g.prev)+1, (width-g.pagerWidth)/2)
	return g
}

// Render draws the footer line. Buttons at the deck bounds are dimmed.
func (f *FooterRenderer) Render(v pagination.View, width int) string {
	if width <= 0 {
		return ""
	}
	g := f.geometry(v, width)

	prevStyle, nextStyle := f.styles.Button, f.styles.Button
	if v.Current <= 1 {
		prevStyle = f.styles.ButtonDisabled
	}
	if v.Current >= v.Total {
		nextStyle = f.styles.ButtonDisabled
	}

	var b strings.Builder
	b.WriteString(prevStyle.Render(g.prev))
	col := lipgloss.Width(g.prev)
	if g.pagerStart > col {
		b.WriteString(strings.Repeat(" ", g.pagerStart-col))
		col = g.pagerStart
	}
	b.WriteString(g.pager)
	col += g.pagerWidth
	if g.nextStart > col {
		b.WriteString(strings.Repeat(" ", g.nextStart-col))
	} else {
		b.WriteString(" ")
	}
	b.WriteString(nextStyle.Render(g.next))
	return fitWidth(b.String(), width)
}

// HitTest maps a click at column x of the footer to a button or marker
func (f *FooterRenderer) HitTest(v pagination.View, width, x int) FooterHit {
	if width <= 0 || x < 0 || x >= width {
		return FooterHit{}
	}
	g := f.geometry(v, width)

	if x < lipgloss.Width(g.prev) {
		return FooterHit{Kind: HitPrevious}
	}
	if x >= g.nextStart && x >= g.pagerStart+g.pagerWidth {
		return FooterHit{Kind: HitNext}
	}
	if f.pager != nil && x >= g.pagerStart && x < g.pagerStart+g.pagerWidth {
		if idx, ok := f.pager.MarkerAt(v, x-g.pagerStart); ok {
			return FooterHit{Kind: HitMarker, Index: idx}
		}
	}
	return FooterHit{}
}
