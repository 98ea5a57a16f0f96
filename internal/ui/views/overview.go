package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	cardHeight   = 4 // border, number, title, border
	minCardWidth = 14
)

// OverviewLayout is the geometry of the slide grid. Rows scroll so the
// cursor card stays visible.
type OverviewLayout struct {
	Total     int
	Columns   int
	CardWidth int
	FirstRow  int
	Rows      int // visible rows
}

// NewOverviewLayout fits the grid into width x height cells
func NewOverviewLayout(total, columns, width, height, cursor int) OverviewLayout {
	columns = max(1, columns)
	if width > 0 {
		columns = min(columns, max(1, width/minCardWidth))
	}
	l := OverviewLayout{
		Total:     total,
		Columns:   columns,
		CardWidth: max(minCardWidth, width/columns),
		Rows:      max(1, height/cardHeight),
	}
	if cursor >= 1 {
		row := (cursor - 1) / columns
		if row >= l.Rows {
			l.FirstRow = row - l.Rows + 1
		}
	}
	return l
}

// CardAt returns the slide whose card covers cell (x, y) of the grid
func (l OverviewLayout) CardAt(x, y int) (int, bool) {
	if x < 0 || y < 0 || l.Columns < 1 || l.CardWidth < 1 {
		return 0, false
	}
	col := x / l.CardWidth
	row := y / cardHeight
	if col >= l.Columns || row >= l.Rows {
		return 0, false
	}
	idx := (l.FirstRow+row)*l.Columns + col + 1
	if idx > l.Total {
		return 0, false
	}
	return idx, true
}

// OverviewRenderer draws the slide grid
type OverviewRenderer struct {
	styles *Styles
}

// NewOverviewRenderer creates a new overview renderer
func NewOverviewRenderer(styles *Styles) *OverviewRenderer {
	return &OverviewRenderer{styles: styles}
}

// Render draws the visible cards. titles is 0-based; current and cursor are
// slide numbers.
func (o *OverviewRenderer) Render(l OverviewLayout, titles []string, current, cursor int) string {
	inner := max(1, l.CardWidth-4) // border and padding
	var rows []string
	for r := 0; r < l.Rows; r++ {
		var cards []string
		for c := 0; c < l.Columns; c++ {
			idx := (l.FirstRow+r)*l.Columns + c + 1
			if idx > l.Total || idx > len(titles) {
				break
			}
			style := o.styles.Card
			switch idx {
			case cursor:
				style = o.styles.CardCursor
			case current:
				style = o.styles.CardCurrent
			}
			number := o.styles.CardNumber.Render(fmt.Sprintf("%d", idx))
			title := ansi.Truncate(titles[idx-1], inner, "…")
			cards = append(cards, style.Width(inner+2).Render(number+"\n"+title))
		}
		if len(cards) == 0 {
			break
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
