package pagination

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Numbered renders one number per visible slide, with ellipsis
// placeholders for hidden ranges
type Numbered struct {
	styles Styles
}

type segment struct {
	text  string
	index int // 0 for placeholders
}

func (n *Numbered) Name() string { return "numbered" }

func (n *Numbered) segments(v View) []segment {
	var segs []segment
	if v.Window.LeadingEllipsis {
		segs = append(segs, segment{text: n.styles.Ellipsis.Render(ellipsis)})
	}
	for _, i := range v.Window.Markers() {
		style := n.styles.Inactive
		if i == v.Current {
			style = n.styles.Active
		}
		segs = append(segs, segment{text: style.Render(strconv.Itoa(i)), index: i})
	}
	if v.Window.TrailingEllipsis {
		segs = append(segs, segment{text: n.styles.Ellipsis.Render(ellipsis)})
	}
	return segs
}

func (n *Numbered) Render(v View) string {
	segs := n.segments(v)
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.text
	}
	return strings.Join(parts, " ")
}

func (n *Numbered) MarkerAt(v View, x int) (int, bool) {
	pos := 0
	for _, s := range n.segments(v) {
		w := lipgloss.Width(s.text)
		if x >= pos && x < pos+w {
			return s.index, s.index > 0
		}
		pos += w + 1
	}
	return 0, false
}
