package views

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Blocks splits rendered slide output into paragraphs separated by
// visually blank lines. Each block keeps its own lines.
func Blocks(rendered string) [][]string {
	var (
		blocks  [][]string
		current []string
	)
	for _, line := range strings.Split(rendered, "\n") {
		if strings.TrimSpace(ansi.Strip(line)) == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

// CountBlocks returns the number of entrance animation steps of a slide
func CountBlocks(rendered string) int {
	return len(Blocks(rendered))
}

// RevealBlocks shows the first n blocks of rendered output and blanks the
// rest, keeping the layout height so revealed blocks do not shift. n < 0
// shows everything.
func RevealBlocks(rendered string, n int) string {
	if n < 0 {
		return rendered
	}
	lines := strings.Split(rendered, "\n")
	block := 0
	inBlock := false
	for i, line := range lines {
		blank := strings.TrimSpace(ansi.Strip(line)) == ""
		switch {
		case blank && inBlock:
			inBlock = false
			block++
		case !blank:
			inBlock = true
		}
		if !blank && block >= n {
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}
