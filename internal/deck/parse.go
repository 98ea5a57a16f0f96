package deck

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

const separator = "---"

var markdown = goldmark.New()

// Parse splits a markdown document into a deck. Slides are separated by
// lines consisting of "---" outside fenced code blocks. A leading YAML
// front matter block is read into Meta.
func Parse(name string, src []byte) (*Deck, error) {
	meta, rest := splitFrontMatter(src)

	d := &Deck{Path: name, Meta: meta}
	for _, body := range splitSlides(rest) {
		d.Slides = append(d.Slides, newSlide(len(d.Slides)+1, body, name))
	}
	if len(d.Slides) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoSlides)
	}

	d.Title = meta.Title
	if d.Title == "" {
		d.Title = d.Slides[0].Title
	}
	d.Author = meta.Author
	return d, nil
}

func newSlide(index int, body, source string) Slide {
	title := extractTitle([]byte(body))
	if title == "" {
		title = fmt.Sprintf("Slide %d", index)
	}
	return Slide{Index: index, Title: title, Body: body, Source: source}
}

// splitFrontMatter detects a "---" delimited YAML mapping at the very
// start of the document. Anything that does not decode to a non-empty
// mapping is treated as slide content.
func splitFrontMatter(src []byte) (Meta, []byte) {
	lines := strings.SplitAfter(string(src), "\n")
	if len(lines) < 2 || strings.TrimSpace(lines[0]) != separator {
		return Meta{}, src
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != separator {
			continue
		}
		block := strings.Join(lines[1:i], "")
		var fields map[string]any
		if err := yaml.Unmarshal([]byte(block), &fields); err != nil || len(fields) == 0 {
			return Meta{}, src
		}
		var meta Meta
		if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
			return Meta{}, src
		}
		return meta, []byte(strings.Join(lines[i+1:], ""))
	}
	return Meta{}, src
}

func splitSlides(src []byte) []string {
	var (
		slides  []string
		current strings.Builder
		fence   string
	)
	flush := func() {
		if body := strings.TrimSpace(current.String()); body != "" {
			slides = append(slides, body)
		}
		current.Reset()
	}

	scanner := bufio.NewScanner(bytes.NewReader(src))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch {
		case fence != "":
			if strings.HasPrefix(trimmed, fence) {
				fence = ""
			}
		case strings.HasPrefix(trimmed, "```"):
			fence = "```"
		case strings.HasPrefix(trimmed, "~~~"):
			fence = "~~~"
		case trimmed == separator:
			flush()
			continue
		}

		current.WriteString(line)
		current.WriteByte('\n')
	}
	flush()
	return slides
}

// extractTitle returns the plain text of the first heading
func extractTitle(src []byte) string {
	doc := markdown.Parser().Parse(text.NewReader(src))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			title = strings.TrimSpace(inlineText(h, src))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}

func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		default:
			b.WriteString(inlineText(c, src))
		}
	}
	return b.String()
}
