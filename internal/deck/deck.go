// Package deck discovers and parses the slides of a presentation.
package deck

import (
	"errors"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"pitchdeck/internal/domain"
)

// ErrNoSlides is returned when a source yields no slides
var ErrNoSlides = errors.New("deck contains no slides")

// Slide is one content unit of the presentation
type Slide struct {
	Index  int    // 1-based position in the deck
	Title  string // first heading, or "Slide n"
	Body   string // markdown source
	Source string // file the slide came from
}

// Meta is the optional YAML front matter of a deck
type Meta struct {
	Title      string `yaml:"title"`
	Author     string `yaml:"author"`
	Pagination string `yaml:"pagination"`
	Theme      string `yaml:"theme"`
}

// Deck is an ordered, non-empty set of slides
type Deck struct {
	Path   string
	Title  string
	Author string
	Meta   Meta
	Slides []Slide
}

// Len returns the number of slides
func (d *Deck) Len() int {
	return len(d.Slides)
}

// Slide returns the slide at 1-based index i
func (d *Deck) Slide(i int) (Slide, bool) {
	if i < 1 || i > len(d.Slides) {
		return Slide{}, false
	}
	return d.Slides[i-1], true
}

// Titles lists slide titles in deck order
func (d *Deck) Titles() []string {
	titles := make([]string, len(d.Slides))
	for i, s := range d.Slides {
		titles[i] = s.Title
	}
	return titles
}

// Info summarises the deck for event consumers
func (d *Deck) Info() domain.DeckInfo {
	return domain.DeckInfo{Path: d.Path, Title: d.Title, SlideCount: len(d.Slides)}
}

// Ref returns the event reference of slide i
func (d *Deck) Ref(i int) domain.SlideRef {
	s, ok := d.Slide(i)
	if !ok {
		return domain.SlideRef{Index: i}
	}
	return domain.SlideRef{Index: s.Index, Title: s.Title}
}

// Find resolves a jump query to a slide index. A number selects that
// slide; text matches titles by substring first, then by edit distance.
func (d *Deck) Find(query string) (int, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(query); err == nil {
		if n < 1 || n > len(d.Slides) {
			return 0, false
		}
		return n, true
	}

	q := strings.ToLower(query)
	for _, s := range d.Slides {
		if strings.Contains(strings.ToLower(s.Title), q) {
			return s.Index, true
		}
	}

	best, bestDist := 0, -1
	for _, s := range d.Slides {
		title := strings.ToLower(s.Title)
		dist := levenshtein.ComputeDistance(q, title)
		limit := max(len([]rune(q)), len([]rune(title))) / 2
		if dist > limit {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = s.Index, dist
		}
	}
	return best, bestDist >= 0
}
