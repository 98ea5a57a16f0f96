package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const investorDeck = `# Helium AI

Investor presentation

---

## The Problem

- Knowledge work is fragmented

---

## Market Opportunity

` + "```yaml\nkey: value\n---\nother: value\n```" + `

---

Closing words without a heading
`

func TestParse_SplitsOnSeparators(t *testing.T) {
	d, err := Parse("deck.md", []byte(investorDeck))
	require.NoError(t, err)

	require.Equal(t, 4, d.Len())
	assert.Equal(t, []string{"Helium AI", "The Problem", "Market Opportunity", "Slide 4"}, d.Titles())
	assert.Equal(t, "Helium AI", d.Title)

	for i, s := range d.Slides {
		assert.Equal(t, i+1, s.Index)
		assert.Equal(t, "deck.md", s.Source)
	}
}

func TestParse_SeparatorInsideFenceIsContent(t *testing.T) {
	d, err := Parse("deck.md", []byte(investorDeck))
	require.NoError(t, err)

	s, ok := d.Slide(3)
	require.True(t, ok)
	assert.Contains(t, s.Body, "key: value\n---\nother: value")
}

func TestParse_FrontMatter(t *testing.T) {
	src := `---
title: Series A
author: Neural Arc
pagination: dots
---
# Welcome
---
# Thanks
`
	d, err := Parse("deck.md", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, Meta{Title: "Series A", Author: "Neural Arc", Pagination: "dots"}, d.Meta)
	assert.Equal(t, "Series A", d.Title)
	assert.Equal(t, "Neural Arc", d.Author)
	assert.Equal(t, []string{"Welcome", "Thanks"}, d.Titles())
}

func TestParse_LeadingSeparatorWithoutYAMLIsNotFrontMatter(t *testing.T) {
	src := `---
# First
Some text
---
# Second
`
	d, err := Parse("deck.md", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, Meta{}, d.Meta)
	assert.Equal(t, []string{"First", "Second"}, d.Titles())
}

func TestParse_HeadingWithInlineMarkup(t *testing.T) {
	d, err := Parse("deck.md", []byte("## The **$40B** `market`\n"))
	require.NoError(t, err)
	assert.Equal(t, "The $40B market", d.Slides[0].Title)
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse("empty.md", []byte("\n---\n\n---\n"))
	require.ErrorIs(t, err, ErrNoSlides)
}

func TestDeck_SlideBounds(t *testing.T) {
	d, err := Parse("deck.md", []byte(investorDeck))
	require.NoError(t, err)

	_, ok := d.Slide(0)
	assert.False(t, ok)
	_, ok = d.Slide(5)
	assert.False(t, ok)

	assert.Equal(t, "The Problem", d.Ref(2).Title)
	assert.Equal(t, 9, d.Ref(9).Index)
}

func TestDeck_Find(t *testing.T) {
	d, err := Parse("deck.md", []byte(investorDeck))
	require.NoError(t, err)

	tests := []struct {
		query string
		want  int
		found bool
	}{
		{query: "3", want: 3, found: true},
		{query: " 1 ", want: 1, found: true},
		{query: "0", found: false},
		{query: "12", found: false},
		{query: "market", want: 3, found: true},
		{query: "PROBLEM", want: 2, found: true},
		{query: "helim ai", want: 1, found: true},
		{query: "zzzzzzzzzzzzzzzz", found: false},
		{query: "", found: false},
	}
	for _, tt := range tests {
		got, ok := d.Find(tt.query)
		assert.Equal(t, tt.found, ok, "query %q", tt.query)
		if tt.found {
			assert.Equal(t, tt.want, got, "query %q", tt.query)
		}
	}
}
