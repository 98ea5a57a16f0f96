package domain

// SlideRef identifies a slide for event consumers that do not hold the deck
type SlideRef struct {
	Index int // 1-based
	Title string
}

// DeckInfo summarises a loaded deck
type DeckInfo struct {
	Path       string
	Title      string
	SlideCount int
}
