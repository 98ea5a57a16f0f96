package ui

import (
	"pitchdeck/internal/deck"
	"pitchdeck/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// animTickMsg reveals the next block of the entrance animation
type animTickMsg struct {
	gen uint64
}

// idleMsg hides the presentation chrome when no input arrived since seq
type idleMsg struct {
	seq uint64
}

// statusClearMsg clears the status line unless a newer message replaced it
type statusClearMsg struct {
	seq uint64
}

// preloadedMsg reports that a slide was rendered into the cache
type preloadedMsg struct {
	index int
}

// deckReloadedMsg contains the result of reloading the deck from disk
type deckReloadedMsg struct {
	deck *deck.Deck
	err  error
}
