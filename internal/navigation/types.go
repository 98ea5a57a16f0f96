package navigation

import "errors"

// ErrEmptyDeck is returned when a session is started without slides
var ErrEmptyDeck = errors.New("navigation: deck has no slides")

// State holds the navigation state of a presentation session.
// Indexes are 1-based: 1 <= Current <= Total.
type State struct {
	Current int
	Total   int
}

// Direction represents a relative or absolute movement request
type Direction string

const (
	DirectionNext     Direction = "next"
	DirectionPrevious Direction = "previous"
	DirectionFirst    Direction = "first"
	DirectionLast     Direction = "last"
)

// Stage fixes the order in which observers are notified.
// Within a stage observers run in registration order.
type Stage int

const (
	StageViewModel Stage = iota // derived projections (pagination window)
	StageRender                 // presenting the active slide
	StageHook                   // progress, preload, icons, analytics

	stageCount
)

func (s Stage) String() string {
	switch s {
	case StageViewModel:
		return "viewmodel"
	case StageRender:
		return "render"
	case StageHook:
		return "hook"
	default:
		return "unknown"
	}
}

// SlideChangedEvent describes a transition that changed the active slide
type SlideChangedEvent struct {
	OldIndex int
	NewIndex int
	Total    int
}

// Observer is notified after every transition that changed the active slide
type Observer func(SlideChangedEvent)
