package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSlideChanged EventType = "SlideChanged"
	EventDeckLoaded   EventType = "DeckLoaded"
	EventDeckChanged  EventType = "DeckChanged"
	EventError        EventType = "Error"
	EventConfigLoaded EventType = "ConfigLoaded"
	EventConfigSaved  EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SlideChangedEvent is emitted after a navigation transition changed the active slide
type SlideChangedEvent struct {
	From  SlideRef
	To    SlideRef
	Total int
}

func (e SlideChangedEvent) Type() EventType { return EventSlideChanged }

// DeckLoadedEvent is emitted when a deck was (re)loaded into the presenter
type DeckLoadedEvent struct {
	Deck     DeckInfo
	Reloaded bool
}

func (e DeckLoadedEvent) Type() EventType { return EventDeckLoaded }

// DeckChangedEvent is emitted when the deck source changed on disk
type DeckChangedEvent struct {
	Path string
}

func (e DeckChangedEvent) Type() EventType { return EventDeckChanged }

// ErrorEvent is emitted when a recoverable error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
