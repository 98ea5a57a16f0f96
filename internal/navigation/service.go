package navigation

import (
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"
)

type observerEntry struct {
	id uint64
	fn Observer
}

// Service is the slide-index state machine of a presentation session.
// It is the single source of truth for the active slide; input adapters
// only ever call Goto, Next, Previous or Navigate.
//
// Service is not safe for concurrent use. It is driven from the UI event
// loop, which delivers input strictly in order.
type Service struct {
	state     State
	observers [stageCount][]observerEntry
	nextID    uint64
	logger    *zap.Logger
}

// NewService creates a session over total slides, starting at the first one
func NewService(total int, logger *zap.Logger) (*Service, error) {
	if total < 1 {
		return nil, fmt.Errorf("%w (total=%d)", ErrEmptyDeck, total)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		state:  State{Current: 1, Total: total},
		logger: logger.Named("navigation"),
	}, nil
}

// Current returns the active slide index
func (s *Service) Current() int {
	return s.state.Current
}

// Total returns the number of slides in the session
func (s *Service) Total() int {
	return s.state.Total
}

// State returns a copy of the navigation state
func (s *Service) State() State {
	return s.state
}

// IsFirst reports whether the first slide is active
func (s *Service) IsFirst() bool {
	return s.state.Current == 1
}

// IsLast reports whether the last slide is active
func (s *Service) IsLast() bool {
	return s.state.Current == s.state.Total
}

// Progress returns the fraction of the deck reached, in (0, 1]
func (s *Service) Progress() float64 {
	return float64(s.state.Current) / float64(s.state.Total)
}

// Goto activates slide n. Out-of-range requests and requests for the
// active slide are ignored. Reports whether the active slide changed.
func (s *Service) Goto(n int) bool {
	if n < 1 || n > s.state.Total {
		s.logger.Debug("ignoring out-of-range goto", zap.Int("target", n), zap.Int("total", s.state.Total))
		return false
	}
	if n == s.state.Current {
		return false
	}

	event := SlideChangedEvent{
		OldIndex: s.state.Current,
		NewIndex: n,
		Total:    s.state.Total,
	}
	s.state.Current = n
	s.notify(event)
	return true
}

// Next activates the following slide; no-op on the last slide
func (s *Service) Next() bool {
	return s.Goto(s.state.Current + 1)
}

// Previous activates the preceding slide; no-op on the first slide
func (s *Service) Previous() bool {
	return s.Goto(s.state.Current - 1)
}

// Navigate applies a direction
func (s *Service) Navigate(d Direction) bool {
	switch d {
	case DirectionNext:
		return s.Next()
	case DirectionPrevious:
		return s.Previous()
	case DirectionFirst:
		return s.Goto(1)
	case DirectionLast:
		return s.Goto(s.state.Total)
	default:
		s.logger.Debug("ignoring unknown direction", zap.String("direction", string(d)))
		return false
	}
}

// Subscribe registers an observer for the given stage.
// Returns an unsubscribe function
func (s *Service) Subscribe(stage Stage, fn Observer) func() {
	if stage < 0 || stage >= stageCount {
		stage = StageHook
	}
	s.nextID++
	id := s.nextID
	s.observers[stage] = append(s.observers[stage], observerEntry{id: id, fn: fn})

	return func() {
		entries := s.observers[stage]
		for i, e := range entries {
			if e.id == id {
				s.observers[stage] = append(entries[:i:i], entries[i+1:]...)
				return
			}
		}
	}
}

func (s *Service) notify(event SlideChangedEvent) {
	for stage := Stage(0); stage < stageCount; stage++ {
		entries := append([]observerEntry(nil), s.observers[stage]...)
		for _, e := range entries {
			s.call(stage, e.fn, event)
		}
	}
}

func (s *Service) call(stage Stage, fn Observer, event SlideChangedEvent) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("observer panic",
				zap.Stringer("stage", stage),
				zap.Int("slide", event.NewIndex),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
		}
	}()
	fn(event)
}
