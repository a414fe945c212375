package swipe

import "fmt"

// State is the lifecycle state of a single contact's session
type State int

const (
	StateIdle State = iota
	StateAwaitingDirection
	StateLocked
	StateEnded
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingDirection:
		return "awaiting_direction"
	case StateLocked:
		return "locked"
	case StateEnded:
		return "ended"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Terminal reports whether no further transition is possible
func (s State) Terminal() bool {
	return s == StateEnded || s == StateCancelled
}

// session is the state machine for one physical contact. It only computes
// events; delivering them is the binding's job.
type session struct {
	contact   int
	state     State
	start     Coordinate
	direction Direction
	resolver  resolver
}

func newSession(contact, window int) *session {
	return &session{
		contact:  contact,
		state:    StateIdle,
		resolver: newResolver(window),
	}
}

// begin handles the start sample
func (s *session) begin(at Coordinate) {
	if s.state != StateIdle {
		return
	}
	s.start = at
	s.state = StateAwaitingDirection
}

// move handles a move sample. It returns an event only once the axis is
// locked, and never for the sample that locks it.
func (s *session) move(at Coordinate) (Event, bool) {
	switch s.state {
	case StateAwaitingDirection:
		if dir, ok := s.resolver.observe(s.start, at); ok {
			s.direction = dir
			s.state = StateLocked
		}
		return Event{}, false
	case StateLocked:
		return s.project(KindMove, at), true
	default:
		return Event{}, false
	}
}

// end handles the end sample. Sessions that never locked end silently.
func (s *session) end(at Coordinate) (Event, bool) {
	switch s.state {
	case StateLocked:
		s.state = StateEnded
		return s.project(KindEnd, at), true
	case StateAwaitingDirection, StateIdle:
		s.state = StateEnded
	}
	return Event{}, false
}

// cancel terminates the session without an event
func (s *session) cancel() {
	if s.state.Terminal() {
		return
	}
	s.state = StateCancelled
}

func (s *session) project(kind EventKind, at Coordinate) Event {
	return Event{
		Kind:      kind,
		Direction: s.direction,
		Distance:  DeltaBetween(s.start, at).Project(s.direction),
	}
}
