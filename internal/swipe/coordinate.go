package swipe

import (
	"fmt"
	"math"
)

// Phase is the lifecycle step a raw contact event belongs to
type Phase int

const (
	PhaseStart Phase = iota
	PhaseMove
	PhaseEnd
	PhaseCancel
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	case PhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// Contact is one touch point as reported by the input source
type Contact struct {
	ID      int
	ClientX float64
	ClientY float64
}

// RawEvent is a single event delivered by an InputTarget. Changed lists the
// contacts that changed in this event; the first one is the primary contact.
type RawEvent struct {
	Phase   Phase
	Changed []Contact
}

// Primary returns the primary changed contact, if any
func (ev RawEvent) Primary() (Contact, bool) {
	if len(ev.Changed) == 0 {
		return Contact{}, false
	}
	return ev.Changed[0], true
}

// Coordinate is a point in client pixel space
type Coordinate struct {
	X float64
	Y float64
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%g,%g)", c.X, c.Y)
}

// Delta is the signed displacement between two coordinates
type Delta struct {
	X float64
	Y float64
}

// DeltaBetween returns the displacement from a to b
func DeltaBetween(a, b Coordinate) Delta {
	return Delta{X: b.X - a.X, Y: b.Y - a.Y}
}

// Project returns the signed component of d along the given axis
func (d Delta) Project(dir Direction) float64 {
	if dir == Vertical {
		return d.Y
	}
	return d.X
}

// Sample extracts the primary contact's client coordinates from ev
func Sample(ev RawEvent) (Coordinate, error) {
	c, ok := ev.Primary()
	if !ok {
		return Coordinate{}, &InvalidInputError{Phase: ev.Phase, Reason: "no contact points"}
	}
	if !finite(c.ClientX) || !finite(c.ClientY) {
		return Coordinate{}, &InvalidInputError{
			Phase:  ev.Phase,
			Reason: fmt.Sprintf("contact %d has non-finite coordinates (%v,%v)", c.ID, c.ClientX, c.ClientY),
		}
	}
	return Coordinate{X: c.ClientX, Y: c.ClientY}, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
