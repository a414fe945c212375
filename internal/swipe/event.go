package swipe

import "fmt"

// EventKind distinguishes incremental updates from the final summary
type EventKind int

const (
	KindMove EventKind = iota
	KindEnd
)

func (k EventKind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindEnd:
		return "end"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Event is emitted to observers once a session has locked its axis.
// Distance is the signed displacement from the start sample along Direction.
type Event struct {
	Kind      EventKind
	Direction Direction
	Distance  float64
}

func (e Event) String() string {
	return fmt.Sprintf("%s(%s, %g)", e.Kind, e.Direction, e.Distance)
}
