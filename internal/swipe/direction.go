package swipe

import (
	"fmt"
	"math"
	"strings"
)

// DefaultResolveAfter is the number of move samples a session waits for
// before locking its axis. A single noisy sample cannot flip the result.
const DefaultResolveAfter = 3

// Direction is the axis a swipe is locked onto
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// String returns the short axis name, "x" or "y"
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "x"
	case Vertical:
		return "y"
	default:
		return fmt.Sprintf("unknown(%d)", int(d))
	}
}

// Axis returns the long axis name, "horizontal" or "vertical"
func (d Direction) Axis() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return d.String()
	}
}

// ParseDirection accepts both the short and the long axis names
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x", "horizontal":
		return Horizontal, nil
	case "y", "vertical":
		return Vertical, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

// ResolveDirection classifies a displacement. Ties favor Horizontal.
func ResolveDirection(d Delta) Direction {
	if math.Abs(d.X) < math.Abs(d.Y) {
		return Vertical
	}
	return Horizontal
}

// resolver counts move samples after a start and resolves the axis on the
// window-th one. It resolves at most once.
type resolver struct {
	window   int
	seen     int
	resolved bool
}

func newResolver(window int) resolver {
	if window < 1 {
		window = 1
	}
	return resolver{window: window}
}

// observe records one move sample. ok is true only for the sample that
// resolves the axis.
func (r *resolver) observe(start, sample Coordinate) (dir Direction, ok bool) {
	if r.resolved {
		return 0, false
	}
	r.seen++
	if r.seen < r.window {
		return 0, false
	}
	r.resolved = true
	return ResolveDirection(DeltaBetween(start, sample)), true
}
