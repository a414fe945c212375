package action

import (
	"math"
	"sync"

	"github.com/pleimann/swipe-pad/internal/config"
	"github.com/pleimann/swipe-pad/internal/swipe"
)

type binding struct {
	keys        []string
	minDistance float64
}

// Mapper turns finished swipes into key sequences based on configuration
type Mapper struct {
	mu       sync.RWMutex
	bindings map[string]binding // swipe name -> keys
}

func NewMapper(cfg *config.Config) *Mapper {
	m := &Mapper{}
	m.Reload(cfg)
	return m
}

// SwipeName names the direction of travel of an event: left, right, up or
// down. Surface Y grows downward, so a negative vertical distance is up.
func SwipeName(ev swipe.Event) string {
	switch ev.Direction {
	case swipe.Vertical:
		if ev.Distance < 0 {
			return "up"
		}
		return "down"
	default:
		if ev.Distance < 0 {
			return "left"
		}
		return "right"
	}
}

// Map returns the keys for a finished swipe, or nil when the event is not an
// end event, has no binding, or did not travel far enough
func (m *Mapper) Map(ev swipe.Event) []string {
	if ev.Kind != swipe.KindEnd {
		return nil
	}

	m.mu.RLock()
	b, ok := m.bindings[SwipeName(ev)]
	m.mu.RUnlock()

	if !ok || math.Abs(ev.Distance) < b.minDistance {
		return nil
	}
	return b.keys
}

// Reload swaps in the bindings of cfg
func (m *Mapper) Reload(cfg *config.Config) {
	bindings := make(map[string]binding, len(cfg.Swipes))
	fallback := cfg.Swipe.Threshold()
	for _, s := range cfg.Swipes {
		bindings[s.Direction] = binding{keys: s.Keys, minDistance: s.Threshold(fallback)}
	}

	m.mu.Lock()
	m.bindings = bindings
	m.mu.Unlock()
}
