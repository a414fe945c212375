package action

import (
	"reflect"
	"testing"

	"github.com/pleimann/swipe-pad/internal/config"
	"github.com/pleimann/swipe-pad/internal/swipe"
)

func distance(v float64) *float64 { return &v }

func end(dir swipe.Direction, distance float64) swipe.Event {
	return swipe.Event{Kind: swipe.KindEnd, Direction: dir, Distance: distance}
}

func TestSwipeName(t *testing.T) {
	tests := []struct {
		ev   swipe.Event
		want string
	}{
		{end(swipe.Horizontal, -10), "left"},
		{end(swipe.Horizontal, 10), "right"},
		{end(swipe.Horizontal, 0), "right"},
		{end(swipe.Vertical, -10), "up"},
		{end(swipe.Vertical, 10), "down"},
	}

	for _, tt := range tests {
		t.Run(tt.ev.String(), func(t *testing.T) {
			if got := SwipeName(tt.ev); got != tt.want {
				t.Errorf("SwipeName(%v) = %q, want %q", tt.ev, got, tt.want)
			}
		})
	}
}

func TestMapperMap(t *testing.T) {
	cfg := &config.Config{
		Swipe: config.SwipeConfig{MinDistance: distance(40)},
		Swipes: []config.SwipeAction{
			{Direction: "left", Keys: []string{"ctrl+b"}},
			{Direction: "right", Keys: []string{"ctrl+f"}},
			{Direction: "up", MinDistance: distance(100), Keys: []string{"pageup", "enter"}},
		},
	}
	mapper := NewMapper(cfg)

	tests := []struct {
		name string
		ev   swipe.Event
		want []string
	}{
		{"left past default threshold", end(swipe.Horizontal, -45), []string{"ctrl+b"}},
		{"right exactly at threshold", end(swipe.Horizontal, 40), []string{"ctrl+f"}},
		{"right too short", end(swipe.Horizontal, 39.9), nil},
		{"up uses its own threshold", end(swipe.Vertical, -100), []string{"pageup", "enter"}},
		{"up below its own threshold", end(swipe.Vertical, -60), nil},
		{"down not mapped", end(swipe.Vertical, 200), nil},
		{"move events never map", swipe.Event{Kind: swipe.KindMove, Direction: swipe.Horizontal, Distance: -300}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapper.Map(tt.ev)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Map(%v) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}

func TestMapperReload(t *testing.T) {
	mapper := NewMapper(&config.Config{
		Swipe:  config.SwipeConfig{MinDistance: distance(10)},
		Swipes: []config.SwipeAction{{Direction: "down", Keys: []string{"j"}}},
	})

	if got := mapper.Map(end(swipe.Vertical, 20)); !reflect.DeepEqual(got, []string{"j"}) {
		t.Fatalf("before reload: Map() = %v, want [j]", got)
	}

	mapper.Reload(&config.Config{
		Swipe:  config.SwipeConfig{MinDistance: distance(50)},
		Swipes: []config.SwipeAction{{Direction: "down", Keys: []string{"pagedown"}}},
	})

	if got := mapper.Map(end(swipe.Vertical, 20)); got != nil {
		t.Errorf("after reload: short swipe Map() = %v, want nil", got)
	}
	if got := mapper.Map(end(swipe.Vertical, 60)); !reflect.DeepEqual(got, []string{"pagedown"}) {
		t.Errorf("after reload: Map() = %v, want [pagedown]", got)
	}
}

func TestMapperZeroThreshold(t *testing.T) {
	mapper := NewMapper(&config.Config{
		Swipe: config.SwipeConfig{MinDistance: distance(40)},
		Swipes: []config.SwipeAction{
			{Direction: "up", MinDistance: distance(0), Keys: []string{"k"}},
			{Direction: "down", Keys: []string{"j"}},
		},
	})

	if got := mapper.Map(end(swipe.Vertical, -1)); !reflect.DeepEqual(got, []string{"k"}) {
		t.Errorf("zero threshold: Map() = %v, want [k]", got)
	}
	if got := mapper.Map(end(swipe.Vertical, 1)); got != nil {
		t.Errorf("default threshold: Map() = %v, want nil", got)
	}

	// no swipe.min_distance at all falls back to the default
	mapper.Reload(&config.Config{
		Swipes: []config.SwipeAction{{Direction: "down", Keys: []string{"j"}}},
	})
	if got := mapper.Map(end(swipe.Vertical, config.DefaultMinDistance-1)); got != nil {
		t.Errorf("unset threshold: Map() = %v, want nil", got)
	}
	if got := mapper.Map(end(swipe.Vertical, config.DefaultMinDistance)); !reflect.DeepEqual(got, []string{"j"}) {
		t.Errorf("unset threshold: Map() = %v, want [j]", got)
	}
}
