package swipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDirection(t *testing.T) {
	tests := []struct {
		name string
		d    Delta
		want Direction
	}{
		{"pure horizontal", Delta{X: 10}, Horizontal},
		{"pure vertical", Delta{Y: 10}, Vertical},
		{"negative vertical", Delta{X: 3, Y: -4}, Vertical},
		{"mostly horizontal", Delta{X: -9, Y: 8}, Horizontal},
		{"tie favors horizontal", Delta{X: 5, Y: -5}, Horizontal},
		{"no movement", Delta{}, Horizontal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDirection(tt.d))
		})
	}
}

func TestDirectionNames(t *testing.T) {
	assert.Equal(t, "x", Horizontal.String())
	assert.Equal(t, "y", Vertical.String())
	assert.Equal(t, "horizontal", Horizontal.Axis())
	assert.Equal(t, "vertical", Vertical.Axis())
	assert.Equal(t, "unknown(7)", Direction(7).String())
}

func TestParseDirection(t *testing.T) {
	for _, s := range []string{"x", "X", "horizontal", " Horizontal "} {
		d, err := ParseDirection(s)
		require.NoError(t, err, s)
		assert.Equal(t, Horizontal, d, s)
	}
	for _, s := range []string{"y", "vertical"} {
		d, err := ParseDirection(s)
		require.NoError(t, err, s)
		assert.Equal(t, Vertical, d, s)
	}
	_, err := ParseDirection("diagonal")
	assert.Error(t, err)
}

func TestResolverWaitsForWindow(t *testing.T) {
	r := newResolver(3)
	start := Coordinate{}

	_, ok := r.observe(start, Coordinate{X: 0, Y: 50})
	assert.False(t, ok, "first sample must not resolve")
	_, ok = r.observe(start, Coordinate{X: 0, Y: 60})
	assert.False(t, ok, "second sample must not resolve")

	// Only the third sample counts; the earlier vertical jitter is ignored.
	dir, ok := r.observe(start, Coordinate{X: 90, Y: 10})
	require.True(t, ok)
	assert.Equal(t, Horizontal, dir)

	_, ok = r.observe(start, Coordinate{X: 0, Y: 500})
	assert.False(t, ok, "resolver must resolve only once")
}

func TestResolverMinimumWindow(t *testing.T) {
	r := newResolver(0)
	dir, ok := r.observe(Coordinate{}, Coordinate{Y: 1})
	require.True(t, ok)
	assert.Equal(t, Vertical, dir)
}
