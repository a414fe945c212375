package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/pleimann/swipe-pad/internal/swipe"
)

// Tracer prints engine output one line per event. Styling is only applied
// when writing to a terminal so piped traces stay greppable.
type Tracer struct {
	mu     sync.Mutex
	out    io.Writer
	styled bool
}

func NewTracer(out io.Writer) *Tracer {
	return &Tracer{out: out, styled: isTerminal(out)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (t *Tracer) render(style interface{ Render(...string) string }, s string) string {
	if !t.styled {
		return s
	}
	return style.Render(s)
}

func (t *Tracer) println(parts ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, strings.Join(parts, " "))
}

// Raw prints a touch sample as the surface delivered it
func (t *Tracer) Raw(ev swipe.RawEvent) {
	phase := t.render(TracePhaseStyle, fmt.Sprintf("%-7s", ev.Phase))
	if c, ok := ev.Primary(); ok {
		t.println(phase, fmt.Sprintf("#%d", c.ID), fmt.Sprintf("(%g, %g)", c.ClientX, c.ClientY))
		return
	}
	t.println(phase, "(no contact)")
}

// Swipe prints an engine event. name is the swipe it maps to and keys the
// keys it would send, both optional.
func (t *Tracer) Swipe(ev swipe.Event, name string, keys []string) {
	kind := fmt.Sprintf("%-7s", ev.Kind)
	detail := fmt.Sprintf("%s %+.1f", ev.Direction.Axis(), ev.Distance)

	switch ev.Kind {
	case swipe.KindEnd:
		line := []string{t.render(TraceEndStyle, kind), t.render(TraceEndStyle, detail)}
		if name != "" {
			line = append(line, name)
		}
		if len(keys) > 0 {
			line = append(line, "->", strings.Join(keys, " "))
		}
		t.println(line...)
	default:
		t.println(t.render(TracePhaseStyle, kind), t.render(TraceMoveStyle, detail))
	}
}
