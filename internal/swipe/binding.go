// Package swipe recognizes directional swipe gestures from a stream of raw
// touch samples.
//
// A Binding attaches to one InputTarget and runs an independent state
// machine per contact. A session waits for a fixed number of move samples
// before locking onto the horizontal or vertical axis; only then does it
// report move updates and, on release of the contact, a final end event.
// Taps and very short drags that never lock produce no events at all.
package swipe

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Listener receives raw events from an InputTarget
type Listener func(RawEvent)

// InputTarget is a surface that delivers raw contact events. Every contact
// must produce one start, any number of moves, then one end or cancel.
type InputTarget interface {
	AddListener(l Listener) (remove func(), err error)
}

// Config configures a Binding. At least one of OnMove and OnEnd is required.
type Config struct {
	OnMove func(Event)
	OnEnd  func(Event)

	// ResolveAfter is the number of move samples needed to lock the axis.
	// Zero means DefaultResolveAfter.
	ResolveAfter int

	// Logf receives diagnostics. Defaults to log.Printf.
	Logf func(format string, args ...any)
}

// Binding owns the listener registration and the live sessions for one
// input target
type Binding struct {
	id     string
	onMove func(Event)
	onEnd  func(Event)
	window int
	logf   func(format string, args ...any)
	remove func()

	released atomic.Bool

	mu       sync.Mutex
	sessions map[int]*session // contact ID -> session
}

// Bind attaches a gesture recognizer to target
func Bind(target InputTarget, cfg Config) (*Binding, error) {
	if cfg.OnMove == nil && cfg.OnEnd == nil {
		return nil, &ConfigurationError{Reason: "at least one of OnMove and OnEnd must be provided"}
	}
	if cfg.ResolveAfter < 0 {
		return nil, &ConfigurationError{Reason: "ResolveAfter must not be negative"}
	}
	if target == nil {
		return nil, &InvalidTargetError{Reason: "target is nil"}
	}

	b := &Binding{
		id:       uuid.NewString(),
		onMove:   cfg.OnMove,
		onEnd:    cfg.OnEnd,
		window:   cfg.ResolveAfter,
		logf:     cfg.Logf,
		sessions: make(map[int]*session),
	}
	if b.window == 0 {
		b.window = DefaultResolveAfter
	}
	if b.logf == nil {
		b.logf = log.Printf
	}

	remove, err := target.AddListener(b.handle)
	if err != nil {
		return nil, &InvalidTargetError{Reason: "cannot attach listener", Err: err}
	}
	b.remove = remove

	return b, nil
}

// ID identifies the binding in diagnostics
func (b *Binding) ID() string {
	return b.id
}

// Sessions returns the number of live sessions
func (b *Binding) Sessions() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sessions)
}

// Released reports whether Release has been called
func (b *Binding) Released() bool {
	return b.released.Load()
}

// Release detaches from the target and drops every live session. It is
// safe to call more than once and from inside a callback.
//
// Release does not wait for callbacks. Events dispatched after Release
// returns never reach a callback, but when Release runs on another
// goroutine a callback already running keeps running, and one whose event
// passed the release check just before the call can still start just
// after it returns. Callers that need a hard stop must synchronize with
// their own callbacks.
func (b *Binding) Release() {
	if !b.released.CompareAndSwap(false, true) {
		return
	}
	if b.remove != nil {
		b.remove()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for id, s := range b.sessions {
		s.cancel()
		delete(b.sessions, id)
	}
}

// handle is the single listener registered on the target
func (b *Binding) handle(ev RawEvent) {
	contact, hasContact := ev.Primary()

	defer func() {
		if r := recover(); r != nil {
			b.logf("swipe: binding %s: %s event for contact %d failed: %v", b.id, ev.Phase, contact.ID, r)
			if hasContact {
				b.terminate(contact.ID)
			}
		}
	}()

	out, ok := b.step(ev)
	if ok {
		b.emit(out)
	}
}

// step advances the contact's session under the lock and returns the event
// to deliver, if any
func (b *Binding) step(ev RawEvent) (Event, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.released.Load() {
		return Event{}, false
	}

	at, err := Sample(ev)
	if err != nil {
		b.logf("swipe: binding %s: %v", b.id, err)
		if c, ok := ev.Primary(); ok {
			b.dropLocked(c.ID)
		}
		return Event{}, false
	}
	c, _ := ev.Primary()

	switch ev.Phase {
	case PhaseStart:
		if old, ok := b.sessions[c.ID]; ok {
			old.cancel()
			b.logf("swipe: binding %s: contact %d restarted while %s", b.id, c.ID, old.state)
		}
		s := newSession(c.ID, b.window)
		s.begin(at)
		b.sessions[c.ID] = s

	case PhaseMove:
		if s, ok := b.sessions[c.ID]; ok {
			return s.move(at)
		}

	case PhaseEnd:
		if s, ok := b.sessions[c.ID]; ok {
			delete(b.sessions, c.ID)
			return s.end(at)
		}

	case PhaseCancel:
		b.dropLocked(c.ID)

	default:
		b.logf("swipe: binding %s: ignoring %s event for contact %d", b.id, ev.Phase, c.ID)
	}

	return Event{}, false
}

// emit delivers ev to the matching callback unless the binding was released
func (b *Binding) emit(ev Event) {
	var fn func(Event)
	switch ev.Kind {
	case KindMove:
		fn = b.onMove
	case KindEnd:
		fn = b.onEnd
	}
	if fn == nil || b.released.Load() {
		return
	}
	fn(ev)
}

// terminate cancels a single session after a processing failure
func (b *Binding) terminate(contact int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dropLocked(contact)
}

func (b *Binding) dropLocked(contact int) {
	if s, ok := b.sessions[contact]; ok {
		s.cancel()
		delete(b.sessions, contact)
	}
}
