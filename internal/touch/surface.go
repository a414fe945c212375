package touch

import (
	"errors"
	"sort"
	"sync"

	"github.com/pleimann/swipe-pad/internal/swipe"
)

// ErrSurfaceClosed is returned when listening on a closed surface
var ErrSurfaceClosed = errors.New("touch surface closed")

// Surface fans raw touch events out to its listeners. It is the
// swipe.InputTarget for a touch device.
type Surface struct {
	mu        sync.Mutex
	listeners map[uint64]swipe.Listener
	nextID    uint64
	closed    bool
}

// NewSurface creates an open surface with no listeners
func NewSurface() *Surface {
	return &Surface{listeners: make(map[uint64]swipe.Listener)}
}

// AddListener registers l. The returned func removes it and may be called
// any number of times.
func (s *Surface) AddListener(l swipe.Listener) (func(), error) {
	if s == nil {
		return nil, ErrSurfaceClosed
	}
	if l == nil {
		return nil, errors.New("listener is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSurfaceClosed
	}

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}, nil
}

// Dispatch delivers ev to every listener registered at call time, in
// registration order. Listeners run without the surface lock held.
func (s *Surface) Dispatch(ev swipe.RawEvent) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	ids := make([]uint64, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	ls := make([]swipe.Listener, len(ids))
	for i, id := range ids {
		ls[i] = s.listeners[id]
	}
	s.mu.Unlock()

	for _, l := range ls {
		l(ev)
	}
}

// DispatchReport converts a device report and dispatches it
func (s *Surface) DispatchReport(r Report) {
	s.Dispatch(r.RawEvent())
}

// Listeners returns the number of registered listeners
func (s *Surface) Listeners() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}

// Close drops all listeners and refuses new ones
func (s *Surface) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.listeners = make(map[uint64]swipe.Listener)
}
