package pty

import (
	"time"

	"github.com/pleimann/swipe-pad/internal/action"
)

// Writer spaces out key presses for TUIs that drop input arriving too fast
type Writer struct {
	keys     action.KeyWriter
	keyDelay time.Duration
	sleep    func(time.Duration)
}

func NewWriter(keys action.KeyWriter, keyDelay time.Duration) *Writer {
	return &Writer{
		keys:     keys,
		keyDelay: keyDelay,
		sleep:    time.Sleep,
	}
}

func (w *Writer) WriteKey(key action.KeyPress) error {
	if err := w.keys.WriteKey(key); err != nil {
		return err
	}
	if w.keyDelay > 0 {
		w.sleep(w.keyDelay)
	}
	return nil
}
