package display

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/pleimann/swipe-pad/internal/action"
	"github.com/pleimann/swipe-pad/internal/config"
	"github.com/pleimann/swipe-pad/internal/swipe"
	"github.com/pleimann/swipe-pad/internal/touch"
	"github.com/pleimann/swipe-pad/internal/utils"
)

// FrameSender delivers display frames to the pad
type FrameSender interface {
	SendFrame(frame *touch.DisplayFrame) error
}

// Manager shows swipe feedback on the pad's OLED. Updates only mark the
// screen dirty; a ticker renders and sends at most once per interval.
type Manager struct {
	config   config.DisplayConfig
	sender   FrameSender
	renderer *Renderer
	encoder  *FrameEncoder

	mu        sync.Mutex
	threshold float64
	title     string
	progress  float64
	status    string
	dirty     bool

	cancel context.CancelFunc
	done   chan struct{}
}

// NewManager creates a manager. threshold is the travel at which the
// progress bar is full.
func NewManager(cfg config.DisplayConfig, threshold float64, sender FrameSender) *Manager {
	return &Manager{
		config:    cfg,
		sender:    sender,
		renderer:  NewRenderer(cfg.Width, cfg.Height),
		encoder:   NewFrameEncoder(cfg.Width, cfg.Height),
		threshold: threshold,
	}
}

func (m *Manager) SetThreshold(threshold float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.threshold = threshold
}

// ShowMove shows a locked swipe in progress
func (m *Manager) ShowMove(ev swipe.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.title = label(ev)
	m.progress = m.fraction(ev.Distance)
	m.status = ""
	m.dirty = true
}

// ShowEnd shows a finished swipe and the keys it sent, if any
func (m *Manager) ShowEnd(ev swipe.Event, keys []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.title = label(ev)
	m.progress = m.fraction(ev.Distance)
	if len(keys) == 0 {
		m.status = "no action"
	} else {
		m.status = "> " + strings.Join(keys, " ")
	}
	m.dirty = true
}

// Clear blanks the feedback on the next flush
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.title, m.status, m.progress = "", "", 0
	m.dirty = true
}

func (m *Manager) fraction(distance float64) float64 {
	if m.threshold <= 0 {
		return 1
	}
	return math.Abs(distance) / m.threshold
}

func label(ev swipe.Event) string {
	return fmt.Sprintf("%s %.0f", action.SwipeName(ev), math.Abs(ev.Distance))
}

// Start runs the flush loop until ctx is done or Stop is called
func (m *Manager) Start(ctx context.Context) {
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})

	interval := time.Duration(m.config.UpdateIntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := m.Flush(); err != nil {
					utils.Verbose("display: %v", err)
				}
			}
		}
	}()
}

// Stop ends the flush loop and blanks the display
func (m *Manager) Stop() {
	if m.cancel != nil {
		m.cancel()
		<-m.done
	}
	if err := m.sender.SendFrame(m.encoder.Clear()); err != nil {
		utils.Verbose("display: clear: %v", err)
	}
}

// Flush renders and sends the screen if anything changed since the last
// flush. A failed send leaves the screen dirty so the next tick retries.
func (m *Manager) Flush() error {
	m.mu.Lock()
	if !m.dirty {
		m.mu.Unlock()
		return nil
	}
	m.render()
	frames := m.encoder.Chunks(m.renderer.FrameBuffer())
	m.dirty = false
	m.mu.Unlock()

	for _, frame := range frames {
		if err := m.sender.SendFrame(frame); err != nil {
			m.mu.Lock()
			m.dirty = true
			m.mu.Unlock()
			return fmt.Errorf("failed to send frame: %w", err)
		}
	}
	return nil
}

// render lays out title, progress bar and status top to bottom
func (m *Manager) render() {
	r := m.renderer
	r.Clear()
	if m.title == "" && m.status == "" {
		return
	}

	line := r.LineHeight()
	width := r.Width()

	r.DrawText(2, line-2, m.title)
	r.DrawBar(2, line+2, width-4, 8, m.progress)
	if m.status != "" {
		r.DrawTextWrapped(2, 2*line+10, width-4, m.status)
	}
}
