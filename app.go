package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/pleimann/swipe-pad/internal/action"
	"github.com/pleimann/swipe-pad/internal/config"
	"github.com/pleimann/swipe-pad/internal/display"
	"github.com/pleimann/swipe-pad/internal/pty"
	"github.com/pleimann/swipe-pad/internal/swipe"
	"github.com/pleimann/swipe-pad/internal/touch"
	"github.com/pleimann/swipe-pad/internal/utils"
)

// feedback shows swipes to the user while they happen
type feedback interface {
	ShowMove(ev swipe.Event)
	ShowEnd(ev swipe.Event, keys []string)
}

type noFeedback struct{}

func (noFeedback) ShowMove(swipe.Event)          {}
func (noFeedback) ShowEnd(swipe.Event, []string) {}

// swipeHandler turns engine events into keystrokes and display updates
type swipeHandler struct {
	mapper   *action.Mapper
	executor *action.Executor
	feedback feedback
}

func (h *swipeHandler) onMove(ev swipe.Event) {
	utils.Verbose("swipe %s", ev)
	h.feedback.ShowMove(ev)
}

func (h *swipeHandler) onEnd(ev swipe.Event) {
	keys := h.mapper.Map(ev)
	utils.Verbose("swipe %s (%s) -> %v", ev, action.SwipeName(ev), keys)
	h.feedback.ShowEnd(ev, keys)

	if len(keys) == 0 {
		return
	}
	if err := h.executor.Execute(keys); err != nil {
		utils.Error("Failed to execute action: %v", err)
	}
}

// binder keeps one live binding on a surface and can swap it for a new
// one when the resolve window changes
type binder struct {
	surface *touch.Surface
	handler *swipeHandler

	mu      sync.Mutex
	binding *swipe.Binding
	window  int
}

func (b *binder) bind(window int) error {
	next, err := swipe.Bind(b.surface, swipe.Config{
		OnMove:       b.handler.onMove,
		OnEnd:        b.handler.onEnd,
		ResolveAfter: window,
		Logf:         utils.Error,
	})
	if err != nil {
		return err
	}

	b.mu.Lock()
	prev := b.binding
	b.binding, b.window = next, window
	b.mu.Unlock()

	if prev != nil {
		prev.Release()
	}
	utils.Verbose("swipe binding %s resolves after %d moves", next.ID(), window)
	return nil
}

// reset drops every in-flight gesture
func (b *binder) reset() error {
	b.mu.Lock()
	window := b.window
	b.mu.Unlock()
	return b.bind(window)
}

func (b *binder) release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.binding != nil {
		b.binding.Release()
	}
}

type App struct {
	config  *config.Config
	device  *touch.Device
	surface *touch.Surface
	binder  *binder
	handler *swipeHandler
	pty     *pty.Manager
	display *display.Manager
	watcher *config.Watcher
}

func newApp(cfg *config.Config, configPath string) (*App, error) {
	device, err := touch.NewDevice(cfg.Device.VendorID, cfg.Device.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to open touch pad: %w", err)
	}

	ptyManager, err := pty.NewManager(cfg.TUI.Command, cfg.TUI.Args, cfg.TUI.WorkingDir, os.Stdout)
	if err != nil {
		device.Close()
		return nil, fmt.Errorf("failed to create PTY manager: %w", err)
	}

	app := &App{
		config:  cfg,
		device:  device,
		surface: touch.NewSurface(),
		pty:     ptyManager,
	}

	keyDelay := time.Duration(cfg.TUI.KeyDelayMs) * time.Millisecond
	app.handler = &swipeHandler{
		mapper:   action.NewMapper(cfg),
		executor: action.NewExecutor(pty.NewWriter(ptyManager, keyDelay)),
		feedback: noFeedback{},
	}

	if !cfg.Display.Disabled {
		app.display = display.NewManager(cfg.Display, cfg.Swipe.Threshold(), device)
		app.handler.feedback = app.display
	}

	app.binder = &binder{surface: app.surface, handler: app.handler}
	if err := app.binder.bind(cfg.Swipe.ResolveAfterMoves); err != nil {
		device.Close()
		return nil, fmt.Errorf("failed to bind swipe engine: %w", err)
	}

	watcher, err := config.NewWatcher(configPath)
	if err != nil {
		utils.Error("config hot reload disabled: %v", err)
	} else {
		app.watcher = watcher
		watcher.OnReload(app.reload)
	}

	return app, nil
}

// reload applies a changed config. Device and TUI settings need a restart.
func (a *App) reload(cfg *config.Config) {
	a.handler.mapper.Reload(cfg)
	if a.display != nil {
		a.display.SetThreshold(cfg.Swipe.Threshold())
	}

	a.binder.mu.Lock()
	window := a.binder.window
	a.binder.mu.Unlock()
	if cfg.Swipe.ResolveAfterMoves != window {
		if err := a.binder.bind(cfg.Swipe.ResolveAfterMoves); err != nil {
			utils.Error("failed to rebind swipe engine: %v", err)
		}
	}
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	// cancel runs before shutdown, so the TUI's context is done while we wait for it
	defer a.shutdown()
	defer cancel()

	if err := a.pty.Start(ctx); err != nil {
		return fmt.Errorf("failed to start PTY: %w", err)
	}
	a.matchTerminalSize()

	if a.display != nil {
		a.display.Start(ctx)
	}
	if a.watcher != nil {
		a.watcher.Start()
	}

	poll := time.Duration(a.config.Device.PollIntervalMs) * time.Millisecond
	for {
		err := a.readLoop(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if errors.Is(err, errTUIExited) {
			utils.Info("%s exited", a.config.TUI.Command)
			return nil
		}

		utils.Error("touch pad disconnected: %v", err)
		if err := a.dropGestures(); err != nil {
			return fmt.Errorf("failed to reset swipe engine: %w", err)
		}
		if err := a.device.WaitForDevice(ctx, poll); err != nil {
			return nil
		}
		utils.Info("touch pad reconnected")
	}
}

var errTUIExited = errors.New("TUI exited")

// dropGestures abandons every in-flight swipe and blanks its feedback
func (a *App) dropGestures() error {
	if err := a.binder.reset(); err != nil {
		return err
	}
	if a.display != nil {
		a.display.Clear()
	}
	return nil
}

// readLoop feeds device reports to the surface until the device fails, the
// TUI exits or ctx is done
func (a *App) readLoop(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reports := make(chan touch.Report, 64)
	readErr := make(chan error, 1)
	go func() {
		readErr <- a.device.ReadReports(ctx, reports)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-a.pty.Done():
			return errTUIExited
		case report := <-reports:
			a.surface.DispatchReport(report)
		case err := <-readErr:
			return err
		}
	}
}

// matchTerminalSize gives the TUI the size of our own terminal
func (a *App) matchTerminalSize() {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return
	}
	if err := a.pty.Resize(uint16(rows), uint16(cols)); err != nil {
		utils.Verbose("resize PTY: %v", err)
	}
}

func (a *App) shutdown() {
	utils.Verbose("Shutting down...")
	if a.watcher != nil {
		a.watcher.Stop()
	}
	a.binder.release()
	a.surface.Close()
	if a.display != nil {
		a.display.Stop()
	}
	a.pty.Stop()
	a.device.Close()
}
