package main

import (
	"flag"
	"os"

	"github.com/pleimann/swipe-pad/internal/action"
	"github.com/pleimann/swipe-pad/internal/config"
	"github.com/pleimann/swipe-pad/internal/swipe"
	"github.com/pleimann/swipe-pad/internal/touch"
	"github.com/pleimann/swipe-pad/internal/ui"
	"github.com/pleimann/swipe-pad/internal/utils"
)

// axisFilter returns a predicate accepting events on the named axis, or
// every event when name is empty
func axisFilter(name string) (func(swipe.Event) bool, error) {
	if name == "" {
		return func(swipe.Event) bool { return true }, nil
	}
	dir, err := swipe.ParseDirection(name)
	if err != nil {
		return nil, err
	}
	return func(ev swipe.Event) bool { return ev.Direction == dir }, nil
}

// runTrace binds the engine to the configured pad and prints what it sees
// without starting the TUI. It returns the process exit code.
func runTrace(args []string) int {
	fs := flag.NewFlagSet("trace", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to configuration file")
	raw := fs.Bool("raw", false, "also print raw touch samples")
	axis := fs.String("axis", "", "only print swipes on this axis (x, y, horizontal, vertical)")
	verbose := fs.Bool("verbose", false, "enable verbose logging")
	fs.Usage = ui.PrintTraceUsage

	if err := fs.Parse(args); err != nil {
		return 1
	}
	utils.SetVerbose(*verbose)

	accept, err := axisFilter(*axis)
	if err != nil {
		ui.PrintFatalError("Invalid -axis", err.Error())
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		ui.PrintFatalError("Failed to load config", err.Error())
		return 1
	}

	device, err := touch.NewDevice(cfg.Device.VendorID, cfg.Device.ProductID)
	if err != nil {
		ui.PrintFatalError("Failed to open touch pad", err.Error())
		return 1
	}
	defer device.Close()

	surface := touch.NewSurface()
	defer surface.Close()

	tracer := ui.NewTracer(os.Stdout)
	if *raw {
		if _, err := surface.AddListener(tracer.Raw); err != nil {
			ui.PrintFatalError("Failed to trace raw samples", err.Error())
			return 1
		}
	}

	mapper := action.NewMapper(cfg)
	binding, err := swipe.Bind(surface, swipe.Config{
		OnMove: func(ev swipe.Event) {
			if accept(ev) {
				tracer.Swipe(ev, "", nil)
			}
		},
		OnEnd: func(ev swipe.Event) {
			if accept(ev) {
				tracer.Swipe(ev, action.SwipeName(ev), mapper.Map(ev))
			}
		},
		ResolveAfter: cfg.Swipe.ResolveAfterMoves,
		Logf:         utils.Error,
	})
	if err != nil {
		ui.PrintFatalError("Failed to bind swipe engine", err.Error())
		return 1
	}
	defer binding.Release()

	ctx, stop := signalContext()
	defer stop()

	reports := make(chan touch.Report, 64)
	readErr := make(chan error, 1)
	go func() {
		readErr <- device.ReadReports(ctx, reports)
	}()

	for {
		select {
		case <-ctx.Done():
			return 0
		case report := <-reports:
			surface.DispatchReport(report)
		case err := <-readErr:
			if ctx.Err() != nil {
				return 0
			}
			ui.PrintError("touch pad read failed: " + err.Error())
			return 1
		}
	}
}
