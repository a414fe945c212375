package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/pleimann/swipe-pad/internal/config"
	"github.com/pleimann/swipe-pad/internal/touch"
	"github.com/pleimann/swipe-pad/internal/ui"
	"github.com/pleimann/swipe-pad/internal/utils"
)

const Version = "0.1.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "list-devices":
			runListDevices()
			return
		case "set-device", "select-device":
			runSetDevice(os.Args[2:])
			return
		case "trace":
			os.Exit(runTrace(os.Args[2:]))
		case "help", "-h", "--help":
			printUsage()
			os.Exit(0)
		}
	}

	configPath := flag.String("config", "config.yaml", "path to configuration file")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	version := flag.Bool("version", false, "print version and exit")

	flag.Usage = printUsage
	flag.Parse()

	if *version {
		ui.PrintVersion(Version)
		os.Exit(0)
	}
	utils.SetVerbose(*verbose)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.Verbose("Loaded configuration from %s", *configPath)
	utils.Verbose("Device: VendorID=0x%04X, ProductID=0x%04X", cfg.Device.VendorID, cfg.Device.ProductID)
	utils.Verbose("TUI command: %s %v", cfg.TUI.Command, cfg.TUI.Args)

	ctx, stop := signalContext()
	defer stop()

	app, err := newApp(cfg, *configPath)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Application error: %v", err)
	}

	utils.Verbose("Shutdown complete")
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			utils.Verbose("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}

func printUsage() {
	ui.PrintUsage(Version)
}

func runListDevices() {
	devices, err := touch.ListDevices()
	if err != nil {
		ui.PrintFatalError("Failed to list devices", err.Error())
		os.Exit(1)
	}
	ui.PrintDeviceList(devices)
}

func runSetDevice(args []string) {
	fs := flag.NewFlagSet("set-device", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to configuration file")
	fs.Usage = ui.PrintSetDeviceUsage

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	var vendorID, productID uint16

	switch remaining := fs.Args(); len(remaining) {
	case 0:
		device, err := selectDevice()
		if err != nil {
			ui.PrintFatalError("Device selection failed", err.Error())
			os.Exit(1)
		}
		if device == nil {
			fmt.Println(ui.Muted("No device selected"))
			os.Exit(0)
		}
		vendorID, productID = device.VendorID, device.ProductID
	case 2:
		var err error
		if vendorID, err = parseID(remaining[0]); err != nil {
			ui.PrintFatalError("Invalid vendor_id", fmt.Sprintf("%q: %v", remaining[0], err))
			os.Exit(1)
		}
		if productID, err = parseID(remaining[1]); err != nil {
			ui.PrintFatalError("Invalid product_id", fmt.Sprintf("%q: %v", remaining[1], err))
			os.Exit(1)
		}
	default:
		ui.PrintFatalError("Invalid arguments", "Both vendor_id and product_id must be provided, or neither")
		os.Exit(1)
	}

	info, err := touch.FindDevice(vendorID, productID)
	if err != nil {
		utils.Verbose("device lookup: %v", err)
	}
	if warning := deviceWarning(info, vendorID, productID); warning != "" {
		fmt.Println(ui.Warning(warning))
	}

	created, err := saveDevice(*configPath, vendorID, productID)
	if err != nil {
		ui.PrintFatalError("Failed to save device", err.Error())
		os.Exit(1)
	}
	ui.PrintDeviceSaved(*configPath, created, vendorID, productID)
}

// deviceWarning explains why the chosen device may not work as a touch pad,
// or returns "" when it looks usable
func deviceWarning(info *touch.DeviceInfo, vendorID, productID uint16) string {
	if info == nil {
		return fmt.Sprintf("Device 0x%04X:0x%04X is not connected right now", vendorID, productID)
	}
	if !info.IsDigitizer() {
		return fmt.Sprintf("%s does not report as a touch digitizer", ui.DeviceName(*info))
	}
	return ""
}

// saveDevice updates the IDs in an existing config or writes a new default
// one. It reports whether the file was created.
func saveDevice(path string, vendorID, productID uint16) (bool, error) {
	if config.Exists(path) {
		return false, config.UpdateDeviceIDs(path, vendorID, productID)
	}
	return true, config.CreateDefaultConfig(path, vendorID, productID)
}

// parseID parses a vendor or product ID, hex with 0x prefix or decimal
func parseID(s string) (uint16, error) {
	s = strings.TrimSpace(s)

	base := 10
	if strings.HasPrefix(strings.ToLower(s), "0x") {
		s, base = s[2:], 16
	}

	val, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, err
	}
	return uint16(val), nil
}

func selectDevice() (*touch.DeviceInfo, error) {
	devices, err := touch.ListDevices()
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	var identified []touch.DeviceInfo
	for _, d := range devices {
		if d.VendorID != 0 || d.ProductID != 0 {
			identified = append(identified, d)
		}
	}
	if len(identified) == 0 {
		return nil, fmt.Errorf("no identifiable HID devices found")
	}

	return ui.SelectDevice(identified)
}
