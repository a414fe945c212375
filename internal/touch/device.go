package touch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/karalabe/hid"
	"github.com/pleimann/swipe-pad/internal/utils"
)

// ErrDeviceClosed is returned by I/O on a closed device
var ErrDeviceClosed = errors.New("device closed")

// rawDevice is the subset of *hid.Device the pad needs
type rawDevice interface {
	Read(b []byte) (int, error)
	Write(b []byte) (int, error)
	Close() error
}

// Device is a connection to the touch pad
type Device struct {
	vendorID  uint16
	productID uint16

	mu     sync.Mutex
	dev    rawDevice
	closed bool
}

const permissionHint = "\n  This may be a permissions issue. On macOS, try:\n" +
	"  1. System Settings > Privacy & Security > Input Monitoring\n" +
	"  2. Add Terminal (or your terminal app) to the list"

// NewDevice opens the first openable interface matching the IDs
func NewDevice(vendorID, productID uint16) (*Device, error) {
	infos := hid.Enumerate(vendorID, productID)
	if len(infos) == 0 {
		if len(hid.Enumerate(0, 0)) == 0 {
			return nil, fmt.Errorf("no HID devices found on system - check USB connection")
		}
		name := utils.ExecutableName()
		return nil, fmt.Errorf("no device found with VendorID=0x%04X, ProductID=0x%04X\n"+
			"  Run '%s list-devices' to see available devices\n"+
			"  Run '%s set-device' to configure the correct device",
			vendorID, productID, name, name)
	}

	dev, err := openFirst(infos)
	if err != nil {
		return nil, fmt.Errorf("failed to open %d interface(s) for device 0x%04X:0x%04X: %w"+permissionHint,
			len(infos), vendorID, productID, err)
	}

	return &Device{vendorID: vendorID, productID: productID, dev: dev}, nil
}

// openFirst tries each interface in turn; composite devices expose some
// interfaces that cannot be opened
func openFirst(infos []hid.DeviceInfo) (*hid.Device, error) {
	var lastErr error
	for _, info := range infos {
		dev, err := info.Open()
		if err == nil {
			return dev, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// Close closes the connection. Further calls are no-ops.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	if d.dev != nil {
		return d.dev.Close()
	}
	return nil
}

// ReadReports reads touch reports until the context is done or the device
// fails. Reports that do not parse are skipped.
func (d *Device) ReadReports(ctx context.Context, reports chan<- Report) error {
	buf := make([]byte, 64)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		d.mu.Lock()
		if d.closed {
			d.mu.Unlock()
			return ErrDeviceClosed
		}
		dev := d.dev
		d.mu.Unlock()

		n, err := dev.Read(buf)
		if err != nil {
			return fmt.Errorf("read error: %w", err)
		}
		if n == 0 {
			continue
		}

		report, err := ParseReport(buf[:n])
		if err != nil {
			utils.Verbose("skipping report: %v", err)
			continue
		}

		select {
		case reports <- *report:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Write sends a raw report to the device
func (d *Device) Write(data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrDeviceClosed
	}

	_, err := d.dev.Write(data)
	return err
}

// SendFrame sends a display frame to the pad
func (d *Device) SendFrame(frame *DisplayFrame) error {
	return d.Write(frame.Encode())
}

// Reconnect reopens the device after it went away
func (d *Device) Reconnect() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.dev != nil {
		d.dev.Close()
		d.dev = nil
	}
	d.closed = false

	infos := hid.Enumerate(d.vendorID, d.productID)
	if len(infos) == 0 {
		return fmt.Errorf("device not found")
	}

	dev, err := openFirst(infos)
	if err != nil {
		return fmt.Errorf("failed to open device: %w", err)
	}
	d.dev = dev
	return nil
}

// WaitForDevice polls until the device can be reopened
func (d *Device) WaitForDevice(ctx context.Context, pollInterval time.Duration) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := d.Reconnect(); err == nil {
				return nil
			}
		}
	}
}
