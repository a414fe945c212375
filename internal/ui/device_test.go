package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pleimann/swipe-pad/internal/touch"
)

func TestSortDevices(t *testing.T) {
	keyboard := touch.DeviceInfo{VendorID: 0x05AC, ProductID: 0x0250, Product: "Keyboard", UsagePage: 0x01}
	padMouse := touch.DeviceInfo{VendorID: 0x2E8A, ProductID: 0x1001, Product: "Pad", UsagePage: 0x01, Path: "if0"}
	padTouch := touch.DeviceInfo{VendorID: 0x2E8A, ProductID: 0x1001, Product: "Pad", UsagePage: touch.UsagePageDigitizer, Path: "if1"}
	mouse := touch.DeviceInfo{VendorID: 0x046D, ProductID: 0xC077, Product: "Mouse", UsagePage: 0x01}

	got := SortDevices([]touch.DeviceInfo{keyboard, padMouse, mouse, padTouch})

	assert.Equal(t, []touch.DeviceInfo{padTouch, mouse, keyboard}, got)
	assert.Empty(t, SortDevices(nil))
}

func TestDeviceName(t *testing.T) {
	tests := []struct {
		d    touch.DeviceInfo
		want string
	}{
		{touch.DeviceInfo{Product: "Swipe Pad", Manufacturer: "Acme"}, "Acme Swipe Pad"},
		{touch.DeviceInfo{Product: "Swipe Pad"}, "Swipe Pad"},
		{touch.DeviceInfo{Manufacturer: "Acme"}, "Acme Unknown Device"},
		{touch.DeviceInfo{}, "Unknown Device"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeviceName(tt.d))
	}
}
