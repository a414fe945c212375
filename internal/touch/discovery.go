package touch

import (
	"github.com/karalabe/hid"
)

// DeviceInfo describes a discovered HID device
type DeviceInfo struct {
	VendorID     uint16
	ProductID    uint16
	Path         string
	Manufacturer string
	Product      string
	SerialNumber string
	UsagePage    uint16
	Usage        uint16
}

// Digitizer usage page; touch pads report on it
const UsagePageDigitizer = 0x0D

// IsDigitizer reports whether the device advertises the digitizer usage page
func (d DeviceInfo) IsDigitizer() bool {
	return d.UsagePage == UsagePageDigitizer
}

func fromHID(d hid.DeviceInfo) DeviceInfo {
	return DeviceInfo{
		VendorID:     d.VendorID,
		ProductID:    d.ProductID,
		Path:         d.Path,
		Manufacturer: d.Manufacturer,
		Product:      d.Product,
		SerialNumber: d.Serial,
		UsagePage:    d.UsagePage,
		Usage:        d.Usage,
	}
}

// ListDevices returns every HID device on the system
func ListDevices() ([]DeviceInfo, error) {
	infos := hid.Enumerate(0, 0)
	result := make([]DeviceInfo, len(infos))
	for i, d := range infos {
		result[i] = fromHID(d)
	}
	return result, nil
}

// FindDevice returns the device matching the IDs, or nil when it is not
// connected. Of a composite device's interfaces the digitizer one is
// preferred.
func FindDevice(vendorID, productID uint16) (*DeviceInfo, error) {
	infos := hid.Enumerate(vendorID, productID)
	devices := make([]DeviceInfo, len(infos))
	for i, d := range infos {
		devices[i] = fromHID(d)
	}
	return pickInterface(devices), nil
}

func pickInterface(devices []DeviceInfo) *DeviceInfo {
	if len(devices) == 0 {
		return nil
	}
	for i := range devices {
		if devices[i].IsDigitizer() {
			return &devices[i]
		}
	}
	return &devices[0]
}
