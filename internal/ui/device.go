package ui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/pleimann/swipe-pad/internal/touch"
)

// deviceSelectModel hosts the huh form so esc and q abort cleanly
type deviceSelectModel struct {
	form    *huh.Form
	aborted bool
}

func (m deviceSelectModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m deviceSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc", "q":
			m.aborted = true
			return m, tea.Quit
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		return m, tea.Quit
	}
	return m, cmd
}

func (m deviceSelectModel) View() string {
	if m.form.State == huh.StateCompleted {
		return ""
	}
	return m.form.View()
}

// SortDevices puts digitizers first, then orders by vendor and product ID.
// Composite devices show up once per interface; only the first is kept.
func SortDevices(devices []touch.DeviceInfo) []touch.DeviceInfo {
	type key struct{ vid, pid uint16 }
	seen := make(map[key]int)
	var out []touch.DeviceInfo
	for _, d := range devices {
		k := key{d.VendorID, d.ProductID}
		if i, ok := seen[k]; ok {
			// prefer the digitizer interface of a composite device
			if d.IsDigitizer() && !out[i].IsDigitizer() {
				out[i] = d
			}
			continue
		}
		seen[k] = len(out)
		out = append(out, d)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IsDigitizer() != b.IsDigitizer() {
			return a.IsDigitizer()
		}
		if a.VendorID != b.VendorID {
			return a.VendorID < b.VendorID
		}
		return a.ProductID < b.ProductID
	})
	return out
}

// SelectDevice asks the user to pick a device. It returns nil, nil when the
// user cancels.
func SelectDevice(devices []touch.DeviceInfo) (*touch.DeviceInfo, error) {
	devices = SortDevices(devices)
	if len(devices) == 0 {
		return nil, fmt.Errorf("no devices to select from")
	}

	options := make([]huh.Option[int], len(devices))
	for i, d := range devices {
		options[i] = huh.NewOption(deviceLine(d), i)
	}

	var selected int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Select touch pad").
				Description("Digitizers are listed first (esc to cancel)").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(customTheme()).WithShowHelp(false)

	final, err := tea.NewProgram(deviceSelectModel{form: form}).Run()
	if err != nil {
		return nil, err
	}
	if final.(deviceSelectModel).aborted {
		return nil, nil
	}
	return &devices[selected], nil
}

// DeviceName is the product string, prefixed by the manufacturer if known
func DeviceName(d touch.DeviceInfo) string {
	name := d.Product
	if name == "" {
		name = "Unknown Device"
	}
	if d.Manufacturer != "" {
		name = d.Manufacturer + " " + name
	}
	return name
}

func deviceLine(d touch.DeviceInfo) string {
	parts := []string{
		DeviceIDStyle.Render(fmt.Sprintf("0x%04X:0x%04X", d.VendorID, d.ProductID)),
		DeviceNameStyle.Render(DeviceName(d)),
	}
	if d.IsDigitizer() {
		parts = append(parts, DigitizerTagStyle.Render("[touch]"))
	}
	return strings.Join(parts, "  ")
}

// PrintDeviceList prints every device, digitizers first
func PrintDeviceList(devices []touch.DeviceInfo) {
	devices = SortDevices(devices)
	if len(devices) == 0 {
		fmt.Println(Warning("No HID devices found"))
		return
	}

	fmt.Println()
	fmt.Println(Title("HID Devices"))
	fmt.Println(Muted(fmt.Sprintf("Found %d device(s)", len(devices))))
	fmt.Println()
	for _, d := range devices {
		fmt.Println("  " + deviceLine(d))
	}
	fmt.Println()
}

// PrintDeviceSaved confirms a device written to the config file
func PrintDeviceSaved(configPath string, created bool, vendorID, productID uint16) {
	msg := "Device configuration updated"
	if created {
		msg = "Device configuration created"
	}
	fmt.Println()
	fmt.Println(Success(msg))
	fmt.Println()
	fmt.Printf("  %s %s\n", Muted("Config:"), configPath)
	fmt.Printf("  %s %s\n", Muted("Device:"), DeviceIDStyle.Render(fmt.Sprintf("0x%04X:0x%04X", vendorID, productID)))
	fmt.Println()
}

func customTheme() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorPrimary)
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(ColorText)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorPrimary)
	return t
}
