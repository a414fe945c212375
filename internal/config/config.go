package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Device  DeviceConfig  `yaml:"device"`
	Swipe   SwipeConfig   `yaml:"swipe"`
	TUI     TUIConfig     `yaml:"tui"`
	Swipes  []SwipeAction `yaml:"swipes"`
	Display DisplayConfig `yaml:"display"`
}

type DeviceConfig struct {
	VendorID       uint16 `yaml:"vendor_id"`
	ProductID      uint16 `yaml:"product_id"`
	PollIntervalMs int    `yaml:"poll_interval_ms"`
}

// SwipeConfig tunes the gesture engine
type SwipeConfig struct {
	// ResolveAfterMoves is how many move samples a contact needs before its
	// axis is locked
	ResolveAfterMoves int `yaml:"resolve_after_moves"`
	// MinDistance is the default travel, in surface pixels, a finished swipe
	// needs to trigger its keys. Nil means DefaultMinDistance; an explicit 0
	// lets every locked swipe through.
	MinDistance *float64 `yaml:"min_distance"`
}

// DefaultMinDistance is used when swipe.min_distance is not set
const DefaultMinDistance = 40.0

// Threshold returns the configured default travel
func (s SwipeConfig) Threshold() float64 {
	if s.MinDistance == nil {
		return DefaultMinDistance
	}
	return *s.MinDistance
}

type TUIConfig struct {
	Command    string   `yaml:"command"`
	Args       []string `yaml:"args"`
	WorkingDir string   `yaml:"working_dir,omitempty"`
	KeyDelayMs int      `yaml:"key_delay_ms,omitempty"`
}

// SwipeAction maps a finished swipe to a key sequence
type SwipeAction struct {
	Direction   string   `yaml:"direction"` // left, right, up or down
	MinDistance *float64 `yaml:"min_distance,omitempty"`
	Keys        []string `yaml:"keys"`
}

// Threshold returns the swipe's own minimum travel, or fallback when it has
// none
func (a SwipeAction) Threshold(fallback float64) float64 {
	if a.MinDistance == nil {
		return fallback
	}
	return *a.MinDistance
}

type DisplayConfig struct {
	Width            int  `yaml:"width"`
	Height           int  `yaml:"height"`
	UpdateIntervalMs int  `yaml:"update_interval_ms"`
	Disabled         bool `yaml:"disabled,omitempty"`
}

// SwipeNames lists the valid values of SwipeAction.Direction
var SwipeNames = []string{"left", "right", "up", "down"}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Device.VendorID == 0 {
		return fmt.Errorf("device.vendor_id is required")
	}
	if c.Device.ProductID == 0 {
		return fmt.Errorf("device.product_id is required")
	}
	if c.TUI.Command == "" {
		return fmt.Errorf("tui.command is required")
	}
	if c.Swipe.ResolveAfterMoves < 0 {
		return fmt.Errorf("swipe.resolve_after_moves must not be negative")
	}
	if c.Swipe.MinDistance != nil && *c.Swipe.MinDistance < 0 {
		return fmt.Errorf("swipe.min_distance must not be negative")
	}

	seen := make(map[string]bool)
	for i, s := range c.Swipes {
		name := strings.ToLower(strings.TrimSpace(s.Direction))
		if !validSwipeName(name) {
			return fmt.Errorf("swipes[%d]: unknown direction %q (want one of %s)",
				i, s.Direction, strings.Join(SwipeNames, ", "))
		}
		if seen[name] {
			return fmt.Errorf("duplicate swipe direction: %s", name)
		}
		seen[name] = true
		if len(s.Keys) == 0 {
			return fmt.Errorf("swipes[%d]: keys are required", i)
		}
		if s.MinDistance != nil && *s.MinDistance < 0 {
			return fmt.Errorf("swipes[%d]: min_distance must not be negative", i)
		}
	}

	return nil
}

func validSwipeName(name string) bool {
	for _, n := range SwipeNames {
		if n == name {
			return true
		}
	}
	return false
}

func (c *Config) applyDefaults() {
	if c.Device.PollIntervalMs == 0 {
		c.Device.PollIntervalMs = 10
	}
	if c.Swipe.ResolveAfterMoves == 0 {
		c.Swipe.ResolveAfterMoves = 3
	}
	if c.Swipe.MinDistance == nil {
		d := DefaultMinDistance
		c.Swipe.MinDistance = &d
	}
	for i := range c.Swipes {
		c.Swipes[i].Direction = strings.ToLower(strings.TrimSpace(c.Swipes[i].Direction))
	}
	if c.Display.Width == 0 {
		c.Display.Width = 128
	}
	if c.Display.Height == 0 {
		c.Display.Height = 64
	}
	if c.Display.UpdateIntervalMs == 0 {
		c.Display.UpdateIntervalMs = 50
	}
}

var (
	vendorLine  = regexp.MustCompile(`(?m)^(\s*vendor_id:\s*)(?:0x[0-9A-Fa-f]+|\d+)`)
	productLine = regexp.MustCompile(`(?m)^(\s*product_id:\s*)(?:0x[0-9A-Fa-f]+|\d+)`)
)

// UpdateDeviceIDs rewrites vendor_id and product_id in place, leaving the
// rest of the file (comments included) untouched
func UpdateDeviceIDs(path string, vendorID, productID uint16) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	content := vendorLine.ReplaceAllString(string(data), fmt.Sprintf("${1}0x%04X", vendorID))
	content = productLine.ReplaceAllString(content, fmt.Sprintf("${1}0x%04X", productID))

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// CreateDefaultConfig writes a starter config for the given device
func CreateDefaultConfig(path string, vendorID, productID uint16) error {
	content := fmt.Sprintf(`# Swipe Pad Configuration

device:
  vendor_id: 0x%04X
  product_id: 0x%04X
  poll_interval_ms: 10

swipe:
  resolve_after_moves: 3
  # minimum travel in pixels for a swipe to send keys; 0 sends on any swipe
  min_distance: 40

tui:
  command: "your-tui-app"
  args: []

# Swipe mappings
swipes:
  - direction: left
    keys: ["left"]
  - direction: right
    keys: ["right"]
  - direction: up
    keys: ["pageup"]
  - direction: down
    keys: ["pagedown"]

display:
  width: 128
  height: 64
  update_interval_ms: 50
`, vendorID, productID)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	return nil
}

// Exists checks if a config file exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
