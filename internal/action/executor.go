package action

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// KeyWriter receives parsed keys, normally the PTY
type KeyWriter interface {
	WriteKey(key KeyPress) error
}

// Executor types key sequences into a KeyWriter
type Executor struct {
	writer KeyWriter
}

func NewExecutor(writer KeyWriter) *Executor {
	return &Executor{writer: writer}
}

// Execute parses every key up front so a bad entry writes nothing
func (e *Executor) Execute(keys []string) error {
	parsed := make([]KeyPress, 0, len(keys))
	for _, keyStr := range keys {
		key, err := ParseKey(keyStr)
		if err != nil {
			return fmt.Errorf("invalid key %q: %w", keyStr, err)
		}
		parsed = append(parsed, key)
	}

	for i, key := range parsed {
		if err := e.writer.WriteKey(key); err != nil {
			return fmt.Errorf("failed to write key %q: %w", keys[i], err)
		}
	}
	return nil
}

// KeyPress is a base key plus modifiers
type KeyPress struct {
	Ctrl  bool
	Alt   bool
	Shift bool
	Meta  bool
	Key   string // "c", "enter", "f1"
}

func (kp KeyPress) String() string {
	var b strings.Builder
	for _, m := range []struct {
		on   bool
		name string
	}{{kp.Ctrl, "ctrl"}, {kp.Alt, "alt"}, {kp.Shift, "shift"}, {kp.Meta, "meta"}} {
		if m.on {
			b.WriteString(m.name)
			b.WriteByte('+')
		}
	}
	b.WriteString(kp.Key)
	return b.String()
}

// namedKeys holds the xterm sequence of every multi-character key name
var namedKeys = map[string][]byte{
	"enter":     {'\r'},
	"return":    {'\r'},
	"tab":       {'\t'},
	"esc":       {0x1b},
	"escape":    {0x1b},
	"space":     {' '},
	"backspace": {0x7f},
	"delete":    {0x1b, '[', '3', '~'},
	"del":       {0x1b, '[', '3', '~'},
	"insert":    {0x1b, '[', '2', '~'},
	"ins":       {0x1b, '[', '2', '~'},
	"home":      {0x1b, '[', 'H'},
	"end":       {0x1b, '[', 'F'},
	"pageup":    {0x1b, '[', '5', '~'},
	"pgup":      {0x1b, '[', '5', '~'},
	"pagedown":  {0x1b, '[', '6', '~'},
	"pgdn":      {0x1b, '[', '6', '~'},
	"up":        {0x1b, '[', 'A'},
	"down":      {0x1b, '[', 'B'},
	"right":     {0x1b, '[', 'C'},
	"left":      {0x1b, '[', 'D'},
	"f1":        {0x1b, 'O', 'P'},
	"f2":        {0x1b, 'O', 'Q'},
	"f3":        {0x1b, 'O', 'R'},
	"f4":        {0x1b, 'O', 'S'},
	"f5":        {0x1b, '[', '1', '5', '~'},
	"f6":        {0x1b, '[', '1', '7', '~'},
	"f7":        {0x1b, '[', '1', '8', '~'},
	"f8":        {0x1b, '[', '1', '9', '~'},
	"f9":        {0x1b, '[', '2', '0', '~'},
	"f10":       {0x1b, '[', '2', '1', '~'},
	"f11":       {0x1b, '[', '2', '3', '~'},
	"f12":       {0x1b, '[', '2', '4', '~'},
}

// ctrlSymbols are the C0 controls reachable with ctrl plus punctuation
var ctrlSymbols = map[byte]byte{
	'[':  0x1b,
	'\\': 0x1c,
	']':  0x1d,
	'^':  0x1e,
	'_':  0x1f,
	'?':  0x7f,
}

var modifiers = map[string]func(*KeyPress){
	"ctrl":    func(k *KeyPress) { k.Ctrl = true },
	"control": func(k *KeyPress) { k.Ctrl = true },
	"alt":     func(k *KeyPress) { k.Alt = true },
	"option":  func(k *KeyPress) { k.Alt = true },
	"shift":   func(k *KeyPress) { k.Shift = true },
	"meta":    func(k *KeyPress) { k.Meta = true },
	"cmd":     func(k *KeyPress) { k.Meta = true },
	"command": func(k *KeyPress) { k.Meta = true },
	"win":     func(k *KeyPress) { k.Meta = true },
	"super":   func(k *KeyPress) { k.Meta = true },
}

// ParseKey parses "ctrl+shift+c" style strings. The last segment is the key.
func ParseKey(s string) (KeyPress, error) {
	var kp KeyPress

	parts := strings.Split(strings.ToLower(s), "+")
	last := len(parts) - 1
	// "ctrl++" names the plus key itself
	if last > 0 && parts[last] == "" && parts[last-1] == "" {
		parts = append(parts[:last-1], "+")
		last = len(parts) - 1
	}

	for i, part := range parts {
		part = strings.TrimSpace(part)
		if i == last {
			kp.Key = part
			break
		}
		if part == "" {
			continue
		}
		set, ok := modifiers[part]
		if !ok {
			return KeyPress{}, fmt.Errorf("unknown modifier: %s", part)
		}
		set(&kp)
	}

	if kp.Key == "" {
		return KeyPress{}, fmt.Errorf("no key specified")
	}
	if !isValidKey(kp.Key) {
		return KeyPress{}, fmt.Errorf("invalid key: %s", kp.Key)
	}
	return kp, nil
}

func isValidKey(key string) bool {
	if utf8.RuneCountInString(key) == 1 {
		return true
	}
	_, ok := namedKeys[key]
	return ok
}

// ToBytes returns what a terminal would send for the key press
func (kp KeyPress) ToBytes() []byte {
	single := len(kp.Key) == 1

	if kp.Ctrl && !kp.Alt && !kp.Meta && single {
		char := kp.Key[0]
		switch {
		case char >= 'a' && char <= 'z':
			return []byte{char - 'a' + 1}
		case char >= 'A' && char <= 'Z':
			return []byte{char - 'A' + 1}
		}
		if b, ok := ctrlSymbols[char]; ok {
			return []byte{b}
		}
	}

	if seq, ok := namedKeys[kp.Key]; ok {
		return append([]byte(nil), seq...)
	}

	if !single {
		// multi-byte runes go through as UTF-8
		if utf8.RuneCountInString(kp.Key) == 1 {
			if kp.Alt {
				return append([]byte{0x1b}, kp.Key...)
			}
			return []byte(kp.Key)
		}
		return nil
	}

	char := kp.Key[0]
	if kp.Alt {
		return []byte{0x1b, char}
	}
	if kp.Shift && char >= 'a' && char <= 'z' {
		return []byte{char - 32}
	}
	return []byte{char}
}
