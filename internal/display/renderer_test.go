package display

import (
	"testing"
)

func lit(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return true
		}
	}
	return false
}

func TestNewRenderer(t *testing.T) {
	r := NewRenderer(128, 64)
	if r.Width() != 128 || r.Height() != 64 {
		t.Errorf("size = %dx%d, want 128x64", r.Width(), r.Height())
	}
	if n := len(r.FrameBuffer()); n != 16*64 {
		t.Errorf("len(FrameBuffer()) = %d, want %d", n, 16*64)
	}
}

func TestRendererSetPixelAndClear(t *testing.T) {
	r := NewRenderer(16, 8)
	r.SetPixel(0, 0, true)
	r.SetPixel(7, 0, true)
	r.SetPixel(8, 0, true)
	r.SetPixel(15, 0, true)

	data := r.FrameBuffer()
	// MSB first: pixel 0 is bit 7
	if data[0] != 0x81 || data[1] != 0x81 {
		t.Errorf("row 0 = 0x%02X 0x%02X, want 0x81 0x81", data[0], data[1])
	}

	r.SetPixel(0, 0, false)
	if got := r.FrameBuffer()[0]; got != 0x01 {
		t.Errorf("byte 0 after SetPixel(off) = 0x%02X, want 0x01", got)
	}

	r.Clear()
	if lit(r.FrameBuffer()) {
		t.Error("pixels set after Clear()")
	}
}

func TestRendererShapes(t *testing.T) {
	tests := []struct {
		name string
		draw func(r *Renderer)
		want []byte // one byte per row of an 8x4 display
	}{
		{
			name: "fill",
			draw: func(r *Renderer) { r.FillRect(2, 1, 4, 2) },
			want: []byte{0x00, 0x3C, 0x3C, 0x00},
		},
		{
			name: "fill clipped",
			draw: func(r *Renderer) { r.FillRect(6, 2, 10, 10) },
			want: []byte{0x00, 0x00, 0x03, 0x03},
		},
		{
			name: "outline",
			draw: func(r *Renderer) { r.DrawRect(2, 0, 4, 3) },
			want: []byte{0x3C, 0x24, 0x3C, 0x00},
		},
		{
			name: "empty bar",
			draw: func(r *Renderer) { r.DrawBar(0, 0, 8, 4, 0) },
			want: []byte{0xFF, 0x81, 0x81, 0xFF},
		},
		{
			name: "half bar",
			draw: func(r *Renderer) { r.DrawBar(0, 0, 8, 4, 0.5) },
			want: []byte{0xFF, 0xF1, 0xF1, 0xFF},
		},
		{
			name: "overfull bar is clamped",
			draw: func(r *Renderer) { r.DrawBar(0, 0, 8, 4, 3) },
			want: []byte{0xFF, 0xFF, 0xFF, 0xFF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(8, 4)
			tt.draw(r)
			got := r.FrameBuffer()
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("row %d = 0x%02X, want 0x%02X", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRendererDrawText(t *testing.T) {
	r := NewRenderer(64, 16)
	r.DrawText(0, 13, "Hello")

	if !lit(r.FrameBuffer()) {
		t.Error("DrawText() didn't set any pixels")
	}
	if w := r.TextWidth("Hello"); w != 35 {
		t.Errorf("TextWidth(Hello) = %d, want 35", w)
	}
}

func TestRendererDrawTextWrapped(t *testing.T) {
	tests := []struct {
		text      string
		wantLines int
	}{
		{"", 0},
		{"short", 1},
		// 7px glyphs, 64px wide fits 9 characters
		{"Hello World Test", 3},
		{"  spaced\tout\nwords  ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			r := NewRenderer(64, 64)
			height := r.DrawTextWrapped(0, 13, 64, tt.text)
			if want := tt.wantLines * r.LineHeight(); height != want {
				t.Errorf("DrawTextWrapped(%q) height = %d, want %d", tt.text, height, want)
			}
			if lit(r.FrameBuffer()) != (tt.wantLines > 0) {
				t.Errorf("DrawTextWrapped(%q) lit pixels mismatch", tt.text)
			}
		})
	}
}
