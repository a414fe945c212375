package display

import (
	"testing"

	"github.com/pleimann/swipe-pad/internal/touch"
)

func TestFrameEncoderFullFrame(t *testing.T) {
	frame := NewFrameEncoder(128, 64).FullFrame([]byte{0xAA, 0xBB, 0xCC})

	if frame.Command != touch.DisplayCmdFullFrame {
		t.Errorf("Command = 0x%02X, want 0x%02X", frame.Command, touch.DisplayCmdFullFrame)
	}
	if frame.Width != 128 || frame.Height != 64 {
		t.Errorf("Size = (%d, %d), want (128, 64)", frame.Width, frame.Height)
	}
	if len(frame.Data) != 3 {
		t.Errorf("len(Data) = %d, want 3", len(frame.Data))
	}
}

func TestFrameEncoderClear(t *testing.T) {
	frame := NewFrameEncoder(128, 64).Clear()
	if frame.Command != touch.DisplayCmdClear {
		t.Errorf("Command = 0x%02X, want 0x%02X", frame.Command, touch.DisplayCmdClear)
	}
}

func TestFrameEncoderChunks(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		wantRows   []uint16 // height of each chunk
		wantStarts []uint16
	}{
		// 2 bytes per row, 27 rows fit 54 bytes
		{"two chunks", 16, 32, []uint16{27, 5}, []uint16{0, 27}},
		{"single chunk", 8, 8, []uint16{8}, []uint16{0}},
		// 12 pixels still take 2 bytes per row
		{"width not a byte multiple", 12, 4, []uint16{4}, []uint16{0}},
		// 16 bytes per row, 3 rows per chunk
		{"oled", 128, 64, []uint16{3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 1}, nil},
		// wider than one report still sends a row at a time
		{"very wide", 512, 2, []uint16{1, 1}, []uint16{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewFrameEncoder(tt.width, tt.height)
			stride := (tt.width + 7) / 8
			frames := e.Chunks(make([]byte, stride*tt.height))

			if len(frames) != len(tt.wantRows) {
				t.Fatalf("len(frames) = %d, want %d", len(frames), len(tt.wantRows))
			}
			for i, f := range frames {
				if f.Command != touch.DisplayCmdPartial {
					t.Errorf("frame[%d].Command = 0x%02X, want partial", i, f.Command)
				}
				if f.Height != tt.wantRows[i] {
					t.Errorf("frame[%d].Height = %d, want %d", i, f.Height, tt.wantRows[i])
				}
				if int(f.Width) != tt.width {
					t.Errorf("frame[%d].Width = %d, want %d", i, f.Width, tt.width)
				}
				if len(f.Data) != int(f.Height)*stride {
					t.Errorf("len(frame[%d].Data) = %d, want %d", i, len(f.Data), int(f.Height)*stride)
				}
				if tt.wantStarts != nil && f.Y != tt.wantStarts[i] {
					t.Errorf("frame[%d].Y = %d, want %d", i, f.Y, tt.wantStarts[i])
				}
			}
		})
	}
}

func TestFrameEncoderChunksFitReport(t *testing.T) {
	e := NewFrameEncoder(128, 64)
	for i, f := range e.Chunks(make([]byte, 16*64)) {
		if n := len(f.Encode()); n > hidReportSize {
			t.Errorf("frame[%d] encodes to %d bytes, over %d", i, n, hidReportSize)
		}
	}
}

func TestFrameEncoderChunksShortBuffer(t *testing.T) {
	frames := NewFrameEncoder(8, 4).Chunks([]byte{0xFF, 0xFF})
	if len(frames) != 1 || len(frames[0].Data) != 2 {
		t.Errorf("Chunks() on short buffer = %d frames, want 1 with 2 bytes", len(frames))
	}
}
