package display

import (
	"github.com/pleimann/swipe-pad/internal/touch"
)

// hidReportSize is the pad's output report size; display frames carry a
// 10 byte header
const (
	hidReportSize = 64
	maxPayload    = hidReportSize - 10
)

// FrameEncoder cuts rendered frame buffers into display reports
type FrameEncoder struct {
	width  int
	height int
}

func NewFrameEncoder(width, height int) *FrameEncoder {
	return &FrameEncoder{width: width, height: height}
}

// FullFrame wraps data in one frame. Only small displays fit a single report.
func (e *FrameEncoder) FullFrame(data []byte) *touch.DisplayFrame {
	return touch.NewFullFrame(uint16(e.width), uint16(e.height), data)
}

// Clear returns the command that blanks the display
func (e *FrameEncoder) Clear() *touch.DisplayFrame {
	return touch.NewClearCommand()
}

// RowsPerChunk is how many full rows fit one report, at least one
func (e *FrameEncoder) RowsPerChunk() int {
	rows := maxPayload / e.bytesPerRow()
	if rows == 0 {
		return 1
	}
	return rows
}

func (e *FrameEncoder) bytesPerRow() int {
	return (e.width + 7) / 8
}

// Chunks splits a packed frame buffer into partial frames of whole rows
func (e *FrameEncoder) Chunks(data []byte) []*touch.DisplayFrame {
	stride := e.bytesPerRow()
	step := e.RowsPerChunk()

	frames := make([]*touch.DisplayFrame, 0, (e.height+step-1)/step)
	for y := 0; y < e.height; y += step {
		rows := min(step, e.height-y)
		from := min(y*stride, len(data))
		to := min((y+rows)*stride, len(data))
		frames = append(frames, touch.NewPartialFrame(0, uint16(y), uint16(e.width), uint16(rows), data[from:to]))
	}
	return frames
}
