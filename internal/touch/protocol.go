package touch

import (
	"encoding/binary"
	"fmt"

	"github.com/pleimann/swipe-pad/internal/swipe"
)

// Report IDs
const (
	ReportIDDisplay byte = 0x02
	ReportIDTouch   byte = 0x03
)

// Touch phases as sent by the pad firmware
const (
	PhaseStartByte  byte = 0x01
	PhaseMoveByte   byte = 0x02
	PhaseEndByte    byte = 0x03
	PhaseCancelByte byte = 0x04
)

// Display commands
const (
	DisplayCmdFullFrame byte = 0x01
	DisplayCmdPartial   byte = 0x02
	DisplayCmdClear     byte = 0x03
)

const (
	touchReportSize   = 11
	displayHeaderSize = 10
)

// Report is one decoded touch report
type Report struct {
	Phase     swipe.Phase
	ContactID uint8
	X         uint16
	Y         uint16
	Timestamp uint32
}

// ParseReport decodes a raw touch report.
// Expected format:
//
//	Byte 0: Report ID (0x03)
//	Byte 1: Phase (0x01=start, 0x02=move, 0x03=end, 0x04=cancel)
//	Byte 2: Contact ID
//	Byte 3-4: X in surface pixels (little-endian u16)
//	Byte 5-6: Y in surface pixels (little-endian u16)
//	Byte 7-10: Timestamp (ms since boot, little-endian u32)
func ParseReport(data []byte) (*Report, error) {
	if len(data) < touchReportSize {
		return nil, fmt.Errorf("touch report too short: %d bytes", len(data))
	}

	if data[0] != ReportIDTouch {
		return nil, fmt.Errorf("unexpected report ID: 0x%02X", data[0])
	}

	phase, err := decodePhase(data[1])
	if err != nil {
		return nil, err
	}

	return &Report{
		Phase:     phase,
		ContactID: data[2],
		X:         binary.LittleEndian.Uint16(data[3:5]),
		Y:         binary.LittleEndian.Uint16(data[5:7]),
		Timestamp: binary.LittleEndian.Uint32(data[7:11]),
	}, nil
}

func decodePhase(b byte) (swipe.Phase, error) {
	switch b {
	case PhaseStartByte:
		return swipe.PhaseStart, nil
	case PhaseMoveByte:
		return swipe.PhaseMove, nil
	case PhaseEndByte:
		return swipe.PhaseEnd, nil
	case PhaseCancelByte:
		return swipe.PhaseCancel, nil
	default:
		return 0, fmt.Errorf("unknown touch phase: 0x%02X", b)
	}
}

// Encode serializes the report, mainly for simulators and tests
func (r *Report) Encode() []byte {
	buf := make([]byte, touchReportSize)
	buf[0] = ReportIDTouch
	switch r.Phase {
	case swipe.PhaseStart:
		buf[1] = PhaseStartByte
	case swipe.PhaseMove:
		buf[1] = PhaseMoveByte
	case swipe.PhaseEnd:
		buf[1] = PhaseEndByte
	case swipe.PhaseCancel:
		buf[1] = PhaseCancelByte
	}
	buf[2] = r.ContactID
	binary.LittleEndian.PutUint16(buf[3:5], r.X)
	binary.LittleEndian.PutUint16(buf[5:7], r.Y)
	binary.LittleEndian.PutUint32(buf[7:11], r.Timestamp)
	return buf
}

// RawEvent converts the report into the engine's event form
func (r *Report) RawEvent() swipe.RawEvent {
	return swipe.RawEvent{
		Phase: r.Phase,
		Changed: []swipe.Contact{{
			ID:      int(r.ContactID),
			ClientX: float64(r.X),
			ClientY: float64(r.Y),
		}},
	}
}

// DisplayFrame is an OLED update sent to the pad
type DisplayFrame struct {
	Command byte
	X       uint16
	Y       uint16
	Width   uint16
	Height  uint16
	Data    []byte // 1-bit packed, row-major
}

// Encode serializes the frame.
// Format:
//
//	Byte 0: Report ID (0x02)
//	Byte 1: Command (0x01=full frame, 0x02=partial, 0x03=clear)
//	Byte 2-9: X, Y, Width, Height (little-endian u16 each)
//	Byte 10+: Pixel data
func (f *DisplayFrame) Encode() []byte {
	buf := make([]byte, displayHeaderSize+len(f.Data))
	buf[0] = ReportIDDisplay
	buf[1] = f.Command
	binary.LittleEndian.PutUint16(buf[2:4], f.X)
	binary.LittleEndian.PutUint16(buf[4:6], f.Y)
	binary.LittleEndian.PutUint16(buf[6:8], f.Width)
	binary.LittleEndian.PutUint16(buf[8:10], f.Height)
	copy(buf[displayHeaderSize:], f.Data)
	return buf
}

// NewFullFrame creates a full frame display update
func NewFullFrame(width, height uint16, data []byte) *DisplayFrame {
	return &DisplayFrame{Command: DisplayCmdFullFrame, Width: width, Height: height, Data: data}
}

// NewPartialFrame creates a partial frame display update
func NewPartialFrame(x, y, width, height uint16, data []byte) *DisplayFrame {
	return &DisplayFrame{Command: DisplayCmdPartial, X: x, Y: y, Width: width, Height: height, Data: data}
}

// NewClearCommand creates a display clear command
func NewClearCommand() *DisplayFrame {
	return &DisplayFrame{Command: DisplayCmdClear}
}
