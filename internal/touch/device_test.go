package touch

import (
	"context"
	"errors"
	"testing"

	"github.com/pleimann/swipe-pad/internal/swipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedDevice replays canned reads and records writes
type scriptedDevice struct {
	reads  [][]byte
	writes [][]byte
	closed int
}

var errScriptDone = errors.New("script done")

func (s *scriptedDevice) Read(b []byte) (int, error) {
	if len(s.reads) == 0 {
		return 0, errScriptDone
	}
	next := s.reads[0]
	s.reads = s.reads[1:]
	return copy(b, next), nil
}

func (s *scriptedDevice) Write(b []byte) (int, error) {
	s.writes = append(s.writes, append([]byte(nil), b...))
	return len(b), nil
}

func (s *scriptedDevice) Close() error {
	s.closed++
	return nil
}

func TestDeviceReadReportsSkipsGarbage(t *testing.T) {
	raw := &scriptedDevice{reads: [][]byte{
		touchReport(PhaseStartByte, 1, 10, 10, 1),
		{},
		{0xFF, 0x00},
		touchReport(PhaseEndByte, 1, 40, 10, 2),
	}}
	d := &Device{dev: raw}

	reports := make(chan Report, 8)
	err := d.ReadReports(context.Background(), reports)
	require.ErrorIs(t, err, errScriptDone)
	close(reports)

	var got []Report
	for r := range reports {
		got = append(got, r)
	}
	require.Len(t, got, 2)
	assert.Equal(t, swipe.PhaseStart, got[0].Phase)
	assert.Equal(t, swipe.PhaseEnd, got[1].Phase)
	assert.Equal(t, uint16(40), got[1].X)
}

func TestDeviceReadReportsCancelled(t *testing.T) {
	d := &Device{dev: &scriptedDevice{}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.ReadReports(ctx, make(chan Report))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDeviceCloseIsIdempotent(t *testing.T) {
	raw := &scriptedDevice{}
	d := &Device{dev: raw}

	require.NoError(t, d.Close())
	require.NoError(t, d.Close())
	assert.Equal(t, 1, raw.closed)

	assert.ErrorIs(t, d.Write([]byte{1}), ErrDeviceClosed)
	assert.ErrorIs(t, d.ReadReports(context.Background(), make(chan Report)), ErrDeviceClosed)
}

func TestDeviceSendFrame(t *testing.T) {
	raw := &scriptedDevice{}
	d := &Device{dev: raw}

	require.NoError(t, d.SendFrame(NewClearCommand()))
	require.Len(t, raw.writes, 1)
	assert.Equal(t, ReportIDDisplay, raw.writes[0][0])
	assert.Equal(t, DisplayCmdClear, raw.writes[0][1])
}

func TestDeviceInfoIsDigitizer(t *testing.T) {
	assert.True(t, DeviceInfo{UsagePage: UsagePageDigitizer}.IsDigitizer())
	assert.False(t, DeviceInfo{UsagePage: 0x01}.IsDigitizer())
}

func TestPickInterface(t *testing.T) {
	mouse := DeviceInfo{VendorID: 0x2E8A, ProductID: 0x1001, Path: "if0", UsagePage: 0x01}
	pad := DeviceInfo{VendorID: 0x2E8A, ProductID: 0x1001, Path: "if1", UsagePage: UsagePageDigitizer}

	assert.Nil(t, pickInterface(nil))

	got := pickInterface([]DeviceInfo{mouse, pad})
	require.NotNil(t, got)
	assert.Equal(t, "if1", got.Path)

	got = pickInterface([]DeviceInfo{mouse})
	require.NotNil(t, got)
	assert.Equal(t, "if0", got.Path)
}

func TestFindDeviceMissing(t *testing.T) {
	// no real device uses these IDs
	info, err := FindDevice(0xFFFE, 0xFFFD)
	require.NoError(t, err)
	assert.Nil(t, info)
}
