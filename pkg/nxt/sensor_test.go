package nxt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// inputValuesPayload builds a get-input-values payload.
func inputValuesPayload(port, valid, calibrated, sensorType, mode byte, raw, norm uint16, scaled, calib int16) []byte {
	return []byte{
		port, valid, calibrated, sensorType, mode,
		byte(raw), byte(raw >> 8),
		byte(norm), byte(norm >> 8),
		byte(scaled), byte(scaled >> 8),
		byte(calib), byte(calib >> 8),
	}
}

func setInputModeFrame(port InputPort, sensorType byte) []byte {
	return []byte{0x80, 0x05, byte(port), sensorType, 0x00}
}

func TestReadColorScaled(t *testing.T) {
	payload := inputValuesPayload(byte(In2), 1, 0, sensorColorRed, sensorModeRaw,
		800, 700, 42, 153)
	b, ft := newTestBrick(reply(opGetInputValues, statusSuccess, payload...))

	reading, err := b.ReadColor(In2, ColorRed)
	require.NoError(t, err)
	require.Equal(t, 42, reading)
	require.Equal(t, [][]byte{
		setInputModeFrame(In2, sensorColorRed),
		{0x00, 0x07, byte(In2)},
		setInputModeFrame(In2, sensorColorNone),
	}, ft.frames)
}

func TestReadColorCalibrated(t *testing.T) {
	payload := inputValuesPayload(byte(In1), 1, 1, sensorColorFull, sensorModeRaw,
		800, 700, 42, 153)
	b, _ := newTestBrick(reply(opGetInputValues, statusSuccess, payload...))

	reading, err := b.ReadColor(In1, ColorFull)
	require.NoError(t, err)
	require.Equal(t, 153, reading)
}

func TestReadColorNoneSkipsReset(t *testing.T) {
	payload := inputValuesPayload(byte(In3), 1, 0, sensorColorNone, sensorModeRaw,
		800, 700, 7, 0)
	b, ft := newTestBrick(reply(opGetInputValues, statusSuccess, payload...))

	reading, err := b.ReadColor(In3, ColorNone)
	require.NoError(t, err)
	require.Equal(t, 7, reading)
	// already in the disabled mode, no extra set-input-mode frame
	require.Equal(t, [][]byte{
		setInputModeFrame(In3, sensorColorNone),
		{0x00, 0x07, byte(In3)},
	}, ft.frames)
}

func TestReadColorResetAfterStatusError(t *testing.T) {
	b, ft := newTestBrick(reply(opGetInputValues, 0x70))

	_, err := b.ReadColor(In4, ColorBlue)
	statusErr, ok := err.(*StatusError)
	require.True(t, ok, "expect StatusError, got %v", err)
	require.Equal(t, byte(0x70), statusErr.Code)
	// the failing read must not skip the mode reset
	require.Equal(t, [][]byte{
		setInputModeFrame(In4, sensorColorBlue),
		{0x00, 0x07, byte(In4)},
		setInputModeFrame(In4, sensorColorNone),
	}, ft.frames)
}

func TestReadColorResetFailureSurfaces(t *testing.T) {
	payload := inputValuesPayload(byte(In1), 1, 0, sensorColorGreen, sensorModeRaw,
		800, 700, 42, 0)
	b, ft := newTestBrick(reply(opGetInputValues, statusSuccess, payload...))
	resetErr := errors.New("write: port gone")
	ft.failAt, ft.failErr = 3, resetErr

	_, err := b.ReadColor(In1, ColorGreen)
	require.Equal(t, resetErr, err)
	require.Equal(t, setInputModeFrame(In1, sensorColorNone), ft.frames[len(ft.frames)-1])
}

func TestReadColorResetFailureKeepsReadError(t *testing.T) {
	b, ft := newTestBrick(reply(opGetInputValues, 0x70))
	ft.failAt, ft.failErr = 3, errors.New("write: port gone")

	_, err := b.ReadColor(In4, ColorBlue)
	// the read failure wins over the failing reset
	statusErr, ok := err.(*StatusError)
	require.True(t, ok, "expect StatusError, got %v", err)
	require.Equal(t, byte(0x70), statusErr.Code)
	require.Equal(t, setInputModeFrame(In4, sensorColorNone), ft.frames[len(ft.frames)-1])
}

func TestReadColorResetAfterShortPayload(t *testing.T) {
	b, ft := newTestBrick(reply(opGetInputValues, statusSuccess, 0x00, 0x01))

	_, err := b.ReadColor(In1, ColorGreen)
	requireBadResponse(t, err)
	require.Equal(t, setInputModeFrame(In1, sensorColorNone), ft.frames[len(ft.frames)-1])
}

func TestReadColorUnknownMode(t *testing.T) {
	b, ft := newTestBrick()
	_, err := b.ReadColor(In1, ColorMode(9))
	requireValidationError(t, err)
	require.Empty(t, ft.frames)
}

func TestReadColorUnknownPort(t *testing.T) {
	b, ft := newTestBrick()
	_, err := b.ReadColor(InputPort(4), ColorRed)
	requireValidationError(t, err)
	require.Empty(t, ft.frames)
}

func TestGetInputValuesDecode(t *testing.T) {
	payload := inputValuesPayload(byte(In2), 1, 1, sensorColorFull, sensorModeRaw,
		1023, 0x8000, -5, -40)
	b, _ := newTestBrick(reply(opGetInputValues, statusSuccess, payload...))

	values, err := b.GetInputValues(In2)
	require.NoError(t, err)
	require.Equal(t, &InputValues{
		Port:           In2,
		Valid:          true,
		HasCalibration: true,
		Type:           sensorColorFull,
		Mode:           sensorModeRaw,
		Raw:            1023,
		Normalized:     0x8000,
		Scaled:         -5,
		Calibrated:     -40,
	}, values)
	require.Equal(t, -40, values.Reading())
}

func TestColorModeNamed(t *testing.T) {
	for name, expect := range colorModeNames {
		m, err := ColorModeNamed(name)
		require.NoError(t, err)
		require.Equal(t, expect, m)
		require.Equal(t, name, m.String())
	}
	_, err := ColorModeNamed("purple")
	requireValidationError(t, err)
}
