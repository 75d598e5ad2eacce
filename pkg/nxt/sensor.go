package nxt

import (
	"fmt"

	"github.com/robokits/nxt.go/pkg/nxt/wire"
)

// ColorMode selects the color sensor filter.
type ColorMode int

// Color sensor filter modes.
const (
	// ColorFull enables full color detection.
	ColorFull ColorMode = iota
	// ColorRed reads reflected light with the red lamp.
	ColorRed
	// ColorGreen reads reflected light with the green lamp.
	ColorGreen
	// ColorBlue reads reflected light with the blue lamp.
	ColorBlue
	// ColorNone reads ambient light with all lamps off. This is
	// also the disabled mode the sensor is reset to after a read.
	ColorNone
)

var colorModeNames = map[string]ColorMode{
	"full":  ColorFull,
	"red":   ColorRed,
	"green": ColorGreen,
	"blue":  ColorBlue,
	"none":  ColorNone,
}

// ColorModeNamed maps a symbolic name (full, red, green, blue, none)
// to a ColorMode.
func ColorModeNamed(name string) (ColorMode, error) {
	m, ok := colorModeNames[name]
	if !ok {
		return 0, validationErrorf("unknown color mode %q", name)
	}
	return m, nil
}

// String returns the symbolic mode name.
func (m ColorMode) String() string {
	switch m {
	case ColorFull:
		return "full"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorNone:
		return "none"
	}
	return fmt.Sprintf("color(%d)", int(m))
}

// sensorType returns the wire sensor type code of the mode.
func (m ColorMode) sensorType() (byte, error) {
	switch m {
	case ColorFull:
		return sensorColorFull, nil
	case ColorRed:
		return sensorColorRed, nil
	case ColorGreen:
		return sensorColorGreen, nil
	case ColorBlue:
		return sensorColorBlue, nil
	case ColorNone:
		return sensorColorNone, nil
	}
	return 0, validationErrorf("unknown color mode %d", int(m))
}

// InputValues is the decoded payload of a get-input-values reply.
type InputValues struct {
	Port           InputPort
	Valid          bool
	HasCalibration bool
	Type           byte
	Mode           byte
	Raw            uint16
	Normalized     uint16
	Scaled         int16
	Calibrated     int16
}

// inputValuesLen is the payload length of a get-input-values reply.
const inputValuesLen = 13

// Reading returns the calibrated reading when calibration data is
// present, the scaled reading otherwise.
func (v *InputValues) Reading() int {
	if v.HasCalibration {
		return int(v.Calibrated)
	}
	return int(v.Scaled)
}

// SetInputMode configures the sensor type and mode of a port.
func (b *Brick) SetInputMode(port InputPort, sensorType, sensorMode byte) error {
	if err := port.valid(); err != nil {
		return err
	}
	return b.transmit(opSetInputMode,
		wire.Byte(byte(port)), wire.Byte(sensorType), wire.Byte(sensorMode))
}

// GetInputValues polls the current values of a sensor port.
func (b *Brick) GetInputValues(port InputPort) (*InputValues, error) {
	if err := port.valid(); err != nil {
		return nil, err
	}
	payload, err := b.transceive(opGetInputValues, wire.Byte(byte(port)))
	if err != nil {
		return nil, err
	}
	if len(payload) < inputValuesLen {
		return nil, &BadResponseError{
			Reason: "input values payload too short",
			Reply:  payload,
		}
	}
	return &InputValues{
		Port:           InputPort(payload[0]),
		Valid:          payload[1] != 0,
		HasCalibration: payload[2] != 0,
		Type:           payload[3],
		Mode:           payload[4],
		Raw:            wire.Uint16(payload, 5),
		Normalized:     wire.Uint16(payload, 7),
		Scaled:         wire.Int16(payload, 9),
		Calibrated:     wire.Int16(payload, 11),
	}, nil
}

// ReadColor samples the color sensor on port with the requested filter
// mode. The sensor is configured for the mode, sampled once, and reset
// to the disabled mode on every exit path unless mode is already
// ColorNone. A reset failure never masks an earlier error.
func (b *Brick) ReadColor(port InputPort, mode ColorMode) (reading int, err error) {
	sensorType, err := mode.sensorType()
	if err != nil {
		return 0, err
	}
	if err = port.valid(); err != nil {
		return 0, err
	}
	if err = b.SetInputMode(port, sensorType, sensorModeRaw); err != nil {
		return 0, err
	}
	if mode != ColorNone {
		defer func() {
			if rerr := b.SetInputMode(port, sensorColorNone, sensorModeRaw); err == nil {
				err = rerr
			}
		}()
	}
	values, err := b.GetInputValues(port)
	if err != nil {
		return 0, err
	}
	return values.Reading(), nil
}
