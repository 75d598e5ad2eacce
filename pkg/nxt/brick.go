package nxt

import (
	"github.com/golang/glog"

	"github.com/robokits/nxt.go/pkg/nxt/wire"
)

// Brick drives a programmable brick over a Transport. It holds no
// state across commands; one Brick expects exclusive, serialized use
// of its transport.
type Brick struct {
	Transport Transport
}

// NewBrick creates a Brick over a transport.
func NewBrick(t Transport) *Brick {
	return &Brick{Transport: t}
}

// frame assembles a command frame: flag, opcode, then each argument's
// encoding in order.
func frame(flag, op byte, args ...wire.Value) []byte {
	size := 2
	for _, arg := range args {
		size += arg.Size()
	}
	b := make([]byte, 2, size)
	b[0], b[1] = flag, op
	for _, arg := range args {
		b = arg.AppendTo(b)
	}
	return b
}

// transmit sends a command with no reply expected.
func (b *Brick) transmit(op byte, args ...wire.Value) error {
	f := frame(telegramDirectNR, op, args...)
	glog.V(6).Infof("transmit % x", f)
	return b.Transport.Transmit(f)
}

// transceive sends a command, validates the reply frame and returns
// the payload with the 3-byte reply header stripped.
func (b *Brick) transceive(op byte, args ...wire.Value) ([]byte, error) {
	f := frame(telegramDirect, op, args...)
	glog.V(6).Infof("transceive % x", f)
	reply, err := b.Transport.Transceive(f)
	if err != nil {
		return nil, err
	}
	glog.V(6).Infof("reply % x", reply)
	if len(reply) < 3 {
		return nil, &BadResponseError{
			Reason: "reply too short",
			Reply:  reply,
		}
	}
	if reply[0] != replyTelegram {
		return nil, &BadResponseError{
			Reason: "reply marker mismatch",
			Reply:  reply,
		}
	}
	if reply[1] != op {
		return nil, &BadResponseError{
			Reason: "opcode echo mismatch",
			Reply:  reply,
		}
	}
	if code := reply[2]; code != statusSuccess {
		return nil, &StatusError{Code: code}
	}
	return reply[3:], nil
}

// Tone frequency range accepted by the brick, in Hz.
const (
	MinToneFrequency = 200
	MaxToneFrequency = 1400
)

// PlayTone plays a tone of freq Hz for durationMs milliseconds.
func (b *Brick) PlayTone(freq, durationMs int) error {
	if freq < MinToneFrequency || freq > MaxToneFrequency {
		return validationErrorf("tone frequency %d out of range [%d, %d]",
			freq, MinToneFrequency, MaxToneFrequency)
	}
	durArg, err := wire.NewU16(durationMs)
	if err != nil {
		return validationErrorf("tone duration: %v", err)
	}
	freqArg, _ := wire.NewU16(freq) // range checked above
	return b.transmit(opPlayTone, freqArg, durArg)
}

// BatteryLevel reads the battery voltage in millivolts.
func (b *Brick) BatteryLevel() (int, error) {
	payload, err := b.transceive(opGetBatteryLevel)
	if err != nil {
		return 0, err
	}
	if len(payload) < 2 {
		return 0, &BadResponseError{
			Reason: "battery level payload too short",
			Reply:  payload,
		}
	}
	return int(wire.Uint16(payload, 0)), nil
}
