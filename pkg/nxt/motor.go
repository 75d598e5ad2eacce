package nxt

import (
	"github.com/robokits/nxt.go/pkg/nxt/wire"
)

// Motor power range accepted by the brick.
const (
	MinMotorPower = -100
	MaxMotorPower = 100
)

// Fixed output-state arguments for the simplified run command.
const (
	motorModeOn          byte = 0x01
	motorRegulationIdle  byte = 0x00
	motorRunStateRunning byte = 0x20
)

// ResetMotorPosition resets the tachometer of a motor port. relative
// resets relative to the last movement instead of the absolute zero.
// OutAll is not accepted.
func (b *Brick) ResetMotorPosition(port OutputPort, relative bool) error {
	if err := port.valid(false); err != nil {
		return err
	}
	return b.transmit(opResetMotorPosition,
		wire.Byte(byte(port)), wire.NewBool(relative))
}

// RunMotor runs a motor at power in [-100, 100]. OutAll runs all motor
// ports at once.
func (b *Brick) RunMotor(port OutputPort, power int) error {
	if err := port.valid(true); err != nil {
		return err
	}
	if power < MinMotorPower || power > MaxMotorPower {
		return validationErrorf("motor power %d out of range [%d, %d]",
			power, MinMotorPower, MaxMotorPower)
	}
	powerArg, _ := wire.NewS8(power) // range checked above
	tachoLimit, _ := wire.NewS32(0)  // run with no tachometer limit
	return b.transmit(opSetOutputState,
		wire.Byte(byte(port)),
		powerArg,
		wire.Byte(motorModeOn),
		wire.Byte(motorRegulationIdle),
		wire.Byte(0), // turn ratio
		wire.Byte(motorRunStateRunning),
		tachoLimit,
	)
}

// StopMotor stops a motor by running it with power 0. It is not a
// separate wire command.
func (b *Brick) StopMotor(port OutputPort) error {
	return b.RunMotor(port, 0)
}
