package nxt

// Telegram flag bytes. Every command frame starts with one of these.
const (
	telegramDirect   byte = 0x00 // direct command, response required
	telegramDirectNR byte = 0x80 // direct command, no response
)

// replyTelegram is the first byte of every reply frame.
const replyTelegram byte = 0x02

// statusSuccess is the status byte of a successful reply. Any other
// value is a device error code, opaque at this layer.
const statusSuccess byte = 0x00

// Direct command opcodes from the published brick command set.
const (
	opPlayTone           byte = 0x03
	opSetOutputState     byte = 0x04
	opSetInputMode       byte = 0x05
	opGetInputValues     byte = 0x07
	opResetMotorPosition byte = 0x0a
	opGetBatteryLevel    byte = 0x0b
)

// Color sensor type codes.
const (
	sensorColorFull  byte = 0x0d
	sensorColorRed   byte = 0x0e
	sensorColorGreen byte = 0x0f
	sensorColorBlue  byte = 0x10
	sensorColorNone  byte = 0x11
)

// sensorModeRaw reports sensor readings without post-processing.
const sensorModeRaw byte = 0x00
