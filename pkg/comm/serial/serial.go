// Package serial opens brick links over serial device nodes.
package serial

import (
	goserial "go.bug.st/serial"

	"github.com/robokits/nxt.go/pkg/comm/stream"
)

// DefaultBaudRate is used when no baud rate is given.
const DefaultBaudRate = 115200

// Conn is a brick link over a serial device node.
type Conn struct {
	*stream.Transport
	port goserial.Port
}

// Dial opens the serial device node backing a brick link (e.g.
// /dev/rfcomm0) and wraps it in the link framing.
func Dial(device string, baudRate int) (*Conn, error) {
	if baudRate == 0 {
		baudRate = DefaultBaudRate
	}
	port, err := goserial.Open(device, &goserial.Mode{BaudRate: baudRate})
	if err != nil {
		return nil, err
	}
	return &Conn{Transport: stream.New(port), port: port}, nil
}

// Close closes the device.
func (c *Conn) Close() error {
	return c.port.Close()
}
