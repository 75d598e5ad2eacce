package nxt

import (
	"fmt"
	"strconv"
)

// OutputPort identifies a motor port.
type OutputPort byte

// Motor ports.
const (
	OutA OutputPort = 0
	OutB OutputPort = 1
	OutC OutputPort = 2
	// OutAll addresses all motor ports at once. Only accepted by
	// broadcast-capable commands.
	OutAll OutputPort = 0xff
)

var outputPortNames = map[string]OutputPort{
	"a":   OutA,
	"b":   OutB,
	"c":   OutC,
	"all": OutAll,
}

// OutputPortNamed maps a symbolic port name (a, b, c, all) to an
// OutputPort.
func OutputPortNamed(name string) (OutputPort, error) {
	p, ok := outputPortNames[name]
	if !ok {
		return 0, validationErrorf("unknown motor port %q", name)
	}
	return p, nil
}

// String returns the symbolic port name.
func (p OutputPort) String() string {
	switch p {
	case OutA:
		return "a"
	case OutB:
		return "b"
	case OutC:
		return "c"
	case OutAll:
		return "all"
	}
	return fmt.Sprintf("out(%#02x)", byte(p))
}

func (p OutputPort) valid(broadcast bool) error {
	switch p {
	case OutA, OutB, OutC:
		return nil
	case OutAll:
		if broadcast {
			return nil
		}
		return validationErrorf("motor port all not accepted by this command")
	}
	return validationErrorf("unknown motor port %#02x", byte(p))
}

// InputPort identifies a sensor port. Caller-facing numbering is 1-4,
// the wire code is 0-3.
type InputPort byte

// Sensor ports.
const (
	In1 InputPort = 0
	In2 InputPort = 1
	In3 InputPort = 2
	In4 InputPort = 3
)

// InputPortNumbered maps a caller-facing sensor port number (1-4) to
// an InputPort.
func InputPortNumbered(n int) (InputPort, error) {
	if n < 1 || n > 4 {
		return 0, validationErrorf("unknown sensor port %d", n)
	}
	return InputPort(n - 1), nil
}

// String returns the caller-facing port number.
func (p InputPort) String() string {
	return strconv.Itoa(int(p) + 1)
}

func (p InputPort) valid() error {
	if p > In4 {
		return validationErrorf("unknown sensor port %#02x", byte(p))
	}
	return nil
}
