package telemetry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robokits/nxt.go/pkg/nxt"
)

// scriptedTransport plays back reply frames for transceive calls.
type scriptedTransport struct {
	replies [][]byte
}

func (s *scriptedTransport) Transmit([]byte) error { return nil }

func (s *scriptedTransport) Transceive([]byte) ([]byte, error) {
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return reply, nil
}

func TestPoll(t *testing.T) {
	brick := nxt.NewBrick(&scriptedTransport{replies: [][]byte{
		{0x02, 0x0b, 0x00, 0x10, 0x27},
	}})
	p := &Publisher{Brick: brick, Name: "host/brick"}

	reading, err := p.poll()
	require.NoError(t, err)
	require.Equal(t, 10000, reading.BatteryMv)
	require.Nil(t, reading.Light)
	require.Equal(t, "host/brick/readings", p.Topic())
}

func TestPollWithSensor(t *testing.T) {
	brick := nxt.NewBrick(&scriptedTransport{replies: [][]byte{
		{0x02, 0x0b, 0x00, 0x10, 0x27},
		{0x02, 0x07, 0x00,
			0x00, 1, 0, 0x0e, 0x00, 0x00, 0x00, 0x00, 0x00, 42, 0x00, 0x00, 0x00},
	}})
	p := &Publisher{
		Brick:  brick,
		Name:   "host/brick",
		Sensor: &SensorPoll{Port: nxt.In1, Mode: nxt.ColorRed},
	}

	reading, err := p.poll()
	require.NoError(t, err)
	require.Equal(t, 10000, reading.BatteryMv)
	require.NotNil(t, reading.Light)
	require.Equal(t, 42, *reading.Light)
}
