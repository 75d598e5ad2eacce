// Package stream frames brick commands over a byte stream.
package stream

import (
	"encoding/binary"
	"errors"
	"io"
)

// Transport implements nxt.Transport over an io.ReadWriter.
// Each frame is prefixed by 2-byte (little-endian) indicating the
// length, the serial link frame format.
type Transport struct {
	io.ReadWriter
}

// MaxFrameSize is the largest frame the length prefix can carry.
const MaxFrameSize = 0xffff

// ErrFrameTooLarge indicates a frame exceeds MaxFrameSize.
var ErrFrameTooLarge = errors.New("frame too large")

// New creates a Transport over an io.ReadWriter.
func New(rw io.ReadWriter) *Transport {
	return &Transport{rw}
}

// Transmit implements nxt.Transport.
func (t *Transport) Transmit(frame []byte) error {
	return t.writeFrame(frame)
}

// Transceive implements nxt.Transport.
func (t *Transport) Transceive(frame []byte) ([]byte, error) {
	if err := t.writeFrame(frame); err != nil {
		return nil, err
	}
	return t.readFrame()
}

func (t *Transport) writeFrame(frame []byte) error {
	if len(frame) > MaxFrameSize {
		return ErrFrameTooLarge
	}
	size := uint16(len(frame))
	if err := binary.Write(t, binary.LittleEndian, size); err != nil {
		return err
	}
	_, err := t.Write(frame[:size])
	return err
}

func (t *Transport) readFrame() ([]byte, error) {
	var size uint16
	if err := binary.Read(t, binary.LittleEndian, &size); err != nil {
		return nil, err
	}
	frame := make([]byte, size)
	_, err := io.ReadFull(t, frame)
	return frame, err
}
