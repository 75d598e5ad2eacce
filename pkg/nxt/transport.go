package nxt

// Transport is an opaque byte-stream endpoint carrying command and
// reply frames. Implementations own connection setup, framing and
// teardown; no frame-content logic lives in the transport.
type Transport interface {
	// Transmit sends one command frame, fire-and-forget.
	Transmit(frame []byte) error
	// Transceive sends one command frame and blocks until the
	// transport yields exactly one reply frame.
	Transceive(frame []byte) ([]byte, error)
}
