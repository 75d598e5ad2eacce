// Package websocket carries brick frames over a websocket link bridge.
package websocket

import "golang.org/x/net/websocket"

// Transport implements nxt.Transport. Each websocket message carries
// one frame, so no length prefix is needed.
type Transport websocket.Conn

// New wraps websocket.Conn.
func New(conn *websocket.Conn) *Transport {
	return (*Transport)(conn)
}

// Dial connects to a remote link bridge.
func Dial(url, origin string) (*Transport, error) {
	conn, err := websocket.Dial(url, "", origin)
	if err != nil {
		return nil, err
	}
	return New(conn), nil
}

// Transmit implements nxt.Transport.
func (t *Transport) Transmit(frame []byte) error {
	return websocket.Message.Send((*websocket.Conn)(t), frame)
}

// Transceive implements nxt.Transport.
func (t *Transport) Transceive(frame []byte) (reply []byte, err error) {
	if err = t.Transmit(frame); err != nil {
		return
	}
	err = websocket.Message.Receive((*websocket.Conn)(t), &reply)
	return
}

// Close closes the connection.
func (t *Transport) Close() error {
	return (*websocket.Conn)(t).Close()
}
