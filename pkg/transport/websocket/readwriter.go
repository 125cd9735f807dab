// Package websocket implements frame transport over a websocket
// connection, one frame per text message.
package websocket

import "golang.org/x/net/websocket"

// ReadWriter implements FrameReadWriter.
type ReadWriter websocket.Conn

// New wraps websocket.Conn.
func New(conn *websocket.Conn) *ReadWriter {
	return (*ReadWriter)(conn)
}

// ReadFrame implements FrameReader.
func (p *ReadWriter) ReadFrame() (frame string, err error) {
	err = websocket.Message.Receive((*websocket.Conn)(p), &frame)
	return
}

// WriteFrame implements FrameWriter.
func (p *ReadWriter) WriteFrame(s string) error {
	return websocket.Message.Send((*websocket.Conn)(p), s)
}

// Close closes the connection.
func (p *ReadWriter) Close() error {
	return (*websocket.Conn)(p).Close()
}
