// Package stream implements frame transport over a byte stream.
package stream

import (
	"bufio"
	"io"
	"strings"

	"github.com/robotalks/rover.go/pkg/firmware/proto"
)

// ReadWriter implements FrameReadWriter over an io.ReadWriter such as
// a serial port. Inbound bytes are split on the frame delimiter;
// anything between two delimiters is one frame. Empty segments (e.g.
// the gap in "...;;...") are skipped, so back-to-back frames and line
// noise between frames are tolerated.
type ReadWriter struct {
	rw io.ReadWriter
	br *bufio.Reader
}

// New creates a ReadWriter over a byte stream.
func New(rw io.ReadWriter) *ReadWriter {
	return &ReadWriter{rw: rw, br: bufio.NewReader(rw)}
}

// ReadFrame implements FrameReader.
func (p *ReadWriter) ReadFrame() (string, error) {
	for {
		s, err := p.br.ReadString(proto.Delimiter)
		if err != nil {
			return "", err
		}
		if s = s[:len(s)-1]; s != "" {
			return s, nil
		}
	}
}

// WriteFrame implements FrameWriter. Responses are written verbatim;
// they carry their own terminator.
func (p *ReadWriter) WriteFrame(s string) error {
	_, err := io.WriteString(p.rw, s)
	return err
}

// Close closes the underlying stream if it supports closing.
func (p *ReadWriter) Close() error {
	if closer, ok := p.rw.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Console is the controller-side counterpart of ReadWriter: inbound
// response lines are split on '\n', outbound frames (which carry their
// own delimiters) are written verbatim.
type Console struct {
	rw io.ReadWriter
	br *bufio.Reader
}

// NewConsole creates a Console over a byte stream.
func NewConsole(rw io.ReadWriter) *Console {
	return &Console{rw: rw, br: bufio.NewReader(rw)}
}

// ReadFrame implements FrameReader. It returns one response line
// without the trailing newline.
func (p *Console) ReadFrame() (string, error) {
	for {
		s, err := p.br.ReadString('\n')
		if err != nil {
			return "", err
		}
		if s = strings.TrimRight(s, "\r\n"); s != "" {
			return s, nil
		}
	}
}

// WriteFrame implements FrameWriter.
func (p *Console) WriteFrame(s string) error {
	_, err := io.WriteString(p.rw, s)
	return err
}
