// Package transport defines how frames move between the firmware and
// a controller, independent of the underlying link.
package transport

// FrameReader reads inbound frames. ReadFrame returns the raw content
// of one delimiter-bounded frame, without the delimiters.
type FrameReader interface {
	ReadFrame() (string, error)
}

// FrameWriter writes outbound response lines.
type FrameWriter interface {
	WriteFrame(string) error
}

// FrameReadWriter reads frames and writes responses.
type FrameReadWriter interface {
	FrameReader
	FrameWriter
}
