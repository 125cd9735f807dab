// Package serial implements frame transport over a serial port.
package serial

import (
	"github.com/golang/glog"
	goserial "go.bug.st/serial"

	"github.com/robotalks/rover.go/pkg/transport/stream"
)

// Config specifies the serial link.
type Config struct {
	Device string
	Baud   int
}

// Port is an open serial link carrying frames.
type Port struct {
	*stream.ReadWriter

	port goserial.Port
}

// Open opens the serial port and wraps it with frame framing.
func (c *Config) Open() (*Port, error) {
	baud := c.Baud
	if baud == 0 {
		baud = 9600
	}
	port, err := goserial.Open(c.Device, &goserial.Mode{BaudRate: baud})
	if err != nil {
		return nil, err
	}
	glog.Infof("serial %s @%d", c.Device, baud)
	return &Port{ReadWriter: stream.New(port), port: port}, nil
}

// Close closes the port.
func (p *Port) Close() error {
	return p.port.Close()
}

// Console is an open serial link from the controller side: outbound
// frames, inbound response lines.
type Console struct {
	*stream.Console

	port goserial.Port
}

// OpenConsole opens the serial port for the controller side.
func (c *Config) OpenConsole() (*Console, error) {
	baud := c.Baud
	if baud == 0 {
		baud = 9600
	}
	port, err := goserial.Open(c.Device, &goserial.Mode{BaudRate: baud})
	if err != nil {
		return nil, err
	}
	glog.Infof("serial %s @%d", c.Device, baud)
	return &Console{Console: stream.NewConsole(port), port: port}, nil
}

// Close closes the port.
func (p *Console) Close() error {
	return p.port.Close()
}
