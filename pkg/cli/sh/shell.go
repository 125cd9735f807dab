// Package sh provides the ishell backed rover console.
package sh

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	"github.com/robotalks/rover.go/pkg/env"
	"github.com/robotalks/rover.go/pkg/firmware/proto"
	"github.com/robotalks/rover.go/pkg/transport"
	"github.com/robotalks/rover.go/pkg/transport/mqtt"
	"github.com/robotalks/rover.go/pkg/transport/serial"
)

// Shell provides an interactive console over a rover control link.
type Shell struct {
	Interactive bool

	Shell *ishell.Shell
	Link  transport.FrameReadWriter

	seq     byte
	replyCh chan string
}

const shellKey = "$shell"

var (
	// flags

	evalOnly bool

	// commands
	commands = []*ishell.Cmd{
		&MoveCmd,
		&BackCmd,
		&TurnLeftCmd,
		&TurnRightCmd,
		&GoCmd,
		&StopCmd,
		&LightCmd,
		&BuzzCmd,
		&PingCmd,
		&RawCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
}

// AddCmds is used by other command providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell over an open control link.
func New(link transport.FrameReadWriter) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		Shell:       ishell.New(),
		Link:        link,
		replyCh:     make(chan string, 16),
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt("rover > ")
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	go s.watch()
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// Connect opens the control link specified by conf: serial when a
// device is set, MQTT otherwise.
func Connect(conf *env.Config) (transport.FrameReadWriter, io.Closer, error) {
	if conf.SerialDevice != "" {
		port, err := (&serial.Config{Device: conf.SerialDevice, Baud: conf.SerialBaud}).OpenConsole()
		if err != nil {
			return nil, nil, err
		}
		return port, port, nil
	}
	if conf.MQTTBrokerURL != "" {
		rw, err := mqtt.NewReadWriter(conf.MQTTBrokerURL)
		if err != nil {
			return nil, nil, err
		}
		rw.ForConsole(conf.Topic())
		if err = rw.Connect(); err != nil {
			return nil, nil, err
		}
		go rw.Run(context.Background())
		return rw, rw, nil
	}
	return nil, nil, errors.New("either -serial or -mqtt is required")
}

// SendFrame builds one frame with the next sequence number and sends
// it. args are preformatted fields after the opcode.
func (s *Shell) SendFrame(op string, args ...string) error {
	fields := append([]string{fmt.Sprintf("%02X", s.seq), op}, args...)
	s.seq++
	frame := fmt.Sprintf("%c%s%c", proto.Delimiter, strings.Join(fields, ","), proto.Delimiter)
	glog.V(2).Infof("SND %q", frame)
	return s.Link.WriteFrame(frame)
}

// AwaitReply waits for one response line.
func (s *Shell) AwaitReply(timeout time.Duration) (string, bool) {
	select {
	case reply, ok := <-s.replyCh:
		return reply, ok
	case <-time.After(timeout):
		return "", false
	}
}

func (s *Shell) watch() {
	for {
		frame, err := s.Link.ReadFrame()
		if err != nil {
			close(s.replyCh)
			return
		}
		s.replyCh <- strings.TrimSpace(frame)
	}
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	link, closer, err := Connect(env.NewConfig())
	if err != nil {
		log.Fatalln(err)
	}
	defer closer.Close()
	New(link).Run(flag.Args()...)
}
