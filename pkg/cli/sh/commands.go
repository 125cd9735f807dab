package sh

import (
	"fmt"
	"strconv"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/rover.go/pkg/firmware"
	"github.com/robotalks/rover.go/pkg/firmware/proto"
)

// replySlack is added to the expected motion duration when waiting for
// telemetry.
const replySlack = time.Second

func driveArgs(args []string) (pack byte, durationMs int, err error) {
	if len(args) < 3 {
		return 0, 0, fmt.Errorf("LEFT RIGHT DURATION_MS required")
	}
	left, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid LEFT: %v", err)
	}
	right, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid RIGHT: %v", err)
	}
	durationMs, err = strconv.Atoi(args[2])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid DURATION_MS: %v", err)
	}
	return proto.PackSpeeds(left, right), durationMs, nil
}

func driveFunc(op string) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		s := ShellFrom(c)
		pack, durationMs, err := driveArgs(c.Args)
		if err != nil {
			c.Err(err)
			return
		}
		if err = s.SendFrame(op, fmt.Sprintf("%02X", pack), strconv.Itoa(durationMs)); err != nil {
			c.Err(err)
			return
		}
		printReply(c, time.Duration(durationMs)*time.Millisecond+replySlack)
	}
}

func printReply(c *ishell.Context, timeout time.Duration) {
	reply, ok := ShellFrom(c).AwaitReply(timeout)
	if !ok {
		c.Err(fmt.Errorf("no response"))
		return
	}
	c.Println(reply)
}

var (
	// MoveCmd drives forward.
	MoveCmd = ishell.Cmd{
		Name:    "mv",
		Aliases: []string{"move"},
		Help:    "LEFT RIGHT DURATION_MS (speeds 0-100)",
		Func:    driveFunc(firmware.OpMove),
	}

	// BackCmd drives backward.
	BackCmd = ishell.Cmd{
		Name:    "bk",
		Aliases: []string{"back"},
		Help:    "LEFT RIGHT DURATION_MS (speeds 0-100)",
		Func:    driveFunc(firmware.OpBack),
	}

	// TurnLeftCmd turns in place to the left.
	TurnLeftCmd = ishell.Cmd{
		Name:    "tl",
		Aliases: []string{"left"},
		Help:    "LEFT RIGHT DURATION_MS (speeds 0-100)",
		Func:    driveFunc(firmware.OpTurnLeft),
	}

	// TurnRightCmd turns in place to the right.
	TurnRightCmd = ishell.Cmd{
		Name:    "tr",
		Aliases: []string{"right"},
		Help:    "LEFT RIGHT DURATION_MS (speeds 0-100)",
		Func:    driveFunc(firmware.OpTurnRight),
	}

	// GoCmd drives with a firmware-chosen direction indicator.
	GoCmd = ishell.Cmd{
		Name: "go",
		Help: "LEFT RIGHT DURATION_MS (speeds 0-100)",
		Func: driveFunc(firmware.OpGo),
	}

	// StopCmd stops the rover and reports tracking state.
	StopCmd = ishell.Cmd{
		Name:    "stop",
		Aliases: []string{"sp", "track"},
		Help:    "",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			if err := s.SendFrame(firmware.OpStop); err != nil {
				c.Err(err)
				return
			}
			printReply(c, replySlack)
		},
	}

	// LightCmd controls the RGB lights.
	LightCmd = ishell.Cmd{
		Name: "light",
		Help: "R G B (0-255) | on | off",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			var err error
			switch {
			case len(c.Args) == 1 && c.Args[0] == "on":
				err = s.SendFrame(firmware.OpLights, "01")
			case len(c.Args) == 1 && c.Args[0] == "off":
				err = s.SendFrame(firmware.OpLights, "00")
			case len(c.Args) >= 3:
				var rgb [3]int
				for i := 0; i < 3; i++ {
					if rgb[i], err = strconv.Atoi(c.Args[i]); err != nil {
						c.Err(fmt.Errorf("invalid color component: %v", err))
						return
					}
				}
				err = s.SendFrame(firmware.OpLights,
					fmt.Sprintf("%02X", byte(rgb[0])),
					strconv.Itoa(rgb[1]), strconv.Itoa(rgb[2]))
			default:
				c.Err(fmt.Errorf("R G B, on or off required"))
				return
			}
			if err != nil {
				c.Err(err)
			}
		},
	}

	// BuzzCmd plays a tone.
	BuzzCmd = ishell.Cmd{
		Name: "buzz",
		Help: "FREQ_HZ [DURATION_MS]",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("FREQ_HZ required"))
				return
			}
			freq, err := strconv.Atoi(c.Args[0])
			if err != nil {
				c.Err(fmt.Errorf("invalid FREQ_HZ: %v", err))
				return
			}
			durationMs := 100
			if len(c.Args) > 1 {
				if durationMs, err = strconv.Atoi(c.Args[1]); err != nil {
					c.Err(fmt.Errorf("invalid DURATION_MS: %v", err))
					return
				}
			}
			err = s.SendFrame(firmware.OpBuzzer,
				fmt.Sprintf("%02X", byte(freq>>8)),
				strconv.Itoa(freq&0xff),
				strconv.Itoa(durationMs/10))
			if err != nil {
				c.Err(err)
			}
		},
	}

	// PingCmd sends a no-op frame.
	PingCmd = ishell.Cmd{
		Name:    "ping",
		Aliases: []string{"ec"},
		Help:    "",
		Func: func(c *ishell.Context) {
			if err := ShellFrom(c).SendFrame(firmware.OpEcho); err != nil {
				c.Err(err)
			}
		},
	}

	// RawCmd sends the arguments as one raw frame body.
	RawCmd = ishell.Cmd{
		Name: "raw",
		Help: "SEQ,OP,ARG1,ARG2[,ARG3]",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("frame body required"))
				return
			}
			s := ShellFrom(c)
			frame := fmt.Sprintf("%c%s%c", proto.Delimiter, c.Args[0], proto.Delimiter)
			if err := s.Link.WriteFrame(frame); err != nil {
				c.Err(err)
				return
			}
			if reply, ok := s.AwaitReply(replySlack); ok {
				c.Println(reply)
			}
		},
	}
)
