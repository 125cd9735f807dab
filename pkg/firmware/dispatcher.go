package firmware

import (
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/rover.go/pkg/firmware/drivers"
	"github.com/robotalks/rover.go/pkg/firmware/proto"
)

// Opcodes
const (
	OpMove      = "MV"
	OpBack      = "BK"
	OpTurnLeft  = "TL"
	OpTurnRight = "TR"
	OpStop      = "SP"
	OpGo        = "GO"
	OpLights    = "HL"
	OpBuzzer    = "BZ"
	OpEcho      = "EC"
)

// Tone limits for the buzzer.
const (
	minToneHz = 100
	maxToneHz = 5000
)

// Dispatch routes one parsed command to its action. It is stateless:
// every invocation starts and ends in the Idle state.
func (f *Firmware) Dispatch(cmd *proto.Command) {
	switch cmd.Op {
	case OpMove:
		left, right := proto.SplitSpeeds(cmd.Arg1)
		f.driveFor(left, right, cmd.Arg2, drivers.IndicatorForward)
	case OpBack:
		left, right := proto.SplitSpeeds(cmd.Arg1)
		f.driveFor(-left, -right, cmd.Arg2, drivers.IndicatorBackward)
	case OpTurnLeft:
		left, right := proto.SplitSpeeds(cmd.Arg1)
		f.driveFor(-left, right, cmd.Arg2, drivers.IndicatorTurnLeft)
	case OpTurnRight:
		left, right := proto.SplitSpeeds(cmd.Arg1)
		f.driveFor(left, -right, cmd.Arg2, drivers.IndicatorTurnRight)
	case OpStop:
		f.settle()
	case OpGo:
		f.dispatchGo(cmd)
	case OpLights:
		f.dispatchLights(cmd)
	case OpBuzzer:
		f.dispatchBuzzer(cmd)
	case OpEcho:
		// no-op, no response
	default:
		f.reply(proto.EncodeError(&proto.UnknownOpcodeError{Op: cmd.Op}))
	}
}

func (f *Firmware) dispatchGo(cmd *proto.Command) {
	left, right := proto.SplitSpeeds(cmd.Arg1)
	if cmd.Arg2 <= 0 {
		f.stop()
		f.reply(proto.EncodeError(&proto.InvalidArgsError{Op: cmd.Op}))
		return
	}
	if left == 0 && right == 0 {
		f.show(drivers.IndicatorIdle)
		return
	}
	f.driveFor(left, right, cmd.Arg2, ArrowForSpeeds(left, right))
}

func (f *Firmware) dispatchLights(cmd *proto.Command) {
	var r, g, b byte
	switch {
	case cmd.Arg2 > 0 || cmd.Arg3 > 0:
		r, g, b = cmd.Arg1, byte(cmd.Arg2), byte(cmd.Arg3)
	case cmd.Arg1 != 0:
		r, g, b = 0xff, 0xff, 0xff
	}
	if err := f.Lights.SetColor(r, g, b); err != nil {
		glog.Warningf("lights: %v", err)
	}
}

func (f *Firmware) dispatchBuzzer(cmd *proto.Command) {
	freq := int(cmd.Arg1)<<8 | cmd.Arg2&0xff
	if freq < minToneHz {
		freq = minToneHz
	} else if freq > maxToneHz {
		freq = maxToneHz
	}
	durationMs := (cmd.Arg3 & 0xff) * 10
	if durationMs <= 0 {
		durationMs = 100
	}
	if err := f.Buzzer.Tone(freq, time.Duration(durationMs)*time.Millisecond); err != nil {
		glog.Warningf("buzzer: %v", err)
	}
}
