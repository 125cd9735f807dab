// Package firmware implements the command-execution engine of the
// rover: it decodes frames from the control link, drives the hardware
// capability interfaces, and reports telemetry.
package firmware

import (
	"context"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/rover.go/pkg/firmware/drivers"
	"github.com/robotalks/rover.go/pkg/firmware/proto"
	"github.com/robotalks/rover.go/pkg/transport"
)

// Hardware groups the capability interfaces the engine drives.
type Hardware struct {
	Motor   drivers.Motor
	Lights  drivers.Lights
	Buzzer  drivers.Buzzer
	Sensors drivers.LineSensors
	Display drivers.Display
}

// Firmware is the engine. It owns the hardware exclusively and runs in
// exactly one goroutine: each frame is handled to completion, blocking
// waits included, before the next frame is read. The transport's
// buffering queues frames that arrive meanwhile.
type Firmware struct {
	Hardware

	// Sleep is the blocking wait used during motion. Defaults to
	// time.Sleep; tests substitute it to avoid wall time.
	Sleep func(time.Duration)

	link transport.FrameReadWriter
}

// New creates the engine over a control link.
func New(link transport.FrameReadWriter, hw Hardware) *Firmware {
	return &Firmware{Hardware: hw, Sleep: time.Sleep, link: link}
}

// Run shows the idle indicator, reports tracking state once, then
// handles frames until the context is canceled or the link fails.
// Closing the link is the only way to interrupt a blocked read.
func (f *Firmware) Run(ctx context.Context) error {
	f.show(drivers.IndicatorIdle)
	f.sendTracking()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		frame, err := f.link.ReadFrame()
		if err != nil {
			return err
		}
		f.HandleFrame(frame)
	}
}

// HandleFrame decodes one raw frame and executes it synchronously.
func (f *Firmware) HandleFrame(raw string) {
	cmd, err := proto.ParseFrame(raw)
	if err != nil {
		glog.V(2).Infof("RCV %q: %v", raw, err)
		f.reply(proto.EncodeError(err))
		return
	}
	if glog.V(2) {
		glog.Infof("RCV seq=%02x op=%s", cmd.Seq, cmd.Op)
	}
	f.Dispatch(cmd)
}

func (f *Firmware) reply(s string) {
	if err := f.link.WriteFrame(s); err != nil {
		glog.Warningf("send response: %v", err)
	}
}

func (f *Firmware) show(ind drivers.Indicator) {
	if err := f.Display.Show(ind); err != nil {
		glog.Warningf("display %v: %v", ind, err)
	}
}
