package firmware

import (
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/rover.go/pkg/firmware/drivers"
	"github.com/robotalks/rover.go/pkg/firmware/proto"
)

// driveFor runs one Idle -> Moving -> Stopping -> Idle cycle: show the
// indicator, command the wheels, block for the duration, then settle.
// A non-positive duration skips straight to the stop, but the exit
// telemetry is emitted either way.
func (f *Firmware) driveFor(left, right, durationMs int, ind drivers.Indicator) {
	if durationMs > 0 {
		f.show(ind)
		if err := f.Motor.SetSpeeds(left, right); err != nil {
			glog.Warningf("motor %d/%d: %v", left, right, err)
		}
		f.Sleep(time.Duration(durationMs) * time.Millisecond)
	}
	f.settle()
}

// settle performs the Stopping state and the return to Idle: hard stop,
// one tracking telemetry line, idle indicator.
func (f *Firmware) settle() {
	f.stop()
	f.sendTracking()
	f.show(drivers.IndicatorIdle)
}

// stop commands zero speed, which is the authoritative stop, then
// triggers the hardware stop primitive tolerating its failure, and
// shows a brief stop indicator.
func (f *Firmware) stop() {
	if err := f.Motor.SetSpeeds(0, 0); err != nil {
		glog.Warningf("motor stop: %v", err)
	}
	if err := f.Motor.Stop(); err != nil {
		glog.Warningf("motor stop primitive: %v", err)
	}
	f.show(drivers.IndicatorStop)
}

// trackingState samples both line sensors into a 2-bit code: bit 0 is
// the right sensor, bit 1 the left. Sampled fresh on every call.
func (f *Firmware) trackingState() int {
	left, right, err := f.Sensors.Read()
	if err != nil {
		glog.Warningf("line sensors: %v", err)
	}
	state := 0
	if right {
		state |= 1
	}
	if left {
		state |= 2
	}
	return state
}

func (f *Firmware) sendTracking() {
	f.reply(proto.EncodeTracking(f.trackingState()))
}
