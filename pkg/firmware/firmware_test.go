package firmware

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/rover.go/pkg/firmware/drivers"
	"github.com/robotalks/rover.go/pkg/firmware/drivers/sim"
)

type testLink struct {
	frames []string
	out    []string
}

func (l *testLink) ReadFrame() (string, error) {
	if len(l.frames) == 0 {
		return "", io.EOF
	}
	frame := l.frames[0]
	l.frames = l.frames[1:]
	return frame, nil
}

func (l *testLink) WriteFrame(s string) error {
	l.out = append(l.out, s)
	return nil
}

type testRig struct {
	fw      *Firmware
	link    *testLink
	motor   *sim.Motor
	lights  *sim.Lights
	buzzer  *sim.Buzzer
	sensors *sim.LineSensors
	display *sim.Display
	slept   []time.Duration
}

func newTestRig() *testRig {
	rig := &testRig{
		link:    &testLink{},
		motor:   &sim.Motor{},
		lights:  &sim.Lights{},
		buzzer:  &sim.Buzzer{},
		sensors: &sim.LineSensors{},
		display: &sim.Display{},
	}
	rig.fw = New(rig.link, Hardware{
		Motor:   rig.motor,
		Lights:  rig.lights,
		Buzzer:  rig.buzzer,
		Sensors: rig.sensors,
		Display: rig.display,
	})
	rig.fw.Sleep = func(d time.Duration) {
		rig.slept = append(rig.slept, d)
	}
	return rig
}

func TestStartup(t *testing.T) {
	rig := newTestRig()
	rig.sensors.Set(true, false)
	err := rig.fw.Run(context.Background())
	require.Equal(t, io.EOF, err)
	require.Equal(t, []string{"#TRK,2\n"}, rig.link.out)
	require.Equal(t, drivers.IndicatorIdle, rig.display.Current())
}

func TestRunHandlesFrames(t *testing.T) {
	rig := newTestRig()
	rig.link.frames = []string{"01,MV,8C,1000", "02,ZZ"}
	err := rig.fw.Run(context.Background())
	require.Equal(t, io.EOF, err)
	// startup telemetry, motion telemetry, unknown opcode error
	require.Equal(t, []string{"#TRK,0\n", "#TRK,0\n", "#ERROR,UNKNOWN_OP_ZZ\n"}, rig.link.out)
}

func TestDispatchMotion(t *testing.T) {
	testCases := []struct {
		name      string
		frame     string
		trace     [][2]int
		slept     []time.Duration
		indicator drivers.Indicator
	}{
		{
			name:      "move",
			frame:     "01,MV,8C,1000",
			trace:     [][2]int{{53, 80}, {0, 0}},
			slept:     []time.Duration{time.Second},
			indicator: drivers.IndicatorForward,
		},
		{
			name:      "back",
			frame:     "01,BK,8C,500",
			trace:     [][2]int{{-53, -80}, {0, 0}},
			slept:     []time.Duration{500 * time.Millisecond},
			indicator: drivers.IndicatorBackward,
		},
		{
			name:      "turn left",
			frame:     "01,TL,88,250",
			trace:     [][2]int{{-53, 53}, {0, 0}},
			slept:     []time.Duration{250 * time.Millisecond},
			indicator: drivers.IndicatorTurnLeft,
		},
		{
			name:      "turn right",
			frame:     "01,TR,88,250",
			trace:     [][2]int{{53, -53}, {0, 0}},
			slept:     []time.Duration{250 * time.Millisecond},
			indicator: drivers.IndicatorTurnRight,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rig := newTestRig()
			rig.fw.HandleFrame(tc.frame)
			require.Equal(t, tc.trace, rig.motor.Trace())
			require.Equal(t, tc.slept, rig.slept)
			require.Equal(t, 1, rig.motor.Stops())
			require.Equal(t, []string{"#TRK,0\n"}, rig.link.out)
			require.Equal(t, []drivers.Indicator{
				tc.indicator,
				drivers.IndicatorStop,
				drivers.IndicatorIdle,
			}, rig.display.Trace())
		})
	}
}

func TestDispatchMotionZeroDuration(t *testing.T) {
	rig := newTestRig()
	rig.fw.HandleFrame("01,MV,8C,0")
	require.Empty(t, rig.slept)
	require.Equal(t, [][2]int{{0, 0}}, rig.motor.Trace())
	require.Equal(t, []string{"#TRK,0\n"}, rig.link.out)
}

func TestDispatchMotionRepeatable(t *testing.T) {
	rig := newTestRig()
	rig.sensors.Set(true, true)
	rig.fw.HandleFrame("01,MV,8C,100")
	rig.fw.HandleFrame("01,MV,8C,100")
	require.Equal(t, []string{"#TRK,3\n", "#TRK,3\n"}, rig.link.out)
}

func TestDispatchStop(t *testing.T) {
	rig := newTestRig()
	rig.sensors.Set(false, true)
	rig.fw.HandleFrame("03,SP,FF,9999")
	require.Equal(t, [][2]int{{0, 0}}, rig.motor.Trace())
	require.Equal(t, 1, rig.motor.Stops())
	require.Equal(t, []string{"#TRK,1\n"}, rig.link.out)
}

func TestStopPrimitiveFailureTolerated(t *testing.T) {
	rig := newTestRig()
	rig.motor.StopErr = io.ErrClosedPipe
	rig.fw.HandleFrame("01,SP")
	require.Equal(t, [][2]int{{0, 0}}, rig.motor.Trace())
	require.Equal(t, []string{"#TRK,0\n"}, rig.link.out)
}

func TestDispatchGo(t *testing.T) {
	t.Run("invalid duration", func(t *testing.T) {
		rig := newTestRig()
		rig.fw.HandleFrame("01,GO,8C,0")
		require.Equal(t, []string{"#ERROR,GO_INVALID_ARGS\n"}, rig.link.out)
		require.Equal(t, [][2]int{{0, 0}}, rig.motor.Trace())
		require.Empty(t, rig.slept)
	})

	t.Run("negative duration", func(t *testing.T) {
		rig := newTestRig()
		rig.fw.HandleFrame("01,GO,8C,-100")
		require.Equal(t, []string{"#ERROR,GO_INVALID_ARGS\n"}, rig.link.out)
	})

	t.Run("zero speeds silent", func(t *testing.T) {
		rig := newTestRig()
		rig.fw.HandleFrame("01,GO,00,500")
		require.Empty(t, rig.link.out)
		require.Empty(t, rig.motor.Trace())
		require.Equal(t, drivers.IndicatorIdle, rig.display.Current())
	})

	t.Run("dynamic indicator", func(t *testing.T) {
		rig := newTestRig()
		rig.fw.HandleFrame("01,GO,F0,500")
		require.Equal(t, [][2]int{{100, 0}, {0, 0}}, rig.motor.Trace())
		require.Equal(t, drivers.IndicatorTurnLeft, rig.display.Trace()[0])
		require.Equal(t, []string{"#TRK,0\n"}, rig.link.out)
	})

	t.Run("straight ahead", func(t *testing.T) {
		rig := newTestRig()
		rig.fw.HandleFrame("01,GO,FF,500")
		require.Equal(t, drivers.IndicatorForward, rig.display.Trace()[0])
	})
}

func TestDispatchLights(t *testing.T) {
	t.Run("packed rgb", func(t *testing.T) {
		rig := newTestRig()
		rig.fw.HandleFrame("01,HL,FF,128,64")
		r, g, b := rig.lights.Color()
		require.Equal(t, [3]byte{0xff, 128, 64}, [3]byte{r, g, b})
		require.Empty(t, rig.link.out)
	})

	t.Run("boolean on", func(t *testing.T) {
		rig := newTestRig()
		rig.fw.HandleFrame("01,HL,01")
		r, g, b := rig.lights.Color()
		require.Equal(t, [3]byte{0xff, 0xff, 0xff}, [3]byte{r, g, b})
	})

	t.Run("boolean off", func(t *testing.T) {
		rig := newTestRig()
		rig.fw.HandleFrame("01,HL,00")
		require.Equal(t, 1, rig.lights.Sets())
		r, g, b := rig.lights.Color()
		require.Equal(t, [3]byte{0, 0, 0}, [3]byte{r, g, b})
	})
}

func TestDispatchBuzzer(t *testing.T) {
	testCases := []struct {
		name     string
		frame    string
		freqHz   int
		duration time.Duration
	}{
		{"plain", "01,BZ,03,232,50", 1000, 500 * time.Millisecond},
		{"clamped high", "01,BZ,FF,255,1", 5000, 10 * time.Millisecond},
		{"clamped low", "01,BZ,00,80,1", 100, 10 * time.Millisecond},
		{"default duration", "01,BZ,04,0,0", 1024, 100 * time.Millisecond},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rig := newTestRig()
			rig.fw.HandleFrame(tc.frame)
			freqHz, duration := rig.buzzer.LastTone()
			require.Equal(t, tc.freqHz, freqHz)
			require.Equal(t, tc.duration, duration)
			require.Empty(t, rig.link.out)
		})
	}
}

func TestDispatchEcho(t *testing.T) {
	rig := newTestRig()
	rig.fw.HandleFrame("01,EC")
	require.Empty(t, rig.link.out)
	require.Empty(t, rig.motor.Trace())
}

func TestHandleFrameParseFail(t *testing.T) {
	for _, frame := range []string{"", ";;", ",", "01"} {
		rig := newTestRig()
		rig.fw.HandleFrame(frame)
		require.Equal(t, []string{"#ERROR,PARSE_FAIL\n"}, rig.link.out)
		require.Empty(t, rig.motor.Trace())
	}
}

func TestUnknownOpcode(t *testing.T) {
	rig := newTestRig()
	rig.fw.HandleFrame("01,ZZ,8C,1000")
	require.Equal(t, []string{"#ERROR,UNKNOWN_OP_ZZ\n"}, rig.link.out)
	require.Empty(t, rig.motor.Trace())
	require.Empty(t, rig.display.Trace())
}

func TestTrackingStates(t *testing.T) {
	testCases := []struct {
		left, right bool
		expect      string
	}{
		{false, false, "#TRK,0\n"},
		{false, true, "#TRK,1\n"},
		{true, false, "#TRK,2\n"},
		{true, true, "#TRK,3\n"},
	}

	for _, tc := range testCases {
		rig := newTestRig()
		rig.sensors.Set(tc.left, tc.right)
		rig.fw.HandleFrame("01,SP")
		require.Equal(t, []string{tc.expect}, rig.link.out)
	}
}
