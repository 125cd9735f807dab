// Package drivers defines the hardware capability interfaces the
// firmware core drives. Implementations own the actual pins/buses;
// the core only ever talks to these interfaces.
package drivers

import "time"

// Indicator is a visual status shown on the rover's display.
type Indicator int

// Indicators
const (
	IndicatorIdle Indicator = iota
	IndicatorForward
	IndicatorBackward
	IndicatorTurnLeft
	IndicatorTurnRight
	IndicatorStop
)

var indicatorNames = []string{"idle", "forward", "backward", "turn-left", "turn-right", "stop"}

// String implements Stringer.
func (i Indicator) String() string {
	if i < 0 || int(i) >= len(indicatorNames) {
		return "unknown"
	}
	return indicatorNames[i]
}

// Motor drives the two wheels of the differential base.
type Motor interface {
	// SetSpeeds commands signed wheel speeds in -100..100.
	SetSpeeds(left, right int) error
	// Stop triggers the hardware's explicit stop. A zero-speed
	// SetSpeeds remains the authoritative stop; callers may tolerate
	// failures from Stop.
	Stop() error
}

// Lights controls the RGB lights as one unit.
type Lights interface {
	SetColor(r, g, b byte) error
}

// Buzzer generates tones.
type Buzzer interface {
	Tone(freqHz int, duration time.Duration) error
}

// LineSensors samples the two binary line sensors. The sensors are
// active-low at the pin level; implementations report plain detection.
type LineSensors interface {
	Read() (left, right bool, err error)
}

// Display renders the status indicator.
type Display interface {
	Show(Indicator) error
}
