package firmware

import "github.com/robotalks/rover.go/pkg/firmware/drivers"

// arrowThreshold is the magnitude difference below which two wheel
// speeds count as equal.
const arrowThreshold = 10

// ArrowForSpeeds classifies a pair of signed wheel speeds into the
// direction indicator to display. Pivots (one wheel exactly stopped)
// are classified first so that small magnitudes still read as a pivot;
// the indicator points at the moving side regardless of its sign.
// Mixed nonzero signs fall back to forward.
func ArrowForSpeeds(left, right int) drivers.Indicator {
	switch {
	case left != 0 && right == 0:
		return drivers.IndicatorTurnLeft
	case left == 0 && right != 0:
		return drivers.IndicatorTurnRight
	case left >= 0 && right >= 0:
		if diff := left - right; diff <= arrowThreshold && diff >= -arrowThreshold {
			return drivers.IndicatorForward
		}
		if left > right {
			return drivers.IndicatorTurnLeft
		}
		return drivers.IndicatorTurnRight
	case left <= 0 && right <= 0:
		if diff := left - right; diff <= arrowThreshold && diff >= -arrowThreshold {
			return drivers.IndicatorBackward
		}
		if left < right {
			return drivers.IndicatorTurnLeft
		}
		return drivers.IndicatorTurnRight
	}
	return drivers.IndicatorForward
}
