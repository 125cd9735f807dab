package firmware

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/rover.go/pkg/firmware/drivers"
)

func TestArrowForSpeeds(t *testing.T) {
	testCases := []struct {
		left, right int
		expect      drivers.Indicator
	}{
		{0, 0, drivers.IndicatorForward},
		{50, 50, drivers.IndicatorForward},
		{53, 46, drivers.IndicatorForward},
		{46, 53, drivers.IndicatorForward},
		{80, 53, drivers.IndicatorTurnLeft},
		{53, 80, drivers.IndicatorTurnRight},
		{-50, -50, drivers.IndicatorBackward},
		{-53, -46, drivers.IndicatorBackward},
		{-80, -53, drivers.IndicatorTurnLeft},
		{-53, -80, drivers.IndicatorTurnRight},
		// pivots point at the moving side, even when the magnitude
		// difference is within the threshold or the mover is negative
		{6, 0, drivers.IndicatorTurnLeft},
		{0, 6, drivers.IndicatorTurnRight},
		{100, 0, drivers.IndicatorTurnLeft},
		{0, 100, drivers.IndicatorTurnRight},
		{-6, 0, drivers.IndicatorTurnLeft},
		{0, -6, drivers.IndicatorTurnRight},
		// mixed nonzero signs default to forward
		{50, -50, drivers.IndicatorForward},
		{-50, 50, drivers.IndicatorForward},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d_%d", tc.left, tc.right), func(t *testing.T) {
			require.Equal(t, tc.expect, ArrowForSpeeds(tc.left, tc.right))
		})
	}
}
