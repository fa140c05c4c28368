package density

import (
	"math"

	"land-audit/core/types"
)

// Status thresholds. The lower limit is fixed policy; the upper limit
// depends on the planning zone (see UpperLimitForZone).
const (
	defaultUpperLimit    = 1.2
	yellowZoneUpperLimit = 1.1
	optimalLowerLimit    = 0.8
)

// ClassifyStatus maps an efficiency index to the five-band audit
// status. With the default upper limit 1.2 the bands are:
//
//	index < 0.7          Under-utilization
//	0.7 <= index < 0.8   Low Density Warning
//	0.8 <= index <= 1.1  Optimal
//	1.1 <  index <= 1.2  High Density Warning
//	index > 1.2          Over-densification
//
// The bands are contiguous and exhaustive over the non-negative reals;
// each boundary is closed exactly once.
func ClassifyStatus(index, upperLimit float64) types.DensityStatus {
	optimalLow := optimalLowerLimit
	// The policy thresholds carry two decimals; derive the inner bounds
	// at that precision so boundary indices land in the band the policy
	// names (0.8-0.1 and 1.2-0.1 both drift low in binary floats).
	optimalHigh := roundPolicy(upperLimit - 0.1)
	underBound := roundPolicy(optimalLow - 0.1)

	switch {
	case index < underBound:
		return types.StatusUnderUtilization
	case index < optimalLow:
		return types.StatusLowDensityWarning
	case index <= optimalHigh:
		return types.StatusOptimal
	case index <= upperLimit:
		return types.StatusHighDensityWarning
	default:
		return types.StatusOverDensification
	}
}

func roundPolicy(v float64) float64 {
	return math.Round(v*100) / 100
}
