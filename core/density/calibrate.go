package density

import "math"

// Sample is one empirical (distance, observed density) observation
type Sample struct {
	DistanceKm float64
	Density    float64
}

// Calibrate estimates (D0, g) from empirical samples by ordinary
// least-squares on the log-linearized model:
//
//	ln D(x) = ln D0 - g*x
//
// Samples with non-positive density cannot be log-linearized and are
// dropped. Returns the (0, 0) sentinel when fewer than two usable
// samples remain or when all distances are identical; callers must
// check for the sentinel before trusting the fit.
func Calibrate(samples []Sample) (estimatedD0, estimatedG float64) {
	xs := make([]float64, 0, len(samples))
	lnYs := make([]float64, 0, len(samples))
	for _, s := range samples {
		if s.Density > 0 {
			xs = append(xs, s.DistanceKm)
			lnYs = append(lnYs, math.Log(s.Density))
		}
	}

	if len(xs) < 2 {
		return 0, 0
	}

	xMean, yMean := mean(xs), mean(lnYs)

	var numerator, denominator float64
	for i := range xs {
		numerator += (xs[i] - xMean) * (lnYs[i] - yMean)
		denominator += (xs[i] - xMean) * (xs[i] - xMean)
	}

	if denominator == 0 {
		return 0, 0
	}

	slope := numerator / denominator
	intercept := yMean - slope*xMean

	return math.Exp(intercept), -slope
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
