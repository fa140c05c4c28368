package density

import "land-audit/core/types"

// Gap-analysis policy thresholds. These are regulatory constants, not
// derived values.
const (
	// significantGapFAR - a demand overshoot above this warrants a
	// zoning upgrade request
	significantGapFAR = 1.0

	// overSupplyMarginFAR - a legal ceiling this far above demand marks
	// the zone as over-supplied
	overSupplyMarginFAR = 2.0
)

// AnalyzeGap compares model-theoretical demand against the legal FAR
// ceiling. The constraint is active when demand exceeds the law; the
// recommendation escalates only past the policy thresholds.
func AnalyzeGap(theoreticalDemand, legalLimit float64) types.GapAnalysis {
	gap := theoreticalDemand - legalLimit
	constrained := gap > 0

	recommendation := types.RecommendNone
	switch {
	case constrained && gap > significantGapFAR:
		recommendation = types.RecommendUpgrade
	case !constrained && legalLimit-theoreticalDemand > overSupplyMarginFAR:
		recommendation = types.RecommendOverSupply
	}

	return types.GapAnalysis{
		LegalMaxFAR:          legalLimit,
		TheoreticalDemandFAR: theoreticalDemand,
		FARMismatchGap:       gap,
		IsConstraintActive:   constrained,
		PolicyRecommendation: recommendation,
	}
}
