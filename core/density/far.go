package density

import (
	"land-audit/core/types"
	"land-audit/internal/errors"
)

// DefaultLegalMaxFAR is assumed when a parcel record carries no legal
// ceiling of its own.
const DefaultLegalMaxFAR = 10.0

// FAR status thresholds for the coarse three-way classification
const (
	farOptimalLow  = 0.8
	farOptimalHigh = 1.2
)

// FARInputs describes a proposed-FAR calculation for a parcel
type FARInputs struct {
	// LandSizeRai is the parcel size in rai
	LandSizeRai float64

	// ProposedGFA is the proposed gross floor area in sqm
	ProposedGFA float64

	// D0 is the center density for the model
	D0 float64

	// G is the density gradient
	G float64

	// DistanceKm is the parcel's distance from the CBD
	DistanceKm float64

	// LegalMaxFAR is the legal ceiling; DefaultLegalMaxFAR when zero
	LegalMaxFAR float64
}

// ComputeFAR derives the proposed FAR from gross floor area and parcel
// size, evaluates it against the Bertaud prediction, and classifies the
// result. Guard failures return VALIDATION_ERROR with a stable code and
// a bilingual message; they never panic.
func ComputeFAR(in FARInputs) (types.FARResult, error) {
	if in.LandSizeRai <= 0 {
		return types.FARResult{}, errors.Validation("ZERO_LAND_SIZE", "land size must be greater than 0").
			WithThai("ขนาดที่ดินต้องมากกว่า 0")
	}
	if in.ProposedGFA < 0 {
		return types.FARResult{}, errors.Validation("ZERO_GFA", "proposed GFA cannot be negative").
			WithThai("พื้นที่อาคารต้องไม่ติดลบ")
	}
	if in.D0 <= 0 || in.G < 0 || in.DistanceKm < 0 {
		return types.FARResult{}, errors.Validation("INVALID_PARAMS", "D0 must be positive, g and distance_km must be non-negative").
			WithThai("D0 ต้องเป็นบวก, g และระยะทางต้องไม่ติดลบ")
	}

	legalMax := in.LegalMaxFAR
	if legalMax == 0 {
		legalMax = DefaultLegalMaxFAR
	}

	landSizeSqm := RaiToSqm(in.LandSizeRai)
	proposedFAR := in.ProposedGFA / landSizeSqm

	params := ModelParams{CenterDensity: in.D0, Gradient: in.G}
	theoreticalFAR := params.TheoreticalDensity(in.DistanceKm)

	score := EfficiencyIndex(proposedFAR, theoreticalFAR)
	status := ClassifyFARStatus(score)

	return types.FARResult{
		ProposedFAR:     proposedFAR,
		TheoreticalFAR:  theoreticalFAR,
		LegalMaxFAR:     legalMax,
		EfficiencyScore: score,
		Status:          status,
		StatusThai:      status.ThaiLabel(),
		LandSizeSqm:     landSizeSqm,
	}, nil
}

// ClassifyFARStatus maps an efficiency score to the coarse three-way
// status: UNDER below 0.8, OPTIMAL through 1.2, OVER above.
func ClassifyFARStatus(score float64) types.FARStatus {
	switch {
	case score < farOptimalLow:
		return types.FARUnder
	case score <= farOptimalHigh:
		return types.FAROptimal
	default:
		return types.FAROver
	}
}
