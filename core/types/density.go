// Package types defines the result records shared between the audit
// engines and their consumers (report rendering, persistence).
// The JSON keys are a published contract; renaming one is a breaking
// change for every downstream collaborator.
package types

// DensityStatus is the five-band classification of an efficiency index
type DensityStatus string

const (
	StatusUnderUtilization   DensityStatus = "Under-utilization"
	StatusLowDensityWarning  DensityStatus = "Low Density Warning"
	StatusOptimal            DensityStatus = "Optimal"
	StatusHighDensityWarning DensityStatus = "High Density Warning"
	StatusOverDensification  DensityStatus = "Over-densification"
)

// String returns the display label
func (s DensityStatus) String() string {
	return string(s)
}

// PolicyRecommendation is the zoning recommendation from gap analysis
type PolicyRecommendation string

const (
	// RecommendNone - legal ceiling and theoretical demand are aligned
	RecommendNone PolicyRecommendation = "None"

	// RecommendUpgrade - theoretical demand significantly exceeds the
	// legal ceiling; the zone should be upsized
	RecommendUpgrade PolicyRecommendation = "Request Zoning Upgrade (Upsize)"

	// RecommendOverSupply - the legal ceiling far exceeds demand; focus
	// should shift to infrastructure rather than density
	RecommendOverSupply PolicyRecommendation = "Zone Over-supply (Focus on infrastructure)"
)

// String returns the display label
func (r PolicyRecommendation) String() string {
	return string(r)
}

// GapAnalysis compares theoretical density demand against the legal
// FAR ceiling for the parcel
type GapAnalysis struct {
	// LegalMaxFAR is the legally permitted density ceiling
	LegalMaxFAR float64 `json:"legal_max_far"`

	// TheoreticalDemandFAR is the model-predicted density at the parcel
	TheoreticalDemandFAR float64 `json:"theoretical_demand_far"`

	// FARMismatchGap is TheoreticalDemandFAR - LegalMaxFAR
	FARMismatchGap float64 `json:"far_mismatch_gap"`

	// IsConstraintActive is true when demand exceeds the legal ceiling
	IsConstraintActive bool `json:"is_constraint_active"`

	// PolicyRecommendation is the derived zoning recommendation
	PolicyRecommendation PolicyRecommendation `json:"policy_recommendation"`
}

// DensityResult is the outcome of a single density audit query
type DensityResult struct {
	// DistanceKm is the distance from the CBD used in the query
	DistanceKm float64 `json:"distance_km"`

	// TheoreticalDensity is D0 * e^(-g * distance)
	TheoreticalDensity float64 `json:"theoretical_density"`

	// ProposedDensity is the density the project proposes
	ProposedDensity float64 `json:"proposed_density"`

	// EfficiencyIndex is proposed / theoretical (0 when theoretical is 0)
	EfficiencyIndex float64 `json:"efficiency_index"`

	// Status is the five-band classification
	Status DensityStatus `json:"status"`

	// GapAnalysis is present only when the query carried a legal limit
	GapAnalysis *GapAnalysis `json:"gap_analysis,omitempty"`
}

// FARStatus is the coarse three-way land-use classification used on
// FAR calculation results (distinct from the five-band audit status)
type FARStatus string

const (
	FARUnder   FARStatus = "UNDER"
	FAROptimal FARStatus = "OPTIMAL"
	FAROver    FARStatus = "OVER"
)

// ThaiLabel returns the Thai display label for the status
func (s FARStatus) ThaiLabel() string {
	switch s {
	case FARUnder:
		return "ใช้ประโยชน์น้อยเกินไป (UNDER)"
	case FAROptimal:
		return "เหมาะสม (OPTIMAL)"
	case FAROver:
		return "หนาแน่นเกินไป (OVER)"
	default:
		return string(s)
	}
}

// FARResult is the outcome of a proposed-FAR calculation for a parcel
type FARResult struct {
	// ProposedFAR is proposed GFA divided by land area
	ProposedFAR float64 `json:"proposed_far"`

	// TheoreticalFAR is the Bertaud model prediction at the parcel
	TheoreticalFAR float64 `json:"theoretical_far"`

	// LegalMaxFAR is the legally permitted ceiling
	LegalMaxFAR float64 `json:"legal_max_far"`

	// EfficiencyScore is ProposedFAR / TheoreticalFAR
	EfficiencyScore float64 `json:"efficiency_score"`

	// Status is the coarse classification
	Status FARStatus `json:"status"`

	// StatusThai is the Thai display label for Status
	StatusThai string `json:"status_thai"`

	// LandSizeSqm is the parcel area converted to square meters
	LandSizeSqm float64 `json:"land_size_sqm"`
}
