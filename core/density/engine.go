package density

import (
	"fmt"
	"math"
	"strings"

	"land-audit/core/types"
)

// Plausibility bounds for the decay gradient. Values outside this range
// still construct; they only raise an advisory.
const (
	gradientPlausibleMax = 0.5
	gradientPlausibleMin = 0.01
)

// ModelParams holds the calibrated Bertaud model parameters. Immutable
// after construction; create a fresh value per audit context.
type ModelParams struct {
	// CenterDensity is D0, the theoretical density at the CBD center
	CenterDensity float64

	// Gradient is g, the density decay coefficient
	Gradient float64
}

// Advisory is a non-fatal diagnostic raised during model construction.
// The engine never logs; callers decide how to surface advisories.
type Advisory struct {
	// Field names the parameter the advisory concerns
	Field string

	// Message explains the concern
	Message string
}

// NewModelParams builds model parameters and reports plausibility
// advisories. Construction always succeeds; advisories are warnings,
// not validation failures.
func NewModelParams(d0, g float64) (ModelParams, []Advisory) {
	var advisories []Advisory
	if g > gradientPlausibleMax {
		advisories = append(advisories, Advisory{
			Field:   "gradient",
			Message: fmt.Sprintf("gradient g=%v is unusually high: implies extremely rapid density decay (urban sprawl error potential)", g),
		})
	}
	if g < gradientPlausibleMin {
		advisories = append(advisories, Advisory{
			Field:   "gradient",
			Message: fmt.Sprintf("gradient g=%v is unusually low: implies almost uniform density (unrealistic for monocentric cities)", g),
		})
	}
	return ModelParams{CenterDensity: d0, Gradient: g}, advisories
}

// ValidateInputs checks the non-negativity bounds on model inputs
// before calculation or persistence. Returns one message per violated
// constraint; an empty slice means valid.
func ValidateInputs(d0, g, distanceKm float64) []string {
	var errs []string
	if d0 < 0 {
		errs = append(errs, fmt.Sprintf("D0 (center density) cannot be negative: %v", d0))
	}
	if g < 0 {
		errs = append(errs, fmt.Sprintf("gradient (g) cannot be negative: %v", g))
	}
	if distanceKm < 0 {
		errs = append(errs, fmt.Sprintf("distance (x) cannot be negative: %v", distanceKm))
	}
	return errs
}

// TheoreticalDensity returns D0 * e^(-g * x). Non-increasing in
// distance for g >= 0 and equal to D0 at the center.
func (p ModelParams) TheoreticalDensity(distanceKm float64) float64 {
	return p.CenterDensity * math.Exp(-p.Gradient*distanceKm)
}

// EfficiencyIndex returns proposed / theoretical. When the theoretical
// density is zero the index is reported as 0 rather than dividing; this
// conflates "no theoretical demand" with "zero efficiency" but is the
// convention downstream consumers depend on.
func EfficiencyIndex(proposed, theoretical float64) float64 {
	if theoretical == 0 {
		return 0
	}
	return proposed / theoretical
}

// Query describes one density audit request
type Query struct {
	// DistanceKm is the distance from the CBD
	DistanceKm float64

	// ProposedDensity is the density the project proposes
	ProposedDensity float64

	// LegalFARLimit enables gap analysis when non-nil
	LegalFARLimit *float64

	// ZoneColor is the city-planning zone color; yellow zones tighten
	// the upper status threshold
	ZoneColor string
}

// Audit evaluates a proposed density against the model: theoretical
// density, efficiency index, five-band status and, when the query
// carries a legal FAR limit, a gap analysis.
func (p ModelParams) Audit(q Query) types.DensityResult {
	theoretical := p.TheoreticalDensity(q.DistanceKm)
	index := EfficiencyIndex(q.ProposedDensity, theoretical)

	result := types.DensityResult{
		DistanceKm:         q.DistanceKm,
		TheoreticalDensity: theoretical,
		ProposedDensity:    q.ProposedDensity,
		EfficiencyIndex:    index,
		Status:             ClassifyStatus(index, UpperLimitForZone(q.ZoneColor)),
	}

	if q.LegalFARLimit != nil {
		ga := AnalyzeGap(theoretical, *q.LegalFARLimit)
		result.GapAnalysis = &ga
	}

	return result
}

// UpperLimitForZone returns the status upper limit for a planning zone
// color. Yellow (low-density residential) zones get the stricter 1.1;
// everything else, including red commercial zones, keeps the default.
func UpperLimitForZone(zoneColor string) float64 {
	if strings.Contains(strings.ToLower(zoneColor), "yellow") {
		return yellowZoneUpperLimit
	}
	return defaultUpperLimit
}
