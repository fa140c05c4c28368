package finance

import "land-audit/core/types"

// SensitivityRateShift is the discount-rate perturbation applied in
// each direction of the sweep.
const SensitivityRateShift = 0.02

// SensitivityAnalysis re-runs the NPV calculation at the base discount
// rate and at +/- 2%, holding every other parameter fixed. The shifted
// rates are clamped to [0, 1] so the perturbed parameter sets remain
// valid; no new formula is introduced, only scenario orchestration.
func SensitivityAnalysis(base Params) types.SensitivityResult {
	runScenario := func(rate float64) Params {
		p := base
		p.DiscountRate = rate
		return p
	}

	up := base.DiscountRate + SensitivityRateShift
	if up > 1 {
		up = 1
	}
	down := base.DiscountRate - SensitivityRateShift
	if down < 0 {
		down = 0
	}

	return types.SensitivityResult{
		BaseCase:        StateNPV(base),
		PlusTwoPercent:  StateNPV(runScenario(up)),
		MinusTwoPercent: StateNPV(runScenario(down)),
	}
}
