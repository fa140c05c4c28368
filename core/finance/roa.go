package finance

import (
	"github.com/shopspring/decimal"

	"land-audit/core/types"
)

// ReturnOnAsset computes ROA as average annual benefit over investment
// cost. The benefit is the undiscounted total of the upfront fee, the
// escalated rent schedule (same schedule as NPV, nominal), and the
// nominal residual value at lease end.
//
// A zero investment cost yields ROA 0 rather than dividing; the status
// flags returns below the treasury target.
func ReturnOnAsset(p Params) types.ROAResult {
	escalation := decimal.NewFromFloat(1 + p.RentEscalationRate)

	rent := p.InitialAnnualRent
	totalNominalRent := decimal.Zero
	for year := 1; year <= p.LeaseTermYears; year++ {
		if p.escalationDue(year) {
			rent = rent.Mul(escalation)
		}
		totalNominalRent = totalNominalRent.Add(rent)
	}

	totalBenefit := p.UpfrontFee.Add(totalNominalRent).Add(p.residualValue())
	averageAnnual := totalBenefit.Div(decimal.NewFromInt(int64(p.LeaseTermYears)))

	roaPercent := decimal.Zero
	if p.InvestmentCost.IsPositive() {
		roaPercent = averageAnnual.Div(p.InvestmentCost).Mul(decimal.NewFromInt(100))
	}

	status := types.ROAOnTarget
	if roaPercent.LessThan(decimal.NewFromFloat(ROATargetPercent)) {
		status = types.ROABelowTarget
	}

	return types.ROAResult{
		ROAPercent:           roaPercent,
		AverageAnnualBenefit: averageAnnual,
		Status:               status,
	}
}
