package finance

import "github.com/shopspring/decimal"

// StateNPV computes the net present value of the state's return:
// the upfront fee at T=0 (undiscounted), each year's escalated rent
// discounted by (1+r)^year, and the depreciated residual value of the
// asset discounted from lease end.
//
// Rent escalates at the start of every interval boundary year, before
// that year's rent is discounted. The discount factor is strictly
// increasing in the year index, so later cash flows always discount
// harder.
func StateNPV(p Params) decimal.Decimal {
	npv := p.UpfrontFee

	onePlusRate := decimal.NewFromFloat(1 + p.DiscountRate)
	escalation := decimal.NewFromFloat(1 + p.RentEscalationRate)

	rent := p.InitialAnnualRent
	factor := decimal.NewFromInt(1)

	for year := 1; year <= p.LeaseTermYears; year++ {
		if p.escalationDue(year) {
			rent = rent.Mul(escalation)
		}
		factor = factor.Mul(onePlusRate)
		npv = npv.Add(rent.Div(factor))
	}

	// factor is now (1+r)^leaseTerm
	npv = npv.Add(p.residualValue().Div(factor))

	return npv
}
