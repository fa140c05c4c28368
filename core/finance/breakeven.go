package finance

import (
	"math"

	"github.com/shopspring/decimal"

	"land-audit/core/types"
)

// BreakevenLeaseTerm solves the present-value-of-annuity equation for
// the lease term n at which the discounted cash inflows recover the
// investment:
//
//	n = -ln(1 - I*r/C) / ln(1 + r)
//
// The NeverBreaksEven sentinel is returned when the annual cash flow is
// non-positive, or when the investment's required return I*r meets or
// exceeds the cash flow (ratio >= 1): no lease length can ever fund it.
// A zero discount rate degenerates to the simple payback I/C.
func BreakevenLeaseTerm(investmentCost, annualNetCashflow decimal.Decimal, discountRate float64) types.BreakevenResult {
	if !annualNetCashflow.IsPositive() {
		return types.BreakevenResult{NeverBreaksEven: true}
	}

	investment := investmentCost.InexactFloat64()
	cashflow := annualNetCashflow.InexactFloat64()

	if discountRate == 0 {
		return types.BreakevenResult{Years: investment / cashflow}
	}

	ratio := investment * discountRate / cashflow
	if ratio >= 1 {
		return types.BreakevenResult{NeverBreaksEven: true}
	}

	years := -math.Log(1-ratio) / math.Log(1+discountRate)
	return types.BreakevenResult{Years: years}
}
