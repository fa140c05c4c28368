package finance

import (
	"github.com/shopspring/decimal"

	"land-audit/internal/errors"
)

// Default escalation schedule: rent rises 15% every 3 years, per the
// standard treasury lease template.
const (
	DefaultRentEscalationRate      = 0.15
	DefaultEscalationIntervalYears = 3

	// MaxLeaseTermYears caps lease terms; longer terms are almost
	// certainly data-entry errors
	MaxLeaseTermYears = 100

	// ROATargetPercent is the minimum acceptable return on asset
	ROATargetPercent = 3.0

	// CostDeviationTolerance is the benchmark deviation beyond which a
	// construction cost is flagged as an anomaly
	CostDeviationTolerance = 0.20
)

// Params is the validated, immutable input record for every financial
// computation. Construct it through NewParams; no engine operation
// mutates it.
type Params struct {
	// UpfrontFee is the fee paid at T=0 (THB)
	UpfrontFee decimal.Decimal

	// InitialAnnualRent is the year-1 rent (THB)
	InitialAnnualRent decimal.Decimal

	// LeaseTermYears is the lease duration, 1-100
	LeaseTermYears int

	// DiscountRate is the annual discount rate in [0, 1]
	DiscountRate float64

	// InvestmentCost is the total investment (THB)
	InvestmentCost decimal.Decimal

	// AssetUsefulLifeYears is the depreciation life of the asset
	AssetUsefulLifeYears int

	// RentEscalationRate is the periodic rent increase (decimal)
	RentEscalationRate float64

	// EscalationIntervalYears is the years between rent increases
	EscalationIntervalYears int
}

// ParamSpec carries the raw inputs for NewParams. The escalation
// fields are optional; nil selects the treasury defaults.
type ParamSpec struct {
	UpfrontFee              decimal.Decimal
	InitialAnnualRent       decimal.Decimal
	LeaseTermYears          int
	DiscountRate            float64
	InvestmentCost          decimal.Decimal
	AssetUsefulLifeYears    int
	RentEscalationRate      *float64
	EscalationIntervalYears *int
}

// NewParams validates the spec and returns an immutable parameter
// record. Validation fails fast with a VALIDATION_ERROR carrying a
// stable code; no computation runs on out-of-bound input.
func NewParams(spec ParamSpec) (Params, error) {
	if spec.UpfrontFee.IsNegative() {
		return Params{}, errors.Validationf("NEGATIVE_UPFRONT_FEE",
			"upfront fee cannot be negative: %s", spec.UpfrontFee)
	}
	if spec.InitialAnnualRent.IsNegative() {
		return Params{}, errors.Validationf("NEGATIVE_ANNUAL_RENT",
			"initial annual rent cannot be negative: %s", spec.InitialAnnualRent)
	}
	if spec.LeaseTermYears < 1 || spec.LeaseTermYears > MaxLeaseTermYears {
		return Params{}, errors.Validationf("LEASE_TERM_OUT_OF_RANGE",
			"lease term must be between 1 and %d years: %d", MaxLeaseTermYears, spec.LeaseTermYears)
	}
	if spec.DiscountRate < 0 || spec.DiscountRate > 1 {
		return Params{}, errors.Validationf("DISCOUNT_RATE_OUT_OF_RANGE",
			"discount rate must be within [0, 1]: %v", spec.DiscountRate)
	}
	if spec.InvestmentCost.IsNegative() {
		return Params{}, errors.Validationf("NEGATIVE_INVESTMENT_COST",
			"investment cost cannot be negative: %s", spec.InvestmentCost)
	}
	if spec.AssetUsefulLifeYears <= 0 {
		return Params{}, errors.Validationf("INVALID_USEFUL_LIFE",
			"asset useful life must be positive: %d", spec.AssetUsefulLifeYears)
	}

	escalationRate := DefaultRentEscalationRate
	if spec.RentEscalationRate != nil {
		escalationRate = *spec.RentEscalationRate
	}
	if escalationRate < 0 {
		return Params{}, errors.Validationf("NEGATIVE_ESCALATION_RATE",
			"rent escalation rate cannot be negative: %v", escalationRate)
	}

	interval := DefaultEscalationIntervalYears
	if spec.EscalationIntervalYears != nil {
		interval = *spec.EscalationIntervalYears
	}
	if interval <= 0 {
		return Params{}, errors.Validationf("INVALID_ESCALATION_INTERVAL",
			"escalation interval must be positive: %d", interval)
	}

	return Params{
		UpfrontFee:              spec.UpfrontFee,
		InitialAnnualRent:       spec.InitialAnnualRent,
		LeaseTermYears:          spec.LeaseTermYears,
		DiscountRate:            spec.DiscountRate,
		InvestmentCost:          spec.InvestmentCost,
		AssetUsefulLifeYears:    spec.AssetUsefulLifeYears,
		RentEscalationRate:      escalationRate,
		EscalationIntervalYears: interval,
	}, nil
}

// escalationDue reports whether rent escalates at the start of the
// given year. Year 1 never escalates; afterwards escalation lands on
// every interval boundary.
func (p Params) escalationDue(year int) bool {
	return year > 1 && (year-1)%p.EscalationIntervalYears == 0
}

// residualValue returns the straight-line depreciated asset value at
// lease end; zero once the lease outlives the asset.
func (p Params) residualValue() decimal.Decimal {
	if p.LeaseTermYears >= p.AssetUsefulLifeYears {
		return decimal.Zero
	}
	remaining := decimal.NewFromInt(int64(p.AssetUsefulLifeYears - p.LeaseTermYears))
	life := decimal.NewFromInt(int64(p.AssetUsefulLifeYears))
	return p.InvestmentCost.Mul(remaining).Div(life)
}
