// Package types - financial audit result records
package types

import "github.com/shopspring/decimal"

// ROAStatus classifies a return-on-asset figure against the target
type ROAStatus string

const (
	ROAOnTarget    ROAStatus = "On Target"
	ROABelowTarget ROAStatus = "Below Target"
)

// CostStatus classifies a construction-cost benchmark comparison
type CostStatus string

const (
	CostPass        CostStatus = "Pass"
	CostAnomaly     CostStatus = "Cost Anomaly Detected"
	CostUnknownType CostStatus = "Unknown Type"
)

// ROAResult is the outcome of a return-on-asset calculation
type ROAResult struct {
	// ROAPercent is the return on asset as a percentage
	ROAPercent decimal.Decimal `json:"roa_percent"`

	// AverageAnnualBenefit is total nominal benefit divided by lease term
	AverageAnnualBenefit decimal.Decimal `json:"average_annual_benefit"`

	// Status is "On Target" or "Below Target"
	Status ROAStatus `json:"status"`
}

// CostValidationResult is the outcome of a construction-cost benchmark
// comparison
type CostValidationResult struct {
	// Status is Pass, Cost Anomaly Detected, or Unknown Type
	Status CostStatus `json:"status"`

	// DeviationPercent is the percentage deviation from the adjusted
	// standard (zero for unknown building types)
	DeviationPercent decimal.Decimal `json:"deviation_percent"`

	// BaseStandardCost is the per-sqm benchmark before location adjustment
	BaseStandardCost decimal.Decimal `json:"base_standard_cost"`

	// LocationFactor is the regional cost index applied
	LocationFactor decimal.Decimal `json:"location_factor"`

	// AdjustedStandardCost is BaseStandardCost * LocationFactor
	AdjustedStandardCost decimal.Decimal `json:"adjusted_standard_cost"`

	// ProvinceContext is the province the factor was resolved for
	ProvinceContext string `json:"province_context"`

	// Message carries detail for the Unknown Type sentinel
	Message string `json:"message,omitempty"`
}

// BreakevenResult is the outcome of a break-even lease term solve.
// NeverBreaksEven is the distinguishable sentinel for cash flows that
// can never recover the investment; Years is meaningful only when it
// is false.
type BreakevenResult struct {
	Years           float64 `json:"years"`
	NeverBreaksEven bool    `json:"never_breaks_even"`
}

// SensitivityResult is the outcome of a discount-rate sensitivity sweep
// over NPV
type SensitivityResult struct {
	// BaseCase is the NPV at the unmodified discount rate
	BaseCase decimal.Decimal `json:"base_case"`

	// PlusTwoPercent is the NPV at base rate + 0.02
	PlusTwoPercent decimal.Decimal `json:"plus_two_percent"`

	// MinusTwoPercent is the NPV at base rate - 0.02 (floored at zero)
	MinusTwoPercent decimal.Decimal `json:"minus_two_percent"`
}
