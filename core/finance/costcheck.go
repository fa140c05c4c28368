package finance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"land-audit/core/catalog"
	"land-audit/core/types"
)

// ValidateConstructionCost benchmarks a proposed cost per sqm against
// the catalog standard for the building type, adjusted by the regional
// cost index for the province. An unrecognized building type returns
// the "Unknown Type" sentinel result with zero deviation; unknown
// provinces fall back to the 1.0 reference factor.
func ValidateConstructionCost(cat *catalog.Catalog, proposedCostPerSqm decimal.Decimal, buildingType, province string) types.CostValidationResult {
	factor := cat.Factor(province)

	benchmark, ok := cat.Benchmark(buildingType)
	if !ok {
		return types.CostValidationResult{
			Status:           types.CostUnknownType,
			DeviationPercent: decimal.Zero,
			LocationFactor:   factor,
			ProvinceContext:  province,
			Message:          fmt.Sprintf("building type %q not recognized", buildingType),
		}
	}

	adjustedStandard := benchmark.StandardCostPerSqm.Mul(factor)
	if adjustedStandard.IsZero() {
		// degenerate benchmark: no standard to deviate from
		return types.CostValidationResult{
			Status:               types.CostPass,
			DeviationPercent:     decimal.Zero,
			BaseStandardCost:     benchmark.StandardCostPerSqm,
			LocationFactor:       factor,
			AdjustedStandardCost: adjustedStandard,
			ProvinceContext:      province,
		}
	}
	deviation := proposedCostPerSqm.Sub(adjustedStandard).Div(adjustedStandard)

	status := types.CostPass
	if deviation.Abs().GreaterThan(decimal.NewFromFloat(CostDeviationTolerance)) {
		status = types.CostAnomaly
	}

	return types.CostValidationResult{
		Status:               status,
		DeviationPercent:     deviation.Mul(decimal.NewFromInt(100)),
		BaseStandardCost:     benchmark.StandardCostPerSqm,
		LocationFactor:       factor,
		AdjustedStandardCost: adjustedStandard,
		ProvinceContext:      province,
	}
}
