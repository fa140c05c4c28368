package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"land-audit/core/catalog"
	"land-audit/core/types"
)

func TestValidateConstructionCost_PhuketAdjustmentPasses(t *testing.T) {
	// high-rise base 30,000 * Phuket 1.15 = 34,500; proposed 35,000 is
	// within tolerance
	result := ValidateConstructionCost(catalog.Default(),
		decimal.NewFromInt(35_000), "high-rise", "Phuket")

	assert.Equal(t, types.CostPass, result.Status)
	assert.True(t, result.AdjustedStandardCost.Equal(decimal.NewFromInt(34_500)),
		"got %s", result.AdjustedStandardCost)
	assert.True(t, result.BaseStandardCost.Equal(decimal.NewFromInt(30_000)))
	assert.True(t, result.LocationFactor.Equal(decimal.NewFromFloat(1.15)))
	assert.Equal(t, "Phuket", result.ProvinceContext)
}

func TestValidateConstructionCost_UdonThaniAnomaly(t *testing.T) {
	// high-rise base 30,000 * Udon Thani 0.95 = 28,500; proposed 40,000
	// deviates > 20%
	result := ValidateConstructionCost(catalog.Default(),
		decimal.NewFromInt(40_000), "high-rise", "Udon Thani")

	assert.Equal(t, types.CostAnomaly, result.Status)
	assert.True(t, result.AdjustedStandardCost.Equal(decimal.NewFromInt(28_500)))
	assert.True(t, result.DeviationPercent.GreaterThan(decimal.NewFromInt(20)))
}

func TestValidateConstructionCost_LowCostAnomaly(t *testing.T) {
	// low-rise base 15,000; 10,000 is a -33% deviation
	result := ValidateConstructionCost(catalog.Default(),
		decimal.NewFromInt(10_000), "low-rise", "Bangkok")

	assert.Equal(t, types.CostAnomaly, result.Status)
	assert.True(t, result.DeviationPercent.IsNegative())
}

func TestValidateConstructionCost_WithinTolerance(t *testing.T) {
	// 32,000 vs 30,000 is a 6.67% deviation
	result := ValidateConstructionCost(catalog.Default(),
		decimal.NewFromInt(32_000), "high-rise", "Bangkok")

	assert.Equal(t, types.CostPass, result.Status)
	assert.InDelta(t, 6.67, result.DeviationPercent.InexactFloat64(), 0.01)
}

func TestValidateConstructionCost_UnknownTypeSentinel(t *testing.T) {
	result := ValidateConstructionCost(catalog.Default(),
		decimal.NewFromInt(20_000), "mid-rise", "Bangkok")

	assert.Equal(t, types.CostUnknownType, result.Status)
	assert.True(t, result.DeviationPercent.IsZero())
	assert.Contains(t, result.Message, "mid-rise")
}

func TestValidateConstructionCost_CaseInsensitiveLookups(t *testing.T) {
	upper := ValidateConstructionCost(catalog.Default(),
		decimal.NewFromInt(35_000), "HIGH-RISE", "PHUKET")
	lower := ValidateConstructionCost(catalog.Default(),
		decimal.NewFromInt(35_000), "high-rise", "phuket")

	assert.Equal(t, lower.Status, upper.Status)
	assert.True(t, upper.AdjustedStandardCost.Equal(lower.AdjustedStandardCost))
}

func TestValidateConstructionCost_UnknownProvinceDefaultsToReference(t *testing.T) {
	result := ValidateConstructionCost(catalog.Default(),
		decimal.NewFromInt(30_000), "high-rise", "Atlantis")

	assert.True(t, result.LocationFactor.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, types.CostPass, result.Status)
	assert.True(t, result.DeviationPercent.IsZero())
}
