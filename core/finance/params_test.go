package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"land-audit/internal/errors"
)

func validSpec() ParamSpec {
	return ParamSpec{
		UpfrontFee:           decimal.NewFromInt(50_000_000),
		InitialAnnualRent:    decimal.NewFromInt(10_000_000),
		LeaseTermYears:       30,
		DiscountRate:         0.035,
		InvestmentCost:       decimal.NewFromInt(1_000_000_000),
		AssetUsefulLifeYears: 50,
	}
}

func TestNewParams_DefaultsApplied(t *testing.T) {
	p, err := NewParams(validSpec())
	require.NoError(t, err)
	assert.Equal(t, DefaultRentEscalationRate, p.RentEscalationRate)
	assert.Equal(t, DefaultEscalationIntervalYears, p.EscalationIntervalYears)
}

func TestNewParams_ExplicitEscalationOverridesDefaults(t *testing.T) {
	spec := validSpec()
	rate := 0.0
	interval := 5
	spec.RentEscalationRate = &rate
	spec.EscalationIntervalYears = &interval

	p, err := NewParams(spec)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.RentEscalationRate)
	assert.Equal(t, 5, p.EscalationIntervalYears)
}

func TestNewParams_ValidationFailures(t *testing.T) {
	negRate := -0.1
	zeroInterval := 0

	cases := []struct {
		name   string
		mutate func(*ParamSpec)
		code   string
	}{
		{"negative upfront", func(s *ParamSpec) { s.UpfrontFee = decimal.NewFromInt(-1) }, "NEGATIVE_UPFRONT_FEE"},
		{"negative rent", func(s *ParamSpec) { s.InitialAnnualRent = decimal.NewFromInt(-1) }, "NEGATIVE_ANNUAL_RENT"},
		{"zero lease", func(s *ParamSpec) { s.LeaseTermYears = 0 }, "LEASE_TERM_OUT_OF_RANGE"},
		{"lease too long", func(s *ParamSpec) { s.LeaseTermYears = 101 }, "LEASE_TERM_OUT_OF_RANGE"},
		{"negative rate", func(s *ParamSpec) { s.DiscountRate = -0.01 }, "DISCOUNT_RATE_OUT_OF_RANGE"},
		{"rate above one", func(s *ParamSpec) { s.DiscountRate = 1.01 }, "DISCOUNT_RATE_OUT_OF_RANGE"},
		{"negative investment", func(s *ParamSpec) { s.InvestmentCost = decimal.NewFromInt(-1) }, "NEGATIVE_INVESTMENT_COST"},
		{"zero useful life", func(s *ParamSpec) { s.AssetUsefulLifeYears = 0 }, "INVALID_USEFUL_LIFE"},
		{"negative escalation", func(s *ParamSpec) { s.RentEscalationRate = &negRate }, "NEGATIVE_ESCALATION_RATE"},
		{"zero interval", func(s *ParamSpec) { s.EscalationIntervalYears = &zeroInterval }, "INVALID_ESCALATION_INTERVAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := validSpec()
			tc.mutate(&spec)
			_, err := NewParams(spec)
			require.Error(t, err)
			var domainErr *errors.Error
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, errors.TypeValidation, domainErr.Type)
			assert.Equal(t, tc.code, domainErr.Code)
		})
	}
}

func TestNewParams_BoundaryValuesAccepted(t *testing.T) {
	spec := validSpec()
	spec.LeaseTermYears = 1
	_, err := NewParams(spec)
	assert.NoError(t, err)

	spec.LeaseTermYears = 100
	_, err = NewParams(spec)
	assert.NoError(t, err)

	spec.DiscountRate = 0
	_, err = NewParams(spec)
	assert.NoError(t, err)

	spec.DiscountRate = 1
	_, err = NewParams(spec)
	assert.NoError(t, err)
}

func TestEscalationDue(t *testing.T) {
	p, err := NewParams(validSpec()) // interval 3
	require.NoError(t, err)

	due := []int{4, 7, 10, 13}
	notDue := []int{1, 2, 3, 5, 6, 8, 9}
	for _, y := range due {
		assert.True(t, p.escalationDue(y), "year %d", y)
	}
	for _, y := range notDue {
		assert.False(t, p.escalationDue(y), "year %d", y)
	}
}

func TestResidualValue(t *testing.T) {
	spec := validSpec() // lease 30, life 50, investment 1B
	p, err := NewParams(spec)
	require.NoError(t, err)

	// 1B * 20/50 = 400M
	assert.True(t, p.residualValue().Equal(decimal.NewFromInt(400_000_000)),
		"got %s", p.residualValue())

	// lease outlives the asset: residual is zero
	spec.LeaseTermYears = 50
	p, err = NewParams(spec)
	require.NoError(t, err)
	assert.True(t, p.residualValue().IsZero())

	spec.LeaseTermYears = 60
	p, err = NewParams(spec)
	require.NoError(t, err)
	assert.True(t, p.residualValue().IsZero())
}
