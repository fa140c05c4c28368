// Package cmd - finance command
package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"land-audit/core/catalog"
	"land-audit/core/finance"
	"land-audit/internal/config"
)

var (
	finUpfront    float64
	finRent       float64
	finLease      int
	finRate       float64
	finInvestment float64
	finUsefulLife int
	finCashflow   float64
	finCostPerSqm float64
	finBuildType  string
	finProvince   string
)

// financeCmd runs the financial engine in isolation
var financeCmd = &cobra.Command{
	Use:   "finance",
	Short: "Run the financial feasibility calculations",
	Long: `Compute the state NPV, return on asset, break-even lease term,
construction-cost benchmark, and discount-rate sensitivity for a set of
lease parameters.

Example:
  land-audit finance --upfront 50000000 --rent 10000000 --lease 30 \
    --rate 0.035 --investment 1000000000 --useful-life 50 \
    --cashflow 40000000 --cost-per-sqm 32000 --building-type high-rise`,
	RunE: runFinance,
}

func init() {
	cfg := config.Default()

	financeCmd.Flags().Float64Var(&finUpfront, "upfront", 0, "upfront fee at T=0 (THB)")
	financeCmd.Flags().Float64Var(&finRent, "rent", 0, "initial annual rent (THB)")
	financeCmd.Flags().IntVar(&finLease, "lease", 30, "lease term in years")
	financeCmd.Flags().Float64Var(&finRate, "rate", cfg.Economic.StateDiscountRate, "discount rate (decimal)")
	financeCmd.Flags().Float64Var(&finInvestment, "investment", 0, "total investment cost (THB)")
	financeCmd.Flags().IntVar(&finUsefulLife, "useful-life", 50, "asset useful life in years")
	financeCmd.Flags().Float64Var(&finCashflow, "cashflow", 0, "annual net cash flow for break-even (THB)")
	financeCmd.Flags().Float64Var(&finCostPerSqm, "cost-per-sqm", 0, "proposed construction cost per sqm (THB)")
	financeCmd.Flags().StringVar(&finBuildType, "building-type", "high-rise", "building type (low-rise, high-rise)")
	financeCmd.Flags().StringVar(&finProvince, "province", "Bangkok", "province for the regional cost index")
}

func runFinance(cmd *cobra.Command, args []string) error {
	params, err := finance.NewParams(finance.ParamSpec{
		UpfrontFee:           decimal.NewFromFloat(finUpfront),
		InitialAnnualRent:    decimal.NewFromFloat(finRent),
		LeaseTermYears:       finLease,
		DiscountRate:         finRate,
		InvestmentCost:       decimal.NewFromFloat(finInvestment),
		AssetUsefulLifeYears: finUsefulLife,
	})
	if err != nil {
		return err
	}

	npv := finance.StateNPV(params)
	fmt.Printf("State NPV: %s THB\n", npv.Round(2))

	roa := finance.ReturnOnAsset(params)
	fmt.Printf("ROA: %s%% (%s), average annual benefit %s THB\n",
		roa.ROAPercent.Round(2), roa.Status, roa.AverageAnnualBenefit.Round(2))

	if finCostPerSqm > 0 {
		check := finance.ValidateConstructionCost(catalog.Default(),
			decimal.NewFromFloat(finCostPerSqm), finBuildType, finProvince)
		fmt.Printf("Cost check (%s, %s): %s, deviation %s%%, adjusted standard %s THB/sqm\n",
			finBuildType, finProvince, check.Status,
			check.DeviationPercent.Round(2), check.AdjustedStandardCost.Round(2))
	}

	if finCashflow != 0 {
		be := finance.BreakevenLeaseTerm(params.InvestmentCost, decimal.NewFromFloat(finCashflow), finRate)
		if be.NeverBreaksEven {
			fmt.Println("Break-even: never (cash flow cannot recover the investment)")
		} else {
			fmt.Printf("Break-even lease term: %.1f years\n", be.Years)
		}
	}

	s := finance.SensitivityAnalysis(params)
	fmt.Printf("Sensitivity: base %s, +2%% %s, -2%% %s\n",
		s.BaseCase.Round(2), s.PlusTwoPercent.Round(2), s.MinusTwoPercent.Round(2))

	return nil
}
