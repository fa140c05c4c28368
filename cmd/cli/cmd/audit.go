// Package cmd - audit command
package cmd

import (
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"land-audit/core/audit"
	"land-audit/core/density"
	"land-audit/core/finance"
	"land-audit/core/output"
	"land-audit/internal/config"
)

var (
	auditProject      string
	auditD0           float64
	auditGradient     float64
	auditDistance     float64
	auditProposed     float64
	auditZoneColor    string
	auditLegalFAR     float64
	auditUpfront      float64
	auditAnnualRent   float64
	auditLeaseYears   int
	auditDiscountRate float64
	auditInvestment   float64
	auditUsefulLife   int
	auditCostPerSqm   float64
	auditBuildingType string
	auditProvince     string
	auditFormat       string
)

// auditCmd runs a full project audit and renders the report
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run a full density and financial audit for a project",
	Long: `Audit a proposed development project: density efficiency against the
Bertaud gradient model (with legal-FAR gap analysis), state NPV, return
on asset, construction-cost benchmarking, and a discount-rate
sensitivity sweep.

Example:
  land-audit audit --project "Riverside Tower" \
    --d0 10 --gradient 0.1 --distance 5 --proposed 6 --legal-far 4 \
    --upfront 50000000 --rent 10000000 --lease 30 --rate 0.035 \
    --investment 1000000000 --useful-life 50 \
    --cost-per-sqm 32000 --building-type high-rise --province Bangkok`,
	RunE: runAudit,
}

func init() {
	cfg := config.Default()

	auditCmd.Flags().StringVar(&auditProject, "project", "Unnamed Project", "project name for the report header")
	auditCmd.Flags().Float64Var(&auditD0, "d0", cfg.Model.CenterDensity, "center density D0 (FAR at the CBD)")
	auditCmd.Flags().Float64Var(&auditGradient, "gradient", cfg.Model.DensityGradient, "density gradient g")
	auditCmd.Flags().Float64Var(&auditDistance, "distance", 0, "distance from the CBD in km")
	auditCmd.Flags().Float64Var(&auditProposed, "proposed", 0, "proposed density (FAR)")
	auditCmd.Flags().StringVar(&auditZoneColor, "zone", "", "planning zone color (yellow tightens thresholds)")
	auditCmd.Flags().Float64Var(&auditLegalFAR, "legal-far", 0, "legal FAR ceiling (0 disables gap analysis)")
	auditCmd.Flags().Float64Var(&auditUpfront, "upfront", 0, "upfront fee at T=0 (THB)")
	auditCmd.Flags().Float64Var(&auditAnnualRent, "rent", 0, "initial annual rent (THB)")
	auditCmd.Flags().IntVar(&auditLeaseYears, "lease", 30, "lease term in years")
	auditCmd.Flags().Float64Var(&auditDiscountRate, "rate", cfg.Economic.StateDiscountRate, "discount rate (decimal)")
	auditCmd.Flags().Float64Var(&auditInvestment, "investment", 0, "total investment cost (THB)")
	auditCmd.Flags().IntVar(&auditUsefulLife, "useful-life", 50, "asset useful life in years")
	auditCmd.Flags().Float64Var(&auditCostPerSqm, "cost-per-sqm", 0, "proposed construction cost per sqm (THB)")
	auditCmd.Flags().StringVar(&auditBuildingType, "building-type", "high-rise", "building type (low-rise, high-rise)")
	auditCmd.Flags().StringVar(&auditProvince, "province", "Bangkok", "province for the regional cost index")
	auditCmd.Flags().StringVarP(&auditFormat, "format", "f", "text", "output format (text, json)")
}

func runAudit(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	query := density.Query{
		DistanceKm:      auditDistance,
		ProposedDensity: auditProposed,
		ZoneColor:       auditZoneColor,
	}
	if auditLegalFAR > 0 {
		legal := auditLegalFAR
		query.LegalFARLimit = &legal
	}

	escalation := cfg.Economic.RentEscalationRate
	interval := cfg.Economic.EscalationIntervalYears

	req := audit.Request{
		ProjectName: auditProject,
		ModelD0:     auditD0,
		ModelG:      auditGradient,
		Density:     query,
		Finance: finance.ParamSpec{
			UpfrontFee:              decimal.NewFromFloat(auditUpfront),
			InitialAnnualRent:       decimal.NewFromFloat(auditAnnualRent),
			LeaseTermYears:          auditLeaseYears,
			DiscountRate:            auditDiscountRate,
			InvestmentCost:          decimal.NewFromFloat(auditInvestment),
			AssetUsefulLifeYears:    auditUsefulLife,
			RentEscalationRate:      &escalation,
			EscalationIntervalYears: &interval,
		},
		ProposedCostPerSqm: decimal.NewFromFloat(auditCostPerSqm),
		BuildingType:       auditBuildingType,
		Province:           auditProvince,
	}

	report, err := audit.New(nil).Run(req)
	if err != nil {
		return err
	}

	return output.ForFormat(auditFormat).Render(os.Stdout, report)
}
