// Package audit sequences one full project audit: density inputs are
// validated, the density engine classifies the proposal, the financial
// engine produces NPV / ROA / cost-benchmark / sensitivity figures, and
// the results are assembled into a single report record with an
// audit-trail envelope. The engines stay pure; advisory diagnostics are
// logged here, at the boundary.
package audit

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"land-audit/core/catalog"
	"land-audit/core/density"
	"land-audit/core/finance"
	"land-audit/core/types"
	"land-audit/internal/errors"
	"land-audit/internal/logging"
)

// Request describes one project audit
type Request struct {
	// ProjectName is the human-readable project label
	ProjectName string

	// ModelD0 and ModelG are the density-model parameters for the
	// parcel's urban context
	ModelD0 float64
	ModelG  float64

	// Density is the density audit query
	Density density.Query

	// Finance carries the financial parameters
	Finance finance.ParamSpec

	// ProposedCostPerSqm is the construction cost to benchmark
	ProposedCostPerSqm decimal.Decimal

	// BuildingType and Province select the benchmark and location factor
	BuildingType string
	Province     string
}

// Orchestrator runs audits against a benchmark catalog
type Orchestrator struct {
	catalog *catalog.Catalog
	log     *zap.Logger
}

// New creates an orchestrator. A nil catalog selects the Thai defaults.
func New(cat *catalog.Catalog) *Orchestrator {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Orchestrator{
		catalog: cat,
		log:     logging.With(zap.String("component", "audit")),
	}
}

// Run executes the full audit sequence and returns the report record.
// Malformed input fails fast with a VALIDATION_ERROR before any
// computation; degenerate-but-well-formed input always produces a
// defined report.
func (o *Orchestrator) Run(req Request) (*types.AuditReport, error) {
	if msgs := density.ValidateInputs(req.ModelD0, req.ModelG, req.Density.DistanceKm); len(msgs) > 0 {
		return nil, errors.Validation("INVALID_DENSITY_INPUTS", strings.Join(msgs, "; "))
	}

	params, advisories := density.NewModelParams(req.ModelD0, req.ModelG)
	advisoryMsgs := make([]string, 0, len(advisories))
	for _, a := range advisories {
		o.log.Warn("model advisory", zap.String("field", a.Field), zap.String("detail", a.Message))
		advisoryMsgs = append(advisoryMsgs, a.Message)
	}

	densityResult := params.Audit(req.Density)

	finParams, err := finance.NewParams(req.Finance)
	if err != nil {
		return nil, err
	}

	npv := finance.StateNPV(finParams)
	roa := finance.ReturnOnAsset(finParams)
	costCheck := finance.ValidateConstructionCost(o.catalog, req.ProposedCostPerSqm, req.BuildingType, req.Province)
	sensitivity := finance.SensitivityAnalysis(finParams)

	now := time.Now().UTC().Format(time.RFC3339)
	report := &types.AuditReport{
		ID:             uuid.NewString(),
		ProjectName:    req.ProjectName,
		Density:        &densityResult,
		StateNPV:       npv,
		ROA:            &roa,
		CostValidation: &costCheck,
		Sensitivity:    &sensitivity,
		Advisories:     advisoryMsgs,
		OverallStatus:  overallStatus(densityResult, npv, roa, costCheck),
		CreatedAt:      now,
		UpdatedAt:      now,
		Version:        1,
	}

	o.log.Info("audit complete",
		zap.String("report_id", report.ID),
		zap.String("project", req.ProjectName),
		zap.String("density_status", densityResult.Status.String()),
		zap.String("overall_status", report.OverallStatus),
	)

	return report, nil
}

// overallStatus rolls the component outcomes into the report headline.
// A project passes when density sits in the optimal band, the state NPV
// is positive, ROA meets the target, and the construction cost clears
// the benchmark.
func overallStatus(d types.DensityResult, npv decimal.Decimal, roa types.ROAResult, cost types.CostValidationResult) string {
	if d.Status == types.StatusOptimal &&
		npv.IsPositive() &&
		roa.Status == types.ROAOnTarget &&
		cost.Status == types.CostPass {
		return "Pass"
	}
	return "Review Required"
}
