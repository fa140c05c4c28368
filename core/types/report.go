// Package types - audit report envelope
package types

import "github.com/shopspring/decimal"

// AuditReport bundles the outcome of one full audit run. The envelope
// fields (ID, timestamps, Version) follow the audit-trail shape the
// persistence collaborator expects; the engines never manage the trail
// themselves.
type AuditReport struct {
	// ID uniquely identifies this report
	ID string `json:"id"`

	// ProjectName is the human-readable project label
	ProjectName string `json:"project_name"`

	// Density is the density audit outcome
	Density *DensityResult `json:"density,omitempty"`

	// StateNPV is the net present value of the state's return
	StateNPV decimal.Decimal `json:"state_npv"`

	// ROA is the return-on-asset outcome
	ROA *ROAResult `json:"roa,omitempty"`

	// CostValidation is the construction-cost benchmark outcome
	CostValidation *CostValidationResult `json:"cost_validation,omitempty"`

	// Sensitivity is the discount-rate sensitivity sweep
	Sensitivity *SensitivityResult `json:"sensitivity,omitempty"`

	// Advisories lists non-fatal model diagnostics raised during the run
	Advisories []string `json:"advisories,omitempty"`

	// OverallStatus is Pass when no audit component flagged the project
	OverallStatus string `json:"overall_status"`

	// Audit trail
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Version   int    `json:"version"`
}
