// Package config provides configuration management for the audit tool.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"land-audit/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Economic contains the active economic parameter set
	Economic EconomicParameters `json:"economic"`

	// Model contains default density-model parameters
	Model ModelConfig `json:"model"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// EconomicParameters is the yearly parameter set used for financial audits.
// Mirrors the Treasury Department parameter records the audits are run
// against; one set is active per tax year.
type EconomicParameters struct {
	// Year is the tax year this parameter set applies to
	Year int `json:"year"`

	// StateDiscountRate is the discount rate for state NPV calculations
	StateDiscountRate float64 `json:"state_discount_rate"`

	// RentEscalationRate is the default rent increase rate (decimal)
	RentEscalationRate float64 `json:"rent_escalation_rate"`

	// EscalationIntervalYears is the default interval between rent increases
	EscalationIntervalYears int `json:"escalation_interval_years"`

	// CostIndexHighRise scales the high-rise construction benchmark
	// relative to the base year
	CostIndexHighRise float64 `json:"cost_index_high_rise"`

	// CostIndexLowRise scales the low-rise construction benchmark
	CostIndexLowRise float64 `json:"cost_index_low_rise"`
}

// ModelConfig contains default Bertaud model parameters
type ModelConfig struct {
	// CenterDensity is the default D0 (FAR at the CBD center)
	CenterDensity float64 `json:"center_density"`

	// DensityGradient is the default decay coefficient g
	DensityGradient float64 `json:"density_gradient"`

	// DefaultLegalMaxFAR is the legal FAR ceiling assumed when a parcel
	// record does not carry one
	DefaultLegalMaxFAR float64 `json:"default_legal_max_far"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Economic: EconomicParameters{
			Year:                    2025,
			StateDiscountRate:       0.05,
			RentEscalationRate:      0.15,
			EscalationIntervalYears: 3,
			CostIndexHighRise:       1.0,
			CostIndexLowRise:        1.0,
		},
		Model: ModelConfig{
			CenterDensity:      10.0,
			DensityGradient:    0.1,
			DefaultLegalMaxFAR: 10.0,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file, falling back to defaults when
// the file does not exist
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
