// Package catalog - Thai benchmark data
package catalog

import "github.com/shopspring/decimal"

// RegisterThailand populates the catalog with the Thai cost standards.
// Benchmarks follow the Comptroller General's Department standards
// (Bangkok 2024 basis); regional indices cover the provinces with
// active treasury-land audits.
func RegisterThailand(c *Catalog) {
	c.RegisterBenchmark(BuildingBenchmark{
		BuildingType:       "low-rise",
		StandardCostPerSqm: decimal.NewFromInt(15000),
		BasisYear:          2024,
		Notes:              "Comptroller General's Dept, Bangkok basis",
	})
	c.RegisterBenchmark(BuildingBenchmark{
		BuildingType:       "high-rise",
		StandardCostPerSqm: decimal.NewFromInt(30000),
		BasisYear:          2024,
		Notes:              "Comptroller General's Dept, Bangkok basis",
	})

	c.RegisterLocationFactor(LocationFactor{Province: "bangkok", Factor: decimal.NewFromFloat(1.0)})
	c.RegisterLocationFactor(LocationFactor{Province: "phuket", Factor: decimal.NewFromFloat(1.15)})
	c.RegisterLocationFactor(LocationFactor{Province: "chiang mai", Factor: decimal.NewFromFloat(1.05)})
	c.RegisterLocationFactor(LocationFactor{Province: "chonburi", Factor: decimal.NewFromFloat(1.02)})
	c.RegisterLocationFactor(LocationFactor{Province: "udon thani", Factor: decimal.NewFromFloat(0.95)})
}

// Default returns a catalog pre-loaded with the Thai standards
func Default() *Catalog {
	c := New()
	RegisterThailand(c)
	return c
}
