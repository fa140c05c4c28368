// Package catalog - authoritative construction-cost benchmark catalog
// Defines the canonical per-sqm standards by building type and the
// regional cost indices (location factors) by province. This is the
// source of truth the cost validator compares proposals against.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BuildingBenchmark is a catalog entry for one building type
type BuildingBenchmark struct {
	// BuildingType is the canonical lower-case type key
	BuildingType string

	// StandardCostPerSqm is the benchmark cost (THB/sqm, Bangkok basis)
	StandardCostPerSqm decimal.Decimal

	// BasisYear is the year the benchmark was published
	BasisYear int

	// Notes documents the benchmark source
	Notes string
}

// LocationFactor is a regional cost index entry. Bangkok is the 1.0
// reference; provinces run higher on logistics or lower on labor.
type LocationFactor struct {
	// Province is the canonical lower-case province key
	Province string

	// Factor scales the base benchmark for the province
	Factor decimal.Decimal
}

// Catalog is the benchmark registry
type Catalog struct {
	benchmarks map[string]*BuildingBenchmark
	factors    map[string]*LocationFactor
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{
		benchmarks: make(map[string]*BuildingBenchmark),
		factors:    make(map[string]*LocationFactor),
	}
}

// RegisterBenchmark adds a building-type benchmark to the catalog
func (c *Catalog) RegisterBenchmark(b BuildingBenchmark) {
	b.BuildingType = strings.ToLower(b.BuildingType)
	c.benchmarks[b.BuildingType] = &b
}

// RegisterLocationFactor adds a regional cost index to the catalog
func (c *Catalog) RegisterLocationFactor(f LocationFactor) {
	f.Province = strings.ToLower(f.Province)
	c.factors[f.Province] = &f
}

// Benchmark returns the benchmark for a building type. The lookup is
// case-insensitive; ok is false for unrecognized types.
func (c *Catalog) Benchmark(buildingType string) (*BuildingBenchmark, bool) {
	b, ok := c.benchmarks[strings.ToLower(buildingType)]
	return b, ok
}

// Factor returns the location factor for a province. The lookup is
// case-insensitive; unknown provinces fall back to the 1.0 reference.
func (c *Catalog) Factor(province string) decimal.Decimal {
	if f, ok := c.factors[strings.ToLower(province)]; ok {
		return f.Factor
	}
	return decimal.NewFromInt(1)
}

// BuildingTypes returns the registered building-type keys
func (c *Catalog) BuildingTypes() []string {
	keys := make([]string, 0, len(c.benchmarks))
	for k := range c.benchmarks {
		keys = append(keys, k)
	}
	return keys
}
