package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBenchmarkLookupIsCaseInsensitive(t *testing.T) {
	c := Default()

	for _, key := range []string{"high-rise", "HIGH-RISE", "High-Rise"} {
		b, ok := c.Benchmark(key)
		if !ok {
			t.Fatalf("expected benchmark for %q", key)
		}
		if !b.StandardCostPerSqm.Equal(decimal.NewFromInt(30000)) {
			t.Errorf("high-rise standard: got %s, want 30000", b.StandardCostPerSqm)
		}
	}

	if _, ok := c.Benchmark("mid-rise"); ok {
		t.Error("expected no benchmark for mid-rise")
	}
}

func TestFactorFallsBackToReference(t *testing.T) {
	c := Default()

	if f := c.Factor("Phuket"); !f.Equal(decimal.NewFromFloat(1.15)) {
		t.Errorf("phuket factor: got %s, want 1.15", f)
	}
	if f := c.Factor("udon thani"); !f.Equal(decimal.NewFromFloat(0.95)) {
		t.Errorf("udon thani factor: got %s, want 0.95", f)
	}
	if f := c.Factor("nowhere"); !f.Equal(decimal.NewFromInt(1)) {
		t.Errorf("unknown province factor: got %s, want 1", f)
	}
	if f := c.Factor(""); !f.Equal(decimal.NewFromInt(1)) {
		t.Errorf("empty province factor: got %s, want 1", f)
	}
}

func TestRegisterNormalizesKeys(t *testing.T) {
	c := New()
	c.RegisterBenchmark(BuildingBenchmark{
		BuildingType:       "Warehouse",
		StandardCostPerSqm: decimal.NewFromInt(8000),
	})

	if _, ok := c.Benchmark("warehouse"); !ok {
		t.Error("expected lower-case lookup to find mixed-case registration")
	}

	types := c.BuildingTypes()
	if len(types) != 1 || types[0] != "warehouse" {
		t.Errorf("building types: got %v", types)
	}
}
