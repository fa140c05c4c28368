package density

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"land-audit/core/types"
)

func TestClassifyStatus_DefaultBands(t *testing.T) {
	cases := []struct {
		index float64
		want  types.DensityStatus
	}{
		{0, types.StatusUnderUtilization},
		{0.6, types.StatusUnderUtilization},
		{0.69, types.StatusUnderUtilization},
		{0.7, types.StatusLowDensityWarning},
		{0.75, types.StatusLowDensityWarning},
		{0.79, types.StatusLowDensityWarning},
		{0.8, types.StatusOptimal},
		{0.9, types.StatusOptimal},
		{1.1, types.StatusOptimal},
		{1.11, types.StatusHighDensityWarning},
		{1.15, types.StatusHighDensityWarning},
		{1.2, types.StatusHighDensityWarning},
		{1.21, types.StatusOverDensification},
		{1.3, types.StatusOverDensification},
		{100, types.StatusOverDensification},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyStatus(tc.index, 1.2), "index %v", tc.index)
	}
}

func TestClassifyStatus_YellowZoneBands(t *testing.T) {
	cases := []struct {
		index float64
		want  types.DensityStatus
	}{
		{0.69, types.StatusUnderUtilization},
		{0.7, types.StatusLowDensityWarning},
		{0.8, types.StatusOptimal},
		{1.0, types.StatusOptimal},
		{1.05, types.StatusHighDensityWarning},
		{1.1, types.StatusHighDensityWarning},
		{1.15, types.StatusOverDensification},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyStatus(tc.index, 1.1), "index %v", tc.index)
	}
}

// The bands must cover [0, inf) with no gaps or overlaps: a fine sweep
// must classify every point into exactly one band, and the band order
// must be monotone in the index.
func TestClassifyStatus_ExhaustiveAndOrdered(t *testing.T) {
	order := map[types.DensityStatus]int{
		types.StatusUnderUtilization:   0,
		types.StatusLowDensityWarning:  1,
		types.StatusOptimal:            2,
		types.StatusHighDensityWarning: 3,
		types.StatusOverDensification:  4,
	}
	for _, upper := range []float64{1.2, 1.1} {
		prevRank := -1
		for i := 0; i <= 3000; i++ {
			index := float64(i) / 1000.0
			status := ClassifyStatus(index, upper)
			rank, known := order[status]
			assert.True(t, known, "unknown status %q at index %v", status, index)
			assert.GreaterOrEqual(t, rank, prevRank, "band order regressed at index %v", index)
			prevRank = rank
		}
	}
}
