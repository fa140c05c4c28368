package density

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolycentricDensity_TwoCenters(t *testing.T) {
	centers := map[string]CenterParams{
		"CBD_1": {D0: 10, G: 0.1},
		"CBD_2": {D0: 5, G: 0.2},
	}
	distances := map[string]float64{"CBD_1": 5, "CBD_2": 2}

	// 10*e^-0.5 + 5*e^-0.4 = 6.0653 + 3.3516 = 9.4169
	got := PolycentricDensity(distances, centers)
	assert.InDelta(t, 9.4169, got, 1e-4)
}

func TestPolycentricDensity_EqualsSumOfSingleCenters(t *testing.T) {
	centers := map[string]CenterParams{
		"a": {D0: 10, G: 0.1},
		"b": {D0: 5, G: 0.2},
		"c": {D0: 2, G: 0.05},
	}
	distances := map[string]float64{"a": 5, "b": 2, "c": 8}

	sum := 0.0
	for id, c := range centers {
		sum += ModelParams{CenterDensity: c.D0, Gradient: c.G}.TheoreticalDensity(distances[id])
	}
	assert.InDelta(t, sum, PolycentricDensity(distances, centers), 1e-12)
}

func TestPolycentricDensity_UnconfiguredCenterContributesZero(t *testing.T) {
	centers := map[string]CenterParams{"CBD_1": {D0: 10, G: 0.1}}
	distances := map[string]float64{"CBD_1": 5, "GHOST": 1}

	withGhost := PolycentricDensity(distances, centers)
	without := PolycentricDensity(map[string]float64{"CBD_1": 5}, centers)
	assert.Equal(t, without, withGhost)
}

func TestPolycentricDensity_Empty(t *testing.T) {
	assert.Equal(t, 0.0, PolycentricDensity(nil, nil))
	assert.Equal(t, 0.0, PolycentricDensity(map[string]float64{"x": 1}, nil))
}
