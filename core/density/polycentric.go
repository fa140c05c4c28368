package density

import "math"

// CenterParams holds the model parameters of one urban center in a
// polycentric configuration
type CenterParams struct {
	D0 float64 `json:"d0"`
	G  float64 `json:"g"`
}

// PolycentricDensity returns the density at a location influenced by
// multiple centers:
//
//	D(x) = Σ D0_i * e^(-g_i * x_i)
//
// summed over the center ids present in both maps. Ids in the distance
// map with no configured center contribute 0 and are skipped silently.
func PolycentricDensity(distances map[string]float64, centers map[string]CenterParams) float64 {
	total := 0.0
	for id, dist := range distances {
		params, ok := centers[id]
		if !ok {
			continue
		}
		total += params.D0 * math.Exp(-params.G*dist)
	}
	return total
}
