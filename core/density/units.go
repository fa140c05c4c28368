package density

// Thai land-unit conversion factors
const (
	// SqmPerRai - one rai is exactly 1600 square meters
	SqmPerRai = 1600.0

	// SqmPerWah - one square wah is exactly 4 square meters
	SqmPerWah = 4.0
)

// RaiToSqm converts rai to square meters
func RaiToSqm(rai float64) float64 {
	return rai * SqmPerRai
}

// WahToSqm converts square wah to square meters
func WahToSqm(wah float64) float64 {
	return wah * SqmPerWah
}
