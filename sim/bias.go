package sim

import "math"

// BiasIndices are the city-wide equity indices derived from arrest
// composition, on a 0-100 scale. Values above TuningConfig.BiasWarningLevel
// feed the event and feedback systems.
type BiasIndices struct {
	Racial   float64
	Economic float64
}

// ComputeBias derives the disparity indices by comparing the arrest
// composition of the poorest district against the wealthiest one.
//
// Racial: mean absolute gap between black and hispanic arrest shares in the
// lowest-income district and the white arrest share in the highest-income
// district. Economic: same shape with low and middle brackets against the
// high bracket. Assumes each breakdown already sums to 100 (owned by the
// dynamics pass).
func ComputeBias(m Metrics) BiasIndices {
	poor := m[LowestIncomeDistrict()]
	rich := m[HighestIncomeDistrict()]

	whiteRich := rich.ArrestsByRace[EthnicityWhite]
	racial := (math.Abs(poor.ArrestsByRace[EthnicityBlack]-whiteRich) +
		math.Abs(poor.ArrestsByRace[EthnicityHispanic]-whiteRich)) / 2

	highRich := rich.ArrestsByIncome[IncomeHigh]
	economic := (math.Abs(poor.ArrestsByIncome[IncomeLow]-highRich) +
		math.Abs(poor.ArrestsByIncome[IncomeMiddle]-highRich)) / 2

	return BiasIndices{
		Racial:   clamp(racial, 0, 100),
		Economic: clamp(economic, 0, 100),
	}
}
