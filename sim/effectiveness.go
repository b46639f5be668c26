package sim

// EffectiveEnforcement converts a district's raw officer counts into an
// effective enforcement scalar, weighting each shift by the district's
// day/night effectiveness multiplier. Five officers patrolling Southside
// at night are worth more than five walking it at noon.
func EffectiveEnforcement(district DistrictID, counts ShiftCounts) float64 {
	d := GetDistrict(district)
	return float64(counts.Day)*d.DayMultiplier + float64(counts.Night)*d.NightMultiplier
}
