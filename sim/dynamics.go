package sim

import (
	"math"

	"github.com/sirupsen/logrus"
)

// False-arrest levels dividing trust-building from trust-eroding policing.
const (
	lowFalseArrestLevel  = 10.0
	highFalseArrestLevel = 20.0
)

// surveillanceActions skew arrest composition toward minority and
// low-income residents once implemented.
var surveillanceActions = []ActionID{ActionCCTV, ActionDroneSurveillance, ActionFacialRecognition}

// stepMetrics computes the next round's per-district metrics from the
// previous round's values, the committed allocation, and the resolved
// action modifiers. Pure: the input metrics are never mutated.
func stepMetrics(cfg TuningConfig, prev Metrics, allocation PoliceAllocation, mods map[DistrictID]ActionModifiers, implemented ImplementedActions) Metrics {
	next := make(Metrics, len(AllDistricts))
	for _, id := range AllDistricts {
		next[id] = stepDistrict(cfg, id, prev[id], allocation.Districts[id], mods[id], implemented)
	}
	return next
}

func stepDistrict(cfg TuningConfig, id DistrictID, prev DistrictMetrics, counts ShiftCounts, mod ActionModifiers, implemented ImplementedActions) DistrictMetrics {
	district := GetDistrict(id)
	enforcement := EffectiveEnforcement(id, counts)

	// Crime: ambient growth pressure offset by enforcement and community
	// cooperation, plus this round's action effect.
	enforcementRelief := math.Min(cfg.CrimeEnforcementCoeff*enforcement, cfg.CrimeEnforcementCap)
	trustRelief := cfg.CrimeTrustCoeff * prev.CommunityTrust / 100
	crimeFactor := 1 + cfg.BaseCrimeGrowth - enforcementRelief - trustRelief + mod.CrimePct
	crimes := int(math.Round(float64(prev.CrimesReported) * crimeFactor))
	if crimes < 0 {
		crimes = 0
	}

	// Arrests: clearance scales with enforcement, is boosted by
	// surveillance actions, and suffers where witnesses won't cooperate.
	clearance := cfg.ArrestBase + cfg.ArrestEnforcementCoeff*enforcement + mod.ArrestBoost
	if prev.CommunityTrust < cfg.LowTrustThreshold {
		clearance *= cfg.LowTrustArrestPenalty
	}
	if clearance > cfg.ArrestRateCap {
		clearance = cfg.ArrestRateCap
	}
	arrests := int(math.Round(float64(crimes) * clearance))
	if arrests > crimes {
		arrests = crimes
	}
	if arrests < 0 {
		arrests = 0
	}

	// False-arrest rate drifts toward the district floor, then takes the
	// action effect on top.
	falseArrest := prev.FalseArrestRate + cfg.FalseArrestDecay*(district.FalseArrestFloor-prev.FalseArrestRate)
	falseArrest += mod.FalseArrestDelta
	falseArrest = clamp(falseArrest, 0, 100)

	// Trust reacts to the action, to how often arrests hit innocents, and
	// to visible over-policing.
	trust := prev.CommunityTrust + mod.TrustDelta
	switch {
	case falseArrest < lowFalseArrestLevel:
		trust += cfg.LowFalseArrestBonus
	case falseArrest > highFalseArrestLevel:
		trust -= cfg.HighFalseArrestMalus
	}
	if counts.Total() > cfg.OverPolicingThreshold {
		trust -= cfg.OverPolicingMalus
	}
	trust = clamp(trust, 0, 100)

	// Population drifts with livability.
	population := prev.Population
	switch {
	case trust >= 60 && crimes <= district.StartCrimes:
		population += int(math.Round(float64(population) * cfg.PopulationGrowthPct))
	case trust < 40 || crimes > int(float64(district.StartCrimes)*1.2):
		population -= int(math.Round(float64(population) * cfg.PopulationDeclinePct))
	}
	if population < 0 {
		population = 0
	}

	byRace := stepRaceComposition(cfg, id, prev.ArrestsByRace, implemented)
	byIncome := stepIncomeComposition(cfg, id, prev.ArrestsByIncome, implemented)

	logrus.Debugf("dynamics %s: enforcement=%.2f crimes=%d arrests=%d trust=%.1f falseArrest=%.1f pop=%d",
		id, enforcement, crimes, arrests, trust, falseArrest, population)

	return DistrictMetrics{
		CommunityTrust:  trust,
		CrimesReported:  crimes,
		Arrests:         arrests,
		FalseArrestRate: falseArrest,
		Population:      population,
		ArrestsByRace:   byRace,
		ArrestsByIncome: byIncome,
	}
}

// surveillanceCount returns how many surveillance-type actions the district
// has implemented, including ones newly committed this round.
func surveillanceCount(implemented ImplementedActions, id DistrictID) int {
	n := 0
	for _, a := range surveillanceActions {
		if implemented.Has(id, a) {
			n++
		}
	}
	return n
}

// stepRaceComposition drifts the arrest-by-race breakdown toward a target:
// the demographic share, skewed against minorities in proportion to the
// district's implemented surveillance. The result is renormalized to 100.
func stepRaceComposition(cfg TuningConfig, id DistrictID, prev map[Ethnicity]float64, implemented ImplementedActions) map[Ethnicity]float64 {
	district := GetDistrict(id)
	skew := 1 + cfg.SurveillanceSkew*float64(surveillanceCount(implemented, id))

	target := make(map[Ethnicity]float64, len(AllEthnicities))
	total := 0.0
	for _, e := range AllEthnicities {
		weight := 1.0
		if e != EthnicityWhite {
			weight = skew
		}
		target[e] = district.Ethnicity[e] * weight
		total += target[e]
	}

	next := make(map[Ethnicity]float64, len(AllEthnicities))
	sum := 0.0
	for _, e := range AllEthnicities {
		v := (1-cfg.CompositionBlend)*prev[e] + cfg.CompositionBlend*(target[e]/total*100)
		next[e] = v
		sum += v
	}
	for _, e := range AllEthnicities {
		next[e] = next[e] / sum * 100
	}
	return next
}

// stepIncomeComposition is the income-bracket analogue of
// stepRaceComposition, skewing against the low bracket.
func stepIncomeComposition(cfg TuningConfig, id DistrictID, prev map[IncomeBracket]float64, implemented ImplementedActions) map[IncomeBracket]float64 {
	district := GetDistrict(id)
	skew := 1 + cfg.SurveillanceSkew*float64(surveillanceCount(implemented, id))

	target := make(map[IncomeBracket]float64, len(AllIncomeBrackets))
	total := 0.0
	for _, b := range AllIncomeBrackets {
		weight := 1.0
		if b == IncomeLow {
			weight = skew
		}
		target[b] = district.Income[b] * weight
		total += target[b]
	}

	next := make(map[IncomeBracket]float64, len(AllIncomeBrackets))
	sum := 0.0
	for _, b := range AllIncomeBrackets {
		v := (1-cfg.CompositionBlend)*prev[b] + cfg.CompositionBlend*(target[b]/total*100)
		next[b] = v
		sum += v
	}
	for _, b := range AllIncomeBrackets {
		next[b] = next[b] / sum * 100
	}
	return next
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
