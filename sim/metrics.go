package sim

// DistrictMetrics is one district's snapshot for a round. Owned exclusively
// by the engine; the presentation layer only reads it.
type DistrictMetrics struct {
	CommunityTrust  float64 // 0-100
	CrimesReported  int     // >= 0
	Arrests         int     // >= 0, <= CrimesReported
	FalseArrestRate float64 // 0-100, percent of arrests involving innocents
	Population      int     // >= 0

	// Arrest composition, in percent. Each table sums to 100.
	ArrestsByRace   map[Ethnicity]float64
	ArrestsByIncome map[IncomeBracket]float64
}

// Metrics holds the per-district snapshots for one round.
type Metrics map[DistrictID]DistrictMetrics

// InitialMetrics builds the round-1 metrics from the district catalog. The
// arrest breakdowns start at the demographic shares and drift from there.
func InitialMetrics() Metrics {
	m := make(Metrics, len(AllDistricts))
	for _, id := range AllDistricts {
		d := GetDistrict(id)
		byRace := make(map[Ethnicity]float64, len(AllEthnicities))
		for _, e := range AllEthnicities {
			byRace[e] = d.Ethnicity[e]
		}
		byIncome := make(map[IncomeBracket]float64, len(AllIncomeBrackets))
		for _, b := range AllIncomeBrackets {
			byIncome[b] = d.Income[b]
		}
		m[id] = DistrictMetrics{
			CommunityTrust:  d.StartTrust,
			CrimesReported:  d.StartCrimes,
			Arrests:         d.StartArrests,
			FalseArrestRate: d.StartFalseArrestRate,
			Population:      d.StartPopulation,
			ArrestsByRace:   byRace,
			ArrestsByIncome: byIncome,
		}
	}
	return m
}

// Clone returns an independent deep copy, including the breakdown tables.
func (m Metrics) Clone() Metrics {
	out := make(Metrics, len(m))
	for id, dm := range m {
		byRace := make(map[Ethnicity]float64, len(dm.ArrestsByRace))
		for e, v := range dm.ArrestsByRace {
			byRace[e] = v
		}
		byIncome := make(map[IncomeBracket]float64, len(dm.ArrestsByIncome))
		for b, v := range dm.ArrestsByIncome {
			byIncome[b] = v
		}
		dm.ArrestsByRace = byRace
		dm.ArrestsByIncome = byIncome
		out[id] = dm
	}
	return out
}

// TotalPopulation sums population across districts.
func (m Metrics) TotalPopulation() int {
	total := 0
	for _, id := range AllDistricts {
		total += m[id].Population
	}
	return total
}

// MetricDelta is the signed change of one district's metrics versus the
// prior round, recorded on every RoundLogEntry.
type MetricDelta struct {
	TrustDelta       float64
	CrimesDelta      int
	ArrestsDelta     int
	FalseArrestDelta float64
	PopulationDelta  int
}

// MetricChanges maps each district to its round-over-round delta.
type MetricChanges map[DistrictID]MetricDelta

// diffMetrics computes the per-district deltas between two rounds.
func diffMetrics(prev, next Metrics) MetricChanges {
	changes := make(MetricChanges, len(AllDistricts))
	for _, id := range AllDistricts {
		p, n := prev[id], next[id]
		changes[id] = MetricDelta{
			TrustDelta:       n.CommunityTrust - p.CommunityTrust,
			CrimesDelta:      n.CrimesReported - p.CrimesReported,
			ArrestsDelta:     n.Arrests - p.Arrests,
			FalseArrestDelta: n.FalseArrestRate - p.FalseArrestRate,
			PopulationDelta:  n.Population - p.Population,
		}
	}
	return changes
}
