package sim

import (
	"fmt"
	"math"
)

// DistrictID identifies one of the four fixed city districts.
type DistrictID string

const (
	Downtown  DistrictID = "downtown"
	Northgate DistrictID = "northgate"
	Southside DistrictID = "southside"
	Eastview  DistrictID = "eastview"
)

// AllDistricts lists district IDs in canonical order. Every loop that touches
// per-district state iterates this slice, never a map, so results are
// reproducible run to run.
var AllDistricts = []DistrictID{Downtown, Northgate, Southside, Eastview}

// Ethnicity labels for the demographic and arrest breakdowns.
type Ethnicity string

const (
	EthnicityWhite    Ethnicity = "white"
	EthnicityBlack    Ethnicity = "black"
	EthnicityHispanic Ethnicity = "hispanic"
	EthnicityAsian    Ethnicity = "asian"
	EthnicityOther    Ethnicity = "other"
)

// AllEthnicities lists ethnicity keys in canonical order.
var AllEthnicities = []Ethnicity{EthnicityWhite, EthnicityBlack, EthnicityHispanic, EthnicityAsian, EthnicityOther}

// IncomeBracket labels for the income-mix and arrest breakdowns.
type IncomeBracket string

const (
	IncomeHigh   IncomeBracket = "high"
	IncomeMiddle IncomeBracket = "middle"
	IncomeLow    IncomeBracket = "low"
)

// AllIncomeBrackets lists income-bracket keys in canonical order.
var AllIncomeBrackets = []IncomeBracket{IncomeHigh, IncomeMiddle, IncomeLow}

// District holds the static profile of one city district: demographic
// composition, day/night enforcement-effectiveness multipliers, and the
// starting metric values a new game begins from. Districts are immutable for
// the lifetime of a game; all round-to-round variation lives in Metrics.
type District struct {
	ID   DistrictID
	Name string

	// Demographic composition, in percent. Each table sums to 100.
	Ethnicity map[Ethnicity]float64
	Income    map[IncomeBracket]float64

	// Enforcement-effectiveness multipliers per shift. A downtown core is
	// easiest to police during business hours; a residential low-income
	// district sees most of its crime at night.
	DayMultiplier   float64
	NightMultiplier float64

	// FalseArrestFloor is the rate the false-arrest metric drifts toward
	// absent action effects.
	FalseArrestFloor float64

	// TrustGradeFloor is the soft minimum-trust threshold used only for
	// end-of-game grading. It is not enforced during play.
	TrustGradeFloor float64

	CommonCrimes []string

	// Starting metric values for round 1.
	StartTrust           float64
	StartCrimes          int
	StartArrests         int
	StartFalseArrestRate float64
	StartPopulation      int
}

// MinorityShare returns the percentage of the district's population that is
// not white. Surveillance-action penalties scale with it.
func (d *District) MinorityShare() float64 {
	return 100 - d.Ethnicity[EthnicityWhite]
}

// DiversityFactor scales action side effects that hit diverse and low-income
// districts disproportionately. Ranges roughly 0.6 (homogeneous, affluent)
// to 1.5 (highly diverse, low-income).
func (d *District) DiversityFactor() float64 {
	return 0.5 + (d.MinorityShare()+d.Income[IncomeLow])/200
}

// districtCatalog is the fixed four-district city.
var districtCatalog = map[DistrictID]*District{
	Downtown: {
		ID:   Downtown,
		Name: "Downtown",
		Ethnicity: map[Ethnicity]float64{
			EthnicityWhite: 40, EthnicityBlack: 20, EthnicityHispanic: 20, EthnicityAsian: 15, EthnicityOther: 5,
		},
		Income:               map[IncomeBracket]float64{IncomeHigh: 30, IncomeMiddle: 50, IncomeLow: 20},
		DayMultiplier:        1.00,
		NightMultiplier:      0.70,
		FalseArrestFloor:     5,
		TrustGradeFloor:      50,
		CommonCrimes:         []string{"theft", "vandalism", "assault"},
		StartTrust:           60,
		StartCrimes:          120,
		StartArrests:         48,
		StartFalseArrestRate: 10,
		StartPopulation:      50000,
	},
	Northgate: {
		ID:   Northgate,
		Name: "Northgate",
		Ethnicity: map[Ethnicity]float64{
			EthnicityWhite: 65, EthnicityBlack: 8, EthnicityHispanic: 10, EthnicityAsian: 14, EthnicityOther: 3,
		},
		Income:               map[IncomeBracket]float64{IncomeHigh: 55, IncomeMiddle: 35, IncomeLow: 10},
		DayMultiplier:        0.90,
		NightMultiplier:      0.60,
		FalseArrestFloor:     3,
		TrustGradeFloor:      60,
		CommonCrimes:         []string{"burglary", "fraud", "car theft"},
		StartTrust:           75,
		StartCrimes:          60,
		StartArrests:         27,
		StartFalseArrestRate: 6,
		StartPopulation:      45000,
	},
	Southside: {
		ID:   Southside,
		Name: "Southside",
		Ethnicity: map[Ethnicity]float64{
			EthnicityWhite: 15, EthnicityBlack: 45, EthnicityHispanic: 30, EthnicityAsian: 5, EthnicityOther: 5,
		},
		Income:               map[IncomeBracket]float64{IncomeHigh: 5, IncomeMiddle: 30, IncomeLow: 65},
		DayMultiplier:        0.70,
		NightMultiplier:      1.30,
		FalseArrestFloor:     9,
		TrustGradeFloor:      40,
		CommonCrimes:         []string{"drug offenses", "robbery", "assault"},
		StartTrust:           35,
		StartCrimes:          180,
		StartArrests:         54,
		StartFalseArrestRate: 24,
		StartPopulation:      55000,
	},
	Eastview: {
		ID:   Eastview,
		Name: "Eastview",
		Ethnicity: map[Ethnicity]float64{
			EthnicityWhite: 25, EthnicityBlack: 25, EthnicityHispanic: 30, EthnicityAsian: 15, EthnicityOther: 5,
		},
		Income:               map[IncomeBracket]float64{IncomeHigh: 15, IncomeMiddle: 45, IncomeLow: 40},
		DayMultiplier:        0.80,
		NightMultiplier:      1.10,
		FalseArrestFloor:     7,
		TrustGradeFloor:      45,
		CommonCrimes:         []string{"theft", "domestic disputes", "drug offenses"},
		StartTrust:           50,
		StartCrimes:          140,
		StartArrests:         49,
		StartFalseArrestRate: 16,
		StartPopulation:      48000,
	},
}

// GetDistrict returns the static profile for id, or nil if id is unknown.
func GetDistrict(id DistrictID) *District {
	return districtCatalog[id]
}

// LowestIncomeDistrict returns the district with the largest low-bracket
// population share. The bias calculator compares it against
// HighestIncomeDistrict.
func LowestIncomeDistrict() DistrictID {
	best := AllDistricts[0]
	for _, id := range AllDistricts[1:] {
		if districtCatalog[id].Income[IncomeLow] > districtCatalog[best].Income[IncomeLow] {
			best = id
		}
	}
	return best
}

// HighestIncomeDistrict returns the district with the largest high-bracket
// population share.
func HighestIncomeDistrict() DistrictID {
	best := AllDistricts[0]
	for _, id := range AllDistricts[1:] {
		if districtCatalog[id].Income[IncomeHigh] > districtCatalog[best].Income[IncomeHigh] {
			best = id
		}
	}
	return best
}

// init asserts the static catalog invariants. A percentage table that does
// not sum to 100 is a programming error, caught at process start rather than
// surfacing as drift mid-game.
func init() {
	for _, id := range AllDistricts {
		d, ok := districtCatalog[id]
		if !ok {
			panic(fmt.Sprintf("district catalog missing %q", id))
		}
		assertSumsTo100(fmt.Sprintf("district %s ethnicity", id), sumEthnicity(d.Ethnicity))
		assertSumsTo100(fmt.Sprintf("district %s income", id), sumIncome(d.Income))
		if d.DayMultiplier <= 0 || d.NightMultiplier <= 0 {
			panic(fmt.Sprintf("district %s has non-positive shift multiplier", id))
		}
	}
}

func sumEthnicity(table map[Ethnicity]float64) float64 {
	total := 0.0
	for _, e := range AllEthnicities {
		total += table[e]
	}
	return total
}

func sumIncome(table map[IncomeBracket]float64) float64 {
	total := 0.0
	for _, b := range AllIncomeBrackets {
		total += table[b]
	}
	return total
}

func assertSumsTo100(what string, total float64) {
	if math.Abs(total-100) > 1e-9 {
		panic(fmt.Sprintf("%s percentages sum to %v, want 100", what, total))
	}
}
