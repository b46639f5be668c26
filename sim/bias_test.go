package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogIncomeExtremes(t *testing.T) {
	// The bias comparison anchors on these two districts.
	assert.Equal(t, Southside, LowestIncomeDistrict())
	assert.Equal(t, Northgate, HighestIncomeDistrict())
}

func TestComputeBias_ExactFormula(t *testing.T) {
	// GIVEN crafted arrest compositions in the two anchor districts
	m := InitialMetrics()

	south := m[Southside]
	south.ArrestsByRace = map[Ethnicity]float64{
		EthnicityWhite: 10, EthnicityBlack: 50, EthnicityHispanic: 30, EthnicityAsian: 5, EthnicityOther: 5,
	}
	south.ArrestsByIncome = map[IncomeBracket]float64{IncomeHigh: 5, IncomeMiddle: 25, IncomeLow: 70}
	m[Southside] = south

	north := m[Northgate]
	north.ArrestsByRace = map[Ethnicity]float64{
		EthnicityWhite: 60, EthnicityBlack: 10, EthnicityHispanic: 15, EthnicityAsian: 10, EthnicityOther: 5,
	}
	north.ArrestsByIncome = map[IncomeBracket]float64{IncomeHigh: 50, IncomeMiddle: 35, IncomeLow: 15}
	m[Northgate] = north

	// WHEN the indices are computed
	got := ComputeBias(m)

	// THEN racial = (|50-60| + |30-60|) / 2 and economic = (|70-50| + |25-50|) / 2
	assert.InDelta(t, 20.0, got.Racial, 1e-9)
	assert.InDelta(t, 22.5, got.Economic, 1e-9)
}

func TestComputeBias_InitialStateBelowWarning(t *testing.T) {
	got := ComputeBias(InitialMetrics())

	cfg := DefaultTuning()
	assert.Less(t, got.Racial, cfg.BiasWarningLevel)
	assert.GreaterOrEqual(t, got.Racial, 0.0)
	assert.LessOrEqual(t, got.Racial, 100.0)
	assert.LessOrEqual(t, got.Economic, 100.0)
}
