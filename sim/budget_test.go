package sim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistrictTaxRevenue_WeightsBrackets(t *testing.T) {
	cfg := DefaultTuning()

	// Northgate (55/35/10 split) at 45,000 residents:
	// (0.55*6 + 0.35*3 + 0.10*1) * 45000 = 4.45 * 45000
	got := districtTaxRevenue(cfg, Northgate, 45000)
	assert.Equal(t, 200_250, got)

	// A wealthier mix out-earns a poorer one at equal population.
	assert.Greater(t, districtTaxRevenue(cfg, Northgate, 50000), districtTaxRevenue(cfg, Southside, 50000))
}

func TestStepBudget_IdentityHolds(t *testing.T) {
	// GIVEN a round with one newly implemented action
	cfg := DefaultTuning()
	state := NewGame(1)
	mods, _, err := resolveActions(DistrictActions{Southside: ActionCCTV}, state.Implemented, state.Metrics)
	assert.NoError(t, err)

	// WHEN the economy pass runs
	budget, insolvent := stepBudget(cfg, state.Budget, state.Metrics, state.Allocation, mods)

	// THEN the ledger identity holds and the action cost is itemized
	assert.Equal(t, budget.Current, budget.Previous+budget.Income-budget.Expenses)
	assert.Equal(t, cfg.StartingBudget, budget.Previous)
	assert.False(t, insolvent)

	foundAction := false
	for _, line := range budget.Details {
		if strings.Contains(line, "CCTV") {
			foundAction = true
		}
	}
	assert.True(t, foundAction, "details should itemize the CCTV cost: %v", budget.Details)
}

func TestStepBudget_SalariesCoverAllocatedOfficersOnly(t *testing.T) {
	// GIVEN six officers returned to the unallocated pool
	cfg := DefaultTuning()
	state := NewGame(1)
	allocation := DefaultAllocation()
	for _, id := range AllDistricts {
		allocation.Districts[id] = ShiftCounts{Day: 2, Night: 2}
	}
	allocation.Unallocated = TotalOfficers - allocation.Allocated()
	assert.NoError(t, allocation.Validate())

	budget, _ := stepBudget(cfg, state.Budget, state.Metrics, allocation, nil)

	full, _ := stepBudget(cfg, state.Budget, state.Metrics, DefaultAllocation(), nil)
	assert.Equal(t, full.Expenses-budget.Expenses, 4*cfg.OfficerSalary)
}

func TestStepBudget_SignalsInsolvency(t *testing.T) {
	// GIVEN a nearly empty treasury and a salary bill income cannot cover
	cfg := DefaultTuning()
	cfg.OfficerSalary = 100_000
	state := NewGameWithTuning(1, cfg)
	state.Budget.Current = 10_000

	_, insolvent := stepBudget(cfg, state.Budget, state.Metrics, state.Allocation, nil)
	assert.True(t, insolvent)
}

func TestApplyBudgetEffect_PreservesIdentity(t *testing.T) {
	cfg := DefaultTuning()
	state := NewGame(1)
	budget, _ := stepBudget(cfg, state.Budget, state.Metrics, state.Allocation, nil)

	credited := applyBudgetEffect(budget, "Grant", 150_000)
	assert.Equal(t, credited.Current, credited.Previous+credited.Income-credited.Expenses)
	assert.Equal(t, budget.Current+150_000, credited.Current)

	debited := applyBudgetEffect(budget, "Settlement", -50_000)
	assert.Equal(t, debited.Current, debited.Previous+debited.Income-debited.Expenses)
	assert.Equal(t, budget.Current-50_000, debited.Current)
}
