package sim

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Budget is the treasury state after one round's economy pass. The identity
// Current == Previous + Income - Expenses holds for every logged round;
// special-event budget effects are folded into Income or Expenses as extra
// line items so the identity survives them.
type Budget struct {
	Previous int
	Income   int
	Expenses int
	Current  int

	// Details are human-readable line items for the round log and UI.
	Details []string
}

// Clone returns an independent copy.
func (b Budget) Clone() Budget {
	out := b
	out.Details = append([]string(nil), b.Details...)
	return out
}

// InitialBudget returns the round-1 treasury.
func InitialBudget(cfg TuningConfig) Budget {
	return Budget{
		Previous: cfg.StartingBudget,
		Current:  cfg.StartingBudget,
		Details:  []string{fmt.Sprintf("Opening treasury: $%s", humanize.Comma(int64(cfg.StartingBudget)))},
	}
}

// districtTaxRevenue computes one district's contribution: population times
// the bracket-weighted per-capita tax rate. Wealthier, larger districts
// contribute proportionally more.
func districtTaxRevenue(cfg TuningConfig, id DistrictID, population int) int {
	d := GetDistrict(id)
	perCapita := (d.Income[IncomeHigh]*cfg.TaxRateHigh +
		d.Income[IncomeMiddle]*cfg.TaxRateMiddle +
		d.Income[IncomeLow]*cfg.TaxRateLow) / 100
	return int(math.Round(float64(population) * perCapita))
}

// stepBudget runs the round's economy: tax income from the new population
// figures, salary expenses for the allocated force, and the one-time cost of
// each action newly implemented this round. Returns the new Budget and
// whether the treasury went insolvent.
func stepBudget(cfg TuningConfig, prev Budget, metrics Metrics, allocation PoliceAllocation, mods map[DistrictID]ActionModifiers) (Budget, bool) {
	b := Budget{Previous: prev.Current}

	for _, id := range AllDistricts {
		revenue := districtTaxRevenue(cfg, id, metrics[id].Population)
		b.Income += revenue
		b.Details = append(b.Details, fmt.Sprintf("Tax revenue (%s): $%s",
			GetDistrict(id).Name, humanize.Comma(int64(revenue))))
	}

	officers := allocation.Allocated()
	salaries := officers * cfg.OfficerSalary
	b.Expenses += salaries
	b.Details = append(b.Details, fmt.Sprintf("Officer salaries (%d x $%s): -$%s",
		officers, humanize.Comma(int64(cfg.OfficerSalary)), humanize.Comma(int64(salaries))))

	for _, id := range AllDistricts {
		mod, ok := mods[id]
		if !ok {
			continue
		}
		def := GetAction(mod.Action)
		b.Expenses += def.Cost
		b.Details = append(b.Details, fmt.Sprintf("%s (%s): -$%s",
			def.Title, GetDistrict(id).Name, humanize.Comma(int64(def.Cost))))
	}

	b.Current = b.Previous + b.Income - b.Expenses
	return b, b.Current < 0
}

// applyBudgetEffect folds a special event's budget delta into the round's
// budget as an income or expense line item, preserving the budget identity.
func applyBudgetEffect(b Budget, title string, amount int) Budget {
	out := b.Clone()
	if amount >= 0 {
		out.Income += amount
		out.Details = append(out.Details, fmt.Sprintf("%s: $%s", title, humanize.Comma(int64(amount))))
	} else {
		out.Expenses += -amount
		out.Details = append(out.Details, fmt.Sprintf("%s: -$%s", title, humanize.Comma(int64(-amount))))
	}
	out.Current = out.Previous + out.Income - out.Expenses
	return out
}
