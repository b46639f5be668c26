package sim

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// MaxEventsPerRound caps how many special events fire in one round.
const MaxEventsPerRound = 3

// SpecialEvent is one fired event: narrative plus the numeric side effects
// it applied. District is empty for city-wide events.
type SpecialEvent struct {
	ID      string
	Title   string
	Message string

	District         DistrictID
	BudgetEffect     int
	TrustEffect      float64
	CrimeEffect      int // absolute crime delta; crimePctEffect on the rule is resolved to this
	PopulationEffect int
}

// eventRule is one row of the trigger table. Condition is evaluated against
// the post-dynamics state; a rule with Probability < 1 additionally needs a
// passing roll from the round's event RNG stream. Per-district rules bind to
// the first matching district in canonical order.
type eventRule struct {
	id          string
	title       string
	probability float64 // 1 = deterministic

	// condition returns whether the rule matches and, for per-district
	// rules, which district it binds to.
	condition func(ctx eventContext) (DistrictID, bool)

	budgetEffect     int
	trustEffect      float64
	crimePctEffect   float64
	populationPct    float64
	message          func(district DistrictID) string
}

type eventContext struct {
	cfg     TuningConfig
	metrics Metrics
	budget  Budget
	bias    BiasIndices
}

// firstDistrict returns the first district in canonical order satisfying
// pred.
func firstDistrict(m Metrics, pred func(DistrictMetrics, *District) bool) (DistrictID, bool) {
	for _, id := range AllDistricts {
		if pred(m[id], GetDistrict(id)) {
			return id, true
		}
	}
	return "", false
}

// eventRules is the fixed trigger table, evaluated top to bottom.
var eventRules = []eventRule{
	{
		id: "civil_rights_investigation", title: "Civil Rights Investigation", probability: 1,
		condition: func(ctx eventContext) (DistrictID, bool) {
			return firstDistrict(ctx.metrics, func(m DistrictMetrics, _ *District) bool {
				return m.FalseArrestRate > 25
			})
		},
		budgetEffect: -50_000, trustEffect: -5,
		message: func(d DistrictID) string {
			return "Federal investigators opened a probe into wrongful arrests in " + GetDistrict(d).Name + ". Legal costs mount and residents lose faith."
		},
	},
	{
		id: "street_protest", title: "Street Protests", probability: 0.6,
		condition: func(ctx eventContext) (DistrictID, bool) {
			return firstDistrict(ctx.metrics, func(m DistrictMetrics, _ *District) bool {
				return m.CommunityTrust < 25
			})
		},
		trustEffect: -3, crimePctEffect: 0.08,
		message: func(d DistrictID) string {
			return "Distrust of the police boiled over into protests in " + GetDistrict(d).Name + ". Clashes drove reported incidents up."
		},
	},
	{
		id: "crime_wave", title: "Crime Wave", probability: 1,
		condition: func(ctx eventContext) (DistrictID, bool) {
			return firstDistrict(ctx.metrics, func(m DistrictMetrics, d *District) bool {
				return m.CrimesReported > int(float64(d.StartCrimes)*1.3)
			})
		},
		trustEffect: -2, crimePctEffect: 0.08,
		message: func(d DistrictID) string {
			return "An organized crime wave swept " + GetDistrict(d).Name + ", outpacing the patrols stationed there."
		},
	},
	{
		id: "bias_expose", title: "Disparity Exposé", probability: 1,
		condition: func(ctx eventContext) (DistrictID, bool) {
			if ctx.bias.Racial > ctx.cfg.BiasWarningLevel+10 {
				return LowestIncomeDistrict(), true
			}
			return "", false
		},
		trustEffect: -4,
		message: func(d DistrictID) string {
			return "Investigative journalists published arrest statistics showing stark racial disparity, centering on " + GetDistrict(d).Name + "."
		},
	},
	{
		id: "federal_grant", title: "Federal Assistance Grant", probability: 0.5,
		condition: func(ctx eventContext) (DistrictID, bool) {
			return "", ctx.budget.Current < 200_000
		},
		budgetEffect: 150_000,
		message: func(DistrictID) string {
			return "With the city treasury running low, a federal public-safety grant came through."
		},
	},
	{
		id: "community_rally", title: "Community Rally", probability: 0.4,
		condition: func(ctx eventContext) (DistrictID, bool) {
			return firstDistrict(ctx.metrics, func(m DistrictMetrics, _ *District) bool {
				return m.CommunityTrust >= 80
			})
		},
		trustEffect: 3, populationPct: 0.004,
		message: func(d DistrictID) string {
			return "Residents of " + GetDistrict(d).Name + " rallied in support of community policing. New families are moving in."
		},
	},
	{
		id: "resident_exodus", title: "Resident Exodus", probability: 1,
		condition: func(ctx eventContext) (DistrictID, bool) {
			return firstDistrict(ctx.metrics, func(m DistrictMetrics, _ *District) bool {
				return m.CommunityTrust < 20 && m.FalseArrestRate > 20
			})
		},
		populationPct: -0.02,
		message: func(d DistrictID) string {
			return "Families who can afford to leave " + GetDistrict(d).Name + " are doing so, citing fear of wrongful arrest."
		},
	},
}

// triggerEvents evaluates the rule table against the post-dynamics state and
// fires at most MaxEventsPerRound events, applying each event's deltas
// exactly once on top of the already-computed metrics and budget. The rng
// must come from the round's isolated event stream so firing is reproducible.
func triggerEvents(cfg TuningConfig, metrics Metrics, budget Budget, bias BiasIndices, rng *rand.Rand) (Metrics, Budget, []SpecialEvent) {
	ctx := eventContext{cfg: cfg, metrics: metrics, budget: budget, bias: bias}

	var fired []SpecialEvent
	outMetrics := metrics.Clone()
	outBudget := budget.Clone()

	for _, rule := range eventRules {
		if len(fired) >= MaxEventsPerRound {
			break
		}
		district, matched := rule.condition(ctx)
		if !matched {
			continue
		}
		// Probabilistic rules consume a roll only when their condition
		// matches, keeping unrelated state changes from perturbing the
		// stream for later rules.
		if rule.probability < 1 && rng.Float64() >= rule.probability {
			continue
		}

		ev := SpecialEvent{
			ID:           rule.id,
			Title:        rule.title,
			Message:      rule.message(district),
			District:     district,
			BudgetEffect: rule.budgetEffect,
			TrustEffect:  rule.trustEffect,
		}

		if district != "" {
			dm := outMetrics[district]
			if rule.crimePctEffect != 0 {
				ev.CrimeEffect = int(math.Round(float64(dm.CrimesReported) * rule.crimePctEffect))
				dm.CrimesReported += ev.CrimeEffect
				if dm.CrimesReported < 0 {
					dm.CrimesReported = 0
				}
			}
			if rule.trustEffect != 0 {
				dm.CommunityTrust = clamp(dm.CommunityTrust+rule.trustEffect, 0, 100)
			}
			if rule.populationPct != 0 {
				ev.PopulationEffect = int(math.Round(float64(dm.Population) * rule.populationPct))
				dm.Population += ev.PopulationEffect
				if dm.Population < 0 {
					dm.Population = 0
				}
			}
			outMetrics[district] = dm
		}
		if rule.budgetEffect != 0 {
			outBudget = applyBudgetEffect(outBudget, rule.title, rule.budgetEffect)
		}

		logrus.Debugf("event fired: %s (district=%s)", rule.id, district)
		fired = append(fired, ev)
	}

	return outMetrics, outBudget, fired
}
