package sim

import "strings"

// feedbackRule is one row of the narrative table: a threshold condition on
// the freshly resolved round and the sentence it contributes. Rules are
// data, so tests can exercise selection without string-matching prose.
type feedbackRule struct {
	id        string
	condition func(ctx feedbackContext) bool
	sentence  string
}

type feedbackContext struct {
	cfg     TuningConfig
	metrics Metrics
	budget  Budget
	bias    BiasIndices
	changes MetricChanges
}

func (ctx feedbackContext) averageTrust() float64 {
	total := 0.0
	for _, id := range AllDistricts {
		total += ctx.metrics[id].CommunityTrust
	}
	return total / float64(len(AllDistricts))
}

func (ctx feedbackContext) anyDistrict(pred func(DistrictMetrics) bool) bool {
	for _, id := range AllDistricts {
		if pred(ctx.metrics[id]) {
			return true
		}
	}
	return false
}

func (ctx feedbackContext) totalCrimeDelta() int {
	total := 0
	for _, id := range AllDistricts {
		total += ctx.changes[id].CrimesDelta
	}
	return total
}

// feedbackRules is evaluated in order; every matching sentence joins the
// round's feedback string.
var feedbackRules = []feedbackRule{
	{
		id:        "trust_collapsing",
		condition: func(ctx feedbackContext) bool { return ctx.averageTrust() < 35 },
		sentence:  "Community trust in the police is collapsing city-wide; residents are stopping cooperation with investigations.",
	},
	{
		id: "false_arrests_high",
		condition: func(ctx feedbackContext) bool {
			return ctx.anyDistrict(func(m DistrictMetrics) bool { return m.FalseArrestRate > highFalseArrestLevel })
		},
		sentence: "Too many arrests are sweeping up innocent people; civil-liberties groups are demanding accountability.",
	},
	{
		id:        "bias_warning",
		condition: func(ctx feedbackContext) bool { return ctx.bias.Racial > ctx.cfg.BiasWarningLevel || ctx.bias.Economic > ctx.cfg.BiasWarningLevel },
		sentence:  "Arrest statistics show your enforcement falls hardest on minority and low-income residents.",
	},
	{
		id:        "budget_deficit",
		condition: func(ctx feedbackContext) bool { return ctx.budget.Expenses > ctx.budget.Income },
		sentence:  "The department spent more than the city collected this round; the treasury is shrinking.",
	},
	{
		id:        "budget_low",
		condition: func(ctx feedbackContext) bool { return ctx.budget.Current >= 0 && ctx.budget.Current < 200_000 },
		sentence:  "City funds are running low; another expensive program could bankrupt the city.",
	},
	{
		id:        "crime_rising",
		condition: func(ctx feedbackContext) bool { return ctx.totalCrimeDelta() > 0 },
		sentence:  "Reported crime rose overall despite your deployments.",
	},
	{
		id:        "crime_falling",
		condition: func(ctx feedbackContext) bool { return ctx.totalCrimeDelta() < 0 && ctx.averageTrust() >= 50 },
		sentence:  "Crime is trending down and communities are noticing; keep the balance between enforcement and trust.",
	},
}

// steadyFallback is used when no rule matches.
const steadyFallback = "The city held steady this round. Watch the per-district numbers for early warning signs."

// buildFeedback evaluates the rule table and joins the matching sentences
// into the round's narrative string.
func buildFeedback(ctx feedbackContext) string {
	var sentences []string
	for _, rule := range feedbackRules {
		if rule.condition(ctx) {
			sentences = append(sentences, rule.sentence)
		}
	}
	if len(sentences) == 0 {
		return steadyFallback
	}
	return strings.Join(sentences, " ")
}
