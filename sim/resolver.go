package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ResolveRound advances the game by one round. It is a pure function of
// (state, allocation, actions): the input state is never mutated, and two
// calls with identical inputs produce identical outputs, event rolls
// included, because the round's RNG stream derives from the game seed and
// round number alone.
//
// Pipeline: validate -> action effects -> metrics dynamics -> bias + budget
// -> event triggers -> log entry assembly.
func ResolveRound(state *GameState, allocation PoliceAllocation, actions DistrictActions) (*GameState, *RoundLogEntry, error) {
	if state.EndReason != EndReasonNone {
		return nil, nil, ErrGameOver
	}
	if err := allocation.Validate(); err != nil {
		return nil, nil, err
	}

	cfg := state.Tuning
	logrus.Debugf("resolving round %d", state.CurrentRound)

	mods, nextImplemented, err := resolveActions(actions, state.Implemented, state.Metrics)
	if err != nil {
		return nil, nil, err
	}

	metrics := stepMetrics(cfg, state.Metrics, allocation, mods, nextImplemented)
	bias := ComputeBias(metrics)
	budget, insolvent := stepBudget(cfg, state.Budget, metrics, allocation, mods)

	// Events run after the main dynamics pass as a corrective layer; their
	// deltas apply exactly once, on top of the computed round.
	rng := NewPartitionedRNG(NewGameKey(state.Seed)).ForSubsystem(SubsystemEventRound(state.CurrentRound))
	metrics, budget, events := triggerEvents(cfg, metrics, budget, bias, rng)
	insolvent = budget.Current < 0

	changes := diffMetrics(state.Metrics, metrics)
	entry := &RoundLogEntry{
		Round:         state.CurrentRound,
		Allocation:    allocation.Clone(),
		Metrics:       metrics.Clone(),
		Population:    metrics.TotalPopulation(),
		Budget:        budget.Clone(),
		Bias:          bias,
		MetricChanges: changes,
		Actions:       actions.Clone(),
		Changes:       describeChanges(changes, mods),
		SpecialEvents: events,
		Feedback: buildFeedback(feedbackContext{
			cfg:     cfg,
			metrics: metrics,
			budget:  budget,
			bias:    bias,
			changes: changes,
		}),
	}

	next := &GameState{
		SessionID:      state.SessionID,
		Seed:           state.Seed,
		Tuning:         cfg,
		CurrentRound:   state.CurrentRound + 1,
		Phase:          PhaseAllocating,
		Allocation:     allocation.Clone(),
		PendingActions: make(DistrictActions),
		Implemented:    nextImplemented,
		Metrics:        metrics,
		Budget:         budget,
		Bias:           bias,
		GameLog:        append(append([]RoundLogEntry(nil), state.GameLog...), *entry),
	}

	switch {
	case insolvent:
		next.Phase = PhaseTerminal
		next.EndReason = EndReasonBankrupt
		next.CurrentRound = state.CurrentRound
		logrus.Infof("game %s bankrupt in round %d (treasury $%d)", next.SessionID, state.CurrentRound, budget.Current)
	case state.CurrentRound >= TotalRounds:
		next.Phase = PhaseTerminal
		next.EndReason = EndReasonCompleted
		next.CurrentRound = TotalRounds
		logrus.Infof("game %s completed all %d rounds", next.SessionID, TotalRounds)
	}

	return next, entry, nil
}

// describeChanges renders the per-district deltas and committed actions as
// human-readable lines for the round log.
func describeChanges(changes MetricChanges, mods map[DistrictID]ActionModifiers) []string {
	var lines []string
	for _, id := range AllDistricts {
		if mod, ok := mods[id]; ok {
			lines = append(lines, fmt.Sprintf("%s implemented in %s",
				GetAction(mod.Action).Title, GetDistrict(id).Name))
		}
		delta := changes[id]
		lines = append(lines, fmt.Sprintf("%s: crime %+d, arrests %+d, trust %+.1f, false arrests %+.1f%%, population %+d",
			GetDistrict(id).Name, delta.CrimesDelta, delta.ArrestsDelta, delta.TrustDelta,
			delta.FalseArrestDelta, delta.PopulationDelta))
	}
	return lines
}
