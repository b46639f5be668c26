package sim

// ActionPointsPerRound caps how many districts may receive a new action in
// the same round.
const ActionPointsPerRound = 2

// ActionModifiers is the resolved per-district effect bundle for one round.
// Zero value means "no action here this round".
type ActionModifiers struct {
	Action           ActionID
	CrimePct         float64
	TrustDelta       float64
	FalseArrestDelta float64
	ArrestBoost      float64
}

// validateSelection checks one pending action against the district's
// implementation history. Shared by SelectAction (interactive path) and
// resolveActions (commit path): the commit path re-validates because the
// pending map may have been assembled by a caller that bypassed SelectAction.
func validateSelection(implemented ImplementedActions, district DistrictID, action ActionID) error {
	def := GetAction(action)
	if def == nil {
		return ErrUnknownAction
	}
	if implemented.Has(district, action) {
		return ErrAlreadyImplemented
	}
	if def.Prerequisite != "" && !implemented.Has(district, def.Prerequisite) {
		return ErrPrerequisiteNotMet
	}
	return nil
}

// SelectAction records a pending action for a district on the state's
// uncommitted decision set. Rejections leave the pending set unchanged.
// Re-selecting a different action for a district that already has one
// pending replaces it and does not consume an extra action point.
func SelectAction(state *GameState, district DistrictID, action ActionID) (DistrictActions, error) {
	if state.EndReason != EndReasonNone {
		return state.PendingActions, ErrGameOver
	}
	if GetDistrict(district) == nil {
		return state.PendingActions, ErrUnknownDistrict
	}
	if err := validateSelection(state.Implemented, district, action); err != nil {
		return state.PendingActions, err
	}
	if _, replacing := state.PendingActions[district]; !replacing && len(state.PendingActions) >= ActionPointsPerRound {
		return state.PendingActions, ErrActionPointsExhausted
	}
	state.PendingActions[district] = action
	return state.PendingActions, nil
}

// ClearAction removes a district's pending action, refunding its action
// point. No-op if none is pending.
func ClearAction(state *GameState, district DistrictID) DistrictActions {
	delete(state.PendingActions, district)
	return state.PendingActions
}

// resolveActions turns the committed pending set into per-district modifier
// bundles and the updated implementation history. Effect profiles that are
// diversity-scaled or trust-gated are made concrete here against the
// district's static profile and previous-round trust.
func resolveActions(pending DistrictActions, implemented ImplementedActions, metrics Metrics) (map[DistrictID]ActionModifiers, ImplementedActions, error) {
	if len(pending) > ActionPointsPerRound {
		return nil, nil, ErrActionPointsExhausted
	}

	mods := make(map[DistrictID]ActionModifiers, len(pending))
	next := implemented.Clone()
	for _, districtID := range AllDistricts {
		action, ok := pending[districtID]
		if !ok {
			continue
		}
		if err := validateSelection(implemented, districtID, action); err != nil {
			return nil, nil, err
		}
		def := GetAction(action)
		district := GetDistrict(districtID)
		trust := metrics[districtID].CommunityTrust

		m := ActionModifiers{
			Action:      action,
			CrimePct:    def.CrimePct,
			ArrestBoost: def.ArrestBoost,
		}

		m.TrustDelta = def.TrustDelta
		if def.TrustLowOnly && trust >= AdequateTrust {
			m.TrustDelta = 0
		}

		m.FalseArrestDelta = def.FalseArrestDelta
		if def.FalseArrestTrustGated && trust < AdequateTrust {
			m.FalseArrestDelta = 0
		}

		if def.DiversityScaled {
			factor := district.DiversityFactor()
			m.FalseArrestDelta *= factor
			if m.TrustDelta < 0 {
				m.TrustDelta *= factor
			}
		}

		mods[districtID] = m
		next[districtID] = append(next[districtID], action)
	}
	return mods, next, nil
}
