package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectAction_FacialRecognitionWithoutCCTV_Rejected(t *testing.T) {
	// GIVEN a fresh game with no implemented actions
	state := NewGame(1)

	// WHEN facial recognition is selected in a district without CCTV
	_, err := SelectAction(state, Southside, ActionFacialRecognition)

	// THEN the selection is rejected and nothing is pending
	assert.ErrorIs(t, err, ErrPrerequisiteNotMet)
	assert.Empty(t, state.PendingActions)
}

func TestSelectAction_FacialRecognitionAfterCCTV_Accepted(t *testing.T) {
	// GIVEN a game where Southside already implemented CCTV
	state := NewGame(1)
	state.Implemented[Southside] = []ActionID{ActionCCTV}

	// WHEN facial recognition is selected there
	pending, err := SelectAction(state, Southside, ActionFacialRecognition)

	// THEN it becomes the district's pending action
	assert.NoError(t, err)
	assert.Equal(t, ActionFacialRecognition, pending[Southside])
}

func TestSelectAction_AlreadyImplemented_Rejected(t *testing.T) {
	state := NewGame(1)
	state.Implemented[Downtown] = []ActionID{ActionCCTV}

	_, err := SelectAction(state, Downtown, ActionCCTV)
	assert.ErrorIs(t, err, ErrAlreadyImplemented)
}

func TestSelectAction_ActionPointsExhausted(t *testing.T) {
	// GIVEN both action points already spent on two districts
	state := NewGame(1)
	_, err := SelectAction(state, Downtown, ActionCCTV)
	assert.NoError(t, err)
	_, err = SelectAction(state, Southside, ActionEducationProgram)
	assert.NoError(t, err)

	// WHEN a third district is targeted
	_, err = SelectAction(state, Eastview, ActionReportingApp)

	// THEN the selection is rejected
	assert.ErrorIs(t, err, ErrActionPointsExhausted)

	// AND replacing an existing pending action still works
	pending, err := SelectAction(state, Downtown, ActionEducationProgram)
	assert.NoError(t, err)
	assert.Equal(t, ActionEducationProgram, pending[Downtown])
	assert.Len(t, pending, 2)
}

func TestClearAction_RefundsActionPoint(t *testing.T) {
	state := NewGame(1)
	_, _ = SelectAction(state, Downtown, ActionCCTV)
	_, _ = SelectAction(state, Southside, ActionEducationProgram)

	ClearAction(state, Downtown)

	pending, err := SelectAction(state, Eastview, ActionReportingApp)
	assert.NoError(t, err)
	assert.Equal(t, ActionReportingApp, pending[Eastview])
}

func TestResolveActions_MovesPendingToImplemented(t *testing.T) {
	// GIVEN a pending CCTV selection for Southside
	state := NewGame(1)
	pending := DistrictActions{Southside: ActionCCTV}

	// WHEN the pending set resolves
	mods, implemented, err := resolveActions(pending, state.Implemented, state.Metrics)

	// THEN the action moves into the district's history with its modifiers
	assert.NoError(t, err)
	assert.True(t, implemented.Has(Southside, ActionCCTV))
	assert.False(t, state.Implemented.Has(Southside, ActionCCTV), "input history must not be mutated")
	mod := mods[Southside]
	assert.Equal(t, ActionCCTV, mod.Action)
	assert.InDelta(t, -0.10, mod.CrimePct, 1e-9)
}

func TestResolveActions_TrustGates(t *testing.T) {
	// Southside trust (35) is below the adequate-trust line: CCTV's trust
	// malus applies and its false-arrest reduction is forfeited. Northgate
	// trust (75) is above it: no malus, reduction applies.
	state := NewGame(1)

	mods, _, err := resolveActions(DistrictActions{Southside: ActionCCTV, Northgate: ActionCCTV},
		state.Implemented, state.Metrics)
	assert.NoError(t, err)

	south := mods[Southside]
	assert.Negative(t, south.TrustDelta)
	assert.Zero(t, south.FalseArrestDelta)

	north := mods[Northgate]
	assert.Zero(t, north.TrustDelta)
	assert.Negative(t, north.FalseArrestDelta)
}

func TestResolveActions_DiversityScaling(t *testing.T) {
	// GIVEN facial recognition unlocked in both the most and least diverse
	// districts
	state := NewGame(1)
	state.Implemented[Southside] = []ActionID{ActionCCTV}
	state.Implemented[Northgate] = []ActionID{ActionCCTV}

	southMods, _, err := resolveActions(DistrictActions{Southside: ActionFacialRecognition},
		state.Implemented, state.Metrics)
	assert.NoError(t, err)
	northMods, _, err := resolveActions(DistrictActions{Northgate: ActionFacialRecognition},
		state.Implemented, state.Metrics)
	assert.NoError(t, err)

	// THEN the diverse district takes the sharper false-arrest and trust hit
	assert.Greater(t, southMods[Southside].FalseArrestDelta, northMods[Northgate].FalseArrestDelta)
	assert.Less(t, southMods[Southside].TrustDelta, northMods[Northgate].TrustDelta)
}

func TestResolveActions_OverCap_Rejected(t *testing.T) {
	state := NewGame(1)
	pending := DistrictActions{
		Downtown:  ActionCCTV,
		Southside: ActionCCTV,
		Eastview:  ActionCCTV,
	}

	_, _, err := resolveActions(pending, state.Implemented, state.Metrics)
	assert.ErrorIs(t, err, ErrActionPointsExhausted)
}
