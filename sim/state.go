package sim

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TotalRounds is how many rounds a full game runs.
const TotalRounds = 10

// Phase is the state machine's position within the round cycle.
type Phase string

const (
	// PhaseAllocating accepts allocation edits and action selections.
	PhaseAllocating Phase = "allocating"
	// PhaseResolving and PhaseSummarizing exist only inside a
	// ResolveRound call; callers never observe them on a returned state.
	PhaseResolving   Phase = "resolving"
	PhaseSummarizing Phase = "summarizing"
	// PhaseTerminal means the game ended; see EndReason.
	PhaseTerminal Phase = "terminal"
)

// EndReason distinguishes the terminal outcomes.
type EndReason string

const (
	EndReasonNone      EndReason = ""
	EndReasonCompleted EndReason = "completed"
	EndReasonBankrupt  EndReason = "bankrupt"
)

// RoundLogEntry is the immutable record of one resolved round. Every field
// is a snapshot copy; appending an entry never aliases live state.
type RoundLogEntry struct {
	Round      int
	Allocation PoliceAllocation
	Metrics    Metrics
	Population int
	Budget     Budget
	Bias       BiasIndices

	MetricChanges MetricChanges
	Actions       DistrictActions
	Changes       []string
	SpecialEvents []SpecialEvent
	Feedback      string
}

// GameState is the complete engine state between rounds. A GameState is
// replaced wholesale by ResolveRound, never mutated in place, so log entries
// and concurrent readers stay trustworthy. Allocation edits and action
// selections before a round commits are the only in-place mutations, and
// they touch pending, uncommitted fields only.
type GameState struct {
	SessionID uuid.UUID
	Seed      int64
	Tuning    TuningConfig

	CurrentRound int // 1..TotalRounds
	Phase        Phase
	EndReason    EndReason

	Allocation     PoliceAllocation
	PendingActions DistrictActions
	Implemented    ImplementedActions

	Metrics Metrics
	Budget  Budget
	Bias    BiasIndices

	GameLog []RoundLogEntry
}

// NewGame creates the round-1 state: default allocation, catalog starting
// metrics, opening treasury, empty log. The seed fixes the event streams for
// the whole game.
func NewGame(seed int64) *GameState {
	return NewGameWithTuning(seed, DefaultTuning())
}

// NewGameWithTuning is NewGame with explicit coefficients, used by scenario
// files that override the stock tuning.
func NewGameWithTuning(seed int64, cfg TuningConfig) *GameState {
	state := &GameState{
		SessionID:      uuid.New(),
		Seed:           seed,
		Tuning:         cfg,
		CurrentRound:   1,
		Phase:          PhaseAllocating,
		Allocation:     DefaultAllocation(),
		PendingActions: make(DistrictActions),
		Implemented:    make(ImplementedActions),
		Metrics:        InitialMetrics(),
		Budget:         InitialBudget(cfg),
	}
	state.Bias = ComputeBias(state.Metrics)
	logrus.Infof("new game %s (seed %d)", state.SessionID, seed)
	return state
}

// Restart abandons the game and returns a fresh round-1 state under the same
// seed. The old state remains valid for whoever still holds it.
func Restart(state *GameState) *GameState {
	return NewGameWithTuning(state.Seed, state.Tuning)
}
