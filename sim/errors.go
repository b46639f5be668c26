package sim

import (
	"errors"
	"fmt"
)

// Validation sentinels. Callers branch on these with errors.Is; the UI maps
// them to user-facing messages. A rejected call leaves the prior valid value
// in place.
var (
	// ErrPrerequisiteNotMet is returned when an action requires another
	// action to have been implemented first in the same district.
	ErrPrerequisiteNotMet = errors.New("action prerequisite not met")

	// ErrAlreadyImplemented is returned when an action has already been
	// implemented in the target district in a prior round.
	ErrAlreadyImplemented = errors.New("action already implemented in district")

	// ErrActionPointsExhausted is returned when the round's action-point
	// budget is spent and a further district would receive a new action.
	ErrActionPointsExhausted = errors.New("action points exhausted for this round")

	// ErrGameOver is returned by mutating operations on a terminal state.
	ErrGameOver = errors.New("game has ended")

	ErrUnknownDistrict = errors.New("unknown district")
	ErrUnknownAction   = errors.New("unknown action")
)

// AllocationError reports a rejected allocation edit. It wraps no sentinel:
// every allocation failure is the same kind (the edit would break the
// headcount invariants), so callers only need the reason text.
type AllocationError struct {
	District DistrictID
	Shift    Shift
	Count    int
	Reason   string
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("allocation rejected for %s %s shift (count %d): %s",
		e.District, e.Shift, e.Count, e.Reason)
}
