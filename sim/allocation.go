package sim

// Shift is one of the two patrol shifts.
type Shift string

const (
	ShiftDay   Shift = "day"
	ShiftNight Shift = "night"
)

const (
	// TotalOfficers is the city's fixed police headcount. Every allocation
	// must satisfy sum(day+night over districts) + unallocated == TotalOfficers.
	TotalOfficers = 20

	// MinOfficersPerShift is the floor for each district shift. A district
	// is never left without coverage.
	MinOfficersPerShift = 1
)

// ShiftCounts holds one district's officer counts per shift.
type ShiftCounts struct {
	Day   int
	Night int
}

// Total returns the district's combined headcount across both shifts.
func (s ShiftCounts) Total() int {
	return s.Day + s.Night
}

// PoliceAllocation assigns the city's officers to district shifts, with the
// remainder in an unallocated pool.
type PoliceAllocation struct {
	Districts   map[DistrictID]ShiftCounts
	Unallocated int
}

// DefaultAllocation returns the round-1 allocation: five officers per
// district, three on days and two on nights, none unallocated.
func DefaultAllocation() PoliceAllocation {
	a := PoliceAllocation{Districts: make(map[DistrictID]ShiftCounts, len(AllDistricts))}
	for _, id := range AllDistricts {
		a.Districts[id] = ShiftCounts{Day: 3, Night: 2}
	}
	a.Unallocated = TotalOfficers - a.Allocated()
	return a
}

// Allocated returns the number of officers assigned to any district shift.
func (a PoliceAllocation) Allocated() int {
	total := 0
	for _, id := range AllDistricts {
		total += a.Districts[id].Total()
	}
	return total
}

// Clone returns an independent copy. RoundLogEntry snapshots depend on this:
// a logged allocation must not alias the live one.
func (a PoliceAllocation) Clone() PoliceAllocation {
	out := PoliceAllocation{
		Districts:   make(map[DistrictID]ShiftCounts, len(a.Districts)),
		Unallocated: a.Unallocated,
	}
	for id, counts := range a.Districts {
		out.Districts[id] = counts
	}
	return out
}

// Validate checks the headcount invariants.
func (a PoliceAllocation) Validate() error {
	for _, id := range AllDistricts {
		counts := a.Districts[id]
		if counts.Day < MinOfficersPerShift {
			return &AllocationError{District: id, Shift: ShiftDay, Count: counts.Day,
				Reason: "each shift needs at least one officer"}
		}
		if counts.Night < MinOfficersPerShift {
			return &AllocationError{District: id, Shift: ShiftNight, Count: counts.Night,
				Reason: "each shift needs at least one officer"}
		}
	}
	if a.Allocated()+a.Unallocated != TotalOfficers {
		return &AllocationError{Reason: "allocation does not account for the full force"}
	}
	if a.Unallocated < 0 {
		return &AllocationError{Reason: "allocation exceeds the total force"}
	}
	return nil
}

// withShift returns a copy of the allocation with one district shift set to
// count and the unallocated pool rebalanced. It does not validate.
func (a PoliceAllocation) withShift(district DistrictID, shift Shift, count int) PoliceAllocation {
	out := a.Clone()
	counts := out.Districts[district]
	if shift == ShiftDay {
		counts.Day = count
	} else {
		counts.Night = count
	}
	out.Districts[district] = counts
	out.Unallocated = TotalOfficers - out.Allocated()
	return out
}

// SetAllocation applies one shift-count edit to the state's pending
// allocation. The edit is validated against the 20-officer and
// one-per-shift invariants; on rejection the prior allocation is returned
// unchanged alongside the error.
func SetAllocation(state *GameState, district DistrictID, shift Shift, count int) (PoliceAllocation, error) {
	if state.EndReason != EndReasonNone {
		return state.Allocation, ErrGameOver
	}
	if GetDistrict(district) == nil {
		return state.Allocation, ErrUnknownDistrict
	}
	if shift != ShiftDay && shift != ShiftNight {
		return state.Allocation, &AllocationError{District: district, Shift: shift, Count: count,
			Reason: "unknown shift"}
	}
	candidate := state.Allocation.withShift(district, shift, count)
	if err := candidate.Validate(); err != nil {
		return state.Allocation, err
	}
	state.Allocation = candidate
	return candidate, nil
}
