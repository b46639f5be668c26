// Package report aggregates a finished game's round log into an end-of-game
// summary: per-district grades against the soft trust thresholds, bias
// peaks, and the budget trajectory. It only reads sim types; nothing here
// feeds back into the engine.
package report

import (
	"github.com/policing-sim/policing-sim/sim"
)

// DistrictGrade is one district's end-of-game evaluation.
type DistrictGrade struct {
	District   sim.DistrictID
	FinalTrust float64
	TrustFloor float64
	Passed     bool // final trust at or above the district's soft threshold

	CrimeChange      int // final crimes minus round-1 starting crimes
	PopulationChange int
}

// GameSummary aggregates statistics from a completed (or bankrupted) game.
type GameSummary struct {
	Outcome      sim.EndReason
	RoundsPlayed int

	Grades          []DistrictGrade
	DistrictsPassed int

	PeakRacialBias    float64
	PeakEconomicBias  float64
	FinalRacialBias   float64
	FinalEconomicBias float64

	FinalTreasury int
	TotalIncome   int
	TotalExpenses int

	EventCount int
}

// Summarize computes the end-of-game summary from a game state's log. Safe
// for games with an empty log (returns zero-value fields).
func Summarize(state *sim.GameState) *GameSummary {
	summary := &GameSummary{Outcome: state.EndReason}
	if len(state.GameLog) == 0 {
		return summary
	}

	summary.RoundsPlayed = len(state.GameLog)
	final := state.GameLog[len(state.GameLog)-1]

	for _, entry := range state.GameLog {
		if entry.Bias.Racial > summary.PeakRacialBias {
			summary.PeakRacialBias = entry.Bias.Racial
		}
		if entry.Bias.Economic > summary.PeakEconomicBias {
			summary.PeakEconomicBias = entry.Bias.Economic
		}
		summary.TotalIncome += entry.Budget.Income
		summary.TotalExpenses += entry.Budget.Expenses
		summary.EventCount += len(entry.SpecialEvents)
	}

	summary.FinalRacialBias = final.Bias.Racial
	summary.FinalEconomicBias = final.Bias.Economic
	summary.FinalTreasury = final.Budget.Current

	for _, id := range sim.AllDistricts {
		district := sim.GetDistrict(id)
		metrics := final.Metrics[id]
		grade := DistrictGrade{
			District:         id,
			FinalTrust:       metrics.CommunityTrust,
			TrustFloor:       district.TrustGradeFloor,
			Passed:           metrics.CommunityTrust >= district.TrustGradeFloor,
			CrimeChange:      metrics.CrimesReported - district.StartCrimes,
			PopulationChange: metrics.Population - district.StartPopulation,
		}
		if grade.Passed {
			summary.DistrictsPassed++
		}
		summary.Grades = append(summary.Grades, grade)
	}

	return summary
}
