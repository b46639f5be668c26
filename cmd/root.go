package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/policing-sim/policing-sim/sim"
	"github.com/policing-sim/policing-sim/sim/report"
)

var (
	// CLI flags
	seed         int64  // Seed for the event-trigger RNG streams
	rounds       int    // Rounds to play when no scenario scripts them
	logLevel     string // Log verbosity level
	scenarioFile string // Path to a scripted-scenario YAML file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "policing-sim",
	Short: "Round-based policing-policy simulator",
}

// runCmd plays a game to completion and prints the end-of-game report. With
// --scenario it replays the scripted decisions; otherwise it resolves every
// round on the default allocation with no actions.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play a full game and print the report",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		var scenario *Scenario
		if scenarioFile != "" {
			scenario, err = LoadScenario(scenarioFile)
			if err != nil {
				logrus.Fatalf("Could not load scenario: %v", err)
			}
			seed = scenario.Seed
		}

		state := sim.NewGame(seed)
		if scenario != nil && scenario.Tuning != nil {
			state = sim.NewGameWithTuning(seed, *scenario.Tuning)
		}

		maxRounds := rounds
		if maxRounds <= 0 || maxRounds > sim.TotalRounds {
			maxRounds = sim.TotalRounds
		}

		for state.EndReason == sim.EndReasonNone && state.CurrentRound <= maxRounds {
			if scenario != nil && state.CurrentRound <= len(scenario.Rounds) {
				if err := scenario.Rounds[state.CurrentRound-1].apply(state); err != nil {
					logrus.Fatalf("Round %d decisions rejected: %v", state.CurrentRound, err)
				}
			}
			next, entry, err := sim.ResolveRound(state, state.Allocation, state.PendingActions)
			if err != nil {
				logrus.Fatalf("Round %d failed to resolve: %v", state.CurrentRound, err)
			}
			printRound(entry)
			state = next
		}

		printSummary(report.Summarize(state))
	},
}

func printRound(entry *sim.RoundLogEntry) {
	fmt.Printf("--- Round %d ---\n", entry.Round)
	for _, line := range entry.Changes {
		fmt.Println("  " + line)
	}
	for _, ev := range entry.SpecialEvents {
		fmt.Printf("  ! %s: %s\n", ev.Title, ev.Message)
	}
	fmt.Printf("  Treasury: $%s (income $%s, expenses $%s)\n",
		humanize.Comma(int64(entry.Budget.Current)),
		humanize.Comma(int64(entry.Budget.Income)),
		humanize.Comma(int64(entry.Budget.Expenses)))
	fmt.Printf("  %s\n", entry.Feedback)
}

func printSummary(s *report.GameSummary) {
	fmt.Println("=== Game Summary ===")
	fmt.Printf("Outcome              : %s\n", s.Outcome)
	fmt.Printf("Rounds played        : %d\n", s.RoundsPlayed)
	fmt.Printf("Districts passing    : %d/%d\n", s.DistrictsPassed, len(s.Grades))
	for _, g := range s.Grades {
		status := "below"
		if g.Passed {
			status = "met"
		}
		fmt.Printf("  %-10s trust %.1f (%s floor %.0f), crime %+d, population %+d\n",
			g.District, g.FinalTrust, status, g.TrustFloor, g.CrimeChange, g.PopulationChange)
	}
	fmt.Printf("Peak bias            : racial %.1f, economic %.1f\n", s.PeakRacialBias, s.PeakEconomicBias)
	fmt.Printf("Final treasury       : $%s\n", humanize.Comma(int64(s.FinalTreasury)))
	fmt.Printf("Special events fired : %d\n", s.EventCount)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for special-event randomness")
	runCmd.Flags().IntVar(&rounds, "rounds", sim.TotalRounds, "Rounds to play (capped at 10)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&scenarioFile, "scenario", "", "Scripted-scenario YAML file")

	rootCmd.AddCommand(runCmd)
}
