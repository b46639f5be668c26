package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/policing-sim/policing-sim/sim"
)

// ShiftEdit sets a district's absolute officer counts for one round. Zero
// values mean "leave unchanged".
type ShiftEdit struct {
	Day   int `yaml:"day"`
	Night int `yaml:"night"`
}

// ScenarioRound is one round of scripted decisions.
type ScenarioRound struct {
	Allocation map[string]ShiftEdit `yaml:"allocation"`
	Actions    map[string]string    `yaml:"actions"`
}

// Scenario is a scripted playthrough loaded from YAML: a seed, optional
// tuning overrides, and per-round decisions. Rounds beyond the listed ones
// carry the last allocation forward with no new actions.
type Scenario struct {
	Name   string            `yaml:"name"`
	Seed   int64             `yaml:"seed"`
	Tuning *sim.TuningConfig `yaml:"tuning"`
	Rounds []ScenarioRound   `yaml:"rounds"`
}

// LoadScenario reads and validates a scenario YAML file. Unknown district or
// action names are rejected here, before any round resolves.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	// Overrides land on top of the stock tuning, so a file only names the
	// coefficients it changes.
	defaults := sim.DefaultTuning()
	scenario := &Scenario{Tuning: &defaults}
	if err := yaml.Unmarshal(data, scenario); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	for i, round := range scenario.Rounds {
		for name := range round.Allocation {
			if sim.GetDistrict(sim.DistrictID(name)) == nil {
				return nil, fmt.Errorf("scenario round %d: unknown district %q", i+1, name)
			}
		}
		for name, action := range round.Actions {
			if sim.GetDistrict(sim.DistrictID(name)) == nil {
				return nil, fmt.Errorf("scenario round %d: unknown district %q", i+1, name)
			}
			if sim.GetAction(sim.ActionID(action)) == nil {
				return nil, fmt.Errorf("scenario round %d: unknown action %q", i+1, action)
			}
		}
	}
	return scenario, nil
}

// apply stages one scripted round's edits onto the state's pending
// allocation and action set. Decreases are applied before increases so a
// rebalanced round never transiently exceeds the total force.
func (r ScenarioRound) apply(state *sim.GameState) error {
	type shiftEdit struct {
		district sim.DistrictID
		shift    sim.Shift
		count    int
	}
	var decreases, increases []shiftEdit
	for _, id := range sim.AllDistricts {
		edit, ok := r.Allocation[string(id)]
		if !ok {
			continue
		}
		current := state.Allocation.Districts[id]
		if edit.Day > 0 && edit.Day != current.Day {
			e := shiftEdit{district: id, shift: sim.ShiftDay, count: edit.Day}
			if edit.Day < current.Day {
				decreases = append(decreases, e)
			} else {
				increases = append(increases, e)
			}
		}
		if edit.Night > 0 && edit.Night != current.Night {
			e := shiftEdit{district: id, shift: sim.ShiftNight, count: edit.Night}
			if edit.Night < current.Night {
				decreases = append(decreases, e)
			} else {
				increases = append(increases, e)
			}
		}
	}
	for _, e := range append(decreases, increases...) {
		if _, err := sim.SetAllocation(state, e.district, e.shift, e.count); err != nil {
			return err
		}
	}
	for _, id := range sim.AllDistricts {
		action, ok := r.Actions[string(id)]
		if !ok {
			continue
		}
		if _, err := sim.SelectAction(state, id, sim.ActionID(action)); err != nil {
			return err
		}
	}
	return nil
}
