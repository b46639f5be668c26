// Package sim provides the round-based simulation engine for the policing
// policy game: a pure state-transition function that turns a player's
// officer allocation and policy actions into next-round metrics, a budget
// ledger, and an immutable round log.
//
// # Reading Guide
//
// Start with these three files to understand the engine kernel:
//   - state.go: GameState, RoundLogEntry, and the round phase machine
//   - resolver.go: ResolveRound, the pipeline that composes every sub-model
//   - dynamics.go: the per-district crime/arrest/trust/population step
//
// # Architecture
//
// Static data lives in catalogs validated at init (district.go, actions.go).
// Player input is validated at the point of the call (allocation.go,
// action_resolver.go) so invalid decisions never reach the resolver. The
// resolver itself is pure: it never mutates its input state and derives all
// randomness from the game seed through PartitionedRNG (rng.go), so a round
// resolved twice with the same inputs is bit-for-bit identical.
//
// Aggregation over a finished game's log lives in sim/report.
package sim
