package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// === GameKey ===

// GameKey uniquely identifies a reproducible game run. Two games with the
// same GameKey and identical decisions MUST produce bit-for-bit identical
// round logs.
type GameKey int64

// NewGameKey creates a GameKey from a seed value.
func NewGameKey(seed int64) GameKey {
	return GameKey(seed)
}

// SubsystemEvents is the RNG subsystem for special-event firing.
const SubsystemEvents = "events"

// SubsystemEventRound returns the subsystem name for round n. Each round
// draws from its own stream, so re-resolving the same round (resolver
// purity) replays identical event rolls regardless of earlier draws.
func SubsystemEventRound(round int) string {
	return fmt.Sprintf("%s_round_%d", SubsystemEvents, round)
}

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per
// subsystem, derived as masterSeed XOR fnv1a64(subsystemName).
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine,
// which matches the engine's single-resolver-call-in-flight model.
type PartitionedRNG struct {
	key        GameKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a GameKey.
func NewPartitionedRNG(key GameKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem. The same subsystem name always returns the same *rand.Rand
// instance (cached). Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	derivedSeed := int64(p.key) ^ fnv1a64(name)
	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the GameKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() GameKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
