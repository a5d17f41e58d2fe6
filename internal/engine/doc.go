// Package engine implements the team-balancing core: a serpentine draft
// that seeds an initial partition of rated players, and a randomized
// hill-climbing optimizer that swaps members between teams to minimize
// the spread of team average skill.
//
// The engine is pure computation. It performs no I/O, holds no state
// across calls, and the returned Partition is exclusively owned by the
// caller. Randomness is injected through the Source interface so that
// callers (and tests) can supply a deterministic sequence.
package engine
