// Package critical ranks every acquisition order of a set of exactly
// SetSize critical skills by the total time those skills spend waiting to
// start.
//
// An order is walked left to right on a single learner's timeline:
//
//	clock=0 ─► [external prereqs of s₁?] ─► s₁ ─► [external prereqs of s₂?] ─► s₂ ─► …
//
// The wait of a skill is the time elapsed before it can start. The score of
// an order is the sum of its waits, so orders that finish cheap skills early
// rank first.
//
// External prerequisites (outside the critical set) follow an ExternalPolicy:
//   - PreSatisfied (default): already held at time 0 and cost nothing.
//   - AcquireOnDemand: acquired right before the first critical skill that
//     needs them; a prerequisite shared by several critical skills is paid
//     once.
//
// An order that places a skill before one of its (transitive) prerequisites
// inside the critical set is not excluded. Each such violation adds a
// penalty of (n+1)·T, where T is the time of every skill involved. Any valid
// order scores below n·T, so a violating order always ranks below every
// valid one and more violations rank lower.
//
// Orders are generated lazily by Permutations in lexicographic order; the
// final ranking sorts ascending by score and keeps that lexicographic order
// among ties.
//
// Complexity: O(n! · n · d) where d bounds closure sizes; n = SetSize.
package critical
