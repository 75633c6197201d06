// Package pathopt implements a multi-constraint value-maximizing DP.
//
// Optimize chooses a prerequisite-closed subset of skills that contains the
// target and none of the skills depending on it, with Σtime ≤ MaxTime and
// Σcomplexity ≤ MaxComplexity, maximizing Σvalue. The plan is listed in
// acquisition order and ends at the target.
//
// Formulation:
//  1. Positions follow the graph's topological order, so a skill's
//     prerequisites are decided before the skill itself.
//  2. A layer at position i holds states (mask, value, time, complexity).
//     Transition: skip i (forbidden when i belongs to the target closure) or
//     include i when i does not depend on the target, Prereq[i] ⊆ mask and
//     both budgets still hold.
//  3. States agreeing on (mask ∩ prerequisites of later candidates, time,
//     complexity) have the same completions; only the best of them is kept.
//  4. A state is dropped as soon as the required skills still ahead of it
//     cannot fit the remaining budget. Surviving terminal states all hold
//     the target's closure.
//  5. Ties on value prefer lower time, then lower complexity, then the
//     lexicographically smallest sorted id sequence. Costs are positive, so
//     two merged states never nest and the id tie-break survives any common
//     completion.
//
// Complexity:
//   - Time:   O(n · K) where K is the largest number of distinct
//     (frontier, time, complexity) keys in a layer.
//   - Memory: O(K), bounded by MaxLayerStates.
package pathopt
