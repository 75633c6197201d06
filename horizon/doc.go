// Package horizon recommends the next 2–3 skills to acquire within a finite
// planning horizon, maximizing expected discounted value across market
// scenarios.
//
// A learner starts at elapsed time 0 holding Profile. Acquiring skill s at
// elapsed time e (hours) yields
//
//	gain(s, e) = E[V(s)] · (1 + SynergyBonus·|prereqs(s)|) · DiscountFactor^(e / HoursPerYear)
//
// where E[V(s)] = Σ P(scenario)·AdjustedValue(s) over the Market Scenarios.
// s is eligible when all of its prerequisites are held and e + TimeCost(s)
// fits the horizon.
//
// Because every acquisition is charged to a single timeline, the elapsed
// time is fully determined by the set of skills acquired so far, so the DP
// state collapses to that set:
//
//	best(held) = max over eligible s of gain(s, elapsed(held)) + best(held ∪ {s})
//
// with best = 0 when nothing is eligible. The optimal path is recovered from
// the memoized argmax; ties keep the skill that comes first in topological
// order. Recommend returns the first Recommendations skills of that path and
// a greedy baseline that repeatedly takes the eligible skill with the best
// gain/TimeCost ratio.
//
// Complexity: O(I · n) time and O(I) memory, where I is the number of
// prerequisite-closed sets reachable within the horizon (≤ 2ⁿ); candidates
// outside Profile are bounded by MaxSkills.
package horizon
