// Package pivot finds the cheapest set of Basic skills (no prerequisites)
// whose adaptability reaches a threshold.
//
// Adaptability of a set is Σ Metric(s), where Metric defaults to the skill
// value. Cost is Σ TimeCost. Three solvers run on identical input:
//
//   - Greedy:     sort by Metric/TimeCost descending, take skills until the
//     threshold is met. O(n log n); not always optimal.
//   - DP:         0/1 knapsack minimizing time over the capped adaptability
//     target S, dp[a] = cheapest set reaching ≥ a. O(n · S); exact.
//   - BruteForce: every one of the 2ⁿ subsets, n ≤ MaxBruteForceSkills.
//
// Solve returns all three and reports whether greedy matched the optimum.
// FindCounterexample uses the same machinery to confirm that greedy is
// strictly worse on a given input; Counterexample ships the smallest known
// such catalogue:
//
//	A(16, 10h)  B(12, 7h)  C(8, 4h)   threshold 16
//	greedy: C (2.00) + B (1.71) → 11h      optimum: A → 10h
//
// DP scores must be integral after scaling by Options.Resolution; the
// default catalogue uses integer values.
package pivot
