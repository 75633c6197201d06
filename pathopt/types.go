package pathopt

import "github.com/katalvlaran/skillpath/skill"

// MaxBruteForceSkills bounds the graph size accepted by BruteForce (2ⁿ subsets).
const MaxBruteForceSkills = 20

// MaxLayerStates bounds the merged states one DP layer may hold. Layers
// grow with the number of distinct (frontier, time, complexity) keys, which
// stays small for catalogues with integral costs.
const MaxLayerStates = 1 << 20

// eps absorbs floating-point drift when comparing sums of time and value.
const eps = 1e-9

// Options configures Optimize and BruteForce.
//
// Fields:
//   - MaxTime, MaxComplexity : inclusive budgets on the chosen subset.
//   - Relax : when the target's own closure already exceeds a budget, retry
//     with budgets closure+RelaxTime and closure+RelaxComplexity instead of
//     returning an infeasible plan.
type Options struct {
	MaxTime         float64
	MaxComplexity   int
	Relax           bool
	RelaxTime       float64
	RelaxComplexity int
}

// DefaultOptions returns the documented budgets (350 h, complexity 30) with
// relaxation disabled and the default relaxation margins (+50 h, +6).
func DefaultOptions() Options {
	return Options{
		MaxTime:         350,
		MaxComplexity:   30,
		RelaxTime:       50,
		RelaxComplexity: 6,
	}
}

// Result is the outcome of one optimizer call.
type Result struct {
	// Plan lists the chosen skills in acquisition order, ending at the
	// target. Skills that depend on the target are never chosen.
	// Plan.Feasible is false when no subset reaches the target within budget.
	Plan skill.Plan

	// Minimum is the target's closure: the cheapest legal way to hold it.
	Minimum skill.ClosureCost

	// MaxTime and MaxComplexity are the budgets actually applied.
	MaxTime       float64
	MaxComplexity int

	// Relaxed reports that the budgets were widened by Options.Relax.
	Relaxed bool

	// States counts the DP states (or subsets, for BruteForce) examined.
	States int
}
