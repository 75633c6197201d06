package pivot

import (
	"errors"

	"github.com/katalvlaran/skillpath/skill"
)

// MaxBruteForceSkills bounds the candidate set enumerated by BruteForce.
const MaxBruteForceSkills = 12

// MaxTarget bounds the scaled adaptability target S of the DP table.
const MaxTarget = 1 << 20

// eps absorbs floating-point drift in time and score comparisons.
const eps = 1e-9

// Sentinel errors.
var (
	// ErrNotBasic is returned when a candidate has prerequisites.
	ErrNotBasic = errors.New("pivot: candidate is not a basic skill")

	// ErrFractionalScore is returned when a scaled metric is not integral.
	ErrFractionalScore = errors.New("pivot: scaled score is not integral")

	// ErrInvalidThreshold is returned for a non-positive threshold.
	ErrInvalidThreshold = errors.New("pivot: invalid threshold")

	// ErrInvalidMetric is returned when Metric yields a negative or
	// non-finite score.
	ErrInvalidMetric = errors.New("pivot: invalid metric")
)

// Metric scores one skill's contribution to adaptability.
type Metric func(s skill.Skill) float64

// ByValue is the default Metric: the skill's market value.
func ByValue(s skill.Skill) float64 { return s.Value }

// Options configures every solver of the package.
type Options struct {
	// MinAdaptability is the threshold to reach; must be positive.
	MinAdaptability float64

	// IDs restricts the candidates; nil means every Basic skill of the graph.
	IDs []string

	// Metric scores adaptability; nil means ByValue.
	Metric Metric

	// Resolution scales scores to integers for DP; ≤ 0 means 1.
	Resolution float64
}

// DefaultOptions returns the documented threshold of 15 over all Basic skills.
func DefaultOptions() Options {
	return Options{MinAdaptability: 15}
}

// Solution is one solver's plan plus the adaptability it reaches.
// Plan.Feasible is false when even the full candidate set falls short.
type Solution struct {
	Plan         skill.Plan
	Adaptability float64
}

// Result compares the three solvers on one input.
type Result struct {
	// Candidates lists the Basic skills considered, in ascending id order.
	Candidates []string

	// Greedy lists skills in pick order; DP and BruteForce in ascending id order.
	Greedy     Solution
	DP         Solution
	BruteForce Solution

	// GreedyOptimal reports that greedy's time equals the DP optimum
	// (or that both are infeasible).
	GreedyOptimal bool

	// Gap is Greedy.Plan.TotalTime − DP.Plan.TotalTime when both are feasible.
	Gap float64
}
