package critical

import "errors"

// SetSize is the exact critical set size (5! = 120 orders).
const SetSize = 5

// DefaultTop is the number of best orders reported in Result.Top.
const DefaultTop = 3

// Sentinel errors.
var (
	// ErrEmptySet is returned when no critical skill is given.
	ErrEmptySet = errors.New("critical: empty critical set")

	// ErrIncompleteSet is returned when the set holds fewer than SetSize ids.
	ErrIncompleteSet = errors.New("critical: incomplete critical set")

	// ErrDuplicateSkill is returned when an id appears twice in the set.
	ErrDuplicateSkill = errors.New("critical: duplicate skill in critical set")
)

// ExternalPolicy controls how prerequisites outside the critical set are
// charged.
type ExternalPolicy int

const (
	// PreSatisfied treats external prerequisites as held at time 0.
	PreSatisfied ExternalPolicy = iota

	// AcquireOnDemand pays for missing external prerequisites right before
	// the first critical skill that needs them.
	AcquireOnDemand
)

// String returns a lowercase label.
func (p ExternalPolicy) String() string {
	switch p {
	case PreSatisfied:
		return "pre_satisfied"
	case AcquireOnDemand:
		return "acquire_on_demand"
	default:
		return "unknown"
	}
}

// Options configures Search.
type Options struct {
	Policy ExternalPolicy

	// Top is the number of best orders copied into Result.Top;
	// ≤ 0 means DefaultTop.
	Top int
}

// Step is the breakdown of one critical skill inside an order.
type Step struct {
	ID string

	// Acquired lists the external prerequisites bought just before this
	// skill (AcquireOnDemand only), in topological order.
	Acquired []string

	// PrereqTime is the time spent on Acquired.
	PrereqTime float64

	// Start is the clock when the skill begins; Finish = Start + Own.
	Start  float64
	Own    float64
	Finish float64

	// Violations lists in-set prerequisites that appear later in the order.
	Violations []string

	// Penalty is len(Violations)·(n+1)·T.
	Penalty float64

	// Wait is Start + Penalty.
	Wait float64
}

// Ranked is one scored order.
type Ranked struct {
	Rank       int // 1-based position in the ranking
	Order      []string
	Steps      []Step
	TotalWait  float64
	TotalTime  float64 // clock after the last skill
	Violations int
}

// Valid reports whether the order respects every in-set prerequisite.
func (r Ranked) Valid() bool { return r.Violations == 0 }

// Stats aggregates TotalWait over all orders.
type Stats struct {
	Mean   float64
	StdDev float64 // population
	Min    float64
	Max    float64
	Range  float64
}

// Result is the outcome of Search.
type Result struct {
	Policy ExternalPolicy

	// Ranked holds every order, best first; len = n!.
	Ranked []Ranked

	// Top is Ranked[:min(Top, n!)].
	Top []Ranked

	Stats Stats

	// Penalty is the per-violation penalty (n+1)·T used for this set.
	Penalty float64
}

// Shared is an external prerequisite used by several critical skills.
type Shared struct {
	ID     string
	UsedBy []string
	Time   float64
}
