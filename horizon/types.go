package horizon

import (
	"errors"
	"math"

	"github.com/katalvlaran/skillpath/config"
	"github.com/katalvlaran/skillpath/skill"
)

// MaxSkills bounds the skills outside Profile the exact DP may consider.
const MaxSkills = 20

// DefaultRecommendations is the number of skills Recommend reports.
const DefaultRecommendations = 3

const eps = 1e-9

// ErrInvalidOptions indicates an out-of-range option.
var ErrInvalidOptions = errors.New("horizon: invalid options")

// Options configures Recommend.
type Options struct {
	// HorizonHours bounds the total time of newly acquired skills.
	HorizonHours float64

	// HoursPerYear converts elapsed hours to years for discounting.
	HoursPerYear float64

	// DiscountFactor is the yearly discount, 0 < f ≤ 1.
	DiscountFactor float64

	// Scenarios weight scenario-adjusted values; probabilities sum to 1.
	Scenarios []config.Scenario

	// Profile lists skills already held at time 0.
	Profile []string

	// Recommendations is the number of leading path skills reported;
	// ≤ 0 means DefaultRecommendations.
	Recommendations int

	// SynergyBonus adds this fraction of value per held direct prerequisite.
	SynergyBonus float64
}

// DefaultOptions returns a five-year horizon of 2000-hour years, a yearly
// discount of 0.95 and the default market scenarios.
func DefaultOptions() Options {
	return FromConstraints(config.Default())
}

// FromConstraints extracts the recommender options from a run configuration.
func FromConstraints(c config.Constraints) Options {
	return Options{
		HorizonHours:    c.HorizonHours,
		HoursPerYear:    c.HoursPerYear,
		DiscountFactor:  c.DiscountFactor,
		Scenarios:       c.Scenarios,
		Profile:         c.Profile,
		Recommendations: c.Recommendations,
		SynergyBonus:    c.SynergyBonus,
	}
}

// Discount returns DiscountFactor^(elapsed/HoursPerYear); Discount(0) is 1.
func (o Options) Discount(elapsedHours float64) float64 {
	return math.Pow(o.DiscountFactor, elapsedHours/o.HoursPerYear)
}

// Step is one acquisition on a path.
type Step struct {
	ID     string
	Start  float64 // elapsed hours when the skill starts
	Finish float64

	// Expected is the scenario-weighted value including synergy.
	Expected float64

	// Discount is the multiplier applied at Start.
	Discount float64

	// Gain is Expected · Discount.
	Gain float64
}

// Path is an ordered acquisition sequence and its aggregate value.
type Path struct {
	Steps []Step

	// Value is Σ Gain.
	Value float64

	// Elapsed is the clock after the last step.
	Elapsed float64

	// Plan carries the nominal totals of the acquired skills, in path order.
	Plan skill.Plan
}

// IDs lists the skills of the path in acquisition order.
func (p Path) IDs() []string {
	out := make([]string, 0, len(p.Steps))
	for _, st := range p.Steps {
		out = append(out, st.ID)
	}

	return out
}

// Result is the outcome of Recommend.
type Result struct {
	// Recommendations are the leading skills of Optimal.
	Recommendations []string

	// Optimal is the globally best path found by the DP.
	Optimal Path

	// Greedy is the best-ratio-per-step baseline.
	Greedy Path

	// States counts the memoized DP states.
	States int
}
