package montecarlo

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/skillpath/skill"
)

// Sentinel errors.
var (
	// ErrInvalidTrials is returned when Options.Trials ≤ 0.
	ErrInvalidTrials = errors.New("montecarlo: trials must be positive")

	// ErrInvalidNoise is returned by NoiseModel.Validate.
	ErrInvalidNoise = errors.New("montecarlo: invalid noise model")

	// ErrInfeasiblePlan is returned when asked to simulate an infeasible plan.
	ErrInfeasiblePlan = errors.New("montecarlo: plan is infeasible")
)

// DefaultTrials and DefaultSpread mirror the documented simulator defaults.
const (
	DefaultTrials = 1000
	DefaultSpread = 0.10
)

// Options configures Simulate.
type Options struct {
	// Trials is the number of independent runs; must be positive.
	Trials int

	// Seed selects the random streams; 0 maps to a fixed default.
	Seed int64

	// Noise perturbs each value; nil means Uniform{DefaultSpread}.
	Noise NoiseModel

	// Workers bounds the goroutines used for trials; ≤ 1 runs inline.
	// Samples are identical for any Workers value.
	Workers int
}

// DefaultOptions returns 1000 trials, seed 42 and ±10 % uniform noise.
func DefaultOptions() Options {
	return Options{Trials: DefaultTrials, Seed: 42, Noise: Uniform{Spread: DefaultSpread}}
}

// Distribution is the simulated distribution of a plan's total value.
type Distribution struct {
	// Samples[t] is the total value of trial t.
	Samples []float64

	// Nominal is the plan's unperturbed total value.
	Nominal float64

	Mean   float64
	StdDev float64 // population standard deviation
	Min    float64
	Max    float64
	P5     float64
	P50    float64
	P95    float64

	// CV is StdDev/Mean, or 0 when Mean is 0.
	CV float64
}

// Simulate perturbs the values of the skills in plan over opts.Trials runs.
//
// Errors:
//   - the graph's Ready error;
//   - ErrInfeasiblePlan for a plan with Feasible=false;
//   - skill.ErrUnknownSkill for a plan id absent from g;
//   - ErrInvalidTrials, ErrInvalidNoise for bad options.
func Simulate(g *skill.Graph, plan skill.Plan, opts Options) (Distribution, error) {
	// 1) Validate inputs.
	if err := g.Ready(); err != nil {
		return Distribution{}, fmt.Errorf("montecarlo: Simulate: %w", err)
	}
	if !plan.Feasible {
		return Distribution{}, ErrInfeasiblePlan
	}
	if opts.Trials <= 0 {
		return Distribution{}, fmt.Errorf("%w: got %d", ErrInvalidTrials, opts.Trials)
	}
	noise := opts.Noise
	if noise == nil {
		noise = Uniform{Spread: DefaultSpread}
	}
	if err := noise.Validate(); err != nil {
		return Distribution{}, err
	}

	// 2) Resolve nominal values once.
	values := make([]float64, 0, len(plan.IDs))
	var nominal float64
	for _, id := range plan.IDs {
		s, err := g.Skill(id)
		if err != nil {
			return Distribution{}, fmt.Errorf("montecarlo: Simulate: %w", err)
		}
		values = append(values, s.Value)
		nominal += s.Value
	}

	// 3) Run trials; each writes only its own slot.
	samples := make([]float64, opts.Trials)
	trial := func(t int) {
		rng := trialRNG(opts.Seed, t)
		var sum float64
		for _, v := range values {
			sum += noise.Perturb(v, rng)
		}
		samples[t] = sum
	}
	if opts.Workers <= 1 {
		for t := range samples {
			trial(t)
		}
	} else {
		var eg errgroup.Group
		eg.SetLimit(opts.Workers)
		for t := range samples {
			eg.Go(func() error {
				trial(t)

				return nil
			})
		}
		_ = eg.Wait() // trials never fail
	}

	// 4) Summarize.
	d := Summarize(samples)
	d.Nominal = nominal

	return d, nil
}

// Summarize computes the statistics of samples. Samples is kept as given;
// percentiles use linear interpolation between closest ranks.
// An empty input yields the zero Distribution.
func Summarize(samples []float64) Distribution {
	d := Distribution{Samples: samples}
	n := len(samples)
	if n == 0 {
		return d
	}

	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)
	d.Min, d.Max = sorted[0], sorted[n-1]

	var sum float64
	for _, x := range sorted {
		sum += x
	}
	d.Mean = sum / float64(n)

	var ss float64
	for _, x := range sorted {
		dx := x - d.Mean
		ss += dx * dx
	}
	d.StdDev = math.Sqrt(ss / float64(n))
	if d.Mean != 0 {
		d.CV = d.StdDev / d.Mean
	}

	d.P5 = percentile(sorted, 5)
	d.P50 = percentile(sorted, 50)
	d.P95 = percentile(sorted, 95)

	return d
}

// percentile expects sorted input and 0 ≤ p ≤ 100.
func percentile(sorted []float64, p float64) float64 {
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)

	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
