package horizon

import (
	"fmt"
	"math"

	"github.com/katalvlaran/skillpath/config"
	"github.com/katalvlaran/skillpath/skill"
)

// entry memoizes best(held): the optimal remaining value and the position
// to acquire next, -1 when nothing is eligible.
type entry struct {
	value float64
	next  int
}

type solver struct {
	g        *skill.Graph
	ix       *skill.Index
	opts     Options
	expected []float64 // E[V]·synergy per position
	memo     map[uint64]entry
}

// Recommend runs the exact DP and the greedy baseline from opts.Profile.
//
// Errors:
//   - the graph's Ready error;
//   - ErrInvalidOptions for out-of-range options or scenarios;
//   - skill.ErrUnknownSkill for a profile id absent from g;
//   - skill.ErrSizeLimitExceeded when more than MaxSkills skills lie
//     outside the profile.
func Recommend(g *skill.Graph, opts Options) (Result, error) {
	s, start, err := newSolver(g, opts)
	if err != nil {
		return Result{}, fmt.Errorf("horizon: Recommend: %w", err)
	}

	// 1) Exact DP from the profile.
	s.best(start, 0)
	optimal, err := s.walk(start, func(held uint64, _ float64) int { return s.memo[held].next })
	if err != nil {
		return Result{}, fmt.Errorf("horizon: Recommend: %w", err)
	}

	// 2) Greedy baseline.
	greedy, err := s.walk(start, s.greedyNext)
	if err != nil {
		return Result{}, fmt.Errorf("horizon: Recommend: %w", err)
	}

	k := opts.Recommendations
	if k <= 0 {
		k = DefaultRecommendations
	}
	ids := optimal.IDs()

	return Result{
		Recommendations: ids[:min(k, len(ids))],
		Optimal:         optimal,
		Greedy:          greedy,
		States:          len(s.memo),
	}, nil
}

func newSolver(g *skill.Graph, opts Options) (*solver, uint64, error) {
	if err := g.Ready(); err != nil {
		return nil, 0, err
	}
	if err := opts.validate(); err != nil {
		return nil, 0, err
	}
	ix, err := skill.NewIndex(g)
	if err != nil {
		return nil, 0, err
	}
	start, err := ix.Mask(opts.Profile)
	if err != nil {
		return nil, 0, err
	}
	outside := ix.Len() - len(ix.IDsOf(start))
	if err = skill.CheckSize("horizon", outside, MaxSkills); err != nil {
		return nil, 0, err
	}

	s := &solver{
		g:        g,
		ix:       ix,
		opts:     opts,
		expected: make([]float64, ix.Len()),
		memo:     make(map[uint64]entry),
	}
	for i, id := range ix.IDs {
		sk, _ := g.Skill(id)
		synergy := 1 + opts.SynergyBonus*float64(len(sk.Prerequisites))
		s.expected[i] = config.ExpectedValue(opts.Scenarios, sk) * synergy
	}

	return s, start, nil
}

func (o Options) validate() error {
	switch {
	case !(o.HorizonHours > 0) || math.IsInf(o.HorizonHours, 0):
		return fmt.Errorf("%w: horizon hours %v", ErrInvalidOptions, o.HorizonHours)
	case !(o.HoursPerYear > 0) || math.IsInf(o.HoursPerYear, 0):
		return fmt.Errorf("%w: hours per year %v", ErrInvalidOptions, o.HoursPerYear)
	case !(o.DiscountFactor > 0 && o.DiscountFactor <= 1):
		return fmt.Errorf("%w: discount factor %v not in (0, 1]", ErrInvalidOptions, o.DiscountFactor)
	case o.SynergyBonus < 0 || math.IsNaN(o.SynergyBonus):
		return fmt.Errorf("%w: synergy bonus %v", ErrInvalidOptions, o.SynergyBonus)
	}
	if err := config.ValidateScenarios(o.Scenarios); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return nil
}

// eligible reports whether position i can be acquired from held at elapsed.
func (s *solver) eligible(i int, held uint64, elapsed float64) bool {
	bit := uint64(1) << uint(i)

	return held&bit == 0 &&
		s.ix.Prereq[i]&^held == 0 &&
		elapsed+s.ix.Time[i] <= s.opts.HorizonHours+eps
}

func (s *solver) gain(i int, elapsed float64) float64 {
	return s.expected[i] * s.opts.Discount(elapsed)
}

// best fills the memo for held and returns its optimal remaining value.
func (s *solver) best(held uint64, elapsed float64) float64 {
	if e, ok := s.memo[held]; ok {
		return e.value
	}

	e := entry{next: -1}
	for i := 0; i < s.ix.Len(); i++ {
		if !s.eligible(i, held, elapsed) {
			continue
		}
		v := s.gain(i, elapsed) + s.best(held|1<<uint(i), elapsed+s.ix.Time[i])
		if e.next < 0 || v > e.value+eps {
			e = entry{value: v, next: i}
		}
	}
	s.memo[held] = e

	return e.value
}

// greedyNext picks the eligible position with the best gain per hour.
func (s *solver) greedyNext(held uint64, elapsed float64) int {
	next, ratio := -1, 0.0
	for i := 0; i < s.ix.Len(); i++ {
		if !s.eligible(i, held, elapsed) {
			continue
		}
		r := s.gain(i, elapsed) / s.ix.Time[i]
		if next < 0 || r > ratio+eps {
			next, ratio = i, r
		}
	}

	return next
}

// walk follows choose from held until it returns -1.
func (s *solver) walk(held uint64, choose func(held uint64, elapsed float64) int) (Path, error) {
	var (
		p       Path
		elapsed float64
	)
	for {
		i := choose(held, elapsed)
		if i < 0 {
			break
		}
		d := s.opts.Discount(elapsed)
		st := Step{
			ID:       s.ix.IDs[i],
			Start:    elapsed,
			Finish:   elapsed + s.ix.Time[i],
			Expected: s.expected[i],
			Discount: d,
			Gain:     s.expected[i] * d,
		}
		p.Steps = append(p.Steps, st)
		p.Value += st.Gain
		elapsed = st.Finish
		held |= 1 << uint(i)
	}
	p.Elapsed = elapsed

	plan, err := skill.NewPlan(s.g, p.IDs())
	if err != nil {
		return Path{}, err
	}
	p.Plan = plan

	return p, nil
}
