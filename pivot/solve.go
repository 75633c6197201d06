package pivot

import (
	"cmp"
	"fmt"
	"math"
	"math/bits"
	"slices"

	"github.com/katalvlaran/skillpath/skill"
)

// instance is the validated candidate table shared by the solvers.
type instance struct {
	g      *skill.Graph
	ids    []string // ascending
	score  []float64
	time   []float64
	target float64
	res    float64
}

func prepare(g *skill.Graph, opts Options) (*instance, error) {
	if err := g.Ready(); err != nil {
		return nil, err
	}
	if !(opts.MinAdaptability > 0) || math.IsInf(opts.MinAdaptability, 0) {
		return nil, fmt.Errorf("%w: min adaptability %v", ErrInvalidThreshold, opts.MinAdaptability)
	}
	metric := opts.Metric
	if metric == nil {
		metric = ByValue
	}
	res := opts.Resolution
	if res <= 0 {
		res = 1
	}

	ids := opts.IDs
	if ids == nil {
		ids = g.BasicIDs()
	}
	ids = slices.Clone(ids)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	in := &instance{
		g:      g,
		ids:    ids,
		score:  make([]float64, len(ids)),
		time:   make([]float64, len(ids)),
		target: opts.MinAdaptability,
		res:    res,
	}
	for i, id := range ids {
		s, err := g.Skill(id)
		if err != nil {
			return nil, err
		}
		if !s.Basic() {
			return nil, fmt.Errorf("%w: %s requires %v", ErrNotBasic, id, s.Prerequisites)
		}
		in.score[i] = metric(s)
		if in.score[i] < 0 || math.IsNaN(in.score[i]) || math.IsInf(in.score[i], 0) {
			return nil, fmt.Errorf("%w: metric of %s is %v", ErrInvalidMetric, id, in.score[i])
		}
		in.time[i] = s.TimeCost
	}

	return in, nil
}

// solution materializes the candidates at positions idx, in that order.
func (in *instance) solution(idx []int) (Solution, error) {
	ids := make([]string, 0, len(idx))
	var adapt float64
	for _, i := range idx {
		ids = append(ids, in.ids[i])
		adapt += in.score[i]
	}
	p, err := skill.NewPlan(in.g, ids)
	if err != nil {
		return Solution{}, err
	}

	return Solution{Plan: p, Adaptability: adapt}, nil
}

func (in *instance) maskSolution(mask uint64) (Solution, error) {
	idx := make([]int, 0, bits.OnesCount64(mask))
	for m := mask; m != 0; m &= m - 1 {
		idx = append(idx, bits.TrailingZeros64(m))
	}

	return in.solution(idx)
}

// Greedy takes candidates by descending Metric/TimeCost (ties by id) until
// the threshold is met. Plan.IDs keeps pick order.
//
// Complexity: O(n log n).
func Greedy(g *skill.Graph, opts Options) (Solution, error) {
	in, err := prepare(g, opts)
	if err != nil {
		return Solution{}, fmt.Errorf("pivot: Greedy: %w", err)
	}

	return in.greedy()
}

func (in *instance) greedy() (Solution, error) {
	order := make([]int, len(in.ids))
	for i := range order {
		order[i] = i
	}
	// ids are ascending, so a stable sort breaks ratio ties by id.
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(in.score[b]/in.time[b], in.score[a]/in.time[a])
	})

	var (
		picked []int
		adapt  float64
	)
	for _, i := range order {
		picked = append(picked, i)
		adapt += in.score[i]
		if adapt >= in.target-eps {
			return in.solution(picked)
		}
	}

	return Solution{Plan: skill.Infeasible()}, nil
}

// DP computes the exact minimum-time set by a 0/1 knapsack over the capped
// target ⌈MinAdaptability·Resolution⌉. Ties on time prefer the
// lexicographically smallest id list.
//
// Errors: ErrFractionalScore when a scaled score is not integral,
// skill.ErrSizeLimitExceeded when the scaled target exceeds MaxTarget or
// the candidates exceed skill.MaxIndexSkills.
//
// Complexity: O(n · S) time, O(S) memory, S the scaled target.
func DP(g *skill.Graph, opts Options) (Solution, error) {
	in, err := prepare(g, opts)
	if err != nil {
		return Solution{}, fmt.Errorf("pivot: DP: %w", err)
	}
	sol, err := in.dp()
	if err != nil {
		return Solution{}, fmt.Errorf("pivot: DP: %w", err)
	}

	return sol, nil
}

// cell is the cheapest known set reaching a given capped adaptability.
type cell struct {
	ok   bool
	time float64
	mask uint64
}

func (in *instance) dp() (Solution, error) {
	if err := skill.CheckSize("pivot.DP", len(in.ids), skill.MaxIndexSkills); err != nil {
		return Solution{}, err
	}

	// 1) Scale scores and target to integers.
	target := math.Ceil(in.target*in.res - eps)
	if target > MaxTarget {
		return Solution{}, &skill.SizeError{Component: "pivot.DP target", Size: int(min(target, math.MaxInt32)), Limit: MaxTarget}
	}
	span := int(target)
	units := make([]int, len(in.ids))
	for i, sc := range in.score {
		u := math.Round(sc * in.res)
		if math.Abs(u-sc*in.res) > 1e-6 {
			return Solution{}, fmt.Errorf("%w: %s scores %v at resolution %v", ErrFractionalScore, in.ids[i], sc, in.res)
		}
		units[i] = int(min(u, float64(span)))
	}

	// 2) dp[a]: cheapest set with capped adaptability a. Descending a keeps
	//    each candidate used at most once per round.
	dp := make([]cell, span+1)
	dp[0] = cell{ok: true}
	for i := range in.ids {
		bit := uint64(1) << uint(i)
		for a := span; a >= 0; a-- {
			if !dp[a].ok {
				continue
			}
			to := min(span, a+units[i])
			cand := cell{ok: true, time: dp[a].time + in.time[i], mask: dp[a].mask | bit}
			if !dp[to].ok || better(cand.time, cand.mask, dp[to].time, dp[to].mask) {
				dp[to] = cand
			}
		}
	}

	if !dp[span].ok {
		return Solution{Plan: skill.Infeasible()}, nil
	}

	return in.maskSolution(dp[span].mask)
}

// BruteForce enumerates every subset of at most MaxBruteForceSkills
// candidates and keeps the cheapest one reaching the threshold, with the
// same tie-break as DP.
//
// Complexity: O(2ⁿ · n).
func BruteForce(g *skill.Graph, opts Options) (Solution, error) {
	in, err := prepare(g, opts)
	if err != nil {
		return Solution{}, fmt.Errorf("pivot: BruteForce: %w", err)
	}
	sol, err := in.bruteForce()
	if err != nil {
		return Solution{}, fmt.Errorf("pivot: BruteForce: %w", err)
	}

	return sol, nil
}

func (in *instance) bruteForce() (Solution, error) {
	n := len(in.ids)
	if err := skill.CheckSize("pivot.BruteForce", n, MaxBruteForceSkills); err != nil {
		return Solution{}, err
	}

	var (
		best     uint64
		bestTime float64
		found    bool
	)
	for mask := uint64(0); mask < 1<<uint(n); mask++ {
		var adapt, t float64
		for m := mask; m != 0; m &= m - 1 {
			i := bits.TrailingZeros64(m)
			adapt += in.score[i]
			t += in.time[i]
		}
		if adapt < in.target-eps {
			continue
		}
		if !found || better(t, mask, bestTime, best) {
			best, bestTime, found = mask, t, true
		}
	}
	if !found {
		return Solution{Plan: skill.Infeasible()}, nil
	}

	return in.maskSolution(best)
}

// better orders candidate sets by time, then by their ascending id lists.
// Bit positions follow ascending ids, so comparing set bits in order compares
// the id lists.
func better(ta float64, a uint64, tb float64, b uint64) bool {
	if ta < tb-eps {
		return true
	}
	if ta > tb+eps {
		return false
	}
	for a != 0 && b != 0 {
		ia, ib := bits.TrailingZeros64(a), bits.TrailingZeros64(b)
		if ia != ib {
			return ia < ib
		}
		a &= a - 1
		b &= b - 1
	}

	return a == 0 && b != 0
}

// Solve runs Greedy, DP and BruteForce on the same candidates.
// The candidate set must fit BruteForce (≤ MaxBruteForceSkills); larger
// sets are refused with skill.ErrSizeLimitExceeded before any solver runs.
func Solve(g *skill.Graph, opts Options) (Result, error) {
	in, err := prepare(g, opts)
	if err != nil {
		return Result{}, fmt.Errorf("pivot: Solve: %w", err)
	}
	if err = skill.CheckSize("pivot.Solve", len(in.ids), MaxBruteForceSkills); err != nil {
		return Result{}, fmt.Errorf("pivot: Solve: %w", err)
	}

	r := Result{Candidates: slices.Clone(in.ids)}
	if r.Greedy, err = in.greedy(); err != nil {
		return Result{}, fmt.Errorf("pivot: Solve: %w", err)
	}
	if r.DP, err = in.dp(); err != nil {
		return Result{}, fmt.Errorf("pivot: Solve: %w", err)
	}
	if r.BruteForce, err = in.bruteForce(); err != nil {
		return Result{}, fmt.Errorf("pivot: Solve: %w", err)
	}

	switch {
	case !r.DP.Plan.Feasible:
		r.GreedyOptimal = !r.Greedy.Plan.Feasible
	default:
		r.Gap = r.Greedy.Plan.TotalTime - r.DP.Plan.TotalTime
		r.GreedyOptimal = math.Abs(r.Gap) <= eps
	}

	return r, nil
}

// FindCounterexample reports whether greedy is strictly worse than the
// brute-force optimum on opts. The returned Result carries both plans.
func FindCounterexample(g *skill.Graph, opts Options) (Result, bool, error) {
	r, err := Solve(g, opts)
	if err != nil {
		return Result{}, false, err
	}
	worse := r.BruteForce.Plan.Feasible &&
		r.Greedy.Plan.TotalTime > r.BruteForce.Plan.TotalTime+eps

	return r, worse, nil
}

// Counterexample returns a three-skill catalogue on which greedy picks C
// then B (11 h) while A alone reaches the threshold in 10 h.
func Counterexample() ([]skill.Record, Options) {
	return []skill.Record{
		{ID: "A", Name: "A", Value: 16, TimeCost: 10, Complexity: 1},
		{ID: "B", Name: "B", Value: 12, TimeCost: 7, Complexity: 1},
		{ID: "C", Name: "C", Value: 8, TimeCost: 4, Complexity: 1},
	}, Options{MinAdaptability: 16}
}
