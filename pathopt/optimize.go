package pathopt

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/skillpath/skill"
)

// state is one partial selection inside a DP layer.
type state struct {
	mask       uint64
	value      float64
	time       float64
	complexity int
}

// stateKey identifies states whose completions are interchangeable: the
// decided skills later positions still require, plus both running totals.
type stateKey struct {
	frontier   uint64
	time       float64
	complexity int
}

// Optimize runs the DP on a validated graph.
// Errors: the graph's Ready error, skill.ErrUnknownSkill for an absent target,
// skill.ErrSizeLimitExceeded for graphs over skill.MaxIndexSkills or a layer
// over MaxLayerStates.
// An infeasible instance is not an error: Result.Plan.Feasible is false.
func Optimize(g *skill.Graph, target string, opts Options) (Result, error) {
	p, err := prepare(g, target, opts)
	if err != nil {
		return Result{}, fmt.Errorf("pathopt: Optimize: %w", err)
	}
	res := p.result()
	if !p.feasible() {
		return res, nil
	}

	// 1) Suffix sums of the required skills not yet decided, and the
	//    prerequisites still needed by candidates not yet decided.
	n := p.ix.Len()
	needTime := make([]float64, n+1)
	needCx := make([]int, n+1)
	needed := make([]uint64, n+1)
	for i := n - 1; i >= 0; i-- {
		needTime[i], needCx[i], needed[i] = needTime[i+1], needCx[i+1], needed[i+1]
		if p.required&(1<<uint(i)) != 0 {
			needTime[i] += p.ix.Time[i]
			needCx[i] += p.ix.Complexity[i]
		}
		if p.excluded&(1<<uint(i)) == 0 {
			needed[i] |= p.ix.Prereq[i]
		}
	}

	// 2) Layered DP over topological positions, merging states by key.
	layer := []state{{}}
	res.States = 1
	for i := 0; i < n; i++ {
		bit := uint64(1) << uint(i)
		mustTake := p.required&bit != 0
		canTake := p.excluded&bit == 0
		next := make([]state, 0, len(layer)*2)
		slot := make(map[stateKey]int, len(layer)*2)
		keep := func(st state) {
			k := stateKey{frontier: st.mask & needed[i+1], time: st.time, complexity: st.complexity}
			if j, ok := slot[k]; ok {
				if p.better(st, next[j]) {
					next[j] = st
				}

				return
			}
			slot[k] = len(next)
			next = append(next, st)
		}
		for _, st := range layer {
			if !mustTake {
				keep(st)
			}
			if !canTake || p.ix.Prereq[i]&^st.mask != 0 {
				continue // excluded, or a prerequisite was skipped
			}
			nt := st.time + p.ix.Time[i]
			nc := st.complexity + p.ix.Complexity[i]
			// Remaining required skills after i must still fit.
			if nt+needTime[i+1] > p.maxTime+eps || nc+needCx[i+1] > p.maxCx {
				continue
			}
			keep(state{
				mask:       st.mask | bit,
				value:      st.value + p.ix.Value[i],
				time:       nt,
				complexity: nc,
			})
		}
		if err = skill.CheckSize("pathopt.Optimize layer", len(next), MaxLayerStates); err != nil {
			return Result{}, fmt.Errorf("pathopt: Optimize: %w", err)
		}
		layer = next
		res.States += len(layer)
	}

	// 3) Pick the best terminal state.
	best := -1
	for k := range layer {
		if best < 0 || p.better(layer[k], layer[best]) {
			best = k
		}
	}
	if best < 0 {
		return res, nil
	}
	res.Plan = p.plan(layer[best].mask)

	return res, nil
}

// problem bundles the invariant inputs of Optimize and BruteForce.
type problem struct {
	ix       *skill.Index
	target   int
	required uint64 // closure of the target
	excluded uint64 // skills that depend on the target
	minimum  skill.ClosureCost
	maxTime  float64
	maxCx    int
	relaxed  bool
}

func prepare(g *skill.Graph, target string, opts Options) (*problem, error) {
	ix, err := skill.NewIndex(g)
	if err != nil {
		return nil, err
	}
	t, ok := ix.Pos(target)
	if !ok {
		return nil, skill.UnknownError(target)
	}
	minimum, err := g.Closure(target)
	if err != nil {
		return nil, err
	}

	p := &problem{
		ix:       ix,
		target:   t,
		required: ix.Closure[t],
		excluded: descendants(ix, t),
		minimum:  minimum,
		maxTime:  opts.MaxTime,
		maxCx:    opts.MaxComplexity,
	}
	if opts.Relax && !p.feasible() {
		p.maxTime = max(p.maxTime, minimum.Time+opts.RelaxTime)
		p.maxCx = max(p.maxCx, minimum.Complexity+opts.RelaxComplexity)
		p.relaxed = true
	}

	return p, nil
}

// descendants returns the positions whose closure contains t, t excluded.
func descendants(ix *skill.Index, t int) uint64 {
	var m uint64
	bit := uint64(1) << uint(t)
	for j := t + 1; j < ix.Len(); j++ {
		if ix.Closure[j]&bit != 0 {
			m |= 1 << uint(j)
		}
	}

	return m
}

// feasible reports whether the target's closure fits the budgets; if it does
// not, no superset can.
func (p *problem) feasible() bool {
	return p.minimum.Time <= p.maxTime+eps && p.minimum.Complexity <= p.maxCx
}

func (p *problem) result() Result {
	return Result{
		Plan:          skill.Infeasible(),
		Minimum:       p.minimum,
		MaxTime:       p.maxTime,
		MaxComplexity: p.maxCx,
		Relaxed:       p.relaxed,
	}
}

// plan lists mask in topological order with the target moved last; no
// member depends on the target, so the order stays legal.
func (p *problem) plan(mask uint64) skill.Plan {
	value, time, complexity := p.ix.Totals(mask)
	tbit := uint64(1) << uint(p.target)
	ids := append(p.ix.IDsOf(mask&^tbit), p.ix.IDs[p.target])

	return skill.Plan{
		IDs:             ids,
		TotalValue:      value,
		TotalTime:       time,
		TotalComplexity: complexity,
		Feasible:        true,
	}
}

// better reports whether a beats b under the documented tie-break.
func (p *problem) better(a, b state) bool {
	switch {
	case a.value > b.value+eps:
		return true
	case a.value < b.value-eps:
		return false
	case a.time < b.time-eps:
		return true
	case a.time > b.time+eps:
		return false
	case a.complexity != b.complexity:
		return a.complexity < b.complexity
	}

	return slices.Compare(p.sortedIDs(a.mask), p.sortedIDs(b.mask)) < 0
}

func (p *problem) sortedIDs(mask uint64) []string {
	ids := p.ix.IDsOf(mask)
	sort.Strings(ids)

	return ids
}

// MinimumRequirement returns the closure cost of target: the smallest
// budgets under which a plan reaching target can exist.
func MinimumRequirement(g *skill.Graph, target string) (skill.ClosureCost, error) {
	cc, err := g.Closure(target)
	if err != nil {
		return skill.ClosureCost{}, fmt.Errorf("pathopt: MinimumRequirement: %w", err)
	}

	return cc, nil
}

// BruteForce enumerates every subset of the graph that avoids the target's
// dependents and returns the same optimum as Optimize. It exists to
// cross-check the DP on small graphs.
// Graphs over MaxBruteForceSkills are refused with skill.ErrSizeLimitExceeded.
//
// Complexity: O(2ⁿ · n).
func BruteForce(g *skill.Graph, target string, opts Options) (Result, error) {
	if err := g.Ready(); err != nil {
		return Result{}, fmt.Errorf("pathopt: BruteForce: %w", err)
	}
	if err := skill.CheckSize("pathopt.BruteForce", g.Len(), MaxBruteForceSkills); err != nil {
		return Result{}, fmt.Errorf("pathopt: BruteForce: %w", err)
	}
	p, err := prepare(g, target, opts)
	if err != nil {
		return Result{}, fmt.Errorf("pathopt: BruteForce: %w", err)
	}
	res := p.result()

	var (
		best  state
		found bool
		full  = uint64(1)<<uint(p.ix.Len()) - 1
	)
	for mask := uint64(0); ; mask++ {
		res.States++
		if mask&p.required == p.required && mask&p.excluded == 0 && p.ix.Closed(mask) {
			v, t, c := p.ix.Totals(mask)
			cand := state{mask: mask, value: v, time: t, complexity: c}
			if t <= p.maxTime+eps && c <= p.maxCx && (!found || p.better(cand, best)) {
				best, found = cand, true
			}
		}
		if mask == full {
			break
		}
	}
	if found {
		res.Plan = p.plan(best.mask)
	}

	return res, nil
}
