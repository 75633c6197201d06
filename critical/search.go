package critical

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/skillpath/skill"
)

// setInfo is the precomputed view of a critical set.
type setInfo struct {
	g       *skill.Graph
	ids     []string
	time    map[string]float64
	inSet   map[string][]string // in-set ancestors per critical skill
	extern  map[string][]string // external ancestors per critical skill, topological order
	penalty float64
}

// Search scores every order of ids and ranks them ascending by total wait.
//
// Errors:
//   - the graph's Ready error;
//   - ErrEmptySet, ErrIncompleteSet, ErrDuplicateSkill;
//   - skill.ErrSizeLimitExceeded when len(ids) > SetSize;
//   - skill.ErrUnknownSkill for an absent id.
func Search(g *skill.Graph, ids []string, opts Options) (Result, error) {
	info, err := prepare(g, ids)
	if err != nil {
		return Result{}, fmt.Errorf("critical: Search: %w", err)
	}

	// 1) Score orders lazily, in lexicographic order.
	var ranked []Ranked
	for order := range Permutations(ids) {
		ranked = append(ranked, info.score(order, opts.Policy))
	}

	// 2) Stable sort keeps lexicographic order among equal scores.
	slices.SortStableFunc(ranked, func(a, b Ranked) int {
		return cmp.Compare(a.TotalWait, b.TotalWait)
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	top := opts.Top
	if top <= 0 {
		top = DefaultTop
	}
	top = min(top, len(ranked))

	return Result{
		Policy:  opts.Policy,
		Ranked:  ranked,
		Top:     ranked[:top:top],
		Stats:   stats(ranked),
		Penalty: info.penalty,
	}, nil
}

func prepare(g *skill.Graph, ids []string) (*setInfo, error) {
	if err := g.Ready(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, ErrEmptySet
	}
	if err := skill.CheckSize("critical", len(ids), SetSize); err != nil {
		return nil, err
	}
	if len(ids) < SetSize {
		return nil, fmt.Errorf("%w: got %d ids, want %d", ErrIncompleteSet, len(ids), SetSize)
	}

	info := &setInfo{
		g:      g,
		ids:    ids,
		time:   make(map[string]float64),
		inSet:  make(map[string][]string, len(ids)),
		extern: make(map[string][]string, len(ids)),
	}
	member := make(map[string]bool, len(ids))
	for _, id := range ids {
		if member[id] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSkill, id)
		}
		if !g.Has(id) {
			return nil, skill.UnknownError(id)
		}
		member[id] = true
	}

	order, err := g.TopologicalOrder()
	if err != nil {
		return nil, err
	}
	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}

	// Involved skills: the set plus every ancestor, each counted once.
	var total float64
	charge := func(id string) {
		if _, seen := info.time[id]; seen {
			return
		}
		s, _ := g.Skill(id)
		info.time[id] = s.TimeCost
		total += s.TimeCost
	}
	for _, id := range ids {
		charge(id)
		anc, err := g.Ancestors(id)
		if err != nil {
			return nil, err
		}
		for _, a := range anc {
			charge(a)
			if member[a] {
				info.inSet[id] = append(info.inSet[id], a)
			} else {
				info.extern[id] = append(info.extern[id], a)
			}
		}
		slices.SortFunc(info.extern[id], func(a, b string) int { return pos[a] - pos[b] })
	}
	info.penalty = float64(len(ids)+1) * total

	return info, nil
}

// score walks one order on a single timeline.
func (info *setInfo) score(order []string, policy ExternalPolicy) Ranked {
	r := Ranked{Order: slices.Clone(order), Steps: make([]Step, 0, len(order))}
	held := make(map[string]bool, len(info.time))
	var clock float64

	for _, id := range order {
		st := Step{ID: id, Own: info.time[id]}

		// 1) External prerequisites.
		if policy == AcquireOnDemand {
			for _, e := range info.extern[id] {
				if held[e] {
					continue
				}
				held[e] = true
				st.Acquired = append(st.Acquired, e)
				st.PrereqTime += info.time[e]
			}
			clock += st.PrereqTime
		}

		// 2) In-set prerequisites placed later are violations.
		for _, p := range info.inSet[id] {
			if !held[p] {
				st.Violations = append(st.Violations, p)
			}
		}

		// 3) Acquire the skill itself.
		st.Start = clock
		st.Finish = clock + st.Own
		clock = st.Finish
		held[id] = true

		st.Penalty = float64(len(st.Violations)) * info.penalty
		st.Wait = st.Start + st.Penalty

		r.TotalWait += st.Wait
		r.Violations += len(st.Violations)
		r.Steps = append(r.Steps, st)
	}
	r.TotalTime = clock

	return r
}

func stats(ranked []Ranked) Stats {
	if len(ranked) == 0 {
		return Stats{}
	}
	s := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for _, r := range ranked {
		sum += r.TotalWait
		s.Min = math.Min(s.Min, r.TotalWait)
		s.Max = math.Max(s.Max, r.TotalWait)
	}
	s.Mean = sum / float64(len(ranked))
	var ss float64
	for _, r := range ranked {
		d := r.TotalWait - s.Mean
		ss += d * d
	}
	s.StdDev = math.Sqrt(ss / float64(len(ranked)))
	s.Range = s.Max - s.Min

	return s
}

// SharedPrerequisites lists external prerequisites (transitive, outside the
// set) needed by more than one critical skill, most shared first, then by id.
// Acquiring these early benefits several critical skills at once.
func SharedPrerequisites(g *skill.Graph, ids []string) ([]Shared, error) {
	info, err := prepare(g, ids)
	if err != nil {
		return nil, fmt.Errorf("critical: SharedPrerequisites: %w", err)
	}

	usage := make(map[string][]string)
	for _, id := range ids {
		for _, e := range info.extern[id] {
			usage[e] = append(usage[e], id)
		}
	}
	var out []Shared
	for e, users := range usage {
		if len(users) < 2 {
			continue
		}
		slices.Sort(users)
		out = append(out, Shared{ID: e, UsedBy: users, Time: info.time[e]})
	}
	slices.SortFunc(out, func(a, b Shared) int {
		if c := cmp.Compare(len(b.UsedBy), len(a.UsedBy)); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return out, nil
}
