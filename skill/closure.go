package skill

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/skillpath/dfs"
)

// ClosureCost is the deduplicated cost of legally holding one skill.
type ClosureCost struct {
	// Skill is the queried id.
	Skill string

	// IDs is the transitive prerequisite closure including Skill itself,
	// in topological order (prerequisites first).
	IDs []string

	// Time and Complexity sum each distinct id of IDs exactly once.
	Time       float64
	Complexity int
}

// Closure computes the transitive prerequisite closure of id and its
// cumulative cost. An ancestor shared by several branches is charged once.
// Returns ErrUnknownSkill for an absent id and the Ready error for a graph
// that has not been validated.
//
// Complexity: O(V + E).
func (g *Graph) Closure(id string) (ClosureCost, error) {
	if err := g.Ready(); err != nil {
		return ClosureCost{}, err
	}
	if !g.Has(id) {
		return ClosureCost{}, UnknownError(id)
	}

	// 1) DFS over prerequisite edges collects the distinct ids.
	res, err := dfs.DFS(g.edges, id)
	if err != nil {
		return ClosureCost{}, fmt.Errorf("skill: Closure: %w", err)
	}
	in := res.Visited

	// 2) Emit in the cached topological order and sum once per id.
	cc := ClosureCost{Skill: id, IDs: make([]string, 0, len(in))}
	for _, x := range g.order {
		if !in[x] {
			continue
		}
		s := g.skills[x]
		cc.IDs = append(cc.IDs, x)
		cc.Time += s.TimeCost
		cc.Complexity += s.Complexity
	}

	return cc, nil
}

// Ancestors returns the sorted strict prerequisites of id (its closure
// without id itself).
func (g *Graph) Ancestors(id string) ([]string, error) {
	cc, err := g.Closure(id)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(cc.IDs)-1)
	for _, x := range cc.IDs {
		if x != id {
			out = append(out, x)
		}
	}
	sort.Strings(out)

	return out, nil
}
