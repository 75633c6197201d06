// Graph validation: dangling-prerequisite scan, cycle detection on the
// prerequisite edges, then the cached topological order.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)     (recursion stack + state map)

package skill

import (
	"fmt"

	"github.com/katalvlaran/skillpath/dfs"
)

// Validate checks that g is a well-formed DAG and, on success, caches the
// topological order used by every solver.
//
// The first call does the work; later calls return the same result. The
// returned error is a *DanglingError (ErrDanglingPrerequisite) or a
// *CycleError (ErrCycleDetected); nil means the graph is ready.
func (g *Graph) Validate() error {
	g.once.Do(func() {
		g.validateErr = g.validate()
		g.validated = true
	})

	return g.validateErr
}

// Ready reports whether solvers may run on g: nil after a successful
// Validate, ErrGraphNotValidated before it, the validation error otherwise.
func (g *Graph) Ready() error {
	if g == nil || !g.validated {
		return ErrGraphNotValidated
	}

	return g.validateErr
}

func (g *Graph) validate() error {
	// 1) Every prerequisite must be a key of the graph.
	for _, id := range g.ids {
		for _, p := range g.skills[id].Prerequisites {
			if _, ok := g.skills[p]; !ok {
				return &DanglingError{Skill: id, Missing: p}
			}
		}
	}

	// 2) Report the first loop in canonical order: it starts at its
	//    smallest id and follows skill → prerequisite edges.
	found, cycles, err := dfs.DetectCycles(g.edges)
	if err != nil {
		return fmt.Errorf("skill: Validate: %w", err)
	}
	if found {
		return &CycleError{Cycle: cycles[0]}
	}

	// 3) Post-order over sorted ids lists prerequisites first.
	order, err := dfs.TopologicalSort(g.edges)
	if err != nil {
		return fmt.Errorf("skill: Validate: %w", err)
	}
	g.order = order

	return nil
}

// TopologicalOrder returns all ids with every prerequisite before its
// dependents. Ties are broken by the DFS over sorted ids, so the order is
// deterministic. The graph must have been validated.
func (g *Graph) TopologicalOrder() ([]string, error) {
	if err := g.Ready(); err != nil {
		return nil, err
	}

	return append([]string(nil), g.order...), nil
}
