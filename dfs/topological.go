package dfs

import (
	"fmt"

	"github.com/katalvlaran/skillpath/core"
)

// topoSorter holds state for one TopologicalSort call.
type topoSorter struct {
	graph *core.Graph
	opts  Options
	state map[string]int
	order []string
}

// TopologicalSort lists every vertex of g after all vertices it depends on
// (for each edge u → v, v precedes u). Roots are taken in ascending id order
// and prerequisites in ascending order, so the result is deterministic.
//
// Errors: ErrGraphNil, ErrCycleDetected, the context error under
// WithContext, or a wrapped neighbor lookup error.
//
// Complexity: O(V + E).
func TopologicalSort(g *core.Graph, opts ...Option) ([]string, error) {
	// 1) Validate input
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3) Post-order from every unvisited vertex
	verts := g.Vertices()
	t := &topoSorter{
		graph: g,
		opts:  o,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if t.state[v] == White {
			if err := t.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// Post-order already places prerequisites first.
	return t.order, nil
}

func (t *topoSorter) visit(id string) error {
	// 1) Cancellation check
	select {
	case <-t.opts.Ctx.Done():
		return t.opts.Ctx.Err()
	default:
	}

	// 2) Gray on entry means a back-edge; Black means done
	switch t.state[id] {
	case Gray:
		return ErrCycleDetected
	case Black:
		return nil
	}
	t.state[id] = Gray

	// 3) Recurse into prerequisites
	nbs, err := t.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
	}
	for _, nid := range nbs {
		if err = t.visit(nid); err != nil {
			return err
		}
	}

	// 4) Finish
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
