package dfs

import (
	"fmt"

	"github.com/katalvlaran/skillpath/core"
)

// walker holds state for one DFS call.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS visits every vertex reachable from start along dependency edges and
// returns them in post-order. The result of an aborted traversal holds the
// vertices visited so far and an empty Order.
func DFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	// 1) Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	// 2) Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3) Traverse
	w := &walker{graph: g, opts: o, res: &Result{Visited: make(map[string]bool)}}
	if err := w.traverse(start); err != nil {
		w.res.Order = nil

		return w.res, err
	}

	return w.res, nil
}

func (w *walker) traverse(id string) error {
	// 1) Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2) Mark and run the pre-order hook
	w.res.Visited[id] = true
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	// 3) Explore prerequisites
	nbs, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
	}
	for _, nid := range nbs {
		if !w.res.Visited[nid] {
			if err = w.traverse(nid); err != nil {
				return err
			}
		}
	}

	// 4) Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}
