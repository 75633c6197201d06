package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/skillpath/core"
)

// DetectCycles reports the loops of g. Each loop is closed
// (c[0] == c[len(c)-1]), follows edge direction, and is rotated to start at
// its smallest id; the list is sorted by signature. A loop is reported once
// per back-edge that closes it, so not every simple cycle of a dense tangle
// is listed, but an acyclic graph always yields (false, nil, nil).
//
// Complexity: O(V + E + C·L).
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	// 1) Nil graph is treated as cycle-free
	if g == nil {
		return false, nil, nil
	}

	// 2) Visitation state
	verts := g.Vertices()
	d := &detector{
		graph: g,
		state: make(map[string]int, len(verts)),
		path:  make([]string, 0, len(verts)),
		seen:  make(map[string]struct{}),
	}

	// 3) Launch from each unvisited vertex
	for _, v := range verts {
		if d.state[v] == White {
			if err := d.visit(v); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}
	if len(d.cycles) == 0 {
		return false, nil, nil
	}

	// 4) Deterministic order
	sort.Slice(d.cycles, func(i, j int) bool {
		return JoinSig(d.cycles[i]) < JoinSig(d.cycles[j])
	})

	return true, d.cycles, nil
}

type detector struct {
	graph  *core.Graph
	state  map[string]int
	path   []string // current DFS stack
	seen   map[string]struct{}
	cycles [][]string
}

func (d *detector) visit(id string) error {
	d.state[id] = Gray
	d.path = append(d.path, id)

	nbs, err := d.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("NeighborIDs(%q): %w", id, err)
	}
	for _, nbr := range nbs {
		switch d.state[nbr] {
		case White:
			if err = d.visit(nbr); err != nil {
				return err
			}
		case Gray:
			d.record(nbr)
		}
	}

	d.path = d.path[:len(d.path)-1]
	d.state[id] = Black

	return nil
}

// record extracts the loop path[idx(start):] + start and keeps it when its
// canonical form is new.
func (d *detector) record(start string) {
	idx := IndexOf(d.path, start)
	base := MinimalRotation(d.path[idx:])
	closed := append(base, base[0])
	sig := JoinSig(closed)
	if _, ok := d.seen[sig]; ok {
		return
	}
	d.seen[sig] = struct{}{}
	d.cycles = append(d.cycles, closed)
}
