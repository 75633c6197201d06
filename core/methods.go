package core

import (
	"sort"
	"strconv"
)

// edgeIDPrefix keeps edge ids human-readable: "e1", "e2", ...
const edgeIDPrefix = "e"

// AddVertex inserts id. Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID for an empty id.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.out[id] = make(map[string]string)
	g.in[id] = make(map[string]string)
}

// HasVertex reports whether id is a vertex of g.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge links from → to and returns the new edge id.
//
// Steps:
//  1. Reject empty ids and self-loops.
//  2. Create missing endpoints.
//  3. Reject a second edge between the same ordered pair.
//  4. Record the edge in both direction maps.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Ensure vertices exist
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 3) Simple graph: one edge per ordered pair
	if _, dup := g.out[from][to]; dup {
		return "", ErrMultiEdgeNotAllowed
	}

	// 4) Store and link both directions
	g.nextEdgeID++
	eid := edgeIDPrefix + strconv.FormatUint(g.nextEdgeID, 10)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to}
	g.out[from][to] = eid
	g.in[to][from] = eid

	return eid, nil
}

// HasEdge reports whether the edge from → to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.out[from][to]

	return ok
}

// Edges returns every edge sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// Vertices returns all vertex ids sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.vertices)
}

// NeighborIDs returns the sorted heads of the edges leaving id: its
// prerequisites.
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	return g.adjacent(id, g.out)
}

// InNeighborIDs returns the sorted tails of the edges entering id: its
// dependents.
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) InNeighborIDs(id string) ([]string, error) {
	return g.adjacent(id, g.in)
}

func (g *Graph) adjacent(id string, side map[string]map[string]string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(side[id]), nil
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
