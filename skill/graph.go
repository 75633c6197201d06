package skill

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/katalvlaran/skillpath/core"
)

// Graph maps skill ids to Skills and induces the directed edge relation
// skill → each of its prerequisites.
//
// A Graph is built once by NewGraph and is read-only afterwards. Validate must
// succeed before any solver accepts it; Ready reports that state. Reads are
// safe from multiple goroutines once Validate has returned.
type Graph struct {
	skills map[string]Skill
	ids    []string    // sorted ids
	edges  *core.Graph // skill → prerequisite; may hold unknown prerequisite ids until Validate

	once        sync.Once
	validated   bool
	validateErr error
	order       []string // topological order, prerequisites first
}

// NewGraph builds a Graph from catalogue records.
//
// Rows are rejected with a *RecordError (ErrMalformedCatalogue) when:
//   - the id is empty or duplicated;
//   - value or time_cost is not a positive finite number, or complexity ≤ 0;
//   - a prerequisite is empty, repeated, or the skill itself;
//   - a declared category contradicts the prerequisite set
//     (Basic ⟺ no prerequisites).
//
// Prerequisites pointing at unknown ids are accepted here and reported by
// Validate, which owns the structural checks.
//
// Complexity: O(V log V + E log E).
func NewGraph(records []Record) (*Graph, error) {
	g := &Graph{
		skills: make(map[string]Skill, len(records)),
		ids:    make([]string, 0, len(records)),
		edges:  core.NewGraph(),
	}

	// 1) Per-row checks and copy into immutable Skills.
	for i, r := range records {
		s, err := newSkill(i, r)
		if err != nil {
			return nil, err
		}
		if _, dup := g.skills[s.ID]; dup {
			return nil, &RecordError{Index: i, ID: s.ID, Reason: "duplicate id"}
		}
		g.skills[s.ID] = s
		g.ids = append(g.ids, s.ID)
		if err = g.edges.AddVertex(s.ID); err != nil {
			return nil, fmt.Errorf("skill: NewGraph: %w", err)
		}
	}
	sort.Strings(g.ids)

	// 2) Derive categories and link prerequisite edges.
	for i, r := range records {
		s := g.skills[strings.TrimSpace(r.ID)]
		s.Category = g.deriveCategory(s)
		if r.Category != "" {
			declared, ok := ParseCategory(r.Category)
			if !ok {
				return nil, &RecordError{Index: i, ID: s.ID, Reason: "unknown category " + r.Category}
			}
			if (declared == Basic) != s.Basic() {
				return nil, &RecordError{Index: i, ID: s.ID, Reason: "category " + r.Category + " contradicts prerequisites"}
			}
		}
		g.skills[s.ID] = s
		for _, p := range s.Prerequisites {
			if _, err := g.edges.AddEdge(s.ID, p); err != nil {
				return nil, fmt.Errorf("skill: NewGraph: %w", err)
			}
		}
	}

	return g, nil
}

// newSkill validates one row in isolation.
func newSkill(i int, r Record) (Skill, error) {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		return Skill{}, &RecordError{Index: i, Reason: "empty id"}
	}
	if !positive(r.Value) {
		return Skill{}, &RecordError{Index: i, ID: id, Reason: "value must be positive"}
	}
	if !positive(r.TimeCost) {
		return Skill{}, &RecordError{Index: i, ID: id, Reason: "time_cost must be positive"}
	}
	if r.Complexity <= 0 {
		return Skill{}, &RecordError{Index: i, ID: id, Reason: "complexity must be positive"}
	}

	prereqs := make([]string, 0, len(r.Prerequisites))
	seen := make(map[string]struct{}, len(r.Prerequisites))
	for _, p := range r.Prerequisites {
		p = strings.TrimSpace(p)
		switch {
		case p == "":
			return Skill{}, &RecordError{Index: i, ID: id, Reason: "empty prerequisite id"}
		case p == id:
			return Skill{}, &RecordError{Index: i, ID: id, Reason: "self-referential prerequisite"}
		}
		if _, dup := seen[p]; dup {
			return Skill{}, &RecordError{Index: i, ID: id, Reason: "duplicate prerequisite " + p}
		}
		seen[p] = struct{}{}
		prereqs = append(prereqs, p)
	}
	sort.Strings(prereqs)

	return Skill{
		ID:            id,
		Name:          r.Name,
		Value:         r.Value,
		TimeCost:      r.TimeCost,
		Complexity:    r.Complexity,
		Prerequisites: prereqs,
	}, nil
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1) && !math.IsNaN(x)
}

// deriveCategory classifies s from its prerequisites. Unknown prerequisites
// count as non-Basic; Validate rejects such graphs anyway.
func (g *Graph) deriveCategory(s Skill) Category {
	if s.Basic() {
		return Basic
	}
	var basic, other bool
	for _, p := range s.Prerequisites {
		if ps, ok := g.skills[p]; ok && ps.Basic() {
			basic = true
		} else {
			other = true
		}
	}
	if basic && other {
		return Hybrid
	}

	return Senior
}

// Len returns the number of skills.
func (g *Graph) Len() int { return len(g.ids) }

// IDs returns all skill ids in ascending order.
func (g *Graph) IDs() []string { return append([]string(nil), g.ids...) }

// Has reports whether id is a key of the graph.
func (g *Graph) Has(id string) bool {
	_, ok := g.skills[id]

	return ok
}

// Skill returns a copy of the skill with the given id, or ErrUnknownSkill.
func (g *Graph) Skill(id string) (Skill, error) {
	s, ok := g.skills[id]
	if !ok {
		return Skill{}, UnknownError(id)
	}

	return s.clone(), nil
}

// Skills returns copies of all skills in ascending id order.
func (g *Graph) Skills() []Skill {
	out := make([]Skill, 0, len(g.ids))
	for _, id := range g.ids {
		out = append(out, g.skills[id].clone())
	}

	return out
}

// Dependents returns the sorted ids of skills that list id as a direct
// prerequisite, or ErrUnknownSkill.
func (g *Graph) Dependents(id string) ([]string, error) {
	if !g.Has(id) {
		return nil, UnknownError(id)
	}

	return g.edges.InNeighborIDs(id)
}

// BasicIDs returns the sorted ids of all prerequisite-free skills.
func (g *Graph) BasicIDs() []string {
	var out []string
	for _, id := range g.ids {
		if g.skills[id].Basic() {
			out = append(out, id)
		}
	}

	return out
}

// Records converts the graph back to catalogue rows, in ascending id order.
func (g *Graph) Records() []Record {
	out := make([]Record, 0, len(g.ids))
	for _, id := range g.ids {
		s := g.skills[id]
		out = append(out, Record{
			ID:            s.ID,
			Name:          s.Name,
			Value:         s.Value,
			TimeCost:      s.TimeCost,
			Complexity:    s.Complexity,
			Prerequisites: append([]string(nil), s.Prerequisites...),
			Category:      s.Category.String(),
		})
	}

	return out
}

// skill returns the stored skill without copying. Callers must not mutate it.
func (g *Graph) skill(id string) (Skill, bool) {
	s, ok := g.skills[id]

	return s, ok
}
