package skill

import "slices"

// Plan is the output of a solver: a chosen skill subset or order with its
// aggregate cost and value. A Plan is produced fresh per call and never
// mutated afterwards.
type Plan struct {
	// IDs lists the chosen skills; order is solver-specific and documented
	// by each solver.
	IDs []string

	TotalValue      float64
	TotalTime       float64
	TotalComplexity int

	// Feasible is false when no subset satisfies the constraints. An
	// infeasible Plan has no IDs and zero totals.
	Feasible bool
}

// NewPlan builds a feasible Plan over ids, summing each distinct id once.
// Returns ErrUnknownSkill for an id absent from g.
func NewPlan(g *Graph, ids []string) (Plan, error) {
	p := Plan{IDs: make([]string, 0, len(ids)), Feasible: true}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s, ok := g.skill(id)
		if !ok {
			return Plan{}, UnknownError(id)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		p.IDs = append(p.IDs, id)
		p.TotalValue += s.Value
		p.TotalTime += s.TimeCost
		p.TotalComplexity += s.Complexity
	}

	return p, nil
}

// Infeasible returns the empty plan reported when no subset satisfies the
// constraints.
func Infeasible() Plan { return Plan{} }

// Contains reports whether id is part of the plan.
func (p Plan) Contains(id string) bool { return slices.Contains(p.IDs, id) }

// Len returns the number of chosen skills.
func (p Plan) Len() int { return len(p.IDs) }
