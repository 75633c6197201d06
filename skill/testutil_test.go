package skill_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skillpath/skill"
)

// rec builds a catalogue row with complexity 1 unless overridden later.
func rec(id string, value, time float64, prereqs ...string) skill.Record {
	return skill.Record{ID: id, Name: id, Value: value, TimeCost: time, Complexity: 1, Prerequisites: prereqs}
}

// mustValid builds and validates a graph, failing the test on any error.
func mustValid(t *testing.T, recs ...skill.Record) *skill.Graph {
	t.Helper()
	g, err := skill.NewGraph(recs)
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	return g
}

// diamond returns the graph D → {B, C} → A.
func diamond(t *testing.T) *skill.Graph {
	t.Helper()

	return mustValid(t,
		skill.Record{ID: "A", Value: 1, TimeCost: 10, Complexity: 1},
		skill.Record{ID: "B", Value: 2, TimeCost: 20, Complexity: 2, Prerequisites: []string{"A"}},
		skill.Record{ID: "C", Value: 3, TimeCost: 30, Complexity: 3, Prerequisites: []string{"A"}},
		skill.Record{ID: "D", Value: 4, TimeCost: 40, Complexity: 4, Prerequisites: []string{"B", "C"}},
	)
}

// reachable reports whether to is reachable from from along skill → prerequisite edges.
func reachable(g *skill.Graph, from, to string) bool {
	seen := map[string]bool{}
	stack := []string{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s, err := g.Skill(cur)
		if err != nil {
			continue
		}
		for _, p := range s.Prerequisites {
			if p == to {
				return true
			}
			if !seen[p] {
				seen[p] = true
				stack = append(stack, p)
			}
		}
	}

	return false
}
