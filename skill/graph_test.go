package skill_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skillpath/skill"
)

func TestNewGraph_RejectsMalformedRows(t *testing.T) {
	cases := []struct {
		name string
		recs []skill.Record
	}{
		{"empty id", []skill.Record{rec("", 1, 1)}},
		{"duplicate id", []skill.Record{rec("A", 1, 1), rec("A", 2, 2)}},
		{"negative value", []skill.Record{rec("A", -1, 1)}},
		{"zero time", []skill.Record{rec("A", 1, 0)}},
		{"zero complexity", []skill.Record{{ID: "A", Value: 1, TimeCost: 1}}},
		{"self reference", []skill.Record{rec("A", 1, 1, "A")}},
		{"duplicate prerequisite", []skill.Record{rec("A", 1, 1), rec("B", 1, 1, "A", "A")}},
		{"basic with prerequisites", []skill.Record{rec("A", 1, 1), {ID: "B", Value: 1, TimeCost: 1, Complexity: 1, Prerequisites: []string{"A"}, Category: "basic"}}},
		{"senior without prerequisites", []skill.Record{{ID: "A", Value: 1, TimeCost: 1, Complexity: 1, Category: "senior"}}},
		{"unknown category", []skill.Record{{ID: "A", Value: 1, TimeCost: 1, Complexity: 1, Category: "guru"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := skill.NewGraph(tc.recs)
			require.Error(t, err)
			assert.ErrorIs(t, err, skill.ErrMalformedCatalogue)
			var re *skill.RecordError
			assert.True(t, errors.As(err, &re))
		})
	}
}

func TestNewGraph_DerivesCategories(t *testing.T) {
	g := mustValid(t,
		rec("H1", 1, 1),
		rec("H2", 1, 1),
		rec("S1", 1, 1, "H1", "H2"),
		rec("S2", 1, 1, "S1"),
		rec("X", 1, 1, "H1", "S1"),
	)
	want := map[string]skill.Category{
		"H1": skill.Basic, "H2": skill.Basic,
		"S1": skill.Senior, "S2": skill.Senior,
		"X": skill.Hybrid,
	}
	for id, c := range want {
		s, err := g.Skill(id)
		require.NoError(t, err)
		assert.Equal(t, c, s.Category, id)
	}
	assert.Equal(t, []string{"H1", "H2"}, g.BasicIDs())
}

func TestGraph_Accessors(t *testing.T) {
	g := diamond(t)
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.IDs())

	deps, err := g.Dependents("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, deps)

	_, err = g.Skill("nope")
	assert.ErrorIs(t, err, skill.ErrUnknownSkill)
	_, err = g.Dependents("nope")
	assert.ErrorIs(t, err, skill.ErrUnknownSkill)

	// Returned copies do not alias the graph.
	s, _ := g.Skill("D")
	s.Prerequisites[0] = "Z"
	s2, _ := g.Skill("D")
	assert.Equal(t, []string{"B", "C"}, s2.Prerequisites)
}

func TestGraph_RecordsRoundTrip(t *testing.T) {
	g := diamond(t)
	g2 := mustValid(t, g.Records()...)
	assert.Equal(t, g.Skills(), g2.Skills())
}

func TestGraph_Stats(t *testing.T) {
	st := diamond(t).Stats()
	assert.Equal(t, 4, st.Count)
	assert.Equal(t, 4, st.Edges)
	assert.Equal(t, 1, st.ByCategory[skill.Basic])
	assert.Equal(t, 3, st.ByCategory[skill.Senior])
	assert.Equal(t, skill.Summary{Min: 10, Max: 40, Mean: 25, Total: 100}, st.Time)
	assert.InDelta(t, 2.5, st.Complexity.Mean, 1e-12)
}

func TestPlan_NewPlan(t *testing.T) {
	g := diamond(t)
	p, err := skill.NewPlan(g, []string{"A", "B", "A"})
	require.NoError(t, err)
	assert.True(t, p.Feasible)
	assert.Equal(t, []string{"A", "B"}, p.IDs)
	assert.Equal(t, 3.0, p.TotalValue)
	assert.Equal(t, 30.0, p.TotalTime)
	assert.Equal(t, 3, p.TotalComplexity)
	assert.True(t, p.Contains("B"))

	_, err = skill.NewPlan(g, []string{"Q"})
	assert.ErrorIs(t, err, skill.ErrUnknownSkill)

	inf := skill.Infeasible()
	assert.False(t, inf.Feasible)
	assert.Zero(t, inf.Len())
}
