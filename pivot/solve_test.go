package pivot_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skillpath/catalogue"
	"github.com/katalvlaran/skillpath/pivot"
	"github.com/katalvlaran/skillpath/skill"
)

func basic(id string, value, time float64) skill.Record {
	return skill.Record{ID: id, Name: id, Value: value, TimeCost: time, Complexity: 1}
}

func mustValid(t *testing.T, recs ...skill.Record) *skill.Graph {
	t.Helper()
	g, err := catalogue.Build(recs)
	require.NoError(t, err)

	return g
}

func TestSolve_SingleSkillReachesThreshold(t *testing.T) {
	g := mustValid(t, basic("H1", 70, 40), basic("H2", 65, 35), basic("H3", 60, 25))

	res, err := pivot.Solve(g, pivot.Options{MinAdaptability: 15})
	require.NoError(t, err)
	assert.Equal(t, []string{"H1", "H2", "H3"}, res.Candidates)
	assert.Equal(t, []string{"H3"}, res.DP.Plan.IDs)
	assert.Equal(t, 25.0, res.DP.Plan.TotalTime)
	assert.Equal(t, 60.0, res.DP.Adaptability)
	assert.Equal(t, []string{"H3"}, res.Greedy.Plan.IDs)
	assert.Equal(t, res.DP.Plan, res.BruteForce.Plan)
	assert.True(t, res.GreedyOptimal)
	assert.Zero(t, res.Gap)
}

func TestSolve_GreedyCounterexample(t *testing.T) {
	recs, opts := pivot.Counterexample()
	g := mustValid(t, recs...)

	res, worse, err := pivot.FindCounterexample(g, opts)
	require.NoError(t, err)
	assert.True(t, worse)
	assert.False(t, res.GreedyOptimal)

	assert.Equal(t, []string{"C", "B"}, res.Greedy.Plan.IDs, "pick order")
	assert.Equal(t, 11.0, res.Greedy.Plan.TotalTime)
	assert.Equal(t, 20.0, res.Greedy.Adaptability)

	assert.Equal(t, []string{"A"}, res.DP.Plan.IDs)
	assert.Equal(t, 10.0, res.DP.Plan.TotalTime)
	assert.Equal(t, res.DP.Plan, res.BruteForce.Plan)
	assert.Equal(t, 1.0, res.Gap)
}

func TestSolve_DefaultCatalogue(t *testing.T) {
	g, err := catalogue.Open("")
	require.NoError(t, err)

	res, worse, err := pivot.FindCounterexample(g, pivot.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, res.Candidates, 7)

	// H5 has the best ratio (9/35); H1 then closes the gap at 75 h, while
	// H3 alone reaches 15 in 60 h.
	assert.Equal(t, []string{"H5", "H1"}, res.Greedy.Plan.IDs)
	assert.Equal(t, 75.0, res.Greedy.Plan.TotalTime)
	assert.Equal(t, []string{"H3"}, res.DP.Plan.IDs)
	assert.Equal(t, 60.0, res.DP.Plan.TotalTime)
	assert.True(t, worse)
	assert.Equal(t, 15.0, res.Gap)
}

func TestSolve_Infeasible(t *testing.T) {
	g := mustValid(t, basic("A", 1, 1), basic("B", 2, 1))
	res, err := pivot.Solve(g, pivot.Options{MinAdaptability: 10})
	require.NoError(t, err)
	assert.False(t, res.Greedy.Plan.Feasible)
	assert.False(t, res.DP.Plan.Feasible)
	assert.False(t, res.BruteForce.Plan.Feasible)
	assert.True(t, res.GreedyOptimal)
}

func TestSolve_RestrictedCandidatesAndResolution(t *testing.T) {
	g := mustValid(t, basic("A", 1.5, 3), basic("B", 2.5, 4), basic("C", 9, 2),
		skill.Record{ID: "D", Value: 1, TimeCost: 1, Complexity: 1, Prerequisites: []string{"A"}})

	opts := pivot.Options{MinAdaptability: 4, IDs: []string{"B", "A"}, Resolution: 2}
	res, err := pivot.Solve(g, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Candidates)
	assert.Equal(t, []string{"A", "B"}, res.DP.Plan.IDs)
	assert.Equal(t, 4.0, res.DP.Adaptability)

	_, err = pivot.DP(g, pivot.Options{MinAdaptability: 4, IDs: []string{"A", "B"}})
	assert.ErrorIs(t, err, pivot.ErrFractionalScore)

	_, err = pivot.Solve(g, pivot.Options{MinAdaptability: 4, IDs: []string{"A", "D"}})
	assert.ErrorIs(t, err, pivot.ErrNotBasic)

	// A custom metric replaces value.
	byTime := func(s skill.Skill) float64 { return s.TimeCost }
	sol, err := pivot.DP(g, pivot.Options{MinAdaptability: 4, Metric: byTime})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, sol.Plan.IDs)
}

func TestSolve_Errors(t *testing.T) {
	g := mustValid(t, basic("A", 1, 1))

	_, err := pivot.Solve(g, pivot.Options{})
	assert.ErrorIs(t, err, pivot.ErrInvalidThreshold)

	_, err = pivot.Greedy(g, pivot.Options{MinAdaptability: 1, IDs: []string{"Z"}})
	assert.ErrorIs(t, err, skill.ErrUnknownSkill)

	neg := func(skill.Skill) float64 { return -1 }
	_, err = pivot.Greedy(g, pivot.Options{MinAdaptability: 1, Metric: neg})
	assert.ErrorIs(t, err, pivot.ErrInvalidMetric)

	_, err = pivot.DP(g, pivot.Options{MinAdaptability: pivot.MaxTarget + 1})
	assert.ErrorIs(t, err, skill.ErrSizeLimitExceeded)

	recs := make([]skill.Record, pivot.MaxBruteForceSkills+1)
	for i := range recs {
		recs[i] = basic(fmt.Sprintf("K%02d", i), 1, 1)
	}
	big := mustValid(t, recs...)
	_, err = pivot.Solve(big, pivot.DefaultOptions())
	assert.ErrorIs(t, err, skill.ErrSizeLimitExceeded)
	_, err = pivot.BruteForce(big, pivot.DefaultOptions())
	assert.ErrorIs(t, err, skill.ErrSizeLimitExceeded)

	// Greedy and DP have no such bound.
	_, err = pivot.DP(big, pivot.DefaultOptions())
	assert.NoError(t, err)

	raw, err := skill.NewGraph([]skill.Record{basic("A", 1, 1)})
	require.NoError(t, err)
	_, err = pivot.Greedy(raw, pivot.Options{MinAdaptability: 1})
	assert.ErrorIs(t, err, skill.ErrGraphNotValidated)
}

func TestSolve_DPIsExact(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 300; trial++ {
		n := 1 + rng.Intn(10)
		recs := make([]skill.Record, n)
		var total int
		for i := range recs {
			v := 1 + rng.Intn(30)
			total += v
			recs[i] = basic(fmt.Sprintf("B%d", i), float64(v), float64(1+rng.Intn(60)))
		}
		g := mustValid(t, recs...)
		opts := pivot.Options{MinAdaptability: float64(1 + rng.Intn(total+5))}

		res, err := pivot.Solve(g, opts)
		require.NoError(t, err)
		require.Equal(t, res.BruteForce.Plan.Feasible, res.DP.Plan.Feasible, "trial %d", trial)
		if !res.DP.Plan.Feasible {
			continue
		}
		require.InDelta(t, res.BruteForce.Plan.TotalTime, res.DP.Plan.TotalTime, 1e-9, "trial %d", trial)
		require.Equal(t, res.BruteForce.Plan.IDs, res.DP.Plan.IDs, "trial %d", trial)
		require.GreaterOrEqual(t, res.DP.Adaptability, opts.MinAdaptability)
		require.True(t, res.Greedy.Plan.Feasible)
		require.LessOrEqual(t, res.DP.Plan.TotalTime, res.Greedy.Plan.TotalTime+1e-9)
		require.GreaterOrEqual(t, res.Gap, -1e-9)
	}
}
