package skill_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skillpath/skill"
)

func TestClosure_ChainEqualsNaiveSum(t *testing.T) {
	g := mustValid(t,
		skill.Record{ID: "A", Value: 1, TimeCost: 5, Complexity: 1},
		skill.Record{ID: "B", Value: 1, TimeCost: 7, Complexity: 2, Prerequisites: []string{"A"}},
		skill.Record{ID: "C", Value: 1, TimeCost: 11, Complexity: 3, Prerequisites: []string{"B"}},
	)
	cc, err := g.Closure("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, cc.IDs)
	assert.Equal(t, 23.0, cc.Time)
	assert.Equal(t, 6, cc.Complexity)
}

func TestClosure_DiamondChargesSharedAncestorOnce(t *testing.T) {
	g := diamond(t)
	cc, err := g.Closure("D")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, cc.IDs)
	// A (10) is shared by B and C but paid once: 10+20+30+40.
	assert.Equal(t, 100.0, cc.Time)
	assert.Equal(t, 10, cc.Complexity)

	anc, err := g.Ancestors("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, anc)
}

func TestClosure_UnknownSkill(t *testing.T) {
	_, err := diamond(t).Closure("nope")
	assert.ErrorIs(t, err, skill.ErrUnknownSkill)
}

func TestIndex_MasksFollowTopology(t *testing.T) {
	g := diamond(t)
	ix, err := skill.NewIndex(g)
	require.NoError(t, err)
	require.Equal(t, 4, ix.Len())

	d, ok := ix.Pos("D")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C", "D"}, ix.IDsOf(ix.Closure[d]))

	m, err := ix.Mask([]string{"A", "B"})
	require.NoError(t, err)
	assert.True(t, ix.Closed(m))
	value, time, complexity := ix.Totals(m)
	assert.Equal(t, 3.0, value)
	assert.Equal(t, 30.0, time)
	assert.Equal(t, 3, complexity)

	m, err = ix.Mask([]string{"D"})
	require.NoError(t, err)
	assert.False(t, ix.Closed(m))

	_, err = ix.Mask([]string{"nope"})
	assert.ErrorIs(t, err, skill.ErrUnknownSkill)
}

func TestIndex_SizeLimit(t *testing.T) {
	recs := make([]skill.Record, 0, skill.MaxIndexSkills+1)
	for i := 0; i <= skill.MaxIndexSkills; i++ {
		recs = append(recs, rec(string(rune('a'+i%26))+string(rune('A'+i/26)), 1, 1))
	}
	g := mustValid(t, recs...)
	_, err := skill.NewIndex(g)
	assert.ErrorIs(t, err, skill.ErrSizeLimitExceeded)
}
