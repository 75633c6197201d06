package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skillpath/core"
	"github.com/katalvlaran/skillpath/dfs"
)

// build returns a graph with one edge per pair (dependent, prerequisite).
func build(t *testing.T, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

func TestDetectCycles_NilGraph(t *testing.T) {
	has, cycles, err := dfs.DetectCycles(nil)
	assert.NoError(t, err)
	assert.False(t, has)
	assert.Nil(t, cycles)
}

func TestDetectCycles_NoCycle(t *testing.T) {
	// A -> B -> C -> G
	//      |
	//      D -> E -> F
	g := build(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"B", "D"},
		[2]string{"C", "G"}, [2]string{"D", "E"}, [2]string{"E", "F"})

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.False(t, has)
	assert.Empty(t, cycles)
}

func TestDetectCycles_SimpleLoops(t *testing.T) {
	has, cycles, err := dfs.DetectCycles(build(t, [2]string{"A", "B"}, [2]string{"B", "A"}))
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"A", "B", "A"}}, cycles)

	has, cycles, err = dfs.DetectCycles(build(t,
		[2]string{"B", "C"}, [2]string{"C", "A"}, [2]string{"A", "B"}))
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"A", "B", "C", "A"}}, cycles)
}

func TestDetectCycles_RotatesLoopBehindTail(t *testing.T) {
	// A -> Y -> Z -> X -> Y: the loop is entered at Y but reported from X.
	g := build(t, [2]string{"A", "Y"}, [2]string{"Y", "Z"}, [2]string{"Z", "X"}, [2]string{"X", "Y"})

	has, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, has)
	require.Equal(t, [][]string{{"X", "Y", "Z", "X"}}, cycles)

	// Rotation keeps edge direction.
	c := cycles[0]
	for i := 0; i+1 < len(c); i++ {
		assert.True(t, g.HasEdge(c[i], c[i+1]), "%s -> %s", c[i], c[i+1])
	}
}

func TestDetectCycles_SharedVertexSorted(t *testing.T) {
	g := build(t, [2]string{"B", "C"}, [2]string{"C", "B"}, [2]string{"A", "B"}, [2]string{"B", "A"})

	has, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"A", "B", "A"}, {"B", "C", "B"}}, cycles)
}

func TestMinimalRotation(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, dfs.MinimalRotation([]string{"b", "c", "a"}))
	assert.Equal(t, []string{"a", "a", "b"}, dfs.MinimalRotation([]string{"a", "b", "a"}))
	assert.Nil(t, dfs.MinimalRotation(nil))

	in := []string{"z", "y"}
	_ = dfs.MinimalRotation(in)
	assert.Equal(t, []string{"z", "y"}, in, "input is not modified")
}
