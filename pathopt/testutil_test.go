package pathopt_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skillpath/catalogue"
	"github.com/katalvlaran/skillpath/skill"
)

func rec(id string, value, time float64, complexity int, prereqs ...string) skill.Record {
	return skill.Record{ID: id, Name: id, Value: value, TimeCost: time, Complexity: complexity, Prerequisites: prereqs}
}

func mustValid(t *testing.T, recs ...skill.Record) *skill.Graph {
	t.Helper()
	g, err := catalogue.Build(recs)
	require.NoError(t, err)

	return g
}

// randomDAG builds n skills with integral attributes; prerequisites only
// point to lower-numbered skills, so the graph is acyclic.
func randomDAG(t *testing.T, rng *rand.Rand, n int) *skill.Graph {
	t.Helper()
	recs := make([]skill.Record, n)
	for i := range recs {
		recs[i] = rec(fmt.Sprintf("K%d", i),
			float64(1+rng.Intn(20)), float64(5+rng.Intn(40)), 1+rng.Intn(5))
		for j := 0; j < i; j++ {
			if rng.Intn(4) == 0 {
				recs[i].Prerequisites = append(recs[i].Prerequisites, recs[j].ID)
			}
		}
	}

	return mustValid(t, recs...)
}
