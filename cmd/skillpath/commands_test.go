package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestCommands_EmitJSON(t *testing.T) {
	for _, sub := range []string{"validate", "optimize", "simulate", "critical", "pivot", "recommend", "all"} {
		t.Run(sub, func(t *testing.T) {
			out, err := run(t, sub)
			require.NoError(t, err)
			var v map[string]any
			require.NoError(t, json.Unmarshal([]byte(out), &v), out)
			assert.NotEmpty(t, v)
		})
	}
}

func TestCommands_PivotOutput(t *testing.T) {
	out, err := run(t, "pivot")
	require.NoError(t, err)

	var v struct {
		DP struct {
			Plan struct {
				IDs       []string
				TotalTime float64
			}
		}
		GreedyOptimal bool
	}
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, []string{"H3"}, v.DP.Plan.IDs)
	assert.Equal(t, 60.0, v.DP.Plan.TotalTime)
	assert.False(t, v.GreedyOptimal)
}

func TestCommands_ConfigAndCatalogueFiles(t *testing.T) {
	dir := t.TempDir()
	cat := filepath.Join(dir, "skills.yaml")
	require.NoError(t, os.WriteFile(cat, []byte(`
skills:
  - {id: A, value: 16, time_cost: 10, complexity: 1}
  - {id: B, value: 12, time_cost: 7, complexity: 1}
  - {id: C, value: 8, time_cost: 4, complexity: 1}
  - {id: D, value: 5, time_cost: 3, complexity: 1, prerequisites: [A]}
  - {id: E, value: 5, time_cost: 3, complexity: 1, prerequisites: [B]}
`), 0o600))
	cfg := filepath.Join(dir, "run.toml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
target_skill_id = "D"
min_adaptability = 16
critical_skill_ids = ["A", "B", "C", "D", "E"]
profile = []

[[scenario]]
name = "flat"
probability = 1.0
`), 0o600))

	out, err := run(t, "pivot", "--catalogue", cat, "--config", cfg)
	require.NoError(t, err)
	var v struct{ GreedyOptimal bool }
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.False(t, v.GreedyOptimal)

	_, err = run(t, "all", "--catalogue", cat, "--config", cfg, "--acquire-on-demand", "--workers", "2")
	require.NoError(t, err)
}

func TestCommands_Errors(t *testing.T) {
	_, err := run(t, "optimize", "--catalogue", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = run(t, "optimize", "--log", "loud")
	assert.Error(t, err)

	_, err = run(t, "optimize", "extra")
	assert.Error(t, err)
}
