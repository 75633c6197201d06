package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skillpath/catalogue"
	"github.com/katalvlaran/skillpath/config"
	"github.com/katalvlaran/skillpath/skill"
)

func TestDefault_IsValid(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 350.0, c.MaxTime)
	assert.Equal(t, 30, c.MaxComplexity)
	assert.Equal(t, 15.0, c.MinAdaptability)
	assert.Equal(t, 1000, c.MonteCarloTrials)
	assert.Equal(t, 0.95, c.DiscountFactor)
	assert.Len(t, c.CriticalSkillIDs, config.CriticalSetSize)
	assert.Equal(t, []string{"H1", "H2", "H3"}, c.Profile)

	g, err := catalogue.Build(catalogue.Default())
	require.NoError(t, err)
	assert.NoError(t, c.CheckSkills(g))
}

func TestDecode_OverlaysDefaults(t *testing.T) {
	doc := `
max_time = 500
critical_skill_ids = ["H1", "H2", "H3", "H4", "H5"]

[[scenario]]
name = "only"
probability = 1.0
skill_multipliers = { S6 = 2.0 }
`
	c, err := config.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 500.0, c.MaxTime)
	assert.Equal(t, 30, c.MaxComplexity, "untouched keys keep defaults")
	assert.Equal(t, []string{"H1", "H2", "H3", "H4", "H5"}, c.CriticalSkillIDs)
	assert.Equal(t, []string{"H1", "H2", "H3"}, c.Profile)
	require.Len(t, c.Scenarios, 1)
	assert.Equal(t, map[string]float64{"S6": 2.0}, c.Scenarios[0].SkillMultipliers, "lists replace, never merge")
}

func TestDecode_EmptyProfileClearsDefault(t *testing.T) {
	c, err := config.Decode(strings.NewReader("profile = []\n"))
	require.NoError(t, err)
	assert.Empty(t, c.Profile)
}

func TestDecode_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":       "max_tiem = 3\n",
		"syntax":            "max_time = \n",
		"discount zero":     "discount_factor = 0.0\n",
		"discount above 1":  "discount_factor = 1.5\n",
		"trials":            "monte_carlo_trials = 0\n",
		"critical size":     "critical_skill_ids = [\"S3\"]\n",
		"critical dup":      "critical_skill_ids = [\"S3\",\"S3\",\"S5\",\"S7\",\"S8\"]\n",
		"recommendations":   "recommendations = 5\n",
		"probability sum":   "[[scenario]]\nname = \"a\"\nprobability = 0.5\n",
		"bad category":      "[[scenario]]\nname = \"a\"\nprobability = 1.0\ncategory_multipliers = { guru = 2.0 }\n",
		"zero multiplier":   "[[scenario]]\nname = \"a\"\nprobability = 1.0\nskill_multipliers = { S6 = 0.0 }\n",
		"negative max_time": "max_time = -1\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Decode(strings.NewReader(doc))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)

	path := filepath.Join(t.TempDir(), "run.toml")
	require.NoError(t, os.WriteFile(path, []byte("seed = 7\nrelax = true\n"), 0o600))
	c, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.Seed)
	assert.True(t, c.Relax)
}

func TestCheckSkills_Unknown(t *testing.T) {
	g, err := catalogue.Build(catalogue.Default())
	require.NoError(t, err)

	c := config.Default()
	c.TargetSkillID = "ZZ"
	assert.ErrorIs(t, c.CheckSkills(g), skill.ErrUnknownSkill)
}

func TestScenario_Multiplier(t *testing.T) {
	sc := config.Scenario{
		Name:                "x",
		Probability:         1,
		SkillMultipliers:    map[string]float64{"A": 2},
		CategoryMultipliers: map[string]float64{"basic": 3},
	}
	a := skill.Skill{ID: "A", Value: 10, Category: skill.Basic}
	b := skill.Skill{ID: "B", Value: 10, Category: skill.Basic}
	c := skill.Skill{ID: "C", Value: 10, Category: skill.Senior}
	assert.Equal(t, 2.0, sc.Multiplier(a), "skill rule wins")
	assert.Equal(t, 3.0, sc.Multiplier(b), "category rule applies")
	assert.Equal(t, 1.0, sc.Multiplier(c), "neutral otherwise")
	assert.Equal(t, 30.0, sc.AdjustedValue(b))
}

func TestExpectedValue(t *testing.T) {
	s := skill.Skill{ID: "S6", Value: 40, Category: skill.Senior}
	// 0.40·60 + 0.35·40 + 0.25·40
	assert.InDelta(t, 48.0, config.ExpectedValue(config.DefaultScenarios(), s), 1e-9)
	assert.Equal(t, 40.0, config.ExpectedValue(config.Neutral(), s))
}
