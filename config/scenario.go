package config

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/skillpath/skill"
)

// Scenario is a probability-weighted hypothesis about future skill values.
//
// The adjustment rule for a skill is: its entry in SkillMultipliers if
// present, else the entry for its category label in CategoryMultipliers,
// else 1.
type Scenario struct {
	Name                string             `toml:"name"`
	Probability         float64            `toml:"probability"`
	SkillMultipliers    map[string]float64 `toml:"skill_multipliers"`
	CategoryMultipliers map[string]float64 `toml:"category_multipliers"`
}

// Multiplier returns the value multiplier this scenario applies to s.
func (sc Scenario) Multiplier(s skill.Skill) float64 {
	if m, ok := sc.SkillMultipliers[s.ID]; ok {
		return m
	}
	if m, ok := sc.CategoryMultipliers[s.Category.String()]; ok {
		return m
	}

	return 1
}

// AdjustedValue returns s.Value under this scenario.
func (sc Scenario) AdjustedValue(s skill.Skill) float64 {
	return s.Value * sc.Multiplier(s)
}

// ExpectedValue is Σ P(scenario) · AdjustedValue over scenarios.
func ExpectedValue(scenarios []Scenario, s skill.Skill) float64 {
	var ev float64
	for _, sc := range scenarios {
		ev += sc.Probability * sc.AdjustedValue(s)
	}

	return ev
}

// DefaultScenarios returns the three market scenarios of the default run.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{
			Name:             "ai_boom",
			Probability:      0.40,
			SkillMultipliers: map[string]float64{"S6": 1.5, "S4": 1.3, "H11": 1.2},
		},
		{
			Name:             "cloud_native",
			Probability:      0.35,
			SkillMultipliers: map[string]float64{"S7": 1.4, "S9": 1.3, "S8": 1.2},
		},
		{
			Name:             "security_first",
			Probability:      0.25,
			SkillMultipliers: map[string]float64{"S5": 1.6, "H12": 1.3},
		},
	}
}

// Neutral returns the single certain scenario that leaves every value as is.
func Neutral() []Scenario {
	return []Scenario{{Name: "neutral", Probability: 1}}
}

// ValidateScenarios requires a non-empty set with unique names, probabilities
// in [0, 1] summing to 1 within ProbabilityTolerance, and positive finite
// multipliers naming known categories.
func ValidateScenarios(scenarios []Scenario) error {
	if len(scenarios) == 0 {
		return fmt.Errorf("%w: no market scenarios", ErrInvalidConfig)
	}
	var sum float64
	names := make(map[string]struct{}, len(scenarios))
	for _, sc := range scenarios {
		if _, dup := names[sc.Name]; dup {
			return fmt.Errorf("%w: scenario %q repeated", ErrInvalidConfig, sc.Name)
		}
		names[sc.Name] = struct{}{}
		if sc.Probability < 0 || sc.Probability > 1 || math.IsNaN(sc.Probability) {
			return fmt.Errorf("%w: scenario %q probability %v outside [0, 1]", ErrInvalidConfig, sc.Name, sc.Probability)
		}
		sum += sc.Probability
		for _, id := range sortedKeys(sc.SkillMultipliers) {
			if !finitePositive(sc.SkillMultipliers[id]) {
				return fmt.Errorf("%w: scenario %q multiplier for %s must be positive", ErrInvalidConfig, sc.Name, id)
			}
		}
		for _, label := range sortedKeys(sc.CategoryMultipliers) {
			if c, ok := skill.ParseCategory(label); !ok || c.String() != label {
				return fmt.Errorf("%w: scenario %q names unknown category %q", ErrInvalidConfig, sc.Name, label)
			}
			if !finitePositive(sc.CategoryMultipliers[label]) {
				return fmt.Errorf("%w: scenario %q multiplier for %s must be positive", ErrInvalidConfig, sc.Name, label)
			}
		}
	}
	if math.Abs(sum-1) > ProbabilityTolerance {
		return fmt.Errorf("%w: scenario probabilities sum to %v, want 1", ErrInvalidConfig, sum)
	}

	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
