package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/skillpath/skill"
)

// ErrInvalidConfig indicates an out-of-range or malformed parameter.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// CriticalSetSize is the required size of CriticalSkillIDs.
const CriticalSetSize = 5

// ProbabilityTolerance bounds |Σ probability − 1| for the scenario set.
const ProbabilityTolerance = 1e-6

// Constraints is the read-only parameter set of one run.
type Constraints struct {
	// Multi-constraint path optimizer.
	TargetSkillID   string  `toml:"target_skill_id"`
	MaxTime         float64 `toml:"max_time"`
	MaxComplexity   int     `toml:"max_complexity"`
	Relax           bool    `toml:"relax"`
	RelaxTime       float64 `toml:"relax_time"`
	RelaxComplexity int     `toml:"relax_complexity"`

	// Monte Carlo simulator.
	MonteCarloTrials int     `toml:"monte_carlo_trials"`
	Seed             int64   `toml:"seed"`
	NoiseSpread      float64 `toml:"noise_spread"`

	// Critical-order search.
	CriticalSkillIDs []string `toml:"critical_skill_ids"`

	// Minimum-resource reachability solver.
	MinAdaptability float64 `toml:"min_adaptability"`

	// Horizon recommender.
	HorizonHours    float64    `toml:"horizon_hours"`
	HoursPerYear    float64    `toml:"hours_per_year"`
	DiscountFactor  float64    `toml:"discount_factor"`
	Recommendations int        `toml:"recommendations"`
	Profile         []string   `toml:"profile"`
	SynergyBonus    float64    `toml:"synergy_bonus"`
	Scenarios       []Scenario `toml:"scenario"`
}

// Default returns the documented defaults.
func Default() Constraints {
	return Constraints{
		TargetSkillID:   "S6",
		MaxTime:         350,
		MaxComplexity:   30,
		Relax:           true,
		RelaxTime:       50,
		RelaxComplexity: 6,

		MonteCarloTrials: 1000,
		Seed:             42,
		NoiseSpread:      0.10,

		CriticalSkillIDs: []string{"S3", "S5", "S7", "S8", "S9"},

		MinAdaptability: 15,

		Profile:         []string{"H1", "H2", "H3"},
		HorizonHours:    10000,
		HoursPerYear:    2000,
		DiscountFactor:  0.95,
		Recommendations: 3,
		Scenarios:       DefaultScenarios(),
	}
}

// Decode reads TOML from r on top of Default. Keys absent from the document
// keep their default; lists present in the document replace the default list
// as a whole; unknown keys are rejected.
func Decode(r io.Reader) (Constraints, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Constraints{}, fmt.Errorf("config: read: %w", err)
	}

	// 1) First pass: discover which keys the document defines.
	var first Constraints
	md, err := toml.Decode(string(data), &first)
	if err != nil {
		return Constraints{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}

		return Constraints{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}

	// 2) Second pass over the defaults, with defined lists cleared so the
	//    decoder does not merge into default elements.
	c := Default()
	if md.IsDefined("scenario") {
		c.Scenarios = nil
	}
	if md.IsDefined("critical_skill_ids") {
		c.CriticalSkillIDs = nil
	}
	if md.IsDefined("profile") {
		c.Profile = nil
	}
	if _, err = toml.Decode(string(data), &c); err != nil {
		return Constraints{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err = c.Validate(); err != nil {
		return Constraints{}, err
	}

	return c, nil
}

// Load reads the TOML file at path. An empty path yields Default.
func Load(path string) (Constraints, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Constraints{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	c, err := Decode(f)
	if err != nil {
		return Constraints{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return c, nil
}

// Validate checks every range the solvers rely on.
func (c Constraints) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if strings.TrimSpace(c.TargetSkillID) == "" {
		bad("target_skill_id is empty")
	}
	if !(c.MaxTime > 0) {
		bad("max_time must be positive, got %v", c.MaxTime)
	}
	if c.MaxComplexity <= 0 {
		bad("max_complexity must be positive, got %d", c.MaxComplexity)
	}
	if c.RelaxTime < 0 || c.RelaxComplexity < 0 {
		bad("relax_time and relax_complexity must be non-negative")
	}
	if c.MonteCarloTrials <= 0 {
		bad("monte_carlo_trials must be positive, got %d", c.MonteCarloTrials)
	}
	if c.NoiseSpread < 0 || c.NoiseSpread >= 1 {
		bad("noise_spread must be in [0, 1), got %v", c.NoiseSpread)
	}
	if len(c.CriticalSkillIDs) != CriticalSetSize {
		bad("critical_skill_ids must hold %d ids, got %d", CriticalSetSize, len(c.CriticalSkillIDs))
	}
	if dup, ok := firstDuplicate(c.CriticalSkillIDs); ok {
		bad("critical_skill_ids repeats %q", dup)
	}
	if !(c.MinAdaptability > 0) {
		bad("min_adaptability must be positive, got %v", c.MinAdaptability)
	}
	if !(c.HorizonHours > 0) {
		bad("horizon_hours must be positive, got %v", c.HorizonHours)
	}
	if !(c.HoursPerYear > 0) {
		bad("hours_per_year must be positive, got %v", c.HoursPerYear)
	}
	if !(c.DiscountFactor > 0 && c.DiscountFactor <= 1) {
		bad("discount_factor must be in (0, 1], got %v", c.DiscountFactor)
	}
	if c.Recommendations < 2 || c.Recommendations > 3 {
		bad("recommendations must be 2 or 3, got %d", c.Recommendations)
	}
	if c.SynergyBonus < 0 {
		bad("synergy_bonus must be non-negative, got %v", c.SynergyBonus)
	}
	if dup, ok := firstDuplicate(c.Profile); ok {
		bad("profile repeats %q", dup)
	}
	if err := ValidateScenarios(c.Scenarios); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// CheckSkills verifies that every id the configuration references exists
// in g. Returns an error wrapping skill.ErrUnknownSkill otherwise.
func (c Constraints) CheckSkills(g *skill.Graph) error {
	ids := []string{c.TargetSkillID}
	ids = append(ids, c.CriticalSkillIDs...)
	ids = append(ids, c.Profile...)
	for _, sc := range c.Scenarios {
		for id := range sc.SkillMultipliers {
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		if !g.Has(id) {
			return fmt.Errorf("config: %w", skill.UnknownError(id))
		}
	}

	return nil
}

func firstDuplicate(ids []string) (string, bool) {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return id, true
		}
		seen[id] = struct{}{}
	}

	return "", false
}

func finitePositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}
