package montecarlo

import (
	"fmt"
	"math"
	"math/rand"
)

// NoiseModel perturbs one nominal skill value using rng.
// Implementations must be stateless so one value can serve concurrent trials.
type NoiseModel interface {
	Perturb(nominal float64, rng *rand.Rand) float64
	Validate() error
}

// Uniform scales a value by a factor drawn uniformly from [1−Spread, 1+Spread].
type Uniform struct {
	Spread float64
}

// Perturb implements NoiseModel.
func (u Uniform) Perturb(nominal float64, rng *rand.Rand) float64 {
	if u.Spread == 0 {
		return nominal
	}

	return nominal * (1 + u.Spread*(2*rng.Float64()-1))
}

// Validate requires 0 ≤ Spread < 1 so every draw stays positive.
func (u Uniform) Validate() error {
	if math.IsNaN(u.Spread) || u.Spread < 0 || u.Spread >= 1 {
		return fmt.Errorf("%w: uniform spread %v not in [0, 1)", ErrInvalidNoise, u.Spread)
	}

	return nil
}

// LogNormal scales a value by exp(Sigma·Z − Sigma²/2), Z ~ N(0, 1). The
// factor is always positive and has mean exactly 1 for every Sigma.
type LogNormal struct {
	Sigma float64
}

// Perturb implements NoiseModel.
func (l LogNormal) Perturb(nominal float64, rng *rand.Rand) float64 {
	if l.Sigma == 0 {
		return nominal
	}

	return nominal * math.Exp(l.Sigma*rng.NormFloat64()-l.Sigma*l.Sigma/2)
}

// Validate requires a finite, non-negative Sigma.
func (l LogNormal) Validate() error {
	if math.IsNaN(l.Sigma) || math.IsInf(l.Sigma, 0) || l.Sigma < 0 {
		return fmt.Errorf("%w: lognormal sigma %v must be finite and ≥ 0", ErrInvalidNoise, l.Sigma)
	}

	return nil
}

// None leaves values untouched.
type None struct{}

// Perturb implements NoiseModel.
func (None) Perturb(nominal float64, _ *rand.Rand) float64 { return nominal }

// Validate implements NoiseModel.
func (None) Validate() error { return nil }
