// Package montecarlo estimates how sensitive a chosen acquisition plan is to
// uncertainty in skill values.
//
// Simulate holds the skill selection fixed and, for each trial, draws an
// independent perturbed value per skill from a NoiseModel, then sums them.
// The optimizer is never re-run.
//
//	plan ──► nominal values ──► trial t: Σ Noise.Perturb(vᵢ, rngₜ) ──► samples ──► Distribution
//
// Determinism:
//   - Every trial t draws from its own stream seeded by deriveSeed(Seed, t),
//     so samples depend only on (Seed, t) and never on Workers or scheduling.
//   - Seed==0 is mapped to a fixed default seed; there is no global
//     randomness anywhere in the package.
//
// Noise models:
//   - Uniform{Spread}  : multiplicative U(1−s, 1+s), mean-preserving.
//   - LogNormal{Sigma} : multiplicative exp(σZ − σ²/2), positive and
//     mean-preserving for any σ.
//   - None{}           : returns nominal values; the distribution collapses
//     onto the plan's total value.
//
// Complexity: O(trials · |plan|) time, O(trials) memory for the samples.
package montecarlo
