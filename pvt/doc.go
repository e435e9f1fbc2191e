// Package pvt evaluates black-oil PVT properties across the bubble point and
// builds seeded pressure ensembles.
//
// # Reading Guide
//
//   - input.go: FluidSampleInput, the measured fluid and run parameters
//   - dispatcher.go: RegimeDispatcher, per-property correlation selection
//     anchored at the bubble point
//   - sampler.go: PropertySampler, random pressure draws and parallel evaluation
//   - table.go: PropertyTable, the run output handed to report sinks
//
// # Architecture
//
// The correlations themselves live in pvt/correlation as pure functions.
// The dispatcher picks one correlation per property and regime according to
// a CorrelationBundle (bundle.go), computes the BubblePointReference once, and
// anchors every undersaturated formula to it so Evaluate(pb) reproduces the
// reference exactly. The sampler owns its SamplerRNG (rng.go); nothing
// in this package touches a global random source.
//
// Ensemble statistics are in pvt/stats.
package pvt
