// Package builder generates synthetic weighted graphs for MST benchmarks and
// tests. It follows the functional-options style of the rest of the module.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(opts, cons...): create a graph and apply constructors in order.
//   - Constructors:
//     – Complete(n):          K_n.
//     – Path(n):              P_n.
//     – RandomConnected(n,m): random spanning tree plus distinct random pairs.
//     – ForDensity(m,d):      RandomConnected with n = NodesFor(m, d).
//   - Configuration primitives:
//     – WithSeed / WithRand:  RNG for stochastic constructors.
//     – WithWeightFn and the WeightFn family (constant, uniform, integer uniform).
//     – WithIDScheme and the IDFn family (decimal, one-based, prefixed).
//   - Density helpers: NodesFor, DensityOf, DensitySteps, MaxEdges.
//
// Guarantees:
//
//   - Determinism: equal inputs, options and seed give identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return wrapped sentinel errors and never panic.
package builder
