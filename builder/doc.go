// Package builder generates core.Graph topologies for demos, tests and the
// "random graph" action of a host.
//
// The package offers:
//
//   - BuildGraph / Apply: run Constructors against a new or existing graph.
//   - Constructors:
//     – Random(edges):  the randomized generator (bounded draws, no loops,
//     no duplicate pairs, weights 1..9 on weighted graphs).
//     – Path, Cycle, Star, Wheel, Complete: deterministic shapes.
//   - Options: WithSeed, WithRand, WithWeightFn, WithConstantWeight,
//     WithUniformWeight.
//   - Weight distributions: DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//   - Shape: string names for the constructors, for CLIs and config files.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return wrapped sentinel errors and never panic.
//   - Equal seeds and options give identical graphs.
//
// Example:
//
//	g, err := builder.BuildGraph(7, []core.GraphOption{core.WithWeighted()},
//	    []builder.BuilderOption{builder.WithSeed(42)}, builder.Random(8))
package builder
