// Package engine runs tape normalization with observability: it
// sweeps Tape.Reduce to a fixpoint, records every carry in a Trace,
// logs pass activity at Debug level, and guards against runaway
// loops.
//
// The core in package numeral stays pure and silent; this layer is
// where callers that want to watch or bound the process plug in:
//
//	norm := engine.New(engine.WithLogger(logger))
//	std, trace, err := norm.Normalize(tape, rule)
package engine
