// Package system provides the high-level API for working in one
// numeral system: a System pairs a validated rule with a normalizer
// and exposes tape construction, evaluation, and standardization as
// plain method calls.
//
//	sys, err := system.New(1, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	t := sys.Tape([]phi.Value{1, 1}, nil)
//	std, trace, err := sys.Standardize(t)
package system
