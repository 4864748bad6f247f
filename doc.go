// Package phi implements arithmetic for generalized positional numeral
// systems defined by a recurrence rule, a generalization of
// Zeckendorf/Fibonacci representations to arbitrary non-increasing
// digit patterns.
//
// A rule r0 >= r1 >= ... >= r(n-1) defines the recurrence
//
//	x^n = r0*x^(n-1) + r1*x^(n-2) + ... + r(n-1)
//
// whose unique positive real root is the base of the system. A number
// is represented as a tape: a digit sequence over signed integer
// positions whose value is the sum of digit*base^position. The core
// operation is normalization, the integer-only digit rewriting that
// turns an arbitrary valid tape into the unique canonical form of the
// same value.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	phi/             Root package with the Value digit type
//	├── numeral/     Rule and Tape primitives: base derivation, carry
//	│                application, validity and standard-form checks
//	├── engine/      Observed normalization: pass loop, carry trace,
//	│                logging
//	├── system/      High-level API binding a rule to tape operations
//	├── config/      Named rule presets loaded from YAML
//	├── errors/      Structured error types for debugging
//	└── cmd/phi/     Command line and interactive explorer
//
// # Quick Start
//
// Build the Fibonacci system and normalize a tape:
//
//	sys, err := system.New(1, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	t := numeral.FromDigits([]phi.Value{1, 1}, nil)
//	std, _, err := sys.Standardize(t)
//	fmt.Println(std) // "1 0 0"
//
// # Thread Safety
//
// All types are plain values with no shared storage: rules are
// immutable after construction and every tape operation either works
// on a copy or mutates only its receiver. Clones may be used freely
// across goroutines without synchronization.
package phi
