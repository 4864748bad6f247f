// Package numeral implements the core primitives of a generalized
// positional numeral system: the Rule digit pattern with its derived
// irrational base, and the Tape digit sequence with carry
// application and normalization to canonical form.
//
// # Rules
//
// A rule is a non-increasing digit pattern whose characteristic
// equation x^n = r0*x^(n-1) + ... + r(n-1) has a unique positive real
// root in [r0, r0+1); that root is the base of the system and is found
// by bisection at construction:
//
//	rule, err := numeral.New(1, 1) // Fibonacci; base is the golden ratio
//
// # Tapes
//
// A tape holds one digit per signed integer position; the number it
// represents is the sum of digit*base^position. The carry rewrite
// trades the digits of a window for a single increment one position
// up without changing that sum. A tape is standard when no window of
// digits dominates the rule pattern:
//
//	t := numeral.FromDigits([]phi.Value{1, 1}, nil)
//	t.IsStandard(rule) // false: "1 1" dominates the pattern
//	t.Standardize(rule) // "1 0 0", same value
//
// All operations are pure value transformations: no goroutines, no
// I/O, no shared storage between instances.
package numeral
