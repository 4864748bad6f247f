// Package errors provides structured error types for the phi library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type includes the context relevant to
// digit rewriting: tape position, rule offset, and the coefficient and
// digit involved in a failed carry.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseApply, errors.KindDigitUnderflow).
//		Position(-2).
//		RuleIndex(1).
//		Values(1, 0).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.DigitUnderflow(-2, 1, 1, 0)
//	err := errors.IncreasingDigits(2, 1, 3)
//
// All errors implement the standard error interface and support
// errors.Is/As. Recoverable conditions (construction failures, checked
// carry applications) are reported through this package; contract
// violations such as standardizing an invalid tape panic instead.
package errors
