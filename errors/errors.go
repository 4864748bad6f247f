package errors

import (
	"fmt"
	"strings"

	"github.com/albertsgarde/phi"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRule        Phase = "rule"        // rule construction and validation
	PhaseApply       Phase = "apply"       // single carry application
	PhaseStandardize Phase = "standardize" // normalization
	PhaseParse       Phase = "parse"       // digit text parsing
	PhaseConfig      Phase = "config"      // preset loading
)

// Kind categorizes the error
type Kind string

const (
	KindIncreasingDigits Kind = "increasing_digits"
	KindEmptyRule        Kind = "empty_rule"
	KindDigitUnderflow   Kind = "digit_underflow"
	KindInvalidTape      Kind = "invalid_tape"
	KindInvalidInput     Kind = "invalid_input"
	KindInvalidData      Kind = "invalid_data"
	KindNotFound         Kind = "not_found"
	KindDiverged         Kind = "diverged"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string

	// Carry context, meaningful for digit_underflow errors: the tape
	// position whose digit was insufficient, the offset into the rule,
	// the required rule coefficient and the actual tape digit.
	Position  int
	RuleIndex int
	RuleValue phi.Value
	TapeValue phi.Value
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Kind == KindDigitUnderflow {
		fmt.Fprintf(&b, " at position %d: rule[%d] needs %d, tape has %d",
			e.Position, e.RuleIndex, e.RuleValue, e.TapeValue)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Position sets the tape position
func (b *Builder) Position(pos int) *Builder {
	b.err.Position = pos
	return b
}

// RuleIndex sets the offset into the rule
func (b *Builder) RuleIndex(i int) *Builder {
	b.err.RuleIndex = i
	return b
}

// Values sets the required rule coefficient and the actual tape digit
func (b *Builder) Values(ruleValue, tapeValue phi.Value) *Builder {
	b.err.RuleValue = ruleValue
	b.err.TapeValue = tapeValue
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// DigitUnderflow creates a carry application failure: the digit at
// position is smaller than the rule coefficient it must cover.
func DigitUnderflow(position, ruleIndex int, ruleValue, tapeValue phi.Value) *Error {
	return &Error{
		Phase:     PhaseApply,
		Kind:      KindDigitUnderflow,
		Position:  position,
		RuleIndex: ruleIndex,
		RuleValue: ruleValue,
		TapeValue: tapeValue,
	}
}

// IncreasingDigits creates a rule ordering violation error
func IncreasingDigits(index int, prev, next phi.Value) *Error {
	return &Error{
		Phase:  PhaseRule,
		Kind:   KindIncreasingDigits,
		Detail: fmt.Sprintf("digit %d at index %d follows smaller digit %d", next, index, prev),
	}
}

// EmptyRule creates an error for a rule with no non-zero digits
func EmptyRule() *Error {
	return &Error{
		Phase:  PhaseRule,
		Kind:   KindEmptyRule,
		Detail: "rule has no non-zero digits",
	}
}

// InvalidTape creates an error for a tape whose digits exceed the
// rule's maximum digit.
func InvalidTape(phase Phase, maxDigit phi.Value) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidTape,
		Detail: fmt.Sprintf("tape contains a digit above the rule maximum %d", maxDigit),
	}
}

// Diverged creates an error for a normalization that exceeded its
// pass guard.
func Diverged(passes int) *Error {
	return &Error{
		Phase:  PhaseStandardize,
		Kind:   KindDiverged,
		Detail: fmt.Sprintf("no fixpoint after %d passes", passes),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
