package system

import (
	"github.com/albertsgarde/phi"
	"github.com/albertsgarde/phi/engine"
	"github.com/albertsgarde/phi/numeral"
)

// System binds one rule to the operations callers typically want:
// building tapes, evaluating them, and normalizing through the
// engine. A System is immutable and safe for concurrent use.
type System struct {
	rule *numeral.Rule
	norm *engine.Normalizer
}

// New validates digits as a rule and builds a system around it.
func New(digits ...phi.Value) (*System, error) {
	rule, err := numeral.New(digits...)
	if err != nil {
		return nil, err
	}
	return FromRule(rule), nil
}

// FromRule builds a system around an existing rule. Engine options
// configure the normalizer, e.g. engine.WithLogger.
func FromRule(rule *numeral.Rule, opts ...engine.Option) *System {
	return &System{
		rule: rule,
		norm: engine.New(opts...),
	}
}

// Rule returns the system's rule.
func (s *System) Rule() *numeral.Rule {
	return s.rule
}

// Base returns the system's radix, the positive root of the rule's
// characteristic polynomial.
func (s *System) Base() float64 {
	return s.rule.Base()
}

// Tape builds a tape from digit slices, positives most significant
// first.
func (s *System) Tape(positives, negatives []phi.Value) *numeral.Tape {
	return numeral.FromDigits(positives, negatives)
}

// Value evaluates the number t represents in this system.
func (s *System) Value(t *numeral.Tape) float64 {
	return t.Value(s.rule)
}

// IsValid reports whether every digit of t is legal in this system.
func (s *System) IsValid(t *numeral.Tape) bool {
	return t.IsValid(s.rule)
}

// IsStandard reports whether t is in canonical form for this system.
func (s *System) IsStandard(t *numeral.Tape) bool {
	return t.IsStandard(s.rule)
}

// Standardize normalizes t to canonical form, returning the carry
// trace alongside. The input is not modified. Invalid tapes are
// reported as errors.
func (s *System) Standardize(t *numeral.Tape) (*numeral.Tape, *engine.Trace, error) {
	return s.norm.Normalize(t, s.rule)
}

// Add returns the digit-wise sum of a and b with zero-extension. The
// sum of two valid tapes can exceed the rule's digit bound, so the
// result is not normalized here; Standardize accepts it once its
// digits are within bounds.
func (s *System) Add(a, b *numeral.Tape) *numeral.Tape {
	return a.Add(b)
}
