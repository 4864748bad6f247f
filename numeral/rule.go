package numeral

import (
	"fmt"
	"math"
	"strings"

	"github.com/albertsgarde/phi"
	"github.com/albertsgarde/phi/errors"
)

// Rule is a non-increasing digit pattern r0 >= r1 >= ... >= r(n-1)
// defining the recurrence x^n = r0*x^(n-1) + ... + r(n-1). The first
// digit also bounds the legal digits of a tape under this rule.
// Immutable after construction.
type Rule struct {
	digits []phi.Value
	base   float64
}

// New validates digits and builds a rule. It fails if any digit is
// followed by a strictly larger one, or if nothing remains after
// stripping trailing zeros. The base is computed once here.
func New(digits ...phi.Value) (*Rule, error) {
	for i := 1; i < len(digits); i++ {
		if digits[i] > digits[i-1] {
			return nil, errors.IncreasingDigits(i, digits[i-1], digits[i])
		}
	}
	// Non-increasing, so the first zero starts the all-zero tail.
	trimmed := digits
	for i, d := range digits {
		if d == 0 {
			trimmed = digits[:i]
			break
		}
	}
	if len(trimmed) == 0 {
		return nil, errors.EmptyRule()
	}
	r := &Rule{digits: append([]phi.Value(nil), trimmed...)}
	r.base = solveBase(r.digits)
	return r, nil
}

// MustNew is New for rules known valid at compile time. It panics on
// error and is intended for tests and fixed tables.
func MustNew(digits ...phi.Value) *Rule {
	r, err := New(digits...)
	if err != nil {
		panic(err)
	}
	return r
}

// First returns the maximum digit r0, which is also the largest digit
// a valid tape may hold under this rule.
func (r *Rule) First() phi.Value {
	return r.digits[0]
}

// Base returns the positive real root of the rule's characteristic
// polynomial, cached at construction.
func (r *Rule) Base() float64 {
	return r.base
}

// Len returns the number of stored digits. Trailing zeros were
// stripped at construction, so the last digit is non-zero.
func (r *Rule) Len() int {
	return len(r.digits)
}

// IsUnit reports whether the rule is the single digit 1, the only
// pattern whose base is exactly 1. Every position then carries the
// same weight, so no nonzero tape has a canonical form and
// normalization is undefined under it.
func (r *Rule) IsUnit() bool {
	return len(r.digits) == 1 && r.digits[0] == 1
}

// Get returns the digit at index i. The second result is false
// strictly past the rule; absent indices are never "a stored zero"
// because trailing zeros are stripped.
func (r *Rule) Get(i int) (phi.Value, bool) {
	if i < 0 || i >= len(r.digits) {
		return 0, false
	}
	return r.digits[i], true
}

// Digits returns a copy of the stored digit pattern.
func (r *Rule) Digits() []phi.Value {
	return append([]phi.Value(nil), r.digits...)
}

// Equal reports whether two rules hold the same digit pattern.
// A nil rule equals nothing.
func (r *Rule) Equal(other *Rule) bool {
	if other == nil {
		return false
	}
	if len(r.digits) != len(other.digits) {
		return false
	}
	for i, d := range r.digits {
		if other.digits[i] != d {
			return false
		}
	}
	return true
}

func (r *Rule) String() string {
	var b strings.Builder
	for i, d := range r.digits {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", d)
	}
	return b.String()
}

// characteristic evaluates P(x) = -x^n + sum r[i]*x^(n-1-i).
func characteristic(digits []phi.Value, x float64) float64 {
	n := len(digits)
	result := -math.Pow(x, float64(n))
	for i, d := range digits {
		result += float64(d) * math.Pow(x, float64(n-1-i))
	}
	return result
}

// solveBase finds the root of the characteristic polynomial in
// [r0, r0+1) by bisection. P is strictly decreasing there for a valid
// pattern: non-negative at the lower bound, non-positive at the upper.
// The search stops on an exact zero or when the bracket can no longer
// move in floating point.
func solveBase(digits []phi.Value) float64 {
	lo := float64(digits[0])
	hi := lo + 1
	loVal := characteristic(digits, lo)
	hiVal := characteristic(digits, hi)
	for {
		if loVal < 0 || hiVal > 0 {
			panic(fmt.Sprintf("numeral: bisection bracket [%g, %g] lost its sign invariant", lo, hi))
		}
		if lo == hi {
			return lo
		}
		mid := (lo + hi) / 2
		if mid == lo || mid == hi {
			return mid
		}
		midVal := characteristic(digits, mid)
		switch {
		case midVal > 0:
			lo, loVal = mid, midVal
		case midVal < 0:
			hi, hiVal = mid, midVal
		default:
			return mid
		}
	}
}
