package numeral

import (
	"fmt"
	"math"
	"strings"

	"github.com/albertsgarde/phi"
	"github.com/albertsgarde/phi/errors"
)

// Tape is a digit sequence over signed integer positions,
// conceptually infinite in both directions. Only a finite window is
// materialized; positions outside it read as zero. Writes past the
// window extend the corresponding side, zero-filling the gap.
type Tape struct {
	positive []phi.Value // positive[i] holds position i
	negative []phi.Value // negative[i] holds position -(i+1)
}

// FromDigits builds a tape from explicit digit slices. positives are
// given most significant first, so the last element lands at position
// 0; negatives fill positions -1, -2, ... in order.
func FromDigits(positives, negatives []phi.Value) *Tape {
	t := &Tape{
		positive: make([]phi.Value, len(positives)),
		negative: append([]phi.Value(nil), negatives...),
	}
	for i, d := range positives {
		t.positive[len(positives)-1-i] = d
	}
	return t
}

// Zero returns the empty tape, which represents 0 under every rule.
func Zero() *Tape {
	return &Tape{}
}

// Clone returns a deep copy sharing no storage with the receiver.
func (t *Tape) Clone() *Tape {
	return &Tape{
		positive: append([]phi.Value(nil), t.positive...),
		negative: append([]phi.Value(nil), t.negative...),
	}
}

// Range returns the materialized half-open span [min, max). Digits
// outside it are implicitly zero; the span bounds materialization,
// not value.
func (t *Tape) Range() (min, max int) {
	return -len(t.negative), len(t.positive)
}

// side maps a signed position to a side and a slice index.
func side(pos int) (positive bool, index int) {
	if pos >= 0 {
		return true, pos
	}
	return false, -pos - 1
}

// At returns the digit at pos, zero outside the materialized window.
func (t *Tape) At(pos int) phi.Value {
	positive, i := side(pos)
	if positive {
		if i >= len(t.positive) {
			return 0
		}
		return t.positive[i]
	}
	if i >= len(t.negative) {
		return 0
	}
	return t.negative[i]
}

// Set writes the digit at pos, extending the window if needed.
func (t *Tape) Set(pos int, v phi.Value) {
	*t.slot(pos) = v
}

// slot returns a writable cell for pos, zero-extending its side first.
func (t *Tape) slot(pos int) *phi.Value {
	positive, i := side(pos)
	arr := &t.negative
	if positive {
		arr = &t.positive
	}
	for len(*arr) <= i {
		*arr = append(*arr, 0)
	}
	return &(*arr)[i]
}

// Equal reports whether two tapes hold the same digit at every
// position. All-zero padding beyond either tape's window is ignored.
// A nil tape equals nothing.
func (t *Tape) Equal(other *Tape) bool {
	if other == nil {
		return false
	}
	return sidesEqual(t.positive, other.positive) && sidesEqual(t.negative, other.negative)
}

func sidesEqual(a, b []phi.Value) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	for _, v := range a[n:] {
		if v != 0 {
			return false
		}
	}
	for _, v := range b[n:] {
		if v != 0 {
			return false
		}
	}
	return true
}

// AddInPlace adds other digit-wise into t, zero-extending as needed.
// The sum of two valid tapes may overflow the rule maximum; callers
// normalize afterwards.
func (t *Tape) AddInPlace(other *Tape) {
	for i, v := range other.positive {
		if v != 0 {
			*t.slot(i) += v
		}
	}
	for i, v := range other.negative {
		if v != 0 {
			*t.slot(-i-1) += v
		}
	}
}

// Add returns the digit-wise sum of t and other.
func (t *Tape) Add(other *Tape) *Tape {
	out := t.Clone()
	out.AddInPlace(other)
	return out
}

// Value evaluates the number the tape represents under rule:
// the sum over all positions of digit*base^position.
func (t *Tape) Value(rule *Rule) float64 {
	base := rule.Base()
	sum := 0.0
	min, max := t.Range()
	for pos := max - 1; pos >= min; pos-- {
		if d := t.At(pos); d != 0 {
			sum += float64(d) * math.Pow(base, float64(pos))
		}
	}
	return sum
}

// IsValid reports whether every digit is at most rule.First(). Only
// valid tapes are legal inputs to carry operations.
func (t *Tape) IsValid(rule *Rule) bool {
	max := rule.First()
	for _, v := range t.positive {
		if v > max {
			return false
		}
	}
	for _, v := range t.negative {
		if v > max {
			return false
		}
	}
	return true
}

// Apply performs one checked carry at pos on a copy of t: the digit
// at pos is incremented and the digit at pos-1-i is decremented by
// rule[i] for each i. The receiver is never modified. If any
// decrement would drive a digit below zero, Apply returns a
// digit_underflow error naming the failing position and the digits
// involved.
//
// The rewrite is exactly value-preserving: the characteristic
// identity gives base^pos = sum rule[i]*base^(pos-1-i).
func (t *Tape) Apply(rule *Rule, pos int) (*Tape, error) {
	if rule.Len() == 0 {
		panic("numeral: apply with degenerate rule")
	}
	out := t.Clone()
	*out.slot(pos)++
	for i, rv := range rule.digits {
		p := pos - 1 - i
		tv := out.At(p)
		if tv < rv {
			return nil, errors.DigitUnderflow(p, i, rv, tv)
		}
		out.Set(p, tv-rv)
	}
	return out, nil
}

// apply is the unchecked carry used by normalization, which only
// fires at positions the dominance scan has proven safe. An underflow
// here is a broken invariant, not a data error.
func (t *Tape) apply(rule *Rule, pos int) {
	*t.slot(pos)++
	for i, rv := range rule.digits {
		p := t.slot(pos - 1 - i)
		if *p < rv {
			panic(fmt.Sprintf("numeral: carry at %d underflows position %d (rule[%d]=%d, digit %d)",
				pos, pos-1-i, i, rv, *p))
		}
		*p -= rv
	}
}

// carryAt applies a carry for the dominating window ending at pos-1.
// If the digit at pos is already the rule maximum the increment would
// leave the tape invalid; because the rule is non-increasing, the
// window shifted up by one still dominates, so the carry escalates
// past the run of maximal digits. Returns the position actually used.
func (t *Tape) carryAt(rule *Rule, pos int) int {
	max := rule.First()
	for t.At(pos) >= max {
		pos++
	}
	t.apply(rule, pos)
	return pos
}

// stepOutcome classifies one position of the dominance scan.
type stepOutcome int

const (
	stepContinue stepOutcome = iota // digit dominates, window extends
	stepReset                       // digit falls short, window restarts here
	stepCarry                       // window spans the whole rule, carry at cur
)

// step compares the digit at i against the rule digit for its offset
// in the window starting at cur. Past the end of the rule the window
// has dominated the whole pattern and a carry is due.
func (t *Tape) step(rule *Rule, cur, i int) stepOutcome {
	rv, ok := rule.Get(cur - i - 1)
	if !ok {
		return stepCarry
	}
	if t.At(i) < rv {
		return stepReset
	}
	return stepContinue
}

// Reduce runs one dominance sweep from the most significant
// materialized position downward, applying a carry for every window
// that dominates the rule pattern, including the window that ends
// exactly at the tape's edge. It reports each carry position to
// observe (if non-nil) and returns the number of carries performed.
//
// A single sweep is not a fixpoint: a carry can assemble a new
// dominating window above the cursor. Standardize sweeps repeatedly;
// Reduce is exported so callers can watch the passes.
func (t *Tape) Reduce(rule *Rule, observe func(pos int)) int {
	if rule.Len() == 0 {
		panic("numeral: reduce with degenerate rule")
	}
	// Under the unit rule a carry moves a digit one position up and
	// recreates the same dominating window, so sweeps never converge.
	if rule.IsUnit() {
		panic("numeral: reduce with unit rule; no canonical form exists")
	}
	carries := 0
	min, max := t.Range()
	cur := max
	for i := max - 1; i >= min; i-- {
		switch t.step(rule, cur, i) {
		case stepReset:
			cur = i
		case stepCarry:
			pos := t.carryAt(rule, cur)
			if observe != nil {
				observe(pos)
			}
			carries++
			cur = i
		}
	}
	// Boundary case: the final window can dominate the full rule with
	// its end at the tape's edge, where the scan never gets a chance
	// to run past the rule length.
	if cur-min == rule.Len() {
		pos := t.carryAt(rule, cur)
		if observe != nil {
			observe(pos)
		}
		carries++
	}
	return carries
}

// IsStandard reports whether the tape is the canonical form for rule:
// it is valid, no window dominates the rule pattern, and the final
// window does not dominate out to the tape's edge.
func (t *Tape) IsStandard(rule *Rule) bool {
	if rule.Len() == 0 {
		panic("numeral: standard check with degenerate rule")
	}
	if !t.IsValid(rule) {
		return false
	}
	min, max := t.Range()
	cur := max
	for i := max - 1; i >= min; i-- {
		switch t.step(rule, cur, i) {
		case stepReset:
			cur = i
		case stepCarry:
			return false
		}
	}
	return cur-min != rule.Len()
}

// StandardizeInPlace normalizes the tape to canonical form under
// rule, preserving its value exactly. The tape must be valid and the
// rule must not be the unit rule [1]; violating either precondition
// panics. Each sweep's carries strictly increase the digit string
// lexicographically from the most significant position while total
// value is conserved, so the fixpoint is reached in finitely many
// sweeps.
func (t *Tape) StandardizeInPlace(rule *Rule) {
	if rule.IsUnit() {
		panic("numeral: standardize with unit rule; no canonical form exists")
	}
	if !t.IsValid(rule) {
		panic("numeral: standardize on invalid tape")
	}
	for t.Reduce(rule, nil) > 0 {
	}
}

// Standardize returns the canonical form of t under rule, leaving the
// receiver unchanged.
func (t *Tape) Standardize(rule *Rule) *Tape {
	out := t.Clone()
	out.StandardizeInPlace(rule)
	return out
}

// String renders the non-negative side most significant first,
// space-separated ("0" if that side is empty), then a comma and the
// negative side if any negative positions are materialized. Display
// only, not a parseable exchange format.
func (t *Tape) String() string {
	var b strings.Builder
	if len(t.positive) == 0 {
		b.WriteByte('0')
	} else {
		for i := len(t.positive) - 1; i >= 0; i-- {
			fmt.Fprintf(&b, "%d", t.positive[i])
			if i > 0 {
				b.WriteByte(' ')
			}
		}
	}
	if len(t.negative) > 0 {
		b.WriteByte(',')
		for i, d := range t.negative {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", d)
		}
	}
	return b.String()
}
