package numeral_test

import (
	"errors"
	"math"
	"testing"

	"github.com/albertsgarde/phi"
	phierrors "github.com/albertsgarde/phi/errors"
	"github.com/albertsgarde/phi/numeral"
)

const baseTolerance = 1e-9

func TestRuleBaseWhole(t *testing.T) {
	// A single-digit rule [k] means x = k exactly.
	for _, k := range []phi.Value{1, 2, 3, 7, 100} {
		rule, err := numeral.New(k)
		if err != nil {
			t.Fatalf("New(%d): %v", k, err)
		}
		if got := rule.Base(); math.Abs(got-float64(k)) > baseTolerance {
			t.Errorf("base of [%d] = %v, want %d", k, got, k)
		}
	}
}

func TestRuleBasePhi(t *testing.T) {
	golden := (1 + math.Sqrt(5)) / 2

	for _, digits := range [][]phi.Value{{1, 1}, {1, 1, 0}} {
		rule, err := numeral.New(digits...)
		if err != nil {
			t.Fatalf("New(%v): %v", digits, err)
		}
		if got := rule.Base(); math.Abs(got-golden) > baseTolerance {
			t.Errorf("base of %v = %v, want %v", digits, got, golden)
		}
	}
}

func TestRuleBaseBracket(t *testing.T) {
	tests := [][]phi.Value{
		{1, 1},
		{2, 1},
		{3, 3, 3},
		{5, 4, 3, 2, 1},
		{100, 1},
		{9, 9, 9, 9},
	}

	for _, digits := range tests {
		rule, err := numeral.New(digits...)
		if err != nil {
			t.Fatalf("New(%v): %v", digits, err)
		}
		first := float64(rule.First())
		base := rule.Base()
		if base < first || base >= first+1 {
			t.Errorf("base of %v = %v, want in [%v, %v)", digits, base, first, first+1)
		}
	}
}

func TestRuleNewRejects(t *testing.T) {
	tests := []struct {
		name   string
		digits []phi.Value
		kind   phierrors.Kind
	}{
		{"empty", nil, phierrors.KindEmptyRule},
		{"all zero", []phi.Value{0, 0, 0}, phierrors.KindEmptyRule},
		{"single zero", []phi.Value{0}, phierrors.KindEmptyRule},
		{"increase", []phi.Value{1, 2}, phierrors.KindIncreasingDigits},
		{"late increase", []phi.Value{3, 2, 2, 4}, phierrors.KindIncreasingDigits},
		{"rise after zero", []phi.Value{1, 0, 1}, phierrors.KindIncreasingDigits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := numeral.New(tt.digits...)
			if err == nil {
				t.Fatalf("New(%v) accepted, want %s", tt.digits, tt.kind)
			}
			if rule != nil {
				t.Errorf("New(%v) returned rule alongside error", tt.digits)
			}
			if !errors.Is(err, &phierrors.Error{Phase: phierrors.PhaseRule, Kind: tt.kind}) {
				t.Errorf("New(%v) error = %v, want kind %s", tt.digits, err, tt.kind)
			}
		})
	}
}

func TestRuleNewAccepts(t *testing.T) {
	tests := [][]phi.Value{
		{1},
		{1, 1},
		{2, 2, 1},
		{5, 5, 5, 5},
		{4, 2, 2, 1, 0, 0},
	}

	for _, digits := range tests {
		if _, err := numeral.New(digits...); err != nil {
			t.Errorf("New(%v): %v", digits, err)
		}
	}
}

func TestRuleTrimsTrailingZeros(t *testing.T) {
	rule, err := numeral.New(2, 1, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	if rule.Len() != 2 {
		t.Errorf("Len = %d, want 2", rule.Len())
	}
	if _, ok := rule.Get(2); ok {
		t.Error("Get(2) present, want absent past the stripped rule")
	}
	if !rule.Equal(numeral.MustNew(2, 1)) {
		t.Error("[2 1 0 0] != [2 1] after trimming")
	}
}

func TestRuleIsUnit(t *testing.T) {
	tests := []struct {
		digits []phi.Value
		unit   bool
	}{
		{[]phi.Value{1}, true},
		{[]phi.Value{1, 0}, true}, // trims to [1]
		{[]phi.Value{2}, false},
		{[]phi.Value{1, 1}, false},
	}

	for _, tt := range tests {
		if got := numeral.MustNew(tt.digits...).IsUnit(); got != tt.unit {
			t.Errorf("IsUnit(%v) = %v, want %v", tt.digits, got, tt.unit)
		}
	}
}

func TestRuleEqualNil(t *testing.T) {
	if numeral.MustNew(1, 1).Equal(nil) {
		t.Error("rule compares equal to nil")
	}
}

func TestRuleAccessors(t *testing.T) {
	rule := numeral.MustNew(3, 2, 1)

	if rule.First() != 3 {
		t.Errorf("First = %d, want 3", rule.First())
	}
	if v, ok := rule.Get(1); !ok || v != 2 {
		t.Errorf("Get(1) = %d, %v, want 2, true", v, ok)
	}
	if _, ok := rule.Get(-1); ok {
		t.Error("Get(-1) present")
	}

	digits := rule.Digits()
	digits[0] = 99
	if rule.First() != 3 {
		t.Error("Digits returned aliased storage")
	}

	if rule.String() != "3 2 1" {
		t.Errorf("String = %q, want %q", rule.String(), "3 2 1")
	}
	if rule.Equal(numeral.MustNew(3, 2)) {
		t.Error("rules of different length compare equal")
	}
}
