package system_test

import (
	"math"
	"testing"

	"github.com/albertsgarde/phi"
	"github.com/albertsgarde/phi/numeral"
	"github.com/albertsgarde/phi/system"
)

func TestSystemFibonacci(t *testing.T) {
	sys, err := system.New(1, 1)
	if err != nil {
		t.Fatal(err)
	}

	golden := (1 + math.Sqrt(5)) / 2
	if got := sys.Base(); math.Abs(got-golden) > 1e-9 {
		t.Errorf("Base = %v, want %v", got, golden)
	}

	tape := sys.Tape([]phi.Value{1, 1}, nil)
	if !sys.IsValid(tape) {
		t.Error("tape 1 1 invalid under [1 1]")
	}
	if sys.IsStandard(tape) {
		t.Error("tape 1 1 standard under [1 1]")
	}

	std, trace, err := sys.Standardize(tape)
	if err != nil {
		t.Fatal(err)
	}
	if !std.Equal(numeral.FromDigits([]phi.Value{1, 0, 0}, nil)) {
		t.Errorf("standardized = %v, want 1 0 0", std)
	}
	if trace.Carries != 1 {
		t.Errorf("trace carries = %d, want 1", trace.Carries)
	}
	if math.Abs(sys.Value(std)-sys.Value(tape)) > 1e-9 {
		t.Error("standardization changed the value")
	}
}

func TestSystemRejectsBadRule(t *testing.T) {
	if _, err := system.New(1, 2); err == nil {
		t.Error("New(1, 2) accepted an increasing rule")
	}
	if _, err := system.New(); err == nil {
		t.Error("New() accepted an empty rule")
	}
}

func TestSystemAdd(t *testing.T) {
	sys, err := system.New(9, 1)
	if err != nil {
		t.Fatal(err)
	}

	a := sys.Tape([]phi.Value{1, 2}, []phi.Value{3})
	b := sys.Tape([]phi.Value{4}, []phi.Value{5, 6})

	sum := sys.Add(a, b)
	want := numeral.FromDigits([]phi.Value{1, 6}, []phi.Value{8, 6})
	if !sum.Equal(want) {
		t.Errorf("sum = %v, want %v", sum, want)
	}
}
