package engine_test

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"

	"github.com/albertsgarde/phi"
	"github.com/albertsgarde/phi/engine"
	phierrors "github.com/albertsgarde/phi/errors"
	"github.com/albertsgarde/phi/numeral"
)

func TestNormalize(t *testing.T) {
	rule := numeral.MustNew(1, 1)
	tape := numeral.FromDigits([]phi.Value{1, 0, 1, 1}, nil)

	norm := engine.New(engine.WithLogger(zap.NewNop()))
	std, trace, err := norm.Normalize(tape, rule)
	if err != nil {
		t.Fatal(err)
	}

	if want := numeral.FromDigits([]phi.Value{1, 0, 0, 0, 0}, nil); !std.Equal(want) {
		t.Errorf("normalized = %v, want %v", std, want)
	}
	if !std.IsStandard(rule) {
		t.Error("normalized tape is not standard")
	}
	if !tape.Equal(numeral.FromDigits([]phi.Value{1, 0, 1, 1}, nil)) {
		t.Error("Normalize modified its input")
	}

	got, want := std.Value(rule), tape.Value(rule)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("value changed: %v -> %v", want, got)
	}

	if trace.Carries != len(trace.Events) {
		t.Errorf("trace counts %d carries but holds %d events", trace.Carries, len(trace.Events))
	}
	if trace.Carries == 0 {
		t.Error("trace recorded no carries for a non-standard tape")
	}
	// The final sweep is the empty one that proves the fixpoint.
	if trace.Passes < 2 {
		t.Errorf("trace passes = %d, want at least 2", trace.Passes)
	}
	for _, ev := range trace.Events {
		if ev.Pass < 1 || ev.Pass >= trace.Passes {
			t.Errorf("event %+v outside pass range [1, %d)", ev, trace.Passes)
		}
	}
}

func TestNormalizeStandardInput(t *testing.T) {
	rule := numeral.MustNew(1, 1)
	tape := numeral.FromDigits([]phi.Value{1, 0, 1}, []phi.Value{0, 1})

	std, trace, err := engine.New().Normalize(tape, rule)
	if err != nil {
		t.Fatal(err)
	}
	if !std.Equal(tape) {
		t.Errorf("standard tape changed: %v -> %v", tape, std)
	}
	if trace.Carries != 0 || trace.Passes != 1 {
		t.Errorf("trace = %d carries in %d passes, want 0 in 1", trace.Carries, trace.Passes)
	}
}

func TestNormalizeInvalidTape(t *testing.T) {
	rule := numeral.MustNew(1, 1)
	tape := numeral.FromDigits([]phi.Value{2}, nil)

	_, _, err := engine.New().Normalize(tape, rule)
	if err == nil {
		t.Fatal("normalizing an invalid tape succeeded")
	}
	if !errors.Is(err, &phierrors.Error{Phase: phierrors.PhaseStandardize, Kind: phierrors.KindInvalidTape}) {
		t.Errorf("error = %v, want invalid_tape", err)
	}
}

func TestNormalizeUnitRule(t *testing.T) {
	rule := numeral.MustNew(1)
	tape := numeral.FromDigits([]phi.Value{1}, nil)

	// Base 1 means no canonical form; this must fail cleanly instead
	// of sweeping forever.
	_, _, err := engine.New().Normalize(tape, rule)
	if err == nil {
		t.Fatal("normalizing under the unit rule succeeded")
	}
	if !errors.Is(err, &phierrors.Error{Phase: phierrors.PhaseStandardize, Kind: phierrors.KindInvalidInput}) {
		t.Errorf("error = %v, want invalid_input", err)
	}
}

func TestNormalizePassGuard(t *testing.T) {
	rule := numeral.MustNew(1, 1)
	tape := numeral.FromDigits([]phi.Value{1, 1, 1, 1, 1, 1}, nil)

	// This input needs several sweeps; a one-pass guard must trip.
	_, _, err := engine.New(engine.WithMaxPasses(1)).Normalize(tape, rule)
	if err == nil {
		t.Fatal("pass guard did not trip")
	}
	if !errors.Is(err, &phierrors.Error{Phase: phierrors.PhaseStandardize, Kind: phierrors.KindDiverged}) {
		t.Errorf("error = %v, want diverged", err)
	}
}
