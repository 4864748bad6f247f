package main

import (
	"errors"
	"testing"

	"github.com/albertsgarde/phi"
	phierrors "github.com/albertsgarde/phi/errors"
	"github.com/albertsgarde/phi/numeral"
)

func TestParseDigits(t *testing.T) {
	digits, err := parseDigits("  3 2  1 ")
	if err != nil {
		t.Fatal(err)
	}
	want := []phi.Value{3, 2, 1}
	if len(digits) != len(want) {
		t.Fatalf("parseDigits = %v, want %v", digits, want)
	}
	for i, d := range want {
		if digits[i] != d {
			t.Fatalf("parseDigits = %v, want %v", digits, want)
		}
	}
}

func TestParseDigitsRejects(t *testing.T) {
	for _, s := range []string{"1 x 1", "-1", "1.5"} {
		_, err := parseDigits(s)
		if err == nil {
			t.Errorf("parseDigits(%q) accepted", s)
			continue
		}
		if !errors.Is(err, &phierrors.Error{Phase: phierrors.PhaseParse, Kind: phierrors.KindInvalidInput}) {
			t.Errorf("parseDigits(%q) error = %v, want invalid_input", s, err)
		}
	}
}

func TestParseTape(t *testing.T) {
	tape, err := parseTape("1 0 1, 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if want := numeral.FromDigits([]phi.Value{1, 0, 1}, []phi.Value{0, 1}); !tape.Equal(want) {
		t.Errorf("parseTape = %v, want %v", tape, want)
	}

	if _, err := parseTape("1 0, z"); err == nil {
		t.Error("parseTape accepted a bad negative side")
	}
}
