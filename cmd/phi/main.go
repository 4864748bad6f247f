package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/albertsgarde/phi"
	"github.com/albertsgarde/phi/config"
	phierrors "github.com/albertsgarde/phi/errors"
	"github.com/albertsgarde/phi/numeral"
	"github.com/albertsgarde/phi/system"
)

func main() {
	var (
		ruleStr     = flag.String("rule", "", "Rule digits, e.g. \"1 1\"")
		presetFile  = flag.String("presets", "", "YAML file with named rule presets")
		presetName  = flag.String("preset", "", "Preset name from -presets")
		tapeStr     = flag.String("tape", "", "Tape digits, negative side after a comma: \"1 0 1, 1\"")
		showBase    = flag.Bool("base", false, "Print the rule's base")
		showValue   = flag.Bool("value", false, "Print the tape's numeric value")
		standardize = flag.Bool("standardize", false, "Print the tape's standard form")
		check       = flag.Bool("check", false, "Report validity and standard form")
		list        = flag.Bool("list", false, "List presets and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if err := run(options{
		rule:        *ruleStr,
		presetFile:  *presetFile,
		presetName:  *presetName,
		tape:        *tapeStr,
		showBase:    *showBase,
		showValue:   *showValue,
		standardize: *standardize,
		check:       *check,
		list:        *list,
		interactive: *interactive,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	rule        string
	presetFile  string
	presetName  string
	tape        string
	showBase    bool
	showValue   bool
	standardize bool
	check       bool
	list        bool
	interactive bool
}

func run(opts options) error {
	var presets config.Presets
	if opts.presetFile != "" {
		var err error
		presets, err = config.Load(opts.presetFile)
		if err != nil {
			return err
		}
	}

	if opts.list {
		for _, name := range presets.Names() {
			rule, err := presets.Rule(name)
			if err != nil {
				fmt.Printf("%s: invalid (%v)\n", name, err)
				continue
			}
			fmt.Printf("%s: %s (base %.9f)\n", name, rule, rule.Base())
		}
		return nil
	}

	ruleStr := opts.rule
	if opts.presetName != "" {
		digits, ok := presets[opts.presetName]
		if !ok {
			return fmt.Errorf("preset %q not found", opts.presetName)
		}
		ruleStr = digitString(digits)
	}

	if opts.interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("interactive mode needs a terminal")
		}
		return runInteractive(ruleStr, opts.tape)
	}

	if ruleStr == "" {
		fmt.Fprintln(os.Stderr, "Usage: phi -rule \"1 1\" [-tape \"1 0 1, 1\"] [-base] [-value] [-standardize] [-check]")
		fmt.Fprintln(os.Stderr, "       phi -presets rules.yaml -preset fib ...")
		fmt.Fprintln(os.Stderr, "       phi -presets rules.yaml -list")
		fmt.Fprintln(os.Stderr, "       phi -rule \"1 1\" -i  (interactive mode)")
		os.Exit(1)
	}

	digits, err := parseDigits(ruleStr)
	if err != nil {
		return fmt.Errorf("parse rule: %w", err)
	}
	sys, err := system.New(digits...)
	if err != nil {
		return err
	}

	// With no operation flags, report everything we can.
	all := !opts.showBase && !opts.showValue && !opts.standardize && !opts.check

	if opts.showBase || all {
		fmt.Printf("Rule: %s\n", sys.Rule())
		fmt.Printf("Base: %.12f\n", sys.Base())
	}

	if opts.tape == "" {
		return nil
	}
	tape, err := parseTape(opts.tape)
	if err != nil {
		return fmt.Errorf("parse tape: %w", err)
	}

	if opts.check || all {
		fmt.Printf("Tape: %s\n", tape)
		fmt.Printf("Valid: %v\n", sys.IsValid(tape))
		if sys.IsValid(tape) {
			fmt.Printf("Standard: %v\n", sys.IsStandard(tape))
		}
	}
	if opts.showValue || all {
		fmt.Printf("Value: %.12f\n", sys.Value(tape))
	}
	if opts.standardize || all {
		std, trace, err := sys.Standardize(tape)
		if err != nil {
			return err
		}
		fmt.Printf("Standard form: %s\n", std)
		if all {
			fmt.Printf("Carries: %d\n", trace.Carries)
		}
	}
	return nil
}

// parseDigits reads a space-separated digit list.
func parseDigits(s string) ([]phi.Value, error) {
	fields := strings.Fields(s)
	digits := make([]phi.Value, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return nil, phierrors.New(phierrors.PhaseParse, phierrors.KindInvalidInput).
				Cause(err).
				Detail("digit %q", f).
				Build()
		}
		digits = append(digits, phi.Value(v))
	}
	return digits, nil
}

// parseTape reads "positives" or "positives, negatives".
func parseTape(s string) (*numeral.Tape, error) {
	posPart, negPart, _ := strings.Cut(s, ",")
	positives, err := parseDigits(posPart)
	if err != nil {
		return nil, err
	}
	negatives, err := parseDigits(negPart)
	if err != nil {
		return nil, err
	}
	return numeral.FromDigits(positives, negatives), nil
}

func digitString(digits []phi.Value) string {
	parts := make([]string, len(digits))
	for i, d := range digits {
		parts[i] = strconv.FormatUint(uint64(d), 10)
	}
	return strings.Join(parts, " ")
}
