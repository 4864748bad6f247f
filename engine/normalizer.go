package engine

import (
	"go.uber.org/zap"

	"github.com/albertsgarde/phi/errors"
	"github.com/albertsgarde/phi/numeral"
)

// DefaultMaxPasses bounds normalization sweeps. Normalization always
// terminates, so the guard only converts a broken invariant into a
// structured error instead of a spin.
const DefaultMaxPasses = 10000

// Normalizer drives Tape.Reduce to a fixpoint, recording every carry
// in a trace. The zero value is not usable; construct with New.
type Normalizer struct {
	logger    *zap.Logger
	maxPasses int
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLogger replaces the package logger for this normalizer.
func WithLogger(l *zap.Logger) Option {
	return func(n *Normalizer) {
		n.logger = l
	}
}

// WithMaxPasses overrides the sweep guard.
func WithMaxPasses(passes int) Option {
	return func(n *Normalizer) {
		n.maxPasses = passes
	}
}

// New builds a Normalizer with the package logger and default guard.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		logger:    Logger(),
		maxPasses: DefaultMaxPasses,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Event records one carry performed during normalization.
type Event struct {
	Pass     int // 1-based sweep number
	Position int // position the carry landed on, after escalation
}

// Trace summarizes a normalization run.
type Trace struct {
	Events  []Event
	Passes  int // sweeps run, including the final empty one
	Carries int
}

// Normalize returns the canonical form of t under rule together with
// the carry trace. Unlike Tape.Standardize it validates its input and
// reports an invalid tape or an unnormalizable rule as an error
// rather than a panic, since callers at this layer hand in arbitrary
// data.
func (n *Normalizer) Normalize(t *numeral.Tape, rule *numeral.Rule) (*numeral.Tape, *Trace, error) {
	if rule.IsUnit() {
		return nil, nil, errors.InvalidInput(errors.PhaseStandardize,
			"rule 1 has base 1; nonzero tapes have no canonical form")
	}
	if !t.IsValid(rule) {
		return nil, nil, errors.InvalidTape(errors.PhaseStandardize, rule.First())
	}

	out := t.Clone()
	trace := &Trace{}
	for pass := 1; ; pass++ {
		if pass > n.maxPasses {
			return nil, nil, errors.Diverged(n.maxPasses)
		}
		carries := out.Reduce(rule, func(pos int) {
			trace.Events = append(trace.Events, Event{Pass: pass, Position: pos})
		})
		trace.Passes = pass
		trace.Carries += carries
		n.logger.Debug("reduce pass",
			zap.Int("pass", pass),
			zap.Int("carries", carries),
			zap.Stringer("tape", out),
		)
		if carries == 0 {
			return out, trace, nil
		}
	}
}
