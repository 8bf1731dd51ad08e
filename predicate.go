package robust

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrIncompleteConfig is returned by New when a converter or evaluator is
// missing from the Config.
var ErrIncompleteConfig = errors.New("robust: incomplete predicate config")

// Config bundles the collaborators of a filtered predicate.
//
// Type parameters: S is the persistent state and A the call argument type
// as seen by callers; AS and AA are their approximate forms, ES and EA
// their exact forms; R is the predicate's logical result.
type Config[S, A, AS, AA, ES, EA any, R comparable] struct {
	// ToApprox converts state and arguments to the approximate form.
	ToApprox Converter[S, A, AS, AA]

	// ToExact converts state and arguments to the exact form.
	ToExact Converter[S, A, ES, EA]

	// Approx is the fast evaluator. It may decline to decide.
	Approx ApproxEvaluator[AS, AA, R]

	// Exact is the authoritative evaluator.
	Exact ExactEvaluator[ES, EA, R]

	// Arity is the required number of call arguments; 0 accepts any.
	Arity int
}

// Predicate is a filtered predicate: an approximate evaluator tried first,
// backed by an exact evaluator when the approximation cannot decide.
//
// A Predicate owns its persistent state, fixed at construction. The exact
// form of that state is computed on the first fallback and kept for the
// lifetime of the Predicate; the approximate form is recomputed on every
// call since it is cheap. Call arguments are converted on every call.
//
// Predicate is safe for concurrent use. Concurrent first fallbacks
// serialize on the exact state conversion, which succeeds at most once.
type Predicate[S, A, AS, AA, ES, EA any, R comparable] struct {
	state S
	cfg   Config[S, A, AS, AA, ES, EA, R]
	opts  options

	exactState lazyCell[ES]
	stuck      atomic.Bool // set on first fallback when opts.sticky
	stats      counters
}

// New creates a filtered predicate bound to the persistent state.
//
// Example:
//
//	p, err := robust.New(robust.NoState{}, robust.Config[...]{
//	    ToApprox: toInterval,
//	    ToExact:  toRational,
//	    Approx:   robust.ApproxSign(orientInterval),
//	    Exact:    robust.ExactFunc(orientRational),
//	    Arity:    3,
//	})
//	o, err := p.Eval(a, b, c)
func New[S, A, AS, AA, ES, EA any, R comparable](state S, cfg Config[S, A, AS, AA, ES, EA, R], opts ...Option) (*Predicate[S, A, AS, AA, ES, EA, R], error) {
	switch {
	case cfg.ToApprox == nil:
		return nil, fmt.Errorf("%w: missing approximate converter", ErrIncompleteConfig)
	case cfg.ToExact == nil:
		return nil, fmt.Errorf("%w: missing exact converter", ErrIncompleteConfig)
	case cfg.Approx == nil:
		return nil, fmt.Errorf("%w: missing approximate evaluator", ErrIncompleteConfig)
	case cfg.Exact == nil:
		return nil, fmt.Errorf("%w: missing exact evaluator", ErrIncompleteConfig)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Predicate[S, A, AS, AA, ES, EA, R]{
		state: state,
		cfg:   cfg,
		opts:  o,
	}, nil
}

// State returns the persistent state the predicate was created with.
func (p *Predicate[S, A, AS, AA, ES, EA, R]) State() S {
	return p.state
}

// Name returns the predicate name set with WithName.
func (p *Predicate[S, A, AS, AA, ES, EA, R]) Name() string {
	return p.opts.name
}

// Stats returns a snapshot of the predicate's counters.
func (p *Predicate[S, A, AS, AA, ES, EA, R]) Stats() Stats {
	return p.stats.snapshot()
}

// ExactStateLoaded reports whether the exact form of the persistent state
// has been computed.
func (p *Predicate[S, A, AS, AA, ES, EA, R]) ExactStateLoaded() bool {
	return p.exactState.loaded()
}

// Eval evaluates the predicate on args under the predicate's rounding
// control.
func (p *Predicate[S, A, AS, AA, ES, EA, R]) Eval(args ...A) (R, error) {
	return p.EvalOn(p.opts.rounding, args...)
}

// EvalOn evaluates the predicate on args, guarding ctl as the ambient
// rounding register. Each goroutine should pass a register it owns.
//
// The approximate evaluator runs first under FastPathRounding. A certain
// result is returned directly. Otherwise the register is restored, the
// exact path runs under RoundToNearest, and the exact evaluator's result is
// returned. On every exit path ctl holds the mode it held on entry.
//
// Errors wrap ErrArity, ErrConversion or ErrExactEvaluation.
func (p *Predicate[S, A, AS, AA, ES, EA, R]) EvalOn(ctl RoundingControl, args ...A) (R, error) {
	p.stats.calls.Add(1)

	r, outcome, err := p.eval(ctl, args)
	if err != nil {
		p.stats.errors.Add(1)
		outcome = OutcomeError
	}
	if p.opts.observer != nil {
		p.opts.observer.ObserveEval(p.opts.name, outcome)
	}
	return r, err
}

func (p *Predicate[S, A, AS, AA, ES, EA, R]) eval(ctl RoundingControl, args []A) (R, Outcome, error) {
	var zero R

	if p.cfg.Arity > 0 {
		if err := CheckArity(args, p.cfg.Arity); err != nil {
			return zero, OutcomeError, err
		}
	}

	if !p.stuck.Load() {
		r, ok, err := p.approximate(ctl, args)
		if err != nil {
			return zero, OutcomeError, err
		}
		if ok {
			return r, OutcomeCertain, nil
		}
	}

	p.stats.fallbacks.Add(1)
	if p.opts.sticky {
		p.stuck.Store(true)
	}
	Logger().Debug("robust: exact fallback", "predicate", p.opts.name, "args", len(args))

	r, err := p.exact(ctl, args)
	if err != nil {
		return zero, OutcomeError, err
	}
	return r, OutcomeFallback, nil
}

// approximate runs the fast path. ok is false when the approximate result
// is indeterminate.
func (p *Predicate[S, A, AS, AA, ES, EA, R]) approximate(ctl RoundingControl, args []A) (r R, ok bool, err error) {
	st, err := p.cfg.ToApprox.ConvertState(p.state)
	if err != nil {
		return r, false, fmt.Errorf("%w: approximate state: %w", ErrConversion, err)
	}
	cargs, err := convertArgs(p.cfg.ToApprox, args)
	if err != nil {
		return r, false, fmt.Errorf("%w: approximate %w", ErrConversion, err)
	}

	if !p.opts.callerRounding {
		defer ProtectRounding(ctl, FastPathRounding)()
	}
	r, ok = p.cfg.Approx.Evaluate(st, cargs).Value()
	return r, ok, nil
}

// exact runs the authoritative path, materializing the exact state first.
func (p *Predicate[S, A, AS, AA, ES, EA, R]) exact(ctl RoundingControl, args []A) (R, error) {
	var zero R

	defer ProtectRounding(ctl, RoundToNearest)()

	es, created, err := p.exactState.get(func() (ES, error) {
		return p.cfg.ToExact.ConvertState(p.state)
	})
	if err != nil {
		return zero, fmt.Errorf("%w: exact state: %w", ErrConversion, err)
	}
	if created {
		p.stats.materializations.Add(1)
		Logger().Debug("robust: exact state materialized", "predicate", p.opts.name)
		if p.opts.observer != nil {
			p.opts.observer.ObserveMaterialize(p.opts.name)
		}
	}

	cargs, err := convertArgs(p.cfg.ToExact, args)
	if err != nil {
		return zero, fmt.Errorf("%w: exact %w", ErrConversion, err)
	}

	r, err := p.cfg.Exact.Evaluate(es, cargs)
	if err != nil {
		Logger().Warn("robust: exact evaluation failed", "predicate", p.opts.name, "error", err)
		return zero, fmt.Errorf("%w: %s: %w", ErrExactEvaluation, p.opts.name, err)
	}
	return r, nil
}
