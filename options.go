package robust

// Option configures a Predicate during creation.
// Use functional options to customize filter behavior.
//
// Example:
//
//	// Default: Go rounding control, no observer
//	p, err := robust.New(state, cfg)
//
//	// Named predicate reporting to a metrics collector
//	p, err := robust.New(state, cfg,
//	    robust.WithName("side_of_line"),
//	    robust.WithObserver(collector))
type Option func(*options)

// options holds optional configuration for Predicate creation.
type options struct {
	name           string
	rounding       RoundingControl
	observer       Observer
	callerRounding bool
	sticky         bool
}

// defaultOptions returns the default predicate options.
func defaultOptions() options {
	return options{
		name:     "predicate",
		rounding: GoRounding(),
		observer: nil, // Stats are always kept; observer is optional
	}
}

// WithName sets the name used in log records and reported to the Observer.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithRounding sets the rounding control guarded by Eval.
// A nil control keeps the default GoRounding.
//
// The control is shared by every Eval call on the predicate; use EvalOn to
// pass a goroutine-owned register per call instead.
func WithRounding(ctl RoundingControl) Option {
	return func(o *options) {
		if ctl != nil {
			o.rounding = ctl
		}
	}
}

// WithObserver registers an Observer notified of every evaluation outcome.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithCallerRounding declares that callers already run under
// FastPathRounding, typically because they protect a whole loop of
// evaluations with one ProtectRounding. The fast path then leaves the
// register alone. The exact path is always guarded.
func WithCallerRounding() Option {
	return func(o *options) {
		o.callerRounding = true
	}
}

// WithStickyFallback makes an instance skip the approximate evaluator once
// it has fallen back to the exact evaluator. This suits predicates whose
// persistent state is itself degenerate, where every query falls back
// anyway; it never changes results, only cost.
func WithStickyFallback() Option {
	return func(o *options) {
		o.sticky = true
	}
}
