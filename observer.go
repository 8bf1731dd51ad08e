package robust

import "sync/atomic"

// Outcome classifies how one evaluation was answered.
type Outcome uint8

const (
	// OutcomeCertain means the approximate evaluator decided the call.
	OutcomeCertain Outcome = iota

	// OutcomeFallback means the exact evaluator decided the call.
	OutcomeFallback

	// OutcomeError means the call failed with an error.
	OutcomeError
)

// String returns the outcome label used in logs and metrics.
func (o Outcome) String() string {
	switch o {
	case OutcomeCertain:
		return "certain"
	case OutcomeFallback:
		return "fallback"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// Observer receives per-call notifications from predicates. Implementations
// must be safe for concurrent use and cheap: they run on the fast path.
type Observer interface {
	// ObserveEval is called once per Eval with the call's outcome.
	ObserveEval(predicate string, outcome Outcome)

	// ObserveMaterialize is called when a predicate converts its
	// persistent state to the exact representation.
	ObserveMaterialize(predicate string)
}

// Stats is a snapshot of a predicate's counters.
type Stats struct {
	// Calls is the number of Eval calls.
	Calls uint64
	// Fallbacks is the number of calls the approximate evaluator could not
	// decide, answered (or failed) by the exact evaluator.
	Fallbacks uint64
	// Errors is the number of calls that returned an error.
	Errors uint64
	// Materializations is the number of exact state conversions. It is at
	// most 1 for a predicate whose state converts successfully.
	Materializations uint64
}

// FallbackRate returns Fallbacks / Calls, or 0 before the first call.
func (s Stats) FallbackRate() float64 {
	if s.Calls == 0 {
		return 0
	}
	return float64(s.Fallbacks) / float64(s.Calls)
}

// counters are the live, lock-free form of Stats.
type counters struct {
	calls            atomic.Uint64
	fallbacks        atomic.Uint64
	errors           atomic.Uint64
	materializations atomic.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Calls:            c.calls.Load(),
		Fallbacks:        c.fallbacks.Load(),
		Errors:           c.errors.Load(),
		Materializations: c.materializations.Load(),
	}
}
