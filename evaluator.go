package robust

// ApproxEvaluator is the fast half of a filtered predicate. It computes the
// predicate over approximate (interval) operands and either decides it or
// declines.
//
// An approximate evaluator may return an indeterminate result as often as
// it likes, but it must never return a certain result that differs from the
// exact evaluator's answer for the same logical inputs.
type ApproxEvaluator[S, A any, R comparable] interface {
	Evaluate(state S, args []A) Uncertain[R]
}

// ExactEvaluator is the authoritative half of a filtered predicate. It
// computes the predicate over exact operands and always decides it. An
// error means the computation could not complete (resource exhaustion,
// arity mismatch) and is final.
type ExactEvaluator[S, A any, R comparable] interface {
	Evaluate(state S, args []A) (R, error)
}

// ApproxFunc adapts a function to ApproxEvaluator.
type ApproxFunc[S, A any, R comparable] func(state S, args []A) Uncertain[R]

// Evaluate implements ApproxEvaluator.
func (f ApproxFunc[S, A, R]) Evaluate(state S, args []A) Uncertain[R] {
	return f(state, args)
}

// ExactFunc adapts a function to ExactEvaluator.
type ExactFunc[S, A any, R comparable] func(state S, args []A) (R, error)

// Evaluate implements ExactEvaluator.
func (f ExactFunc[S, A, R]) Evaluate(state S, args []A) (R, error) {
	return f(state, args)
}

// ApproxSign builds a sign evaluator from a function returning an interval
// enclosure of the predicate's determinant. The enclosure is classified
// with Interval.Sign, so [0, 0] falls back to the exact evaluator.
func ApproxSign[S, A any](f func(state S, args []A) Interval) ApproxEvaluator[S, A, Sign] {
	return ApproxFunc[S, A, Sign](func(state S, args []A) Uncertain[Sign] {
		return f(state, args).Sign()
	})
}

// ApproxSignOrZero is ApproxSign for determinants whose point enclosure
// [0, 0] proves an exact zero, classified with Interval.SignOrZero.
func ApproxSignOrZero[S, A any](f func(state S, args []A) Interval) ApproxEvaluator[S, A, Sign] {
	return ApproxFunc[S, A, Sign](func(state S, args []A) Uncertain[Sign] {
		return f(state, args).SignOrZero()
	})
}
