package robust

import (
	"errors"
	"fmt"
)

var (
	// ErrConversion wraps a failure to convert persistent state or a call
	// argument. The call is aborted; the cached exact state is not touched.
	ErrConversion = errors.New("robust: conversion failed")

	// ErrExactEvaluation wraps a failure of the exact evaluator, typically
	// resource exhaustion. There is no fallback beyond the exact path, so
	// the failure is final for the call and is not retried.
	ErrExactEvaluation = errors.New("robust: exact evaluation failed")

	// ErrArity is returned by evaluators called with the wrong number of
	// arguments.
	ErrArity = errors.New("robust: wrong number of arguments")
)

// ArgError records which call argument failed to convert.
type ArgError struct {
	Index int
	Err   error
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("argument %d: %v", e.Index, e.Err)
}

func (e *ArgError) Unwrap() error {
	return e.Err
}

// CheckArity returns ErrArity unless len(args) == n.
func CheckArity[A any](args []A, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: got %d, want %d", ErrArity, len(args), n)
	}
	return nil
}
