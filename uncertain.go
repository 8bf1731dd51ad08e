package robust

import "fmt"

// Uncertain is the tri-state outcome of an approximate evaluation:
// either a certain value of type T or indeterminate.
//
// An indeterminate result is not an error. It tells the filter that the
// approximation was too coarse to decide and the exact evaluator must run.
// The zero value is indeterminate.
type Uncertain[T comparable] struct {
	value   T
	certain bool
}

// Certain returns a decided result holding v.
func Certain[T comparable](v T) Uncertain[T] {
	return Uncertain[T]{value: v, certain: true}
}

// Indeterminate returns an undecided result.
func Indeterminate[T comparable]() Uncertain[T] {
	return Uncertain[T]{}
}

// IsCertain reports whether the result is decided.
func (u Uncertain[T]) IsCertain() bool {
	return u.certain
}

// Value returns the decided value and true, or the zero value and false.
func (u Uncertain[T]) Value() (T, bool) {
	return u.value, u.certain
}

// String formats the result as its value or "indeterminate".
func (u Uncertain[T]) String() string {
	if !u.certain {
		return "indeterminate"
	}
	return fmt.Sprint(u.value)
}

// Certainly reports whether u is certainly true.
func Certainly(u Uncertain[bool]) bool {
	v, ok := u.Value()
	return ok && v
}

// Possibly reports whether u may be true, that is u is not certainly false.
func Possibly(u Uncertain[bool]) bool {
	v, ok := u.Value()
	return !ok || v
}

// Not negates a boolean result, keeping indeterminate as is.
func Not(u Uncertain[bool]) Uncertain[bool] {
	if v, ok := u.Value(); ok {
		return Certain(!v)
	}
	return u
}

// SignIs reports whether u is certainly s, for predicates phrased as
// "is the sign equal to s". Indeterminate stays indeterminate.
func SignIs(u Uncertain[Sign], s Sign) Uncertain[bool] {
	if v, ok := u.Value(); ok {
		return Certain(v == s)
	}
	return Indeterminate[bool]()
}
