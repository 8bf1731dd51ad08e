// Package robust provides filtered geometric predicates for gg: exact
// answers to sign and comparison questions at nearly the cost of plain
// floating point.
//
// # Overview
//
// A predicate such as "is r left of the line pq?" is the sign of a
// polynomial in the input coordinates. Evaluated in float64, the rounding
// error can flip the sign for nearly degenerate inputs, and algorithms built
// on such predicates (hulls, triangulations, path booleans) then crash or
// produce garbage. robust evaluates the polynomial twice if needed:
//
//  1. with interval arithmetic, which bounds the rounding error and decides
//     the sign whenever the enclosure excludes zero (almost always), and
//  2. with exact rational arithmetic, only when the enclosure touches zero.
//
// The answer is always the exact one; only its cost varies.
//
// # Quick Start
//
// Ready-made predicates over gg.Point live in the predicates sub-package:
//
//	import "github.com/gogpu/gg-robust/predicates"
//
//	o, err := predicates.Orient2D(a, b, c)
//	if o == robust.CounterClockwise { ... }
//
// Custom predicates are assembled from a converter pair and an evaluator
// pair with New:
//
//	p, err := robust.New(state, robust.Config[...]{...})
//	result, err := p.Eval(args...)
//
// # Persistent State
//
// A Predicate may carry state fixed at construction, such as the line of a
// side-of-line test. Its exact form is computed on the first fallback and
// kept; Registry shares instances between callers that use the same state.
//
// # Rounding Mode
//
// Interval soundness depends on the floating-point rounding mode. Go always
// rounds to nearest, and this package's interval arithmetic is written for
// that mode. Every evaluation still guards a RoundingControl, restoring it on
// every exit path, so predicates compose with code that tracks its own
// rounding register (see FPU and EvalOn).
//
// # Concurrency
//
// Predicate, Registry and Batch are safe for concurrent use. Rounding
// registers are per goroutine: Batch gives each worker its own.
package robust
