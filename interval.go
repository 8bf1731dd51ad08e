package robust

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInterval is returned by NewInterval for NaN or reversed bounds.
var ErrInvalidInterval = errors.New("robust: invalid interval")

// Interval is a closed enclosure [Lo, Hi] of an unknown real value.
//
// All arithmetic rounds outward: the lower bound is rounded toward -Inf and
// the upper bound toward +Inf, so the true result of the same operations on
// any values inside the operands lies inside the result. Directed rounding is
// emulated with error-free transformations (two-sum and fused multiply-add),
// which are exact under the round-to-nearest mode Go always computes in.
//
// Infinite bounds are allowed and mean "unbounded". An interval with a NaN
// bound classifies as indeterminate everywhere.
type Interval struct {
	Lo, Hi float64
}

// Exact returns the point interval [x, x].
func Exact(x float64) Interval {
	return Interval{Lo: x, Hi: x}
}

// NewInterval returns [lo, hi], or ErrInvalidInterval if a bound is NaN or
// lo > hi.
func NewInterval(lo, hi float64) (Interval, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return Interval{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidInterval, lo, hi)
	}
	return Interval{Lo: lo, Hi: hi}, nil
}

// Entire returns the interval covering the whole real line.
func Entire() Interval {
	return Interval{Lo: math.Inf(-1), Hi: math.Inf(1)}
}

// IsPoint reports whether the interval holds a single value.
func (a Interval) IsPoint() bool {
	return a.Lo == a.Hi
}

// Contains reports whether x lies in the interval.
func (a Interval) Contains(x float64) bool {
	return a.Lo <= x && x <= a.Hi
}

// Width returns an upper bound of Hi - Lo.
func (a Interval) Width() float64 {
	return addUp(a.Hi, -a.Lo)
}

// Neg returns -a. Negation is exact.
func (a Interval) Neg() Interval {
	return Interval{Lo: -a.Hi, Hi: -a.Lo}
}

// Add returns an enclosure of a + b.
func (a Interval) Add(b Interval) Interval {
	return Interval{Lo: addDown(a.Lo, b.Lo), Hi: addUp(a.Hi, b.Hi)}
}

// Sub returns an enclosure of a - b.
func (a Interval) Sub(b Interval) Interval {
	return Interval{Lo: addDown(a.Lo, -b.Hi), Hi: addUp(a.Hi, -b.Lo)}
}

// Mul returns an enclosure of a * b.
func (a Interval) Mul(b Interval) Interval {
	switch {
	case a.Lo >= 0 && b.Lo >= 0:
		return Interval{Lo: mulDown(a.Lo, b.Lo), Hi: mulUp(a.Hi, b.Hi)}
	case a.Hi <= 0 && b.Hi <= 0:
		return Interval{Lo: mulDown(a.Hi, b.Hi), Hi: mulUp(a.Lo, b.Lo)}
	case a.Lo >= 0 && b.Hi <= 0:
		return Interval{Lo: mulDown(a.Hi, b.Lo), Hi: mulUp(a.Lo, b.Hi)}
	case a.Hi <= 0 && b.Lo >= 0:
		return Interval{Lo: mulDown(a.Lo, b.Hi), Hi: mulUp(a.Hi, b.Lo)}
	}
	// At least one operand straddles zero, or a bound is NaN.
	lo := min(mulDown(a.Lo, b.Lo), mulDown(a.Lo, b.Hi), mulDown(a.Hi, b.Lo), mulDown(a.Hi, b.Hi))
	hi := max(mulUp(a.Lo, b.Lo), mulUp(a.Lo, b.Hi), mulUp(a.Hi, b.Lo), mulUp(a.Hi, b.Hi))
	return Interval{Lo: lo, Hi: hi}
}

// Square returns an enclosure of a * a. It is tighter than a.Mul(a) when a
// straddles zero, since the square is never negative.
func (a Interval) Square() Interval {
	switch {
	case a.Lo >= 0:
		return Interval{Lo: mulDown(a.Lo, a.Lo), Hi: mulUp(a.Hi, a.Hi)}
	case a.Hi <= 0:
		return Interval{Lo: mulDown(a.Hi, a.Hi), Hi: mulUp(a.Lo, a.Lo)}
	}
	return Interval{Lo: 0, Hi: max(mulUp(a.Lo, a.Lo), mulUp(a.Hi, a.Hi))}
}

// Scale returns an enclosure of k * a.
func (a Interval) Scale(k float64) Interval {
	return a.Mul(Exact(k))
}

// Sign classifies the enclosure against zero. It is certain only when the
// enclosure excludes zero; [0, 0] is indeterminate. Use SignOrZero for
// evaluators that accept an exact zero.
func (a Interval) Sign() Uncertain[Sign] {
	switch {
	case a.Lo > 0:
		return Certain(Positive)
	case a.Hi < 0:
		return Certain(Negative)
	}
	return Indeterminate[Sign]()
}

// SignOrZero is Sign, but also reports a certain Zero for the point
// interval [0, 0].
func (a Interval) SignOrZero() Uncertain[Sign] {
	if a.Lo == 0 && a.Hi == 0 {
		return Certain(Zero)
	}
	return a.Sign()
}

// Compare classifies a against b. Equal is reported only when both are the
// same point interval.
func (a Interval) Compare(b Interval) Uncertain[Comparison] {
	switch {
	case a.Hi < b.Lo:
		return Certain(Smaller)
	case a.Lo > b.Hi:
		return Certain(Larger)
	case a.IsPoint() && b.IsPoint() && a.Lo == b.Lo:
		return Certain(Equal)
	}
	return Indeterminate[Comparison]()
}

// IsPositive reports whether the enclosed value is strictly positive.
func (a Interval) IsPositive() Uncertain[bool] {
	switch {
	case a.Lo > 0:
		return Certain(true)
	case a.Hi <= 0:
		return Certain(false)
	}
	return Indeterminate[bool]()
}

// IsNegative reports whether the enclosed value is strictly negative.
func (a Interval) IsNegative() Uncertain[bool] {
	switch {
	case a.Hi < 0:
		return Certain(true)
	case a.Lo >= 0:
		return Certain(false)
	}
	return Indeterminate[bool]()
}

// String formats the interval as "[lo, hi]".
func (a Interval) String() string {
	return fmt.Sprintf("[%v, %v]", a.Lo, a.Hi)
}

// tinyProduct bounds the products whose rounding error may not be
// representable; below it the result is widened by one ulp unconditionally.
const tinyProduct = 0x1p-968

// addUp returns a + b rounded toward +Inf.
func addUp(a, b float64) float64 {
	s := a + b
	if math.IsNaN(s) {
		return math.Inf(1)
	}
	if math.IsInf(s, 0) {
		if s < 0 && isFinite(a) && isFinite(b) {
			return -math.MaxFloat64
		}
		return s
	}
	if twoSumErr(a, b, s) > 0 {
		return math.Nextafter(s, math.Inf(1))
	}
	return s
}

// addDown returns a + b rounded toward -Inf.
func addDown(a, b float64) float64 {
	return -addUp(-a, -b)
}

// mulUp returns a * b rounded toward +Inf. A zero factor gives 0 even
// against an infinite bound.
func mulUp(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if math.IsNaN(p) {
		return math.Inf(1)
	}
	if math.IsInf(p, 0) {
		if p < 0 && isFinite(a) && isFinite(b) {
			return -math.MaxFloat64
		}
		return p
	}
	if math.Abs(p) < tinyProduct {
		return math.Nextafter(p, math.Inf(1))
	}
	if math.FMA(a, b, -p) > 0 {
		return math.Nextafter(p, math.Inf(1))
	}
	return p
}

// mulDown returns a * b rounded toward -Inf.
func mulDown(a, b float64) float64 {
	return -mulUp(-a, b)
}

// twoSumErr returns the exact rounding error (a + b) - s of s = fl(a + b).
func twoSumErr(a, b, s float64) float64 {
	bv := s - a
	av := s - bv
	return (a - av) + (b - bv)
}

// isFinite checks if a float64 is neither Inf nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
