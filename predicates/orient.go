package predicates

import (
	"sync"

	"github.com/gogpu/gg"
	"golang.org/x/image/math/fixed"

	robust "github.com/gogpu/gg-robust"
)

// OrientPredicate is the filtered predicate behind Orient.
type OrientPredicate[P PointKind] = robust.Predicate[robust.NoState, P, robust.NoState, IntervalPoint, robust.NoState, ExactPoint, robust.Orientation]

// Orient decides the orientation of three points.
type Orient[P PointKind] struct {
	p *OrientPredicate[P]
}

// NewOrient creates an orientation predicate. Most callers use Orient2D,
// which shares one instance per point type; a private instance has its own
// statistics and options.
func NewOrient[P PointKind](opts ...Option) *Orient[P] {
	c := newConfig("orient2d", opts)
	b := budget(c.bitLimit)

	cfg := robust.Config[robust.NoState, P, robust.NoState, IntervalPoint, robust.NoState, ExactPoint, robust.Orientation]{
		ToApprox: robust.ConverterFuncs[robust.NoState, P, robust.NoState, IntervalPoint]{Arg: toInterval[P]},
		ToExact:  robust.ConverterFuncs[robust.NoState, P, robust.NoState, ExactPoint]{Arg: toExact[P]},
		Approx: robust.ApproxSign(func(_ robust.NoState, a []IntervalPoint) robust.Interval {
			return orientInterval(a[0], a[1], a[2])
		}),
		Exact: robust.ExactFunc[robust.NoState, ExactPoint, robust.Orientation](func(_ robust.NoState, a []ExactPoint) (robust.Orientation, error) {
			return orientExact(b, a[0], a[1], a[2])
		}),
		Arity: 3,
	}
	return &Orient[P]{p: mustNew(robust.NoState{}, cfg, c.filter)}
}

// Orientation returns CounterClockwise if a, b, c turn left, Clockwise if
// they turn right and Collinear if they lie on one line.
func (o *Orient[P]) Orientation(a, b, c P) (robust.Orientation, error) {
	return o.p.Eval(a, b, c)
}

// Predicate returns the underlying filtered predicate, for batch
// evaluation with robust.EvalAll.
func (o *Orient[P]) Predicate() *OrientPredicate[P] {
	return o.p
}

// Stats returns the predicate's counters.
func (o *Orient[P]) Stats() robust.Stats {
	return o.p.Stats()
}

var (
	orientFloat = sync.OnceValue(func() *Orient[gg.Point] { return NewOrient[gg.Point]() })
	orientFixed = sync.OnceValue(func() *Orient[fixed.Point26_6] { return NewOrient[fixed.Point26_6]() })
)

// defaultOrient returns the shared instance for P.
func defaultOrient[P PointKind]() *Orient[P] {
	var zero P
	switch any(zero).(type) {
	case gg.Point:
		return any(orientFloat()).(*Orient[P])
	default:
		return any(orientFixed()).(*Orient[P])
	}
}

// Orient2D returns the orientation of a, b, c computed exactly.
//
// Example:
//
//	o, err := predicates.Orient2D(gg.Pt(0, 0), gg.Pt(1, 0), gg.Pt(0, 1))
//	// o == robust.CounterClockwise
func Orient2D[P PointKind](a, b, c P) (robust.Orientation, error) {
	return defaultOrient[P]().Orientation(a, b, c)
}

// NaiveOrient2D evaluates the orientation determinant in plain float64.
// It is wrong for nearly collinear inputs and exists to measure how often.
func NaiveOrient2D(a, b, c gg.Point) robust.Orientation {
	return robust.SignOf((b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X))
}

// LessPredicate is the filtered predicate behind Less.
type LessPredicate[P PointKind] = robust.Predicate[robust.NoState, P, robust.NoState, IntervalPoint, robust.NoState, ExactPoint, bool]

// Less orders points lexicographically, by x then y.
type Less[P PointKind] struct {
	p *LessPredicate[P]
}

// NewLess creates a lexicographic order predicate.
func NewLess[P PointKind](opts ...Option) *Less[P] {
	c := newConfig("less_xy", opts)

	cfg := robust.Config[robust.NoState, P, robust.NoState, IntervalPoint, robust.NoState, ExactPoint, bool]{
		ToApprox: robust.ConverterFuncs[robust.NoState, P, robust.NoState, IntervalPoint]{Arg: toInterval[P]},
		ToExact:  robust.ConverterFuncs[robust.NoState, P, robust.NoState, ExactPoint]{Arg: toExact[P]},
		Approx: robust.ApproxFunc[robust.NoState, IntervalPoint, bool](func(_ robust.NoState, a []IntervalPoint) robust.Uncertain[bool] {
			return lessXYInterval(a[0], a[1])
		}),
		Exact: robust.ExactFunc[robust.NoState, ExactPoint, bool](func(_ robust.NoState, a []ExactPoint) (bool, error) {
			if cx := a[0].X.Cmp(a[1].X); cx != 0 {
				return cx < 0, nil
			}
			return a[0].Y.Cmp(a[1].Y) < 0, nil
		}),
		Arity: 2,
	}
	return &Less[P]{p: mustNew(robust.NoState{}, cfg, c.filter)}
}

// Less reports whether a precedes b lexicographically.
func (l *Less[P]) Less(a, b P) (bool, error) {
	return l.p.Eval(a, b)
}

// Stats returns the predicate's counters.
func (l *Less[P]) Stats() robust.Stats {
	return l.p.Stats()
}

var (
	lessFloat = sync.OnceValue(func() *Less[gg.Point] { return NewLess[gg.Point]() })
	lessFixed = sync.OnceValue(func() *Less[fixed.Point26_6] { return NewLess[fixed.Point26_6]() })
)

// LessXY reports whether a precedes b by x, then by y.
func LessXY[P PointKind](a, b P) (bool, error) {
	var zero P
	switch any(zero).(type) {
	case gg.Point:
		return any(lessFloat()).(*Less[P]).Less(a, b)
	default:
		return any(lessFixed()).(*Less[P]).Less(a, b)
	}
}

// lessXYInterval decides the lexicographic order when the enclosures
// allow it.
func lessXYInterval(a, b IntervalPoint) robust.Uncertain[bool] {
	cx, ok := a.X.Compare(b.X).Value()
	if !ok {
		return robust.Indeterminate[bool]()
	}
	if cx != robust.Equal {
		return robust.Certain(cx == robust.Smaller)
	}
	cy, ok := a.Y.Compare(b.Y).Value()
	if !ok {
		return robust.Indeterminate[bool]()
	}
	return robust.Certain(cy == robust.Smaller)
}
