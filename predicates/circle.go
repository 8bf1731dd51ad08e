package predicates

import (
	robust "github.com/gogpu/gg-robust"
)

// Circle is the oriented circle through P, Q and R.
type Circle[P PointKind] struct {
	P, Q, R P
}

// SideOfCirclePredicate is the filtered predicate behind SideOfCircle.
type SideOfCirclePredicate[P PointKind] = robust.Predicate[Circle[P], P, [3]IntervalPoint, IntervalPoint, [3]ExactPoint, ExactPoint, robust.OrientedSide]

// SideOfCircle classifies points against a fixed oriented circle, the
// in-circle test of Delaunay triangulation.
type SideOfCircle[P PointKind] struct {
	p *SideOfCirclePredicate[P]
}

// NewSideOfCircle creates a side-of-circle predicate for the circle
// through p, q and r, oriented by the order of the points.
func NewSideOfCircle[P PointKind](p, q, r P, opts ...Option) *SideOfCircle[P] {
	c := newConfig("side_of_circle", opts)
	b := budget(c.bitLimit)

	cfg := robust.Config[Circle[P], P, [3]IntervalPoint, IntervalPoint, [3]ExactPoint, ExactPoint, robust.OrientedSide]{
		ToApprox: robust.ConverterFuncs[Circle[P], P, [3]IntervalPoint, IntervalPoint]{
			State: func(c Circle[P]) ([3]IntervalPoint, error) {
				ps, err := toIntervals(c.P, c.Q, c.R)
				if err != nil {
					return [3]IntervalPoint{}, err
				}
				return [3]IntervalPoint(ps), nil
			},
			Arg: toInterval[P],
		},
		ToExact: robust.ConverterFuncs[Circle[P], P, [3]ExactPoint, ExactPoint]{
			State: func(c Circle[P]) ([3]ExactPoint, error) {
				ps, err := toExacts(c.P, c.Q, c.R)
				if err != nil {
					return [3]ExactPoint{}, err
				}
				return [3]ExactPoint(ps), nil
			},
			Arg: toExact[P],
		},
		Approx: robust.ApproxSign(func(c [3]IntervalPoint, a []IntervalPoint) robust.Interval {
			return inCircleInterval(c[0], c[1], c[2], a[0])
		}),
		Exact: robust.ExactFunc[[3]ExactPoint, ExactPoint, robust.OrientedSide](func(c [3]ExactPoint, a []ExactPoint) (robust.OrientedSide, error) {
			return inCircleExact(b, c[0], c[1], c[2], a[0])
		}),
		Arity: 1,
	}
	return &SideOfCircle[P]{p: mustNew(Circle[P]{P: p, Q: q, R: r}, cfg, c.filter)}
}

// Side returns OnPositiveSide if s is inside a counterclockwise circle
// (outside a clockwise one), OnNegativeSide on the other side and
// OnOrientedBoundary if s is on the circle.
func (c *SideOfCircle[P]) Side(s P) (robust.OrientedSide, error) {
	return c.p.Eval(s)
}

// Circle returns the circle the predicate is bound to.
func (c *SideOfCircle[P]) Circle() Circle[P] {
	return c.p.State()
}

// Predicate returns the underlying filtered predicate.
func (c *SideOfCircle[P]) Predicate() *SideOfCirclePredicate[P] {
	return c.p
}

// Stats returns the predicate's counters.
func (c *SideOfCircle[P]) Stats() robust.Stats {
	return c.p.Stats()
}
