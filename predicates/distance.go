package predicates

import (
	robust "github.com/gogpu/gg-robust"
)

// CompareDistancePredicate is the filtered predicate behind CompareDistance.
type CompareDistancePredicate[P PointKind] = robust.Predicate[P, P, IntervalPoint, IntervalPoint, ExactPoint, ExactPoint, robust.Comparison]

// CompareDistance compares distances from a fixed reference point, as in
// nearest-neighbor and closest-vertex queries.
type CompareDistance[P PointKind] struct {
	p *CompareDistancePredicate[P]
}

// NewCompareDistance creates a distance comparison around origin.
func NewCompareDistance[P PointKind](origin P, opts ...Option) *CompareDistance[P] {
	c := newConfig("compare_distance", opts)
	b := budget(c.bitLimit)

	cfg := robust.Config[P, P, IntervalPoint, IntervalPoint, ExactPoint, ExactPoint, robust.Comparison]{
		ToApprox: robust.ConverterFuncs[P, P, IntervalPoint, IntervalPoint]{State: toInterval[P], Arg: toInterval[P]},
		ToExact:  robust.ConverterFuncs[P, P, ExactPoint, ExactPoint]{State: toExact[P], Arg: toExact[P]},
		Approx: robust.ApproxSign(func(o IntervalPoint, a []IntervalPoint) robust.Interval {
			return distanceInterval(o, a[0], a[1])
		}),
		Exact: robust.ExactFunc[ExactPoint, ExactPoint, robust.Comparison](func(o ExactPoint, a []ExactPoint) (robust.Comparison, error) {
			return distanceExact(b, o, a[0], a[1])
		}),
		Arity: 2,
	}
	return &CompareDistance[P]{p: mustNew(origin, cfg, c.filter)}
}

// Compare returns Smaller if p is closer to the origin than q, Larger if it
// is farther and Equal if both are at the same distance.
func (d *CompareDistance[P]) Compare(p, q P) (robust.Comparison, error) {
	return d.p.Eval(p, q)
}

// Origin returns the reference point.
func (d *CompareDistance[P]) Origin() P {
	return d.p.State()
}

// Predicate returns the underlying filtered predicate.
func (d *CompareDistance[P]) Predicate() *CompareDistancePredicate[P] {
	return d.p
}

// Stats returns the predicate's counters.
func (d *CompareDistance[P]) Stats() robust.Stats {
	return d.p.Stats()
}
