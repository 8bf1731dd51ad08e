package predicates

import (
	robust "github.com/gogpu/gg-robust"
)

// Line is the oriented line through P towards Q.
type Line[P PointKind] struct {
	P, Q P
}

// SideOfLinePredicate is the filtered predicate behind SideOfLine.
type SideOfLinePredicate[P PointKind] = robust.Predicate[Line[P], P, [2]IntervalPoint, IntervalPoint, [2]ExactPoint, ExactPoint, robust.OrientedSide]

type sideOfLineConfig[P PointKind] = robust.Config[Line[P], P, [2]IntervalPoint, IntervalPoint, [2]ExactPoint, ExactPoint, robust.OrientedSide]

func newSideOfLineConfig[P PointKind](b budget) sideOfLineConfig[P] {
	return sideOfLineConfig[P]{
		ToApprox: robust.ConverterFuncs[Line[P], P, [2]IntervalPoint, IntervalPoint]{
			State: func(l Line[P]) ([2]IntervalPoint, error) {
				ps, err := toIntervals(l.P, l.Q)
				if err != nil {
					return [2]IntervalPoint{}, err
				}
				return [2]IntervalPoint(ps), nil
			},
			Arg: toInterval[P],
		},
		ToExact: robust.ConverterFuncs[Line[P], P, [2]ExactPoint, ExactPoint]{
			State: func(l Line[P]) ([2]ExactPoint, error) {
				ps, err := toExacts(l.P, l.Q)
				if err != nil {
					return [2]ExactPoint{}, err
				}
				return [2]ExactPoint(ps), nil
			},
			Arg: toExact[P],
		},
		Approx: robust.ApproxSign(func(l [2]IntervalPoint, a []IntervalPoint) robust.Interval {
			return orientInterval(l[0], l[1], a[0])
		}),
		Exact: robust.ExactFunc[[2]ExactPoint, ExactPoint, robust.OrientedSide](func(l [2]ExactPoint, a []ExactPoint) (robust.OrientedSide, error) {
			return orientExact(b, l[0], l[1], a[0])
		}),
		Arity: 1,
	}
}

// SideOfLine classifies points against a fixed oriented line. The exact
// form of the line is computed on the first query that needs it and reused
// by all later ones.
type SideOfLine[P PointKind] struct {
	p *SideOfLinePredicate[P]
}

// NewSideOfLine creates a side-of-line predicate for the line through p
// towards q.
func NewSideOfLine[P PointKind](p, q P, opts ...Option) *SideOfLine[P] {
	c := newConfig("side_of_line", opts)
	return &SideOfLine[P]{p: mustNew(Line[P]{P: p, Q: q}, newSideOfLineConfig[P](budget(c.bitLimit)), c.filter)}
}

// Side returns OnPositiveSide if r is left of the line, OnNegativeSide if
// it is right of it and OnOrientedBoundary if it is on it.
func (l *SideOfLine[P]) Side(r P) (robust.OrientedSide, error) {
	return l.p.Eval(r)
}

// Line returns the line the predicate is bound to.
func (l *SideOfLine[P]) Line() Line[P] {
	return l.p.State()
}

// Predicate returns the underlying filtered predicate.
func (l *SideOfLine[P]) Predicate() *SideOfLinePredicate[P] {
	return l.p
}

// Stats returns the predicate's counters.
func (l *SideOfLine[P]) Stats() robust.Stats {
	return l.p.Stats()
}

// LineRegistry answers side-of-line queries for many lines, keeping one
// SideOfLine per recently used line so each line's exact form is computed
// once.
type LineRegistry[P PointKind] struct {
	r *robust.Registry[Line[P], P, [2]IntervalPoint, IntervalPoint, [2]ExactPoint, ExactPoint, robust.OrientedSide]
}

// NewLineRegistry creates a registry keeping up to capacity lines.
func NewLineRegistry[P PointKind](capacity int, opts ...Option) *LineRegistry[P] {
	c := newConfig("side_of_line", opts)
	return &LineRegistry[P]{r: robust.NewRegistry(newSideOfLineConfig[P](budget(c.bitLimit)), capacity, c.filter...)}
}

// Side classifies s against the line through p towards q.
func (r *LineRegistry[P]) Side(p, q, s P) (robust.OrientedSide, error) {
	return r.r.Eval(Line[P]{P: p, Q: q}, s)
}

// Line returns the predicate bound to the line through p towards q.
func (r *LineRegistry[P]) Line(p, q P) (*SideOfLine[P], error) {
	pred, err := r.r.Get(Line[P]{P: p, Q: q})
	if err != nil {
		return nil, err
	}
	return &SideOfLine[P]{p: pred}, nil
}

// Forget drops the line through p towards q from the registry.
func (r *LineRegistry[P]) Forget(p, q P) bool {
	return r.r.Forget(Line[P]{P: p, Q: q})
}

// Stats returns registry reuse statistics.
func (r *LineRegistry[P]) Stats() robust.RegistryStats {
	return r.r.Stats()
}
