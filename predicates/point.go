package predicates

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/gogpu/gg"
	"golang.org/x/image/math/fixed"

	robust "github.com/gogpu/gg-robust"
)

// ErrNotFinite is returned when a coordinate is NaN or infinite.
var ErrNotFinite = errors.New("predicates: coordinate is not finite")

// PointKind lists the point types the predicates accept.
type PointKind interface {
	gg.Point | fixed.Point26_6
}

// IntervalPoint is the approximate form of a point.
type IntervalPoint struct {
	X, Y robust.Interval
}

// Sub returns an enclosure of p - q.
func (p IntervalPoint) Sub(q IntervalPoint) IntervalPoint {
	return IntervalPoint{X: p.X.Sub(q.X), Y: p.Y.Sub(q.Y)}
}

// ExactPoint is the exact form of a point. Its coordinates are shared
// read-only once converted and must not be modified.
type ExactPoint struct {
	X, Y *big.Rat
}

// toInterval converts a point to its approximate form.
func toInterval[P PointKind](p P) (IntervalPoint, error) {
	switch v := any(p).(type) {
	case gg.Point:
		if !isFinite(v.X) || !isFinite(v.Y) {
			return IntervalPoint{}, fmt.Errorf("%w: (%v, %v)", ErrNotFinite, v.X, v.Y)
		}
		return IntervalPoint{X: robust.Exact(v.X), Y: robust.Exact(v.Y)}, nil
	case fixed.Point26_6:
		// A 26.6 value is an int32 over 64, exact in float64.
		return IntervalPoint{X: robust.Exact(fixedToFloat(v.X)), Y: robust.Exact(fixedToFloat(v.Y))}, nil
	}
	panic(fmt.Sprintf("predicates: unsupported point type %T", p))
}

// toExact converts a point to its exact form.
func toExact[P PointKind](p P) (ExactPoint, error) {
	switch v := any(p).(type) {
	case gg.Point:
		if !isFinite(v.X) || !isFinite(v.Y) {
			return ExactPoint{}, fmt.Errorf("%w: (%v, %v)", ErrNotFinite, v.X, v.Y)
		}
		return ExactPoint{X: new(big.Rat).SetFloat64(v.X), Y: new(big.Rat).SetFloat64(v.Y)}, nil
	case fixed.Point26_6:
		return ExactPoint{X: big.NewRat(int64(v.X), 64), Y: big.NewRat(int64(v.Y), 64)}, nil
	}
	panic(fmt.Sprintf("predicates: unsupported point type %T", p))
}

// toIntervals converts a fixed list of points, for persistent state.
func toIntervals[P PointKind](ps ...P) ([]IntervalPoint, error) {
	out := make([]IntervalPoint, len(ps))
	for i, p := range ps {
		v, err := toInterval(p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// toExacts converts a fixed list of points, for persistent state.
func toExacts[P PointKind](ps ...P) ([]ExactPoint, error) {
	out := make([]ExactPoint, len(ps))
	for i, p := range ps {
		v, err := toExact(p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
