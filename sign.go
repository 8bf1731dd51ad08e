package robust

// Sign is the result of a sign or comparison predicate.
//
// The related geometric relations (Orientation, OrientedSide, Comparison)
// are aliases of Sign so that one predicate result type serves them all.
type Sign int8

const (
	// Negative means the evaluated quantity is strictly below zero.
	Negative Sign = -1

	// Zero means the evaluated quantity is exactly zero.
	Zero Sign = 0

	// Positive means the evaluated quantity is strictly above zero.
	Positive Sign = 1
)

// Orientation of three points in the plane.
type Orientation = Sign

const (
	Clockwise        Orientation = Negative
	Collinear        Orientation = Zero
	CounterClockwise Orientation = Positive
)

// OrientedSide of a point relative to an oriented line or circle.
type OrientedSide = Sign

const (
	OnNegativeSide     OrientedSide = Negative
	OnOrientedBoundary OrientedSide = Zero
	OnPositiveSide     OrientedSide = Positive
)

// Comparison of two quantities a and b, the sign of a - b.
type Comparison = Sign

const (
	Smaller Comparison = Negative
	Equal   Comparison = Zero
	Larger  Comparison = Positive
)

// SignOf returns the sign of x. NaN has no sign and reports Zero;
// callers that can see NaN should classify through an Interval instead.
func SignOf(x float64) Sign {
	switch {
	case x > 0:
		return Positive
	case x < 0:
		return Negative
	default:
		return Zero
	}
}

// Negate returns the opposite sign.
func (s Sign) Negate() Sign {
	return -s
}

// Mul returns the sign of a product of two quantities with signs s and t.
func (s Sign) Mul(t Sign) Sign {
	return s * t
}

// String returns a readable name for the sign.
func (s Sign) String() string {
	switch s {
	case Negative:
		return "negative"
	case Zero:
		return "zero"
	case Positive:
		return "positive"
	default:
		return "invalid"
	}
}
