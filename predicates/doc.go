// Package predicates provides exact 2D geometric predicates for gg points.
//
// Every predicate is a robust.Predicate: it is decided with interval
// arithmetic when the input is far from degenerate and with exact rational
// arithmetic otherwise, so results are always those of exact arithmetic on
// the input coordinates.
//
// Points are either gg.Point (float64 coordinates) or fixed.Point26_6 (26.6
// fixed point coordinates, as produced by font rasterizers). Both convert
// to the approximate and exact forms without loss.
//
// Stateless predicates:
//
//	o, err := predicates.Orient2D(a, b, c)      // CounterClockwise, Clockwise, Collinear
//	less, err := predicates.LessXY(a, b)        // lexicographic order
//
// Predicates bound to persistent state, reused across many queries:
//
//	line := predicates.NewSideOfLine(p, q)
//	side, err := line.Side(r)                   // OnPositiveSide is left of pq
//
//	circle := predicates.NewSideOfCircle(p, q, r)
//	side, err = circle.Side(s)                  // OnPositiveSide is inside a ccw circle
package predicates
