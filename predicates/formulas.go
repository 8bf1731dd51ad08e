package predicates

import (
	"math/big"

	robust "github.com/gogpu/gg-robust"
)

// Each determinant below is written twice, over intervals and over
// rationals, with the same expression tree.

// orientInterval encloses the cross product (q - p) x (r - p).
func orientInterval(p, q, r IntervalPoint) robust.Interval {
	u := q.Sub(p)
	v := r.Sub(p)
	return u.X.Mul(v.Y).Sub(u.Y.Mul(v.X))
}

// orientExact returns the sign of (q - p) x (r - p).
func orientExact(b budget, p, q, r ExactPoint) (robust.Sign, error) {
	ux, uy := sub(q.X, p.X), sub(q.Y, p.Y)
	vx, vy := sub(r.X, p.X), sub(r.Y, p.Y)

	lhs := mul(ux, vy)
	rhs := mul(uy, vx)
	if err := b.check(lhs, rhs); err != nil {
		return robust.Zero, err
	}
	return robust.Sign(lhs.Cmp(rhs)), nil
}

// inCircleInterval encloses the in-circle determinant of s against the
// circle through a, b, c. It is positive when s is inside and a, b, c are
// counterclockwise.
func inCircleInterval(a, b, c, s IntervalPoint) robust.Interval {
	ad, bd, cd := a.Sub(s), b.Sub(s), c.Sub(s)

	alift := ad.X.Square().Add(ad.Y.Square())
	blift := bd.X.Square().Add(bd.Y.Square())
	clift := cd.X.Square().Add(cd.Y.Square())

	bc := bd.X.Mul(cd.Y).Sub(cd.X.Mul(bd.Y))
	ca := cd.X.Mul(ad.Y).Sub(ad.X.Mul(cd.Y))
	ab := ad.X.Mul(bd.Y).Sub(bd.X.Mul(ad.Y))

	return alift.Mul(bc).Add(blift.Mul(ca)).Add(clift.Mul(ab))
}

// inCircleExact returns the sign of the in-circle determinant.
func inCircleExact(bud budget, a, b, c, s ExactPoint) (robust.Sign, error) {
	adx, ady := sub(a.X, s.X), sub(a.Y, s.Y)
	bdx, bdy := sub(b.X, s.X), sub(b.Y, s.Y)
	cdx, cdy := sub(c.X, s.X), sub(c.Y, s.Y)

	alift := add(mul(adx, adx), mul(ady, ady))
	blift := add(mul(bdx, bdx), mul(bdy, bdy))
	clift := add(mul(cdx, cdx), mul(cdy, cdy))

	bc := sub(mul(bdx, cdy), mul(cdx, bdy))
	ca := sub(mul(cdx, ady), mul(adx, cdy))
	ab := sub(mul(adx, bdy), mul(bdx, ady))

	det := add(add(mul(alift, bc), mul(blift, ca)), mul(clift, ab))
	if err := bud.check(det); err != nil {
		return robust.Zero, err
	}
	return robust.Sign(det.Sign()), nil
}

// distanceInterval encloses |p - o|^2 - |q - o|^2.
func distanceInterval(o, p, q IntervalPoint) robust.Interval {
	u := p.Sub(o)
	v := q.Sub(o)
	return u.X.Square().Add(u.Y.Square()).Sub(v.X.Square().Add(v.Y.Square()))
}

// distanceExact compares |p - o|^2 with |q - o|^2.
func distanceExact(b budget, o, p, q ExactPoint) (robust.Comparison, error) {
	ux, uy := sub(p.X, o.X), sub(p.Y, o.Y)
	vx, vy := sub(q.X, o.X), sub(q.Y, o.Y)

	dp := add(mul(ux, ux), mul(uy, uy))
	dq := add(mul(vx, vx), mul(vy, vy))
	if err := b.check(dp, dq); err != nil {
		return robust.Equal, err
	}
	return robust.Comparison(dp.Cmp(dq)), nil
}

func add(x, y *big.Rat) *big.Rat { return new(big.Rat).Add(x, y) }
func sub(x, y *big.Rat) *big.Rat { return new(big.Rat).Sub(x, y) }
func mul(x, y *big.Rat) *big.Rat { return new(big.Rat).Mul(x, y) }
