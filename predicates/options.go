package predicates

import (
	"errors"
	"fmt"
	"math/big"

	robust "github.com/gogpu/gg-robust"
)

// ErrExactBudget is returned (wrapped in robust.ErrExactEvaluation) when an
// exact evaluation needs more bits than allowed by WithExactBitLimit.
var ErrExactBudget = errors.New("predicates: exact arithmetic exceeds bit limit")

// Option configures a predicate during creation.
type Option func(*config)

// config holds optional predicate configuration.
type config struct {
	bitLimit int
	filter   []robust.Option
}

func newConfig(name string, opts []Option) config {
	c := config{filter: []robust.Option{robust.WithName(name)}}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithExactBitLimit bounds the size of the rationals the exact evaluator
// may build, in bits of numerator plus denominator. Evaluations that need
// more fail with ErrExactBudget instead of growing without bound.
// A limit of 0 or less means unlimited, the default.
func WithExactBitLimit(bits int) Option {
	return func(c *config) {
		c.bitLimit = bits
	}
}

// WithFilterOptions passes options through to robust.New.
func WithFilterOptions(opts ...robust.Option) Option {
	return func(c *config) {
		c.filter = append(c.filter, opts...)
	}
}

// budget checks rational sizes against a bit limit.
type budget int

func (b budget) check(values ...*big.Rat) error {
	if b <= 0 {
		return nil
	}
	for _, v := range values {
		if bits := v.Num().BitLen() + v.Denom().BitLen(); bits > int(b) {
			return fmt.Errorf("%w: %d bits, limit %d", ErrExactBudget, bits, int(b))
		}
	}
	return nil
}

// mustNew builds a predicate whose config is complete by construction.
func mustNew[S, A, AS, AA, ES, EA any, R comparable](state S, cfg robust.Config[S, A, AS, AA, ES, EA, R], opts []robust.Option) *robust.Predicate[S, A, AS, AA, ES, EA, R] {
	p, err := robust.New(state, cfg, opts...)
	if err != nil {
		panic(err)
	}
	return p
}
