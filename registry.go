package robust

import (
	"fmt"

	"github.com/gogpu/gg-robust/internal/cache"
)

// Registry hands out one Predicate per distinct persistent state.
//
// Predicates for the same state share their cached exact state, so a
// caller that keeps re-creating predicates for recurring configurations
// (the edges of a mesh, the circles of a triangulation) pays for each exact
// conversion once. At most capacity instances are kept; the least recently
// used is dropped when the limit is exceeded.
//
// Registry is safe for concurrent use.
type Registry[S comparable, A, AS, AA, ES, EA any, R comparable] struct {
	cfg   Config[S, A, AS, AA, ES, EA, R]
	opts  []Option
	cache *cache.Cache[S, *Predicate[S, A, AS, AA, ES, EA, R]]
}

// NewRegistry creates a registry building predicates from cfg and opts.
// A capacity of 0 or less keeps every instance.
func NewRegistry[S comparable, A, AS, AA, ES, EA any, R comparable](cfg Config[S, A, AS, AA, ES, EA, R], capacity int, opts ...Option) *Registry[S, A, AS, AA, ES, EA, R] {
	return &Registry[S, A, AS, AA, ES, EA, R]{
		cfg:   cfg,
		opts:  opts,
		cache: cache.New[S, *Predicate[S, A, AS, AA, ES, EA, R]](capacity),
	}
}

// Get returns the predicate bound to state, creating it on first use.
// A state the approximate converter rejects (NaN coordinates) is reported
// as ErrConversion and never registered.
func (r *Registry[S, A, AS, AA, ES, EA, R]) Get(state S) (*Predicate[S, A, AS, AA, ES, EA, R], error) {
	return r.cache.GetOrCreate(state, func() (*Predicate[S, A, AS, AA, ES, EA, R], error) {
		p, err := New(state, r.cfg, r.opts...)
		if err != nil {
			return nil, err
		}
		if _, err := r.cfg.ToApprox.ConvertState(state); err != nil {
			return nil, fmt.Errorf("%w: approximate state: %w", ErrConversion, err)
		}
		return p, nil
	})
}

// Add binds p to its own state, replacing any predicate registered for it.
// It hands a predicate built elsewhere (one whose exact state is already
// loaded, say) to later Get calls.
func (r *Registry[S, A, AS, AA, ES, EA, R]) Add(p *Predicate[S, A, AS, AA, ES, EA, R]) {
	r.cache.Set(p.State(), p)
}

// Forget drops the predicate bound to state. It reports whether one was
// registered. Predicates already handed out keep working.
func (r *Registry[S, A, AS, AA, ES, EA, R]) Forget(state S) bool {
	return r.cache.Delete(state)
}

// Reset drops every registered predicate. Counters are kept.
func (r *Registry[S, A, AS, AA, ES, EA, R]) Reset() {
	r.cache.Clear()
}

// Eval evaluates the predicate bound to state on args.
func (r *Registry[S, A, AS, AA, ES, EA, R]) Eval(state S, args ...A) (R, error) {
	p, err := r.Get(state)
	if err != nil {
		var zero R
		return zero, err
	}
	return p.Eval(args...)
}

// Len returns the number of live instances.
func (r *Registry[S, A, AS, AA, ES, EA, R]) Len() int {
	return r.cache.Len()
}

// Capacity returns the instance limit, 0 or less meaning unlimited.
func (r *Registry[S, A, AS, AA, ES, EA, R]) Capacity() int {
	return r.cache.Capacity()
}

// RegistryStats describes registry reuse.
type RegistryStats struct {
	Instances int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Stats returns reuse statistics.
func (r *Registry[S, A, AS, AA, ES, EA, R]) Stats() RegistryStats {
	s := r.cache.Stats()
	return RegistryStats{
		Instances: s.Len,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
	}
}
