package robust

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg-robust/internal/parallel"
)

// ErrBatchClosed is returned by EvalAll on a closed Batch.
var ErrBatchClosed = errors.New("robust: batch is closed")

// Batch evaluates many argument tuples in parallel.
//
// Each worker owns a rounding register (an FPU), so concurrent evaluations
// never see each other's rounding mode. A Batch may be shared by any number
// of predicates and goroutines.
type Batch struct {
	pool *parallel.WorkerPool
	fpus []FPU
}

// NewBatch starts a batch evaluator with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewBatch(workers int) *Batch {
	pool := parallel.NewWorkerPool(workers)
	return &Batch{
		pool: pool,
		fpus: make([]FPU, pool.Workers()),
	}
}

// Workers returns the number of worker goroutines.
func (b *Batch) Workers() int {
	return b.pool.Workers()
}

// Close stops the workers. Close is safe to call multiple times.
func (b *Batch) Close() {
	b.pool.Close()
}

// EvalAll evaluates p on every tuple of argSets and returns the results in
// input order. Failed tuples leave the zero result in place; their errors
// are joined, each annotated with the tuple's index.
func EvalAll[S, A, AS, AA, ES, EA any, R comparable](b *Batch, p *Predicate[S, A, AS, AA, ES, EA, R], argSets [][]A) ([]R, error) {
	results := make([]R, len(argSets))
	errs := make([]error, len(argSets))

	tasks := make([]parallel.Task, len(argSets))
	for i, args := range argSets {
		tasks[i] = func(worker int) {
			r, err := p.EvalOn(&b.fpus[worker], args...)
			if err != nil {
				errs[i] = fmt.Errorf("tuple %d: %w", i, err)
				return
			}
			results[i] = r
		}
	}

	if !b.pool.ExecuteAll(tasks) {
		return nil, ErrBatchClosed
	}
	return results, errors.Join(errs...)
}
