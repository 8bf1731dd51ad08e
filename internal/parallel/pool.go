package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Task is a unit of work. worker is the index, in [0, Workers()), of the
// goroutine executing it; a task may run on any worker due to stealing.
type Task func(worker int)

// WorkerPool is a pool of goroutines for parallel evaluation.
//
// The pool distributes tasks across workers, each with its own queue.
// Workers steal from other queues when their own is empty, which balances
// batches where some evaluations fall back to slow exact arithmetic.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers    int
	workQueues []chan Task
	done       chan struct{}
	wg         sync.WaitGroup
	running    atomic.Bool

	// submit is held shared while a batch is queued and exclusively by
	// Close, so a batch is either fully queued before shutdown or rejected.
	submit sync.RWMutex
}

// NewWorkerPool creates a pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Buffer 4x workers to hide submission latency.
	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan Task, workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan Task, queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.workQueues[id]

	for {
		select {
		case <-p.done:
			p.drainQueue(id, myQueue)
			return

		case task := <-myQueue:
			task(id)

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen(id)
				continue
			}
			// Nothing anywhere, block on own queue.
			select {
			case <-p.done:
				p.drainQueue(id, myQueue)
				return
			case task := <-myQueue:
				task(id)
			}
		}
	}
}

// drainQueue executes all remaining tasks in a queue.
func (p *WorkerPool) drainQueue(id int, queue chan Task) {
	for {
		select {
		case task := <-queue:
			task(id)
		default:
			return
		}
	}
}

// steal takes a task from another worker's queue, or returns nil.
func (p *WorkerPool) steal(myID int) Task {
	for i := range p.workers {
		if i == myID {
			continue
		}
		select {
		case task := <-p.workQueues[i]:
			return task
		default:
		}
	}
	return nil
}

// ExecuteAll distributes tasks across workers and waits for all of them.
// It reports false, running nothing, if the pool is closed.
func (p *WorkerPool) ExecuteAll(tasks []Task) bool {
	p.submit.RLock()
	if !p.running.Load() {
		p.submit.RUnlock()
		return false
	}

	var completion sync.WaitGroup
	completion.Add(len(tasks))

	for i, task := range tasks {
		p.workQueues[i%p.workers] <- func(worker int) {
			defer completion.Done()
			task(worker)
		}
	}
	p.submit.RUnlock()

	completion.Wait()
	return true
}

// Close stops the pool after queued tasks have run.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.submit.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.submit.Unlock()
		return
	}
	close(p.done)
	p.submit.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
