// Package worker provides a small generic worker pool. The loader uses it
// to retrieve all question sources concurrently at startup.
package worker

// Job produces one result. Jobs carry their own error inside T when they
// can fail; the pool does not interpret outputs.
type Job[T any] func() T

// Result pairs a job's output with the ID it was submitted under, since
// results arrive in completion order, not submission order.
type Result[T any] struct {
	JobID  string
	Output T
}

// Pool runs submitted jobs on a fixed number of goroutines.
type Pool[T any] struct {
	jobs    chan jobWrapper[T]
	results chan Result[T]
}

type jobWrapper[T any] struct {
	id string
	fn Job[T]
}

// NewPool starts workerCount goroutines consuming from a buffered queue.
func NewPool[T any](workerCount int, bufferSize int) *Pool[T] {
	p := &Pool[T]{
		jobs:    make(chan jobWrapper[T], bufferSize),
		results: make(chan Result[T], bufferSize),
	}
	for i := 0; i < workerCount; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool[T]) worker() {
	for job := range p.jobs {
		p.results <- Result[T]{
			JobID:  job.id,
			Output: job.fn(),
		}
	}
}

// Submit queues a job. Blocks once the buffer is full.
func (p *Pool[T]) Submit(id string, fn Job[T]) {
	p.jobs <- jobWrapper[T]{id: id, fn: fn}
}

// Results returns the channel job outputs arrive on.
func (p *Pool[T]) Results() <-chan Result[T] {
	return p.results
}

// Close stops the workers once queued jobs finish. Submit must not be
// called after Close.
func (p *Pool[T]) Close() {
	close(p.jobs)
}
