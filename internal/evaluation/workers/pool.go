// Package workers provides a bounded worker pool that fans independent jobs
// out over goroutines and collects results back in job order.
package workers

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ProgressCallback is called after each job completes.
type ProgressCallback func(current, total int, message string)

// WorkerPool bounds how many jobs run at once.
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a new worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 10 // Default to 10 workers
	}
	return &WorkerPool{
		numWorkers: numWorkers,
	}
}

// NumWorkers returns the concurrency limit.
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Job is one unit of work. Name is only used for progress messages.
type Job[R any] struct {
	Name string
	Run  func(ctx context.Context) (R, error)
}

// Run executes jobs on the pool and returns their results in the same order
// as the input, regardless of completion order. The first failing job cancels
// the context handed to the others and its error is returned.
func Run[R any](ctx context.Context, wp *WorkerPool, jobs []Job[R], progress ProgressCallback) ([]R, error) {
	results := make([]R, len(jobs))
	if len(jobs) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	limit := wp.numWorkers
	if len(jobs) < limit {
		limit = len(jobs) // Don't spawn more workers than jobs
	}
	g.SetLimit(limit)

	var mu sync.Mutex
	completed := 0

	for idx, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := job.Run(gctx)
			if err != nil {
				return fmt.Errorf("job %s: %w", job.Name, err)
			}
			// Each job owns its slot, so no lock is needed for the write.
			results[idx] = result

			if progress != nil {
				mu.Lock()
				completed++
				progress(completed, len(jobs), job.Name)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
