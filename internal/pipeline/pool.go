package pipeline

import (
	"sync"

	"github.com/panjf2000/ants/v2"
)

// runEach submits one task per item to pool and blocks until every task
// has completed, overlapping I/O-bound work (file open/read/seek) across
// goroutines the way a work-stealing pool is expected to. Submission
// order has no bearing on completion order.
func runEach(pool *ants.Pool, n int, fn func(i int)) {
	var wg sync.WaitGroup

	wg.Add(n)

	for i := 0; i < n; i++ {
		i := i

		//nolint:errcheck // ants.Pool.Submit only errs when the pool is closed, which can't happen mid-run
		pool.Submit(func() {
			defer wg.Done()
			fn(i)
		})
	}

	wg.Wait()
}
