package pool

// Package pool runs independent per-file tasks on a fixed number of worker
// goroutines. Tasks are dispatched by index and the caller stores result i
// in slot i, so collected output always follows input enumeration order no
// matter which worker finishes first.

import "sync"

// Map invokes fn(i) for every i in [0, n) using at most workers goroutines.
// fn must be safe to call concurrently for distinct indices; it owns all
// state for its index. Map returns after every task has completed.
func Map(workers, n int, fn func(i int)) {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	tasks := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				fn(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		tasks <- i
	}
	close(tasks)
	wg.Wait()
}
