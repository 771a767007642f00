// Package worker fans an index range out over a fixed number of goroutines.
package worker

import (
	"sync"
	"sync/atomic"
)

type Pool struct {
	workers int
}

// NewPool returns a Pool that runs at most workers goroutines at a time.
// workers < 1 is treated as 1.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers}
}

func (p *Pool) Workers() int { return p.workers }

// Run calls fn once for every index in [0, n) and returns after all calls
// have finished. Indexes are claimed in increasing order; fn must be safe to
// call concurrently for distinct indexes.
func (p *Pool) Run(n int, fn func(i int)) {
	workers := p.workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var (
		next atomic.Int64
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go p.run(&wg, &next, n, fn)
	}
	wg.Wait()
}

func (p *Pool) run(wg *sync.WaitGroup, next *atomic.Int64, n int, fn func(i int)) {
	defer wg.Done()

	for {
		i := int(next.Add(1) - 1)
		if i >= n {
			return
		}
		fn(i)
	}
}
