package worker_test

import (
	"sync/atomic"
	"testing"

	"github.com/seeker/common-hash/internal/worker"
)

func TestRunVisitsEveryIndexOnce(t *testing.T) {
	for _, workers := range []int{1, 2, 3, 8, 64} {
		p := worker.NewPool(workers)
		const n = 100
		var counts [n]atomic.Int32
		p.Run(n, func(i int) {
			counts[i].Add(1)
		})
		for i := range counts {
			if got := counts[i].Load(); got != 1 {
				t.Errorf("workers=%d: index %d visited %d times, want 1", workers, i, got)
			}
		}
	}
}

func TestRunEmptyRange(t *testing.T) {
	called := false
	worker.NewPool(4).Run(0, func(int) { called = true })
	if called {
		t.Error("fn called for empty range")
	}
}

func TestNewPoolClampsWorkers(t *testing.T) {
	if got := worker.NewPool(0).Workers(); got != 1 {
		t.Errorf("NewPool(0).Workers() = %d, want 1", got)
	}
	if got := worker.NewPool(-3).Workers(); got != 1 {
		t.Errorf("NewPool(-3).Workers() = %d, want 1", got)
	}
}

func TestRunSingleWorkerIsOrdered(t *testing.T) {
	var order []int
	worker.NewPool(1).Run(5, func(i int) {
		order = append(order, i)
	})
	for i, v := range order {
		if v != i {
			t.Fatalf("order = %v, want ascending", order)
		}
	}
	if len(order) != 5 {
		t.Fatalf("len(order) = %d, want 5", len(order))
	}
}
