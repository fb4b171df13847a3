package ocr

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPoolRunsAllJobs(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Start()
	defer pool.Close()

	var done int32
	for i := 0; i < 50; i++ {
		pool.Submit(func() {
			atomic.AddInt32(&done, 1)
		})
	}
	pool.Wait()

	if got := atomic.LoadInt32(&done); got != 50 {
		t.Errorf("completed jobs = %d, want 50", got)
	}
}

func TestWorkerPoolWaitBlocksUntilDone(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Start()
	defer pool.Close()

	var finished int32
	for i := 0; i < 4; i++ {
		pool.Submit(func() {
			time.Sleep(20 * time.Millisecond)
			atomic.AddInt32(&finished, 1)
		})
	}
	pool.Wait()

	if got := atomic.LoadInt32(&finished); got != 4 {
		t.Errorf("Wait returned with %d of 4 jobs finished", got)
	}
}

func TestWorkerPoolReusableAcrossBatches(t *testing.T) {
	pool := NewWorkerPool(3)
	pool.Start()
	defer pool.Close()

	var total int32
	for batch := 0; batch < 3; batch++ {
		for i := 0; i < 10; i++ {
			pool.Submit(func() {
				atomic.AddInt32(&total, 1)
			})
		}
		pool.Wait()
	}

	if got := atomic.LoadInt32(&total); got != 30 {
		t.Errorf("completed jobs = %d, want 30", got)
	}
}

func TestWorkerPoolDefaultsWorkerCount(t *testing.T) {
	pool := NewWorkerPool(0)
	if pool.workers <= 0 {
		t.Errorf("worker count = %d, want positive default", pool.workers)
	}
}
