package ratelimiter

import (
	"sync"
	"testing"
	"time"
)

func TestRateLimiter_UnderLimitDoesNotBlock(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(5, time.Minute)

	start := time.Now()
	for i := 0; i < 5; i++ {
		rl.WaitIfNeeded()
	}

	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("calls under the limit must not block, took %v", elapsed)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	t.Parallel()

	interval := 300 * time.Millisecond
	rl := NewRateLimiter(2, interval)

	rl.WaitIfNeeded()
	rl.WaitIfNeeded()

	// 3回目は interval の残りを待つ
	start := time.Now()
	rl.WaitIfNeeded()
	elapsed := time.Since(start)

	if elapsed < interval/2 {
		t.Errorf("expected the third call to wait, but it returned after %v", elapsed)
	}
}

func TestRateLimiter_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(100, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rl.WaitIfNeeded()
		}()
	}
	wg.Wait()

	if rl.count != 20 {
		t.Errorf("count = %d, want 20", rl.count)
	}
}
