package main

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRerunnerNeverOverlaps(t *testing.T) {
	var active, maxActive, runs atomic.Int32
	r := newRerunner(func() {
		n := active.Add(1)
		for {
			m := maxActive.Load()
			if n <= m || maxActive.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		active.Add(-1)
		runs.Add(1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.run(ctx)
		close(done)
	}()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.trigger()
		}()
	}
	wg.Wait()

	assert.Eventually(t, func() bool { return runs.Load() >= 1 && active.Load() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, int32(1), maxActive.Load())
	assert.LessOrEqual(t, runs.Load(), int32(2))
}
