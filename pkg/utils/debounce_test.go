package utils

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerCoalescesBurst(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var first, second int32
	d.Do(func() { atomic.AddInt32(&first, 1) })
	d.Do(func() { atomic.AddInt32(&second, 1) })

	time.Sleep(200 * time.Millisecond)

	assert.Equal(t, int32(0), atomic.LoadInt32(&first))
	assert.Equal(t, int32(1), atomic.LoadInt32(&second))
}

func TestDebouncerRunsAfterQuietPeriod(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	done := make(chan struct{})
	d.Do(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("debounced call never ran")
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var calls int32
	d.Do(func() { atomic.AddInt32(&calls, 1) })
	d.Stop()

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))

	// Stop on an idle debouncer is harmless.
	d.Stop()
}
