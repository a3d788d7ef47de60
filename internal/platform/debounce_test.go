package platform

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestDebouncerCollapsesBursts(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := newDebouncer(20 * time.Millisecond)
	var calls atomic.Int32
	var wg sync.WaitGroup
	wg.Add(1)

	for range 10 {
		d.add("a", func() {
			calls.Add(1)
			wg.Done()
		})
	}
	wg.Wait()

	assert.True(t, d.stopAndWait(time.Second))
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncerKeysAreIndependent(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := newDebouncer(10 * time.Millisecond)
	got := make(chan string, 2)

	d.add("a", func() { got <- "a" })
	d.add("b", func() { got <- "b" })

	seen := map[string]bool{}
	for range 2 {
		select {
		case k := <-got:
			seen[k] = true
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for debounced calls")
		}
	}
	assert.Equal(t, map[string]bool{"a": true, "b": true}, seen)
	assert.True(t, d.stopAndWait(time.Second))
}

func TestDebouncerStopDropsPending(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := newDebouncer(time.Hour)
	var called atomic.Bool
	d.add("a", func() { called.Store(true) })

	assert.True(t, d.stopAndWait(time.Second))
	d.add("b", func() { called.Store(true) })
	assert.False(t, called.Load())
}
