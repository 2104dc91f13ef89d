package kyc

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerRunsLastCallOnly(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var last atomic.Value
	var runs atomic.Int32
	for _, q := range []string{"r", "ra", "rav", "ravi"} {
		q := q
		d.Trigger("client-1", func() {
			runs.Add(1)
			last.Store(q)
		})
	}

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
	assert.Equal(t, "ravi", last.Load())
}

func TestDebouncerKeysAreIndependent(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	defer d.Stop()

	var runs atomic.Int32
	d.Trigger("a", func() { runs.Add(1) })
	d.Trigger("b", func() { runs.Add(1) })
	assert.Eventually(t, func() bool { return runs.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestDebouncerCancelAndStop(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	var runs atomic.Int32
	d.Trigger("a", func() { runs.Add(1) })
	d.Cancel("a")
	d.Trigger("b", func() { runs.Add(1) })
	d.Stop()
	d.Trigger("c", func() { runs.Add(1) })

	time.Sleep(40 * time.Millisecond)
	assert.Zero(t, runs.Load())
}
