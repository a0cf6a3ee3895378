package orchestrator

import "sync/atomic"

// Counter is a goroutine-safe monotonic counter. The coordinator keeps only
// aggregate recovery outcome counts; individual results are discarded after
// the UI renders them.
type Counter struct {
	value int64
}

// Inc increments the counter by one.
func (c *Counter) Inc() {
	atomic.AddInt64(&c.value, 1)
}

// Value returns the current count.
func (c *Counter) Value() int64 {
	return atomic.LoadInt64(&c.value)
}

// Reset sets the counter back to zero.
func (c *Counter) Reset() {
	atomic.StoreInt64(&c.value, 0)
}
