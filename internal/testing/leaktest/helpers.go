// Package leaktest catches goroutines left running by pools, publishers and
// schedulers after they report a clean shutdown.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = 2 * time.Second
	pollInterval  = 10 * time.Millisecond
)

// GoroutineChecker records a goroutine baseline to compare against later
type GoroutineChecker struct {
	t        testing.TB
	baseline int
}

// NewGoroutineChecker snapshots the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{t: t, baseline: runtime.NumGoroutine()}
}

// Check polls until the goroutine count is within tolerance of the baseline,
// failing the test if it has not settled before the timeout.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	current := settle(g.baseline+tolerance, settleTimeout)
	if leaked := current - g.baseline; leaked > tolerance {
		g.t.Errorf("goroutine leak: baseline=%d current=%d leaked=%d tolerance=%d",
			g.baseline, current, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and requires every goroutine it started to exit
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

func settle(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(pollInterval)
	}
}
