package testutil

import (
	"testing"
	"time"
)

// WaitFor polls a condition until it returns true or the timeout elapses,
// failing the test on timeout. Useful for asynchronous state in tests.
//
// Usage:
//
//	testutil.WaitFor(t, 5*time.Second, "server to start", server.IsRunning)
func WaitFor(t testing.TB, timeout time.Duration, message string, condition func() bool) {
	t.Helper()

	if condition() {
		return
	}

	interval := 50 * time.Millisecond
	if timeout < interval {
		timeout = interval
	}

	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if condition() {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("Timeout waiting for %s (waited %v)", message, timeout)
		}
	}
}
