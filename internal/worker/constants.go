package worker

import (
	"errors"
	"time"
)

// PoolName is used in shutdown log lines
const PoolName = "worker pool"

// DefaultJobTimeout bounds a single job unless WithJobTimeout overrides it
const DefaultJobTimeout = 30 * time.Second

// ErrPoolStopped is returned when enqueueing into a stopped pool
var ErrPoolStopped = errors.New("worker pool stopped")

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for pool operations
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanicked = "Worker job panicked"
	LogMsgDelayedJobDropped = "Delayed job dropped, queue full or pool stopping"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
