package core

import (
	"context"

	"github.com/sirupsen/logrus"
)

// T is the handle a test body receives. It carries the reporting channel of
// the current run. Goroutines started by the body may report while the body
// runs; reports made after the body returned are logged and dropped.
type T interface {
	// Record a hard failure and stop the test body. Implementations stop
	// execution by calling runtime.Goexit(), which runs all deferred calls
	// in the current goroutine. Must be called from the goroutine running
	// the test body.
	Failure(expression, file string, line int, format string, args ...any)

	// Record a soft error. The test is marked as failed but the body keeps
	// running.
	SoftError(expression, file string, line int, format string, args ...any)

	// Explicit success marker. Has no effect on the outcome.
	Success(file string, line int)

	// Returns the descriptor of the test being executed.
	Current() *Descriptor

	// Returns a logger whose output is captured for this test and teed to
	// the suite logger.
	Logger() *logrus.Logger

	// Provides a context for the test. The context is cancelled once the
	// test body has returned, making it suitable to stop any goroutines the
	// body started.
	Context() context.Context
}
