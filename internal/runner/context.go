package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"squall/internal/testmgr"
	"squall/pkg/squall/core"

	"github.com/sirupsen/logrus"
)

// testContext is the core.T handed to a test body.
type testContext struct {
	runner   *Runner
	testCase *testmgr.TestCase
	ctx      context.Context

	// Set once the body has returned. Reports arriving later come from
	// goroutines the body leaked and are dropped.
	finished atomic.Bool
}

func (tc *testContext) late(kind string) bool {
	if !tc.finished.Load() {
		return false
	}
	tc.runner.log.Warnf("Ignoring %s reported for '%s' after it finished", kind, tc.testCase.Name())
	return true
}

func (tc *testContext) Failure(expression, file string, line int, format string, args ...any) {
	if tc.late("failure") {
		runtime.Goexit()
	}
	tc.runner.recordFailure(expression, file, line, fmt.Sprintf(format, args...))

	tc.runner.log.Tracef("Stopping execution of '%s' after a hard failure", tc.testCase.Name())
	runtime.Goexit()
}

func (tc *testContext) SoftError(expression, file string, line int, format string, args ...any) {
	if tc.late("error") {
		return
	}
	tc.runner.recordSoftError(expression, file, line, fmt.Sprintf(format, args...))
}

func (tc *testContext) Success(file string, line int) {
	if tc.late("success") {
		return
	}
	tc.runner.reportMu.Lock()
	defer tc.runner.reportMu.Unlock()
	tc.runner.reporter.OnSuccess(tc.runner, file, line)
}

func (tc *testContext) Current() *core.Descriptor {
	return tc.testCase.Descriptor()
}

func (tc *testContext) Logger() *logrus.Logger {
	return tc.testCase.Logger()
}

func (tc *testContext) Context() context.Context {
	return tc.ctx
}
