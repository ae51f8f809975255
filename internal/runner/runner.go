// Package runner executes registered test descriptors, in order, against a
// core.Reporter and computes the process exit status.
package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"squall/internal/squallerror"
	"squall/internal/testmgr"
	"squall/pkg/squall/core"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Runner is a single-use execution session. It implements core.Run so that
// reporters can inspect the session while it executes.
type Runner struct {
	id         string
	reporter   core.Reporter
	log        *logrus.Entry
	tests      *testmgr.TestManager
	errorCount atomic.Uint32
	// Serializes reports from goroutines started by a body.
	reportMu    sync.Mutex
	current     *core.Descriptor
	currentCase *testmgr.TestCase
	used        bool
}

// New creates a runner reporting to the given reporter. A nil reporter is
// replaced by core.BaseReporter.
func New(reporter core.Reporter, log *logrus.Logger) *Runner {
	if reporter == nil {
		reporter = core.BaseReporter{}
	}

	id := uuid.NewString()

	return &Runner{
		id:       id,
		reporter: reporter,
		log:      log.WithField("run", id),
		tests:    testmgr.NewTestManager(log),
	}
}

func (r *Runner) ID() string {
	return r.id
}

func (r *Runner) Current() *core.Descriptor {
	return r.current
}

func (r *Runner) ErrorCount() uint32 {
	return r.errorCount.Load()
}

func (r *Runner) CapturedLog() []string {
	if r.currentCase == nil {
		return nil
	}
	return r.currentCase.LogLines()
}

// TestCases returns the bookkeeping of every test executed so far.
func (r *Runner) TestCases() []*testmgr.TestCase {
	return r.tests.TestCases()
}

// Run executes every descriptor in order and returns 0 if no test failed, 1
// otherwise. The descriptors must not change during the run.
func (r *Runner) Run(tests []core.Descriptor) int {
	if r.used {
		panic("runner already used, create a new runner for each run")
	}
	r.used = true

	r.log.Debugf("Starting run of %d tests", len(tests))
	r.reporter.OnBeginRun(r, len(tests))

	failed := 0
	for i := range tests {
		if !r.executeTest(&tests[i]) {
			failed++
		}
	}

	r.reporter.OnEndRun(r, len(tests), failed)
	r.log.Debugf("Run finished: %d tests, %d failed, %d errors recorded", len(tests), failed, r.ErrorCount())

	exitCode := ExitCode(failed)
	r.reporter.OnTeardown(r)
	return exitCode
}

// ExitCode maps a failed test count to a process exit status.
func ExitCode(failed int) int {
	if failed == 0 {
		return 0
	}
	return 1
}

// Runs one descriptor through the fixture and reporting protocol and returns
// whether it passed.
func (r *Runner) executeTest(d *core.Descriptor) bool {
	r.current = d
	r.currentCase = r.tests.NewTestCase(d)
	defer func() {
		r.current = nil
		r.currentCase = nil
	}()

	testCase := r.currentCase
	r.log.Debugf("%s (started)", d.FullName())

	var state any
	if d.Setup != nil {
		r.log.Tracef("Calling setup for '%s'", d.FullName())
		err := runCatchPanic(func() error {
			state = d.Setup()
			return nil
		})
		if err != nil {
			// Setup never completed, so there is no state to tear down.
			r.reporter.OnBeginTest(r)
			setupErr := newSetupError(d, err)
			r.log.WithError(setupErr).Error("Setup failed")
			r.recordFailure("setup", d.File, d.Line, setupErr.Error())
			testCase.Fail()
			r.reporter.OnEndTest(r, false)
			return false
		}
	}

	startCount := r.errorCount.Load()
	r.reporter.OnBeginTest(r)

	r.executeBody(d, state, testCase)

	success := r.errorCount.Load() == startCount
	if success {
		testCase.Pass()
	} else {
		testCase.Fail()
	}

	r.reporter.OnEndTest(r, success)

	if d.Teardown != nil {
		r.log.Tracef("Calling teardown for '%s'", d.FullName())
		err := runCatchPanic(func() error {
			d.Teardown(state)
			return nil
		})
		if err != nil {
			// Reported after OnEndTest, while the descriptor is still current.
			teardownErr := newTeardownError(d, err)
			r.log.WithError(teardownErr).Error("Teardown failed, counting test as failed")
			r.recordFailure("teardown", d.File, d.Line, teardownErr.Error())
			testCase.Downgrade()
			success = false
		}
	}

	r.log.Debugf("%s %s", d.FullName(), testCase.Status().ColorString())
	return success
}

func (r *Runner) executeBody(d *core.Descriptor, state any, testCase *testmgr.TestCase) {
	if d.Body == nil {
		r.recordFailure("", d.File, d.Line, fmt.Sprintf("No valid test function for %s", d.Location()))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := &testContext{
		runner:   r,
		testCase: testCase,
		ctx:      ctx,
	}

	var err error
	var wg sync.WaitGroup

	// Run the body in a separate goroutine so that runtime.Goexit() can be
	// called to stop the test execution.
	wg.Add(1)
	go func() {
		defer wg.Done()
		err = runCatchPanic(func() error {
			switch body := d.Body.(type) {
			case core.PlainBody:
				body(t)
			case core.FixtureBody:
				body(t, state)
			default:
				return fmt.Errorf("unsupported test body type %T", body)
			}
			return nil
		})
	}()

	wg.Wait()
	t.finished.Store(true)

	if err == nil {
		return
	}

	var pe squallerror.PanicError
	if errors.As(err, &pe) {
		r.log.WithError(err).Debugf("Panic stack:\n%s", pe.Stack)
		r.recordFailure("panic", d.File, d.Line, fmt.Sprintf("%s panicked: %v", d.FullName(), pe.Value()))
		return
	}

	r.recordFailure("", d.File, d.Line, err.Error())
}

func (r *Runner) recordFailure(expression, file string, line int, message string) {
	r.reportMu.Lock()
	defer r.reportMu.Unlock()
	r.errorCount.Add(1)
	r.reporter.OnFailure(r, expression, file, line, message)
}

func (r *Runner) recordSoftError(expression, file string, line int, message string) {
	r.reportMu.Lock()
	defer r.reportMu.Unlock()
	r.errorCount.Add(1)
	r.reporter.OnSoftError(r, expression, file, line, message)
}

func runCatchPanic(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = squallerror.NewPanicError(r, debug.Stack())
		}
	}()

	return f()
}
