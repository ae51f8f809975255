package core

// Run is the read-only view of an execution session handed to a Reporter.
type Run interface {
	// Unique identifier of this session.
	ID() string

	// Returns the descriptor of the test being executed, or nil between
	// tests.
	Current() *Descriptor

	// Total number of failures and soft errors recorded so far. It never
	// decreases during a run.
	ErrorCount() uint32

	// Log lines captured for the current test so far.
	CapturedLog() []string
}

// Reporter receives the lifecycle and failure events of a run. The runner
// does the pass/fail accounting; a reporter only surfaces events.
type Reporter interface {
	// Called for an assertion that aborts the current test body.
	OnFailure(run Run, expression, file string, line int, message string)

	// Called for an assertion that is recorded but does not abort the body.
	OnSoftError(run Run, expression, file string, line int, message string)

	// Called for an explicit success marker.
	OnSuccess(run Run, file string, line int)

	// Bracket the whole session.
	OnBeginRun(run Run, testCount int)
	OnEndRun(run Run, testCount, failedCount int)

	// Bracket one test.
	OnBeginTest(run Run)
	OnEndTest(run Run, succeeded bool)

	// Called once after the run has completed, to release reporter-owned
	// resources.
	OnTeardown(run Run)
}

// BaseReporter is a no-op implementation of the Reporter interface. It is
// meant to be used for composition when not all methods of the Reporter
// interface are needed.
type BaseReporter struct{}

func (BaseReporter) OnFailure(Run, string, string, int, string)   {}
func (BaseReporter) OnSoftError(Run, string, string, int, string) {}
func (BaseReporter) OnSuccess(Run, string, int)                   {}
func (BaseReporter) OnBeginRun(Run, int)                          {}
func (BaseReporter) OnEndRun(Run, int, int)                       {}
func (BaseReporter) OnBeginTest(Run)                              {}
func (BaseReporter) OnEndTest(Run, bool)                          {}
func (BaseReporter) OnTeardown(Run)                               {}
