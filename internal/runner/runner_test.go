package runner

import (
	"fmt"
	"io"
	"testing"

	"squall/internal/squallerror"
	"squall/pkg/squall/core"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	kind       string
	test       string
	expression string
	file       string
	line       int
	message    string
	success    bool
	count      int
	failed     int
}

// recordingReporter keeps every event it receives, in order.
type recordingReporter struct {
	events []event
}

func (rr *recordingReporter) name(run core.Run) string {
	if run.Current() == nil {
		return ""
	}
	return run.Current().FullName()
}

func (rr *recordingReporter) OnFailure(run core.Run, expression, file string, line int, message string) {
	rr.events = append(rr.events, event{kind: "failure", test: rr.name(run), expression: expression, file: file, line: line, message: message})
}

func (rr *recordingReporter) OnSoftError(run core.Run, expression, file string, line int, message string) {
	rr.events = append(rr.events, event{kind: "error", test: rr.name(run), expression: expression, file: file, line: line, message: message})
}

func (rr *recordingReporter) OnSuccess(run core.Run, file string, line int) {
	rr.events = append(rr.events, event{kind: "success", test: rr.name(run), file: file, line: line})
}

func (rr *recordingReporter) OnBeginRun(run core.Run, testCount int) {
	rr.events = append(rr.events, event{kind: "beginRun", count: testCount})
}

func (rr *recordingReporter) OnEndRun(run core.Run, testCount, failedCount int) {
	rr.events = append(rr.events, event{kind: "endRun", count: testCount, failed: failedCount})
}

func (rr *recordingReporter) OnBeginTest(run core.Run) {
	rr.events = append(rr.events, event{kind: "beginTest", test: rr.name(run)})
}

func (rr *recordingReporter) OnEndTest(run core.Run, succeeded bool) {
	rr.events = append(rr.events, event{kind: "endTest", test: rr.name(run), success: succeeded})
}

func (rr *recordingReporter) OnTeardown(run core.Run) {
	rr.events = append(rr.events, event{kind: "teardown", test: rr.name(run)})
}

func (rr *recordingReporter) ofKind(kind string) []event {
	var out []event
	for _, e := range rr.events {
		if e.kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func (rr *recordingReporter) endTest(test string) event {
	for _, e := range rr.events {
		if e.kind == "endTest" && e.test == test {
			return e
		}
	}
	return event{}
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func plain(ns, name string, line int, body func(core.T)) core.Descriptor {
	return core.Descriptor{
		Namespace: ns,
		Name:      name,
		File:      "scenario_test.go",
		Line:      line,
		Body:      core.PlainBody(body),
	}
}

func TestScenarioThreeTests(t *testing.T) {
	counter := 0
	tests := []core.Descriptor{
		plain("Scenario", "T1", 10, func(core.T) {}),
		plain("Scenario", "T2", 20, func(t core.T) {
			t.Failure("1==2", "scenario_test.go", 21, "%s", "x")
			counter += 100
		}),
		plain("Scenario", "T3", 30, func(t core.T) {
			t.SoftError("expect", "scenario_test.go", 31, "soft")
			counter++
		}),
	}

	rep := &recordingReporter{}
	code := New(rep, quietLogger()).Run(tests)

	assert.Equal(t, 1, code)
	assert.Equal(t, 1, counter, "statement after soft error runs, statement after hard failure does not")

	assert.True(t, rep.endTest("Scenario.T1").success)
	assert.False(t, rep.endTest("Scenario.T2").success)
	assert.False(t, rep.endTest("Scenario.T3").success)

	failures := rep.ofKind("failure")
	require.Len(t, failures, 1)
	assert.Equal(t, "Scenario.T2", failures[0].test)
	assert.Equal(t, "1==2", failures[0].expression)
	assert.Equal(t, "scenario_test.go", failures[0].file)
	assert.Equal(t, 21, failures[0].line)
	assert.Equal(t, "x", failures[0].message)

	endRun := rep.ofKind("endRun")
	require.Len(t, endRun, 1)
	assert.Equal(t, 3, endRun[0].count)
	assert.Equal(t, 2, endRun[0].failed)
}

func TestEventOrder(t *testing.T) {
	tests := []core.Descriptor{
		plain("Order", "a", 1, func(core.T) {}),
		plain("Order", "b", 2, func(core.T) {}),
	}

	rep := &recordingReporter{}
	code := New(rep, quietLogger()).Run(tests)
	assert.Equal(t, 0, code)

	var kinds []string
	for _, e := range rep.events {
		kinds = append(kinds, e.kind+":"+e.test)
	}
	assert.Equal(t, []string{
		"beginRun:",
		"beginTest:Order.a",
		"endTest:Order.a",
		"beginTest:Order.b",
		"endTest:Order.b",
		"endRun:",
		"teardown:",
	}, kinds)
}

func TestEmptyRunPasses(t *testing.T) {
	rep := &recordingReporter{}
	assert.Equal(t, 0, New(rep, quietLogger()).Run(nil))
	assert.Equal(t, 0, rep.ofKind("beginRun")[0].count)
}

func TestNilReporterIsValid(t *testing.T) {
	tests := []core.Descriptor{
		plain("Nil", "fails", 1, func(t core.T) { t.Failure("x", "f.go", 1, "") }),
	}
	assert.Equal(t, 1, New(nil, quietLogger()).Run(tests))
}

func TestFixtureLifecycle(t *testing.T) {
	var calls []string
	type state struct{ value int }

	fixture := func(body func(core.T, any)) core.Descriptor {
		return core.Descriptor{
			Namespace: "Fixture",
			Name:      "test",
			File:      "fixture_test.go",
			Line:      1,
			Body:      core.FixtureBody(body),
			Setup: func() any {
				calls = append(calls, "setup")
				return &state{value: 42}
			},
			Teardown: func(s any) {
				calls = append(calls, fmt.Sprintf("teardown:%d", s.(*state).value))
			},
		}
	}

	t.Run("passing body", func(t *testing.T) {
		calls = nil
		code := New(nil, quietLogger()).Run([]core.Descriptor{fixture(func(_ core.T, s any) {
			calls = append(calls, fmt.Sprintf("body:%d", s.(*state).value))
			s.(*state).value++
		})})

		assert.Equal(t, 0, code)
		assert.Equal(t, []string{"setup", "body:42", "teardown:43"}, calls)
	})

	t.Run("hard failure still tears down", func(t *testing.T) {
		calls = nil
		code := New(nil, quietLogger()).Run([]core.Descriptor{fixture(func(t core.T, s any) {
			calls = append(calls, "body")
			t.Failure("false", "fixture_test.go", 2, "abort")
			calls = append(calls, "unreachable")
		})})

		assert.Equal(t, 1, code)
		assert.Equal(t, []string{"setup", "body", "teardown:42"}, calls)
	})

	t.Run("panic still tears down", func(t *testing.T) {
		calls = nil
		code := New(nil, quietLogger()).Run([]core.Descriptor{fixture(func(core.T, any) {
			calls = append(calls, "body")
			panic("boom")
		})})

		assert.Equal(t, 1, code)
		assert.Equal(t, []string{"setup", "body", "teardown:42"}, calls)
	})
}

func TestFixtureWithoutSetupGetsNilState(t *testing.T) {
	var got any = "unset"
	d := core.Descriptor{
		Namespace: "Fixture",
		Name:      "noSetup",
		Body:      core.FixtureBody(func(_ core.T, s any) { got = s }),
	}

	assert.Equal(t, 0, New(nil, quietLogger()).Run([]core.Descriptor{d}))
	assert.Nil(t, got)
}

func TestSetupPanicSkipsBodyAndTeardown(t *testing.T) {
	ran := false
	tornDown := false
	d := core.Descriptor{
		Namespace: "Fixture",
		Name:      "badSetup",
		File:      "fixture_test.go",
		Line:      7,
		Body:      core.FixtureBody(func(core.T, any) { ran = true }),
		Setup:     func() any { panic("no database") },
		Teardown:  func(any) { tornDown = true },
	}

	rep := &recordingReporter{}
	code := New(rep, quietLogger()).Run([]core.Descriptor{d})

	assert.Equal(t, 1, code)
	assert.False(t, ran)
	assert.False(t, tornDown)

	failures := rep.ofKind("failure")
	require.Len(t, failures, 1)
	assert.Equal(t, "setup", failures[0].expression)
	assert.Contains(t, failures[0].message, "no database")
	assert.False(t, rep.endTest("Fixture.badSetup").success)
}

func TestTeardownPanicFailsRun(t *testing.T) {
	d := core.Descriptor{
		Namespace: "Fixture",
		Name:      "badTeardown",
		File:      "fixture_test.go",
		Line:      12,
		Body:      core.FixtureBody(func(core.T, any) {}),
		Teardown:  func(any) { panic("leak") },
	}

	rep := &recordingReporter{}
	r := New(rep, quietLogger())
	assert.Equal(t, 1, r.Run([]core.Descriptor{d}))
	require.Len(t, r.TestCases(), 1)
	assert.True(t, r.TestCases()[0].Status().Failed())
	assert.Equal(t, uint32(1), r.ErrorCount())

	failures := rep.ofKind("failure")
	require.Len(t, failures, 1)
	assert.Equal(t, "teardown", failures[0].expression)
	assert.Equal(t, "Fixture.badTeardown", failures[0].test)
	assert.Equal(t, "fixture_test.go", failures[0].file)
	assert.Equal(t, 12, failures[0].line)
	assert.Contains(t, failures[0].message, "leak")

	kinds := make([]string, 0, len(rep.events))
	for _, e := range rep.events {
		kinds = append(kinds, e.kind)
	}
	assert.Equal(t, []string{"beginRun", "beginTest", "endTest", "failure", "endRun", "teardown"}, kinds)
	assert.Equal(t, 1, rep.ofKind("endRun")[0].failed)
}

func TestMissingBodyIsConfigurationFailure(t *testing.T) {
	d := core.Descriptor{
		Namespace: "Config",
		Name:      "unbound",
		File:      "config_test.go",
		Line:      99,
	}

	rep := &recordingReporter{}
	code := New(rep, quietLogger()).Run([]core.Descriptor{d})

	assert.Equal(t, 1, code)
	failures := rep.ofKind("failure")
	require.Len(t, failures, 1)
	assert.Equal(t, "config_test.go", failures[0].file)
	assert.Equal(t, 99, failures[0].line)
	assert.Equal(t, "No valid test function for config_test.go:99", failures[0].message)
}

func TestPanicIsReportedAsFailure(t *testing.T) {
	tests := []core.Descriptor{
		plain("Panic", "boom", 5, func(core.T) { panic("kaboom") }),
		plain("Panic", "after", 6, func(core.T) {}),
	}

	rep := &recordingReporter{}
	code := New(rep, quietLogger()).Run(tests)

	assert.Equal(t, 1, code)
	failures := rep.ofKind("failure")
	require.Len(t, failures, 1)
	assert.Equal(t, "panic", failures[0].expression)
	assert.Contains(t, failures[0].message, "kaboom")
	assert.True(t, rep.endTest("Panic.after").success)
}

func TestSuccessMarkerDoesNotAffectOutcome(t *testing.T) {
	tests := []core.Descriptor{
		plain("Success", "marked", 1, func(t core.T) { t.Success("s.go", 2) }),
	}

	rep := &recordingReporter{}
	assert.Equal(t, 0, New(rep, quietLogger()).Run(tests))
	require.Len(t, rep.ofKind("success"), 1)
	assert.Equal(t, 2, rep.ofKind("success")[0].line)
}

func TestErrorCountIsMonotonic(t *testing.T) {
	var seen []uint32
	tests := []core.Descriptor{
		plain("Count", "a", 1, func(t core.T) { t.SoftError("", "", 0, ""); t.SoftError("", "", 0, "") }),
		plain("Count", "b", 2, func(core.T) {}),
		plain("Count", "c", 3, func(t core.T) { t.Failure("", "", 0, "") }),
	}

	rep := &countingReporter{seen: &seen}
	r := New(rep, quietLogger())
	assert.Equal(t, 1, r.Run(tests))

	assert.Equal(t, []uint32{2, 2, 3}, seen)
	assert.Equal(t, uint32(3), r.ErrorCount())
}

type countingReporter struct {
	core.BaseReporter
	seen *[]uint32
}

func (cr *countingReporter) OnEndTest(run core.Run, _ bool) {
	*cr.seen = append(*cr.seen, run.ErrorCount())
}

func TestCurrentIsSetOnlyDuringTest(t *testing.T) {
	var during *core.Descriptor
	tests := []core.Descriptor{
		plain("Current", "x", 1, func(t core.T) { during = t.Current() }),
	}

	r := New(nil, quietLogger())
	r.Run(tests)

	require.NotNil(t, during)
	assert.Equal(t, "Current.x", during.FullName())
	assert.Nil(t, r.Current())
}

func TestContextCancelledAfterBody(t *testing.T) {
	done := make(chan struct{})
	tests := []core.Descriptor{
		plain("Context", "background", 1, func(t core.T) {
			go func() {
				<-t.Context().Done()
				close(done)
			}()
		}),
	}

	New(nil, quietLogger()).Run(tests)
	<-done
}

func TestReportsAfterBodyFinishedAreDropped(t *testing.T) {
	reported := make(chan struct{})
	tests := []core.Descriptor{
		plain("Leak", "background", 1, func(t core.T) {
			go func() {
				defer close(reported)
				<-t.Context().Done()
				t.SoftError("late", "scenario_test.go", 2, "reported after the body returned")
				t.Failure("late", "scenario_test.go", 3, "reported after the body returned")
			}()
		}),
		plain("Leak", "next", 4, func(core.T) {
			<-reported
		}),
	}

	rep := &recordingReporter{}
	r := New(rep, quietLogger())
	code := r.Run(tests)

	assert.Equal(t, 0, code)
	assert.Equal(t, uint32(0), r.ErrorCount())
	assert.Empty(t, rep.ofKind("error"))
	assert.Empty(t, rep.ofKind("failure"))
	assert.True(t, rep.endTest("Leak.next").success)
}

func TestCapturedLogVisibleToReporter(t *testing.T) {
	var captured []string
	tests := []core.Descriptor{
		plain("Logs", "captured", 1, func(t core.T) { t.Logger().Info("captured line") }),
	}

	rep := &logReporter{captured: &captured}
	New(rep, quietLogger()).Run(tests)

	require.Len(t, captured, 1)
	assert.Contains(t, captured[0], "captured line")
}

type logReporter struct {
	core.BaseReporter
	captured *[]string
}

func (lr *logReporter) OnEndTest(run core.Run, _ bool) {
	*lr.captured = run.CapturedLog()
}

func TestRunnerIsSingleUse(t *testing.T) {
	r := New(nil, quietLogger())
	r.Run(nil)
	assert.Panics(t, func() { r.Run(nil) })
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(0))
	assert.Equal(t, 1, ExitCode(1))
	assert.Equal(t, 1, ExitCode(17))
}

func TestRunCatchPanic(t *testing.T) {
	t.Run("no panic", func(t *testing.T) {
		err := runCatchPanic(func() error { return nil })
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("error", func(t *testing.T) {
		err := runCatchPanic(func() error { return fmt.Errorf("test error") })
		if err == nil {
			t.Errorf("expected an error, got nil")
		}

		if _, ok := err.(squallerror.PanicError); ok {
			t.Errorf("expected non-panic error, got panic error")
		}

		if err.Error() != "test error" {
			t.Errorf("expected test error, got %v", err)
		}
	})

	t.Run("panic", func(t *testing.T) {
		err := runCatchPanic(func() error {
			panic("test panic")
		})
		if err == nil {
			t.Errorf("expected an error, got nil")
		}

		pe, ok := err.(squallerror.PanicError)
		if !ok {
			t.Errorf("expected panic error, got non-panic error")
		}

		if pe.Error() != "panic occurred: test panic" {
			t.Errorf("expected panic error, got %v", pe)
		}
	})
}
