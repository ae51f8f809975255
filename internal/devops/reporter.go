// Package devops decorates a reporter with Azure DevOps logging commands, so
// that every test shows up as a collapsible group and every failure as a
// pipeline issue.
package devops

import (
	"io"
	"strings"

	"squall/pkg/squall/core"
)

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

type Reporter struct {
	inner   core.Reporter
	printer *Printer
	group   *Group
}

// Wrap returns a reporter that forwards every event to inner and adds Azure
// DevOps logging commands written to out.
func Wrap(inner core.Reporter, out io.Writer) *Reporter {
	if inner == nil {
		inner = core.BaseReporter{}
	}

	return &Reporter{
		inner:   inner,
		printer: NewPrinter(out),
	}
}

func (r *Reporter) OnFailure(run core.Run, expression, file string, line int, message string) {
	r.inner.OnFailure(run, expression, file, line, message)
	r.printer.LogErrorAt(file, line, "%s: %s", testName(run), message)
}

func (r *Reporter) OnSoftError(run core.Run, expression, file string, line int, message string) {
	r.inner.OnSoftError(run, expression, file, line, message)
	r.printer.LogErrorAt(file, line, "%s: %s", testName(run), message)
}

func (r *Reporter) OnSuccess(run core.Run, file string, line int) {
	r.inner.OnSuccess(run, file, line)
}

func (r *Reporter) OnBeginRun(run core.Run, testCount int) {
	r.inner.OnBeginRun(run, testCount)
}

func (r *Reporter) OnEndRun(run core.Run, testCount, failedCount int) {
	r.inner.OnEndRun(run, testCount, failedCount)
	if failedCount > 0 {
		r.printer.LogError("%d of %d tests failed", failedCount, testCount)
	}
}

func (r *Reporter) OnBeginTest(run core.Run) {
	r.group = r.printer.OpenGroup(testName(run))
	r.inner.OnBeginTest(run)
}

func (r *Reporter) OnEndTest(run core.Run, succeeded bool) {
	r.inner.OnEndTest(run, succeeded)
	if r.group != nil {
		r.group.Close()
		r.group = nil
	}
}

func (r *Reporter) OnTeardown(run core.Run) {
	r.inner.OnTeardown(run)
}

func testName(run core.Run) string {
	if run.Current() == nil {
		return "<no test>"
	}
	return run.Current().FullName()
}
