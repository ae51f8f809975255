package run

import (
	"io"

	"squall/internal/config"
	"squall/internal/devops"
	"squall/internal/reporter"
	"squall/internal/runner"
	"squall/pkg/squall/core"
)

// BuildReporter returns the reporter selected by cfg.
func BuildReporter(cfg config.Config, out io.Writer) core.Reporter {
	switch cfg.Reporter {
	case config.ReporterSilent:
		return reporter.NewSilentReporter()
	default:
		return reporter.NewConsoleReporter(out, reporter.ConsoleOptions{
			Color:    cfg.Color,
			Timer:    cfg.Timer,
			ShowLogs: cfg.ShowLogs,
		})
	}
}

// Execute runs every test registered in the suite against rep and returns
// the exit status and the run summary.
func Execute(suite core.SuiteContext, rep core.Reporter) (int, reporter.TestSummary) {
	log := suite.Logger()

	tests := suite.Tests()

	if suite.AzureDevops() {
		rep = devops.Wrap(rep, suite.Output())
	}

	log.Infof("Running suite '%s' - %d tests collected.", suite.Name(), len(tests))

	r := runner.New(rep, log)
	code := r.Run(tests)

	summary := reporter.NewSummary(r.TestCases())
	log.Infof("TEST RESULT: %s. %s", summary.Status().StringColor(), summary.Summary())

	return code, summary
}
