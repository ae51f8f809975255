package reporter

import (
	"fmt"
	"io"
	"time"

	"squall/internal/records"
	"squall/pkg/squall/core"
	"squall/pkg/squall/utils"

	"github.com/fatih/color"
)

const (
	bannerSeparator = "[----------] "
	bannerRun       = "[ RUN      ] "
	bannerOk        = "[       OK ] "
	bannerFailed    = "[  FAILED  ] "
)

type ConsoleOptions struct {
	// Colorize banners.
	Color bool

	// Print elapsed milliseconds per test; "?" is printed otherwise.
	Timer bool

	// Print the log lines captured for a failed test.
	ShowLogs bool
}

// ConsoleReporter renders a run as human readable text.
type ConsoleReporter struct {
	out         io.Writer
	opts        ConsoleOptions
	green       *color.Color
	red         *color.Color
	testStart   time.Time
	failedNames *records.Store[string]

	// Set between a successful OnEndTest and the next OnBeginTest, when a
	// failure can only come from the fixture teardown.
	endedOk bool
}

func NewConsoleReporter(out io.Writer, opts ConsoleOptions) *ConsoleReporter {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	if opts.Color {
		green.EnableColor()
		red.EnableColor()
	} else {
		green.DisableColor()
		red.DisableColor()
	}

	return &ConsoleReporter{
		out:         out,
		opts:        opts,
		green:       green,
		red:         red,
		failedNames: records.New[string](records.DefaultCapacity),
	}
}

func (c *ConsoleReporter) printError(expression, file string, line int, message string) {
	fmt.Fprintf(c.out, "%s(%d): error: %s\n", file, line, message)
	if expression != "" {
		fmt.Fprintf(c.out, "%s failed\n", expression)
	}
}

func (c *ConsoleReporter) OnFailure(run core.Run, expression, file string, line int, message string) {
	c.printError(expression, file, line, message)
	c.failAfterEnd(run)
}

func (c *ConsoleReporter) OnSoftError(run core.Run, expression, file string, line int, message string) {
	c.printError(expression, file, line, message)
	c.failAfterEnd(run)
}

// A test already printed as OK failed in its teardown.
func (c *ConsoleReporter) failAfterEnd(run core.Run) {
	if !c.endedOk || run.Current() == nil {
		return
	}
	c.endedOk = false

	name := run.Current().FullName()
	c.red.Fprint(c.out, bannerFailed)
	fmt.Fprintf(c.out, "%s (teardown)\n", name)
	c.failedNames.PushBack(name)
}

func (c *ConsoleReporter) OnSuccess(core.Run, string, int) {}

func (c *ConsoleReporter) OnBeginRun(_ core.Run, testCount int) {
	c.green.Fprint(c.out, bannerSeparator)
	fmt.Fprintf(c.out, "Running %d tests.\n\n", testCount)
}

func (c *ConsoleReporter) OnEndRun(_ core.Run, testCount, failedCount int) {
	fmt.Fprintln(c.out)
	c.green.Fprint(c.out, bannerSeparator)
	fmt.Fprintf(c.out, "Completed %d tests with %d failures\n", testCount, failedCount)

	if failedCount == 0 {
		return
	}

	for i := 0; i < c.failedNames.Len(); i++ {
		c.red.Fprint(c.out, bannerFailed)
		fmt.Fprintln(c.out, c.failedNames.At(i))
	}
}

func (c *ConsoleReporter) OnBeginTest(run core.Run) {
	c.green.Fprint(c.out, bannerRun)
	fmt.Fprintln(c.out, run.Current().FullName())
	c.testStart = time.Now()
	c.endedOk = false
}

func (c *ConsoleReporter) OnEndTest(run core.Run, succeeded bool) {
	elapsed := time.Since(c.testStart)
	name := run.Current().FullName()
	c.endedOk = succeeded

	if succeeded {
		c.green.Fprint(c.out, bannerOk)
	} else {
		c.red.Fprint(c.out, bannerFailed)
		c.failedNames.PushBack(name)
	}

	if c.opts.Timer {
		fmt.Fprintf(c.out, "%s (%d ms)\n", name, elapsed.Milliseconds())
	} else {
		fmt.Fprintf(c.out, "%s (? ms)\n", name)
	}

	if !succeeded && c.opts.ShowLogs {
		c.printCapturedLog(name, run.CapturedLog())
	}
}

func (c *ConsoleReporter) printCapturedLog(name string, lines []string) {
	if len(lines) == 0 {
		return
	}

	printSeparatorWithTitle(c.out, fmt.Sprintf("captured log: %s", name))
	for _, line := range lines {
		if !c.opts.Color {
			line = utils.ANSI_CLEANER.ReplaceAllString(line, "")
		}
		fmt.Fprintln(c.out, "    ", line)
	}
	printSeparator(c.out)
}

// OnTeardown releases the list of failed test names.
func (c *ConsoleReporter) OnTeardown(core.Run) {
	c.failedNames.Destroy()
}
