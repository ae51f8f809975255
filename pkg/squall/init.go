package squall

import (
	"os"
	"path/filepath"
	"runtime"

	"squall/internal/cli/run"
	"squall/internal/config"
	"squall/internal/registry"
	"squall/pkg/squall/core"
	"squall/pkg/squall/suite"

	"golang.org/x/term"
)

type T = core.T
type Descriptor = core.Descriptor

type Reporter = core.Reporter
type BaseReporter = core.BaseReporter
type Session = core.Run

// Fixture provides per-test state of type S. Setup runs before every test
// of the fixture and Teardown after it, even when the test failed. Either
// may be nil.
type Fixture[S any] struct {
	Name     string
	Setup    func() S
	Teardown func(S)
}

func callerLocation() (string, int) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "???", 0
	}
	return file, line
}

// Register adds d to the process-wide registry. It panics once a run has
// started. The returned descriptor is a copy.
func Register(d Descriptor) *Descriptor {
	registry.Global().Register(d)
	return &d
}

// Test registers a plain test. Use it from a package-level variable or an
// init function so the test is known before main runs:
//
//	var _ = squall.Test("Math", "Add", func(t squall.T) {
//		assert.Eq(t, 2, 1+1, "addition")
//	})
func Test(namespace, name string, body func(T)) *Descriptor {
	file, line := callerLocation()
	return TestAt(namespace, name, file, line, body)
}

// TestAt is Test with an explicit source location.
func TestAt(namespace, name, file string, line int, body func(T)) *Descriptor {
	d := Descriptor{
		Namespace: namespace,
		Name:      name,
		File:      file,
		Line:      line,
	}
	if body != nil {
		d.Body = core.PlainBody(body)
	}
	return Register(d)
}

// TestF registers a test of fixture. The body receives the value returned by
// the fixture's Setup, or the zero value of S when there is no Setup.
func TestF[S any](fixture Fixture[S], name string, body func(T, S)) *Descriptor {
	file, line := callerLocation()
	return TestFAt(fixture, name, file, line, body)
}

// TestFAt is TestF with an explicit source location.
func TestFAt[S any](fixture Fixture[S], name, file string, line int, body func(T, S)) *Descriptor {
	d := Descriptor{
		Namespace: fixture.Name,
		Name:      name,
		File:      file,
		Line:      line,
	}
	if body != nil {
		d.Body = core.FixtureBody(func(t T, state any) {
			body(t, stateOf[S](state))
		})
	}
	if fixture.Setup != nil {
		d.Setup = func() any {
			return fixture.Setup()
		}
	}
	if fixture.Teardown != nil {
		d.Teardown = func(state any) {
			fixture.Teardown(stateOf[S](state))
		}
	}
	return Register(d)
}

func stateOf[S any](state any) S {
	s, _ := state.(S)
	return s
}

func suiteName() string {
	return filepath.Base(os.Args[0])
}

// Run executes every registered test against reporter and returns the exit
// status: 0 when all tests passed, 1 otherwise.
func Run(reporter Reporter) int {
	s := suite.New(suiteName(), registry.Global(), os.Stdout)
	code, _ := run.Execute(s, reporter)
	return code
}

// RunAllTests executes every registered test with the console reporter.
func RunAllTests() int {
	cfg := config.Default(term.IsTerminal(int(os.Stdout.Fd())))
	return Run(run.BuildReporter(cfg, os.Stdout))
}

// Main is the entry point of a test binary. It parses the command line, runs
// the selected command and exits.
func Main() {
	suite.New(suiteName(), registry.Global(), os.Stdout).Main()
}
