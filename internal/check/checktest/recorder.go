// Package checktest provides a core.T that records reports, for testing code
// that runs inside a test body.
package checktest

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"squall/pkg/squall/core"

	"github.com/sirupsen/logrus"
)

type Report struct {
	Hard       bool
	Expression string
	File       string
	Line       int
	Message    string
}

// Recorder is a core.T. Failure stops the calling goroutine like the runner
// does, so bodies must be started through Run.
type Recorder struct {
	mu        sync.Mutex
	reports   []Report
	successes int
	log       *logrus.Logger
}

func (r *Recorder) add(report Report) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, report)
}

func (r *Recorder) Failure(expression, file string, line int, format string, args ...any) {
	r.add(Report{true, expression, file, line, fmt.Sprintf(format, args...)})
	runtime.Goexit()
}

func (r *Recorder) SoftError(expression, file string, line int, format string, args ...any) {
	r.add(Report{false, expression, file, line, fmt.Sprintf(format, args...)})
}

func (r *Recorder) Success(string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes++
}

func (r *Recorder) Current() *core.Descriptor {
	return nil
}

func (r *Recorder) Logger() *logrus.Logger {
	return r.log
}

func (r *Recorder) Context() context.Context {
	return context.Background()
}

func (r *Recorder) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Report(nil), r.reports...)
}

func (r *Recorder) Successes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.successes
}

// Run executes body in its own goroutine and waits for it to return or be
// stopped. It reports whether the body ran to completion.
func Run(body func(core.T)) (*Recorder, bool) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	r := &Recorder{log: log}

	completed := false
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		body(r)
		completed = true
	}()
	wg.Wait()

	return r, completed
}
