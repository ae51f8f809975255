package testmgr

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"squall/pkg/squall/core"

	"github.com/sirupsen/logrus"
)

type TestCase struct {
	descriptor *core.Descriptor
	index      uint
	parent     *TestManager
	startTime  time.Time
	endTime    time.Time
	status     TestCaseStatus
	log        *logrus.Logger
	logBuffer  lockedBuffer
}

// Test bodies may log from goroutines they started, so the capture buffer
// is guarded.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Implementer of logrus.Hook interface to tee log messages from the test case
// logger to the suite logger
type testCaseLogTee struct {
	suiteLogger *logrus.Logger
	testCaseId  string
}

func (tee testCaseLogTee) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (tee testCaseLogTee) Fire(entry *logrus.Entry) error {
	// Make a shallow copy so that we can modify the logger pointer
	newEntry := tee.suiteLogger.WithFields(entry.Data)
	newEntry.Caller = entry.Caller
	newEntry.Log(entry.Level, fmt.Sprintf("[%s] > %s", tee.testCaseId, entry.Message))
	return nil
}

func newTestCase(d *core.Descriptor, index uint, parent *TestManager) *TestCase {
	tc := &TestCase{
		descriptor: d,
		index:      index,
		parent:     parent,
		startTime:  time.Now(),
		status:     TestCaseStatusRunning,
		log:        logrus.New(),
	}

	tc.log.SetLevel(logrus.TraceLevel)
	tc.log.SetOutput(&tc.logBuffer)
	tc.log.SetFormatter(&logrus.TextFormatter{
		ForceColors:      true,
		DisableTimestamp: false,
	})
	tc.log.AddHook(testCaseLogTee{
		suiteLogger: parent.log,
		testCaseId:  tc.id(),
	})

	return tc
}

func (tc *TestCase) Status() TestCaseStatus {
	return tc.status
}

func (tc *TestCase) Descriptor() *core.Descriptor {
	return tc.descriptor
}

func (tc *TestCase) id() string {
	return fmt.Sprintf("%04d:%s", tc.index, tc.Name())
}

func (tc *TestCase) isRunning() bool {
	return tc.status == TestCaseStatusRunning
}

// LogLines returns the lines logged through the test case logger so far.
func (tc *TestCase) LogLines() []string {
	raw := strings.TrimRight(tc.logBuffer.String(), "\n")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "\n")
}

func (tc *TestCase) Name() string {
	return tc.descriptor.FullName()
}

func (tc *TestCase) Logger() *logrus.Logger {
	return tc.log
}

func (tc *TestCase) close(status TestCaseStatus) {
	if tc.status != TestCaseStatusRunning {
		tc.parent.log.Warnf(
			"Attempted to close test case '%s' with status '%s', but it was already closed with status '%s'. Ignoring.",
			tc.Name(),
			status.String(),
			tc.status.String(),
		)
		return
	}

	if status == TestCaseStatusRunning {
		panic("cannot close test case with status running")
	}

	tc.status = status
	tc.endTime = time.Now()

	// Close this logger
	tc.log.SetOutput(io.Discard)

	tc.parent.log.
		WithField("testCase", tc.Name()).
		WithField("status", tc.status.String()).
		Logf(tc.status.logLevel(), "%s: %s", tc.Name(), tc.status.String())
}

func (tc *TestCase) Pass() {
	tc.close(TestCaseStatusPassed)
}

func (tc *TestCase) Fail() {
	tc.close(TestCaseStatusFailed)
}

// Marks a test case that already passed as failed. Used when a failure is
// detected after the outcome was decided, such as a panicking teardown.
func (tc *TestCase) Downgrade() {
	if tc.status == TestCaseStatusPassed {
		tc.status = TestCaseStatusFailed
	}
}

func (tc *TestCase) RunTime() time.Duration {
	if tc.status == TestCaseStatusRunning {
		return time.Since(tc.startTime)
	}

	return tc.endTime.Sub(tc.startTime)
}
