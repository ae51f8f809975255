// Package testmgr keeps the per-test bookkeeping of a run: status, timing and
// the log output captured while each test executed.
package testmgr

import (
	"squall/pkg/squall/core"

	"github.com/sirupsen/logrus"
)

type TestManager struct {
	log       *logrus.Logger
	testCases []*TestCase
}

func NewTestManager(log *logrus.Logger) *TestManager {
	return &TestManager{
		log:       log,
		testCases: make([]*TestCase, 0),
	}
}

// NewTestCase starts tracking the execution of the given descriptor. Any
// previous test case that is still running is closed as failed, since the
// runner always closes a test case before starting the next one.
func (m *TestManager) NewTestCase(d *core.Descriptor) *TestCase {
	if len(m.testCases) > 0 {
		last := m.testCases[len(m.testCases)-1]
		if last.isRunning() {
			m.log.Warnf("Test case '%s' was not closed before the next one started", last.Name())
			last.Fail()
		}
	}

	tc := newTestCase(d, uint(len(m.testCases)), m)
	m.testCases = append(m.testCases, tc)
	return tc
}

func (m *TestManager) TestCases() []*TestCase {
	return m.testCases
}

func (m *TestManager) Logger() *logrus.Logger {
	return m.log
}
