package testmgr

import (
	"bytes"
	"testing"
	"time"

	"squall/pkg/squall/core"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager() (*TestManager, *bytes.Buffer) {
	var out bytes.Buffer
	log := logrus.New()
	log.SetOutput(&out)
	log.SetLevel(logrus.TraceLevel)
	return NewTestManager(log), &out
}

func desc(name string) *core.Descriptor {
	return &core.Descriptor{Namespace: "Mgr", Name: name, File: "f.go", Line: 3}
}

func TestTestCaseLifecycle(t *testing.T) {
	m, _ := newManager()

	tc := m.NewTestCase(desc("one"))
	assert.True(t, tc.Status().IsRunning())
	assert.Equal(t, "Mgr.one", tc.Name())

	time.Sleep(time.Millisecond)
	tc.Pass()
	assert.True(t, tc.Status().Passed())
	assert.Greater(t, tc.RunTime(), time.Duration(0))

	runTime := tc.RunTime()
	time.Sleep(time.Millisecond)
	assert.Equal(t, runTime, tc.RunTime())
}

func TestCloseTwiceIsIgnored(t *testing.T) {
	m, out := newManager()

	tc := m.NewTestCase(desc("one"))
	tc.Fail()
	tc.Pass()

	assert.True(t, tc.Status().Failed())
	assert.Contains(t, out.String(), "already closed")
}

func TestNewTestCaseClosesDanglingTest(t *testing.T) {
	m, _ := newManager()

	first := m.NewTestCase(desc("one"))
	second := m.NewTestCase(desc("two"))

	assert.True(t, first.Status().Failed())
	assert.True(t, second.Status().IsRunning())
	require.Len(t, m.TestCases(), 2)
}

func TestLogCaptureAndTee(t *testing.T) {
	m, out := newManager()

	tc := m.NewTestCase(desc("logs"))
	tc.Logger().Info("hello from the test")
	tc.Pass()
	tc.Logger().Info("after close")

	lines := tc.LogLines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "hello from the test")

	assert.Contains(t, out.String(), "[0000:Mgr.logs] > hello from the test")
}

func TestDowngrade(t *testing.T) {
	m, _ := newManager()

	tc := m.NewTestCase(desc("one"))
	tc.Pass()
	tc.Downgrade()
	assert.True(t, tc.Status().Failed())
}

func TestStatusStrings(t *testing.T) {
	assert.Equal(t, "PASS", TestCaseStatusPassed.String())
	assert.Equal(t, "FAIL", TestCaseStatusFailed.String())
	assert.Equal(t, "RUNNING", TestCaseStatusRunning.String())
	assert.Equal(t, "UNKNOWN", TestCaseStatus(42).String())
}
