package reporter

import (
	"io"
	"testing"

	"squall/internal/testmgr"
	"squall/pkg/squall/core"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewSummary(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	m := testmgr.NewTestManager(log)

	m.NewTestCase(&core.Descriptor{Namespace: "S", Name: "a"}).Pass()
	m.NewTestCase(&core.Descriptor{Namespace: "S", Name: "b"}).Fail()
	m.NewTestCase(&core.Descriptor{Namespace: "S", Name: "c"}).Pass()

	s := NewSummary(m.TestCases())
	assert.Equal(t, 3, s.Total())
	assert.Equal(t, 1, s.Failed())
	assert.Equal(t, TestStatusFailed, s.Status())
	assert.True(t, s.Status().IsBad())
	assert.Equal(t, "failed: 1; passed: 2; total: 3", s.Summary())
	assert.EqualError(t, s.ExitError(), "test run finished with 1 failed tests")
}

func TestSummaryAllPassed(t *testing.T) {
	s := NewSummary(nil)
	assert.Equal(t, TestStatusOk, s.Status())
	assert.Equal(t, "passed: 0; total: 0", s.Summary())
	assert.NoError(t, s.ExitError())
}
