package reporter

import (
	"fmt"
	"strings"

	"squall/internal/testmgr"
)

type TestSummary struct {
	total  int
	passed int
	failed int
}

func NewSummary(testCases []*testmgr.TestCase) TestSummary {
	var summary TestSummary

	for _, testCase := range testCases {
		summary.total++
		switch testCase.Status() {
		case testmgr.TestCaseStatusPassed:
			summary.passed++
		case testmgr.TestCaseStatusFailed:
			summary.failed++
		default:
			panic("Invalid test case status")
		}
	}

	return summary
}

func (s TestSummary) Total() int {
	return s.total
}

func (s TestSummary) Failed() int {
	return s.failed
}

func (s TestSummary) Status() TestSummaryStatus {
	if s.failed > 0 {
		return TestStatusFailed
	}
	return TestStatusOk
}

func (s TestSummary) Summary() string {
	var out []string

	if s.failed > 0 {
		out = append(out, fmt.Sprintf("failed: %d", s.failed))
	}

	out = append(out, fmt.Sprintf("passed: %d", s.passed))
	out = append(out, fmt.Sprintf("total: %d", s.total))

	return strings.Join(out, "; ")
}

// ExitError returns an error when the summary contains failed tests.
func (s TestSummary) ExitError() error {
	if s.failed > 0 {
		return fmt.Errorf("test run finished with %d failed tests", s.failed)
	}

	return nil
}
