package testmgr

import (
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

type TestCaseStatus int

const (
	TestCaseStatusRunning TestCaseStatus = iota
	TestCaseStatusPassed
	TestCaseStatusFailed
)

func (tcs TestCaseStatus) String() string {
	switch tcs {
	case TestCaseStatusRunning:
		return "RUNNING"
	case TestCaseStatusPassed:
		return "PASS"
	case TestCaseStatusFailed:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

func (tcs TestCaseStatus) ColorString() string {
	switch tcs {
	case TestCaseStatusPassed:
		return color.GreenString(tcs.String())
	case TestCaseStatusFailed:
		return color.RedString(tcs.String())
	default:
		return tcs.String()
	}
}

func (tcs TestCaseStatus) logLevel() logrus.Level {
	switch tcs {
	case TestCaseStatusFailed:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func (tcs TestCaseStatus) IsRunning() bool {
	return tcs == TestCaseStatusRunning
}

func (tcs TestCaseStatus) Passed() bool {
	return tcs == TestCaseStatusPassed
}

func (tcs TestCaseStatus) Failed() bool {
	return tcs == TestCaseStatusFailed
}
