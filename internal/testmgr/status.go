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
	TestCaseStatusError
)

func (tcs TestCaseStatus) String() string {
	switch tcs {
	case TestCaseStatusRunning:
		return "RUNNING"
	case TestCaseStatusPassed:
		return "PASS"
	case TestCaseStatusFailed:
		return "FAIL"
	case TestCaseStatusError:
		return "ERROR"
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
	case TestCaseStatusError:
		return color.New(color.FgRed, color.Bold).Sprint(tcs.String())
	default:
		return tcs.String()
	}
}

func (tcs TestCaseStatus) logLevel() logrus.Level {
	switch tcs {
	case TestCaseStatusFailed, TestCaseStatusError:
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

func (tcs TestCaseStatus) Errored() bool {
	return tcs == TestCaseStatusError
}

// IsBad returns true if the test case status is either Failed or Error.
func (tcs TestCaseStatus) IsBad() bool {
	return tcs == TestCaseStatusFailed || tcs == TestCaseStatusError
}
