package reporter

import (
	"fmt"
	"strings"
	"sumcheck/internal/testmgr"

	"github.com/fatih/color"
)

// RunStatus is the overall outcome of a run.
type RunStatus int

const (
	TestStatusOk RunStatus = iota
	TestStatusFailed
	TestStatusError
)

func (rs RunStatus) String() string {
	switch rs {
	case TestStatusOk:
		return "OK"
	case TestStatusFailed:
		return "FAILED"
	case TestStatusError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (rs RunStatus) ColorString() string {
	switch rs {
	case TestStatusOk:
		return color.GreenString(rs.String())
	case TestStatusFailed:
		return color.RedString(rs.String())
	case TestStatusError:
		return color.New(color.FgRed, color.Bold).Sprint(rs.String())
	default:
		return rs.String()
	}
}

// IsBad returns true when at least one test case did not pass.
func (rs RunStatus) IsBad() bool {
	return rs == TestStatusFailed || rs == TestStatusError
}

// TaskResult maps the run status to an Azure DevOps task result. Failed test
// cases do not fail the process, so the task only succeeds with issues.
func (rs RunStatus) TaskResult() string {
	if rs.IsBad() {
		return "SucceededWithIssues"
	}
	return "Succeeded"
}

type TestSummary struct {
	total   int
	passed  int
	failed  int
	errored int
}

func NewSummaryFromTestManager(tm *testmgr.TestManager) TestSummary {
	var summary TestSummary

	for _, testCase := range tm.TestCases() {
		summary.total++
		switch testCase.Status() {
		case testmgr.TestCaseStatusPassed:
			summary.passed++
		case testmgr.TestCaseStatusFailed:
			summary.failed++
		case testmgr.TestCaseStatusError:
			summary.errored++
		default:
			panic("Invalid test case status")
		}
	}

	return summary
}

func (s TestSummary) Total() int {
	return s.total
}

func (s TestSummary) Passed() int {
	return s.passed
}

// Failed returns the number of test cases that did not pass, errors included.
func (s TestSummary) Failed() int {
	return s.total - s.passed
}

func (s TestSummary) Status() RunStatus {
	if s.errored > 0 {
		return TestStatusError
	}
	if s.failed > 0 {
		return TestStatusFailed
	}
	return TestStatusOk
}

// Line returns the one line run summary printed at the end of a run.
func (s TestSummary) Line() string {
	return fmt.Sprintf("Ran %d Tests, %d Passed, %d Failed", s.total, s.passed, s.Failed())
}

func (s TestSummary) Summary() string {
	var out []string

	if s.failed > 0 {
		out = append(out, fmt.Sprintf("failed: %d", s.failed))
	}

	if s.errored > 0 {
		out = append(out, fmt.Sprintf("errored: %d", s.errored))
	}

	out = append(out, fmt.Sprintf("passed: %d", s.passed))
	out = append(out, fmt.Sprintf("total: %d", s.total))

	return strings.Join(out, "; ")
}
