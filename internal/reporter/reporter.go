package reporter

import (
	"fmt"
	"io"
	"sumcheck/internal/devops"
	"sumcheck/internal/testmgr"
	"sumcheck/pkg/sumcheck/utils"

	"github.com/fatih/color"
)

// Reporter prints test results to a writer. Lines are plain text so that the
// output of a run is deterministic.
type Reporter struct {
	out     io.Writer
	details bool
	devops  *devops.Printer
	group   *devops.Group
}

type Option func(*Reporter)

// WithDetails makes the reporter print the captured logs of every test case
// that did not pass after the summary.
func WithDetails(details bool) Option {
	return func(r *Reporter) {
		r.details = details
	}
}

// WithAzureDevops makes the reporter emit Azure DevOps logging commands.
func WithAzureDevops(enabled bool) Option {
	return func(r *Reporter) {
		if enabled {
			r.devops = devops.NewPrinter(r.out)
		}
	}
}

func NewReporter(out io.Writer, opts ...Option) *Reporter {
	r := &Reporter{out: out}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start marks the beginning of a run of count test cases.
func (r *Reporter) Start(suiteName string, count int) {
	if r.devops != nil {
		r.group = r.devops.OpenGroup(fmt.Sprintf("%s: running %d tests", suiteName, count))
	}
}

// ReportTestCase prints the outcome of a closed test case.
func (r *Reporter) ReportTestCase(tc *testmgr.TestCase) error {
	if tc.Status().Passed() {
		_, err := fmt.Fprintf(r.out, "Test Passed: Name: %s, Result: %s\n", tc.Name(), tc.Result())
		return err
	}

	if r.devops != nil {
		switch {
		case tc.Status().Failed():
			r.devops.LogError("Test '%s' %s: %v", tc.Name(), tc.Status().String(), tc.Err())
		case tc.Status().Errored():
			// The test itself is broken, not the code under test.
			r.devops.LogWarning("Test '%s' %s: %v", tc.Name(), tc.Status().String(), tc.Err())
		}
	}

	_, err := fmt.Fprintf(r.out, "Failed: Name: %s \n Result: %v\n", tc.Name(), tc.Err())
	return err
}

// Finish prints the run summary, followed by the details of the bad test
// cases when enabled.
func (r *Reporter) Finish(tm *testmgr.TestManager) (TestSummary, error) {
	summary := NewSummaryFromTestManager(tm)

	if r.group != nil {
		r.group.Close()
		r.group = nil
	}

	if _, err := fmt.Fprintln(r.out, summary.Line()); err != nil {
		return summary, err
	}

	if r.details {
		if err := r.printDetails(tm); err != nil {
			return summary, err
		}
	}

	if r.devops != nil && summary.Status().IsBad() {
		r.devops.CompleteTask(summary.Status().TaskResult())
	}

	return summary, nil
}

func (r *Reporter) printDetails(tm *testmgr.TestManager) error {
	printed := false
	for _, testCase := range tm.TestCases() {
		if !testCase.Status().IsBad() {
			continue
		}

		printed = true
		title := fmt.Sprintf("%s [%s]; collected logs", testCase.Name(), testCase.Status().String())
		if err := printSeparatorWithTitle(r.out, title); err != nil {
			return err
		}

		for _, line := range testCase.LogLines() {
			if color.NoColor {
				line = utils.StripANSI(line)
			}
			if _, err := fmt.Fprintln(r.out, "    ", line); err != nil {
				return err
			}
		}
	}

	if printed {
		return printSeparator(r.out)
	}

	return nil
}
