package runner

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sumcheck/internal/checkerror"
	"sumcheck/internal/reporter"
	"sumcheck/internal/testmgr"
	"sumcheck/pkg/sumcheck/core"

	"github.com/google/uuid"
)

// RunTests executes every test case of the registry once, in registration
// order, and reports each outcome followed by a summary. A failing test case
// never stops the run. The returned error is only set when the report could
// not be written.
func RunTests(suite core.SuiteContext, reg core.TestRegistry, rep *reporter.Reporter) (reporter.TestSummary, error) {
	tests := reg.Tests()
	testMgr := testmgr.NewTestManager(suite)
	log := suite.Logger().WithField("runId", uuid.NewString())

	log.Infof("Running %d tests from suite '%s'", len(tests), suite.Name())
	rep.Start(suite.Name(), len(tests))

	for _, test := range tests {
		testCase := testMgr.NewTestCase(test.Name)
		log.Infof("%s (started)", testCase.Name())

		executeTestCase(testCase, test.Action)

		err := rep.ReportTestCase(testCase)
		if err != nil {
			return reporter.TestSummary{}, fmt.Errorf("failed to report test case '%s': %w", testCase.Name(), err)
		}
	}

	summary, err := rep.Finish(testMgr)
	if err != nil {
		return summary, fmt.Errorf("failed to print report: %w", err)
	}

	log.Infof("TEST RESULT: %s. %s", summary.Status().ColorString(), summary.Summary())

	return summary, nil
}

func executeTestCase(testCase *testmgr.TestCase, action core.TestAction) {
	var result string
	err := runCatchPanic(func() error {
		var err error
		result, err = testCase.Execute(action)
		return err
	})

	var mismatch *core.MismatchError
	switch {
	case err == nil:
		testCase.Pass(result)
	case errors.As(err, &mismatch):
		testCase.Fail(err)
	default:
		// Anything other than an assertion mismatch is a problem with the
		// test itself.
		testCase.Error(err)
	}
}

func runCatchPanic(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = checkerror.NewPanicError(r, debug.Stack())
		}
	}()

	return f()
}
