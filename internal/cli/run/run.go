package run

import (
	"io"
	"sumcheck/internal/reporter"
	"sumcheck/internal/runner"
	"sumcheck/pkg/sumcheck/core"
)

type RunCmd struct {
	Details bool `short:"d" help:"Print the logs collected by failed test cases after the summary"`
}

// Run executes the registered tests once. Failed test cases are reported but
// do not make the command fail.
func (cmd *RunCmd) Run(suite core.SuiteContext, out io.Writer) error {
	rep := reporter.NewReporter(out,
		reporter.WithDetails(cmd.Details),
		reporter.WithAzureDevops(suite.AzureDevops()),
	)

	_, err := runner.RunTests(suite, suite.Registry(), rep)
	return err
}
