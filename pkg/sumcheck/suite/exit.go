package suite

import (
	"os"
	"sumcheck/internal/devops"
)

// Exit the program and report the exit status. Failed test cases are not an
// error: only a run that could not complete exits with a non-zero status.
func (s *SumcheckSuite) reportExitStatus(err error) {
	if err == nil {
		s.Log.Infof("Suite '%s' run completed", s.name)
		os.Exit(0)
	}

	if s.azureDevops {
		devops.NewPrinter(s.out).LogError("Suite '%s' run failed: %s", s.name, err)
	}

	s.Log.WithError(err).Fatalf("Suite '%s' failed", s.name)
}
