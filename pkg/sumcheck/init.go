// Package sumcheck is a small sequential test harness: test cases are
// registered in order and run once, each reporting a pass or a failure.
package sumcheck

import (
	"io"

	"sumcheck/pkg/sumcheck/core"
	"sumcheck/pkg/sumcheck/suite"
)

type TestAction = core.TestAction
type TestRegistrar = core.TestRegistrar
type TestRegistrant = core.TestRegistrant
type MismatchError = core.MismatchError

type Suite = suite.SumcheckSuite

// Creates a new suite with the given name from the process command line.
func CreateSuite(name string) *Suite {
	return suite.CreateSuite(name)
}

// Creates a new suite with the given name, arguments and writers.
func NewSuite(name string, args []string, out, logOut io.Writer) (*Suite, error) {
	return suite.NewSuite(name, args, out, logOut)
}

// Expect compares expected and actual with strict equality. See core.Expect.
func Expect[T comparable](expected, actual T) (string, error) {
	return core.Expect(expected, actual)
}
