package core

// A test action takes no arguments. On success it returns a message
// describing the result, on failure it returns an error.
type TestAction = func() (string, error)

type RegisteredTest struct {
	Name   string
	Action TestAction
}

type TestRegistrar interface {
	// Append a test case with the given name to the registry. Names are for
	// display only: they are not validated and do not need to be unique.
	AddTest(name string, action TestAction)
}

type TestRegistry interface {
	TestRegistrar

	// Returns all registered test cases in insertion order.
	Tests() []RegisteredTest

	// Returns the number of registered test cases.
	Len() int
}

type TestRegistrant interface {
	Named
	RegisterTestCases(r TestRegistrar) error
}
