package core

type SuiteContext interface {
	Named

	LoggerProvider

	// Returns the registry holding every test case registered in the suite,
	// in registration order.
	Registry() TestRegistry

	// Returns whether the suite has Azure DevOps integration enabled
	AzureDevops() bool
}
