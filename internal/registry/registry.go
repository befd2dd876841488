package registry

import (
	"fmt"
	"sumcheck/pkg/sumcheck/core"
)

// Registry is an append-only, ordered collection of test cases. Insertion
// order defines execution and reporting order.
type Registry struct {
	tests []core.RegisteredTest
}

func New() *Registry {
	return &Registry{
		tests: make([]core.RegisteredTest, 0),
	}
}

// AddTest implements core.TestRegistrar.
func (r *Registry) AddTest(name string, action core.TestAction) {
	r.tests = append(r.tests, core.RegisteredTest{
		Name:   name,
		Action: action,
	})
}

// Tests returns a copy of the registered test cases, so callers cannot
// reorder the registry.
func (r *Registry) Tests() []core.RegisteredTest {
	out := make([]core.RegisteredTest, len(r.tests))
	copy(out, r.tests)
	return out
}

func (r *Registry) Len() int {
	return len(r.tests)
}

// Names returns the names of all registered test cases in order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.tests))
	for i, test := range r.tests {
		names[i] = test.Name
	}
	return names
}

// Collect runs the registration function of the registrant against this
// registry.
func (r *Registry) Collect(registrant core.TestRegistrant) error {
	err := registrant.RegisterTestCases(r)
	if err != nil {
		return fmt.Errorf("failed to register test cases of '%s': %w", registrant.Name(), err)
	}

	return nil
}
