package testmgr

import (
	"sumcheck/pkg/sumcheck/core"
	"time"
)

// TestManager keeps the test case records of a single run.
type TestManager struct {
	suite     core.SuiteContext
	startTime time.Time
	testCases []*TestCase
}

func NewTestManager(suite core.SuiteContext) *TestManager {
	return &TestManager{
		suite:     suite,
		startTime: time.Now(),
		testCases: make([]*TestCase, 0),
	}
}

func (m *TestManager) NewTestCase(name string) *TestCase {
	testCase := newTestCase(name, uint(len(m.testCases)), m)
	m.testCases = append(m.testCases, testCase)
	return testCase
}

func (m *TestManager) TestCases() []*TestCase {
	return m.testCases
}

func (m *TestManager) RunTime() time.Duration {
	return time.Since(m.startTime)
}
