package runner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sumcheck/internal/checkerror"
	"sumcheck/internal/registry"
	"sumcheck/internal/reporter"
	"sumcheck/pkg/sumcheck/core"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeSuite struct {
	log *logrus.Logger
	reg *registry.Registry
}

func newFakeSuite() *fakeSuite {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &fakeSuite{log: log, reg: registry.New()}
}

func (f *fakeSuite) Name() string                { return "fake" }
func (f *fakeSuite) Logger() *logrus.Logger      { return f.log }
func (f *fakeSuite) Registry() core.TestRegistry { return f.reg }
func (f *fakeSuite) AzureDevops() bool           { return false }

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func registerAdditionTests(r core.TestRegistrar) {
	r.AddTest("Addition of 5 and 3 equals 8", func() (string, error) {
		return core.Expect(5+3, 8)
	})
	r.AddTest("Addition of -1 and -4 equals -5", func() (string, error) {
		return core.Expect(-1+-4, -5)
	})
	r.AddTest("Addition of -1 and 3 equals -5", func() (string, error) {
		return core.Expect(-1+3, -5)
	})
}

func TestRunCatchPanic(t *testing.T) {
	t.Run("no panic", func(t *testing.T) {
		err := runCatchPanic(func() error { return nil })
		assert.NoError(t, err)
	})

	t.Run("error", func(t *testing.T) {
		err := runCatchPanic(func() error { return fmt.Errorf("test error") })
		require.Error(t, err)

		_, ok := err.(checkerror.PanicError)
		assert.False(t, ok, "expected non-panic error, got panic error")
		assert.Equal(t, "test error", err.Error())
	})

	t.Run("panic", func(t *testing.T) {
		err := runCatchPanic(func() error {
			panic("test panic")
		})
		require.Error(t, err)

		pe, ok := err.(checkerror.PanicError)
		require.True(t, ok, "expected panic error, got non-panic error")
		assert.Equal(t, "panic occurred: test panic", pe.Error())
		assert.Equal(t, "test panic", pe.Value())
		assert.NotEmpty(t, pe.Stack)
	})
}

func TestRunTestsAddition(t *testing.T) {
	suite := newFakeSuite()
	registerAdditionTests(suite.reg)

	var out bytes.Buffer
	summary, err := RunTests(suite, suite.reg, reporter.NewReporter(&out))
	require.NoError(t, err)

	expected := "Test Passed: Name: Addition of 5 and 3 equals 8, Result: Test Passed: 8 is equal to the 8\n" +
		"Test Passed: Name: Addition of -1 and -4 equals -5, Result: Test Passed: -5 is equal to the -5\n" +
		"Failed: Name: Addition of -1 and 3 equals -5 \n Result: test failed: 2 is not equal to -5\n" +
		"Ran 3 Tests, 2 Passed, 1 Failed\n"
	assert.Equal(t, expected, out.String())

	assert.Equal(t, 3, summary.Total())
	assert.Equal(t, 2, summary.Passed())
	assert.Equal(t, 1, summary.Failed())
	assert.Equal(t, reporter.TestStatusFailed, summary.Status())
}

func TestRunTestsKeepsRegistrationOrder(t *testing.T) {
	suite := newFakeSuite()
	names := []string{"zeta", "alpha", "mu", "alpha", "beta"}
	for i, name := range names {
		suite.reg.AddTest(name, func() (string, error) {
			return fmt.Sprintf("#%d", i), nil
		})
	}

	var out bytes.Buffer
	_, err := RunTests(suite, suite.reg, reporter.NewReporter(&out))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, len(names)+1)
	for i, name := range names {
		assert.Equal(t, fmt.Sprintf("Test Passed: Name: %s, Result: #%d", name, i), lines[i])
	}
	assert.Equal(t, "Ran 5 Tests, 5 Passed, 0 Failed", lines[len(names)])
}

func TestRunTestsIsRepeatable(t *testing.T) {
	suite := newFakeSuite()
	registerAdditionTests(suite.reg)

	var first, second bytes.Buffer
	s1, err := RunTests(suite, suite.reg, reporter.NewReporter(&first))
	require.NoError(t, err)
	s2, err := RunTests(suite, suite.reg, reporter.NewReporter(&second))
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, s1, s2)
	assert.Equal(t, 3, suite.reg.Len())
}

func TestRunTestsAbsorbsErrorsAndPanics(t *testing.T) {
	suite := newFakeSuite()
	suite.reg.AddTest("returns error", func() (string, error) {
		return "", errors.New("could not compute")
	})
	suite.reg.AddTest("panics", func() (string, error) {
		panic("kaboom")
	})
	suite.reg.AddTest("nil action", nil)
	suite.reg.AddTest("still runs", func() (string, error) {
		return core.Expect(1, 1)
	})

	var out bytes.Buffer
	summary, err := RunTests(suite, suite.reg, reporter.NewReporter(&out))
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Failed: Name: returns error \n Result: could not compute\n")
	assert.Contains(t, out.String(), "Failed: Name: panics \n Result: panic occurred: kaboom\n")
	assert.Contains(t, out.String(), "Failed: Name: nil action \n Result: panic occurred:")
	assert.Contains(t, out.String(), "Test Passed: Name: still runs, Result: Test Passed: 1 is equal to the 1\n")
	assert.Contains(t, out.String(), "Ran 4 Tests, 1 Passed, 3 Failed\n")
	assert.Equal(t, reporter.TestStatusError, summary.Status())
	assert.Equal(t, summary.Total(), summary.Passed()+summary.Failed())
}

func TestRunTestsEmptyRegistry(t *testing.T) {
	suite := newFakeSuite()

	var out bytes.Buffer
	summary, err := RunTests(suite, suite.reg, reporter.NewReporter(&out))
	require.NoError(t, err)

	assert.Equal(t, "Ran 0 Tests, 0 Passed, 0 Failed\n", out.String())
	assert.Equal(t, reporter.TestStatusOk, summary.Status())
}

func TestRunTestsWriteFailure(t *testing.T) {
	suite := newFakeSuite()
	registerAdditionTests(suite.reg)

	_, err := RunTests(suite, suite.reg, reporter.NewReporter(failingWriter{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRunTestsAzureDevops(t *testing.T) {
	suite := newFakeSuite()
	registerAdditionTests(suite.reg)

	var out bytes.Buffer
	_, err := RunTests(suite, suite.reg, reporter.NewReporter(&out, reporter.WithAzureDevops(true)))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Equal(t, "##[group]fake: running 3 tests", lines[0])
	assert.Contains(t, out.String(),
		"##vso[task.logissue type=error]Test 'Addition of -1 and 3 equals -5' FAIL: test failed: 2 is not equal to -5\n")
	assert.Equal(t, "##[endgroup]", lines[len(lines)-3])
	assert.Equal(t, "Ran 3 Tests, 2 Passed, 1 Failed", lines[len(lines)-2])
	assert.Equal(t, "##vso[task.complete result=SucceededWithIssues;]DONE", lines[len(lines)-1])
}
