package testmgr

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sumcheck/pkg/sumcheck/core"
	"time"

	"github.com/sirupsen/logrus"
)

type TestCase struct {
	name      string
	index     uint
	parent    *TestManager
	startTime time.Time
	endTime   time.Time
	status    TestCaseStatus
	result    string
	err       error
	log       *logrus.Logger
	logBuffer bytes.Buffer
}

// Implementer of logrus.Hook interface to tee log messages from the test case
// logger to the suite logger
type testCaseLogTee struct {
	suiteLogger *logrus.Logger
	testCaseId  string
}

func (tee testCaseLogTee) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (tee testCaseLogTee) Fire(entry *logrus.Entry) error {
	// Make a shallow copy so that we can modify the logger pointer
	newEntry := tee.suiteLogger.WithFields(entry.Data)
	newEntry.Caller = entry.Caller
	newEntry.Log(entry.Level, fmt.Sprintf("[%s] > %s", tee.testCaseId, entry.Message))
	return nil
}

func newTestCase(name string, index uint, parent *TestManager) *TestCase {
	tc := &TestCase{
		name:      name,
		index:     index,
		parent:    parent,
		startTime: time.Now(),
		status:    TestCaseStatusRunning,
		log:       logrus.New(),
	}

	tc.log.SetLevel(logrus.TraceLevel)
	tc.log.SetOutput(&tc.logBuffer)
	tc.log.SetFormatter(&logrus.TextFormatter{
		ForceColors:      true,
		DisableTimestamp: false,
	})
	tc.log.AddHook(tc.tee())

	return tc
}

func (tc *TestCase) tee() testCaseLogTee {
	return testCaseLogTee{
		suiteLogger: tc.parent.suite.Logger(),
		testCaseId:  tc.id(),
	}
}

func (tc *TestCase) id() string {
	return fmt.Sprintf("%04d:%s", tc.index, tc.name)
}

func (tc *TestCase) Name() string {
	return tc.name
}

func (tc *TestCase) Status() TestCaseStatus {
	return tc.status
}

// Result returns the message produced by a passing test case.
func (tc *TestCase) Result() string {
	return tc.result
}

// Err returns the error that made the test case fail or error.
func (tc *TestCase) Err() error {
	return tc.err
}

func (tc *TestCase) Logger() *logrus.Logger {
	return tc.log
}

func (tc *TestCase) LogLines() []string {
	raw := strings.TrimRight(tc.logBuffer.String(), "\n")
	if raw == "" {
		return nil
	}

	return strings.Split(raw, "\n")
}

func (tc *TestCase) RunTime() time.Duration {
	if tc.status.IsRunning() {
		return time.Since(tc.startTime)
	}

	return tc.endTime.Sub(tc.startTime)
}

// Execute invokes the action while the standard logrus logger is redirected
// into this test case. Panics are not recovered here.
func (tc *TestCase) Execute(action core.TestAction) (string, error) {
	restore := tc.captureStandardLogger()
	defer restore()

	return action()
}

// Redirects the standard logrus logger into the test case log buffer and the
// suite logger until the returned function is called.
func (tc *TestCase) captureStandardLogger() func() {
	std := logrus.StandardLogger()
	out := std.Out
	formatter := std.Formatter
	level := std.GetLevel()
	hooks := std.ReplaceHooks(make(logrus.LevelHooks))

	std.SetOutput(&tc.logBuffer)
	std.SetFormatter(tc.log.Formatter)
	std.SetLevel(logrus.TraceLevel)
	std.AddHook(tc.tee())

	return func() {
		std.SetOutput(out)
		std.SetFormatter(formatter)
		std.SetLevel(level)
		std.ReplaceHooks(hooks)
	}
}

func (tc *TestCase) Pass(result string) {
	tc.close(TestCaseStatusPassed, result, nil)
}

func (tc *TestCase) Fail(err error) {
	tc.close(TestCaseStatusFailed, "", err)
}

func (tc *TestCase) Error(err error) {
	tc.close(TestCaseStatusError, "", err)
}

func (tc *TestCase) close(status TestCaseStatus, result string, err error) {
	if !tc.status.IsRunning() {
		tc.parent.suite.
			Logger().
			Warnf(
				"Attempted to close test case '%s' with status '%s', but it was already closed with status '%s'. Ignoring.",
				tc.name,
				status.String(),
				tc.status.String(),
			)
		return
	}

	if status.IsRunning() {
		panic("cannot close test case with status running")
	}

	tc.status = status
	tc.result = result
	tc.err = err
	tc.endTime = time.Now()

	// Log the status to the test case logger only, the suite logger gets its
	// own line below.
	tc.log.ReplaceHooks(make(logrus.LevelHooks))
	localEntry := logrus.NewEntry(tc.log)
	if err != nil {
		localEntry = localEntry.WithError(err)
	}
	localEntry.Log(tc.status.logLevel(), tc.status.String())

	// Close this logger
	tc.log.Out = io.Discard

	entry := tc.parent.suite.Logger().
		WithField("testCase", tc.name).
		WithField("duration", tc.RunTime().String())
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Logf(tc.status.logLevel(), "%s %s", tc.name, tc.status.ColorString())
}
