package core

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// MismatchError is returned by Expect when the two values differ.
type MismatchError struct {
	Expected any
	Actual   any
}

func (me *MismatchError) Error() string {
	return fmt.Sprintf("test failed: %v is not equal to %v", me.Expected, me.Actual)
}

// Expect compares expected and actual with strict equality. When they match
// the success message is logged and returned, otherwise a *MismatchError is
// returned.
func Expect[T comparable](expected, actual T) (string, error) {
	if expected != actual {
		return "", &MismatchError{Expected: expected, Actual: actual}
	}

	msg := fmt.Sprintf("Test Passed: %v is equal to the %v", expected, actual)
	logrus.Info(msg)
	return msg, nil
}
