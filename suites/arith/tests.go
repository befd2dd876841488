package arith

import (
	"sumcheck/pkg/sumcheck"
)

// AdditionTests registers the built-in addition test cases.
type AdditionTests struct{}

func (AdditionTests) Name() string {
	return "addition"
}

func (AdditionTests) RegisterTestCases(r sumcheck.TestRegistrar) error {
	r.AddTest("Addition of 5 and 3 equals 8", func() (string, error) {
		return sumcheck.Expect(Add(5, 3), 8)
	})

	r.AddTest("Addition of -1 and -4 equals -5", func() (string, error) {
		return sumcheck.Expect(Add(-1, -4), -5)
	})

	// The expected value is wrong (-1 + 3 is 2). It is kept as is so the
	// suite keeps reporting one failure.
	r.AddTest("Addition of -1 and 3 equals -5", func() (string, error) {
		return sumcheck.Expect(Add(-1, 3), -5)
	})

	return nil
}
