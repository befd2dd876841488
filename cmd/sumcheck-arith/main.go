package main

import (
	"sumcheck/pkg/sumcheck"
	"sumcheck/suites/arith"
)

func main() {
	suite := sumcheck.CreateSuite("arith")

	// Add the built-in addition tests
	suite.AddTests(arith.AdditionTests{})

	suite.Run()
}
