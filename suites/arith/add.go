// Package arith holds the addition function and the test cases that check it.
package arith

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Add returns the sum of a and b.
func Add[T Number](a, b T) T {
	return a + b
}
