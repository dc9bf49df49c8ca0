// Package sequence computes terms of the two-accumulator additive recurrence
// used by the fib fixture. Terms are indexed from 1, so Compute(1) and
// Compute(2) are both 1.
package sequence

import "math/big"

// Compute returns the n-th term using 32-bit signed accumulators.
//
// Overflow wraps the same way a C int does on the platforms the fixture was
// written for, which makes terms from n=47 onwards negative or truncated.
// Use ComputeBig for the true value.
//
// For n <= 0 the first comparison already succeeds and 1 is returned.
func Compute(n int) int32 {
	counter := 1
	var a, b int32 = 1, 0

	for {
		a += b
		counter++
		if counter > n {
			return a
		}

		b += a
		counter++
		if counter > n {
			return b
		}
	}
}

// ComputeBig is Compute with arbitrary precision accumulators.
func ComputeBig(n int) *big.Int {
	counter := 1
	a, b := big.NewInt(1), big.NewInt(0)

	for {
		a.Add(a, b)
		counter++
		if counter > n {
			return a
		}

		b.Add(b, a)
		counter++
		if counter > n {
			return b
		}
	}
}

// Terms returns Compute(i) for every i in [from, to]. An empty range gives
// an empty slice.
func Terms(from, to int) []int32 {
	if to < from {
		return []int32{}
	}

	res := make([]int32, 0, to-from+1)
	for i := from; i <= to; i++ {
		res = append(res, Compute(i))
	}
	return res
}
