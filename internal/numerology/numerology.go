// Package numerology provides the small integer functions shared by every
// engine: digit reduction, digital roots, primality, and the figurate-number
// checks used by the jafr pattern analysis.
package numerology

import "math"

// Reduce collapses n to a single digit in [1, 9] by repeated digit summing.
// Zero wraps around to 9 rather than terminating at 0. Behavior for negative
// inputs is undefined; callers must not pass negative numbers.
func Reduce(n int) int {
	for n > 9 {
		n = digitSum(n)
	}
	if n == 0 {
		return 9
	}
	return n
}

// DigitalRoot collapses n by repeated digit summing without the zero wrap:
// DigitalRoot(0) == 0. This is the jafr tradition's root, distinct from
// Reduce which never yields 0.
func DigitalRoot(n int) int {
	for n >= 10 {
		n = digitSum(n)
	}
	return n
}

func digitSum(n int) int {
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// IsPrime reports whether n is prime. Trial division is fine here: inputs
// are letter totals, never larger than a few tens of thousands.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// IsTriangular reports whether n is a triangular number k(k+1)/2.
func IsTriangular(n int) bool {
	if n < 0 {
		return false
	}
	k := int((-1 + math.Sqrt(float64(1+8*n))) / 2)
	return k*(k+1)/2 == n
}

// IsPerfectSquare reports whether n is a perfect square.
func IsPerfectSquare(n int) bool {
	if n < 0 {
		return false
	}
	root := int(math.Sqrt(float64(n)))
	return root*root == n
}

// IsPentagonal reports whether n is a pentagonal number k(3k-1)/2.
func IsPentagonal(n int) bool {
	if n < 0 {
		return false
	}
	k := int((1 + math.Sqrt(float64(1+24*n))) / 6)
	return k*(3*k-1)/2 == n
}
