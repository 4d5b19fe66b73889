// SPDX-License-Identifier: MIT
// Package: lvplot/numeric
//
// rho.go — Pollard's rho smallest-factor search.

package numeric

import "math/bits"

// Rho returns a non-trivial factor of n found with Pollard's rho method
// (f(x) = x² + 1, x₀ = 2), which for the small scale ranges charts work with is
// the smallest prime factor in practice. Special cases:
//
//   - n ≤ 1 returns n (nothing to factor)
//   - even n returns 2
//   - prime n returns n (the cycle closes without finding a proper divisor)
//
// The arithmetic is carried out modulo n on uint64 with 128-bit intermediate
// products, so large ranges cannot overflow.
//
// Complexity: expected O(n^¼) iterations.
func Rho(n uint64) uint64 {
	if n <= 1 {
		return n
	}
	if n%2 == 0 {
		return 2
	}

	f := func(x uint64) uint64 {
		hi, lo := bits.Mul64(x, x)
		_, r := bits.Div64(hi%n, lo, n)
		// r < n, so r+1 only needs a single wrap check.
		r++
		if r == n {
			return 0
		}

		return r
	}

	x1, x2 := uint64(2), uint64(2)
	divisor := uint64(1)
	for divisor == 1 {
		x1 = f(x1)
		x2 = f(f(x2))
		diff := x1 - x2
		if x2 > x1 {
			diff = x2 - x1
		}
		divisor = gcd(diff, n)
	}

	return divisor
}

// gcd is Euclid's algorithm; gcd(0, n) == n.
func gcd(p, q uint64) uint64 {
	for q != 0 {
		p, q = q, p%q
	}

	return p
}
