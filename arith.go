package num

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// This file contains the double-width word primitives and the word-vector
// loops shared by the extended types. Vectors are least-significant word
// first.

// mulWW returns the double-width product x*y as (hi, lo).
func mulWW[W constraints.Unsigned](x, y W) (hi, lo W) {
	n := WordBits[W]()
	if n == 64 {
		h, l := bits.Mul64(uint64(x), uint64(y))
		return W(h), W(l)
	}
	p := uint64(x) * uint64(y)
	return W(p >> n), W(p)
}

// divWW returns the quotient and remainder of the double-width value
// (hi, lo) divided by d. hi must be less than d.
func divWW[W constraints.Unsigned](hi, lo, d W) (q, r W) {
	n := WordBits[W]()
	if n == 64 {
		qq, rr := bits.Div64(uint64(hi), uint64(lo), uint64(d))
		return W(qq), W(rr)
	}
	u := uint64(hi)<<n | uint64(lo)
	return W(u / uint64(d)), W(u % uint64(d))
}

func leadingZeros[W constraints.Unsigned](x W) uint {
	return uint(bits.LeadingZeros64(uint64(x))) - (64 - WordBits[W]())
}

// shlVU sets z = x << s for s < WordBits and returns the bits shifted out of
// the top word. len(z) must equal len(x).
func shlVU[W constraints.Unsigned](z, x []W, s uint) (carry W) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	back := WordBits[W]() - s
	for i, w := range x {
		z[i] = w<<s | carry
		carry = w >> back
	}
	return carry
}

// shrVU sets z = x >> s for s < WordBits. len(z) must equal len(x).
func shrVU[W constraints.Unsigned](z, x []W, s uint) {
	if s == 0 {
		copy(z, x)
		return
	}
	back := WordBits[W]() - s
	for i := range x {
		w := x[i] >> s
		if i+1 < len(x) {
			w |= x[i+1] << back
		}
		z[i] = w
	}
}

// addVV adds y into x in place, where len(x) == len(y)+1, and reports
// whether a carry left the top word of x.
func addVV[W constraints.Unsigned](x, y []W) (carry bool) {
	for i, w := range y {
		x[i], carry = AddCarry(x[i], w, carry)
	}
	x[len(y)], carry = AddCarry(x[len(y)], 0, carry)
	return carry
}

// mulSubVWW subtracts y*q from x in place, where len(x) == len(y)+1, and
// reports whether the result went below zero.
func mulSubVWW[W constraints.Unsigned](x, y []W, q W) (borrow bool) {
	var carry W
	for i, w := range y {
		hi, lo := mulWW(w, q)
		var c bool
		if lo, c = AddOverflow(lo, carry); c {
			hi++
		}
		carry = hi
		x[i], borrow = SubBorrow(x[i], lo, borrow)
	}
	x[len(y)], borrow = SubBorrow(x[len(y)], carry, borrow)
	return borrow
}

// divWVW divides x by the single word d, returning the untrimmed quotient
// and the remainder.
func divWVW[W constraints.Unsigned](x []W, d W) (q []W, r W) {
	q = make([]W, len(x))
	for i := len(x) - 1; i >= 0; i-- {
		q[i], r = divWW(r, x[i], d)
	}
	return q, r
}

// divLong is schoolbook long division (Knuth, TAOCP vol. 2, 4.3.1,
// algorithm D). len(v) must be at least 2, v's top word non-zero and
// len(u) >= len(v). Results are untrimmed.
func divLong[W constraints.Unsigned](u, v []W) (q, r []W) {
	n := len(v)
	m := len(u) - n

	// Normalise so the divisor's top bit is set; this bounds the error of
	// each quotient estimate to 2.
	s := leadingZeros(v[n-1])
	vn := make([]W, n)
	shlVU(vn, v, s)
	un := make([]W, len(u)+1)
	un[len(u)] = shlVU(un[:len(u)], u, s)

	top := vn[n-1]
	q = make([]W, m+1)
	for j := m; j >= 0; j-- {
		qhat := MaxWord[W]()
		if un[j+n] < top {
			qhat, _ = divWW(un[j+n], un[j+n-1], top)
		}

		// Trial subtraction; while the estimate was too large, step it
		// down and add the divisor back until the carry cancels the borrow.
		if mulSubVWW(un[j:j+n+1], vn, qhat) {
			for {
				qhat--
				if addVV(un[j:j+n+1], vn) {
					break
				}
			}
		}
		q[j] = qhat
	}

	r = make([]W, n)
	shrVU(r, un[:n], s)
	return q, r
}
