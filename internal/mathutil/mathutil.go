// Package mathutil implements unbounded non-negative integer arithmetic
// on little-endian vectors of 64-bit limbs.
//
// A normalized vector has no high zero limbs, so zero is an empty vector.
// Functions below never keep references to their arguments, except for z,
// which is used as the storage for the result, if it is large enough.
package mathutil

import (
	"math/bits"
	"unsafe"
)

const wordBits = int(8 * unsafe.Sizeof(uint64(0)))

// BinaryDigits returns the number of bits needed to represent 'value'.
func BinaryDigits(value uint64) int {
	return wordBits - bits.LeadingZeros64(value)
}

// Norm removes high zero limbs.
func Norm(x []uint64) []uint64 {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

// FromUint64 returns a normalized vector for u.
func FromUint64(u uint64) []uint64 {
	if u == 0 {
		return nil
	}
	return []uint64{u}
}

// Clone returns a copy of x.
func Clone(x []uint64) []uint64 {
	if len(x) == 0 {
		return nil
	}
	z := make([]uint64, len(x))
	copy(z, x)
	return z
}

// BitLen returns the number of significant bits of a normalized x.
func BitLen(x []uint64) int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*wordBits + BinaryDigits(x[len(x)-1])
}

// Cmp compares normalized vectors.
// Returns -1 if x < y, 0 if x == y, 1 if x > y.
func Cmp(x, y []uint64) int {
	switch {
	case len(x) > len(y):
		return 1
	case len(x) < len(y):
		return -1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] > y[i]:
			return 1
		case x[i] < y[i]:
			return -1
		}
	}
	return 0
}

// MulAddWord calculates z = z*m + a in place, and returns z,
// which may be reallocated to hold a carry.
func MulAddWord(z []uint64, m, a uint64) []uint64 {
	carry := a
	for i, w := range z {
		hi, lo := bits.Mul64(w, m)
		var c uint64
		lo, c = bits.Add64(lo, carry, 0)
		z[i] = lo
		carry = hi + c // w*m + carry < 2^128, so this never overflows.
	}
	if carry != 0 {
		z = append(z, carry)
	}
	return Norm(z)
}

// DivWord calculates quo = x / d and rem = x % d.
// quo is stored in z, if it has enough capacity, z and x may be the same slice.
// If d == 0, DivWord panics.
func DivWord(z, x []uint64, d uint64) (quo []uint64, rem uint64) {
	if d == 0 {
		panic("mathutil: division by zero")
	}
	if cap(z) < len(x) {
		z = make([]uint64, len(x))
	}
	z = z[:len(x)]
	for i := len(x) - 1; i >= 0; i-- {
		z[i], rem = bits.Div64(rem, x[i], d)
	}
	return Norm(z), rem
}

// MaxPow returns the largest power of base, which fits a uint64, and its exponent.
// base must be > 1.
func MaxPow(base uint64) (pow uint64, n int) {
	pow = 1
	for {
		hi, lo := bits.Mul64(pow, base)
		if hi != 0 {
			return pow, n
		}
		pow = lo
		n++
	}
}
