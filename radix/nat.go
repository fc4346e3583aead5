// Copyright 2020 Aleksandr Demakin. All rights reserved.

package radix

import (
	"errors"
	"math/big"

	mu "github.com/avdva/numconv/internal/mathutil"
)

var errNegative = errors.New("negative value")

// Nat is a non-negative integer of unbounded size.
// It is stored as a vector of 64-bit limbs, least significant first.
// The zero value is 0. Nat values are immutable and safe for concurrent use.
type Nat struct {
	limbs []uint64
}

// NatFromUint64 returns a Nat for u.
func NatFromUint64(u uint64) Nat {
	return Nat{limbs: mu.FromUint64(u)}
}

// NatFromBig returns a Nat for x. Returns an error for negative x.
func NatFromBig(x *big.Int) (Nat, error) {
	if x.Sign() < 0 {
		return Nat{}, errNegative
	}
	b := x.Bytes()
	limbs := make([]uint64, (len(b)+7)/8)
	for i := range b {
		shift := uint(len(b)-1-i) * 8
		limbs[shift/64] |= uint64(b[i]) << (shift % 64)
	}
	return Nat{limbs: mu.Norm(limbs)}, nil
}

// Big returns n as a new big.Int.
func (n Nat) Big() *big.Int {
	b := make([]byte, len(n.limbs)*8)
	for i, limb := range n.limbs {
		for j := 0; j < 8; j++ {
			b[len(b)-1-i*8-j] = byte(limb >> (uint(j) * 8))
		}
	}
	return new(big.Int).SetBytes(b)
}

// Uint64 returns n as a uint64. ok is false if n does not fit 64 bits.
func (n Nat) Uint64() (value uint64, ok bool) {
	switch len(n.limbs) {
	case 0:
		return 0, true
	case 1:
		return n.limbs[0], true
	default:
		return 0, false
	}
}

// IsZero returns true, if n == 0.
func (n Nat) IsZero() bool {
	return len(n.limbs) == 0
}

// BitLen returns the number of significant bits in n. BitLen of 0 is 0.
func (n Nat) BitLen() int {
	return mu.BitLen(n.limbs)
}

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (n Nat) Cmp(other Nat) int {
	return mu.Cmp(n.limbs, other.limbs)
}

// Eq returns true, if both values represent the same number.
func (n Nat) Eq(other Nat) bool {
	return n.Cmp(other) == 0
}

// String returns the decimal representation of n.
func (n Nat) String() string {
	return Encode(n, Decimal)
}
