// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"math"

	"github.com/x448/float16"
)

// toBits narrows v to p with round-to-nearest-even and returns its bit pattern.
func toBits(v float64, p Precision) uint64 {
	switch p {
	case Half:
		return uint64(halfBits(v))
	case Single:
		return uint64(math.Float32bits(float32(v)))
	default:
		return math.Float64bits(v)
	}
}

// fromBits returns the value of the pattern as a float64, which is exact for every precision.
func fromBits(bits uint64, p Precision) float64 {
	switch p {
	case Half:
		return float64(float16.Frombits(uint16(bits)).Float32())
	case Single:
		return float64(math.Float32frombits(uint32(bits)))
	default:
		return math.Float64frombits(bits)
	}
}

// halfBits rounds v to binary16 in a single step.
// Going through float32 first would round twice and may be off by one ulp.
func halfBits(v float64) uint16 {
	const (
		mantBits     = 52
		halfMantBits = 10
		halfBias     = 15
	)
	b := math.Float64bits(v)
	sign := uint16(b>>48) & 0x8000
	exp := int(b>>mantBits) & 0x7ff
	mant := b & (1<<mantBits - 1)
	switch exp {
	case 0x7ff:
		if mant == 0 {
			return sign | 0x7c00
		}
		// quiet NaN, keeping the high payload bits.
		return sign | 0x7e00 | uint16(mant>>(mantBits-halfMantBits))
	case 0:
		// float64 subnormals are far below the smallest half subnormal.
		return sign
	}
	e := exp - 1023
	sig := mant | 1<<mantBits
	he := e + halfBias
	if he >= 0x1f {
		return sign | 0x7c00
	}
	var shift uint
	if he > 0 {
		shift = mantBits - halfMantBits
	} else {
		// subnormal: the value is sig * 2^(e-52), the half unit is 2^-24.
		shift = uint(mantBits - halfMantBits - halfBias + 1 - e)
		if shift >= 64 {
			return sign
		}
	}
	m := sig >> shift
	rem := sig & (1<<shift - 1)
	halfway := uint64(1) << (shift - 1)
	if rem > halfway || rem == halfway && m&1 == 1 {
		m++
	}
	if he > 0 {
		// m carries the implicit bit, so a mantissa overflow moves into the exponent,
		// and an exponent overflow produces an infinity.
		return sign | uint16(uint64(he-1)<<halfMantBits+m)
	}
	// m == 1<<10 is the smallest normal number, which is encoded the same way.
	return sign | uint16(m)
}
