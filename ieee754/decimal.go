// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	bigFive = big.NewInt(5)
)

// ExactDecimal returns the exact decimal value of the bit pattern, without any rounding.
// Every finite binary floating-point number has a finite decimal expansion:
// m * 2^-k == m * 5^k * 10^-k.
// ok is false for NaNs and infinities. Both zeros are returned as decimal zero.
func (fp FloatParts) ExactDecimal() (d decimal.Decimal, ok bool) {
	if !fp.IsFinite() {
		return decimal.Decimal{}, false
	}
	l := fp.Precision.layout()
	sig := fp.Mantissa
	e := int(fp.Exponent)
	if e == 0 {
		e = 1 // subnormals share the exponent of the smallest normal numbers.
	} else {
		sig |= 1 << l.mantBits
	}
	e -= l.bias() + int(l.mantBits)

	coef := new(big.Int).SetUint64(sig)
	if e >= 0 {
		d = decimal.NewFromBigInt(coef.Lsh(coef, uint(e)), 0)
	} else {
		pow := new(big.Int).Exp(bigFive, big.NewInt(int64(-e)), nil)
		d = decimal.NewFromBigInt(coef.Mul(coef, pow), int32(e))
	}
	if fp.Sign == 1 {
		d = d.Neg()
	}
	return d, true
}
