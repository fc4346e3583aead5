package mathutil

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func toBig(x []uint64) *big.Int {
	result := new(big.Int)
	for i := len(x) - 1; i >= 0; i-- {
		result.Lsh(result, 64)
		result.Or(result, new(big.Int).SetUint64(x[i]))
	}
	return result
}

func randVec(r *rand.Rand, limbs int) []uint64 {
	x := make([]uint64, limbs)
	for i := range x {
		x[i] = r.Uint64()
	}
	return Norm(x)
}

func TestBinaryDigits(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, BinaryDigits(0))
	a.Equal(1, BinaryDigits(1))
	a.Equal(8, BinaryDigits(255))
	a.Equal(9, BinaryDigits(256))
	a.Equal(64, BinaryDigits(math.MaxUint64))
}

func TestNorm(t *testing.T) {
	a := assert.New(t)
	a.Empty(Norm(nil))
	a.Empty(Norm([]uint64{0, 0}))
	a.Equal([]uint64{1}, Norm([]uint64{1, 0, 0}))
	a.Equal([]uint64{0, 1}, Norm([]uint64{0, 1}))
}

func TestBitLen(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, BitLen(nil))
	a.Equal(1, BitLen([]uint64{1}))
	a.Equal(65, BitLen([]uint64{0, 1}))
	a.Equal(128, BitLen([]uint64{0, math.MaxUint64}))
}

func TestCmp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y []uint64
		res  int
	}{
		{nil, nil, 0},
		{nil, []uint64{1}, -1},
		{[]uint64{1}, nil, 1},
		{[]uint64{5, 1}, []uint64{6}, 1},
		{[]uint64{5, 1}, []uint64{6, 1}, -1},
		{[]uint64{7, 3}, []uint64{7, 3}, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, Cmp(test.x, test.y))
		})
	}
}

func TestMulAddWord(t *testing.T) {
	a := assert.New(t)
	a.Empty(MulAddWord(nil, 10, 0))
	a.Equal([]uint64{7}, MulAddWord(nil, 10, 7))
	a.Equal([]uint64{math.MaxUint64 - 1, 1}, MulAddWord([]uint64{math.MaxUint64}, 2, 0))
	// (2^64-1) * (2^64-1) + (2^64-1) = 2^128 - 2^64
	a.Equal([]uint64{0, math.MaxUint64}, MulAddWord([]uint64{math.MaxUint64}, math.MaxUint64, math.MaxUint64))

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		x := randVec(r, 1+i%5)
		m, add := r.Uint64(), r.Uint64()
		expected := toBig(x)
		expected.Mul(expected, new(big.Int).SetUint64(m))
		expected.Add(expected, new(big.Int).SetUint64(add))
		a.Equal(0, expected.Cmp(toBig(MulAddWord(Clone(x), m, add))))
	}
}

func TestDivWord(t *testing.T) {
	a := assert.New(t)
	q, rem := DivWord(nil, nil, 10)
	a.Empty(q)
	a.Equal(uint64(0), rem)

	q, rem = DivWord(nil, []uint64{0, 1}, 3) // 2^64 / 3
	a.Equal([]uint64{math.MaxUint64 / 3}, q)
	a.Equal(uint64(1), rem)

	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		x := randVec(r, 1+i%5)
		d := r.Uint64()>>uint(i%64) | 1
		expQ, expR := new(big.Int).QuoRem(toBig(x), new(big.Int).SetUint64(d), new(big.Int))
		q, rem := DivWord(x, x, d) // in place
		a.Equal(0, expQ.Cmp(toBig(q)))
		a.Equal(expR.Uint64(), rem)
	}

	a.Panics(func() { DivWord(nil, []uint64{1}, 0) })
}

func TestMaxPow(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		base uint64
		pow  uint64
		n    int
	}{
		{2, 1 << 63, 63},
		{8, 1 << 63, 21},
		{10, 10000000000000000000, 19},
		{16, 1 << 60, 15},
		{64, 1 << 60, 10},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			pow, n := MaxPow(test.base)
			a.Equal(test.pow, pow)
			a.Equal(test.n, n)
		})
	}
}
