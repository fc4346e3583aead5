// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avdva/numconv"
)

// Precision selects an IEEE 754 binary interchange format by its width in bits.
type Precision int

const (
	// Half is binary16: 1 sign bit, 5 exponent bits, 10 mantissa bits.
	Half Precision = 16
	// Single is binary32: 1 sign bit, 8 exponent bits, 23 mantissa bits.
	Single Precision = 32
	// Double is binary64: 1 sign bit, 11 exponent bits, 52 mantissa bits.
	Double Precision = 64
)

type layout struct {
	expBits  uint
	mantBits uint
}

func (l layout) width() uint {
	return 1 + l.expBits + l.mantBits
}

func (l layout) expMask() uint64 {
	return 1<<l.expBits - 1
}

func (l layout) mantMask() uint64 {
	return 1<<l.mantBits - 1
}

func (l layout) bias() int {
	return 1<<(l.expBits-1) - 1
}

var (
	halfLayout   = layout{expBits: 5, mantBits: 10}
	singleLayout = layout{expBits: 8, mantBits: 23}
	doubleLayout = layout{expBits: 11, mantBits: 52}
)

// Valid returns true for Half, Single and Double.
func (p Precision) Valid() bool {
	_, ok := p.lookup()
	return ok
}

func (p Precision) lookup() (layout, bool) {
	switch p {
	case Half:
		return halfLayout, true
	case Single:
		return singleLayout, true
	case Double:
		return doubleLayout, true
	default:
		return layout{}, false
	}
}

func (p Precision) layout() layout {
	l, ok := p.lookup()
	if !ok {
		panic(fmt.Sprintf("ieee754: unsupported precision %d", int(p)))
	}
	return l
}

func (p Precision) check() error {
	if !p.Valid() {
		return fmt.Errorf("%w: %d", numconv.ErrUnsupportedPrecision, int(p))
	}
	return nil
}

// ExponentBits returns the width of the exponent field.
func (p Precision) ExponentBits() int {
	return int(p.layout().expBits)
}

// MantissaBits returns the width of the stored mantissa field.
func (p Precision) MantissaBits() int {
	return int(p.layout().mantBits)
}

// String returns the width in bits.
func (p Precision) String() string {
	return strconv.Itoa(int(p))
}

// ParsePrecision parses "16", "32", "64" or the format names "half", "single", "double".
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "16", "half", "float16":
		return Half, nil
	case "32", "single", "float32":
		return Single, nil
	case "64", "double", "float64":
		return Double, nil
	default:
		return 0, fmt.Errorf("%w: %q", numconv.ErrUnsupportedPrecision, s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Precision) UnmarshalText(text []byte) error {
	parsed, err := ParsePrecision(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Bias returns the exponent bias: 15 for Half, 127 for Single, 1023 for Double.
// Bias panics for an unsupported precision.
func Bias(p Precision) int {
	return p.layout().bias()
}

// UnbiasedExponent returns exponent - Bias(p).
// For zeros and subnormals the result is not the effective exponent of the value,
// the stored field is just shifted by the bias.
func UnbiasedExponent(exponent uint, p Precision) int {
	return int(exponent) - Bias(p)
}
