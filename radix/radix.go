// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package radix converts non-negative integers of unbounded size
// between their textual forms in bases 2, 8, 10, 16 and 64.
//
// Base 64 is a positional numeral system over the alphabet
// A-Z, a-z, 0-9, '+', '/' (A is the digit 0). It is not RFC 4648 Base64:
// there is no padding and no byte grouping, "B" is 1 and "BA" is 64.
package radix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/avdva/numconv"
	mu "github.com/avdva/numconv/internal/mathutil"
)

// Base is one of the supported numeral bases.
type Base int

const (
	Binary  Base = 2
	Octal   Base = 8
	Decimal Base = 10
	Hex     Base = 16
	Base64  Base = 64
)

const (
	lowerDigits    = "0123456789abcdef"
	base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
)

// chunk is the largest power of a base, which fits a uint64 limb.
// Conversions handle n digits at a time with a single limb operation.
type chunk struct {
	pow uint64
	n   int
}

var (
	// Bases lists all supported bases in ascending order.
	Bases = [...]Base{Binary, Octal, Decimal, Hex, Base64}

	chunks [Base64 + 1]chunk

	// base64Values maps a byte to its base 64 digit value, or -1.
	base64Values [256]int8

	baseNames = map[string]Base{
		"bin": Binary, "oct": Octal, "dec": Decimal, "hex": Hex, "base64": Base64,
	}
)

func init() {
	for _, b := range Bases {
		pow, n := mu.MaxPow(uint64(b))
		chunks[b] = chunk{pow: pow, n: n}
	}
	for i := range base64Values {
		base64Values[i] = -1
	}
	for i := 0; i < len(base64Alphabet); i++ {
		base64Values[base64Alphabet[i]] = int8(i)
	}
}

// Valid returns true for a supported base.
func (b Base) Valid() bool {
	switch b {
	case Binary, Octal, Decimal, Hex, Base64:
		return true
	default:
		return false
	}
}

// String returns the base as a decimal number.
func (b Base) String() string {
	return strconv.Itoa(int(b))
}

// ParseBase parses a base given as a number ("16") or a name ("hex").
func ParseBase(s string) (Base, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if b, found := baseNames[s]; found {
		return b, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil || !Base(i).Valid() {
		return 0, fmt.Errorf("%w: %q", numconv.ErrUnsupportedBase, s)
	}
	return Base(i), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Base) UnmarshalText(text []byte) error {
	parsed, err := ParseBase(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (b Base) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b Base) alphabet() string {
	switch b {
	case Binary, Octal, Decimal, Hex:
		return lowerDigits[:b]
	case Base64:
		return base64Alphabet
	default:
		panic(fmt.Sprintf("radix: unsupported base %d", int(b)))
	}
}

// digit returns the value of r in base b.
// Digits of bases up to 16 are case-insensitive.
func (b Base) digit(r rune) (int, bool) {
	if r >= 0x80 {
		return 0, false
	}
	if b == Base64 {
		v := base64Values[r]
		return int(v), v >= 0
	}
	var v int
	switch {
	case '0' <= r && r <= '9':
		v = int(r - '0')
	case 'a' <= r && r <= 'f':
		v = int(r-'a') + 10
	case 'A' <= r && r <= 'F':
		v = int(r-'A') + 10
	default:
		return 0, false
	}
	return v, v < int(b)
}

// Encode returns the representation of n in base b, without leading zeros.
// Zero is encoded as a single zero digit: "0" for bases up to 16, "A" for base 64.
// Digits above 9 are lower case.
// Encode panics, if b is not a supported base.
func Encode(n Nat, b Base) string {
	alphabet := b.alphabet()
	if n.IsZero() {
		return alphabet[:1]
	}
	base := uint64(b)
	c := chunks[b]
	// floor(log2(b)) bits per digit at least.
	buf := make([]byte, n.BitLen()/(mu.BinaryDigits(base)-1)+1)
	i := len(buf)
	q := mu.Clone(n.limbs)
	for len(q) > 0 {
		var r uint64
		q, r = mu.DivWord(q, q, c.pow)
		// all but the most significant chunk are zero-padded to n digits.
		last := len(q) == 0
		for j := 0; j < c.n && (!last || r > 0); j++ {
			i--
			buf[i] = alphabet[r%base]
			r /= base
		}
	}
	return string(buf[i:])
}

// Decode parses text as a number in base b, most significant digit first.
// Leading zero digits are allowed. Returns a *numconv.ParseError
// for an empty text, or for the first character, which is not a digit of b.
func Decode(text string, b Base) (Nat, error) {
	if !b.Valid() {
		return Nat{}, fmt.Errorf("%w: %d", numconv.ErrUnsupportedBase, int(b))
	}
	if len(text) == 0 {
		return Nat{}, numconv.NewEmptyError()
	}
	base := uint64(b)
	c := chunks[b]
	var (
		z        []uint64
		acc, pow uint64 = 0, 1
		pos      int
	)
	for _, r := range text {
		pos++
		d, ok := b.digit(r)
		if !ok {
			return Nat{}, numconv.NewDigitError(r, pos)
		}
		acc = acc*base + uint64(d)
		pow *= base
		if pow == c.pow {
			z = mu.MulAddWord(z, pow, acc)
			acc, pow = 0, 1
		}
	}
	if pow > 1 {
		z = mu.MulAddWord(z, pow, acc)
	}
	return Nat{limbs: z}, nil
}

// Convert decodes text in base 'from' and encodes the result in base 'to'.
func Convert(text string, from, to Base) (string, error) {
	if !to.Valid() {
		return "", fmt.Errorf("%w: %d", numconv.ErrUnsupportedBase, int(to))
	}
	n, err := Decode(text, from)
	if err != nil {
		return "", err
	}
	return Encode(n, to), nil
}
