package cli

import (
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/avdva/numconv/ieee754"
)

// FloatCmd decomposes a decimal number.
type FloatCmd struct {
	Precision ieee754.Precision `short:"p" env:"NUMCONV_PRECISION" default:"64" help:"Precision in bits: 16, 32 or 64."`
	Value     string            `arg:"" help:"Decimal number, nan, inf or -inf."`
}

// Run implements the float command.
func (c *FloatCmd) Run(env *Env) error {
	v, err := ParseDecimal(c.Value)
	if err != nil {
		return err
	}
	parts := ieee754.Decompose(v, c.Precision)
	env.Log.Debug("decomposed",
		zap.Float64("input", v),
		zap.Stringer("precision", c.Precision),
		zap.String("hex", parts.HexText),
		zap.Stringer("special", parts.Special))
	return writeParts(env, parts)
}

// BitsCmd composes a number from a bit pattern.
type BitsCmd struct {
	Precision ieee754.Precision `short:"p" env:"NUMCONV_PRECISION" default:"64" help:"Precision in bits: 16, 32 or 64."`
	Format    string            `short:"f" enum:"auto,binary,hex" default:"auto" help:"Pattern format: auto, binary or hex."`
	Pattern   []string          `arg:"" help:"Bit pattern, groups may be passed as separate arguments."`
}

// Run implements the bits command.
func (c *BitsCmd) Run(env *Env) error {
	text := strings.Join(c.Pattern, " ")
	format := c.Format
	if format == "auto" {
		format = detectFormat(text, c.Precision)
	}
	var (
		bits uint64
		err  error
	)
	if format == "hex" {
		bits, err = ieee754.ParseHex(text, c.Precision)
	} else {
		bits, err = ieee754.ParseBinary(text, c.Precision)
	}
	if err != nil {
		env.Log.Debug("bad pattern", zap.String("format", format), zap.String("pattern", text), zap.Error(err))
		return fmt.Errorf("parse %s pattern: %w", format, err)
	}
	return writeParts(env, ieee754.FromBits(bits, c.Precision))
}

// detectFormat treats text as hex, if it has a 0x prefix, or exactly p/4 digits.
func detectFormat(text string, p ieee754.Precision) string {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X") {
		return "hex"
	}
	digits := 0
	for _, r := range trimmed {
		if !unicode.IsSpace(r) {
			digits++
		}
	}
	if digits == int(p)/4 {
		return "hex"
	}
	return "binary"
}
