package cli

import (
	"strings"

	"go.uber.org/zap"

	"github.com/avdva/numconv/radix"
)

// RadixCmd converts an integer between bases.
type RadixCmd struct {
	From   radix.Base `short:"f" default:"10" help:"Base of the input: 2, 8, 10, 16 or 64."`
	To     radix.Base `short:"t" default:"16" help:"Base of the output: 2, 8, 10, 16 or 64."`
	Number string     `arg:"" help:"Digits of the number, most significant first."`
}

// Run implements the radix command.
func (c *RadixCmd) Run(env *Env) error {
	in, err := radix.Parse(strings.TrimSpace(c.Number), c.From)
	if err != nil {
		env.Log.Debug("bad number", zap.Stringer("base", c.From), zap.Error(err))
		return err
	}
	out := in.In(c.To)
	env.Log.Debug("converted", zap.Int("bits", in.Magnitude.BitLen()), zap.Stringer("from", c.From), zap.Stringer("to", c.To))
	return writeRadix(env, in, out)
}
