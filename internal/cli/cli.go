// Package cli implements the numconv command line: it parses user input,
// calls the transcoders and renders their results.
package cli

import (
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputCBOR = "cbor"
)

// CLI defines the numconv command-line interface.
//
// Negative numbers have to be separated from flags with "--", like
//
//	numconv float -p 32 -- -2.5
type CLI struct {
	Verbose bool   `short:"v" env:"NUMCONV_VERBOSE" help:"Enable debug logging."`
	Output  string `short:"o" env:"NUMCONV_OUTPUT" enum:"text,json,cbor" default:"text" help:"Output format: text, json or cbor (hex encoded)."`

	Float FloatCmd `cmd:"" help:"Split a decimal number into IEEE 754 sign, exponent and mantissa."`
	Bits  BitsCmd  `cmd:"" help:"Compose a number from a binary or hexadecimal IEEE 754 bit pattern."`
	Radix RadixCmd `cmd:"" help:"Convert a non-negative integer between bases 2, 8, 10, 16 and 64."`
}

// Env is passed to every command.
type Env struct {
	Out    io.Writer
	Log    *zap.Logger
	Output string
}

// Env returns the environment for commands, which write to out.
func (c *CLI) Env(out io.Writer, log *zap.Logger) *Env {
	return &Env{Out: out, Log: log, Output: c.Output}
}

// Options returns kong options common for the binary and tests.
func Options() []kong.Option {
	return []kong.Option{
		kong.Name("numconv"),
		kong.Description("Inspect IEEE 754 bit patterns and convert integers between bases."),
		kong.UsageOnError(),
	}
}

// NewLogger returns a development logger, if verbose is set,
// or a production logger, which only reports warnings and errors.
func NewLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// Execute parses args and runs the selected command with the given logger.
func Execute(args []string, out io.Writer, log *zap.Logger) error {
	var c CLI
	parser, err := kong.New(&c, append(Options(), kong.Writers(out, out))...)
	if err != nil {
		return fmt.Errorf("create parser: %w", err)
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return ctx.Run(c.Env(out, log))
}
