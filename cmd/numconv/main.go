// Command numconv inspects IEEE 754 bit patterns and converts integers between bases.
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/avdva/numconv/internal/cli"
)

func main() {
	var c cli.CLI
	ctx := kong.Parse(&c, cli.Options()...)

	logger, err := cli.NewLogger(c.Verbose)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(c.Env(os.Stdout, logger))
	if err != nil {
		logger.Debug("command failed", zap.String("command", ctx.Command()), zap.Error(err))
	}
	_ = logger.Sync()
	ctx.FatalIfErrorf(err)
}
