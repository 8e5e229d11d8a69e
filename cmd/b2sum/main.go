// b2sum prints or checks BLAKE2b checksums. Its output is compatible with
// the coreutils tool of the same name, extended with salt and
// personalization parameters.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	lengthFlag = &cli.UintFlag{
		Name:    "length",
		Aliases: []string{"l"},
		Usage:   "digest length in bits; a multiple of 8 between 8 and 512",
		Value:   512,
		EnvVars: []string{"B2SUM_LENGTH"},
	}
	keyFlag = &cli.StringFlag{
		Name:    "key",
		Usage:   "hex-encoded MAC key, up to 64 bytes",
		EnvVars: []string{"B2SUM_KEY"},
	}
	saltFlag = &cli.StringFlag{
		Name:    "salt",
		Usage:   "hex-encoded salt, exactly 16 bytes",
		EnvVars: []string{"B2SUM_SALT"},
	}
	personalFlag = &cli.StringFlag{
		Name:    "personal",
		Usage:   "hex-encoded personalization, exactly 16 bytes",
		EnvVars: []string{"B2SUM_PERSONAL"},
	}
	checkFlag = &cli.BoolFlag{
		Name:    "check",
		Aliases: []string{"c"},
		Usage:   "read checksums from the FILEs and check them",
	}
	tagFlag = &cli.BoolFlag{
		Name:  "tag",
		Usage: "create a BSD-style checksum",
	}
	verbosityFlag = &cli.StringFlag{
		Name:    "verbosity",
		Usage:   "log level (panic, fatal, error, warn, info, debug, trace)",
		Value:   "warn",
		EnvVars: []string{"B2SUM_VERBOSITY"},
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:      "b2sum",
		Usage:     "print or check BLAKE2b checksums",
		ArgsUsage: "[FILE...]",
		Flags: []cli.Flag{
			lengthFlag,
			keyFlag,
			saltFlag,
			personalFlag,
			checkFlag,
			tagFlag,
			verbosityFlag,
		},
		Before: setupLogging,
		Action: run,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) error {
	lvl, err := logrus.ParseLevel(ctx.String(verbosityFlag.Name))
	if err != nil {
		return err
	}
	logrus.SetOutput(ctx.App.ErrWriter)
	logrus.SetLevel(lvl)
	return nil
}

func run(ctx *cli.Context) error {
	opts, err := optionsFromContext(ctx)
	if err != nil {
		return err
	}
	files := ctx.Args().Slice()
	if len(files) == 0 {
		files = []string{"-"}
	}
	if opts.check {
		return checkFiles(ctx.App.Writer, os.Stdin, files, opts)
	}
	return hashFiles(ctx.App.Writer, os.Stdin, files, opts)
}
