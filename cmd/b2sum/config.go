package main

import (
	"encoding/hex"

	"github.com/gtank/blake2b/blake2b"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// options is the resolved command line configuration.
type options struct {
	cfg   blake2b.Config
	check bool
	tag   bool
	// lengthSet records an explicit --length; check mode otherwise takes the
	// digest size from each checksum line.
	lengthSet bool
}

func optionsFromContext(ctx *cli.Context) (*options, error) {
	bits := ctx.Uint(lengthFlag.Name)
	if bits == 0 || bits%8 != 0 || bits > 8*blake2b.DigestBytesMax {
		return nil, errors.Errorf("invalid length %d: must be a multiple of 8 between 8 and %d", bits, 8*blake2b.DigestBytesMax)
	}
	opts := &options{
		cfg:       blake2b.Config{Size: int(bits / 8)},
		check:     ctx.Bool(checkFlag.Name),
		tag:       ctx.Bool(tagFlag.Name),
		lengthSet: ctx.IsSet(lengthFlag.Name),
	}
	if opts.check && opts.tag {
		return nil, errors.New("the --tag option is meaningless when verifying checksums")
	}

	var err error
	if opts.cfg.Key, err = decodeHexFlag(ctx, keyFlag); err != nil {
		return nil, err
	}
	if opts.cfg.Salt, err = decodeHexFlag(ctx, saltFlag); err != nil {
		return nil, err
	}
	if opts.cfg.Personal, err = decodeHexFlag(ctx, personalFlag); err != nil {
		return nil, err
	}

	// Surface parameter errors before any file is opened.
	if _, err := blake2b.New(&opts.cfg); err != nil {
		return nil, err
	}
	return opts, nil
}

// decodeHexFlag returns nil when the flag is unset so the parameter is absent.
func decodeHexFlag(ctx *cli.Context, flag *cli.StringFlag) ([]byte, error) {
	s := ctx.String(flag.Name)
	if s == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --%s", flag.Name)
	}
	return b, nil
}
