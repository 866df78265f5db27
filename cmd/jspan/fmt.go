package main

import (
	"fmt"
	"io"

	"github.com/signadot/jspan/encode"
	"github.com/signadot/jspan/parse"

	"github.com/scott-cotton/cli"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.indent() < 0 {
		return fmt.Errorf("%w: -i must not be negative", cli.ErrUsage)
	}
	return cfg.eachInput(cc, args, func(name string, d []byte) error {
		if err := fmtInput(cfg, cc.Out, d); err != nil {
			return fmt.Errorf("error processing %s: %w", name, err)
		}
		return nil
	})
}

func fmtInput(cfg *FmtConfig, w io.Writer, d []byte) error {
	tree, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	if cfg.Humon {
		return encode.EncodeHumon(tree, w, cfg.encOpts(w, 0)...)
	}
	return encode.Encode(tree, w, cfg.encOpts(w, cfg.indent())...)
}
