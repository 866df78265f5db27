package main

import (
	"fmt"
	"io"

	"github.com/signadot/jspan/format"
	"github.com/signadot/jspan/parse"
	"github.com/signadot/jspan/token"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	n := 0
	return cfg.eachInput(cc, args, func(name string, d []byte) error {
		if n > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		n++
		if err := dumpInput(cfg, cc.Out, d); err != nil {
			return fmt.Errorf("error processing %s: %w", name, err)
		}
		return nil
	})
}

func dumpInput(cfg *DumpConfig, w io.Writer, d []byte) error {
	f := cfg.outFormat()
	if cfg.Tokens {
		toks, err := token.Tokenize(nil, d, cfg.tokenOpts()...)
		if err != nil {
			return err
		}
		return format.DumpTokens(d, toks, w, f)
	}
	tree, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	return format.Dump(tree, w, f)
}
