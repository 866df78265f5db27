package main

import (
	"fmt"
	"io"

	"github.com/signadot/jspan/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := 0
	err = cfg.eachInput(cc, args, func(name string, d []byte) error {
		if !checkInput(cfg, cc.Out, name, d) {
			failed++
		}
		return nil
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkInput(cfg *CheckConfig, w io.Writer, name string, d []byte) bool {
	tree, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		fmt.Fprintf(w, "%s: %s: %v\n", name, parse.KindOf(err), err)
		return false
	}
	if !cfg.Quiet {
		fmt.Fprintf(w, "ok %s (%d nodes)\n", name, tree.Len())
	}
	return true
}
