package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/jspan/encode"
	"github.com/signadot/jspan/libdiff"
	"github.com/signadot/jspan/parse"

	"github.com/scott-cotton/cli"

	j "github.com/goccy/go-json"
)

func verify(cfg *VerifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Verify.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := 0
	err = cfg.eachInput(cc, args, func(name string, d []byte) error {
		ok, err := verifyInput(cfg, cc.Out, name, d)
		if err != nil {
			return fmt.Errorf("error verifying %s: %w", name, err)
		}
		if !ok {
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

// verifyInput checks that jspan and go-json agree on whether d is valid
// and, if it is, that the compact encodings of both agree.
func verifyInput(cfg *VerifyConfig, w io.Writer, name string, d []byte) (bool, error) {
	tree, perr := parse.Parse(d, cfg.parseOpts()...)
	valid := j.Valid(d)
	switch {
	case perr != nil && !valid:
		if !cfg.Quiet {
			fmt.Fprintf(w, "ok %s: rejected (%s)\n", name, parse.KindOf(perr))
		}
		return true, nil
	case errors.Is(perr, parse.ErrTrailing):
		// go-json's Valid tolerates some bytes after the root value.
		if !cfg.Quiet {
			fmt.Fprintf(w, "ok %s: rejected trailing data go-json accepts: %v\n", name, perr)
		}
		return true, nil
	case perr != nil:
		fmt.Fprintf(w, "FAIL %s: go-json accepts, jspan rejects: %v\n", name, perr)
		return false, nil
	case !valid:
		fmt.Fprintf(w, "FAIL %s: jspan accepts, go-json rejects\n", name)
		return false, nil
	}
	want := &bytes.Buffer{}
	if err := j.Compact(want, d); err != nil {
		return false, err
	}
	got := encode.MustString(tree)
	if got == want.String() {
		if !cfg.Quiet {
			fmt.Fprintf(w, "ok %s (%d nodes)\n", name, tree.Len())
		}
		return true, nil
	}
	fmt.Fprintf(w, "FAIL %s: encodings differ:\n%s\n", name, libdiff.DiffString(want.String(), got))
	if other, err := parse.Parse(want.Bytes(), cfg.parseOpts()...); err == nil {
		for _, c := range libdiff.Diff(other, tree) {
			fmt.Fprintf(w, "\t%s\n", c)
		}
	}
	return false, nil
}
