package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/jspan/humon"

	"github.com/scott-cotton/cli"
)

// eachInput reads each file named in args, or stdin if there are none, and
// calls fn with its name and contents. "-" names stdin. With -humon-in the
// contents are converted from humon to JSON first.
func (cfg *MainConfig) eachInput(cc *cli.Context, args []string, fn func(name string, d []byte) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		d, err := readInput(cc, arg)
		if err != nil {
			return err
		}
		if cfg.HumonIn {
			if d, err = humon.ToJSON(bytes.NewReader(d)); err != nil {
				return fmt.Errorf("error converting %s: %w", arg, err)
			}
		}
		if err := fn(arg, d); err != nil {
			return err
		}
	}
	return nil
}

func readInput(cc *cli.Context, file string) ([]byte, error) {
	var r io.Reader = cc.In
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	return d, nil
}
