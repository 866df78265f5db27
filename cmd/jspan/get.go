package main

import (
	"fmt"
	"io"

	"github.com/signadot/jspan/encode"
	"github.com/signadot/jspan/ir"
	"github.com/signadot/jspan/parse"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	p, args, err := pathArg("get", args)
	if err != nil {
		return err
	}
	return cfg.eachInput(cc, args, func(name string, d []byte) error {
		if err := queryInput(cfg.MainConfig, cc.Out, d, p, false); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", name, p, err)
		}
		return nil
	})
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		return err
	}
	p, args, err := pathArg("list", args)
	if err != nil {
		return err
	}
	return cfg.eachInput(cc, args, func(name string, d []byte) error {
		if err := queryInput(cfg.MainConfig, cc.Out, d, p, true); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", name, p, err)
		}
		return nil
	})
}

func pathArg(cmd string, args []string) (*ir.Path, []string, error) {
	if len(args) == 0 {
		return nil, nil, fmt.Errorf("%w: %s requires one argument, a path", cli.ErrUsage, cmd)
	}
	path := args[0]
	if path == "" {
		return nil, nil, fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	p, err := ir.ParsePath(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return p, args[1:], nil
}

// queryInput writes each node of d matching p, preceded by its path.
func queryInput(cfg *MainConfig, w io.Writer, d []byte, p *ir.Path, all bool) error {
	tree, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	var ids []ir.NodeID
	if all {
		ids = tree.ListPath(nil, tree.Root(), p)
	} else {
		id, err := tree.GetPath(tree.Root(), p)
		if err != nil {
			return err
		}
		if id != ir.None {
			ids = append(ids, id)
		}
	}
	opts := cfg.encOpts(w, 0)
	for _, id := range ids {
		if _, err := fmt.Fprintf(w, "%s: ", tree.Path(id)); err != nil {
			return err
		}
		if err := encode.EncodeNode(tree, id, w, opts...); err != nil {
			return err
		}
	}
	return nil
}
