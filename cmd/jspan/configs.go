package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jspan/encode"
	"github.com/signadot/jspan/format"
	"github.com/signadot/jspan/parse"
	"github.com/signadot/jspan/token"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Config   string `cli:"name=config desc='TOML file with default settings'"`
	Strict   bool   `cli:"name=strict desc='only space, tab, CR and LF are whitespace'"`
	Trailing bool   `cli:"name=trailing desc='accept data after the root value'"`
	Depth    int    `cli:"name=depth desc='maximum nesting depth, 0 for no limit'"`
	Nodes    int    `cli:"name=nodes desc='maximum number of nodes, 0 for no limit'"`
	Color    bool   `cli:"name=color desc='encode with color'"`
	HumonIn  bool   `cli:"name=humon-in desc='inputs are humon text, converted to JSON before parsing'"`

	// defaults for subcommands, from the config file
	FileIndent *int
	DumpFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

// optSet reports whether the option name of cmd was given on the command
// line.
func optSet(cmd *cli.Command, name string) bool {
	if cmd == nil {
		return false
	}
	for _, opt := range cmd.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{
		parse.MaxDepth(cfg.Depth),
		parse.MaxNodes(cfg.Nodes),
	}
	if cfg.Strict {
		res = append(res, parse.StrictWhitespace())
	}
	if cfg.Trailing {
		res = append(res, parse.AllowTrailing())
	}
	return res
}

func (cfg *MainConfig) tokenOpts() []token.TokenOpt {
	if cfg.Strict {
		return []token.TokenOpt{token.StrictWhitespace()}
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer, indent int) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.Indent(indent)}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	if optSet(cfg.Main, "color") {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report failures'"`

	Check *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Tokens bool `cli:"name=tokens desc='dump lexical tokens instead of nodes'"`
	Format *format.Format

	Dump *cli.Command
}

func (cfg *DumpConfig) outFormat() format.Format {
	switch {
	case cfg.Format != nil:
		return *cfg.Format
	case cfg.DumpFormat != nil:
		return *cfg.DumpFormat
	default:
		return format.TextFormat
	}
}

type FmtConfig struct {
	*MainConfig
	Indent int  `cli:"name=i desc='indent by n spaces, 0 for compact'"`
	Humon  bool `cli:"name=humon desc='write humon text instead of JSON'"`

	Fmt *cli.Command
}

func (cfg *FmtConfig) indent() int {
	if !optSet(cfg.Fmt, "i") && cfg.FileIndent != nil {
		return *cfg.FileIndent
	}
	return cfg.Indent
}

type VerifyConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report failures'"`

	Verify *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type BenchConfig struct {
	*MainConfig
	N    int  `cli:"name=n desc='iterations per file (default 100)'"`
	Gops bool `cli:"name=gops desc='start a gops agent while benchmarking'"`

	Bench *cli.Command
}
