package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/signadot/jspan/format"
)

// jspan config file key mapping to command settings.
type fileConfig struct {
	MaxDepth   int    `toml:"max_depth"`
	MaxNodes   int    `toml:"max_nodes"`
	Strict     bool   `toml:"strict_whitespace"`
	Trailing   bool   `toml:"allow_trailing"`
	Color      bool   `toml:"color"`
	Indent     int    `toml:"indent"`
	DumpFormat string `toml:"dump_format"`
	HumonInput bool   `toml:"humon_input"`
}

// loadConfigFile overlays the settings of the TOML file path on cfg.
// Settings given on the command line take precedence.
func (cfg *MainConfig) loadConfigFile(path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		theLog.Warn("unknown config key", "file", path, "key", key.String())
	}
	if meta.IsDefined("max_depth") && !optSet(cfg.Main, "depth") {
		cfg.Depth = raw.MaxDepth
	}
	if meta.IsDefined("max_nodes") && !optSet(cfg.Main, "nodes") {
		cfg.Nodes = raw.MaxNodes
	}
	if meta.IsDefined("strict_whitespace") && !optSet(cfg.Main, "strict") {
		cfg.Strict = raw.Strict
	}
	if meta.IsDefined("allow_trailing") && !optSet(cfg.Main, "trailing") {
		cfg.Trailing = raw.Trailing
	}
	if meta.IsDefined("color") && !optSet(cfg.Main, "color") {
		cfg.Color = raw.Color
	}
	if meta.IsDefined("humon_input") && !optSet(cfg.Main, "humon-in") {
		cfg.HumonIn = raw.HumonInput
	}
	if meta.IsDefined("indent") {
		indent := raw.Indent
		cfg.FileIndent = &indent
	}
	if meta.IsDefined("dump_format") {
		f, err := format.ParseFormat(raw.DumpFormat)
		if err != nil {
			return fmt.Errorf("load config %s: %w", path, err)
		}
		cfg.DumpFormat = &f
	}
	return nil
}
