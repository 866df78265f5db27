package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jspan/format"
	"github.com/signadot/jspan/ir"
	"github.com/signadot/jspan/parse"
)

func testConfig() *MainConfig {
	return &MainConfig{Depth: parse.DefaultMaxDepth}
}

func TestLoadConfigFile(t *testing.T) {
	cfg := testConfig()
	if err := cfg.loadConfigFile("testdata/jspan.toml"); err != nil {
		t.Fatal(err)
	}
	if cfg.Depth != 8 || cfg.Nodes != 1000 || !cfg.Strict || cfg.Trailing || !cfg.HumonIn {
		t.Errorf("got %+v", cfg)
	}
	if cfg.FileIndent == nil || *cfg.FileIndent != 4 {
		t.Errorf("indent %v", cfg.FileIndent)
	}
	dcfg := &DumpConfig{MainConfig: cfg}
	if dcfg.outFormat() != format.YAMLFormat {
		t.Errorf("dump format %s", dcfg.outFormat())
	}
	fcfg := &FmtConfig{MainConfig: cfg}
	if fcfg.indent() != 4 {
		t.Errorf("fmt indent %d", fcfg.indent())
	}

	cfg = testConfig()
	if err := cfg.loadConfigFile("testdata/bad_format.toml"); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("got %v want %v", err, format.ErrBadFormat)
	}
	if err := cfg.loadConfigFile("testdata/missing.toml"); err == nil {
		t.Error("no error for missing file")
	}
}

func TestConfigLimits(t *testing.T) {
	cfg := testConfig()
	if err := cfg.loadConfigFile("testdata/jspan.toml"); err != nil {
		t.Fatal(err)
	}
	deep := strings.Repeat("[", 9) + strings.Repeat("]", 9)
	_, err := parse.ParseString(deep, cfg.parseOpts()...)
	if parse.KindOf(err) != parse.TooDeep {
		t.Errorf("got %v want %s", err, parse.TooDeep)
	}
	_, err = parse.ParseString("[\x01]", cfg.parseOpts()...)
	if parse.KindOf(err) != parse.InvalidSyntax {
		t.Errorf("strict: got %v", err)
	}
}

func TestCheckInput(t *testing.T) {
	cfg := &CheckConfig{MainConfig: testConfig()}
	buf := &bytes.Buffer{}
	if !checkInput(cfg, buf, "a.json", []byte(`{"a": [1, 2]}`)) {
		t.Errorf("valid input failed: %s", buf)
	}
	if got, want := buf.String(), "ok a.json (4 nodes)\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	buf.Reset()
	if checkInput(cfg, buf, "b.json", []byte(`{"a": [1, 2`)) {
		t.Error("invalid input passed")
	}
	if !strings.HasPrefix(buf.String(), "b.json: IncompleteInput: ") {
		t.Errorf("got %q", buf)
	}
}

func TestVerifyInput(t *testing.T) {
	cfg := &VerifyConfig{MainConfig: testConfig()}
	tests := []struct {
		in string
		ok bool
	}{
		{in: `{"a": [1, 2, {"b": null}]}`, ok: true},
		{in: "[\n  \"x\",\n  true\n]\n", ok: true},
		{in: `[1,]`, ok: true},
		{in: `[tru]`, ok: false},
		{in: `{"a":1}}`, ok: true},
	}
	for _, test := range tests {
		buf := &bytes.Buffer{}
		ok, err := verifyInput(cfg, buf, "in", []byte(test.in))
		if err != nil {
			t.Fatal(err)
		}
		if ok != test.ok {
			t.Errorf("%q: got %t want %t:\n%s", test.in, ok, test.ok, buf)
		}
	}

	buf := &bytes.Buffer{}
	if _, err := verifyInput(cfg, buf, "in", []byte(`{"a":1}}`)); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "ok in: rejected trailing data") {
		t.Errorf("trailing: got %q", buf)
	}
}

func TestDumpInput(t *testing.T) {
	f := format.JSONFormat
	cfg := &DumpConfig{MainConfig: testConfig(), Format: &f}
	buf := &bytes.Buffer{}
	if err := dumpInput(cfg, buf, []byte(`[1]`)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"path": "$[0]"`) {
		t.Errorf("got %s", buf)
	}
	cfg.Tokens = true
	buf.Reset()
	if err := dumpInput(cfg, buf, []byte(`[1]`)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"text": "1"`) {
		t.Errorf("got %s", buf)
	}
}

func TestQueryInput(t *testing.T) {
	cfg := testConfig()
	doc := []byte(`{"a": [{"b": 1}, {"b": "two"}], "c": {"b": true}}`)
	tests := []struct {
		path string
		all  bool
		want string
	}{
		{path: "$.a[1]", want: "$.a[1]: {\"b\":\"two\"}\n"},
		{path: "$.x", want: ""},
		{path: "$.a[*].b", all: true, want: "$.a[0].b: 1\n$.a[1].b: \"two\"\n"},
		{path: "$...b", all: true, want: "$.a[0].b: 1\n$.a[1].b: \"two\"\n$.c.b: true\n"},
	}
	for _, test := range tests {
		p, rest, err := pathArg("test", []string{test.path})
		if err != nil || len(rest) != 0 {
			t.Fatal(err)
		}
		buf := &bytes.Buffer{}
		if err := queryInput(cfg, buf, doc, p, test.all); err != nil {
			t.Fatal(err)
		}
		if buf.String() != test.want {
			t.Errorf("%s: got %q want %q", test.path, buf, test.want)
		}
	}
	if _, _, err := pathArg("test", []string{".a"}); err != nil {
		t.Errorf("path without $: %v", err)
	}
	if _, _, err := pathArg("test", []string{"$["}); !errors.Is(err, ir.ErrPath) {
		t.Errorf("got %v want %v", err, ir.ErrPath)
	}
}

func TestBenchInput(t *testing.T) {
	res, err := benchInput(testConfig(), []byte(`{"a": [1, 2, 3]}`), 3)
	if err != nil {
		t.Fatal(err)
	}
	if res.nodes != 5 || res.n != 3 {
		t.Errorf("got %+v", res)
	}
	buf := &bytes.Buffer{}
	if err := res.write(buf, "x.json"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "x.json: 16 B, 5 nodes, 3 runs: ") {
		t.Errorf("got %q", buf)
	}
}

func TestFmtInputHumon(t *testing.T) {
	cfg := &FmtConfig{MainConfig: testConfig(), Humon: true}
	buf := &bytes.Buffer{}
	if err := fmtInput(cfg, buf, []byte(`{"a": [1, "x y"], "b": {"c": null}}`)); err != nil {
		t.Fatal(err)
	}
	want := "a [1 \"x y\"]\nb {\n\tc null\n}\n"
	if buf.String() != want {
		t.Errorf("got %q want %q", buf, want)
	}
}

func TestEachInputHumon(t *testing.T) {
	cfg := testConfig()
	cfg.HumonIn = true
	cc := &cli.Context{In: io.NopCloser(strings.NewReader("name alice\ntags [a \"b c\"]\n"))}
	var got []string
	err := cfg.eachInput(cc, nil, func(name string, d []byte) error {
		got = append(got, name+" "+string(d))
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if want := `- {"name":"alice","tags":["a","b c"]}`; len(got) != 1 || got[0] != want {
		t.Errorf("got %q want %q", got, want)
	}

	cc.In = io.NopCloser(strings.NewReader("a [1"))
	err = cfg.eachInput(cc, nil, func(string, []byte) error { return nil })
	if err == nil || !strings.Contains(err.Error(), "error converting -") {
		t.Errorf("got %v", err)
	}
}
