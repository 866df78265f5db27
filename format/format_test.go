package format

import (
	"bytes"
	"errors"
	"testing"

	j "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jspan/parse"
	"github.com/signadot/jspan/token"
)

const sample = `{"a":1.234, "b":[1,2,"x y"]}`

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("got %s want %s", g, f)
		}
	}
	for in, want := range map[string]Format{"t": TextFormat, "j": JSONFormat, "y": YAMLFormat, "h": HumonFormat} {
		if got, err := ParseFormat(in); err != nil || got != want {
			t.Errorf("%q: got %s, %v want %s", in, got, err, want)
		}
	}
	if _, err := ParseFormat("tony"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v want %v", err, ErrBadFormat)
	}
}

func TestDumpText(t *testing.T) {
	tree, err := parse.ParseString(sample)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := Dump(tree, buf, TextFormat); err != nil {
		t.Fatal(err)
	}
	want := `Object(2)
  "a": Primitive [5,10) 1.234
  "b": Array(3)
    Primitive [17,18) 1
    Primitive [19,20) 2
    String [22,25) "x y"
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDumpJSON(t *testing.T) {
	tree, err := parse.ParseString(sample)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := Dump(tree, buf, JSONFormat); err != nil {
		t.Fatal(err)
	}
	var got []Entry
	if err := j.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	want := Entries(tree)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got[3].Path != "$.b[0]" || *got[1].Name != "a" || *got[5].Value != "x y" {
		t.Errorf("entries %+v", got)
	}
}

func TestDumpYAML(t *testing.T) {
	tree, err := parse.ParseString(sample)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := Dump(tree, buf, YAMLFormat); err != nil {
		t.Fatal(err)
	}
	var got []Entry
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("%v\n%s", err, buf)
	}
	if diff := cmp.Diff(Entries(tree), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDumpTokens(t *testing.T) {
	src := []byte(`{"k": [1]}`)
	toks, err := token.Tokenize(nil, src)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := DumpTokens(src, toks, buf, JSONFormat); err != nil {
		t.Fatal(err)
	}
	var got []TokenEntry
	if err := j.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	want := []TokenEntry{
		{Type: token.TLCurl.String(), Start: 0, End: 1, Text: "{"},
		{Type: token.TString.String(), Start: 2, End: 3, Text: "k"},
		{Type: token.TColon.String(), Start: 4, End: 5, Text: ":"},
		{Type: token.TLSquare.String(), Start: 6, End: 7, Text: "["},
		{Type: token.TPrimitive.String(), Start: 7, End: 8, Text: "1"},
		{Type: token.TRSquare.String(), Start: 8, End: 9, Text: "]"},
		{Type: token.TRCurl.String(), Start: 9, End: 10, Text: "}"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := DumpTokens(src, toks[:2], buf, TextFormat); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("empty text dump")
	}
}

func TestDumpHumon(t *testing.T) {
	tree, err := parse.ParseString(sample)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := Dump(tree, buf, HumonFormat); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("a 1.234\nb [1 2 \"x y\"]\n", buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	src := []byte(sample)
	toks, err := token.Tokenize(nil, src)
	if err != nil {
		t.Fatal(err)
	}
	if err := DumpTokens(src, toks, buf, HumonFormat); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v want %v", err, ErrBadFormat)
	}
}
