package encode_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	j "github.com/goccy/go-json"
	"github.com/signadot/jspan/encode"
	"github.com/signadot/jspan/ir"
	"github.com/signadot/jspan/parse"
)

var docs = []string{
	`{}`,
	`[]`,
	`"x"`,
	`-12.5e3`,
	`{"a":1.234, "b":[1,2,3]}`,
	`{"users": [{"name": "alice", "tags": ["x", "y"]}, {"name": "bob\n\u00e9", "tags": []}]}`,
	"[\n  true,\n  false,\n  null,\n  {\"\": \"\"}\n]\n",
	`[[[[[]]]], {"deep": {"deeper": {"deepest": [0]}}}]`,
	`{"esc": "q\"uote \\ \/ \b\f\n\r\t"}`,
}

func TestEncodeCompact(t *testing.T) {
	for _, doc := range docs {
		tree, err := parse.ParseString(doc)
		if err != nil {
			t.Fatalf("%q: %v", doc, err)
		}
		want := &bytes.Buffer{}
		if err := j.Compact(want, []byte(doc)); err != nil {
			t.Fatalf("%q: %v", doc, err)
		}
		if got := encode.MustString(tree); got != want.String() {
			t.Errorf("%q:\ngot  %s\nwant %s", doc, got, want)
		}
	}
}

func TestEncodeIndent(t *testing.T) {
	tree, err := parse.ParseString(`{"a":[1,2],"b":{},"c":{"d":"e"}}`)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := encode.Encode(tree, buf, encode.Indent(2)); err != nil {
		t.Fatal(err)
	}
	want := `{
  "a": [
    1,
    2
  ],
  "b": {},
  "c": {
    "d": "e"
  }
}
`
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf, want)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, doc := range docs {
		tree, err := parse.ParseString(doc)
		if err != nil {
			t.Fatal(err)
		}
		for _, indent := range []int{0, 1, 4} {
			buf := &bytes.Buffer{}
			if err := encode.Encode(tree, buf, encode.Indent(indent)); err != nil {
				t.Fatal(err)
			}
			again, err := parse.Parse(buf.Bytes())
			if err != nil {
				t.Errorf("%q indent %d: reparse %v", doc, indent, err)
				continue
			}
			if !ir.EqualContent(tree, again) {
				t.Errorf("%q indent %d: content changed:\n%s", doc, indent, buf)
			}
		}
	}
}

func TestEncodeNode(t *testing.T) {
	tree, err := parse.ParseString(`{"a": {"b": [1, {"c": null}]}, "z": 0}`)
	if err != nil {
		t.Fatal(err)
	}
	a := tree.Lookup(tree.Root(), "a")
	buf := &bytes.Buffer{}
	if err := encode.EncodeNode(tree, a, buf); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), `{"b":[1,{"c":null}]}`+"\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	buf.Reset()
	if err := encode.EncodeNode(tree, ir.NodeID(tree.Len()), buf); err == nil {
		t.Error("no error encoding a missing node")
	}
}

func TestEncodeColors(t *testing.T) {
	tree, err := parse.ParseString(`{"k": ["v", 1, true]}`)
	if err != nil {
		t.Fatal(err)
	}
	mark := func(m string) func(string, ...any) string {
		return func(s string, _ ...any) string { return m + "(" + s + ")" }
	}
	colors := &encode.Colors{
		Default: func(s string, _ ...any) string { return s },
		Map: map[encode.Colorable]func(string, ...any) string{
			{Kind: ir.ObjectKind, Attr: encode.FieldColor}:      mark("f"),
			{Kind: ir.StringKind, Attr: encode.ValueColor}:      mark("s"),
			{Kind: ir.PrimitiveKind, Attr: encode.ValueColor}:   mark("p"),
			{Kind: ir.PrimitiveKind, Attr: encode.KeywordColor}: mark("k"),
		},
	}
	buf := &bytes.Buffer{}
	if err := encode.Encode(tree, buf, encode.EncodeColors(colors)); err != nil {
		t.Fatal(err)
	}
	want := `{f("k"):[s("v"),p(1),k(true)]}`
	if got := strings.TrimSpace(buf.String()); got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestNewColorsNoColor(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = saved }()

	doc := `{"pct": "100%d", "n": [null, 1]}`
	tree, err := parse.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := encode.Encode(tree, buf, encode.EncodeColors(encode.NewColors())); err != nil {
		t.Fatal(err)
	}
	if got, want := strings.TrimSpace(buf.String()), encode.MustString(tree); got != want {
		t.Errorf("got %s want %s", got, want)
	}
}
