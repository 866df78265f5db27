package parse

import (
	"bytes"
	"testing"

	"github.com/signadot/jspan/encode"
	"github.com/signadot/jspan/ir"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		// leaves
		`null`,
		`true`,
		`42`,
		`-1e10`,
		`""`,
		`"hello"`,
		`"esc \" \\ \/ \b \f \n \r \t é"`,

		// containers
		`[]`,
		`{}`,
		`[1, 2, 3]`,
		`[[nested], [arrays]]`,
		`{"a": 1, "b": [true, {"c": null}]}`,
		`{"users": [{"name": "alice"}, {"name": "bob"}]}`,

		// malformed
		`"abc`,
		`{"a" 1}`,
		`[1,2,]`,
		`"\q"`,
		`"\u12"`,
		`{"a":1}}`,
		"[\x01\x02]",
		"[1\x7f]",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tree, err := Parse(data)
		if err != nil {
			if KindOf(err) == 0 {
				t.Fatalf("%q: untyped error %v", data, err)
			}
			return
		}
		if err := tree.Validate(); err != nil {
			t.Fatalf("%q: %v", data, err)
		}
		again, err := Parse(data)
		if err != nil || !ir.Equal(tree, again) {
			t.Fatalf("%q: second parse differs (%v)", data, err)
		}

		var buf bytes.Buffer
		if err := encode.Encode(tree, &buf); err != nil {
			t.Fatalf("%q: encode: %v", data, err)
		}
		round, err := Parse(buf.Bytes())
		if err != nil {
			t.Fatalf("%q: reparse of %q: %v", data, buf.Bytes(), err)
		}
		if !ir.EqualContent(tree, round) {
			t.Fatalf("%q: reparse of %q differs", data, buf.Bytes())
		}
	})
}
