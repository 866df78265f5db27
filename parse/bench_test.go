package parse

import (
	"bytes"
	"fmt"
	"testing"
)

func benchDoc(n int) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString(`{"items": [`)
	for i := range n {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(buf, `{"id": %d, "name": "item \"%d\"", "price": %d.%02d, "tags": ["a", "b"], "ok": true}`, i, i, i, i%100)
	}
	buf.WriteString(`], "total": null}`)
	return buf.Bytes()
}

func BenchmarkParse(b *testing.B) {
	for _, n := range []int{1, 100, 10000} {
		d := benchDoc(n)
		b.Run(fmt.Sprintf("items=%d", n), func(b *testing.B) {
			b.SetBytes(int64(len(d)))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Parse(d); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkParseDeep(b *testing.B) {
	d := append(bytes.Repeat([]byte{'['}, 500), bytes.Repeat([]byte{']'}, 500)...)
	b.SetBytes(int64(len(d)))
	b.ReportAllocs()
	for b.Loop() {
		if _, err := Parse(d); err != nil {
			b.Fatal(err)
		}
	}
}
