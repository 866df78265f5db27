package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/jspan/ir"
)

// MustString returns the compact encoding of t.
func MustString(t *ir.Tree) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(t, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

// MustNodeString returns the compact encoding of the subtree of t rooted
// at id.
func MustNodeString(t *ir.Tree, id ir.NodeID) string {
	buf := bytes.NewBuffer(nil)
	if err := EncodeNode(t, id, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
