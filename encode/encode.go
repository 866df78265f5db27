package encode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/jspan/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	w     *bufio.Writer
	Color func(ir.Kind, ColorAttr, string) string
}

// Encode writes t as JSON followed by a newline.
func Encode(t *ir.Tree, w io.Writer, opts ...EncodeOption) error {
	if t.Len() == 0 {
		return fmt.Errorf("%w: empty tree", ErrEncoding)
	}
	return EncodeNode(t, t.Root(), w, opts...)
}

// EncodeNode writes the subtree of t rooted at id as JSON followed by a
// newline. The name of id, if any, is not written.
func EncodeNode(t *ir.Tree, id ir.NodeID, w io.Writer, opts ...EncodeOption) error {
	if id < 0 || int(id) >= t.Len() {
		return fmt.Errorf("%w: no node %d", ErrEncoding, id)
	}
	es := &EncState{w: bufio.NewWriter(w)}
	for _, opt := range opts {
		opt(es)
	}
	es.encode(t, id)
	es.w.WriteByte('\n')
	return es.w.Flush()
}

// encode walks the subtree iteratively, writing containers on the way down
// and their closing brackets on the way back up.
func (es *EncState) encode(t *ir.Tree, from ir.NodeID) {
	id := from
	for {
		node := t.Node(id)
		if id != from {
			es.member(t, id, node)
		}
		switch node.Kind {
		case ir.ObjectKind:
			es.sep(ir.ObjectKind, "{")
		case ir.ArrayKind:
			es.sep(ir.ArrayKind, "[")
		case ir.StringKind:
			es.quoted(ir.StringKind, ValueColor, t.Value(id))
		default:
			es.primitive(t.Value(id))
		}
		if node.FirstChild != ir.None {
			es.depth++
			id = node.FirstChild
			continue
		}
		for {
			node = t.Node(id)
			if node.Kind.IsContainer() {
				es.close(node)
			}
			if id == from {
				return
			}
			if node.NextSibling != ir.None {
				id = node.NextSibling
				break
			}
			id = node.Parent
			es.depth--
		}
	}
}

func (es *EncState) member(t *ir.Tree, id ir.NodeID, node *ir.Node) {
	parent := t.Node(node.Parent)
	if parent.FirstChild != id {
		es.sep(parent.Kind, ",")
	}
	es.newline()
	if parent.Kind != ir.ObjectKind {
		return
	}
	es.quoted(ir.ObjectKind, FieldColor, t.Name(id))
	es.sep(ir.ObjectKind, ":")
	if es.indent > 0 {
		es.w.WriteByte(' ')
	}
}

func (es *EncState) close(node *ir.Node) {
	if node.Count > 0 {
		es.newline()
	}
	if node.Kind == ir.ObjectKind {
		es.sep(ir.ObjectKind, "}")
		return
	}
	es.sep(ir.ArrayKind, "]")
}

func (es *EncState) newline() {
	if es.indent == 0 {
		return
	}
	es.w.WriteByte('\n')
	es.w.WriteString(strings.Repeat(" ", es.indent*es.depth))
}

func (es *EncState) sep(k ir.Kind, s string) {
	if es.Color != nil {
		s = es.Color(k, SepColor, s)
	}
	es.w.WriteString(s)
}

func (es *EncState) quoted(k ir.Kind, a ColorAttr, d []byte) {
	if es.Color != nil {
		es.w.WriteString(es.Color(k, a, `"`+string(d)+`"`))
		return
	}
	es.w.WriteByte('"')
	es.w.Write(d)
	es.w.WriteByte('"')
}

func (es *EncState) primitive(d []byte) {
	if es.Color == nil {
		es.w.Write(d)
		return
	}
	a := ValueColor
	switch string(d) {
	case "true", "false", "null":
		a = KeywordColor
	}
	es.w.WriteString(es.Color(ir.PrimitiveKind, a, string(d)))
}
