package encode

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/jspan/humon"
	"github.com/signadot/jspan/ir"
)

// EncodeHumon writes t as humon text. A root object is written as its
// members, one per line and without braces. Strings needing no quotes are
// written bare. Indent does not apply: members are indented by tabs.
func EncodeHumon(t *ir.Tree, w io.Writer, opts ...EncodeOption) error {
	if t.Len() == 0 {
		return fmt.Errorf("%w: empty tree", ErrEncoding)
	}
	es := &EncState{w: bufio.NewWriter(w)}
	for _, opt := range opts {
		opt(es)
	}
	root := t.Root()
	if t.Kind(root) == ir.ObjectKind {
		es.humonMembers(t, root)
	} else {
		es.humonValue(t, root)
		es.w.WriteByte('\n')
	}
	return es.w.Flush()
}

func (es *EncState) humonMembers(t *ir.Tree, id ir.NodeID) {
	tabs := strings.Repeat("\t", es.depth)
	for c := range t.Children(id) {
		es.w.WriteString(tabs)
		es.humonString(ir.ObjectKind, FieldColor, t.Name(c))
		es.w.WriteByte(' ')
		es.humonValue(t, c)
		es.w.WriteByte('\n')
	}
}

func (es *EncState) humonValue(t *ir.Tree, id ir.NodeID) {
	node := t.Node(id)
	switch node.Kind {
	case ir.ObjectKind:
		es.sep(ir.ObjectKind, "{")
		if node.Count > 0 {
			es.w.WriteByte('\n')
			es.depth++
			es.humonMembers(t, id)
			es.depth--
			es.w.WriteString(strings.Repeat("\t", es.depth))
		}
		es.sep(ir.ObjectKind, "}")
	case ir.ArrayKind:
		es.sep(ir.ArrayKind, "[")
		for c := range t.Children(id) {
			if c != node.FirstChild {
				es.w.WriteByte(' ')
			}
			es.humonValue(t, c)
		}
		es.sep(ir.ArrayKind, "]")
	case ir.StringKind:
		es.humonString(ir.StringKind, ValueColor, t.Value(id))
	default:
		es.primitive(t.Value(id))
	}
}

func (es *EncState) humonString(k ir.Kind, a ColorAttr, d []byte) {
	if !humon.Bare(d) {
		es.quoted(k, a, d)
		return
	}
	if es.Color != nil {
		es.w.WriteString(es.Color(k, a, string(d)))
		return
	}
	es.w.Write(d)
}
