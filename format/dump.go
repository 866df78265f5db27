package format

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	j "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/signadot/jspan/encode"
	"github.com/signadot/jspan/ir"
	"github.com/signadot/jspan/token"
)

// Entry describes one node of a tree. Name and Value hold the raw source
// bytes, without quotes.
type Entry struct {
	ID     ir.NodeID `json:"id" yaml:"id"`
	Kind   string    `json:"kind" yaml:"kind"`
	Parent ir.NodeID `json:"parent" yaml:"parent"`
	Depth  int       `json:"depth" yaml:"depth"`
	Path   string    `json:"path" yaml:"path"`
	Name   *string   `json:"name,omitempty" yaml:"name,omitempty"`
	Value  *string   `json:"value,omitempty" yaml:"value,omitempty"`
	Span   *[2]int   `json:"span,omitempty" yaml:"span,omitempty"`
	Count  int       `json:"count" yaml:"count"`
}

type TokenEntry struct {
	Type  string `json:"type" yaml:"type"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
	Text  string `json:"text" yaml:"text"`
}

// Entries lists the nodes of t in document order.
func Entries(t *ir.Tree) []Entry {
	res := make([]Entry, 0, t.Len())
	t.Walk(func(id ir.NodeID, depth int) error {
		node := t.Node(id)
		e := Entry{
			ID:     id,
			Kind:   node.Kind.String(),
			Parent: node.Parent,
			Depth:  depth,
			Path:   t.Path(id),
			Count:  node.Count,
		}
		if node.HasName() {
			name := string(t.Name(id))
			e.Name = &name
		}
		if node.IsLeaf() {
			v := string(t.Value(id))
			e.Value = &v
			e.Span = &[2]int{node.Value.Start, node.Value.End}
		}
		res = append(res, e)
		return nil
	})
	return res
}

func TokenEntries(src []byte, toks []token.Token) []TokenEntry {
	res := make([]TokenEntry, len(toks))
	for i := range toks {
		tok := &toks[i]
		res[i] = TokenEntry{
			Type:  tok.Type.String(),
			Start: tok.Start,
			End:   tok.End,
			Text:  string(tok.Bytes(src)),
		}
	}
	return res
}

// Dump writes the nodes of t to w in format f. HumonFormat writes the
// document rather than its nodes.
func Dump(t *ir.Tree, w io.Writer, f Format) error {
	switch {
	case f.IsText():
		return dumpText(t, w)
	case f.IsHumon():
		return encode.EncodeHumon(t, w)
	}
	return marshal(Entries(t), w, f)
}

// DumpTokens writes toks, read from src, to w in format f.
func DumpTokens(src []byte, toks []token.Token, w io.Writer, f Format) error {
	if f.IsHumon() {
		return fmt.Errorf("%w: tokens have no %s form", ErrBadFormat, f)
	}
	if f.IsText() {
		bw := bufio.NewWriter(w)
		for i := range toks {
			tok := &toks[i]
			fmt.Fprintf(bw, "%-9s [%d,%d) %q\n", tok.Type, tok.Start, tok.End, tok.Bytes(src))
		}
		return bw.Flush()
	}
	return marshal(TokenEntries(src, toks), w, f)
}

func dumpText(t *ir.Tree, w io.Writer) error {
	bw := bufio.NewWriter(w)
	t.Walk(func(id ir.NodeID, depth int) error {
		node := t.Node(id)
		bw.WriteString(strings.Repeat("  ", depth))
		if node.HasName() {
			fmt.Fprintf(bw, "%q: ", t.Name(id))
		}
		switch node.Kind {
		case ir.StringKind:
			fmt.Fprintf(bw, "%s %s \"%s\"\n", node.Kind, node.Value, t.Value(id))
		case ir.PrimitiveKind:
			fmt.Fprintf(bw, "%s %s %s\n", node.Kind, node.Value, t.Value(id))
		default:
			fmt.Fprintf(bw, "%s(%d)\n", node.Kind, node.Count)
		}
		return nil
	})
	return bw.Flush()
}

func marshal(v any, w io.Writer, f Format) error {
	var (
		d   []byte
		err error
	)
	switch f {
	case JSONFormat:
		d, err = j.MarshalIndent(v, "", "  ")
		if err == nil {
			d = append(d, '\n')
		}
	case YAMLFormat:
		d, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
