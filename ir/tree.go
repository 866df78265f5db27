package ir

import (
	"bytes"
	"errors"
	"iter"
)

// Tree is a parsed JSON document. Node 0 is the root.
type Tree struct {
	src   []byte
	nodes []Node
	end   int
}

// SkipChildren may be returned by a WalkFunc to skip the children of the
// node it was called with.
var SkipChildren = errors.New("skip children")

type WalkFunc func(id NodeID, depth int) error

func (t *Tree) Root() NodeID {
	return 0
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Source returns the buffer the tree refers to.
func (t *Tree) Source() []byte {
	return t.src
}

// End returns the offset just past the root value.
func (t *Tree) End() int {
	return t.end
}

func (t *Tree) Node(id NodeID) *Node {
	return &t.nodes[id]
}

// Nodes returns the arena in allocation order, which is document order.
// Callers must not modify it.
func (t *Tree) Nodes() []Node {
	return t.nodes
}

func (t *Tree) Kind(id NodeID) Kind {
	return t.nodes[id].Kind
}

func (t *Tree) Name(id NodeID) []byte {
	return t.nodes[id].Name.Bytes(t.src)
}

func (t *Tree) Value(id NodeID) []byte {
	return t.nodes[id].Value.Bytes(t.src)
}

func (t *Tree) Children(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for c := t.nodes[id].FirstChild; c != None; c = t.nodes[c].NextSibling {
			if !yield(c) {
				return
			}
		}
	}
}

// Child returns the i'th child of id, or None.
func (t *Tree) Child(id NodeID, i int) NodeID {
	if i < 0 || i >= t.nodes[id].Count {
		return None
	}
	c := t.nodes[id].FirstChild
	for ; i > 0; i-- {
		c = t.nodes[c].NextSibling
	}
	return c
}

// Lookup returns the first member of object id whose raw name is name, or
// None.
func (t *Tree) Lookup(id NodeID, name string) NodeID {
	if t.nodes[id].Kind != ObjectKind {
		return None
	}
	for c := range t.Children(id) {
		if string(t.Name(c)) == name {
			return c
		}
	}
	return None
}

// Index returns the position of id among its siblings.
func (t *Tree) Index(id NodeID) int {
	p := t.nodes[id].Parent
	if p == None {
		return 0
	}
	i := 0
	for c := t.nodes[p].FirstChild; c != id; c = t.nodes[c].NextSibling {
		i++
	}
	return i
}

func (t *Tree) Depth(id NodeID) int {
	d := 0
	for p := t.nodes[id].Parent; p != None; p = t.nodes[p].Parent {
		d++
	}
	return d
}

func (t *Tree) Walk(fn WalkFunc) error {
	return t.WalkFrom(t.Root(), fn)
}

// WalkFrom calls fn on from and its descendants in document order. depth
// is relative to from. The walk is iterative, so deep trees do not grow the
// stack.
func (t *Tree) WalkFrom(from NodeID, fn WalkFunc) error {
	id, depth := from, 0
	for {
		err := fn(id, depth)
		switch {
		case err == SkipChildren:
		case err != nil:
			return err
		default:
			if fc := t.nodes[id].FirstChild; fc != None {
				id = fc
				depth++
				continue
			}
		}
		for id != from && t.nodes[id].NextSibling == None {
			id = t.nodes[id].Parent
			depth--
		}
		if id == from {
			return nil
		}
		id = t.nodes[id].NextSibling
	}
}

// Equal reports whether a and b have the same shape, kinds and spans.
func Equal(a, b *Tree) bool {
	if a.end != b.end || len(a.nodes) != len(b.nodes) {
		return false
	}
	for i := range a.nodes {
		if a.nodes[i] != b.nodes[i] {
			return false
		}
	}
	return true
}

// EqualContent reports whether a and b have the same shape and kinds, and
// their names and values hold the same bytes. Unlike Equal it holds between
// trees of differently formatted sources.
func EqualContent(a, b *Tree) bool {
	if len(a.nodes) != len(b.nodes) {
		return false
	}
	for i := range a.nodes {
		x, y := &a.nodes[i], &b.nodes[i]
		if x.Kind != y.Kind || x.Count != y.Count || x.Parent != y.Parent ||
			x.FirstChild != y.FirstChild || x.NextSibling != y.NextSibling {
			return false
		}
		if x.HasName() != y.HasName() {
			return false
		}
		id := NodeID(i)
		if !bytes.Equal(a.Name(id), b.Name(id)) || !bytes.Equal(a.Value(id), b.Value(id)) {
			return false
		}
	}
	return true
}
