package ir

import "math"

// NodeID is the index of a node in its tree's arena.
type NodeID int32

// None is the NodeID of a missing parent, child or sibling.
const None NodeID = -1

const maxNodeID = math.MaxInt32

type Node struct {
	Kind Kind
	// Name is the member key for children of objects, NoSpan otherwise.
	Name Span
	// Value is the content of String and Primitive nodes, NoSpan for
	// containers.
	Value Span
	// Count is the number of direct children.
	Count int

	Parent      NodeID
	FirstChild  NodeID
	NextSibling NodeID
}

func (n *Node) HasName() bool {
	return n.Name.Valid()
}

func (n *Node) IsLeaf() bool {
	return n.Kind.IsLeaf()
}
