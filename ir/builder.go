package ir

import "fmt"

// Builder accumulates the nodes of a tree under construction. Nothing it
// allocates is reachable from outside until Tree is called.
type Builder struct {
	src   []byte
	nodes []Node
	// tails[i] is the last child appended to node i.
	tails []NodeID
	max   int
}

// NewBuilder returns a builder for a tree over src holding at most maxNodes
// nodes; maxNodes <= 0 means no limit.
func NewBuilder(src []byte, maxNodes int) *Builder {
	if maxNodes <= 0 || maxNodes > maxNodeID {
		maxNodes = maxNodeID
	}
	return &Builder{src: src, max: maxNodes}
}

// Grow reserves room for n more nodes.
func (b *Builder) Grow(n int) {
	n = min(n, b.max-len(b.nodes))
	if n <= 0 || cap(b.nodes)-len(b.nodes) >= n {
		return
	}
	nodes := make([]Node, len(b.nodes), len(b.nodes)+n)
	copy(nodes, b.nodes)
	b.nodes = nodes
	tails := make([]NodeID, len(b.tails), len(b.tails)+n)
	copy(tails, b.tails)
	b.tails = tails
}

func (b *Builder) Len() int {
	return len(b.nodes)
}

// NewNode allocates a node whose parent is parent. The node is not linked
// into the parent's children until Append.
func (b *Builder) NewNode(parent NodeID) (NodeID, error) {
	if len(b.nodes) >= b.max {
		return None, fmt.Errorf("%w: node limit %d reached", ErrOutOfMemory, b.max)
	}
	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, Node{
		Name:        NoSpan,
		Value:       NoSpan,
		Parent:      parent,
		FirstChild:  None,
		NextSibling: None,
	})
	b.tails = append(b.tails, None)
	return id, nil
}

func (b *Builder) Node(id NodeID) *Node {
	return &b.nodes[id]
}

func (b *Builder) SetName(id NodeID, s Span) {
	b.nodes[id].Name = s
}

func (b *Builder) SetLeaf(id NodeID, k Kind, s Span) {
	n := &b.nodes[id]
	n.Kind = k
	n.Value = s
}

func (b *Builder) SetContainer(id NodeID, k Kind) {
	b.nodes[id].Kind = k
}

// Append links child at the end of parent's children.
func (b *Builder) Append(parent, child NodeID) {
	p := &b.nodes[parent]
	if tail := b.tails[parent]; tail == None {
		p.FirstChild = child
	} else {
		b.nodes[tail].NextSibling = child
	}
	b.tails[parent] = child
	p.Count++
}

// Tree hands the nodes over to a Tree whose root value ends at end. The
// builder is empty afterwards.
func (b *Builder) Tree(end int) *Tree {
	t := &Tree{src: b.src, nodes: b.nodes, end: end}
	b.nodes = nil
	b.tails = nil
	return t
}
