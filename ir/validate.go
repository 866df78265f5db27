package ir

import "fmt"

// Validate checks the structural invariants of t:
//
//   - there is exactly one root, without parent or name;
//   - every other node is in the child chain of its parent exactly once;
//   - leaves have no children and a valid value span within the source;
//   - members of objects have names, elements of arrays do not;
//   - Count equals the length of the child chain.
func (t *Tree) Validate() error {
	n := len(t.nodes)
	if n == 0 {
		return fmt.Errorf("%w: empty tree", ErrInvariant)
	}
	root := &t.nodes[0]
	if root.Parent != None {
		return t.invariantErr(0, "root has parent %d", root.Parent)
	}
	if root.HasName() {
		return t.invariantErr(0, "root has name %s", root.Name)
	}
	seen := make([]bool, n)
	seen[0] = true
	for i := range t.nodes {
		id := NodeID(i)
		node := &t.nodes[i]
		if !node.Kind.valid() {
			return t.invariantErr(id, "unset kind")
		}
		if node.Parent != None && (node.Parent < 0 || int(node.Parent) >= n) {
			return t.invariantErr(id, "parent %d out of range", node.Parent)
		}
		if node.Kind.IsLeaf() {
			if node.Count != 0 || node.FirstChild != None {
				return t.invariantErr(id, "leaf with children")
			}
			if !node.Value.Valid() || node.Value.End > len(t.src) {
				return t.invariantErr(id, "bad value span %s", node.Value)
			}
			continue
		}
		count := 0
		for c := node.FirstChild; c != None; c = t.nodes[c].NextSibling {
			if c < 0 || int(c) >= n {
				return t.invariantErr(id, "child %d out of range", c)
			}
			if seen[c] {
				return t.invariantErr(c, "reached twice")
			}
			seen[c] = true
			child := &t.nodes[c]
			if child.Parent != id {
				return t.invariantErr(c, "in chain of %d but parent is %d", id, child.Parent)
			}
			switch node.Kind {
			case ObjectKind:
				if !child.HasName() || child.Name.End > len(t.src) {
					return t.invariantErr(c, "object member with bad name %s", child.Name)
				}
			case ArrayKind:
				if child.HasName() {
					return t.invariantErr(c, "array element with name %s", child.Name)
				}
			}
			count++
		}
		if count != node.Count {
			return t.invariantErr(id, "count %d but %d children", node.Count, count)
		}
	}
	for i, ok := range seen {
		if !ok {
			return t.invariantErr(NodeID(i), "not reachable from its parent")
		}
	}
	return nil
}

func (t *Tree) invariantErr(id NodeID, msg string, args ...any) error {
	return fmt.Errorf("%w: node %d (%s): %s", ErrInvariant, id, t.nodes[id].Kind, fmt.Sprintf(msg, args...))
}
