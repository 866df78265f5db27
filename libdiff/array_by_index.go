package libdiff

import (
	"github.com/signadot/jspan/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// we map each element to a rune standing for its summary:
//
//  1. leaves are summarised by kind and bytes, containers by kind alone
//  2. the rune sequences of both arrays are diffed
//  3. equal runs recurse pairwise, which for leaves finds nothing
//  4. a delete directly followed by an insert at the same place becomes a
//     replacement
func (d *differ) arrayByIndex(f, t ir.NodeID) {
	m := map[string]rune{}
	fromIDs, fromRunes := summarize(m, d.from, f)
	toIDs, toRunes := summarize(m, d.to, t)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	var pending []ir.NodeID
	flush := func() {
		for _, id := range pending {
			d.delete(id)
		}
		pending = pending[:0]
	}
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			flush()
			pending = append(pending, fromIDs[fi:fi+n]...)
			fi += n
		case diffpatch.DiffEqual:
			flush()
			for range n {
				d.node(fromIDs[fi], toIDs[ti])
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				if len(pending) > 0 {
					d.node(pending[0], toIDs[ti])
					pending = pending[1:]
				} else {
					d.insert(toIDs[ti])
				}
				ti++
			}
			flush()
		}
	}
	flush()
}

func summarize(m map[string]rune, t *ir.Tree, id ir.NodeID) ([]ir.NodeID, []rune) {
	n := t.Node(id).Count
	ids := make([]ir.NodeID, 0, n)
	rs := make([]rune, 0, n)
	for c := range t.Children(id) {
		sum := t.Kind(c).String()
		if t.Kind(c).IsLeaf() {
			sum += "-" + string(t.Value(c))
		}
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		ids = append(ids, c)
		rs = append(rs, r)
	}
	return ids, rs
}
