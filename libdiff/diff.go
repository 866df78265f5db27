package libdiff

import (
	"bytes"

	"github.com/signadot/jspan/encode"
	"github.com/signadot/jspan/ir"
)

// Diff returns the changes taking from to to. Paths of deletes and
// replacements are those of from, paths of inserts those of to. Objects
// are compared by member name and arrays by a diff of their elements.
func Diff(from, to *ir.Tree) []Change {
	d := &differ{from: from, to: to}
	d.node(from.Root(), to.Root())
	return d.res
}

type differ struct {
	from, to *ir.Tree
	res      []Change
}

func (d *differ) node(f, t ir.NodeID) {
	fk, tk := d.from.Kind(f), d.to.Kind(t)
	switch {
	case fk != tk:
		d.replace(f, t)
	case fk == ir.ObjectKind:
		d.object(f, t)
	case fk == ir.ArrayKind:
		d.arrayByIndex(f, t)
	default:
		if !bytes.Equal(d.from.Value(f), d.to.Value(t)) {
			d.replace(f, t)
		}
	}
}

func (d *differ) object(f, t ir.NodeID) {
	for fc := range d.from.Children(f) {
		name := string(d.from.Name(fc))
		if d.from.Lookup(f, name) != fc {
			// a later duplicate is shadowed by the first member of that name
			continue
		}
		tc := d.to.Lookup(t, name)
		if tc == ir.None {
			d.delete(fc)
			continue
		}
		d.node(fc, tc)
	}
	for tc := range d.to.Children(t) {
		name := string(d.to.Name(tc))
		if d.to.Lookup(t, name) != tc {
			continue
		}
		if d.from.Lookup(f, name) == ir.None {
			d.insert(tc)
		}
	}
}

func (d *differ) replace(f, t ir.NodeID) {
	d.res = append(d.res, Change{
		Op:   Replace,
		Path: d.from.Path(f),
		From: encode.MustNodeString(d.from, f),
		To:   encode.MustNodeString(d.to, t),
	})
}

func (d *differ) delete(f ir.NodeID) {
	d.res = append(d.res, Change{
		Op:   Delete,
		Path: d.from.Path(f),
		From: encode.MustNodeString(d.from, f),
	})
}

func (d *differ) insert(t ir.NodeID) {
	d.res = append(d.res, Change{
		Op:   Insert,
		Path: d.to.Path(t),
		To:   encode.MustNodeString(d.to, t),
	})
}
