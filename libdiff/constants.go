package libdiff

import "fmt"

type Op int

const (
	Insert Op = iota + 1
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Replace:
		return "~"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Change is a difference between two trees at Path. From and To hold the
// compact encodings of the differing values; From is empty for inserts and
// To for deletes.
type Change struct {
	Op   Op
	Path string
	From string
	To   string
}

func (c Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("%s %s: %s", c.Op, c.Path, c.To)
	case Delete:
		return fmt.Sprintf("%s %s: %s", c.Op, c.Path, c.From)
	default:
		return fmt.Sprintf("%s %s: %s -> %s", c.Op, c.Path, c.From, c.To)
	}
}
