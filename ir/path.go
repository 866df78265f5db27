package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Path returns the path of id from the root, e.g. `$.a[2].'x.y'`.
func (t *Tree) Path(id NodeID) string {
	p := t.nodes[id].Parent
	if p == None {
		return "$"
	}
	switch t.nodes[p].Kind {
	case ObjectKind:
		return t.Path(p) + "." + pathString(string(t.Name(id)))
	default:
		return t.Path(p) + "[" + strconv.Itoa(t.Index(id)) + "]"
	}
}

// Path is a parsed path. Each element is one step; the first element of a
// path that is just `$` sets nothing.
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) set() bool {
	return p.IndexAll || p.Index != nil || p.Field != nil || p.Subtree
}

func (p *Path) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for step := p; step != nil; step = step.Next {
		switch {
		case step.Subtree:
			b.WriteString("..")
		case step.IndexAll:
			b.WriteString("[*]")
		case step.Field != nil:
			b.WriteByte('.')
			b.WriteString(pathString(*step.Field))
		case step.Index != nil:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(*step.Index))
			b.WriteByte(']')
		}
	}
	return b.String()
}

// ParsePath parses paths such as `$.a[2]`, `$.'x.y'`, `$.a[*]` and
// `$...b`. Field names containing any of `'.*$[]\` are single quoted, with
// a backslash escaping the byte after it.
func ParsePath(p string) (*Path, error) {
	if p == "" || p[0] != '$' {
		return nil, fmt.Errorf("%w: %q should start with '$'", ErrPath, p)
	}
	sc := &pathScanner{src: p, i: 1}
	root := &Path{}
	step := root
	for sc.i < len(p) {
		if step.set() {
			step.Next = &Path{}
			step = step.Next
		}
		if err := sc.step(step); err != nil {
			return nil, err
		}
	}
	return root, nil
}

type pathScanner struct {
	src string
	i   int
}

func (sc *pathScanner) errorf(msg string, args ...any) error {
	return fmt.Errorf("%w: %q at %d: %s", ErrPath, sc.src, sc.i, fmt.Sprintf(msg, args...))
}

func (sc *pathScanner) step(step *Path) error {
	rest := sc.src[sc.i:]
	switch {
	case strings.HasPrefix(rest, ".."):
		sc.i += 2
		step.Subtree = true
		return nil
	case rest[0] == '.':
		sc.i++
		field, err := sc.field()
		if err != nil {
			return err
		}
		step.Field = &field
		return nil
	case rest[0] == '[':
		return sc.index(step)
	default:
		return sc.errorf("expected '.' or '['")
	}
}

func (sc *pathScanner) field() (string, error) {
	rest := sc.src[sc.i:]
	if rest == "" {
		return "", sc.errorf("expected field")
	}
	if rest[0] == '\'' {
		return sc.quoted()
	}
	n := strings.IndexAny(rest, ".[")
	switch n {
	case -1:
		n = len(rest)
	case 0:
		return "", sc.errorf("empty field, write ''")
	}
	sc.i += n
	return rest[:n], nil
}

func (sc *pathScanner) quoted() (string, error) {
	var b strings.Builder
	for i := sc.i + 1; i < len(sc.src); i++ {
		c := sc.src[i]
		switch {
		case c == '\\' && i+1 < len(sc.src):
			i++
			b.WriteByte(sc.src[i])
		case c == '\'':
			sc.i = i + 1
			return b.String(), nil
		default:
			b.WriteByte(c)
		}
	}
	return "", sc.errorf("unterminated quoted field")
}

func (sc *pathScanner) index(step *Path) error {
	n := strings.IndexByte(sc.src[sc.i:], ']')
	if n == -1 {
		return sc.errorf("expected ']'")
	}
	body := sc.src[sc.i+1 : sc.i+n]
	if body == "*" {
		step.IndexAll = true
		sc.i += n + 1
		return nil
	}
	u, err := strconv.ParseUint(body, 10, 31)
	if err != nil {
		return sc.errorf("bad index %q", body)
	}
	i := int(u)
	step.Index = &i
	sc.i += n + 1
	return nil
}

// pathString quotes f if it cannot appear bare in a path.
func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]\\") == -1 {
		return f
	}
	f = strings.ReplaceAll(f, "\\", "\\\\")
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// GetPath resolves p from the node from. It returns None, without error,
// when a field or index is absent.
func (t *Tree) GetPath(from NodeID, p *Path) (NodeID, error) {
	res := from
	for p != nil {
		if p.IndexAll {
			return None, fmt.Errorf("%w: any index in get", ErrPath)
		}
		if p.Subtree {
			return None, fmt.Errorf("%w: recurse .. in get", ErrPath)
		}
		node := &t.nodes[res]
		switch {
		case p.Index != nil:
			if node.Kind != ArrayKind {
				return None, fmt.Errorf("%w: expected array at %s, got %s", ErrPath, t.Path(res), node.Kind)
			}
			res = t.Child(res, *p.Index)
		case p.Field != nil:
			if node.Kind != ObjectKind {
				return None, fmt.Errorf("%w: expected object at %s, got %s", ErrPath, t.Path(res), node.Kind)
			}
			res = t.Lookup(res, *p.Field)
		}
		if res == None {
			return None, nil
		}
		p = p.Next
	}
	return res, nil
}

// ListPath appends to dst every node matching p from the node from. `[*]`
// matches every element of an array and `..` every descendant container.
func (t *Tree) ListPath(dst []NodeID, from NodeID, p *Path) []NodeID {
	if p == nil {
		return append(dst, from)
	}
	node := &t.nodes[from]
	if p.Subtree {
		t.WalkFrom(from, func(id NodeID, _ int) error {
			if t.nodes[id].Kind.IsLeaf() {
				return SkipChildren
			}
			dst = t.ListPath(dst, id, p.Next)
			return nil
		})
		return dst
	}
	switch node.Kind {
	case ObjectKind:
		if p.IndexAll || p.Index != nil {
			return dst
		}
		if p.Field == nil {
			return t.ListPath(dst, from, p.Next)
		}
		for c := range t.Children(from) {
			if string(t.Name(c)) == *p.Field {
				dst = t.ListPath(dst, c, p.Next)
			}
		}
		return dst
	case ArrayKind:
		if p.Field != nil {
			return dst
		}
		if p.Index != nil {
			if c := t.Child(from, *p.Index); c != None {
				dst = t.ListPath(dst, c, p.Next)
			}
			return dst
		}
		if !p.IndexAll {
			return t.ListPath(dst, from, p.Next)
		}
		for c := range t.Children(from) {
			dst = t.ListPath(dst, c, p.Next)
		}
		return dst
	default:
		if p.Field != nil || p.Index != nil || p.IndexAll {
			return dst
		}
		return t.ListPath(dst, from, p.Next)
	}
}
