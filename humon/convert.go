package humon

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	j "github.com/goccy/go-json"
)

var (
	ErrSyntax       = errors.New("humon syntax error")
	ErrUnterminated = fmt.Errorf("%w: unterminated string", ErrSyntax)
	ErrIncomplete   = fmt.Errorf("%w: unexpected end of input", ErrSyntax)
)

// maxToken bounds the size of a single string or word.
const maxToken = 64 << 20

// ScanTokens is a bufio.SplitFunc splitting humon text into brackets,
// strings with their quotes, and bare words. A string left open at EOF is
// returned as is.
func ScanTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) {
		r, w := utf8.DecodeRune(data[start:])
		if !unicode.IsSpace(r) {
			break
		}
		start += w
	}
	if start == len(data) {
		return start, nil, nil
	}
	switch data[start] {
	case '{', '}', '[', ']':
		return start + 1, data[start : start+1], nil
	case '"':
		for i := start + 1; i < len(data); i++ {
			switch data[i] {
			case '\\':
				i++
			case '"':
				return i + 1, data[start : i+1], nil
			}
		}
	default:
		for i := start; i < len(data); {
			r, w := utf8.DecodeRune(data[i:])
			if unicode.IsSpace(r) || r == '{' || r == '}' || r == '[' || r == ']' {
				return i, data[start:i], nil
			}
			i += w
		}
	}
	if atEOF {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

// ToJSON reads humon text from r and returns it as compact JSON.
func ToJSON(r io.Reader) ([]byte, error) {
	c := &converter{}
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, maxToken)
	off, consumed := 0, 0
	sc.Split(func(data []byte, atEOF bool) (int, []byte, error) {
		adv, tok, err := ScanTokens(data, atEOF)
		if tok != nil {
			off = consumed + adv - len(tok)
		}
		consumed += adv
		return adv, tok, err
	})
	for sc.Scan() {
		if err := c.token(sc.Bytes(), off); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return c.finish(consumed)
}

type frame struct {
	obj bool
	n   int // names and values written so far
}

type converter struct {
	out      bytes.Buffer
	stack    []frame
	implicit bool
	ntok     int
	first    []byte
}

func (c *converter) token(tok []byte, off int) error {
	c.ntok++
	if c.ntok == 1 {
		c.first = bytes.Clone(tok)
		if tok[0] == '{' || tok[0] == '[' {
			c.open(tok[0])
			return nil
		}
		c.implicit = true
		c.stack = append(c.stack, frame{obj: true})
	}
	if len(c.stack) == 0 {
		return syntaxErr(off, "%q after the root value", tok)
	}
	top := &c.stack[len(c.stack)-1]
	switch tok[0] {
	case '}', ']':
		want := byte(']')
		if top.obj {
			want = '}'
		}
		if tok[0] != want || (c.implicit && len(c.stack) == 1) {
			return syntaxErr(off, "unexpected %q", tok)
		}
		if top.obj && top.n%2 == 1 {
			return syntaxErr(off, "member without value before %q", tok)
		}
		c.stack = c.stack[:len(c.stack)-1]
		c.out.WriteByte(tok[0])
		return nil
	}
	name := top.obj && top.n%2 == 0
	if name && (tok[0] == '{' || tok[0] == '[') {
		return syntaxErr(off, "expected member name, got %q", tok)
	}
	switch {
	case top.obj && top.n%2 == 1:
		c.out.WriteByte(':')
	case top.n > 0:
		c.out.WriteByte(',')
	}
	top.n++
	switch tok[0] {
	case '{', '[':
		c.open(tok[0])
		return nil
	}
	return c.scalar(tok, off, name)
}

func (c *converter) open(b byte) {
	c.out.WriteByte(b)
	c.stack = append(c.stack, frame{obj: b == '{'})
}

func (c *converter) scalar(tok []byte, off int, name bool) error {
	if tok[0] == '"' {
		if !terminated(tok) {
			return fmt.Errorf("%w at offset %d", ErrUnterminated, off)
		}
		c.out.Write(tok)
		return nil
	}
	if !name && Literal(tok) {
		c.out.Write(tok)
		return nil
	}
	d, err := j.MarshalNoEscape(string(tok))
	if err != nil {
		return err
	}
	c.out.Write(d)
	return nil
}

func (c *converter) finish(end int) ([]byte, error) {
	switch {
	case c.ntok == 0:
		return []byte("{}"), nil
	case c.implicit && c.ntok == 1:
		c.out.Reset()
		if err := c.scalar(c.first, 0, false); err != nil {
			return nil, err
		}
		return c.out.Bytes(), nil
	case c.implicit && len(c.stack) == 1:
		if c.stack[0].n%2 == 1 {
			return nil, fmt.Errorf("%w: member without value at offset %d", ErrIncomplete, end)
		}
		res := make([]byte, 0, c.out.Len()+2)
		res = append(res, '{')
		res = append(res, c.out.Bytes()...)
		return append(res, '}'), nil
	case len(c.stack) == 0:
		return c.out.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: unclosed bracket at offset %d", ErrIncomplete, end)
	}
}

// terminated reports whether the string token tok ends with its closing
// quote.
func terminated(tok []byte) bool {
	for i := 1; i < len(tok); i++ {
		switch tok[i] {
		case '\\':
			i++
		case '"':
			return i == len(tok)-1
		}
	}
	return false
}

func syntaxErr(off int, msg string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d", ErrSyntax, fmt.Sprintf(msg, args...), off)
}
