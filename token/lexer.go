package token

import (
	"io"

	"github.com/signadot/jspan/debug"
)

// Lexer produces lexical tokens from a byte buffer. It keeps the offset of
// the last token it produced so that one token can be pushed back with
// [Lexer.Backup].
type Lexer struct {
	src  []byte
	off  int
	prev int

	space *[256]bool
	trace bool
	pd    *PosDoc
}

// NewLexer returns a lexer over the first n bytes of src. n is clamped to
// len(src); the lexer never reads past it.
func NewLexer(src []byte, n int, opts ...TokenOpt) *Lexer {
	opt := newTokenOpts(opts)
	n = max(0, min(n, len(src)))
	lx := &Lexer{
		src:   src[:n:n],
		space: &looseSpace,
		trace: opt.trace,
	}
	if opt.strict {
		lx.space = &strictSpace
	}
	return lx
}

// Source returns the buffer the lexer reads, truncated to its length.
func (lx *Lexer) Source() []byte {
	return lx.src
}

// Offset returns the current cursor.
func (lx *Lexer) Offset() int {
	return lx.off
}

// Pos returns the position of off in the lexer's buffer.
func (lx *Lexer) Pos(off int) *Pos {
	if lx.pd == nil {
		lx.pd = NewPosDoc(lx.src)
	}
	return lx.pd.Pos(off)
}

// Backup rewinds the cursor to the start of the most recently produced
// token. Only one level of pushback is kept: a second Backup without an
// intervening Next is a no-op.
func (lx *Lexer) Backup() {
	lx.off = lx.prev
}

// SkipSpace advances the cursor past whitespace and returns it.
func (lx *Lexer) SkipSpace() int {
	i, n := lx.off, len(lx.src)
	for i < n && lx.space[lx.src[i]] {
		i++
	}
	lx.off = i
	return i
}

// Next returns the next token. It returns io.EOF, unwrapped, when only
// whitespace remains. On error the cursor stays at the start of the
// offending token.
func (lx *Lexer) Next() (Token, error) {
	i := lx.SkipSpace()
	if i == len(lx.src) {
		return Token{}, io.EOF
	}
	lx.prev = i
	c := lx.src[i]
	var (
		tok Token
		err error
	)
	switch classes[c] {
	case cStruct:
		tok = Token{Type: structTypes[c], Start: i, End: i + 1}
		lx.off = i + 1
	case cQuote:
		tok, err = lx.lexString()
	case cPrim:
		tok, err = lx.lexPrimitive()
	default:
		err = NewTokenizeErr(ErrUnexpectedChar, lx.Pos(i))
	}
	if lx.trace {
		if err != nil {
			debug.Logf("lex error: %v\n", err)
		} else {
			debug.Logf("lex %s %s\n", tok.Info(), tok.Bytes(lx.src))
		}
	}
	return tok, err
}

func (lx *Lexer) lexString() (Token, error) {
	start := lx.off
	if lx.src[start] != '"' {
		return Token{}, ExpectedErr("'\"'", lx.Pos(start))
	}
	n := len(lx.src)
	for i := start + 1; i < n; i++ {
		switch lx.src[i] {
		case '"':
			lx.off = i + 1
			return Token{Type: TString, Start: start + 1, End: i}, nil
		case '\\':
			esc := i
			i++
			if i == n {
				return Token{}, NewTokenizeErr(ErrUnterminated, lx.Pos(start))
			}
			c := lx.src[i]
			if simpleEscape[c] {
				continue
			}
			if c != 'u' {
				return Token{}, NewTokenizeErr(ErrBadEscape, lx.Pos(esc))
			}
			for j := 0; j < 4; j++ {
				i++
				if i == n {
					return Token{}, NewTokenizeErr(ErrUnterminated, lx.Pos(start))
				}
				if !isHex[lx.src[i]] {
					return Token{}, NewTokenizeErr(ErrBadUnicode, lx.Pos(esc))
				}
			}
		}
	}
	return Token{}, NewTokenizeErr(ErrUnterminated, lx.Pos(start))
}

func (lx *Lexer) lexPrimitive() (Token, error) {
	start := lx.off
	i, n := start, len(lx.src)
	for ; i < n; i++ {
		c := lx.src[i]
		if primEnd[c] {
			break
		}
		if c < 0x20 || c >= 0x7f {
			return Token{}, NewTokenizeErr(ErrPrimitive, lx.Pos(i))
		}
	}
	if i == start {
		return Token{}, NewTokenizeErr(ErrPrimitive, lx.Pos(start))
	}
	lx.off = i
	return Token{Type: TPrimitive, Start: start, End: i}, nil
}
