package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/jspan/debug"
	"github.com/signadot/jspan/ir"
	"github.com/signadot/jspan/token"
)

// maxPrealloc caps the node estimate made from the input before parsing.
const maxPrealloc = 1 << 20

// Parse parses d, which must hold exactly one JSON value surrounded by
// optional whitespace.
func Parse(d []byte, opts ...ParseOption) (*ir.Tree, error) {
	return ParseN(d, len(d), opts...)
}

// ParseString parses s. The tree refers to a copy of s.
func ParseString(s string, opts ...ParseOption) (*ir.Tree, error) {
	return Parse([]byte(s), opts...)
}

// ParseN parses the first n bytes of d. Bytes at or past n are never read,
// and every span of the resulting tree lies below n.
func ParseN(d []byte, n int, opts ...ParseOption) (*ir.Tree, error) {
	pOpts := newParseOpts(opts)
	lx := token.NewLexer(d, n, pOpts.TokenizeOpts()...)
	src := lx.Source()
	b := ir.NewBuilder(src, pOpts.maxNodes)
	b.Grow(estimateNodes(src))
	p := &parser{
		s:    token.NewStream(lx),
		lx:   lx,
		b:    b,
		src:  src,
		opts: pOpts,
	}
	root, err := b.NewNode(ir.None)
	if err != nil {
		return nil, p.errorAt(OutOfMemory, 0, err)
	}
	if err := p.parseValue(root); err != nil {
		return nil, err
	}
	end := p.s.Offset()
	if !pOpts.allowTrailing {
		tok, err := p.s.Next()
		switch {
		case err == io.EOF:
		case err != nil:
			return nil, p.trailingErr(err)
		default:
			return nil, p.errorAt(InvalidSyntax, offsetOf(&tok),
				fmt.Errorf("%w: %s after root value", ErrTrailing, tok.Type))
		}
	}
	return b.Tree(end), nil
}

// estimateNodes guesses the number of nodes in src from its separators and
// openers. Separators inside strings make it an overestimate.
func estimateNodes(src []byte) int {
	n := bytes.Count(src, []byte{','}) +
		bytes.Count(src, []byte{'{'}) +
		bytes.Count(src, []byte{'['}) + 1
	return min(n, maxPrealloc)
}

type parser struct {
	s     *token.Stream
	lx    *token.Lexer
	b     *ir.Builder
	src   []byte
	opts  *parseOpts
	depth int
}

func (p *parser) parseValue(id ir.NodeID) error {
	tok, err := p.s.Peek()
	if err != nil {
		return p.tokErr(err, "value")
	}
	switch tok.Type {
	case token.TLCurl:
		return p.parseObject(id)
	case token.TLSquare:
		return p.parseArray(id)
	case token.TString:
		p.b.SetLeaf(id, ir.StringKind, ir.Span{Start: tok.Start, End: tok.End})
	case token.TPrimitive:
		p.b.SetLeaf(id, ir.PrimitiveKind, ir.Span{Start: tok.Start, End: tok.End})
	default:
		return p.unexpected(&tok, "value")
	}
	p.s.Next()
	if p.opts.trace {
		debug.Logf("parse: %s %s at %d\n", p.b.Node(id).Kind, tok.Bytes(p.src), tok.Start)
	}
	return nil
}

func (p *parser) parseObject(id ir.NodeID) error {
	tok, err := p.s.Next()
	if err != nil {
		return p.tokErr(err, "'{'")
	}
	if tok.Type != token.TLCurl {
		return p.unexpected(&tok, "'{'")
	}
	if err := p.enter(&tok); err != nil {
		return err
	}
	defer p.leave()
	p.b.SetContainer(id, ir.ObjectKind)
	for first := true; ; first = false {
		tok, err := p.s.Next()
		if err != nil {
			return p.tokErr(err, "'}'")
		}
		if tok.Type == token.TRCurl {
			p.traceClose(id, &tok)
			return nil
		}
		if !first {
			if tok.Type != token.TComma {
				return p.unexpected(&tok, "',' or '}'")
			}
			tok, err = p.s.Next()
			if err != nil {
				return p.tokErr(err, "member name")
			}
		}
		if tok.Type != token.TString {
			return p.unexpected(&tok, "member name")
		}
		child, err := p.b.NewNode(id)
		if err != nil {
			return p.errorAt(OutOfMemory, offsetOf(&tok), err)
		}
		p.b.SetName(child, ir.Span{Start: tok.Start, End: tok.End})
		colon, err := p.s.Next()
		if err != nil {
			return p.tokErr(err, "':'")
		}
		if colon.Type != token.TColon {
			return p.unexpected(&colon, "':'")
		}
		if err := p.parseValue(child); err != nil {
			return err
		}
		p.b.Append(id, child)
	}
}

func (p *parser) parseArray(id ir.NodeID) error {
	tok, err := p.s.Next()
	if err != nil {
		return p.tokErr(err, "'['")
	}
	if tok.Type != token.TLSquare {
		return p.unexpected(&tok, "'['")
	}
	if err := p.enter(&tok); err != nil {
		return err
	}
	defer p.leave()
	p.b.SetContainer(id, ir.ArrayKind)
	for first := true; ; first = false {
		tok, err := p.s.Peek()
		if err != nil {
			return p.tokErr(err, "']'")
		}
		if tok.Type == token.TRSquare {
			p.s.Next()
			p.traceClose(id, &tok)
			return nil
		}
		if !first {
			if tok.Type != token.TComma {
				return p.unexpected(&tok, "',' or ']'")
			}
			p.s.Next()
			if tok, err = p.s.Peek(); err != nil {
				return p.tokErr(err, "value")
			}
		}
		child, err := p.b.NewNode(id)
		if err != nil {
			return p.errorAt(OutOfMemory, offsetOf(&tok), err)
		}
		if err := p.parseValue(child); err != nil {
			return err
		}
		p.b.Append(id, child)
	}
}

func (p *parser) enter(tok *token.Token) error {
	p.depth++
	if limit := p.opts.maxDepth; limit > 0 && p.depth > limit {
		return p.errorAt(TooDeep, tok.Start, fmt.Errorf("%w: limit %d", ErrTooDeep, limit))
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) traceClose(id ir.NodeID, tok *token.Token) {
	if !p.opts.trace {
		return
	}
	node := p.b.Node(id)
	debug.Logf("parse: %s with %d children closed at %d depth %d\n", node.Kind, node.Count, tok.Start, p.depth)
}

// tokErr converts an error from the token stream. io.EOF means the input
// stopped where what was expected.
func (p *parser) tokErr(err error, what string) error {
	if err == io.EOF {
		return p.errorAt(IncompleteInput, len(p.src),
			fmt.Errorf("%w: expected %s", ErrIncomplete, what))
	}
	return p.lexErr(err)
}

func (p *parser) lexErr(err error) error {
	var te *token.TokenizeErr
	if errors.As(err, &te) {
		return &Error{Kind: kindOf(err), Pos: &te.Pos, Err: err}
	}
	return p.errorAt(kindOf(err), p.lx.Offset(), err)
}

// trailingErr reports a lexical error after a complete root value as
// trailing data. The lexical error is kept as text only: the root value
// itself was not incomplete.
func (p *parser) trailingErr(err error) error {
	var te *token.TokenizeErr
	if errors.As(err, &te) {
		return &Error{Kind: InvalidSyntax, Pos: &te.Pos, Err: fmt.Errorf("%w: %v", ErrTrailing, te.Err)}
	}
	return p.errorAt(InvalidSyntax, p.lx.Offset(), fmt.Errorf("%w: %v", ErrTrailing, err))
}

func (p *parser) unexpected(tok *token.Token, what string) error {
	return p.errorAt(InvalidSyntax, offsetOf(tok),
		fmt.Errorf("%w: expected %s, got %s %q", ErrInvalidSyntax, what, tok.Type, sample(tok.Bytes(p.src))))
}

func (p *parser) errorAt(kind ErrorKind, off int, err error) error {
	return &Error{Kind: kind, Pos: p.lx.Pos(off), Err: err}
}

// offsetOf returns the offset of the first byte of tok in the source,
// including the opening quote of strings.
func offsetOf(tok *token.Token) int {
	if tok.Type == token.TString {
		return tok.Start - 1
	}
	return tok.Start
}

func sample(d []byte) []byte {
	const n = 16
	if len(d) <= n {
		return d
	}
	return append(d[:n:n], "..."...)
}
