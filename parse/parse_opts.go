package parse

import (
	"github.com/signadot/jspan/debug"
	"github.com/signadot/jspan/token"
)

// DefaultMaxDepth bounds the nesting of objects and arrays unless
// overridden with MaxDepth.
const DefaultMaxDepth = 512

type parseOpts struct {
	maxDepth      int
	maxNodes      int
	strict        bool
	allowTrailing bool
	trace         bool
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth, trace: debug.Parse()}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	if o.strict {
		return []token.TokenOpt{token.StrictWhitespace()}
	}
	return nil
}

type ParseOption func(*parseOpts)

// MaxDepth limits the nesting of objects and arrays; the root container
// has depth 1. n <= 0 removes the limit.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// MaxNodes limits the number of nodes in the tree. Exceeding it fails the
// parse with OutOfMemory. n <= 0 removes the limit.
func MaxNodes(n int) ParseOption {
	return func(o *parseOpts) { o.maxNodes = n }
}

// StrictWhitespace accepts only space, tab, CR and LF between tokens. By
// default every byte <= 0x20 is whitespace.
func StrictWhitespace() ParseOption {
	return func(o *parseOpts) { o.strict = true }
}

// AllowTrailing accepts any bytes after the root value. Tree.End reports
// where the root value ended.
func AllowTrailing() ParseOption {
	return func(o *parseOpts) { o.allowTrailing = true }
}

// Trace logs parser productions through the debug package, in addition to
// JSPAN_DEBUG_PARSE.
func Trace(v bool) ParseOption {
	return func(o *parseOpts) { o.trace = v }
}
