package token

import "github.com/signadot/jspan/debug"

type tokenOpts struct {
	strict bool
	trace  bool
}

type TokenOpt func(*tokenOpts)

// StrictWhitespace limits whitespace to space, tab, CR and LF. By default
// every byte <= 0x20 is skipped as whitespace.
func StrictWhitespace() TokenOpt {
	return func(o *tokenOpts) { o.strict = true }
}

// TokenTrace logs every token through the debug package, in addition to
// JSPAN_DEBUG_LEX.
func TokenTrace(v bool) TokenOpt {
	return func(o *tokenOpts) { o.trace = v }
}

func newTokenOpts(opts []TokenOpt) *tokenOpts {
	opt := &tokenOpts{trace: debug.Lex()}
	for _, o := range opts {
		o(opt)
	}
	return opt
}
