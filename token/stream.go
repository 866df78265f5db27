package token

// Stream gives the parser one token of lookahead over a Lexer. A peeked
// token, or the error produced while peeking, is held until Next consumes
// it, so pushback never depends on rewinding the lexer cursor.
type Stream struct {
	lx *Lexer

	tok  Token
	err  error
	full bool
}

func NewStream(lx *Lexer) *Stream {
	return &Stream{lx: lx}
}

func (s *Stream) Lexer() *Lexer {
	return s.lx
}

// Peek returns the next token without consuming it.
func (s *Stream) Peek() (Token, error) {
	if !s.full {
		s.tok, s.err = s.lx.Next()
		s.full = true
	}
	return s.tok, s.err
}

// Next consumes and returns the next token.
func (s *Stream) Next() (Token, error) {
	if s.full {
		s.full = false
		return s.tok, s.err
	}
	return s.lx.Next()
}

// Offset returns the offset of the first byte of the peeked token, counting
// the opening quote of a string, or the lexer cursor if nothing has been
// peeked.
func (s *Stream) Offset() int {
	if !s.full || s.err != nil {
		return s.lx.Offset()
	}
	if s.tok.Type == TString {
		return s.tok.Start - 1
	}
	return s.tok.Start
}
