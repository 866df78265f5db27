package token

import "fmt"

type TokenType int

const (
	TLCurl TokenType = iota
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TString
	TPrimitive
)

func (t TokenType) String() string {
	switch t {
	case TLCurl:
		return "TLCurl"
	case TRCurl:
		return "TRCurl"
	case TLSquare:
		return "TLSquare"
	case TRSquare:
		return "TRSquare"
	case TColon:
		return "TColon"
	case TComma:
		return "TComma"
	case TString:
		return "TString"
	case TPrimitive:
		return "TPrimitive"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is a lexical token. Start and End are byte offsets into the
// buffer the token was read from; for TString they exclude the quotes.
type Token struct {
	Type  TokenType
	Start int
	End   int
}

func (t *Token) Bytes(src []byte) []byte {
	return src[t.Start:t.End]
}

func (t *Token) Len() int {
	return t.End - t.Start
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s [%d,%d)", t.Type, t.Start, t.End)
}
