package token

import "io"

// Tokenize appends the tokens of src to dst.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	lx := NewLexer(src, len(src), opts...)
	for {
		tok, err := lx.Next()
		if err == io.EOF {
			return dst, nil
		}
		if err != nil {
			return nil, err
		}
		dst = append(dst, tok)
	}
}
