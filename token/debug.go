package token

import (
	"fmt"
	"io"
)

func PrintTokens(w io.Writer, src []byte, toks []Token, msg string) {
	fmt.Fprintf(w, "%s tokens:\n", msg)
	for i := range toks {
		t := &toks[i]
		fmt.Fprintf(w, "\t%s `%s` [%d,%d)\n", t.Type, t.Bytes(src), t.Start, t.End)
	}
}
