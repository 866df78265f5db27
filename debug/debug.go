// Package debug gates trace output of the lexer and parser behind
// environment variables.
//
//	JSPAN_DEBUG_LEX=1    trace every lexical token
//	JSPAN_DEBUG_PARSE=1  trace parser productions and failures
//
// The variables are read once, at init.
package debug

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
)

type debug struct {
	Lex   bool
	Parse bool
}

var (
	d *debug

	mu  sync.Mutex
	out io.Writer = os.Stderr
)

func init() {
	d = &debug{}
	d.Lex = boolEnv("JSPAN_DEBUG_LEX")
	d.Parse = boolEnv("JSPAN_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}

func Parse() bool {
	return d.Parse
}

// SetOutput redirects trace output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case []byte:
			args[i] = strconv.Quote(string(x))
		case fmt.Stringer:
			args[i] = x.String()
		}
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, msg, args...)
}
