package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/jspan/ir"
	"github.com/signadot/jspan/token"
)

var (
	ErrInvalidSyntax = token.ErrInvalidSyntax
	ErrIncomplete    = token.ErrIncomplete
	ErrOutOfMemory   = ir.ErrOutOfMemory
	ErrTooDeep       = errors.New("nesting too deep")
	ErrTrailing      = fmt.Errorf("%w: trailing data", ErrInvalidSyntax)
)

type ErrorKind int

const (
	InvalidSyntax ErrorKind = iota + 1
	IncompleteInput
	OutOfMemory
	TooDeep
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidSyntax:
		return "InvalidSyntax"
	case IncompleteInput:
		return "IncompleteInput"
	case OutOfMemory:
		return "OutOfMemory"
	case TooDeep:
		return "TooDeep"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the error returned by a failed parse.
type Error struct {
	Kind ErrorKind
	Pos  *token.Pos
	Err  error
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	if _, ok := e.Err.(*token.TokenizeErr); ok || e.Pos == nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

// Offset returns the byte offset of the failure, or -1.
func (e *Error) Offset() int {
	if e.Pos == nil {
		return -1
	}
	return e.Pos.I
}

// KindOf returns the kind of a parse error, or 0 if err did not come from
// this package.
func KindOf(err error) ErrorKind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}

func kindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrOutOfMemory):
		return OutOfMemory
	case errors.Is(err, ErrTooDeep):
		return TooDeep
	case errors.Is(err, ErrIncomplete):
		return IncompleteInput
	default:
		return InvalidSyntax
	}
}
