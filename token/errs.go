package token

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSyntax = errors.New("invalid syntax")
	ErrIncomplete    = fmt.Errorf("%w: incomplete input", ErrInvalidSyntax)

	ErrUnexpectedChar = fmt.Errorf("%w: unexpected character", ErrInvalidSyntax)
	ErrBadEscape      = fmt.Errorf("%w: bad escape", ErrInvalidSyntax)
	ErrBadUnicode     = fmt.Errorf("%w: bad unicode escape", ErrInvalidSyntax)
	ErrPrimitive      = fmt.Errorf("%w: bad primitive", ErrInvalidSyntax)
	ErrUnterminated   = fmt.Errorf("%w: unterminated string", ErrIncomplete)
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w: expected %s", ErrInvalidSyntax, what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w: unexpected %s", ErrInvalidSyntax, what), p)
}
