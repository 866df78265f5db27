package ir

import "errors"

var (
	ErrOutOfMemory = errors.New("out of memory")
	ErrInvariant   = errors.New("tree invariant violated")
	ErrPath        = errors.New("bad path")
)
