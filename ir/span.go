package ir

import "fmt"

// Span is a half open range [Start, End) of byte offsets into a source
// buffer.
type Span struct {
	Start int
	End   int
}

// NoSpan marks an absent span.
var NoSpan = Span{Start: -1, End: -1}

func (s Span) Valid() bool {
	return s.Start >= 0 && s.Start <= s.End
}

func (s Span) Len() int {
	if !s.Valid() {
		return 0
	}
	return s.End - s.Start
}

// Bytes returns the bytes of src covered by s, without copying, or nil if s
// is not valid.
func (s Span) Bytes(src []byte) []byte {
	if !s.Valid() || s.End > len(src) {
		return nil
	}
	return src[s.Start:s.End:s.End]
}

func (s Span) String() string {
	if !s.Valid() {
		return "[-]"
	}
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
