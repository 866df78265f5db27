package humon

import (
	"unicode"
	"unicode/utf8"
)

// Literal reports whether w is true, false, null or a JSON number. Bare
// words which are literals keep their JSON meaning; all others are strings.
func Literal(w []byte) bool {
	switch string(w) {
	case "true", "false", "null":
		return true
	}
	return number(w)
}

// Bare reports whether the raw contents s of a JSON string may be written
// without quotes and still read back as the same string.
func Bare(s []byte) bool {
	if len(s) == 0 || Literal(s) {
		return false
	}
	for i := 0; i < len(s); {
		r, w := utf8.DecodeRune(s[i:])
		if r == utf8.RuneError && w == 1 || unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
		switch r {
		case '"', '\\', '{', '}', '[', ']', '\u2028', '\u2029':
			return false
		}
		i += w
	}
	return true
}

// number matches -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
func number(w []byte) bool {
	i := 0
	if i < len(w) && w[i] == '-' {
		i++
	}
	switch {
	case i == len(w):
		return false
	case w[i] == '0':
		i++
	case w[i] >= '1' && w[i] <= '9':
		i = digits(w, i)
	default:
		return false
	}
	if i < len(w) && w[i] == '.' {
		j := digits(w, i+1)
		if j == i+1 {
			return false
		}
		i = j
	}
	if i < len(w) && (w[i] == 'e' || w[i] == 'E') {
		i++
		if i < len(w) && (w[i] == '+' || w[i] == '-') {
			i++
		}
		j := digits(w, i)
		if j == i {
			return false
		}
		i = j
	}
	return i == len(w)
}

func digits(w []byte, i int) int {
	for i < len(w) && w[i] >= '0' && w[i] <= '9' {
		i++
	}
	return i
}
