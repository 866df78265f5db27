package token

type class uint8

const (
	cInvalid class = iota
	cStruct
	cQuote
	cPrim
)

var (
	classes = [256]class{
		'{': cStruct,
		'}': cStruct,
		'[': cStruct,
		']': cStruct,
		':': cStruct,
		',': cStruct,
		'"': cQuote,
		't': cPrim,
		'f': cPrim,
		'n': cPrim,
		'-': cPrim,
		'0': cPrim,
		'1': cPrim,
		'2': cPrim,
		'3': cPrim,
		'4': cPrim,
		'5': cPrim,
		'6': cPrim,
		'7': cPrim,
		'8': cPrim,
		'9': cPrim,
	}
	structTypes = [256]TokenType{
		'{': TLCurl,
		'}': TRCurl,
		'[': TLSquare,
		']': TRSquare,
		':': TColon,
		',': TComma,
	}

	// every byte <= 0x20 counts as whitespace unless the lexer is strict.
	looseSpace  [256]bool
	strictSpace = [256]bool{
		' ':  true,
		'\t': true,
		'\r': true,
		'\n': true,
	}

	primEnd = [256]bool{
		'\t': true,
		'\r': true,
		'\n': true,
		' ':  true,
		':':  true,
		',':  true,
		']':  true,
		'}':  true,
	}

	simpleEscape = [256]bool{
		'"':  true,
		'/':  true,
		'\\': true,
		'b':  true,
		'f':  true,
		'r':  true,
		'n':  true,
		't':  true,
	}

	isHex [256]bool
)

func init() {
	for i := 0; i <= 0x20; i++ {
		looseSpace[i] = true
	}
	for c := '0'; c <= '9'; c++ {
		isHex[c] = true
	}
	for c := 'a'; c <= 'f'; c++ {
		isHex[c] = true
		isHex[c-'a'+'A'] = true
	}
}
