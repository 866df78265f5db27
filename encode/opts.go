package encode

type EncodeOption func(*EncState)

// Indent puts each member and element on its own line, indented by n
// spaces per level. 0, the default, encodes compactly.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = max(0, n) }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
