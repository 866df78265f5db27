package ir

import "fmt"

type Kind uint8

const (
	kindUnset Kind = iota
	ObjectKind
	ArrayKind
	StringKind
	PrimitiveKind
)

func (k Kind) String() string {
	switch k {
	case ObjectKind:
		return "Object"
	case ArrayKind:
		return "Array"
	case StringKind:
		return "String"
	case PrimitiveKind:
		return "Primitive"
	default:
		return "<unknown kind>"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("unrecognized kind %d", k)
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Object":    ObjectKind,
		"Array":     ArrayKind,
		"String":    StringKind,
		"Primitive": PrimitiveKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		ObjectKind,
		ArrayKind,
		StringKind,
		PrimitiveKind,
	}
}

func (k Kind) IsLeaf() bool {
	return k == StringKind || k == PrimitiveKind
}

func (k Kind) IsContainer() bool {
	return k == ObjectKind || k == ArrayKind
}

func (k Kind) valid() bool {
	return k >= ObjectKind && k <= PrimitiveKind
}
