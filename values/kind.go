package values

type Kind uint8

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindString
	KindOther
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindNull:    "null",
	KindBool:    "bool",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindString:  "string",
	KindOther:   "other",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindInvalid]
}

// IsInteger reports whether k is one of the fixed-width signed integer kinds.
func (k Kind) IsInteger() bool {
	return k >= KindInt8 && k <= KindInt64
}

func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

func (k Kind) IsNumeric() bool {
	return k.IsInteger() || k.IsFloat()
}
