package values

// Value is a runtime value of the expression language.
// The set of implementations is closed.
type Value interface {
	Kind() Kind
	value()
}

type (
	Null    struct{}
	Bool    bool
	Int8    int8
	Int16   int16
	Int32   int32
	Int64   int64
	Float32 float32
	Float64 float64
	String  string
)

// Other holds any host value not covered by the other variants.
type Other struct {
	V any
}

func (Null) Kind() Kind    { return KindNull }
func (Bool) Kind() Kind    { return KindBool }
func (Int8) Kind() Kind    { return KindInt8 }
func (Int16) Kind() Kind   { return KindInt16 }
func (Int32) Kind() Kind   { return KindInt32 }
func (Int64) Kind() Kind   { return KindInt64 }
func (Float32) Kind() Kind { return KindFloat32 }
func (Float64) Kind() Kind { return KindFloat64 }
func (String) Kind() Kind  { return KindString }
func (Other) Kind() Kind   { return KindOther }

func (Null) value()    {}
func (Bool) value()    {}
func (Int8) value()    {}
func (Int16) value()   {}
func (Int32) value()   {}
func (Int64) value()   {}
func (Float32) value() {}
func (Float64) value() {}
func (String) value()  {}
func (Other) value()   {}

var (
	_ Value = Null{}
	_ Value = Bool(false)
	_ Value = Int8(0)
	_ Value = Int16(0)
	_ Value = Int32(0)
	_ Value = Int64(0)
	_ Value = Float32(0)
	_ Value = Float64(0)
	_ Value = String("")
	_ Value = Other{}
)

// IsNull reports whether v is the null value. A nil interface is treated as null.
func IsNull(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Null)
	return ok
}
