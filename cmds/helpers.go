package cmds

// Var defines name to set a value, and name+"." to reset it to zero.
func Var[T any](name string, desc string) *T {
	value := new(T)
	Define(name, Func(func(v T) {
		*value = v
	}).Desc(desc))
	Define(name+".", Func(func() {
		var zero T
		*value = zero
	}).Desc("reset "+name))
	return value
}

// Switch defines name to turn a flag on, and "!"+name to turn it off.
func Switch(name string, desc string) *bool {
	value := new(bool)
	Define(name, Func(func() {
		*value = true
	}).Desc(desc))
	Define("!"+name, Func(func() {
		*value = false
	}).Desc("undo "+name))
	return value
}

// Collect defines name to append its argument, for repeatable options.
func Collect[T any](name string, desc string) *[]T {
	value := new([]T)
	Define(name, Func(func(v T) {
		*value = append(*value, v)
	}).Desc(desc))
	return value
}
