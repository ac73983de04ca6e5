package vars

import "strings"

// StrToBool parses the boolean spellings accepted on the command line.
// ok is false when str is none of them.
func StrToBool(str string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "on", "1":
		return true, true
	case "false", "f", "no", "n", "off", "0":
		return false, true
	}
	return false, false
}

// FirstNonZero returns the first of values that is not the zero value.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}
