package arith

import (
	"math"

	"github.com/reusee/exprs/values"
)

// Narrow returns sum in the narrowest signed integer width that holds it exactly.
func Narrow(sum int64) values.Value {
	switch {
	case sum >= math.MinInt8 && sum <= math.MaxInt8:
		return values.Int8(sum)
	case sum >= math.MinInt16 && sum <= math.MaxInt16:
		return values.Int16(sum)
	case sum >= math.MinInt32 && sum <= math.MaxInt32:
		return values.Int32(sum)
	}
	return values.Int64(sum)
}
