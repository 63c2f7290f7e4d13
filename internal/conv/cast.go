package conv

import (
	"fmt"
	"math"
)

// Number is the set of numeric types a count can be stored in.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// FromUint64 converts v to T, failing if T cannot represent v exactly.
func FromUint64[T Number](v uint64) (T, error) {
	t := T(v)
	if t < 0 || float64(t) > math.MaxUint64 || uint64(t) != v {
		return 0, fmt.Errorf("integer overflow: %d cannot be represented as %T", v, t)
	}
	return t, nil
}

// ToUint64 converts v to uint64, failing for negative, fractional or too large values.
func ToUint64[T Number](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %v cannot be converted to uint64 (negative)", v)
	}
	if float64(v) >= math.MaxUint64 {
		return 0, fmt.Errorf("integer overflow: %v cannot be converted to uint64 (too large)", v)
	}
	u := uint64(v)
	if T(u) != v {
		return 0, fmt.Errorf("conversion error: %v is not a whole number", v)
	}
	return u, nil
}
