// Package util contains small generic helpers shared by the item constructors.
package util

// Integer is the set of Go integer types accepted by item constructors.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Number is the set of Go numeric types accepted by item constructors.
type Number interface {
	Integer | ~float32 | ~float64
}

// CloneSlice returns a copy of src. A nil src yields an empty, non-nil slice.
func CloneSlice[T any](src []T) []T {
	clone := make([]T, len(src))
	copy(clone, src)

	return clone
}

// AppendConverted converts each element of values to U and appends it to target.
//
// The conversion follows Go's conversion rules; callers are responsible for
// range checks when U is narrower than T.
func AppendConverted[U, T Number](target []U, values []T) []U {
	target = append(target, make([]U, len(values))...)
	base := len(target) - len(values)
	for i, v := range values {
		target[base+i] = U(v)
	}

	return target
}

// Clamp limits v to the closed range [minVal, maxVal].
func Clamp[T Number](v, minVal, maxVal T) T {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}

	return v
}
