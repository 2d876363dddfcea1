package secs2

import "fmt"

// MaxByteSize defines the maximum allowed payload length of an item.
//
// For a list item the limit applies to the number of elements.
const MaxByteSize = 1<<24 - 1

// LengthBytes is the number of bytes used to encode the length field of an item header.
type LengthBytes uint8

const (
	lengthBytesUnset LengthBytes = iota
	LengthBytesOne
	LengthBytesTwo
	LengthBytesThree
)

// String returns the decimal representation of the length-byte count.
func (lb LengthBytes) String() string {
	switch lb {
	case LengthBytesOne:
		return "1"
	case LengthBytesTwo:
		return "2"
	case LengthBytesThree:
		return "3"
	default:
		return "unset"
	}
}

// Valid reports whether lb is one of LengthBytesOne, LengthBytesTwo or LengthBytesThree.
func (lb LengthBytes) Valid() bool {
	return lb >= LengthBytesOne && lb <= LengthBytesThree
}

// MinLengthBytes returns the smallest length-byte count able to represent length.
//
// It returns ErrLengthRange if length is negative or larger than MaxByteSize.
func MinLengthBytes(length int) (LengthBytes, error) {
	switch {
	case length < 0 || length > MaxByteSize:
		return lengthBytesUnset, fmt.Errorf("%w: %d not in [0, %d]", ErrLengthRange, length, MaxByteSize)
	case length <= 0xFF:
		return LengthBytesOne, nil
	case length <= 0xFFFF:
		return LengthBytesTwo, nil
	default:
		return LengthBytesThree, nil
	}
}

// ResolveLengthBytes returns the length-byte count an item stores for the payload length.
//
// The result is desired when it's large enough to hold length, and the minimal
// count otherwise; a too small desired value is upgraded, it's never an error.
// An error is returned only when length itself is out of range.
func ResolveLengthBytes(desired LengthBytes, length int) (LengthBytes, error) {
	minLB, err := MinLengthBytes(length)
	if err != nil {
		return lengthBytesUnset, err
	}

	if desired > LengthBytesThree || desired < minLB {
		return minLB, nil
	}

	return desired, nil
}
