package secs2

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Item represents a data item in a SECS-II message.
//
// Every item carries the three header fields shared by all types: the format code,
// the length-byte count and the payload length. For a list the payload length is
// the number of elements, for every other type it's the number of payload bytes.
//
// Items other than *ListItem are immutable once constructed. *ListItem is a mutable
// container and is not safe for concurrent mutation.
//
// The set of implementations is closed; use a type switch over *ListItem,
// *BinaryItem, *BooleanItem, *ASCIIItem, *IntItem, *UintItem and *FloatItem to
// dispatch on the concrete type.
//
// There's a limit on the payload length an item can declare, as defined by the SEMI standard:
//
//	n * b <= 16,777,215 (3 bytes)
//	- n: number of data values within the Item
//	- b: byte size to represent each individual data value (varies by Item type)
type Item interface {
	// FormatCode returns the format code of the item.
	FormatCode() FormatCode

	// LengthBytes returns the number of bytes used to encode the length field.
	LengthBytes() LengthBytes

	// Length returns the payload length declared in the header: the payload byte
	// count, or the number of elements for a list.
	Length() int

	// HeaderLen returns the encoded size of the item header, 1 + LengthBytes().
	HeaderLen() int

	// Size returns the number of values held by the item, or the number of
	// elements for a list.
	Size() int

	// IsScalar reports whether the item was constructed, or decoded, as a single
	// fixed-width value rather than an array.
	IsScalar() bool

	// Get retrieves a nested Item at the specified 0-based indices.
	// An error is returned if the item doesn't represent a list or if the indices are invalid.
	Get(indices ...int) (Item, error)

	// ToList retrieves the items stored within a ListItem.
	ToList() ([]Item, error)

	// ToBinary retrieves the bytes stored within a BinaryItem.
	ToBinary() ([]byte, error)

	// ToBoolean retrieves the boolean values stored within a BooleanItem.
	ToBoolean() ([]bool, error)

	// ToASCII retrieves the string stored within an ASCIIItem.
	ToASCII() (string, error)

	// ToInt retrieves the signed integer values stored within an IntItem.
	ToInt() ([]int64, error)

	// ToUint retrieves the unsigned integer values stored within a UintItem.
	ToUint() ([]uint64, error)

	// ToFloat retrieves the floating-point values stored within a FloatItem.
	ToFloat() ([]float64, error)

	// Values returns the value(s) held by the Item.
	// The actual type depends on the specific Item implementation.
	// The returned value must be treated as read-only.
	Values() any

	// ToBytes serializes the Item into its byte representation.
	// It returns an empty slice if the item carries an error.
	ToBytes() []byte

	// ToSML converts the Item into its SML (SECS Message Language) representation.
	ToSML() string

	// Equal reports whether the item and other have the same format code,
	// length-byte count, payload length and values.
	Equal(other Item) bool

	// Hash returns a hash of the header fields and values, consistent with Equal.
	Hash() uint64

	// Clone creates a deep copy of the Item.
	Clone() Item

	// Error returns any error that occurred during the creation of the Item.
	Error() error

	// Type returns the item type name, e.g. "list", "ascii", "u4".
	Type() string

	IsList() bool
	IsBinary() bool
	IsBoolean() bool
	IsASCII() bool
	IsInt8() bool
	IsInt16() bool
	IsInt32() bool
	IsInt64() bool
	IsUint8() bool
	IsUint16() bool
	IsUint32() bool
	IsUint64() bool
	IsFloat32() bool
	IsFloat64() bool

	// withLengthBytes returns a copy of the item that stores the given length-byte count.
	withLengthBytes(lb LengthBytes) Item
}

// WithLengthBytes returns a copy of item that encodes its length field with lb bytes.
//
// If lb is smaller than the count required by the item's payload length, the
// minimal count is used instead. It returns nil if item is nil.
func WithLengthBytes(item Item, lb LengthBytes) Item {
	if item == nil {
		return nil
	}

	return item.withLengthBytes(lb)
}

// baseItem holds the header state shared by every item type and provides the
// default implementation of the type specific accessors.
type baseItem struct {
	formatCode  FormatCode
	lengthBytes LengthBytes
	length      int
	scalar      bool
	itemErr     error // Stores any error that occurred during item creation
}

// setHeader records the header fields of the item. An out-of-range length is
// recorded as an item error.
func (item *baseItem) setHeader(fc FormatCode, desired LengthBytes, length int) {
	item.formatCode = fc
	item.length = length

	lb, err := ResolveLengthBytes(desired, length)
	if err != nil {
		item.setError(err)
		return
	}
	item.lengthBytes = lb
}

func (item *baseItem) FormatCode() FormatCode   { return item.formatCode }
func (item *baseItem) LengthBytes() LengthBytes { return item.lengthBytes }
func (item *baseItem) Length() int              { return item.length }
func (item *baseItem) HeaderLen() int           { return 1 + int(item.lengthBytes) }
func (item *baseItem) IsScalar() bool           { return item.scalar }
func (item *baseItem) Type() string             { return item.formatCode.Type() }

func (item *baseItem) header() Header {
	return Header{FormatCode: item.formatCode, LengthBytes: item.lengthBytes, Length: item.length}
}

// headerBytes allocates a slice holding the encoded header, with room for
// payloadSize more bytes.
func (item *baseItem) headerBytes(payloadSize int) []byte {
	return item.header().AppendTo(make([]byte, 0, item.HeaderLen()+payloadSize))
}

func (item *baseItem) baseEqual(other Item) bool {
	return other != nil &&
		item.formatCode == other.FormatCode() &&
		item.lengthBytes == other.LengthBytes() &&
		item.length == other.Length()
}

// newDigest returns a hash digest seeded with the header fields.
func (item *baseItem) newDigest() *xxhash.Digest {
	d := xxhash.New()
	var buf [6]byte
	buf[0] = byte(item.formatCode)
	buf[1] = byte(item.lengthBytes)
	binary.BigEndian.PutUint32(buf[2:], uint32(item.length)) //nolint:gosec
	_, _ = d.Write(buf[:])

	return d
}

func (item *baseItem) ToList() ([]Item, error) {
	return nil, item.notImplemented("ToList")
}

func (item *baseItem) ToBinary() ([]byte, error) {
	return nil, item.notImplemented("ToBinary")
}

func (item *baseItem) ToBoolean() ([]bool, error) {
	return nil, item.notImplemented("ToBoolean")
}

func (item *baseItem) ToASCII() (string, error) {
	return "", item.notImplemented("ToASCII")
}

func (item *baseItem) ToInt() ([]int64, error) {
	return nil, item.notImplemented("ToInt")
}

func (item *baseItem) ToUint() ([]uint64, error) {
	return nil, item.notImplemented("ToUint")
}

func (item *baseItem) ToFloat() ([]float64, error) {
	return nil, item.notImplemented("ToFloat")
}

func (item *baseItem) Error() error {
	return item.itemErr
}

func (item *baseItem) IsList() bool    { return false }
func (item *baseItem) IsBinary() bool  { return false }
func (item *baseItem) IsBoolean() bool { return false }
func (item *baseItem) IsASCII() bool   { return false }
func (item *baseItem) IsInt8() bool    { return false }
func (item *baseItem) IsInt16() bool   { return false }
func (item *baseItem) IsInt32() bool   { return false }
func (item *baseItem) IsInt64() bool   { return false }
func (item *baseItem) IsUint8() bool   { return false }
func (item *baseItem) IsUint16() bool  { return false }
func (item *baseItem) IsUint32() bool  { return false }
func (item *baseItem) IsUint64() bool  { return false }
func (item *baseItem) IsFloat32() bool { return false }
func (item *baseItem) IsFloat64() bool { return false }

func (item *baseItem) notImplemented(method string) error {
	return newItemErrorf("method %s not implemented for %s item", method, item.formatCode.Type())
}

func (item *baseItem) setError(err error) {
	item.itemErr = errors.Join(item.itemErr, newItemError(err))
}

func (item *baseItem) setErrorf(format string, args ...any) {
	item.setError(fmt.Errorf(format, args...))
}

// cloneBase returns a copy of the header state with the given length-byte count
// applied through the minimal length-byte policy.
func (item *baseItem) cloneBase(lb LengthBytes) baseItem {
	clone := *item
	if resolved, err := ResolveLengthBytes(lb, item.length); err == nil {
		clone.lengthBytes = resolved
	}

	return clone
}

// getSelf implements Item.Get for items that are not lists.
func getSelf(item Item, indices []int) (Item, error) {
	if len(indices) != 0 {
		return nil, newItemErrorf("item is not a list, item is %s, indices is %v", item.ToSML(), indices)
	}

	return item, nil
}
