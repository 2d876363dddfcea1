package secs2

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/arloliu/go-secs2/internal/util"
)

// UintItem represents unsigned integer data (U1, U2, U4 or U8) in a SECS-II message.
//
// Values are held as uint64 regardless of the byte size and are encoded in
// big-endian order with byteSize bytes each.
type UintItem struct {
	baseItem
	byteSize int      // Byte size of the integers; should be either 1, 2, 4, or 8
	values   []uint64 // Array of unsigned integers
}

// NewUintItem creates a new unsigned integer array item.
//
// byteSize (int): The size of each integer value in bytes (1, 2, 4, or 8).
//
// values (...any): One or more values to be stored in the UintItem. Each value can be:
//   - An unsigned integer (`uint`, `uint8`, `uint16`, `uint32`, `uint64`) or a slice of them.
//   - A non-negative signed integer or a slice of them.
//   - A string, or a slice of strings, representing a non-negative integer value.
//
// Values above the maximum of the byte size are clamped to the maximum.
//
// If the `byteSize` is invalid, a value is negative or can't be converted, or the
// payload exceeds MaxByteSize, an error is set on the item.
func NewUintItem(byteSize int, values ...any) Item {
	item := &UintItem{byteSize: byteSize}

	fc, ok := uintFormatCode(byteSize)
	if !ok {
		item.setErrorf("%w: invalid byte size %d for unsigned integer item", ErrInvalidArgument, byteSize)
		item.setHeader(UndefinedFormatCode, lengthBytesUnset, 0)

		return item
	}

	var err error
	item.values, err = combineUintValues(byteSize, values)
	if err != nil {
		item.setError(err)
	}
	item.setHeader(fc, lengthBytesUnset, len(item.values)*byteSize)

	return item
}

// NewUintScalar creates an unsigned integer item holding exactly one value.
func NewUintScalar(byteSize int, value uint64) Item {
	item, _ := NewUintItem(byteSize, value).(*UintItem)
	item.scalar = true

	return item
}

// decodeUintItem builds a UintItem from a bounds-checked big-endian payload.
func decodeUintItem(h Header, byteSize int, payload []byte, scalar bool) (*UintItem, error) {
	if err := checkElementLength(len(payload), byteSize, scalar); err != nil {
		return nil, err
	}

	count := len(payload) / byteSize
	item := &UintItem{byteSize: byteSize, values: make([]uint64, count)}
	for i := range count {
		start := i * byteSize
		switch byteSize {
		case 1:
			item.values[i] = uint64(payload[start])
		case 2:
			item.values[i] = uint64(binary.BigEndian.Uint16(payload[start:]))
		case 4:
			item.values[i] = uint64(binary.BigEndian.Uint32(payload[start:]))
		case 8:
			item.values[i] = binary.BigEndian.Uint64(payload[start:])
		}
	}
	item.scalar = scalar
	item.setHeader(h.FormatCode, h.LengthBytes, len(payload))

	return item, nil
}

func (item *UintItem) Get(indices ...int) (Item, error) {
	return getSelf(item, indices)
}

// ToUint retrieves the unsigned integer data stored within the item.
//
// The returned slice references the item's storage and must not be modified.
func (item *UintItem) ToUint() ([]uint64, error) {
	return item.values, nil
}

// Size implements Item.Size().
func (item *UintItem) Size() int {
	return len(item.values)
}

// Values retrieves the unsigned integer values stored in the item.
//
// The returned value can be type-asserted to a `[]uint64`.
func (item *UintItem) Values() any {
	return item.values
}

// ToBytes serializes the UintItem into a byte slice conforming to the SECS-II data format.
func (item *UintItem) ToBytes() []byte {
	if item.itemErr != nil {
		return []byte{}
	}

	result := item.headerBytes(len(item.values) * item.byteSize)

	switch item.byteSize {
	case 1:
		for _, value := range item.values {
			result = append(result, byte(value))
		}
	case 2:
		for _, value := range item.values {
			result = binary.BigEndian.AppendUint16(result, uint16(value)) //nolint:gosec
		}
	case 4:
		for _, value := range item.values {
			result = binary.BigEndian.AppendUint32(result, uint32(value)) //nolint:gosec
		}
	case 8:
		for _, value := range item.values {
			result = binary.BigEndian.AppendUint64(result, value)
		}
	}

	return result
}

// ToSML converts the UintItem into its SML representation, e.g. `<U4[2] 1 2>`.
func (item *UintItem) ToSML() string {
	if item.Size() == 0 {
		return fmt.Sprintf("<U%d[0]>", item.byteSize)
	}

	var sb strings.Builder
	sb.Grow(len(item.values)*10 + 10)

	sb.WriteString(fmt.Sprintf("<U%d[%d] ", item.byteSize, item.Size()))

	var uintBuf [20]byte
	for i, v := range item.values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.Write(strconv.AppendUint(uintBuf[:0], v, 10))
	}

	sb.WriteByte('>')

	return sb.String()
}

func (item *UintItem) Equal(other Item) bool {
	o, ok := other.(*UintItem)
	return ok && o != nil && item.baseEqual(o) && slices.Equal(item.values, o.values)
}

func (item *UintItem) Hash() uint64 {
	d := item.newDigest()
	var buf [8]byte
	for _, v := range item.values {
		binary.BigEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// Clone creates a deep copy of the UintItem.
func (item *UintItem) Clone() Item {
	return &UintItem{baseItem: item.baseItem, byteSize: item.byteSize, values: util.CloneSlice(item.values)}
}

func (item *UintItem) withLengthBytes(lb LengthBytes) Item {
	return &UintItem{baseItem: item.cloneBase(lb), byteSize: item.byteSize, values: util.CloneSlice(item.values)}
}

// ByteSize returns the size of each value in bytes.
func (item *UintItem) ByteSize() int { return item.byteSize }

func (item *UintItem) IsUint8() bool  { return item.byteSize == 1 }
func (item *UintItem) IsUint16() bool { return item.byteSize == 2 }
func (item *UintItem) IsUint32() bool { return item.byteSize == 4 }
func (item *UintItem) IsUint64() bool { return item.byteSize == 8 }

func uintMax(byteSize int) uint64 {
	if byteSize == 8 {
		return math.MaxUint64
	}

	return 1<<(byteSize*8) - 1
}

func combineUintValues(byteSize int, values []any) ([]uint64, error) { //nolint:gocyclo,cyclop
	maxVal := uintMax(byteSize)
	itemValues := make([]uint64, 0, len(values))

	var err error
	for _, value := range values {
		switch v := value.(type) {
		case uint:
			itemValues, err = appendClampedUints(itemValues, []uint{v}, maxVal)
		case []uint:
			itemValues, err = appendClampedUints(itemValues, v, maxVal)
		case uint8:
			itemValues, err = appendClampedUints(itemValues, []uint8{v}, maxVal)
		case []uint8:
			itemValues, err = appendClampedUints(itemValues, v, maxVal)
		case uint16:
			itemValues, err = appendClampedUints(itemValues, []uint16{v}, maxVal)
		case []uint16:
			itemValues, err = appendClampedUints(itemValues, v, maxVal)
		case uint32:
			itemValues, err = appendClampedUints(itemValues, []uint32{v}, maxVal)
		case []uint32:
			itemValues, err = appendClampedUints(itemValues, v, maxVal)
		case uint64:
			itemValues, err = appendClampedUints(itemValues, []uint64{v}, maxVal)
		case []uint64:
			itemValues, err = appendClampedUints(itemValues, v, maxVal)
		case int:
			itemValues, err = appendClampedUints(itemValues, []int{v}, maxVal)
		case []int:
			itemValues, err = appendClampedUints(itemValues, v, maxVal)
		case int8:
			itemValues, err = appendClampedUints(itemValues, []int8{v}, maxVal)
		case []int8:
			itemValues, err = appendClampedUints(itemValues, v, maxVal)
		case int16:
			itemValues, err = appendClampedUints(itemValues, []int16{v}, maxVal)
		case []int16:
			itemValues, err = appendClampedUints(itemValues, v, maxVal)
		case int32:
			itemValues, err = appendClampedUints(itemValues, []int32{v}, maxVal)
		case []int32:
			itemValues, err = appendClampedUints(itemValues, v, maxVal)
		case int64:
			itemValues, err = appendClampedUints(itemValues, []int64{v}, maxVal)
		case []int64:
			itemValues, err = appendClampedUints(itemValues, v, maxVal)
		case string:
			itemValues, err = appendUintStrings(itemValues, []string{v}, maxVal)
		case []string:
			itemValues, err = appendUintStrings(itemValues, v, maxVal)
		default:
			err = fmt.Errorf("%w: the type of value needs to be an integer, integer slice, or string, got %T",
				ErrInvalidArgument, value)
		}

		if err != nil {
			return nil, err
		}
	}

	return itemValues, nil
}

// appendClampedUints appends values to dst, clamping each to maxVal.
// Negative values are rejected.
func appendClampedUints[T util.Integer](dst []uint64, values []T, maxVal uint64) ([]uint64, error) {
	for _, v := range values {
		if v < 0 {
			return nil, fmt.Errorf("%w: negative value %d for unsigned integer item", ErrInvalidArgument, v)
		}
		dst = append(dst, min(uint64(v), maxVal)) //nolint:gosec
	}

	return dst, nil
}

func appendUintStrings(dst []uint64, values []string, maxVal uint64) ([]uint64, error) {
	for _, s := range values {
		v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		dst = append(dst, min(v, maxVal))
	}

	return dst, nil
}
