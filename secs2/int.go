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

// IntItem represents signed integer data (I1, I2, I4 or I8) in a SECS-II message.
//
// Values are held as int64 regardless of the byte size and are encoded in
// big-endian order with byteSize bytes each.
type IntItem struct {
	baseItem
	byteSize int     // Byte size of the integers; should be either 1, 2, 4, or 8
	values   []int64 // Array of integers
}

// NewIntItem creates a new signed integer array item.
//
// byteSize (int): The size of each integer value in bytes (1, 2, 4, or 8).
//
// values (...any): One or more values to be stored in the IntItem. Each value can be:
//   - A signed integer (`int`, `int8`, `int16`, `int32`, `int64`).
//   - A slice of signed integers (`[]int`, `[]int8`, `[]int16`, `[]int32`, `[]int64`).
//   - An unsigned integer or a slice of unsigned integers.
//   - A string, or a slice of strings, representing an integer value.
//
// Values outside the range of the byte size are clamped to the nearest bound.
//
// If the `byteSize` is invalid, a value can't be converted, or the payload
// exceeds MaxByteSize, an error is set on the item.
func NewIntItem(byteSize int, values ...any) Item {
	item := &IntItem{byteSize: byteSize}

	fc, ok := intFormatCode(byteSize)
	if !ok {
		item.setErrorf("%w: invalid byte size %d for signed integer item", ErrInvalidArgument, byteSize)
		item.setHeader(UndefinedFormatCode, lengthBytesUnset, 0)

		return item
	}

	var err error
	item.values, err = combineIntValues(byteSize, values)
	if err != nil {
		item.setError(err)
	}
	item.setHeader(fc, lengthBytesUnset, len(item.values)*byteSize)

	return item
}

// NewIntScalar creates a signed integer item holding exactly one value.
func NewIntScalar(byteSize int, value int64) Item {
	item, _ := NewIntItem(byteSize, value).(*IntItem)
	item.scalar = true

	return item
}

// decodeIntItem builds an IntItem from a bounds-checked big-endian payload.
func decodeIntItem(h Header, byteSize int, payload []byte, scalar bool) (*IntItem, error) {
	if err := checkElementLength(len(payload), byteSize, scalar); err != nil {
		return nil, err
	}

	count := len(payload) / byteSize
	item := &IntItem{byteSize: byteSize, values: make([]int64, count)}
	for i := range count {
		start := i * byteSize
		switch byteSize {
		case 1:
			item.values[i] = int64(int8(payload[start])) //nolint:gosec
		case 2:
			item.values[i] = int64(int16(binary.BigEndian.Uint16(payload[start:]))) //nolint:gosec
		case 4:
			item.values[i] = int64(int32(binary.BigEndian.Uint32(payload[start:]))) //nolint:gosec
		case 8:
			item.values[i] = int64(binary.BigEndian.Uint64(payload[start:])) //nolint:gosec
		}
	}
	item.scalar = scalar
	item.setHeader(h.FormatCode, h.LengthBytes, len(payload))

	return item, nil
}

func (item *IntItem) Get(indices ...int) (Item, error) {
	return getSelf(item, indices)
}

// ToInt retrieves the integer data stored within the item.
//
// The returned slice references the item's storage and must not be modified.
func (item *IntItem) ToInt() ([]int64, error) {
	return item.values, nil
}

// Size implements Item.Size().
func (item *IntItem) Size() int {
	return len(item.values)
}

// Values retrieves the signed integer values stored in the item.
//
// The returned value can be type-asserted to a `[]int64`.
func (item *IntItem) Values() any {
	return item.values
}

// ToBytes serializes the IntItem into a byte slice conforming to the SECS-II data format.
//
// Each value is encoded in big-endian byte order according to the byte size.
func (item *IntItem) ToBytes() []byte {
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
			result = binary.BigEndian.AppendUint64(result, uint64(value)) //nolint:gosec
		}
	}

	return result
}

// ToSML converts the IntItem into its SML representation, e.g. `<I4[3] 1 2 3>`.
func (item *IntItem) ToSML() string {
	if item.Size() == 0 {
		return fmt.Sprintf("<I%d[0]>", item.byteSize)
	}

	var sb strings.Builder
	sb.Grow(len(item.values)*10 + 10)

	sb.WriteString(fmt.Sprintf("<I%d[%d] ", item.byteSize, item.Size()))

	var intBuf [20]byte
	for i, v := range item.values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.Write(strconv.AppendInt(intBuf[:0], v, 10))
	}

	sb.WriteByte('>')

	return sb.String()
}

func (item *IntItem) Equal(other Item) bool {
	o, ok := other.(*IntItem)
	return ok && o != nil && item.baseEqual(o) && slices.Equal(item.values, o.values)
}

func (item *IntItem) Hash() uint64 {
	d := item.newDigest()
	var buf [8]byte
	for _, v := range item.values {
		binary.BigEndian.PutUint64(buf[:], uint64(v)) //nolint:gosec
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// Clone creates a deep copy of the IntItem.
func (item *IntItem) Clone() Item {
	return &IntItem{baseItem: item.baseItem, byteSize: item.byteSize, values: util.CloneSlice(item.values)}
}

func (item *IntItem) withLengthBytes(lb LengthBytes) Item {
	return &IntItem{baseItem: item.cloneBase(lb), byteSize: item.byteSize, values: util.CloneSlice(item.values)}
}

// ByteSize returns the size of each value in bytes.
func (item *IntItem) ByteSize() int { return item.byteSize }

// IsInt8 returns true if the item holds 8-bit signed integers.
func (item *IntItem) IsInt8() bool { return item.byteSize == 1 }

// IsInt16 returns true if the item holds 16-bit signed integers.
func (item *IntItem) IsInt16() bool { return item.byteSize == 2 }

// IsInt32 returns true if the item holds 32-bit signed integers.
func (item *IntItem) IsInt32() bool { return item.byteSize == 4 }

// IsInt64 returns true if the item holds 64-bit signed integers.
func (item *IntItem) IsInt64() bool { return item.byteSize == 8 }

func intRange(byteSize int) (minVal, maxVal int64) {
	if byteSize == 8 {
		return math.MinInt64, math.MaxInt64
	}

	shift := byteSize*8 - 1

	return -1 << shift, (1 << shift) - 1
}

func combineIntValues(byteSize int, values []any) ([]int64, error) { //nolint:gocyclo,cyclop
	minVal, maxVal := intRange(byteSize)
	itemValues := make([]int64, 0, len(values))

	for _, value := range values {
		switch v := value.(type) {
		case int:
			itemValues = appendClampedInts(itemValues, []int{v}, minVal, maxVal)
		case []int:
			itemValues = appendClampedInts(itemValues, v, minVal, maxVal)
		case int8:
			itemValues = appendClampedInts(itemValues, []int8{v}, minVal, maxVal)
		case []int8:
			itemValues = appendClampedInts(itemValues, v, minVal, maxVal)
		case int16:
			itemValues = appendClampedInts(itemValues, []int16{v}, minVal, maxVal)
		case []int16:
			itemValues = appendClampedInts(itemValues, v, minVal, maxVal)
		case int32:
			itemValues = appendClampedInts(itemValues, []int32{v}, minVal, maxVal)
		case []int32:
			itemValues = appendClampedInts(itemValues, v, minVal, maxVal)
		case int64:
			itemValues = appendClampedInts(itemValues, []int64{v}, minVal, maxVal)
		case []int64:
			itemValues = appendClampedInts(itemValues, v, minVal, maxVal)
		case uint:
			itemValues = appendClampedInts(itemValues, []uint{v}, minVal, maxVal)
		case []uint:
			itemValues = appendClampedInts(itemValues, v, minVal, maxVal)
		case uint8:
			itemValues = appendClampedInts(itemValues, []uint8{v}, minVal, maxVal)
		case []uint8:
			itemValues = appendClampedInts(itemValues, v, minVal, maxVal)
		case uint16:
			itemValues = appendClampedInts(itemValues, []uint16{v}, minVal, maxVal)
		case []uint16:
			itemValues = appendClampedInts(itemValues, v, minVal, maxVal)
		case uint32:
			itemValues = appendClampedInts(itemValues, []uint32{v}, minVal, maxVal)
		case []uint32:
			itemValues = appendClampedInts(itemValues, v, minVal, maxVal)
		case uint64:
			itemValues = appendClampedInts(itemValues, []uint64{v}, minVal, maxVal)
		case []uint64:
			itemValues = appendClampedInts(itemValues, v, minVal, maxVal)
		case string:
			parsed, err := parseIntString(v, minVal, maxVal)
			if err != nil {
				return nil, err
			}
			itemValues = append(itemValues, parsed)
		case []string:
			for _, s := range v {
				parsed, err := parseIntString(s, minVal, maxVal)
				if err != nil {
					return nil, err
				}
				itemValues = append(itemValues, parsed)
			}
		default:
			return nil, fmt.Errorf("%w: the type of value needs to be an integer, integer slice, or string, got %T",
				ErrInvalidArgument, value)
		}
	}

	return itemValues, nil
}

// appendClampedInts appends values to dst, clamping each to [minVal, maxVal].
func appendClampedInts[T util.Integer](dst []int64, values []T, minVal, maxVal int64) []int64 {
	for _, v := range values {
		// unsigned values above MaxInt64 would wrap around in the conversion below
		if v > 0 && uint64(v) > uint64(maxVal) { //nolint:gosec
			dst = append(dst, maxVal)
			continue
		}
		dst = append(dst, util.Clamp(int64(v), minVal, maxVal)) //nolint:gosec
	}

	return dst
}

func parseIntString(s string, minVal, maxVal int64) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return util.Clamp(v, minVal, maxVal), nil
}

// checkElementLength validates a fixed-width payload length.
func checkElementLength(length, byteSize int, scalar bool) error {
	if scalar {
		if length != byteSize {
			return fmt.Errorf("%w: scalar needs %d bytes, got %d", ErrFixedWidth, byteSize, length)
		}

		return nil
	}

	if length%byteSize != 0 {
		return fmt.Errorf("%w: %d is not a multiple of %d", ErrAlignment, length, byteSize)
	}

	return nil
}
