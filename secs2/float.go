package secs2

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/go-secs2/internal/util"
)

// FloatItem represents floating-point data (F4 or F8) in a SECS-II message.
//
// Values are held as float64. For F4 items every value is rounded to float32
// precision at construction, so an item compares equal to its own decoded form.
type FloatItem struct {
	baseItem
	byteSize int       // Byte size of the floats; should be either 4 or 8
	values   []float64 // Array of floats
}

// NewFloatItem creates a new floating-point array item.
//
// byteSize (int): The size of each float value in bytes (4 or 8).
//
// values (...any): One or more values to be stored in the FloatItem. Each value can be one of the following types:
//
//   - float32 or float64, or a slice of them.
//   - string, or []string, parsed as a floating-point number.
//   - any Go integer type, or a slice of it, converted to its floating-point representation.
//
// If the `byteSize` is invalid, a value can't be converted, or the payload
// exceeds MaxByteSize, an error is set on the item.
func NewFloatItem(byteSize int, values ...any) Item {
	item := &FloatItem{byteSize: byteSize}

	fc, ok := floatFormatCode(byteSize)
	if !ok {
		item.setErrorf("%w: invalid byte size %d for float item", ErrInvalidArgument, byteSize)
		item.setHeader(UndefinedFormatCode, lengthBytesUnset, 0)

		return item
	}

	var err error
	item.values, err = combineFloatValues(byteSize, values)
	if err != nil {
		item.setError(err)
	}
	item.setHeader(fc, lengthBytesUnset, len(item.values)*byteSize)

	return item
}

// NewFloatScalar creates a floating-point item holding exactly one value.
func NewFloatScalar(byteSize int, value float64) Item {
	item, _ := NewFloatItem(byteSize, value).(*FloatItem)
	item.scalar = true

	return item
}

// decodeFloatItem builds a FloatItem from a bounds-checked big-endian payload.
func decodeFloatItem(h Header, byteSize int, payload []byte, scalar bool) (*FloatItem, error) {
	if err := checkElementLength(len(payload), byteSize, scalar); err != nil {
		return nil, err
	}

	count := len(payload) / byteSize
	item := &FloatItem{byteSize: byteSize, values: make([]float64, count)}
	for i := range count {
		start := i * byteSize
		if byteSize == 4 {
			item.values[i] = float64(math.Float32frombits(binary.BigEndian.Uint32(payload[start:])))
		} else {
			item.values[i] = math.Float64frombits(binary.BigEndian.Uint64(payload[start:]))
		}
	}
	item.scalar = scalar
	item.setHeader(h.FormatCode, h.LengthBytes, len(payload))

	return item, nil
}

func (item *FloatItem) Get(indices ...int) (Item, error) {
	return getSelf(item, indices)
}

// ToFloat retrieves the floating-point data stored within the item.
//
// The returned slice references the item's storage and must not be modified.
func (item *FloatItem) ToFloat() ([]float64, error) {
	return item.values, nil
}

// Size implements Item.Size().
func (item *FloatItem) Size() int {
	return len(item.values)
}

// Values retrieves the floating-point values stored in the item.
//
// The returned value can be type-asserted to a `[]float64`.
func (item *FloatItem) Values() any {
	return item.values
}

// ToBytes serializes the FloatItem into a byte slice conforming to the SECS-II data format.
//
// Each value is encoded as an IEEE 754 number in big-endian byte order.
func (item *FloatItem) ToBytes() []byte {
	if item.itemErr != nil {
		return []byte{}
	}

	result := item.headerBytes(len(item.values) * item.byteSize)

	if item.byteSize == 4 {
		for _, value := range item.values {
			result = binary.BigEndian.AppendUint32(result, math.Float32bits(float32(value)))
		}
	} else {
		for _, value := range item.values {
			result = binary.BigEndian.AppendUint64(result, math.Float64bits(value))
		}
	}

	return result
}

// ToSML converts the FloatItem into its SML representation, e.g. `<F4[2] 33.3 56.13>`.
func (item *FloatItem) ToSML() string {
	if item.Size() == 0 {
		return fmt.Sprintf("<F%d[0]>", item.byteSize)
	}

	var sb strings.Builder
	sb.Grow(len(item.values)*(item.byteSize*2+3) + 10)

	sb.WriteString(fmt.Sprintf("<F%d[%d] ", item.byteSize, item.Size()))

	var buf [64]byte
	for i, v := range item.values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.Write(strconv.AppendFloat(buf[:0], v, 'g', -1, item.byteSize*8))
	}

	sb.WriteByte('>')

	return sb.String()
}

// Equal reports whether both items hold the same header and values.
// Values are compared by their bit pattern, so NaN equals NaN.
func (item *FloatItem) Equal(other Item) bool {
	o, ok := other.(*FloatItem)
	if !ok || o == nil || !item.baseEqual(o) || len(item.values) != len(o.values) {
		return false
	}

	for i, v := range item.values {
		if math.Float64bits(v) != math.Float64bits(o.values[i]) {
			return false
		}
	}

	return true
}

func (item *FloatItem) Hash() uint64 {
	d := item.newDigest()
	var buf [8]byte
	for _, v := range item.values {
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// Clone creates a deep copy of the FloatItem.
func (item *FloatItem) Clone() Item {
	return &FloatItem{baseItem: item.baseItem, byteSize: item.byteSize, values: util.CloneSlice(item.values)}
}

func (item *FloatItem) withLengthBytes(lb LengthBytes) Item {
	return &FloatItem{baseItem: item.cloneBase(lb), byteSize: item.byteSize, values: util.CloneSlice(item.values)}
}

// ByteSize returns the size of each value in bytes.
func (item *FloatItem) ByteSize() int { return item.byteSize }

// IsFloat32 returns true if the item holds 32-bit floating-point values.
func (item *FloatItem) IsFloat32() bool { return item.byteSize == 4 }

// IsFloat64 returns true if the item holds 64-bit floating-point values.
func (item *FloatItem) IsFloat64() bool { return item.byteSize == 8 }

func combineFloatValues(byteSize int, values []any) ([]float64, error) { //nolint:gocyclo,cyclop
	itemValues := make([]float64, 0, len(values))

	for _, value := range values {
		switch v := value.(type) {
		case float32:
			itemValues = append(itemValues, float64(v))
		case []float32:
			itemValues = util.AppendConverted(itemValues, v)
		case float64:
			itemValues = append(itemValues, v)
		case []float64:
			itemValues = append(itemValues, v...)
		case int:
			itemValues = append(itemValues, float64(v))
		case []int:
			itemValues = util.AppendConverted(itemValues, v)
		case int8:
			itemValues = append(itemValues, float64(v))
		case []int8:
			itemValues = util.AppendConverted(itemValues, v)
		case int16:
			itemValues = append(itemValues, float64(v))
		case []int16:
			itemValues = util.AppendConverted(itemValues, v)
		case int32:
			itemValues = append(itemValues, float64(v))
		case []int32:
			itemValues = util.AppendConverted(itemValues, v)
		case int64:
			itemValues = append(itemValues, float64(v))
		case []int64:
			itemValues = util.AppendConverted(itemValues, v)
		case uint:
			itemValues = append(itemValues, float64(v))
		case []uint:
			itemValues = util.AppendConverted(itemValues, v)
		case uint8:
			itemValues = append(itemValues, float64(v))
		case []uint8:
			itemValues = util.AppendConverted(itemValues, v)
		case uint16:
			itemValues = append(itemValues, float64(v))
		case []uint16:
			itemValues = util.AppendConverted(itemValues, v)
		case uint32:
			itemValues = append(itemValues, float64(v))
		case []uint32:
			itemValues = util.AppendConverted(itemValues, v)
		case uint64:
			itemValues = append(itemValues, float64(v))
		case []uint64:
			itemValues = util.AppendConverted(itemValues, v)
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(v), byteSize*8)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}
			itemValues = append(itemValues, f)
		case []string:
			for _, s := range v {
				f, err := strconv.ParseFloat(strings.TrimSpace(s), byteSize*8)
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
				}
				itemValues = append(itemValues, f)
			}
		default:
			return nil, fmt.Errorf("%w: the type of value needs to be a number, number slice, or string, got %T",
				ErrInvalidArgument, value)
		}
	}

	if byteSize == 4 {
		for i, v := range itemValues {
			itemValues[i] = float64(float32(v))
		}
	}

	return itemValues, nil
}
