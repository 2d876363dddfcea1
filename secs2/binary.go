package secs2

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/go-secs2/internal/util"
)

// BinaryItem represents binary data in a SECS-II message.
//
// A BinaryItem is always an array: its payload length is the number of bytes
// it holds, and an empty BinaryItem encodes to a header only.
type BinaryItem struct {
	baseItem
	values []byte // Array of binary values
}

// NewBinaryItem creates a new BinaryItem representing binary data.
//
// It accepts one or more arguments, each of which can be:
//   - A single byte (`byte`)
//   - A byte slice (`[]byte`)
//   - A string representing a binary value between 0 and 255
//     (e.g., "0b1101", "0x2F", "0o0073").
//   - A integer representing a binary value between 0 and 255
//     (e.g., 1, 13, 255).
//
// All provided values are combined into a single byte slice stored within the new item.
//
// If the combined data exceeds the maximum allowed byte size, or a value can't
// be converted, an error is set on the item.
func NewBinaryItem(values ...any) Item {
	item := &BinaryItem{}

	var err error
	item.values, err = combineByteValues(values)
	if err != nil {
		item.setError(err)
	}
	item.setHeader(BinaryFormatCode, lengthBytesUnset, len(item.values))

	return item
}

// decodeBinaryItem builds a BinaryItem from a payload that has already been bounds-checked.
func decodeBinaryItem(h Header, payload []byte) *BinaryItem {
	item := &BinaryItem{values: util.CloneSlice(payload)}
	item.setHeader(BinaryFormatCode, h.LengthBytes, len(payload))

	return item
}

func (item *BinaryItem) Get(indices ...int) (Item, error) {
	return getSelf(item, indices)
}

// ToBinary retrieves the binary data stored within the item.
//
// The returned slice references the item's storage and must not be modified.
func (item *BinaryItem) ToBinary() ([]byte, error) {
	return item.values, nil
}

// Size implements Item.Size().
func (item *BinaryItem) Size() int {
	return len(item.values)
}

// Values retrieves the binary values stored in the item as a byte slice.
//
// The returned value can be type-asserted to a `[]byte`.
func (item *BinaryItem) Values() any {
	return item.values
}

// ToBytes serializes the BinaryItem into a byte slice conforming to the SECS-II data format.
func (item *BinaryItem) ToBytes() []byte {
	if item.itemErr != nil {
		return []byte{}
	}

	result := item.headerBytes(len(item.values))

	return append(result, item.values...)
}

// ToSML converts the BinaryItem into its SML representation.
//
// Each byte is rendered in binary notation, e.g. `<B[2] 0b1 0b11111111>`.
func (item *BinaryItem) ToSML() string {
	if item.Size() == 0 {
		return "<B[0]>"
	}

	var sb strings.Builder
	// around 11 characters per byte
	sb.Grow(len(item.values)*11 + 6)

	sb.WriteString(fmt.Sprintf("<B[%d] ", item.Size()))

	var binBuf [8]byte
	for i, v := range item.values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString("0b")
		sb.Write(strconv.AppendUint(binBuf[:0], uint64(v), 2))
	}

	sb.WriteByte('>')

	return sb.String()
}

func (item *BinaryItem) Equal(other Item) bool {
	o, ok := other.(*BinaryItem)
	return ok && o != nil && item.baseEqual(o) && bytes.Equal(item.values, o.values)
}

func (item *BinaryItem) Hash() uint64 {
	d := item.newDigest()
	_, _ = d.Write(item.values)

	return d.Sum64()
}

// Clone creates a deep copy of the BinaryItem.
func (item *BinaryItem) Clone() Item {
	return &BinaryItem{baseItem: item.baseItem, values: util.CloneSlice(item.values)}
}

func (item *BinaryItem) withLengthBytes(lb LengthBytes) Item {
	return &BinaryItem{baseItem: item.cloneBase(lb), values: util.CloneSlice(item.values)}
}

// IsBinary returns true, indicating that BinaryItem is a binary data item.
func (item *BinaryItem) IsBinary() bool { return true }

func combineByteValues(values []any) ([]byte, error) {
	itemValues := make([]byte, 0, len(values))
	for _, value := range values {
		switch v := value.(type) {
		case int:
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("%w: the value %d out of range, must between [0, 255]", ErrInvalidArgument, v)
			}
			itemValues = append(itemValues, byte(v))
		case byte:
			itemValues = append(itemValues, v)
		case []byte:
			itemValues = append(itemValues, v...)
		case string:
			intVal, err := strconv.ParseInt(v, 0, 0)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}
			if intVal < 0 || intVal > 255 {
				return nil, fmt.Errorf("%w: the value %d out of range, must between [0, 255]", ErrInvalidArgument, intVal)
			}
			itemValues = append(itemValues, byte(intVal))
		default:
			return nil, fmt.Errorf("%w: the type of value needs to be byte, []byte, int, or string, got %T", ErrInvalidArgument, value)
		}
	}

	return itemValues, nil
}
