package secs2

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/arloliu/go-secs2/internal/util"
)

// BooleanItem represents boolean values in a SECS-II message.
//
// Each value occupies one payload byte, 0x00 for false and 0x01 for true.
// A BooleanItem holding exactly one value is indistinguishable on the wire from
// a boolean scalar; the decoder always produces a scalar for a one-byte payload.
type BooleanItem struct {
	baseItem
	values []bool // List of boolean values
}

// NewBooleanItem creates a new boolean array item containing the provided values.
//
// It accepts one or more arguments, each of which can be:
//   - A single boolean value (`bool`).
//   - A slice of boolean values (`[]bool`).
//
// All provided values are combined into a single slice stored within the new item.
//
// If the combined data exceeds the maximum allowed byte size, or an argument has
// an unsupported type, an error is set on the item.
func NewBooleanItem(values ...any) Item {
	item := &BooleanItem{}

	var err error
	item.values, err = combineBoolValues(values)
	if err != nil {
		item.setError(err)
	}
	item.setHeader(BooleanFormatCode, lengthBytesUnset, len(item.values))

	return item
}

// NewBooleanScalar creates a boolean item holding exactly one value.
func NewBooleanScalar(value bool) Item {
	item := &BooleanItem{values: []bool{value}}
	item.scalar = true
	item.setHeader(BooleanFormatCode, lengthBytesUnset, 1)

	return item
}

// decodeBooleanItem builds a BooleanItem from a bounds-checked payload.
// Any non-zero byte is decoded as true.
func decodeBooleanItem(h Header, payload []byte, scalar bool) (*BooleanItem, error) {
	if scalar && len(payload) != 1 {
		return nil, fmt.Errorf("%w: boolean scalar needs 1 byte, got %d", ErrFixedWidth, len(payload))
	}

	item := &BooleanItem{values: make([]bool, len(payload))}
	for i, v := range payload {
		item.values[i] = v != 0
	}
	item.scalar = scalar
	item.setHeader(BooleanFormatCode, h.LengthBytes, len(payload))

	return item, nil
}

func (item *BooleanItem) Get(indices ...int) (Item, error) {
	return getSelf(item, indices)
}

// ToBoolean retrieves the boolean data stored within the item.
//
// The returned slice references the item's storage and must not be modified.
func (item *BooleanItem) ToBoolean() ([]bool, error) {
	return item.values, nil
}

// Size implements Item.Size().
func (item *BooleanItem) Size() int {
	return len(item.values)
}

// Values retrieves the boolean values stored in the item.
//
// The returned value can be type-asserted to a `[]bool`.
func (item *BooleanItem) Values() any {
	return item.values
}

// ToBytes serializes the BooleanItem into a byte slice conforming to the SECS-II data format.
func (item *BooleanItem) ToBytes() []byte {
	if item.itemErr != nil {
		return []byte{}
	}

	result := item.headerBytes(len(item.values))
	for _, v := range item.values {
		if v {
			result = append(result, 1)
		} else {
			result = append(result, 0)
		}
	}

	return result
}

// ToSML converts the BooleanItem into its SML representation, e.g. `<BOOLEAN[2] T F>`.
func (item *BooleanItem) ToSML() string {
	if item.Size() == 0 {
		return "<BOOLEAN[0]>"
	}

	itemSize := strconv.Itoa(item.Size())

	var sb strings.Builder
	sb.Grow(item.Size()*2 + 12 + len(itemSize))

	sb.WriteString("<BOOLEAN[")
	sb.WriteString(itemSize)
	sb.WriteString("] ")

	for i, v := range item.values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if v {
			sb.WriteByte('T')
		} else {
			sb.WriteByte('F')
		}
	}

	sb.WriteByte('>')

	return sb.String()
}

func (item *BooleanItem) Equal(other Item) bool {
	o, ok := other.(*BooleanItem)
	return ok && o != nil && item.baseEqual(o) && slices.Equal(item.values, o.values)
}

func (item *BooleanItem) Hash() uint64 {
	d := item.newDigest()
	for _, v := range item.values {
		if v {
			_, _ = d.Write([]byte{1})
		} else {
			_, _ = d.Write([]byte{0})
		}
	}

	return d.Sum64()
}

// Clone creates a deep copy of the BooleanItem.
func (item *BooleanItem) Clone() Item {
	return &BooleanItem{baseItem: item.baseItem, values: util.CloneSlice(item.values)}
}

func (item *BooleanItem) withLengthBytes(lb LengthBytes) Item {
	return &BooleanItem{baseItem: item.cloneBase(lb), values: util.CloneSlice(item.values)}
}

// IsBoolean returns true, indicating that BooleanItem is a boolean data item.
func (item *BooleanItem) IsBoolean() bool { return true }

func combineBoolValues(values []any) ([]bool, error) {
	itemValues := make([]bool, 0, len(values))
	for _, value := range values {
		switch v := value.(type) {
		case bool:
			itemValues = append(itemValues, v)
		case []bool:
			itemValues = append(itemValues, v...)
		default:
			return nil, fmt.Errorf("%w: the type of value needs to be bool or []bool, got %T", ErrInvalidArgument, value)
		}
	}

	return itemValues, nil
}
