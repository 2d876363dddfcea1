package secs2

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ListItem represents a list of items in a SECS-II message.
//
// The length of a ListItem is the number of items it contains, counted
// *non-recursively*; it's encoded in the header in place of a byte count.
//
// ListItem is the only mutable item type. Its methods are not safe for concurrent
// use; callers that share a ListItem across goroutines must serialize mutation.
type ListItem struct {
	baseItem
	values []Item // Array of Items that this ListItem contains
}

// NewListItem creates a new ListItem containing the given items.
//
// nil values are skipped. If the number of items exceeds MaxByteSize, an error
// is set on the item.
func NewListItem(values ...Item) Item {
	item := &ListItem{values: make([]Item, 0, len(values))}
	for _, value := range values {
		if value == nil {
			continue
		}
		item.values = append(item.values, value)
	}
	item.setHeader(ListFormatCode, lengthBytesUnset, len(item.values))

	return item
}

// Get retrieves a nested item by 0-based indices.
//
// Without indices it returns the list itself.
func (item *ListItem) Get(indices ...int) (Item, error) {
	var dataItem Item = item
	for _, idx := range indices {
		listItem, ok := dataItem.(*ListItem)
		if !ok {
			return nil, newItemErrorf("failed to get nested item: %s is not a list, indices is %v", dataItem.Type(), indices)
		}

		if idx < 0 || idx >= listItem.Size() {
			return nil, newItemErrorf("failed to get nested item: index %d out of range [0, %d), indices is %v",
				idx, listItem.Size(), indices)
		}
		dataItem = listItem.values[idx]
	}

	return dataItem, nil
}

// At returns the element at the 0-based index.
//
// It returns ErrInvalidArgument if index is out of range.
func (item *ListItem) At(index int) (Item, error) {
	if index < 0 || index >= len(item.values) {
		return nil, fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidArgument, index, len(item.values))
	}

	return item.values[index], nil
}

// Append adds items to the end of the list.
//
// It returns ErrInvalidArgument if any item is nil, in which case the list is left
// unchanged, and ErrLengthRange if the list would exceed MaxByteSize elements.
func (item *ListItem) Append(values ...Item) error {
	for _, value := range values {
		if value == nil {
			return fmt.Errorf("%w: nil item", ErrInvalidArgument)
		}
	}

	if len(item.values)+len(values) > MaxByteSize {
		return fmt.Errorf("%w: list can't hold %d elements", ErrLengthRange, len(item.values)+len(values))
	}

	item.values = append(item.values, values...)
	item.updateLength()

	return nil
}

// Insert inserts value before the element at the 0-based index.
//
// index may equal Size() to append. It returns ErrInvalidArgument if value is nil
// or index is out of range.
func (item *ListItem) Insert(index int, value Item) error {
	if value == nil {
		return fmt.Errorf("%w: nil item", ErrInvalidArgument)
	}

	if index < 0 || index > len(item.values) {
		return fmt.Errorf("%w: index %d out of range [0, %d]", ErrInvalidArgument, index, len(item.values))
	}

	if len(item.values)+1 > MaxByteSize {
		return fmt.Errorf("%w: list can't hold %d elements", ErrLengthRange, len(item.values)+1)
	}

	item.values = append(item.values, nil)
	copy(item.values[index+1:], item.values[index:])
	item.values[index] = value
	item.updateLength()

	return nil
}

// Remove deletes and returns the element at the 0-based index.
//
// It returns ErrInvalidArgument if index is out of range.
func (item *ListItem) Remove(index int) (Item, error) {
	if index < 0 || index >= len(item.values) {
		return nil, fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidArgument, index, len(item.values))
	}

	removed := item.values[index]
	item.values = append(item.values[:index], item.values[index+1:]...)
	item.updateLength()

	return removed, nil
}

// ElementAt resolves a dot-separated, 1-based address such as "3.2" to a
// descendant item.
//
// Each segment indexes the children of the list reached so far; the traversal
// only descends into lists. It reports false when a segment is malformed or out
// of range, or when the address continues past a non-list item.
func (item *ListItem) ElementAt(address string) (Item, bool) {
	if address == "" {
		return nil, false
	}

	current := item
	segments := strings.Split(address, ".")
	for i, segment := range segments {
		idx, err := strconv.Atoi(segment)
		if err != nil || idx < 1 || idx > len(current.values) {
			return nil, false
		}

		elem := current.values[idx-1]
		if i == len(segments)-1 {
			return elem, true
		}

		sublist, ok := elem.(*ListItem)
		if !ok {
			return nil, false
		}
		current = sublist
	}

	return nil, false
}

// Flatten returns every descendant of the list keyed by its address.
//
// Elements of the list itself are keyed "1", "2", ...; elements of a sublist
// at address "3" are keyed "3.1", "3.2", ... and so on at every depth. Sublists
// appear under their own address as well.
func (item *ListItem) Flatten() map[string]Item {
	result := make(map[string]Item)
	item.flattenInto("", result)

	return result
}

func (item *ListItem) flattenInto(prefix string, result map[string]Item) {
	for i, elem := range item.values {
		addr := strconv.Itoa(i + 1)
		if prefix != "" {
			addr = prefix + "." + addr
		}
		result[addr] = elem

		if sublist, ok := elem.(*ListItem); ok {
			sublist.flattenInto(addr, result)
		}
	}
}

// ToList retrieves the items stored within the list.
//
// The returned slice references the list's storage; use Append, Insert and
// Remove to modify the list.
func (item *ListItem) ToList() ([]Item, error) {
	return item.values, nil
}

// Size implements Item.Size(), the number of elements.
func (item *ListItem) Size() int {
	return len(item.values)
}

// Values retrieves the items stored in the list.
//
// The returned value can be type-asserted to a `[]Item`.
func (item *ListItem) Values() any {
	return item.values
}

// ToBytes serializes the ListItem and its elements into a byte slice conforming
// to the SECS-II data format.
//
// It returns an empty slice if the list or any element carries an error.
func (item *ListItem) ToBytes() []byte {
	if item.itemErr != nil {
		return []byte{}
	}

	result := item.headerBytes(len(item.values) * 2)
	for _, value := range item.values {
		nested := value.ToBytes()
		if len(nested) == 0 {
			return []byte{}
		}

		result = append(result, nested...)
	}

	return result
}

// ToSML converts the ListItem into its SML representation, indenting nested
// items by two spaces per level.
func (item *ListItem) ToSML() string {
	return item.formatSML(0)
}

// Equal reports whether both lists have the same header and element-wise equal items.
func (item *ListItem) Equal(other Item) bool {
	o, ok := other.(*ListItem)
	if !ok || o == nil || !item.baseEqual(o) || len(item.values) != len(o.values) {
		return false
	}

	for i, v := range item.values {
		if !v.Equal(o.values[i]) {
			return false
		}
	}

	return true
}

func (item *ListItem) Hash() uint64 {
	d := item.newDigest()
	var buf [8]byte
	for _, v := range item.values {
		binary.BigEndian.PutUint64(buf[:], v.Hash())
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// Clone creates a deep copy of the ListItem; nested items are cloned as well.
func (item *ListItem) Clone() Item {
	return &ListItem{baseItem: item.baseItem, values: cloneItems(item.values)}
}

func (item *ListItem) withLengthBytes(lb LengthBytes) Item {
	return &ListItem{baseItem: item.cloneBase(lb), values: cloneItems(item.values)}
}

// Error returns the error of the list joined with the errors of its elements.
func (item *ListItem) Error() error {
	errs := []error{item.itemErr}
	for _, v := range item.values {
		errs = append(errs, v.Error())
	}

	return errors.Join(errs...)
}

// IsList returns true, indicating that ListItem is a list data item.
func (item *ListItem) IsList() bool { return true }

// updateLength refreshes the element count after a mutation, keeping the
// length-byte count at least as large as required.
func (item *ListItem) updateLength() {
	item.length = len(item.values)
	if lb, err := ResolveLengthBytes(item.lengthBytes, item.length); err == nil {
		item.lengthBytes = lb
	}
}

// formatSML returns the indented string representation of this list node.
// Each indent level adds 2 spaces as prefix to each line.
func (item *ListItem) formatSML(level int) string {
	indentStr := strings.Repeat("  ", level)
	if item.Size() == 0 {
		return indentStr + "<L[0]>"
	}

	var sb strings.Builder
	sb.Grow(len(item.values) * 20)

	for _, value := range item.values {
		if v, ok := value.(*ListItem); ok {
			sb.WriteString(v.formatSML(level + 1))
			sb.WriteByte('\n')
		} else {
			sb.WriteString(indentStr)
			sb.WriteString("  ")
			sb.WriteString(value.ToSML())
			sb.WriteByte('\n')
		}
	}

	return fmt.Sprintf("%s<L[%d]\n%s%s>", indentStr, item.Size(), sb.String(), indentStr)
}

func cloneItems(values []Item) []Item {
	clone := make([]Item, len(values))
	for i, v := range values {
		clone[i] = v.Clone()
	}

	return clone
}
