package secs2

import (
	"fmt"
	"sync"
)

// MaxListDepth is the maximum allowed nesting depth for list items during decoding.
const MaxListDepth = 64

// decoder pool
var decoderPool = sync.Pool{New: func() any { return new(itemDecoder) }}

// itemDecoder holds the state of one top-level decode call.
//
// Offsets are threaded through the recursive calls as return values; the decoder
// only keeps the input buffer and the current list depth.
type itemDecoder struct {
	input  []byte
	depth  int
	strict bool // decode fixed-width items as scalars only
}

func getDecoder(data []byte) *itemDecoder {
	d, _ := decoderPool.Get().(*itemDecoder)
	if d == nil {
		d = new(itemDecoder)
	}
	d.input = data
	d.depth = 0
	d.strict = false

	return d
}

func putDecoder(d *itemDecoder) {
	d.input = nil
	decoderPool.Put(d)
}

// Decode decodes the item whose header starts at offset in data.
//
// It returns the item and the number of bytes it occupies, header included. For a
// list the consumed count covers all nested items.
//
// Items with a reserved or undefined format code (JIS-8, 2-byte character,
// Undefined, HeaderOnly) are not supported: Decode returns a nil item with a nil
// error, and consumed covers the declared payload so the caller can skip it.
// Inside a list such items are skipped and the list holds the remaining elements.
//
// Fixed-width types (Boolean, integers, floats) are decoded as scalars when the
// payload length equals the element width and as arrays otherwise.
//
// Malformed input yields a *DecodeError that identifies the offset and declared
// length of the offending item and wraps one of the package's sentinel errors.
func Decode(data []byte, offset int) (Item, int, error) {
	d := getDecoder(data)
	defer putDecoder(d)

	item, next, err := d.decodeAt(offset)
	if err != nil {
		return nil, 0, err
	}

	return item, next - offset, nil
}

// DecodeScalar decodes a single fixed-width value located at offset in data.
//
// It behaves like Decode but requires the item at offset to be a Boolean,
// integer or float scalar; a payload length different from the element width
// yields ErrFixedWidth, and any other format code yields ErrInvalidArgument.
func DecodeScalar(data []byte, offset int) (Item, int, error) {
	h, err := DecodeHeader(data, offset)
	if err != nil {
		return nil, 0, err
	}

	if !h.FormatCode.IsFixedWidth() {
		return nil, 0, newDecodeError(offset, h.Length, h.FormatCode,
			fmt.Errorf("%w: %s items have no scalar form", ErrInvalidArgument, h.FormatCode))
	}

	d := getDecoder(data)
	defer putDecoder(d)
	d.strict = true

	item, next, err := d.decodeAt(offset)
	if err != nil {
		return nil, 0, err
	}

	return item, next - offset, nil
}

// DecodeAll decodes consecutive top-level items until data is exhausted.
//
// Unsupported items are skipped. An empty buffer yields an empty slice.
func DecodeAll(data []byte) ([]Item, error) {
	items := []Item{}
	for offset := 0; offset < len(data); {
		item, consumed, err := Decode(data, offset)
		if err != nil {
			return nil, err
		}

		if item != nil {
			items = append(items, item)
		}
		offset += consumed
	}

	return items, nil
}

// Encode serializes item into its SECS-II byte representation.
//
// It returns ErrInvalidArgument for a nil item and the item's own error, e.g.
// ErrLengthRange, when the item could not be constructed.
func Encode(item Item) ([]byte, error) {
	if item == nil {
		return nil, fmt.Errorf("%w: nil item", ErrInvalidArgument)
	}

	if err := item.Error(); err != nil {
		return nil, err
	}

	return item.ToBytes(), nil
}

// decodeAt decodes the item at offset and returns it together with the offset
// of the byte that follows it.
func (d *itemDecoder) decodeAt(offset int) (Item, int, error) {
	h, err := DecodeHeader(d.input, offset)
	if err != nil {
		return nil, 0, err
	}

	if h.FormatCode == ListFormatCode {
		return d.decodeList(h, offset)
	}

	payloadStart := offset + h.Len()
	end := payloadStart + h.Length
	if end > len(d.input) {
		return nil, 0, newDecodeError(offset, h.Length, h.FormatCode,
			fmt.Errorf("%w: need %d payload bytes, have %d", ErrTruncated, h.Length, len(d.input)-payloadStart))
	}

	scalar := h.FormatCode.IsFixedWidth() && h.Length == h.FormatCode.ElementSize()
	if d.strict {
		scalar = true
	}

	item, err := decodeValue(h, d.input[payloadStart:end], scalar)
	if err != nil {
		return nil, 0, newDecodeError(offset, h.Length, h.FormatCode, err)
	}

	return item, end, nil
}

// decodeList decodes the elements of a list whose header h starts at offset.
//
// The list header declares an element count rather than a byte count, so the
// cursor returned by each element is the only way to find the next one.
func (d *itemDecoder) decodeList(h Header, offset int) (Item, int, error) {
	d.depth++
	if d.depth > MaxListDepth {
		return nil, 0, newDecodeError(offset, h.Length, h.FormatCode,
			fmt.Errorf("%w: maximum is %d", ErrDepthLimit, MaxListDepth))
	}

	cursor := offset + h.Len()

	// every element needs at least 2 bytes (1 format byte + 1 length byte)
	if remaining := len(d.input) - cursor; remaining < 2*h.Length {
		return nil, 0, newDecodeError(offset, h.Length, h.FormatCode,
			fmt.Errorf("%w: list claims %d items but only %d bytes remaining", ErrTruncated, h.Length, remaining))
	}

	list := &ListItem{values: make([]Item, 0, h.Length)}
	for range h.Length {
		elem, next, err := d.decodeAt(cursor)
		if err != nil {
			return nil, 0, err
		}
		cursor = next

		if elem != nil {
			list.values = append(list.values, elem)
		}
	}
	d.depth--

	list.setHeader(ListFormatCode, h.LengthBytes, len(list.values))

	return list, cursor, nil
}

// decodeValue dispatches a bounds-checked payload to the decoder of its format code.
// It returns a nil item for unsupported format codes.
func decodeValue(h Header, payload []byte, scalar bool) (Item, error) { //nolint:cyclop
	switch h.FormatCode {
	case BinaryFormatCode:
		return decodeBinaryItem(h, payload), nil
	case ASCIIFormatCode:
		return decodeASCIIItem(h, payload)
	case BooleanFormatCode:
		return decodeBooleanItem(h, payload, scalar)

	case Int8FormatCode, Int16FormatCode, Int32FormatCode, Int64FormatCode:
		return decodeIntItem(h, h.FormatCode.ElementSize(), payload, scalar)

	case Uint8FormatCode, Uint16FormatCode, Uint32FormatCode, Uint64FormatCode:
		return decodeUintItem(h, h.FormatCode.ElementSize(), payload, scalar)

	case Float32FormatCode, Float64FormatCode:
		return decodeFloatItem(h, h.FormatCode.ElementSize(), payload, scalar)

	case ListFormatCode, JIS8FormatCode, Char2FormatCode, UndefinedFormatCode, HeaderOnlyFormatCode:
		return nil, nil
	}

	return nil, nil
}
