package secs2

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/arloliu/go-secs2/internal/util"
)

var asciiQuote byte = '"'

// UseASCIISingleQuote sets the quoting character for ASCII items in SML to a single quote (').
func UseASCIISingleQuote() {
	asciiQuote = '\''
}

// UseASCIIDoubleQuote sets the quoting character for ASCII items in SML to a double quote (").
func UseASCIIDoubleQuote() {
	asciiQuote = '"'
}

// ASCIIQuote returns the quote of ASCII items
func ASCIIQuote() rune {
	return rune(asciiQuote)
}

var strictMode = false

// WithStrictMode enables or disables strict mode for generating SML representations of ASCII items.
//
// In strict mode, only printable ASCII characters (0x20 to 0x7E) are quoted, every
// other byte is written as a hexadecimal number, e.g. `<A[3] "ab" 0x0A>`.
//
// By default, strict mode is disabled.
func WithStrictMode(enable bool) {
	strictMode = enable
}

// IsStrictMode reports whether strict mode is enabled for ASCII items.
func IsStrictMode() bool {
	return strictMode
}

// ASCIIItem represents a text string in a SECS-II message.
//
// The text is stored on the wire with one byte per character using ISO-8859-1,
// whose lower half is ASCII. The payload length is the number of characters.
type ASCIIItem struct {
	baseItem
	value string // text as a Go (UTF-8) string
	raw   []byte // text encoded in ISO-8859-1
}

// NewASCIIItem creates a new ASCIIItem containing the given string.
//
// Every character of value must be representable in ISO-8859-1 (code points
// 0-255); otherwise, or if the string is longer than MaxByteSize characters, an
// error is set on the item.
func NewASCIIItem(value string) Item {
	item := &ASCIIItem{}

	raw, err := charmap.ISO8859_1.NewEncoder().String(value)
	if err != nil {
		item.setErrorf("%w: string %q is not representable in ISO-8859-1: %w", ErrInvalidArgument, value, err)
		item.setHeader(ASCIIFormatCode, lengthBytesUnset, 0)

		return item
	}

	item.value = value
	item.raw = []byte(raw)
	item.setHeader(ASCIIFormatCode, lengthBytesUnset, len(item.raw))

	return item
}

// decodeASCIIItem builds an ASCIIItem from a bounds-checked payload.
func decodeASCIIItem(h Header, payload []byte) (*ASCIIItem, error) {
	value, err := charmap.ISO8859_1.NewDecoder().Bytes(payload)
	if err != nil {
		return nil, err
	}

	item := &ASCIIItem{value: string(value), raw: util.CloneSlice(payload)}
	item.setHeader(ASCIIFormatCode, h.LengthBytes, len(payload))

	return item, nil
}

func (item *ASCIIItem) Get(indices ...int) (Item, error) {
	return getSelf(item, indices)
}

// ToASCII retrieves the string stored within the item.
func (item *ASCIIItem) ToASCII() (string, error) {
	return item.value, nil
}

// Values retrieves the string stored in the item.
//
// The returned value can be type-asserted to a `string`.
func (item *ASCIIItem) Values() any {
	return item.value
}

// Size implements Item.Size(), the number of characters.
func (item *ASCIIItem) Size() int {
	return len(item.raw)
}

// ToBytes serializes the ASCIIItem into a byte slice conforming to the SECS-II data format.
func (item *ASCIIItem) ToBytes() []byte {
	if item.itemErr != nil {
		return []byte{}
	}

	result := item.headerBytes(len(item.raw))

	return append(result, item.raw...)
}

// ToSML converts the ASCIIItem into its SML representation.
//
// It has two modes: strict and non-strict.
//
// The format of strict mode is as follows:
//   - Printable ASCII characters are enclosed in quotes (e.g., "Hello").
//   - Any other byte is represented in hexadecimal format (e.g., 0x0A for newline).
//   - If the item's value is empty, it's represented as `<A[0]>`.
//
// The format of non-strict mode writes the original value between quotes,
// without escaping.
func (item *ASCIIItem) ToSML() string {
	if item.Size() == 0 {
		return "<A[0]>"
	}

	if strictMode {
		return item.toSMLStrict()
	}

	return item.toSMLFast()
}

func (item *ASCIIItem) toSMLStrict() string {
	var sb strings.Builder

	sizeStr := strconv.Itoa(item.Size())
	sb.Grow(len(item.raw) + len(sizeStr) + 8)

	sb.WriteString("<A[")
	sb.WriteString(sizeStr)
	sb.WriteByte(']')

	inPrintableRun := false
	for _, ch := range item.raw {
		isPrintable := ch >= 0x20 && ch < 0x7F

		if isPrintable && !inPrintableRun {
			sb.WriteByte(' ')
			sb.WriteByte(asciiQuote)
			inPrintableRun = true
		} else if !isPrintable && inPrintableRun {
			sb.WriteByte(asciiQuote)
			inPrintableRun = false
		}

		if isPrintable {
			if ch == asciiQuote {
				sb.WriteByte('\\')
			}
			sb.WriteByte(ch)
		} else {
			fmt.Fprintf(&sb, " 0x%02X", ch)
		}
	}

	if inPrintableRun {
		sb.WriteByte(asciiQuote)
	}

	sb.WriteByte('>')

	return sb.String()
}

func (item *ASCIIItem) toSMLFast() string {
	var sb strings.Builder

	sizeStr := strconv.Itoa(item.Size())
	sb.Grow(len(item.value) + len(sizeStr) + 8)

	sb.WriteString("<A[")
	sb.WriteString(sizeStr)
	sb.WriteString("] ")
	sb.WriteByte(asciiQuote)
	sb.WriteString(item.value)
	sb.WriteByte(asciiQuote)
	sb.WriteByte('>')

	return sb.String()
}

func (item *ASCIIItem) Equal(other Item) bool {
	o, ok := other.(*ASCIIItem)
	return ok && o != nil && item.baseEqual(o) && item.value == o.value
}

func (item *ASCIIItem) Hash() uint64 {
	d := item.newDigest()
	_, _ = d.Write(item.raw)

	return d.Sum64()
}

// Clone creates a deep copy of the ASCIIItem.
func (item *ASCIIItem) Clone() Item {
	return &ASCIIItem{baseItem: item.baseItem, value: item.value, raw: util.CloneSlice(item.raw)}
}

func (item *ASCIIItem) withLengthBytes(lb LengthBytes) Item {
	return &ASCIIItem{baseItem: item.cloneBase(lb), value: item.value, raw: util.CloneSlice(item.raw)}
}

// IsASCII returns true, indicating that ASCIIItem is a ASCII data item.
func (item *ASCIIItem) IsASCII() bool { return true }
