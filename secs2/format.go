package secs2

// FormatCode is the 6-bit tag that identifies the data type of a SECS-II item.
//
// The numeric value of a FormatCode is its wire number, the value stored in the
// upper six bits of an item's header byte.
type FormatCode uint8

const (
	ListFormatCode       FormatCode = 0o00
	BinaryFormatCode     FormatCode = 0o10
	BooleanFormatCode    FormatCode = 0o11
	ASCIIFormatCode      FormatCode = 0o20
	JIS8FormatCode       FormatCode = 0o21 // reserved, not implemented
	Char2FormatCode      FormatCode = 0o22 // reserved, not implemented
	Int64FormatCode      FormatCode = 0o30
	Int8FormatCode       FormatCode = 0o31
	Int16FormatCode      FormatCode = 0o32
	Int32FormatCode      FormatCode = 0o34
	Float64FormatCode    FormatCode = 0o40
	Float32FormatCode    FormatCode = 0o44
	Uint64FormatCode     FormatCode = 0o50
	Uint8FormatCode      FormatCode = 0o51
	Uint16FormatCode     FormatCode = 0o52
	Uint32FormatCode     FormatCode = 0o54
	UndefinedFormatCode  FormatCode = 0o76
	HeaderOnlyFormatCode FormatCode = 0o77
)

const (
	ListType       = "list"
	BinaryType     = "binary"
	BooleanType    = "boolean"
	ASCIIType      = "ascii"
	JIS8Type       = "jis8"
	Char2Type      = "char2"
	Int8Type       = "i1"
	Int16Type      = "i2"
	Int32Type      = "i4"
	Int64Type      = "i8"
	Uint8Type      = "u1"
	Uint16Type     = "u2"
	Uint32Type     = "u4"
	Uint64Type     = "u8"
	Float32Type    = "f4"
	Float64Type    = "f8"
	UndefinedType  = "undefined"
	HeaderOnlyType = "header-only"
)

type formatInfo struct {
	typ       string
	sml       string
	size      int
	supported bool
}

// formatTable is indexed by the 6-bit wire number. Entries with an empty typ
// are numbers that have no assigned format code.
var formatTable = [64]formatInfo{
	ListFormatCode:       {typ: ListType, sml: "L", size: 1, supported: true},
	BinaryFormatCode:     {typ: BinaryType, sml: "B", size: 1, supported: true},
	BooleanFormatCode:    {typ: BooleanType, sml: "BOOLEAN", size: 1, supported: true},
	ASCIIFormatCode:      {typ: ASCIIType, sml: "A", size: 1, supported: true},
	JIS8FormatCode:       {typ: JIS8Type, sml: "J", size: 1},
	Char2FormatCode:      {typ: Char2Type, sml: "V", size: 2},
	Int64FormatCode:      {typ: Int64Type, sml: "I8", size: 8, supported: true},
	Int8FormatCode:       {typ: Int8Type, sml: "I1", size: 1, supported: true},
	Int16FormatCode:      {typ: Int16Type, sml: "I2", size: 2, supported: true},
	Int32FormatCode:      {typ: Int32Type, sml: "I4", size: 4, supported: true},
	Float64FormatCode:    {typ: Float64Type, sml: "F8", size: 8, supported: true},
	Float32FormatCode:    {typ: Float32Type, sml: "F4", size: 4, supported: true},
	Uint64FormatCode:     {typ: Uint64Type, sml: "U8", size: 8, supported: true},
	Uint8FormatCode:      {typ: Uint8Type, sml: "U1", size: 1, supported: true},
	Uint16FormatCode:     {typ: Uint16Type, sml: "U2", size: 2, supported: true},
	Uint32FormatCode:     {typ: Uint32Type, sml: "U4", size: 4, supported: true},
	UndefinedFormatCode:  {typ: UndefinedType, sml: "UNDEFINED"},
	HeaderOnlyFormatCode: {typ: HeaderOnlyType, sml: "HEADER_ONLY"},
}

// FormatCodeOf maps a 6-bit wire number to its format code.
//
// Only the lower six bits of n are considered. Numbers that are not assigned to
// any format code map to UndefinedFormatCode.
func FormatCodeOf(n byte) FormatCode {
	n &= 0x3F
	if formatTable[n].typ == "" {
		return UndefinedFormatCode
	}

	return FormatCode(n)
}

// Number returns the 6-bit wire number of the format code.
func (fc FormatCode) Number() byte {
	return byte(fc) & 0x3F
}

// String returns the SML tag of the format code, e.g. "L", "A", "U4".
func (fc FormatCode) String() string {
	if info := fc.info(); info.sml != "" {
		return info.sml
	}

	return "UNDEFINED"
}

// Type returns the item type name of the format code, e.g. "list", "ascii", "u4".
func (fc FormatCode) Type() string {
	if info := fc.info(); info.typ != "" {
		return info.typ
	}

	return UndefinedType
}

// ElementSize returns the byte width of a single value of the format code.
//
// List, Binary, Boolean and ASCII report 1. Undefined and HeaderOnly report 0.
func (fc FormatCode) ElementSize() int {
	return fc.info().size
}

// IsSupported reports whether the codec can construct items of the format code.
//
// The reserved text codes (JIS-8 and 2-byte character) and the Undefined and
// HeaderOnly sentinels are not supported.
func (fc FormatCode) IsSupported() bool {
	return fc.info().supported
}

// IsFixedWidth reports whether a single value of the format code occupies a fixed
// number of bytes, so the factory has to choose between a scalar and an array.
func (fc FormatCode) IsFixedWidth() bool {
	switch fc {
	case BooleanFormatCode,
		Int8FormatCode, Int16FormatCode, Int32FormatCode, Int64FormatCode,
		Uint8FormatCode, Uint16FormatCode, Uint32FormatCode, Uint64FormatCode,
		Float32FormatCode, Float64FormatCode:
		return true
	default:
		return false
	}
}

func (fc FormatCode) info() formatInfo {
	if fc > 0x3F {
		return formatInfo{}
	}

	return formatTable[fc]
}

func intFormatCode(byteSize int) (FormatCode, bool) {
	switch byteSize {
	case 1:
		return Int8FormatCode, true
	case 2:
		return Int16FormatCode, true
	case 4:
		return Int32FormatCode, true
	case 8:
		return Int64FormatCode, true
	default:
		return UndefinedFormatCode, false
	}
}

func uintFormatCode(byteSize int) (FormatCode, bool) {
	switch byteSize {
	case 1:
		return Uint8FormatCode, true
	case 2:
		return Uint16FormatCode, true
	case 4:
		return Uint32FormatCode, true
	case 8:
		return Uint64FormatCode, true
	default:
		return UndefinedFormatCode, false
	}
}

func floatFormatCode(byteSize int) (FormatCode, bool) {
	switch byteSize {
	case 4:
		return Float32FormatCode, true
	case 8:
		return Float64FormatCode, true
	default:
		return UndefinedFormatCode, false
	}
}
