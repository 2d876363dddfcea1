package secs2

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		description string
		item        Item
	}{
		{"empty list", L()},
		{"nested list", L(L(U1(7)), A("x"))},
		{"empty binary", B()},
		{"binary", B(0, 1, 255)},
		{"boolean scalar", NewBooleanScalar(true)},
		{"boolean array", BOOLEAN(true, false)},
		{"empty boolean", BOOLEAN()},
		{"ascii", A("hello")},
		{"empty ascii", A("")},
		{"i1 scalar", NewIntScalar(1, -1)},
		{"i2 array", I2(-1, 0, 1)},
		{"i4 array", I4(1, 2)},
		{"i8 scalar", NewIntScalar(8, 1<<40)},
		{"empty i8", I8()},
		{"u1 array", U1(1, 2, 3)},
		{"u2 scalar", NewUintScalar(2, 65535)},
		{"u4 array", U4(1, 2)},
		{"u8 array", U8(1, 2)},
		{"f4 array", F4(1.5, -0.25)},
		{"f8 scalar", NewFloatScalar(8, 3.25)},
		{"empty f4", F4()},
		{"all types in a list", L(L(), B(1), BOOLEAN(false), A("a"), I1(1), I2(2), I4(4), I8(8),
			U1(1), U2(2), U4(4), U8(8), F4(4), F8(8))},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		data, err := Encode(test.item)
		require.NoError(err)

		decoded, consumed, err := Decode(data, 0)
		require.NoError(err)
		require.Equal(len(data), consumed)
		require.Empty(cmp.Diff(test.item, decoded))
		require.Equal(test.item.Hash(), decoded.Hash())
		require.Equal(test.item.ToSML(), decoded.ToSML())

		// re-encoding the decoded item yields the same bytes
		require.Equal(data, decoded.ToBytes())
	}
}

func TestDecode_Offset(t *testing.T) {
	require := require.New(t)

	prefix := []byte{0xDE, 0xAD, 0xBE}
	data := append(prefix, L(L(U1(7)), A("x")).ToBytes()...)
	data = append(data, 0xEF)

	item, consumed, err := Decode(data, len(prefix))
	require.NoError(err)
	// <L[2] <L[1] <U1 7>> <A "x">>: 2 + (2 + 3) + 3
	require.Equal(10, consumed)
	require.Empty(cmp.Diff(L(L(U1(7)), A("x")), item))

	sub, consumed, err := Decode(data, len(prefix)+2)
	require.NoError(err)
	require.Equal(5, consumed)
	require.True(sub.IsList())
}

func TestDecode_LengthBoundaries(t *testing.T) {
	tests := []struct {
		length      int
		lengthBytes LengthBytes
		header      []byte
	}{
		{255, LengthBytesOne, []byte{0x21, 0xFF}},
		{256, LengthBytesTwo, []byte{0x22, 0x01, 0x00}},
		{65535, LengthBytesTwo, []byte{0x22, 0xFF, 0xFF}},
		{65536, LengthBytesThree, []byte{0x23, 0x01, 0x00, 0x00}},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: length %d", i, test.length)
		item := B(make([]byte, test.length))
		require.NoError(item.Error())
		require.Equal(test.lengthBytes, item.LengthBytes())

		data := item.ToBytes()
		require.Equal(test.header, data[:len(test.header)])
		require.Len(data, len(test.header)+test.length)

		decoded, consumed, err := Decode(data, 0)
		require.NoError(err)
		require.Equal(len(data), consumed)
		require.True(item.Equal(decoded))
	}
}

func TestEncode_MaxByteSize(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates 32 MiB")
	}

	require := require.New(t)

	item := B(make([]byte, MaxByteSize))
	require.NoError(item.Error())
	require.Equal(LengthBytesThree, item.LengthBytes())
	data, err := Encode(item)
	require.NoError(err)
	require.Equal([]byte{0x23, 0xFF, 0xFF, 0xFF}, data[:4])

	item = B(make([]byte, MaxByteSize+1))
	require.ErrorIs(item.Error(), ErrLengthRange)
	_, err = Encode(item)
	require.ErrorIs(err, ErrLengthRange)
}

func TestDecode_NonMinimalLengthBytes(t *testing.T) {
	require := require.New(t)

	// U4 1 with three length bytes
	data := []byte{0xB3, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x01}
	item, consumed, err := Decode(data, 0)
	require.NoError(err)
	require.Equal(8, consumed)
	require.Equal(LengthBytesThree, item.LengthBytes())
	require.Equal(4, item.HeaderLen())
	require.Equal(data, item.ToBytes())

	// equal values with a different length-byte count are different items
	require.False(item.Equal(U4(1)))
	require.Empty(cmp.Diff(WithLengthBytes(U4(1), LengthBytesThree), item))
}

func TestWithLengthBytes(t *testing.T) {
	require := require.New(t)

	require.Nil(WithLengthBytes(nil, LengthBytesTwo))

	item := A("abc")
	wide := WithLengthBytes(item, LengthBytesTwo)
	require.Equal(LengthBytesOne, item.LengthBytes())
	require.Equal(LengthBytesTwo, wide.LengthBytes())
	require.Equal([]byte{0x42, 0x00, 0x03, 'a', 'b', 'c'}, wide.ToBytes())

	// a count too small for the length is upgraded
	big := B(make([]byte, 300))
	require.Equal(LengthBytesTwo, WithLengthBytes(big, LengthBytesOne).LengthBytes())

	// scalars keep their arity
	scalar := WithLengthBytes(NewIntScalar(2, 5), LengthBytesThree)
	require.True(scalar.IsScalar())
	require.Equal([]byte{0x6B, 0x00, 0x00, 0x02, 0x00, 0x05}, scalar.ToBytes())
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		description    string
		input          []byte
		offset         int
		expectedErr    error
		expectedOffset int
	}{
		{"nil buffer", nil, 0, ErrInvalidArgument, 0},
		{"empty buffer", []byte{}, 0, ErrInvalidArgument, 0},
		{"offset out of range", []byte{0x41, 0x00}, 5, ErrInvalidArgument, 5},
		{"header truncated", []byte{0x41}, 0, ErrTruncated, 0},
		{"zero length bytes", []byte{0x40, 0x00}, 0, ErrZeroLengthBytes, 0},
		{"length bytes truncated", []byte{0x42, 0x00}, 0, ErrTruncated, 0},
		{"payload truncated", []byte{0x41, 0x05, 'a', 'b'}, 0, ErrTruncated, 0},
		{"list element missing", []byte{0x01, 0x02, 0x41, 0x00}, 0, ErrTruncated, 0},
		{"nested payload truncated", []byte{0x01, 0x01, 0x41, 0x03, 'a', 'b'}, 0, ErrTruncated, 2},
		{"misaligned u2", []byte{0xA9, 0x03, 0x00, 0x01, 0x02}, 0, ErrAlignment, 0},
		{"nested zero length bytes", []byte{0x01, 0x01, 0xA8, 0x00}, 0, ErrZeroLengthBytes, 2},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		item, consumed, err := Decode(test.input, test.offset)
		require.ErrorIs(err, test.expectedErr)
		require.Nil(item)
		require.Zero(consumed)

		var decErr *DecodeError
		require.True(errors.As(err, &decErr))
		require.Equal(test.expectedOffset, decErr.Offset)
		require.Contains(err.Error(), "secs2: decode")
	}
}

func TestDecode_DepthLimit(t *testing.T) {
	require := require.New(t)

	nest := func(depth int) []byte {
		var buf bytes.Buffer
		for range depth {
			buf.Write([]byte{0x01, 0x01})
		}
		buf.Write([]byte{0x01, 0x00})

		return buf.Bytes()
	}

	// MaxListDepth lists in total
	_, _, err := Decode(nest(MaxListDepth-1), 0)
	require.NoError(err)

	_, _, err = Decode(nest(MaxListDepth), 0)
	require.ErrorIs(err, ErrDepthLimit)
}

func TestDecode_UnsupportedFormatCodes(t *testing.T) {
	tests := []struct {
		description string
		input       []byte
		consumed    int
	}{
		{"jis8", []byte{0x45, 0x02, 'a', 'b'}, 4},
		{"char2", []byte{0x49, 0x04, 0x00, 0x01, 'a', 'b'}, 6},
		{"undefined", []byte{0xF9, 0x00}, 2},
		{"header only", []byte{0xFD, 0x01, 0xFF}, 3},
		{"unassigned", []byte{0x05, 0x01, 0x00}, 3},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		item, consumed, err := Decode(test.input, 0)
		require.NoError(err)
		require.Nil(item)
		require.Equal(test.consumed, consumed)
	}

	// inside a list the unsupported element is skipped
	data := []byte{0x01, 0x03, 0xA5, 0x01, 0x01, 0x45, 0x01, 'j', 0x41, 0x01, 'a'}
	item, consumed, err := Decode(data, 0)
	require.NoError(err)
	require.Equal(len(data), consumed)
	require.Equal(2, item.Size())
	require.Equal(2, item.Length())
	require.Empty(cmp.Diff(L(U1(1), A("a")), item))

	// a truncated unsupported payload is still an error
	_, _, err = Decode([]byte{0x45, 0x05, 'a'}, 0)
	require.ErrorIs(err, ErrTruncated)
}

func TestDecodeAll(t *testing.T) {
	require := require.New(t)

	items, err := DecodeAll([]byte{})
	require.NoError(err)
	require.NotNil(items)
	require.Empty(items)

	var data []byte
	data = append(data, U1(1).ToBytes()...)
	data = append(data, 0x45, 0x01, 'j')
	data = append(data, L(A("a")).ToBytes()...)

	items, err = DecodeAll(data)
	require.NoError(err)
	require.Empty(cmp.Diff([]Item{U1(1), L(A("a"))}, items))

	_, err = DecodeAll(append(data, 0x41))
	require.ErrorIs(err, ErrTruncated)
}

func TestDecodeScalar(t *testing.T) {
	require := require.New(t)

	item, consumed, err := DecodeScalar([]byte{0x71, 0x04, 0x00, 0x00, 0x00, 0x2A}, 0)
	require.NoError(err)
	require.Equal(6, consumed)
	require.True(item.IsScalar())
	values, _ := item.ToInt()
	require.Equal([]int64{42}, values)

	// an I4 with a 3-byte payload is not a scalar
	_, _, err = DecodeScalar([]byte{0x71, 0x03, 0x00, 0x00, 0x01}, 0)
	require.ErrorIs(err, ErrFixedWidth)

	// arrays of fixed-width types are rejected as well
	_, _, err = DecodeScalar([]byte{0xA5, 0x02, 0x01, 0x02}, 0)
	require.ErrorIs(err, ErrFixedWidth)

	_, _, err = DecodeScalar([]byte{0x25, 0x00}, 0)
	require.ErrorIs(err, ErrFixedWidth)

	for _, data := range [][]byte{{0x01, 0x00}, {0x41, 0x01, 'a'}, {0x21, 0x01, 0x01}} {
		_, _, err = DecodeScalar(data, 0)
		require.ErrorIs(err, ErrInvalidArgument)
	}

	_, _, err = DecodeScalar(nil, 0)
	require.ErrorIs(err, ErrInvalidArgument)
}

func TestEncode(t *testing.T) {
	require := require.New(t)

	_, err := Encode(nil)
	require.ErrorIs(err, ErrInvalidArgument)

	data, err := Encode(L(U1(7), A("hello")))
	require.NoError(err)
	require.Equal([]byte{0x01, 0x02, 0xA5, 0x01, 0x07, 0x41, 0x05, 'h', 'e', 'l', 'l', 'o'}, data)
}

func TestDecode_DoesNotAliasInput(t *testing.T) {
	require := require.New(t)

	data := []byte{0x21, 0x02, 0x01, 0x02}
	item, _, err := Decode(data, 0)
	require.NoError(err)

	data[2] = 0xFF
	values, _ := item.ToBinary()
	require.Equal([]byte{0x01, 0x02}, values)
}
