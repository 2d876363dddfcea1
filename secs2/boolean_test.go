package secs2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBooleanItem(t *testing.T) {
	tests := []struct {
		description    string
		input          []any
		expectedValues []bool
		expectedBytes  []byte
		expectedSML    string
	}{
		{
			description:    "empty",
			input:          []any{},
			expectedValues: []bool{},
			expectedBytes:  []byte{0x25, 0x00},
			expectedSML:    "<BOOLEAN[0]>",
		},
		{
			description:    "single value",
			input:          []any{true},
			expectedValues: []bool{true},
			expectedBytes:  []byte{0x25, 0x01, 0x01},
			expectedSML:    "<BOOLEAN[1] T>",
		},
		{
			description:    "values and slices",
			input:          []any{true, []bool{false, true}, false},
			expectedValues: []bool{true, false, true, false},
			expectedBytes:  []byte{0x25, 0x04, 0x01, 0x00, 0x01, 0x00},
			expectedSML:    "<BOOLEAN[4] T F T F>",
		},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		item := NewBooleanItem(test.input...)
		require.NoError(item.Error())
		require.True(item.IsBoolean())
		require.False(item.IsScalar())

		values, err := item.ToBoolean()
		require.NoError(err)
		require.Equal(test.expectedValues, values)
		require.Equal(test.expectedBytes, item.ToBytes())
		require.Equal(test.expectedSML, item.ToSML())
	}
}

func TestBooleanScalar(t *testing.T) {
	require := require.New(t)

	item := NewBooleanScalar(false)
	require.NoError(item.Error())
	require.True(item.IsScalar())
	require.Equal(1, item.Size())
	require.Equal([]byte{0x25, 0x01, 0x00}, item.ToBytes())

	// scalar and single-element array share the wire form
	require.True(item.Equal(NewBooleanItem(false)))
	require.Equal(item.Hash(), NewBooleanItem(false).Hash())
}

func TestBooleanItem_Decode(t *testing.T) {
	require := require.New(t)

	// any non-zero byte is true
	item, consumed, err := Decode([]byte{0x25, 0x03, 0x00, 0x02, 0xFF}, 0)
	require.NoError(err)
	require.Equal(5, consumed)
	require.False(item.IsScalar())
	values, _ := item.ToBoolean()
	require.Equal([]bool{false, true, true}, values)

	item, _, err = Decode([]byte{0x25, 0x01, 0x01}, 0)
	require.NoError(err)
	require.True(item.IsScalar())
}

func TestBooleanItem_InvalidValues(t *testing.T) {
	require := require.New(t)

	item := NewBooleanItem(true, 1)
	require.ErrorIs(item.Error(), ErrInvalidArgument)
	require.Empty(item.ToBytes())
}
