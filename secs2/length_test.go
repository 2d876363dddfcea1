package secs2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinLengthBytes(t *testing.T) {
	tests := []struct {
		length   int
		expected LengthBytes
	}{
		{0, LengthBytesOne},
		{1, LengthBytesOne},
		{255, LengthBytesOne},
		{256, LengthBytesTwo},
		{65535, LengthBytesTwo},
		{65536, LengthBytesThree},
		{MaxByteSize, LengthBytesThree},
	}

	require := require.New(t)

	for _, test := range tests {
		lb, err := MinLengthBytes(test.length)
		require.NoError(err)
		require.Equal(test.expected, lb, "length %d", test.length)
	}

	for _, length := range []int{-1, MaxByteSize + 1} {
		lb, err := MinLengthBytes(length)
		require.ErrorIs(err, ErrLengthRange)
		require.False(lb.Valid())
	}
}

func TestResolveLengthBytes(t *testing.T) {
	tests := []struct {
		description string
		desired     LengthBytes
		length      int
		expected    LengthBytes
	}{
		{"unset uses minimum", lengthBytesUnset, 10, LengthBytesOne},
		{"larger than minimum is kept", LengthBytesThree, 10, LengthBytesThree},
		{"equal to minimum is kept", LengthBytesTwo, 300, LengthBytesTwo},
		{"smaller than minimum is upgraded", LengthBytesOne, 300, LengthBytesTwo},
		{"smaller than minimum is upgraded to three", LengthBytesOne, 70000, LengthBytesThree},
		{"invalid count uses minimum", LengthBytes(7), 10, LengthBytesOne},
	}

	require := require.New(t)

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		lb, err := ResolveLengthBytes(test.desired, test.length)
		require.NoError(err)
		require.Equal(test.expected, lb)
	}

	_, err := ResolveLengthBytes(LengthBytesThree, MaxByteSize+1)
	require.ErrorIs(err, ErrLengthRange)
}

func TestLengthBytes_String(t *testing.T) {
	require := require.New(t)

	require.Equal("1", LengthBytesOne.String())
	require.Equal("2", LengthBytesTwo.String())
	require.Equal("3", LengthBytesThree.String())
	require.Equal("unset", lengthBytesUnset.String())
	require.True(LengthBytesTwo.Valid())
	require.False(LengthBytes(4).Valid())
}
