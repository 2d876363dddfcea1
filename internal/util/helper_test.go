package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCloneSlice(t *testing.T) {
	require := require.New(t)

	src := []int{1, 2, 3}
	clone := CloneSlice(src)
	clone[0] = 9
	require.Equal([]int{1, 2, 3}, src)

	empty := CloneSlice[byte](nil)
	require.NotNil(empty)
	require.Empty(empty)
}

func TestAppendConverted(t *testing.T) {
	require := require.New(t)

	result := AppendConverted([]float64{0.5}, []int16{-1, 2})
	require.Equal([]float64{0.5, -1, 2}, result)
}

func TestClamp(t *testing.T) {
	require := require.New(t)

	require.Equal(int64(127), Clamp(int64(300), -128, 127))
	require.Equal(int64(-128), Clamp(int64(-300), -128, 127))
	require.Equal(5, Clamp(5, 0, 10))
}
