package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLimit(t *testing.T) {
	l := NewLimit(2)
	require.Equal(t, uint32(2), l.Min)
	require.False(t, l.HasMax())

	l = NewLimitMax(2, 5)
	require.True(t, l.HasMax())
	require.Equal(t, uint32(5), *l.Max)
}

func TestNewMemory(t *testing.T) {
	mem := NewMemory(NewMemoryType(NewLimitMax(1, 4)))
	require.Equal(t, uint32(1), mem.Type.Limit.Min)
	require.Equal(t, uint32(4), *mem.Type.Limit.Max)
}

func TestMemoryArgument_defaults(t *testing.T) {
	require.Equal(t, MemoryArgument{Offset: 0, Align: 2}, DefaultMemoryArgument(4))
	require.Equal(t, MemoryArgument{Offset: 0, Align: 3}, DefaultMemoryArgument(8))
	require.Equal(t, MemoryArgument{Offset: 16, Align: 2}, OffsetDefaultMemoryArgument(16, 4))
	require.Equal(t, MemoryArgument{Offset: 0, Align: 1}, AlignedMemoryArgument(1))
}
