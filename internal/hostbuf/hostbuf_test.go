package hostbuf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/devscalar/internal/dtype"
)

func TestFromInt32s(t *testing.T) {
	b := FromInt32s([]int32{-7, 9})
	assert.Equal(t, dtype.Int32, b.Kind())
	assert.Equal(t, 2, b.Len())

	bits, err := b.FirstBits()
	require.NoError(t, err)
	assert.Equal(t, int32(-7), int32(bits))
	// sign extension preserved through the 64-bit widening
	assert.Equal(t, int64(-7), int64(bits))
}

func TestFromInt64s(t *testing.T) {
	b := FromInt64s([]int64{math.MinInt64})
	bits, err := b.FirstBits()
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), int64(bits))
}

func TestFromFloat32s(t *testing.T) {
	b := FromFloat32s([]float32{1.5, 2.5})
	assert.Equal(t, dtype.Float32, b.Kind())

	bits, err := b.FirstBits()
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), math.Float32frombits(uint32(bits)))
}

func TestFromFloat64s(t *testing.T) {
	b := FromFloat64s([]float64{3.1415})
	bits, err := b.FirstBits()
	require.NoError(t, err)
	assert.Equal(t, 3.1415, math.Float64frombits(bits))
}

func TestFirstBitsEmpty(t *testing.T) {
	b := FromInt64s(nil)
	_, err := b.FirstBits()
	require.Error(t, err)
}
