package scalar

import (
	"math"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/devscalar/internal/devmem"
	"github.com/roach88/devscalar/internal/dtype"
	"github.com/roach88/devscalar/internal/hostbuf"
)

func TestFromHostIntegralLiterals(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want int64
	}{
		{"int", int(42), 42},
		{"int8", int8(-7), -7},
		{"int16", int16(300), 300},
		{"int32", int32(-100000), -100000},
		{"int64", int64(math.MaxInt64), math.MaxInt64},
		{"uint8", uint8(255), 255},
		{"uint16", uint16(65535), 65535},
		{"uint32", uint32(4000000000), 4000000000},
		{"uint", uint(12), 12},
		{"uint64", uint64(12), 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := New(tc.in)
			require.NoError(t, err)
			defer s.Release()

			assert.Equal(t, dtype.Int64, s.Type().ID())
			assert.True(t, s.IsValid())

			got, err := s.Int64()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFromHostUint64Overflow(t *testing.T) {
	_, err := New(uint64(math.MaxInt64) + 1)
	require.ErrorIs(t, err, ErrUnsupportedInput)
}

func TestFromHostFloatLiterals(t *testing.T) {
	s, err := New(3.1415)
	require.NoError(t, err)
	defer s.Release()

	assert.Equal(t, dtype.Float64, s.Type().ID())
	got, err := s.Float64()
	require.NoError(t, err)
	assert.Equal(t, 3.1415, got)

	// float32 literals widen to the double variant
	s32, err := New(float32(1.5))
	require.NoError(t, err)
	defer s32.Release()

	assert.Equal(t, dtype.Float64, s32.Type().ID())
	got32, err := s32.Float64()
	require.NoError(t, err)
	assert.Equal(t, 1.5, got32)
}

func TestFromHostTextLiteral(t *testing.T) {
	s, err := New("hello")
	require.NoError(t, err)
	defer s.Release()

	assert.Equal(t, dtype.String, s.Type().ID())
	assert.True(t, s.IsValid())

	got, err := s.StringBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}

func TestFromHostTextInvalidEncoding(t *testing.T) {
	_, err := New(string([]byte{0xff, 0xfe}))
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestFromHostEmptyText(t *testing.T) {
	s, err := New("")
	require.NoError(t, err)
	defer s.Release()

	got, err := s.StringBytes()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFromHostBufferEachKind(t *testing.T) {
	t.Run("int32", func(t *testing.T) {
		s, err := New(hostbuf.FromInt32s([]int32{-9}))
		require.NoError(t, err)
		defer s.Release()

		assert.Equal(t, dtype.Int32, s.Type().ID())
		got, err := s.Int32()
		require.NoError(t, err)
		assert.Equal(t, int32(-9), got)
	})
	t.Run("int64", func(t *testing.T) {
		s, err := New(hostbuf.FromInt64s([]int64{1 << 40}))
		require.NoError(t, err)
		defer s.Release()

		assert.Equal(t, dtype.Int64, s.Type().ID())
		got, err := s.Int64()
		require.NoError(t, err)
		assert.Equal(t, int64(1<<40), got)
	})
	t.Run("float32", func(t *testing.T) {
		s, err := New(hostbuf.FromFloat32s([]float32{2.5}))
		require.NoError(t, err)
		defer s.Release()

		assert.Equal(t, dtype.Float32, s.Type().ID())
		got, err := s.Float32()
		require.NoError(t, err)
		assert.Equal(t, float32(2.5), got)
	})
	t.Run("float64", func(t *testing.T) {
		s, err := New(hostbuf.FromFloat64s([]float64{6.25}))
		require.NoError(t, err)
		defer s.Release()

		assert.Equal(t, dtype.Float64, s.Type().ID())
		got, err := s.Float64()
		require.NoError(t, err)
		assert.Equal(t, 6.25, got)
	})
}

func TestFromHostBufferFirstElement(t *testing.T) {
	// Multi-element buffers are broadcastable scalars: first element wins.
	s, err := New(hostbuf.FromInt64s([]int64{7, 8, 9}))
	require.NoError(t, err)
	defer s.Release()

	got, err := s.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)
}

func TestFromHostBufferEmpty(t *testing.T) {
	_, err := New(hostbuf.FromFloat64s(nil))
	require.ErrorIs(t, err, ErrEmptyBuffer)
}

func TestFromHostBufferUnsupportedElementType(t *testing.T) {
	b := hostbuf.FromRaw(dtype.Int16, []byte{1, 0}, 1)
	_, err := New(b)
	require.ErrorIs(t, err, ErrUnsupportedElementType)
}

func TestFromHostUnsupportedInput(t *testing.T) {
	_, err := New(struct{ X int }{X: 1})
	require.ErrorIs(t, err, ErrUnsupportedInput)
	assert.Contains(t, err.Error(), "struct")
}

func TestFromHostHintRejectedForLiterals(t *testing.T) {
	hint := dtype.Primitive(dtype.Int64)

	_, err := FromHost(42, &hint)
	require.ErrorIs(t, err, ErrInvalidTypeHint)

	_, err = FromHost("hello", &hint)
	require.ErrorIs(t, err, ErrInvalidTypeHint)

	_, err = FromHost(hostbuf.FromInt64s([]int64{1}), &hint)
	require.ErrorIs(t, err, ErrInvalidTypeHint)
}

func TestFromHostDecimalLiteral(t *testing.T) {
	d, _, err := apd.NewFromString("12.34")
	require.NoError(t, err)

	s, err := New(d)
	require.NoError(t, err)
	defer s.Release()

	assert.Equal(t, dtype.Decimal128, s.Type().ID())
	assert.Equal(t, 128, s.Type().DecimalWidth())

	mantissa, scale, err := s.DecimalValue()
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), mantissa.LowBits())
	assert.Equal(t, int32(-2), scale)
}

func TestFromHostDecimalLiteralNegative(t *testing.T) {
	d, _, err := apd.NewFromString("-0.5")
	require.NoError(t, err)

	s, err := New(d)
	require.NoError(t, err)
	defer s.Release()

	mantissa, scale, err := s.DecimalValue()
	require.NoError(t, err)
	assert.Equal(t, "-0.5", mantissa.ToString(-scale))
}

func TestFromHostDecimalLiteralWithWidthHint(t *testing.T) {
	d, _, err := apd.NewFromString("1.5")
	require.NoError(t, err)

	hint, err := dtype.Decimal(dtype.Decimal64, 18, 0)
	require.NoError(t, err)

	s, err := FromHost(d, &hint)
	require.NoError(t, err)
	defer s.Release()

	assert.Equal(t, 64, s.Type().DecimalWidth())
	mantissa, scale, err := s.DecimalValue()
	require.NoError(t, err)
	assert.Equal(t, uint64(15), mantissa.LowBits())
	assert.Equal(t, int32(-1), scale)
}

func TestFromHostDecimalLiteralNonDecimalHint(t *testing.T) {
	d, _, err := apd.NewFromString("1.5")
	require.NoError(t, err)

	hint := dtype.Primitive(dtype.Int32)
	_, err = FromHost(d, &hint)
	require.ErrorIs(t, err, ErrInvalidTypeHint)
}

func TestFromHostPinsConstructionTimeResource(t *testing.T) {
	tracking := devmem.NewTrackingResource(devmem.NewStandardResource(nil))
	prev := devmem.SetCurrent(tracking)
	defer devmem.SetCurrent(prev)

	s, err := New("pinned")
	require.NoError(t, err)
	assert.Same(t, devmem.Resource(tracking), s.Resource())
	assert.Equal(t, 1, tracking.LiveCount())

	// swapping the process default must not affect the existing scalar
	devmem.SetCurrent(prev)
	require.NoError(t, s.Release())
	assert.Equal(t, 0, tracking.LiveCount())
	devmem.SetCurrent(tracking)
}
