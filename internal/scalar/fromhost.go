package scalar

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/apache/arrow/go/v15/arrow/decimal128"
	arrowscalar "github.com/apache/arrow/go/v15/arrow/scalar"
	"github.com/cockroachdb/apd/v3"

	"github.com/roach88/devscalar/internal/devmem"
	"github.com/roach88/devscalar/internal/dtype"
	"github.com/roach88/devscalar/internal/hostbuf"
)

// New constructs a scalar from a host value with no type hint.
func New(v any) (*Scalar, error) {
	return FromHost(v, nil)
}

// FromHost classifies a host value and produces exactly one scalar.
// Dispatch priority: integral literal, float literal, text literal,
// Arrow scalar, fixed-width host buffer, decimal literal. A type hint
// is only consulted by the Arrow and decimal-literal paths; every other
// path rejects one.
//
// Known limitation: integral literals wider than 64 bits have no path
// here; uint64 values above math.MaxInt64 are rejected rather than
// truncated.
func FromHost(v any, hint *dtype.DataType) (*Scalar, error) {
	switch val := v.(type) {
	case arrowscalar.Scalar:
		return FromArrow(val, hint)
	case *apd.Decimal:
		return fromDecimalLiteral(val, hint)
	}

	if hint != nil {
		return nil, fmt.Errorf("scalar: %w: type hint not permitted for %T", ErrInvalidTypeHint, v)
	}

	switch val := v.(type) {
	case int:
		return newInt64(int64(val)), nil
	case int8:
		return newInt64(int64(val)), nil
	case int16:
		return newInt64(int64(val)), nil
	case int32:
		return newInt64(int64(val)), nil
	case int64:
		return newInt64(val), nil
	case uint8:
		return newInt64(int64(val)), nil
	case uint16:
		return newInt64(int64(val)), nil
	case uint32:
		return newInt64(int64(val)), nil
	case uint:
		if uint64(val) > math.MaxInt64 {
			return nil, fmt.Errorf("scalar: %w: uint value %d overflows int64", ErrUnsupportedInput, val)
		}
		return newInt64(int64(val)), nil
	case uint64:
		if val > math.MaxInt64 {
			return nil, fmt.Errorf("scalar: %w: uint64 value %d overflows int64", ErrUnsupportedInput, val)
		}
		return newInt64(int64(val)), nil
	case float32:
		return newFloat64(float64(val)), nil
	case float64:
		return newFloat64(val), nil
	case string:
		return fromText(val)
	case *hostbuf.Buffer:
		return fromHostBuffer(val)
	default:
		return nil, fmt.Errorf("scalar: %w: %T", ErrUnsupportedInput, v)
	}
}

func newInt64(v int64) *Scalar {
	return newScalar(dtype.Primitive(dtype.Int64), true, int64Payload{v: v}, devmem.Current())
}

func newFloat64(v float64) *Scalar {
	return newScalar(dtype.Primitive(dtype.Float64), true, float64Payload{v: v}, devmem.Current())
}

func fromText(s string) (*Scalar, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("scalar: %w: text literal is not valid UTF-8", ErrInvalidEncoding)
	}
	r := devmem.Current()
	buf := devmem.NewBuffer(r, []byte(s))
	return newScalar(dtype.Primitive(dtype.String), true, stringPayload{buf: buf}, r), nil
}

// fromHostBuffer reads exactly one element from a fixed-width view.
// Multi-element buffers are deliberately treated as broadcastable
// scalars: only the first element is consulted.
func fromHostBuffer(b *hostbuf.Buffer) (*Scalar, error) {
	if b.Len() == 0 {
		return nil, fmt.Errorf("scalar: %w: host buffer holds no elements", ErrEmptyBuffer)
	}
	switch b.Kind() {
	case dtype.Int32, dtype.Int64, dtype.Float32, dtype.Float64:
	default:
		return nil, fmt.Errorf("scalar: %w: %s", ErrUnsupportedElementType, b.Kind())
	}

	bits, err := b.FirstBits()
	if err != nil {
		return nil, err
	}
	r := devmem.Current()
	switch b.Kind() {
	case dtype.Int64:
		return newScalar(dtype.Primitive(dtype.Int64), true, int64Payload{v: int64(bits)}, r), nil
	case dtype.Float64:
		return newScalar(dtype.Primitive(dtype.Float64), true, float64Payload{v: math.Float64frombits(bits)}, r), nil
	default: // Int32, Float32
		return newScalar(dtype.Primitive(b.Kind()), true, numericPayload{numKind: b.Kind(), bits: bits}, r), nil
	}
}

// fromDecimalLiteral builds a fixed-point scalar from an arbitrary
// precision host decimal. Without a hint the widest (128-bit) variant
// is used; a decimal hint selects the width. apd and the internal
// representation share the value = coeff × 10^exponent convention, so
// the exponent carries over unchanged.
func fromDecimalLiteral(d *apd.Decimal, hint *dtype.DataType) (*Scalar, error) {
	target := dtype.Decimal128
	precision := int32(38)
	if hint != nil {
		if !hint.ID().IsDecimal() {
			return nil, fmt.Errorf("scalar: %w: decimal scalars may only be cast to decimal types", ErrInvalidTypeHint)
		}
		target = hint.ID()
		precision = hint.Precision()
	}

	coeff := new(apd.BigInt).Abs(&d.Coeff).MathBigInt()
	if d.Negative {
		coeff = coeff.Neg(coeff)
	}
	if coeff.BitLen() > 127 {
		return nil, fmt.Errorf("scalar: %w: decimal literal exceeds 128-bit mantissa", ErrUnsupportedInput)
	}
	mantissa := decimal128.FromBigInt(coeff)

	dt, err := dtype.Decimal(target, precision, d.Exponent)
	if err != nil {
		return nil, err
	}
	p := decimalPayload{widthKind: target, mantissa: mantissa, scale: d.Exponent}
	return newScalar(dt, true, p, devmem.Current()), nil
}
