// Package dtype defines the logical type descriptors attached to device
// scalars. A descriptor is derived once at construction and cached on the
// scalar; it is never recomputed from the payload.
//
// Decimal convention: a decimal descriptor carries a power-of-ten Scale
// with value = mantissa × 10^Scale. Scale may be negative. This is the
// opposite sign convention from Arrow, which encodes
// value = mantissa × 10^(-scale); FromArrow performs the flip.
package dtype

import (
	"errors"
	"fmt"

	"github.com/apache/arrow/go/v15/arrow"
)

// ErrUnsupportedArrowType is returned by FromArrow for arrow types that
// have no device scalar representation.
var ErrUnsupportedArrowType = errors.New("unsupported arrow type")

// Kind identifies the storage class of a scalar payload.
type Kind uint8

const (
	Int8 Kind = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	String
	Decimal32
	Decimal64
	Decimal128
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	names := [...]string{
		"int8", "int16", "int32", "int64",
		"uint8", "uint16", "uint32", "uint64",
		"float32", "float64", "string",
		"decimal32", "decimal64", "decimal128",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IsDecimal reports whether the kind is one of the three fixed-point widths.
func (k Kind) IsDecimal() bool {
	return k == Decimal32 || k == Decimal64 || k == Decimal128
}

// DataType is the resolved logical type of a scalar: a kind plus, for
// decimal kinds, the precision and scale. Compared with ==.
type DataType struct {
	kind      Kind
	precision int32
	scale     int32
}

// Primitive returns the descriptor for a non-decimal kind.
// Panics if given a decimal kind (those require precision/scale).
func Primitive(k Kind) DataType {
	if k.IsDecimal() {
		panic(fmt.Sprintf("dtype: Primitive called with decimal kind %s", k))
	}
	return DataType{kind: k}
}

// Decimal returns the descriptor for a fixed-point kind.
func Decimal(k Kind, precision, scale int32) (DataType, error) {
	if !k.IsDecimal() {
		return DataType{}, fmt.Errorf("dtype: %s is not a decimal kind", k)
	}
	return DataType{kind: k, precision: precision, scale: scale}, nil
}

// ID returns the kind tag.
func (t DataType) ID() Kind { return t.kind }

// Precision returns the decimal precision; 0 for non-decimal types.
func (t DataType) Precision() int32 { return t.precision }

// Scale returns the decimal scale (internal sign convention);
// 0 for non-decimal types.
func (t DataType) Scale() int32 { return t.scale }

// DecimalWidth returns the mantissa width in bits for decimal types
// and 0 for everything else.
func (t DataType) DecimalWidth() int {
	switch t.kind {
	case Decimal32:
		return 32
	case Decimal64:
		return 64
	case Decimal128:
		return 128
	default:
		return 0
	}
}

// ElemSize returns the byte size of one element of this type.
// String has no fixed element size and returns 0.
func (t DataType) ElemSize() int {
	switch t.kind {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32, Decimal32:
		return 4
	case Int64, Uint64, Float64, Decimal64:
		return 8
	case Decimal128:
		return 16
	default:
		return 0
	}
}

func (t DataType) String() string {
	if t.kind.IsDecimal() {
		return fmt.Sprintf("%s(%d,%d)", t.kind, t.precision, t.scale)
	}
	return t.kind.String()
}

// FromArrow maps an Arrow type tag to the internal descriptor.
// Arrow decimal128 maps to Decimal128 with the scale sign flipped into
// the internal convention.
func FromArrow(at arrow.DataType) (DataType, error) {
	switch at.ID() {
	case arrow.INT8:
		return Primitive(Int8), nil
	case arrow.INT16:
		return Primitive(Int16), nil
	case arrow.INT32:
		return Primitive(Int32), nil
	case arrow.INT64:
		return Primitive(Int64), nil
	case arrow.UINT8:
		return Primitive(Uint8), nil
	case arrow.UINT16:
		return Primitive(Uint16), nil
	case arrow.UINT32:
		return Primitive(Uint32), nil
	case arrow.UINT64:
		return Primitive(Uint64), nil
	case arrow.FLOAT32:
		return Primitive(Float32), nil
	case arrow.FLOAT64:
		return Primitive(Float64), nil
	case arrow.STRING:
		return Primitive(String), nil
	case arrow.DECIMAL128:
		dt := at.(*arrow.Decimal128Type)
		return Decimal(Decimal128, dt.Precision, -dt.Scale)
	default:
		return DataType{}, fmt.Errorf("dtype: %w: %s", ErrUnsupportedArrowType, at.Name())
	}
}
