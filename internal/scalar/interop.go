package scalar

import (
	"fmt"
	"math"

	arrowscalar "github.com/apache/arrow/go/v15/arrow/scalar"

	"github.com/roach88/devscalar/internal/devmem"
	"github.com/roach88/devscalar/internal/dtype"
)

// FromArrow consumes an Arrow scalar and produces the matching device
// scalar. The conversion reads the Arrow value directly and takes no
// process-wide lock, so it is safe to run concurrently with unrelated
// work.
//
// Hint rules:
//   - Non-decimal source: a hint is not permitted; the resulting type
//     matches the source kind exactly.
//   - Decimal128 source: a hint is required and must be a decimal kind.
//     A 32- or 64-bit hint re-tags the payload with
//     scale = -(arrow scale); a 128-bit hint is a no-op.
//
// The sign flip is a convention conversion: Arrow encodes
// value = mantissa × 10^(-scale), the internal representation encodes
// value = mantissa × 10^(scale).
func FromArrow(src arrowscalar.Scalar, hint *dtype.DataType) (*Scalar, error) {
	dt, err := dtype.FromArrow(src.DataType())
	if err != nil {
		return nil, err
	}

	if dt.ID() != dtype.Decimal128 {
		if hint != nil {
			return nil, fmt.Errorf("scalar: %w: type hint not permitted for non-decimal scalar types", ErrInvalidTypeHint)
		}
		return convertArrow(src, dt)
	}

	if hint == nil {
		return nil, fmt.Errorf("scalar: %w: decimal scalars require an explicit target type", ErrInvalidTypeHint)
	}
	if !hint.ID().IsDecimal() {
		return nil, fmt.Errorf("scalar: %w: decimal scalars may only be cast to decimal types", ErrInvalidTypeHint)
	}

	out, err := convertArrow(src, dt)
	if err != nil {
		return nil, err
	}
	if hint.ID() == dtype.Decimal128 {
		// Already that width; the conversion applied the scale flip.
		return out, nil
	}
	// dt.Scale() already carries the negated arrow scale.
	if err := out.retagDecimal(hint.ID(), dt.Scale()); err != nil {
		out.Release()
		return nil, err
	}
	return out, nil
}

// convertArrow builds the native payload from the Arrow scalar's
// concrete variant. Ownership of any device allocation transfers to
// the returned scalar in one step; on failure nothing is left owned.
func convertArrow(src arrowscalar.Scalar, dt dtype.DataType) (*Scalar, error) {
	r := devmem.Current()
	valid := src.IsValid()

	switch v := src.(type) {
	case *arrowscalar.Int8:
		return newScalar(dt, valid, numericPayload{numKind: dtype.Int8, bits: uint64(int64(v.Value))}, r), nil
	case *arrowscalar.Int16:
		return newScalar(dt, valid, numericPayload{numKind: dtype.Int16, bits: uint64(int64(v.Value))}, r), nil
	case *arrowscalar.Int32:
		return newScalar(dt, valid, numericPayload{numKind: dtype.Int32, bits: uint64(int64(v.Value))}, r), nil
	case *arrowscalar.Int64:
		return newScalar(dt, valid, int64Payload{v: v.Value}, r), nil
	case *arrowscalar.Uint8:
		return newScalar(dt, valid, numericPayload{numKind: dtype.Uint8, bits: uint64(v.Value)}, r), nil
	case *arrowscalar.Uint16:
		return newScalar(dt, valid, numericPayload{numKind: dtype.Uint16, bits: uint64(v.Value)}, r), nil
	case *arrowscalar.Uint32:
		return newScalar(dt, valid, numericPayload{numKind: dtype.Uint32, bits: uint64(v.Value)}, r), nil
	case *arrowscalar.Uint64:
		return newScalar(dt, valid, numericPayload{numKind: dtype.Uint64, bits: v.Value}, r), nil
	case *arrowscalar.Float32:
		return newScalar(dt, valid, numericPayload{numKind: dtype.Float32, bits: uint64(math.Float32bits(v.Value))}, r), nil
	case *arrowscalar.Float64:
		return newScalar(dt, valid, float64Payload{v: v.Value}, r), nil
	case *arrowscalar.String:
		var data []byte
		if valid {
			data = v.Data()
		}
		buf := devmem.NewBuffer(r, data)
		return newScalar(dt, valid, stringPayload{buf: buf}, r), nil
	case *arrowscalar.Decimal128:
		p := decimalPayload{widthKind: dtype.Decimal128, mantissa: v.Value, scale: dt.Scale()}
		return newScalar(dt, valid, p, r), nil
	default:
		return nil, fmt.Errorf("scalar: %w: %s", dtype.ErrUnsupportedArrowType, src.DataType().Name())
	}
}
