package scalar

import (
	"fmt"
	"math"
	"strconv"

	"github.com/apache/arrow/go/v15/arrow/decimal128"

	"github.com/roach88/devscalar/internal/devmem"
	"github.com/roach88/devscalar/internal/dtype"
)

// Scalar is one typed value resident in device memory, with a validity
// flag. The logical type is derived once at construction and cached;
// it always matches the active payload variant. A Scalar exclusively
// owns its payload storage and the memory resource captured at
// construction time.
type Scalar struct {
	dt       dtype.DataType
	valid    bool
	p        payload
	resource devmem.Resource
	released bool
}

// newScalar takes ownership of a pre-built payload and installs the
// derived logical type. All construction paths funnel through here.
func newScalar(dt dtype.DataType, valid bool, p payload, r devmem.Resource) *Scalar {
	if dt.ID() != p.kind() {
		panic(fmt.Sprintf("scalar: type %s does not match payload kind %s", dt, p.kind()))
	}
	return &Scalar{dt: dt, valid: valid, p: p, resource: r}
}

// Type returns the cached logical type descriptor.
func (s *Scalar) Type() dtype.DataType { return s.dt }

// IsValid reports whether the payload is meaningful (false means null).
func (s *Scalar) IsValid() bool { return s.valid }

// Resource returns the memory resource this scalar was pinned to at
// construction.
func (s *Scalar) Resource() devmem.Resource { return s.resource }

// Release frees any device-resident storage exactly once. Later calls
// fail with ErrReleased.
func (s *Scalar) Release() error {
	if s.released {
		return ErrReleased
	}
	s.released = true
	if sp, ok := s.p.(stringPayload); ok {
		return sp.buf.Release()
	}
	return nil
}

// Int64 reads back the primary integer variant.
func (s *Scalar) Int64() (int64, error) {
	p, ok := s.p.(int64Payload)
	if !ok {
		return 0, fmt.Errorf("scalar: %w: %s is not int64", ErrKindMismatch, s.dt)
	}
	if !s.valid {
		return 0, fmt.Errorf("scalar: reading null int64 value")
	}
	return p.v, nil
}

// Float64 reads back the primary floating-point variant.
func (s *Scalar) Float64() (float64, error) {
	p, ok := s.p.(float64Payload)
	if !ok {
		return 0, fmt.Errorf("scalar: %w: %s is not float64", ErrKindMismatch, s.dt)
	}
	if !s.valid {
		return 0, fmt.Errorf("scalar: reading null float64 value")
	}
	return p.v, nil
}

// Int32 reads back a 32-bit integer held in the numeric extension.
func (s *Scalar) Int32() (int32, error) {
	p, ok := s.p.(numericPayload)
	if !ok || p.numKind != dtype.Int32 {
		return 0, fmt.Errorf("scalar: %w: %s is not int32", ErrKindMismatch, s.dt)
	}
	if !s.valid {
		return 0, fmt.Errorf("scalar: reading null int32 value")
	}
	return int32(p.bits), nil
}

// Float32 reads back a 32-bit float held in the numeric extension.
func (s *Scalar) Float32() (float32, error) {
	p, ok := s.p.(numericPayload)
	if !ok || p.numKind != dtype.Float32 {
		return 0, fmt.Errorf("scalar: %w: %s is not float32", ErrKindMismatch, s.dt)
	}
	if !s.valid {
		return 0, fmt.Errorf("scalar: reading null float32 value")
	}
	return math.Float32frombits(uint32(p.bits)), nil
}

// StringBytes reads back the UTF-8 payload of a string scalar.
func (s *Scalar) StringBytes() ([]byte, error) {
	p, ok := s.p.(stringPayload)
	if !ok {
		return nil, fmt.Errorf("scalar: %w: %s is not string", ErrKindMismatch, s.dt)
	}
	if !s.valid {
		return nil, fmt.Errorf("scalar: reading null string value")
	}
	return p.buf.Bytes(), nil
}

// DecimalValue reads back the mantissa and scale of a decimal scalar of
// any width. The value is mantissa × 10^scale.
func (s *Scalar) DecimalValue() (decimal128.Num, int32, error) {
	p, ok := s.p.(decimalPayload)
	if !ok {
		return decimal128.Num{}, 0, fmt.Errorf("scalar: %w: %s is not decimal", ErrKindMismatch, s.dt)
	}
	if !s.valid {
		return decimal128.Num{}, 0, fmt.Errorf("scalar: reading null decimal value")
	}
	return p.mantissa, p.scale, nil
}

// retagDecimal re-tags a decimal payload into a (possibly different)
// width with a newly-supplied scale. The old mantissa is read, then the
// payload and logical type are replaced together; there is no
// intermediate state where they disagree. Only decimal-to-decimal
// re-tags are permitted.
func (s *Scalar) retagDecimal(target dtype.Kind, scale int32) error {
	old, ok := s.p.(decimalPayload)
	if !ok {
		return fmt.Errorf("scalar: %w: re-tag of non-decimal %s", ErrKindMismatch, s.dt)
	}
	if !target.IsDecimal() {
		return fmt.Errorf("scalar: %w: re-tag target %s is not decimal", ErrKindMismatch, target)
	}
	dt, err := dtype.Decimal(target, s.dt.Precision(), scale)
	if err != nil {
		return err
	}
	s.p = decimalPayload{widthKind: target, mantissa: old.mantissa, scale: scale}
	s.dt = dt
	return nil
}

// String renders the scalar for human output. Null scalars render as
// "null".
func (s *Scalar) String() string {
	if !s.valid {
		return "null"
	}
	switch p := s.p.(type) {
	case int64Payload:
		return strconv.FormatInt(p.v, 10)
	case float64Payload:
		return strconv.FormatFloat(p.v, 'g', -1, 64)
	case stringPayload:
		return string(p.buf.Bytes())
	case decimalPayload:
		// decimal128 formatting expects the arrow sign convention.
		return p.mantissa.ToString(-p.scale)
	case numericPayload:
		switch p.numKind {
		case dtype.Float32:
			return strconv.FormatFloat(float64(math.Float32frombits(uint32(p.bits))), 'g', -1, 32)
		case dtype.Uint64:
			return strconv.FormatUint(p.bits, 10)
		default:
			return strconv.FormatInt(int64(p.bits), 10)
		}
	default:
		return fmt.Sprintf("scalar(%s)", s.dt)
	}
}
