package scalar

import (
	"github.com/apache/arrow/go/v15/arrow/decimal128"

	"github.com/roach88/devscalar/internal/devmem"
	"github.com/roach88/devscalar/internal/dtype"
)

// payload is a sealed union of device storage variants.
// Only the types below implement it.
type payload interface {
	devicePayload() // Sealed - only these types implement it
	kind() dtype.Kind
}

// int64Payload holds the primary signed integer variant.
type int64Payload struct {
	v int64
}

func (int64Payload) devicePayload() {}
func (int64Payload) kind() dtype.Kind { return dtype.Int64 }

// float64Payload holds the primary floating-point variant.
type float64Payload struct {
	v float64
}

func (float64Payload) devicePayload() {}
func (float64Payload) kind() dtype.Kind { return dtype.Float64 }

// stringPayload owns a device buffer of UTF-8 bytes.
type stringPayload struct {
	buf *devmem.Buffer
}

func (stringPayload) devicePayload() {}
func (stringPayload) kind() dtype.Kind { return dtype.String }

// decimalPayload serves all three fixed-point widths: the 128-bit
// mantissa plus the power-of-ten scale, with the width selected by the
// kind tag. A re-tag changes the tag and scale but reads the same
// mantissa representation.
type decimalPayload struct {
	widthKind dtype.Kind
	mantissa  decimal128.Num
	scale     int32
}

func (decimalPayload) devicePayload() {}
func (p decimalPayload) kind() dtype.Kind { return p.widthKind }

// numericPayload is the extension point for the secondary numeric
// widths produced by the interop and host-buffer paths: the value is
// widened to a raw 64-bit pattern (sign-extended integers, IEEE-754
// bits for floats) alongside its kind tag.
type numericPayload struct {
	numKind dtype.Kind
	bits    uint64
}

func (numericPayload) devicePayload() {}
func (p numericPayload) kind() dtype.Kind { return p.numKind }
