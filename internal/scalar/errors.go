package scalar

import (
	"errors"

	"github.com/roach88/devscalar/internal/devmem"
)

var (
	// ErrUnsupportedInput means the host value's runtime type matches
	// none of the recognized dispatch cases.
	ErrUnsupportedInput = errors.New("unsupported input")

	// ErrInvalidEncoding means a text literal is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrUnsupportedElementType means a host buffer's element type is
	// outside {int32, int64, float32, float64}.
	ErrUnsupportedElementType = errors.New("unsupported element type")

	// ErrEmptyBuffer means a host buffer holds zero elements.
	ErrEmptyBuffer = errors.New("empty buffer")

	// ErrInvalidTypeHint means a type hint was supplied where none is
	// permitted, a required hint is missing, or the hint requests a
	// non-decimal target for a decimal source.
	ErrInvalidTypeHint = errors.New("invalid type hint")

	// ErrKindMismatch means a readback accessor was called on a scalar
	// of a different kind.
	ErrKindMismatch = errors.New("kind mismatch")

	// ErrReleased mirrors devmem.ErrReleased for callers matching at
	// this package's level.
	ErrReleased = devmem.ErrReleased
)
