// Package hostbuf provides a fixed-width view over contiguous host
// memory: an element kind, an element count, and little-endian backing
// bytes. The scalar constructor consumes the first element of such a
// view (length-1/broadcastable buffers are treated as scalars).
package hostbuf

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/roach88/devscalar/internal/dtype"
)

// Buffer is a contiguous fixed-width element view of host memory.
type Buffer struct {
	kind dtype.Kind
	data []byte
	n    int
}

// Kind returns the element type.
func (b *Buffer) Kind() dtype.Kind { return b.kind }

// Len returns the element count.
func (b *Buffer) Len() int { return b.n }

// FromInt32s builds a view over int32 elements.
func FromInt32s(vals []int32) *Buffer {
	data := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(data[4*i:], uint32(v))
	}
	return &Buffer{kind: dtype.Int32, data: data, n: len(vals)}
}

// FromInt64s builds a view over int64 elements.
func FromInt64s(vals []int64) *Buffer {
	data := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint64(data[8*i:], uint64(v))
	}
	return &Buffer{kind: dtype.Int64, data: data, n: len(vals)}
}

// FromFloat32s builds a view over float32 elements.
func FromFloat32s(vals []float32) *Buffer {
	data := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(data[4*i:], math.Float32bits(v))
	}
	return &Buffer{kind: dtype.Float32, data: data, n: len(vals)}
}

// FromFloat64s builds a view over float64 elements.
func FromFloat64s(vals []float64) *Buffer {
	data := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint64(data[8*i:], math.Float64bits(v))
	}
	return &Buffer{kind: dtype.Float64, data: data, n: len(vals)}
}

// FromRaw adapts foreign memory: little-endian bytes holding n elements
// of the given kind. No copy is made; the caller keeps ownership.
func FromRaw(kind dtype.Kind, data []byte, n int) *Buffer {
	return &Buffer{kind: kind, data: data, n: n}
}

// FirstBits returns the first element's raw value widened to 64 bits:
// sign-extended for integers, IEEE-754 bit pattern for floats.
// Fails on an empty buffer.
func (b *Buffer) FirstBits() (uint64, error) {
	if b.n == 0 {
		return 0, fmt.Errorf("hostbuf: empty buffer")
	}
	switch b.kind {
	case dtype.Int32:
		return uint64(int64(int32(binary.LittleEndian.Uint32(b.data)))), nil
	case dtype.Int64:
		return binary.LittleEndian.Uint64(b.data), nil
	case dtype.Float32:
		return uint64(binary.LittleEndian.Uint32(b.data)), nil
	case dtype.Float64:
		return binary.LittleEndian.Uint64(b.data), nil
	default:
		return 0, fmt.Errorf("hostbuf: no fixed-width reader for %s", b.kind)
	}
}
