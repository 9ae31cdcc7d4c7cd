package devmem

import "errors"

// ErrReleased is returned when a buffer (or a scalar owning one) is
// released more than once.
var ErrReleased = errors.New("already released")

// Buffer is a resource-owned byte region holding one scalar payload.
// A Buffer exclusively owns its storage; Release frees it exactly once.
type Buffer struct {
	resource Resource
	data     []byte
	released bool
}

// NewBuffer copies data into a fresh allocation from r. Zero-length
// data allocates nothing but still yields a usable (empty) buffer.
func NewBuffer(r Resource, data []byte) *Buffer {
	b := &Buffer{resource: r}
	if len(data) > 0 {
		b.data = r.Allocate(len(data))
		copy(b.data, data)
	}
	return b
}

// Bytes returns the owned region. Callers must not retain the slice
// past Release.
func (b *Buffer) Bytes() []byte {
	if b.released {
		return nil
	}
	return b.data
}

// Len returns the payload size in bytes.
func (b *Buffer) Len() int {
	if b.released {
		return 0
	}
	return len(b.data)
}

// Release frees the owned storage. The second and later calls fail with
// ErrReleased and do not double-free.
func (b *Buffer) Release() error {
	if b.released {
		return ErrReleased
	}
	b.released = true
	if b.data != nil {
		b.resource.Free(b.data)
		b.data = nil
	}
	return nil
}
