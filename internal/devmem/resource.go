// Package devmem provides the device memory resources that back scalar
// payload storage. A Resource hands out raw byte regions; the process
// keeps one swappable current resource, and every scalar pins the
// resource that was current when it was constructed.
package devmem

import (
	"sync"

	"github.com/apache/arrow/go/v15/arrow/memory"
)

// Resource acquires and releases device-resident memory.
// Allocate(0) returns nil; Free(nil) is a no-op.
type Resource interface {
	Name() string
	Allocate(n int) []byte
	Free(b []byte)
}

// StandardResource adapts an arrow memory.Allocator to the Resource
// contract. The zero value is not usable; use NewStandardResource.
type StandardResource struct {
	alloc memory.Allocator
}

// NewStandardResource wraps the given allocator. A nil allocator selects
// memory.DefaultAllocator.
func NewStandardResource(alloc memory.Allocator) *StandardResource {
	if alloc == nil {
		alloc = memory.DefaultAllocator
	}
	return &StandardResource{alloc: alloc}
}

func (r *StandardResource) Name() string { return "standard" }

func (r *StandardResource) Allocate(n int) []byte {
	if n == 0 {
		return nil
	}
	return r.alloc.Allocate(n)
}

func (r *StandardResource) Free(b []byte) {
	if b == nil {
		return
	}
	r.alloc.Free(b)
}

var (
	currentMu sync.RWMutex
	current   Resource = NewStandardResource(nil)
)

// Current returns the process-wide current resource. Safe for
// concurrent use.
func Current() Resource {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent swaps the process-wide current resource and returns the
// previous one. Scalars constructed before the swap keep the resource
// they captured.
func SetCurrent(r Resource) Resource {
	if r == nil {
		panic("devmem: SetCurrent called with nil resource")
	}
	currentMu.Lock()
	defer currentMu.Unlock()
	prev := current
	current = r
	return prev
}
