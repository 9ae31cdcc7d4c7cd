package devmem

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/google/uuid"
)

// Allocation is one live entry in a TrackingResource ledger.
type Allocation struct {
	ID   string
	Size int
}

// TrackingResource wraps another Resource and keeps an in-memory ledger
// of live allocations, each tagged with a UUIDv7 ID. Used by tests and
// the CLI to observe outstanding device memory.
type TrackingResource struct {
	inner Resource

	mu   sync.Mutex
	live map[uintptr]Allocation
}

// NewTrackingResource wraps inner (Current() if nil).
func NewTrackingResource(inner Resource) *TrackingResource {
	if inner == nil {
		inner = Current()
	}
	return &TrackingResource{
		inner: inner,
		live:  make(map[uintptr]Allocation),
	}
}

func (r *TrackingResource) Name() string { return "tracking" }

func (r *TrackingResource) Allocate(n int) []byte {
	b := r.inner.Allocate(n)
	if b == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live[uintptr(unsafe.Pointer(&b[0]))] = Allocation{
		ID:   uuid.Must(uuid.NewV7()).String(),
		Size: n,
	}
	return b
}

// Free releases b and drops its ledger entry. Freeing a region this
// resource does not own is a programmer error and panics, matching the
// arrow CheckedAllocator discipline.
func (r *TrackingResource) Free(b []byte) {
	if b == nil {
		return
	}
	key := uintptr(unsafe.Pointer(&b[0]))
	r.mu.Lock()
	if _, ok := r.live[key]; !ok {
		r.mu.Unlock()
		panic(fmt.Sprintf("devmem: free of untracked allocation (size %d)", len(b)))
	}
	delete(r.live, key)
	r.mu.Unlock()
	r.inner.Free(b)
}

// LiveCount returns the number of outstanding allocations.
func (r *TrackingResource) LiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

// LiveBytes returns the total size of outstanding allocations.
func (r *TrackingResource) LiveBytes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := 0
	for _, a := range r.live {
		total += a.Size
	}
	return total
}

// Allocations returns a snapshot of the live ledger entries.
func (r *TrackingResource) Allocations() []Allocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Allocation, 0, len(r.live))
	for _, a := range r.live {
		out = append(out, a)
	}
	return out
}
