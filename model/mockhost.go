package model

import (
	"log"
	"unsafe"

	"github.com/rs/xid"
)

// A MockLogEntry records one call to a MockHost's log callback.
type MockLogEntry struct {
	Component    any
	InstanceName string
	Status       Status
	Category     string
	Format       string
	Args         []any
}

// MockHost is a counting stand-in for the host simulation environment. It is
// created to simplify the unit tests of this package and of model code built
// on top of it. It serves blocks from the Go heap, counts every callback
// invocation, and panics on a free of a pointer it never handed out.
type MockHost struct {
	id        string
	callbacks Callbacks

	// blocks holds the outstanding allocations, keyed by their base address.
	// Keeping the slices here keeps the Go runtime from reclaiming them
	// while the model still holds raw pointers into them.
	blocks map[unsafe.Pointer][]byte

	AllocCount    int
	FreeCount     int
	LogCount      int
	LastAllocNObj uintptr
	LastAllocSize uintptr
	LastAllocated unsafe.Pointer
	LastFreed     unsafe.Pointer
	Logs          []MockLogEntry

	// FailNextAlloc makes the next allocate call return nil, then resets.
	FailNextAlloc bool
}

// NewMockHost creates a MockHost with a unique name. Each MockHost stands
// for a distinct host environment: Memory handles built from different
// MockHosts never compare equal.
func NewMockHost() *MockHost {
	h := &MockHost{
		id:     "MockHost-" + xid.New().String(),
		blocks: make(map[unsafe.Pointer][]byte),
	}

	h.callbacks = Callbacks{
		AllocateMemory: h.allocate,
		FreeMemory:     h.free,
		Logger:         h.log,
	}

	return h
}

// Name returns the unique name of the mock host.
func (h *MockHost) Name() string {
	return h.id
}

// Callbacks returns the host's callback bundle. The same bundle is returned
// every time, so all Memory handles created from one MockHost compare equal.
func (h *MockHost) Callbacks() Callbacks {
	return h.callbacks
}

// Memory is shorthand for NewMemory(h.Callbacks()).
func (h *MockHost) Memory() Memory {
	return NewMemory(h.callbacks)
}

// OutstandingBlocks returns the number of blocks allocated but not yet
// freed. A leak-free test ends with zero.
func (h *MockHost) OutstandingBlocks() int {
	return len(h.blocks)
}

func (h *MockHost) allocate(nobj, size uintptr) unsafe.Pointer {
	h.AllocCount++
	h.LastAllocNObj = nobj
	h.LastAllocSize = size

	if h.FailNextAlloc {
		h.FailNextAlloc = false
		return nil
	}

	buf := make([]byte, nobj*size)
	if len(buf) == 0 {
		buf = make([]byte, 1)
	}

	ptr := unsafe.Pointer(&buf[0])
	h.blocks[ptr] = buf
	h.LastAllocated = ptr

	return ptr
}

func (h *MockHost) free(ptr unsafe.Pointer) {
	h.FreeCount++
	h.LastFreed = ptr

	if _, ok := h.blocks[ptr]; !ok {
		log.Panicf("host %s: free of a pointer it never allocated", h.id)
	}

	delete(h.blocks, ptr)
}

func (h *MockHost) log(
	component any,
	instanceName string,
	status Status,
	category string,
	format string,
	args ...any,
) {
	h.LogCount++
	h.Logs = append(h.Logs, MockLogEntry{
		Component:    component,
		InstanceName: instanceName,
		Status:       status,
		Category:     category,
		Format:       format,
		Args:         args,
	})
}
