package model

import (
	"log"
	"unsafe"
)

// An Allocator hands out blocks of T elements backed by host memory. It is a
// plain value; copies and rebound allocators are interchangeable as long as
// their Memory handles are equal. Containers may rely on that equality to
// decide whether storage can change hands without reallocation.
//
// When the host's allocator returns memory outside the Go heap, T must not
// contain Go pointers.
type Allocator[T any] struct {
	memory Memory
}

// NewAllocator creates an allocator for elements of type T over memory.
func NewAllocator[T any](memory Memory) Allocator[T] {
	return Allocator[T]{memory: memory}
}

// Allocate returns a block of exactly n elements. Allocating zero elements
// returns a nil slice without involving the host. If the host's allocator
// fails, Allocate returns ErrOutOfMemory; it never returns a short block.
func (a Allocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		log.Panic("allocation count must not be negative")
	}

	if n == 0 {
		return nil, nil
	}

	var elem T
	ptr := a.memory.Alloc(uintptr(n), unsafe.Sizeof(elem))
	if ptr == nil {
		return nil, ErrOutOfMemory
	}

	return unsafe.Slice((*T)(ptr), n), nil
}

// Deallocate releases a block previously returned by Allocate on an equal
// allocator. Deallocating an empty block is a no-op. Deallocate never fails.
func (a Allocator[T]) Deallocate(block []T) {
	if len(block) == 0 {
		return
	}

	a.memory.Free(unsafe.Pointer(&block[0]))
}

// Memory returns the handle the allocator forwards to.
func (a Allocator[T]) Memory() Memory {
	return a.memory
}

// Equal reports whether two allocators forward to the same host functions
// and are therefore interchangeable.
func (a Allocator[T]) Equal(rhs Allocator[T]) bool {
	return a.memory.Equal(rhs.memory)
}

// Rebind produces an allocator for a different element type over the same
// Memory. A container of T uses this to allocate internal storage of some
// other type U through the same host-backed memory.
func Rebind[U, T any](a Allocator[T]) Allocator[U] {
	return Allocator[U]{memory: a.memory}
}
