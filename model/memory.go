package model

import (
	"log"
	"unsafe"
)

// A Memory forwards allocation and deallocation requests to the host. It is
// a plain value that can be copied freely; every copy holds the same
// function pair and compares equal to the original.
//
// Memory never allocates or frees anything on its own, and it must be the
// only allocation path for memory that the host can see.
type Memory struct {
	alloc AllocateFunc
	free  FreeFunc
}

// NewMemory captures the allocate/free pair from cb. It panics if either
// function is missing, as a model instance cannot operate without them.
func NewMemory(cb Callbacks) Memory {
	if cb.AllocateMemory == nil || cb.FreeMemory == nil {
		log.Panic("host callbacks must include AllocateMemory and FreeMemory")
	}

	return Memory{
		alloc: cb.AllocateMemory,
		free:  cb.FreeMemory,
	}
}

// Alloc requests storage for nobj objects of size bytes each. It returns nil
// if and only if the host's allocator fails. The host zeroes the block, in
// the manner of calloc.
func (m Memory) Alloc(nobj, size uintptr) unsafe.Pointer {
	return m.alloc(nobj, size)
}

// Free releases a block previously returned by Alloc on an equal Memory.
// Freeing nil is a no-op.
func (m Memory) Free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}

	m.free(ptr)
}

// Equal reports whether two handles hold the same allocate/free pair. Two
// model instances may legitimately hold non-equal Memory handles, and blocks
// must never cross from one to the other.
func (m Memory) Equal(rhs Memory) bool {
	return funcValue(m.alloc) == funcValue(rhs.alloc) &&
		funcValue(m.free) == funcValue(rhs.free)
}

// funcValue returns the identity of a function value. Copies of one function
// value share an identity; two separately created closures do not, even when
// they were built from the same function literal.
func funcValue[F any](f F) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&f))
}
