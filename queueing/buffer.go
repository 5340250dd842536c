// Package queueing provides containers whose element storage lives in host
// memory.
package queueing

import (
	"log"

	"github.com/simbind/simbind/model"
	"github.com/simbind/simbind/model/hooking"
	"github.com/simbind/simbind/model/naming"
)

// HookPosBufPush marks when an element is pushed into a buffer.
var HookPosBufPush = &hooking.HookPos{Name: "Buffer Push"}

// HookPosBufPop marks when an element is popped from a buffer.
var HookPosBufPop = &hooking.HookPos{Name: "Buffer Pop"}

// A Buffer is a fixed-capacity fifo queue whose element storage is allocated
// through the host.
type Buffer[T any] interface {
	naming.Named
	hooking.Hookable

	CanPush() bool
	Push(e T)
	Pop() (T, bool)
	Peek() (T, bool)
	Capacity() int
	Size() int
	Clear()

	// TakeFrom moves the contents of src into the buffer and releases src.
	// When the two buffers share equal allocators and the receiver is empty,
	// the storage itself changes hands without copying.
	TakeFrom(src Buffer[T])

	// Release returns the buffer's storage to the host. The buffer must not
	// be used afterwards.
	Release()
}

// BufferBuilder builds host-backed buffers.
type BufferBuilder[T any] struct {
	memory   model.Memory
	capacity int
}

// WithMemory defines the host memory that backs the buffer.
func (b BufferBuilder[T]) WithMemory(m model.Memory) BufferBuilder[T] {
	b.memory = m
	return b
}

// WithCapacity defines the capacity of the buffer.
func (b BufferBuilder[T]) WithCapacity(capacity int) BufferBuilder[T] {
	b.capacity = capacity
	return b
}

// Build builds a new Buffer with the given name. The element ring is
// allocated through the host up front; the name is copied into host memory
// through an allocator rebound from the element allocator. Build fails with
// ErrOutOfMemory when the host cannot satisfy the allocations.
func (b BufferBuilder[T]) Build(name string) (Buffer[T], error) {
	naming.NameMustBeValid(name)

	if b.capacity <= 0 {
		log.Panic("buffer capacity must be positive")
	}

	elemAlloc := model.NewAllocator[T](b.memory)
	ring, err := elemAlloc.Allocate(b.capacity)
	if err != nil {
		return nil, err
	}

	nameAlloc := model.Rebind[byte](elemAlloc)
	nameBuf, err := nameAlloc.Allocate(len(name))
	if err != nil {
		elemAlloc.Deallocate(ring)
		return nil, err
	}
	copy(nameBuf, name)

	return &bufferImpl[T]{
		elemAlloc: elemAlloc,
		nameAlloc: nameAlloc,
		nameBuf:   nameBuf,
		ring:      ring,
	}, nil
}

type bufferImpl[T any] struct {
	hooking.HookableBase

	elemAlloc model.Allocator[T]
	nameAlloc model.Allocator[byte]
	nameBuf   []byte

	ring []T
	head int
	size int
}

// Name returns the name of the buffer.
func (b *bufferImpl[T]) Name() string {
	return string(b.nameBuf)
}

func (b *bufferImpl[T]) CanPush() bool {
	return b.size < len(b.ring)
}

func (b *bufferImpl[T]) Push(e T) {
	if b.size >= len(b.ring) {
		log.Panic("buffer overflow")
	}

	b.ring[(b.head+b.size)%len(b.ring)] = e
	b.size++

	if b.NumHooks() > 0 {
		b.InvokeHook(hooking.HookCtx{
			Domain: b,
			Pos:    HookPosBufPush,
			Item:   e,
		})
	}
}

func (b *bufferImpl[T]) Pop() (T, bool) {
	var zero T
	if b.size == 0 {
		return zero, false
	}

	e := b.ring[b.head]
	b.ring[b.head] = zero
	b.head = (b.head + 1) % len(b.ring)
	b.size--

	if b.NumHooks() > 0 {
		b.InvokeHook(hooking.HookCtx{
			Domain: b,
			Pos:    HookPosBufPop,
			Item:   e,
		})
	}

	return e, true
}

func (b *bufferImpl[T]) Peek() (T, bool) {
	var zero T
	if b.size == 0 {
		return zero, false
	}

	return b.ring[b.head], true
}

func (b *bufferImpl[T]) Capacity() int {
	return len(b.ring)
}

func (b *bufferImpl[T]) Size() int {
	return b.size
}

func (b *bufferImpl[T]) Clear() {
	var zero T
	for i := 0; i < b.size; i++ {
		b.ring[(b.head+i)%len(b.ring)] = zero
	}

	b.head = 0
	b.size = 0
}

func (b *bufferImpl[T]) TakeFrom(src Buffer[T]) {
	srcImpl, sameImpl := src.(*bufferImpl[T])

	canSteal := sameImpl &&
		b.size == 0 &&
		len(b.ring) == len(srcImpl.ring) &&
		b.elemAlloc.Equal(srcImpl.elemAlloc)

	if canSteal {
		b.elemAlloc.Deallocate(b.ring)
		b.ring = srcImpl.ring
		b.head = srcImpl.head
		b.size = srcImpl.size
		srcImpl.ring = nil
		srcImpl.head = 0
		srcImpl.size = 0
	} else {
		for {
			e, ok := src.Pop()
			if !ok {
				break
			}
			b.Push(e)
		}
	}

	src.Release()
}

func (b *bufferImpl[T]) Release() {
	b.elemAlloc.Deallocate(b.ring)
	b.nameAlloc.Deallocate(b.nameBuf)
	b.ring = nil
	b.nameBuf = nil
	b.head = 0
	b.size = 0
}
