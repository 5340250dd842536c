package model

import "unsafe"

// Destructible is implemented by objects that need teardown before their
// storage is returned to the host. Delete invokes Destroy exactly once.
type Destructible interface {
	Destroy()
}

// New allocates storage for a single T through memory and initializes it.
// The host zeroes the block, so a nil init produces a zero-valued T. If init
// fails, the storage is released before the error is propagated, so a failed
// construction never leaks the block.
func New[T any](memory Memory, init func(*T) error) (*T, error) {
	alloc := NewAllocator[T](memory)

	block, err := alloc.Allocate(1)
	if err != nil {
		return nil, err
	}

	obj := &block[0]
	if init != nil {
		if err := init(obj); err != nil {
			alloc.Deallocate(block)
			return nil, err
		}
	}

	return obj, nil
}

// Delete destroys obj and returns its storage to the host. obj must have
// been produced by New on an equal Memory. If obj implements Destructible,
// its Destroy method runs before the block is freed. Deleting nil is a
// no-op. Delete never fails.
func Delete[T any](memory Memory, obj *T) {
	if obj == nil {
		return
	}

	if d, ok := any(obj).(Destructible); ok {
		d.Destroy()
	}

	alloc := NewAllocator[T](memory)
	alloc.Deallocate(unsafe.Slice(obj, 1))
}

// A Releaser owns a resource and releases it at most once. Owned handles of
// different held types all satisfy Releaser, so they can travel through code
// that only needs to end their ownership.
type Releaser interface {
	Release()
}

// An Owned exclusively owns one host-allocated object. Its release action is
// fixed at creation time and captures the Memory the object was allocated
// from, independent of the held type.
type Owned[T any] struct {
	obj     *T
	release func()
}

// AllocateUnique creates a T through New and wraps it in an Owned whose
// release action deletes the object through the same memory.
func AllocateUnique[T any](memory Memory, init func(*T) error) (*Owned[T], error) {
	obj, err := New(memory, init)
	if err != nil {
		return nil, err
	}

	return &Owned[T]{
		obj:     obj,
		release: func() { Delete(memory, obj) },
	}, nil
}

// Get returns the owned object, or nil once ownership has ended.
func (o *Owned[T]) Get() *T {
	return o.obj
}

// Release destroys the owned object and frees its storage. Calls after the
// first do nothing.
func (o *Owned[T]) Release() {
	if o.release == nil {
		return
	}

	o.release()
	o.release = nil
	o.obj = nil
}

// Detach ends ownership and returns the object without destroying it. The
// caller becomes responsible for passing the object to Delete on an equal
// Memory.
func (o *Owned[T]) Detach() *T {
	obj := o.obj
	o.obj = nil
	o.release = nil

	return obj
}
