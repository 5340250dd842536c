package model

import (
	"bytes"
	"unsafe"
)

// A String is a growable character sequence whose backing buffer lives in
// host memory. The buffer always carries a trailing NUL byte, so it can be
// handed back across a C-style host boundary unmodified.
type String struct {
	alloc Allocator[byte]
	buf   []byte // content plus one NUL byte; nil only for the zero value
}

// CopyString creates a String whose content equals src, with storage
// allocated through memory. This is the canonical way model code ingests
// strings that arrive from the host boundary.
func CopyString(memory Memory, src string) (String, error) {
	return makeString(NewAllocator[byte](memory), src)
}

func makeString(alloc Allocator[byte], src string) (String, error) {
	buf, err := alloc.Allocate(len(src) + 1)
	if err != nil {
		return String{}, err
	}

	copy(buf, src)
	buf[len(src)] = 0

	return String{alloc: alloc, buf: buf}, nil
}

// Len returns the number of content bytes, excluding the trailing NUL.
func (s String) Len() int {
	if s.buf == nil {
		return 0
	}

	return len(s.buf) - 1
}

// String returns a Go copy of the content. The copy is managed by the Go
// runtime and must not be handed back to the host as an owned block.
func (s String) String() string {
	return string(s.buf[:s.Len()])
}

// Bytes returns a view of the content bytes, excluding the trailing NUL. The
// view stays valid until the String is appended to or released.
func (s String) Bytes() []byte {
	return s.buf[:s.Len()]
}

// CPtr returns the address of the NUL-terminated buffer for passing across
// the host boundary. It returns nil for the zero String.
func (s String) CPtr() unsafe.Pointer {
	if s.buf == nil {
		return nil
	}

	return unsafe.Pointer(&s.buf[0])
}

// Equal reports whether two Strings hold the same content.
func (s String) Equal(rhs String) bool {
	return bytes.Equal(s.buf[:s.Len()], rhs.buf[:rhs.Len()])
}

// Allocator returns the allocator that owns the backing buffer.
func (s String) Allocator() Allocator[byte] {
	return s.alloc
}

// Append extends the content with t, growing the backing buffer through the
// host. The old buffer is released after the content has moved.
func (s *String) Append(t string) error {
	if len(t) == 0 {
		return nil
	}

	oldLen := s.Len()
	buf, err := s.alloc.Allocate(oldLen + len(t) + 1)
	if err != nil {
		return err
	}

	copy(buf, s.buf[:oldLen])
	copy(buf[oldLen:], t)
	buf[oldLen+len(t)] = 0

	s.alloc.Deallocate(s.buf)
	s.buf = buf

	return nil
}

// Clone creates an independent String with the same content, allocated
// through the same host memory.
func (s String) Clone() (String, error) {
	return makeString(s.alloc, s.String())
}

// Release returns the backing buffer to the host. The String is empty
// afterwards; releasing it again is a no-op.
func (s *String) Release() {
	s.alloc.Deallocate(s.buf)
	s.buf = nil
}
