package model

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Memory", func() {
	var (
		host   *MockHost
		memory Memory
	)

	BeforeEach(func() {
		host = NewMockHost()
		memory = host.Memory()
	})

	It("should forward Alloc to the host", func() {
		ptr := memory.Alloc(4, 8)

		Expect(ptr).NotTo(BeNil())
		Expect(ptr).To(BeIdenticalTo(host.LastAllocated))
		Expect(host.AllocCount).To(Equal(1))
		Expect(host.LastAllocNObj).To(Equal(uintptr(4)))
		Expect(host.LastAllocSize).To(Equal(uintptr(8)))
	})

	It("should forward Free to the host", func() {
		ptr := memory.Alloc(1, 8)

		memory.Free(ptr)

		Expect(host.FreeCount).To(Equal(1))
		Expect(host.LastFreed).To(BeIdenticalTo(ptr))
		Expect(host.OutstandingBlocks()).To(BeZero())
	})

	It("should treat freeing nil as a no-op", func() {
		memory.Free(nil)

		Expect(host.FreeCount).To(BeZero())
	})

	It("should return nil when the host allocator fails", func() {
		host.FailNextAlloc = true

		Expect(memory.Alloc(1, 8)).To(BeNil())
	})

	It("should compare equal to a copy and to a handle from the same bundle",
		func() {
			copied := memory
			fromSameBundle := host.Memory()

			Expect(memory.Equal(copied)).To(BeTrue())
			Expect(memory.Equal(fromSameBundle)).To(BeTrue())
		})

	It("should not compare equal to a handle from another host", func() {
		other := NewMockHost().Memory()

		Expect(memory.Equal(other)).To(BeFalse())
	})

	It("should not compare equal if only one function differs", func() {
		otherHost := NewMockHost()
		mixed := NewMemory(Callbacks{
			AllocateMemory: host.Callbacks().AllocateMemory,
			FreeMemory:     otherHost.Callbacks().FreeMemory,
		})

		Expect(memory.Equal(mixed)).To(BeFalse())
		Expect(otherHost.Memory().Equal(mixed)).To(BeFalse())
	})

	It("should panic if the host omits a callback", func() {
		Expect(func() {
			NewMemory(Callbacks{FreeMemory: host.Callbacks().FreeMemory})
		}).To(Panic())

		Expect(func() {
			NewMemory(Callbacks{AllocateMemory: host.Callbacks().AllocateMemory})
		}).To(Panic())
	})
})
