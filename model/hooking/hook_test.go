package hooking

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type recordingHook struct {
	received []HookCtx
}

func (h *recordingHook) Func(ctx HookCtx) {
	h.received = append(h.received, ctx)
}

var _ = Describe("HookableBase", func() {
	var (
		hookable *HookableBase
		pos      *HookPos
	)

	BeforeEach(func() {
		hookable = &HookableBase{}
		pos = &HookPos{Name: "Sample"}
	})

	It("should start with no hooks", func() {
		Expect(hookable.NumHooks()).To(BeZero())
	})

	It("should invoke every registered hook", func() {
		first := &recordingHook{}
		second := &recordingHook{}
		hookable.AcceptHook(first)
		hookable.AcceptHook(second)

		hookable.InvokeHook(HookCtx{Pos: pos, Item: 42})

		Expect(hookable.NumHooks()).To(Equal(2))
		Expect(first.received).To(HaveLen(1))
		Expect(second.received).To(HaveLen(1))
		Expect(first.received[0].Pos).To(BeIdenticalTo(pos))
		Expect(first.received[0].Item).To(Equal(42))
	})

	It("should reject duplicated hooks", func() {
		hook := &recordingHook{}
		hookable.AcceptHook(hook)

		Expect(func() {
			hookable.AcceptHook(hook)
		}).To(Panic())
	})
})
