// Package hooking lets tools observe what the components of a model
// instance are doing, without the components knowing who is watching.
package hooking

// HookPos identifies a position in a component's logic where hooks fire.
type HookPos struct {
	Name string
}

// HookCtx carries the information about the site that triggered a hook.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   any
	Detail any
}

// Hook is a short piece of program that a hookable object invokes.
type Hook interface {
	// Func determines what to do when the hook is invoked.
	Func(ctx HookCtx)
}

// Hookable is an object that accepts hooks.
type Hookable interface {
	// AcceptHook registers a hook.
	AcceptHook(hook Hook)

	// NumHooks returns the number of hooks registered.
	NumHooks() int
}

// HookableBase provides the hook bookkeeping for types that implement
// Hookable.
type HookableBase struct {
	hookList []Hook
}

// AcceptHook registers a hook. Registering the same hook twice panics.
func (h *HookableBase) AcceptHook(hook Hook) {
	for _, registered := range h.hookList {
		if registered == hook {
			panic("duplicated hook")
		}
	}

	h.hookList = append(h.hookList, hook)
}

// NumHooks returns the number of hooks registered.
func (h *HookableBase) NumHooks() int {
	return len(h.hookList)
}

// InvokeHook triggers all registered hooks.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.hookList {
		hook.Func(ctx)
	}
}
