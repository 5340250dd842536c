// Package model provides the foundation that model code needs to run inside
// a host simulation environment. The host hands over a bundle of callback
// functions at instantiation time, and everything in this package routes
// memory management and diagnostic logging through that bundle.
package model

import "unsafe"

// Status is a status code that accompanies every log message. The values are
// defined by the host's binary-interface standard and are passed through
// without interpretation.
type Status int

// AllocateFunc allocates zeroed storage for nobj objects of size bytes each.
// It returns nil when the allocation fails.
type AllocateFunc func(nobj, size uintptr) unsafe.Pointer

// FreeFunc releases a block previously returned by the paired AllocateFunc.
type FreeFunc func(ptr unsafe.Pointer)

// LogFunc forwards a diagnostic message to the host. component is the opaque
// instance handle the host associates with the model instance. category and
// format are pass-through values defined by the host.
type LogFunc func(
	component any,
	instanceName string,
	status Status,
	category string,
	format string,
	args ...any,
)

// Callbacks is the bundle of functions the host supplies when it creates a
// model instance. The host owns the lifetime of the functions for the entire
// simulation run.
type Callbacks struct {
	AllocateMemory AllocateFunc
	FreeMemory     FreeFunc
	Logger         LogFunc
}
