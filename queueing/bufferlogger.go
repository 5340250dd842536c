package queueing

import (
	"github.com/simbind/simbind/model"
	"github.com/simbind/simbind/model/hooking"
	"github.com/simbind/simbind/model/naming"
)

// BufferLogger is a hook that reports buffer traffic through the host's
// diagnostic logger, as debug messages.
type BufferLogger struct {
	logger   model.Logger
	status   model.Status
	category string
}

// NewBufferLogger creates a hook that logs through logger. status and
// category are the pass-through values the host expects on debug messages.
func NewBufferLogger(
	logger model.Logger,
	status model.Status,
	category string,
) *BufferLogger {
	return &BufferLogger{
		logger:   logger,
		status:   status,
		category: category,
	}
}

// Func writes the buffer event to the host logger.
func (h *BufferLogger) Func(ctx hooking.HookCtx) {
	if ctx.Pos != HookPosBufPush && ctx.Pos != HookPosBufPop {
		return
	}

	buf, ok := ctx.Domain.(naming.Named)
	if !ok {
		return
	}

	h.logger.DebugLog(h.status, h.category,
		"%s: %s %v", buf.Name(), ctx.Pos.Name, ctx.Item)
}
