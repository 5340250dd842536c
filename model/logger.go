package model

import "log"

// A Logger forwards diagnostic messages from model code to the host's log
// callback. Debug messages are gated by a flag shared with whatever
// component toggles debug logging for the instance; the flag is read at call
// time and never written by the Logger.
type Logger struct {
	component    any
	instanceName String
	nameView     string
	logFn        LogFunc
	debugEnabled *bool
}

// NewLogger creates a Logger for the instance identified by component and
// instanceName. It panics if cb does not include a Logger function.
// debugEnabled may be nil, in which case debug messages are never emitted.
func NewLogger(
	component any,
	instanceName String,
	cb Callbacks,
	debugEnabled *bool,
) Logger {
	if cb.Logger == nil {
		log.Panic("host callbacks must include Logger")
	}

	return Logger{
		component:    component,
		instanceName: instanceName,
		nameView:     instanceName.String(),
		logFn:        cb.Logger,
		debugEnabled: debugEnabled,
	}
}

// InstanceName returns the host-backed name the Logger reports under.
func (l Logger) InstanceName() String {
	return l.instanceName
}

// Log unconditionally forwards a message to the host. The status code and
// category are pass-through values; the host is responsible for any
// filtering beyond the debug gate.
func (l Logger) Log(status Status, category, format string, args ...any) {
	l.logFn(l.component, l.nameView, status, category, format, args...)
}

// DebugLog forwards a message only when debug logging is enabled at call
// time. When the flag reads false, nothing is formatted or forwarded.
func (l Logger) DebugLog(status Status, category, format string, args ...any) {
	if l.debugEnabled == nil || !*l.debugEnabled {
		return
	}

	l.Log(status, category, format, args...)
}
