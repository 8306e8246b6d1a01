package errors

import "runtime"

// StackTrace is a stack of program counters, the first frame is the error origin.
type StackTrace []uintptr

type stackTracer interface {
	StackTrace() StackTrace
}

func callers() StackTrace {
	const depth = 16
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	return StackTrace(pcs[0:n])
}
