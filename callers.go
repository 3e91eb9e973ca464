package errno

import "github.com/secureworks/errno/internal/runtime"

// Caller returns a Frame that describes the function calling Caller.
//
//go:noinline
func Caller() Frame {
	return getFrame(1)
}

// CallerAt returns a Frame that describes a frame on the caller's
// stack. The argument skipCallers is the number of frames to skip over:
// CallerAt(0) is the same as Caller.
//
//go:noinline
func CallerAt(skipCallers int) Frame {
	return getFrame(skipCallers + 1)
}

// getFrame translates the call site skip frames above its caller into
// a Frame: getFrame(0) describes the function calling getFrame.
//
//go:noinline
func getFrame(skip int) Frame {
	file, function, line := runtime.Caller(skip + 1)
	return Frame{File: file, Function: function, Line: uint32(line)}
}
