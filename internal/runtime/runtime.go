// Package runtime resolves call sites for the errno package. A call
// site is read through a one-element program counter array and resolved
// with runtime.FuncForPC, so capturing it does not grow the heap.
package runtime

import (
	"runtime"
	"strings"
)

const unknown = "unknown"

// Caller returns the base file name, the short function name and the
// line of a frame on the calling goroutine's stack. A skip of 0 is the
// function that called Caller. When the stack is not that deep both
// names are "unknown" and the line is 0.
//
//go:noinline
func Caller(skip int) (file string, function string, line int) {
	var pcs [1]uintptr
	// 0 is runtime.Callers itself and 1 is this function.
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return unknown, unknown, 0
	}
	// The pc is a return address, pc-1 lies in the call instruction.
	// FuncForPC resolves it without allocating, unlike CallersFrames.
	pc := pcs[0] - 1
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return unknown, unknown, 0
	}
	path, line := fn.FileLine(pc)
	return FileName(path), FuncName(fn.Name()), line
}

// FuncName strips the import path and the package qualifier from a
// fully qualified function name:
//
//	github.com/org/pkg.(*T).Method -> (*T).Method
//	github.com/org/pkg.Func.func1  -> Func.func1
func FuncName(name string) string {
	if name == "" {
		return unknown
	}
	i := strings.LastIndexByte(name, '/')
	name = name[i+1:]
	i = strings.IndexByte(name, '.')
	return name[i+1:]
}

// FileName returns the last element of a source path. Both separators
// are accepted since runtime paths use '/' even on Windows while
// synthetic frames may not.
func FileName(path string) string {
	if path == "" {
		return unknown
	}
	return path[strings.LastIndexAny(path, `/\`)+1:]
}
