package errno

import (
	"fmt"
	"io"
	"strconv"
)

// Frame is one call site recorded in a backtrace: the base name of the
// source file, the function name without its package qualifier, and
// the line number. File and Function are not copied: they usually
// point into the binary's symbol table or at string literals, and must
// outlive the Value holding the frame.
//
// Frames are meant to be seen, so the following verbs are implemented:
//
//	"%s"  – the file name and line number: dump.go:42
//	"%q"  – the same as `%s` but wrapped in `"` delimiters
//	"%d"  – the line number
//	"%n"  – the function name
//	"%v"  – the dump form of the frame: dump.go:(*Value).Dump:42
//	"%+v" – a standard line in a stack trace: the function name on one
//	        line, and a tab indented file name and line on the next
//	"%#v" – a Golang representation with the type (`errno.Frame`)
//
// A Frame is immutable once it is recorded.
type Frame struct {
	File     string `json:"file" yaml:"file" toml:"file"`
	Function string `json:"function" yaml:"function" toml:"function"`
	Line     uint32 `json:"line" yaml:"line" toml:"line"`
}

// NewFrame creates a "synthetic" Frame that describes the given
// location characteristics. This can be used to replay frames parsed
// from a dump, or write clear tests that work with these.
func NewFrame(file string, function string, line uint32) Frame {
	return Frame{File: file, Function: function, Line: line}
}

// Location returns the frame's characteristics in function, file, line
// order, matching runtime.Frame.
func (f Frame) Location() (function string, file string, line int) {
	return f.Function, f.File, int(f.Line)
}

func (f Frame) Format(s fmt.State, verb rune) {
	line := strconv.FormatUint(uint64(f.Line), 10)
	switch verb {
	case 's':
		io.WriteString(s, f.File+":"+line)
	case 'q':
		io.WriteString(s, `"`+f.File+":"+line+`"`)
	case 'd':
		io.WriteString(s, line)
	case 'n':
		io.WriteString(s, f.Function)
	case 'v':
		switch {
		case s.Flag('+'):
			io.WriteString(s, f.Function+"\n\t"+f.File+":"+line)
		case s.Flag('#'):
			fmt.Fprintf(s, "errno.Frame{File:%q, Function:%q, Line:%d}", f.File, f.Function, f.Line)
		default:
			io.WriteString(s, f.File+":"+f.Function+":"+line)
		}
	}
}

// Trace is the bounded, append-only backtrace of a Value. The first
// frame is always the construction site; each later frame is a point
// the error passed through on its way up the call chain.
//
// Once full a Trace saturates: Add drops the new frame and keeps the
// oldest ones, which sit closest to the origin of the error.
type Trace struct {
	frames [MaxFrames]Frame
	n      int
	limit  int // 0 is MaxFrames
}

// Len returns the number of recorded frames.
func (t *Trace) Len() int { return t.n }

// Cap returns the number of frames the trace can hold.
func (t *Trace) Cap() int {
	if t.limit == 0 {
		return MaxFrames
	}
	return t.limit
}

// Full reports whether further frames will be dropped.
func (t *Trace) Full() bool { return t.n >= t.Cap() }

// Add appends f unless the trace is full. It reports whether the frame
// was kept.
func (t *Trace) Add(f Frame) bool {
	if t.Full() {
		return false
	}
	t.frames[t.n] = f
	t.n++
	return true
}

// At returns the i-th frame, 0 being the origin. It panics when i is
// out of range.
func (t *Trace) At(i int) Frame {
	if i < 0 || i >= t.n {
		panic("errno: frame index out of range: " + strconv.Itoa(i))
	}
	return t.frames[i]
}

// Frames returns the recorded frames, origin first. The slice aliases
// the trace's storage and is only valid until the owning Value is
// reconstructed.
func (t *Trace) Frames() []Frame { return t.frames[:t.n:t.n] }

func (t *Trace) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			for _, f := range t.Frames() {
				io.WriteString(s, "\n")
				f.Format(s, verb)
			}
			return
		}
		fallthrough
	case 's', 'n':
		io.WriteString(s, "[")
		for i, f := range t.Frames() {
			if i > 0 {
				io.WriteString(s, " ")
			}
			f.Format(s, verb)
		}
		io.WriteString(s, "]")
	}
}

// reset makes site the only frame and lifts any limit.
func (t *Trace) reset(site Frame) {
	t.frames[0] = site
	t.n = 1
	t.limit = 0
}

// clamp lowers the capacity to depth. The capacity never drops below
// the frames already recorded nor below the origin frame, and never
// rises above MaxFrames.
func (t *Trace) clamp(depth int) {
	if depth < t.n {
		depth = t.n
	}
	if depth < 1 {
		depth = 1
	}
	if depth >= MaxFrames {
		t.limit = 0
		return
	}
	t.limit = depth
}
