package errno

import (
	"fmt"
	"io"
	"syscall"
)

// Kind tells how a Value carries its message.
type Kind uint8

const (
	// KindInt errors carry a code and a backtrace, nothing else.
	KindInt Kind = iota

	// KindString errors reference a caller owned message, usually a
	// string literal.
	KindString

	// KindFormatted errors own their message: it was formatted into the
	// Value's inline buffer at construction time. Not available in the
	// size-optimized configuration.
	KindFormatted
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindFormatted:
		return "formatted"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is one error occurrence: a status code, an optional message and
// a bounded backtrace. A Value has a fixed size and is always built in
// place, into storage owned by the caller (a local variable, a struct
// field, a localerr.Slot), so creating and propagating errors never
// touches the heap.
//
// A *Value is the handle passed up the call chain. A nil handle means
// that no error occurred.
//
// Copying a Value copies its message buffer, so a copy of a formatted
// error never shares text with the original.
type Value struct {
	kind   Kind
	code   Code
	msg    string // KindString only
	trace  Trace
	msgLen uint16 // KindFormatted only: bytes used in buf
	buf    [MaxMessage]byte
}

var _ interface { // Assert interface implementation.
	error
	fmt.Formatter
	Is(error) bool
} = (*Value)(nil)

// Kind returns how v carries its message.
func (v *Value) Kind() Kind { return v.kind }

// Code returns the status code of v.
func (v *Value) Code() Code { return v.code }

// HasMessage reports whether v carries a message.
func (v *Value) HasMessage() bool { return v.kind != KindInt }

// Message returns the message of v, or "" for KindInt errors.
func (v *Value) Message() string {
	switch v.kind {
	case KindString:
		return v.msg
	case KindFormatted:
		return string(v.message())
	default:
		return ""
	}
}

// message returns the inline buffer in use. It is empty unless v is a
// KindFormatted error.
func (v *Value) message() []byte { return v.buf[:v.msgLen] }

// Trace returns the backtrace of v.
func (v *Value) Trace() *Trace { return &v.trace }

// Frames is shorthand for v.Trace().Frames().
func (v *Value) Frames() []Frame { return v.trace.Frames() }

// Limit lowers the backtrace capacity of v to depth frames, for call
// chains where only the frames closest to the origin matter. The
// capacity never drops below the frames already recorded and never
// rises above MaxFrames. Constructing into v again lifts the limit.
func (v *Value) Limit(depth int) *Value {
	v.trace.clamp(depth)
	return v
}

// Error implements error: the message when there is one, otherwise the
// description of the code.
func (v *Value) Error() string {
	if v == nil {
		return "<nil>"
	}
	if v.kind != KindInt {
		return v.Message()
	}
	return v.code.Description()
}

// Is matches target when it is a Code, a syscall.Errno or another
// *Value with the same status code.
func (v *Value) Is(target error) bool {
	if v == nil {
		return false
	}
	switch t := target.(type) {
	case Code:
		return v.code == t
	case syscall.Errno:
		return uintptr(v.code) == uintptr(t)
	case *Value:
		return t != nil && v.code == t.code
	default:
		return false
	}
}

// Format implements fmt.Formatter. "%s" and "%v" print the message (see
// Error), "%q" quotes it, "%+v" prints the full dump and "%#v" a Go
// representation.
func (v *Value) Format(s fmt.State, verb rune) {
	if v == nil {
		io.WriteString(s, "<nil>")
		return
	}
	switch verb {
	case 'v':
		if s.Flag('+') {
			s.Write(v.AppendDump(nil))
			return
		}
		if s.Flag('#') {
			fmt.Fprintf(s, "&errno.Value{Kind:%s, Code:%d, Message:%q, Frames:%d}",
				v.kind, v.code, v.Message(), v.trace.Len())
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, v.Error())
	case 'q':
		fmt.Fprintf(s, "%q", v.Error())
	default:
		// empty
	}
}
