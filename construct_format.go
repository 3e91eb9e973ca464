//go:build !errno_optimize

package errno

import "fmt"

// MakeFormatted builds a KindFormatted error into dst, formatting the
// message into dst's inline buffer. Messages longer than MaxMessage
// bytes are cut silently, on a rune boundary.
//
// The format string is a contract checked on every call, including
// formats held in variables that go vet cannot see. MakeFormatted
// panics when format is malformed, uses %w, or does not consume args
// exactly: missing arguments and surplus arguments both panic, where
// fmt would print %!d(MISSING) or %!(EXTRA ...) into the message.
// Surplus arguments are allowed when format uses explicit indices
// such as %[2]d.
func MakeFormatted(dst *Value, code Code, site Frame, format string, args ...interface{}) *Value {
	mustCheckFormat(format, len(args))

	*dst = Value{kind: KindFormatted, code: code}
	dst.trace.reset(site)

	w := fixedWriter{buf: dst.buf[:]}
	fmt.Fprintf(&w, format, args...)
	dst.msgLen = uint16(w.Len())
	return dst
}

// NewFormatted is MakeFormatted at the caller's call site.
//
//go:noinline
func NewFormatted(dst *Value, code Code, format string, args ...interface{}) *Value {
	return MakeFormatted(dst, code, getFrame(1), format, args...)
}
