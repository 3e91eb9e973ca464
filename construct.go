package errno

// The Make constructors take an explicit call site; the New
// constructors record the site of their caller. All of them overwrite
// dst completely and return it as the handle to propagate.

// MakeInt builds a KindInt error into dst. It is the fastest way to
// report an error: no message is stored.
func MakeInt(dst *Value, code Code, site Frame) *Value {
	*dst = Value{kind: KindInt, code: code}
	dst.trace.reset(site)
	return dst
}

// MakeString builds a KindString error into dst. The message is not
// copied: msg must stay valid as long as the Value is read, which a
// string literal always does.
func MakeString(dst *Value, code Code, site Frame, msg string) *Value {
	*dst = Value{kind: KindString, code: code, msg: msg}
	dst.trace.reset(site)
	return dst
}

// NewInt is MakeInt at the caller's call site.
//
//go:noinline
func NewInt(dst *Value, code Code) *Value {
	return MakeInt(dst, code, getFrame(1))
}

// NewString is MakeString at the caller's call site.
//
//go:noinline
func NewString(dst *Value, code Code, msg string) *Value {
	return MakeString(dst, code, getFrame(1), msg)
}
