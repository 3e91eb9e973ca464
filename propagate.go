package errno

// Propagation is explicit. Every function that can fail checks the
// handle it got back, records its own frame and hands the error up:
//
//	func foo(dst *errno.Value) *errno.Value {
//	    if err := bar(dst); errno.Try(err) {
//	        return err
//	    }
//	    ...
//	}
//
// Frames are only captured on the error path, so the happy path costs
// a nil check.

// AddFrame appends f to the backtrace of v. A full backtrace drops f.
// A nil v is returned as is.
func AddFrame(v *Value, f Frame) *Value {
	if v != nil {
		v.trace.Add(f)
	}
	return v
}

// Wrap records the caller's call site on v. Once the backtrace is full
// Wrap does not even look at the stack.
//
//go:noinline
func Wrap(v *Value) *Value {
	if v == nil || v.trace.Full() {
		return v
	}
	v.trace.Add(getFrame(1))
	return v
}

// WrapAt is Wrap for helpers: skipCallers frames above the caller are
// skipped, so WrapAt(v, 0) is the same as Wrap(v).
//
//go:noinline
func WrapAt(v *Value, skipCallers int) *Value {
	if v == nil || v.trace.Full() {
		return v
	}
	v.trace.Add(getFrame(skipCallers + 1))
	return v
}

// Try reports whether v holds an error. When it does, the caller's call
// site is recorded first, so the caller only has to leave:
//
//	if errno.Try(err) {
//	    goto errorOut
//	}
//
// Jumping to different labels builds staged cleanups, each label
// releasing one resource before falling through to the next.
//
//go:noinline
func Try(v *Value) bool {
	if v == nil {
		return false
	}
	if !v.trace.Full() {
		v.trace.Add(getFrame(1))
	}
	return true
}

// TryCatch is Try with the failure handling supplied by the caller:
// when v holds an error the caller's call site is recorded and catch
// runs with v before TryCatch returns true.
//
//go:noinline
func TryCatch(v *Value, catch func(*Value)) bool {
	if v == nil {
		return false
	}
	if !v.trace.Full() {
		v.trace.Add(getFrame(1))
	}
	if catch != nil {
		catch(v)
	}
	return true
}

// Return records the caller's call site on v and yields ret, for
// functions reporting failure through a sentinel return value while
// the error travels in v:
//
//	return errno.Return(-1, err)
//
//go:noinline
func Return[T any](ret T, v *Value) T {
	if v != nil && !v.trace.Full() {
		v.trace.Add(getFrame(1))
	}
	return ret
}
