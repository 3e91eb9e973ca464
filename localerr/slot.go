package localerr

import "github.com/secureworks/errno"

// Slot holds one goroutine's error: the storage for an errno.Value and
// the handle to the current error, nil when there is none. The zero
// Slot is empty and ready to use. A Slot must not be used by more than
// one goroutine at a time.
type Slot struct {
	value   errno.Value
	current *errno.Value
}

// NewInt builds a KindInt error in the slot at the caller's call site,
// makes it current and returns it.
//
//go:noinline
func (s *Slot) NewInt(code errno.Code) *errno.Value {
	s.current = errno.MakeInt(&s.value, code, errno.CallerAt(1))
	return s.current
}

// NewString builds a KindString error in the slot at the caller's call
// site, makes it current and returns it.
//
//go:noinline
func (s *Slot) NewString(code errno.Code, msg string) *errno.Value {
	s.current = errno.MakeString(&s.value, code, errno.CallerAt(1), msg)
	return s.current
}

// Wrap records the caller's call site on the current error, if any, and
// returns it.
//
//go:noinline
func (s *Slot) Wrap() *errno.Value {
	return errno.WrapAt(s.current, 1)
}

// Current returns the current error, nil when there is none.
func (s *Slot) Current() *errno.Value { return s.current }

// Err returns the current error as an error interface, nil when there
// is none.
func (s *Slot) Err() error { return errno.AsError(s.current) }

// Clear forgets the current error. The storage is reused by the next
// constructor.
func (s *Slot) Clear() { s.current = nil }

// Dump renders the current error into buf, see errno.Value.Dump. It
// writes nothing when there is no current error.
func (s *Slot) Dump(buf []byte) (int, error) {
	if s.current == nil {
		return 0, nil
	}
	return s.current.Dump(buf)
}

// Return records the caller's call site on the current error of s and
// yields ret:
//
//	return localerr.Return(slot, -1)
//
//go:noinline
func Return[T any](s *Slot, ret T) T {
	errno.WrapAt(s.current, 1)
	return ret
}
