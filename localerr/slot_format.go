//go:build !errno_optimize

package localerr

import "github.com/secureworks/errno"

// NewFormatted builds a KindFormatted error in the slot at the caller's
// call site, makes it current and returns it.
//
//go:noinline
func (s *Slot) NewFormatted(code errno.Code, format string, args ...interface{}) *errno.Value {
	s.current = errno.MakeFormatted(&s.value, code, errno.CallerAt(1), format, args...)
	return s.current
}
