package errno

// These are re-exported from the standard library so that callers
// matching codes do not need to import "errors" as well:
//
//	if errno.Is(err, errno.EINVAL) { ... }

import stderrors "errors"

// Is reports whether any error in err's chain matches target.
//
// A *Value matches a Code, a syscall.Errno, or another *Value with the
// same status code.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target, and if so, sets
// target to that error value and returns true. Otherwise, it returns false.
//
// As panics if target is not a non-nil pointer to either a type that implements
// error, or to any interface type.
func As(err error, target interface{}) bool { return stderrors.As(err, target) }
