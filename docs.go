// Package errno provides an errno-like error mechanism for low-level
// code: a status code that additionally carries an optional message and
// a backtrace assembled by hand, without allocating and without
// locking.
//
// # Error values
//
// An error is an errno.Value: a fixed-size record holding a Code, an
// optional message and up to MaxFrames call sites. Values are always
// built in place, into storage the caller owns, and the *Value handle is
// what travels up the call chain. A nil handle means success:
//
//	func parse(dst *errno.Value, s string) (int, *errno.Value) {
//	    if s == "" {
//	        return 0, errno.NewString(dst, errno.EINVAL, "empty input")
//	    }
//	    ...
//	}
//
// There are three kinds of errors, from the cheapest to the richest:
//
//   - NewInt / MakeInt: a code and nothing else;
//   - NewString / MakeString: a code and a reference to a message the
//     caller keeps alive, typically a string literal;
//   - NewFormatted / MakeFormatted: a code and a message formatted into
//     the Value's own inline buffer of MaxMessage bytes.
//
// The New constructors record the call site of their caller; the Make
// constructors take it as a Frame.
//
// # Backtraces
//
// Backtraces are not captured by walking the stack. Each function that
// sees an error come back records its own call site before passing the
// error on, so a backtrace holds exactly the functions the error went
// through, origin first:
//
//	func load(dst *errno.Value) *errno.Value {
//	    if _, err := parse(dst, ""); errno.Try(err) {
//	        return err
//	    }
//	    return nil
//	}
//
// Try, TryCatch, Wrap and Return all append one frame. A full backtrace
// saturates: the frames nearest to the origin are kept and later frames
// are dropped without a trace.
//
// # Dumps
//
// Value.Dump renders an error into a caller supplied buffer without
// allocating, and fails with ErrNoBuffer rather than overflow it:
//
//	====== ERROR DUMP ======
//	Error code: 22
//	Error desc: invalid argument
//	------------------------
//	 Error msg: empty input
//	------------------------
//	 Backtrace:
//	   [00] parse.go:parse:12
//	   [01] load.go:load:20
//
// The format is stable and ParseDump reads it back. A Value also formats
// itself with "%+v", encodes as JSON, and logs through zerolog or
// log/slog as structured fields.
//
// # Configuration
//
// Capacities are compile-time constants with two presets: the default
// build holds MaxFrames = 16 frames and a MaxMessage = 255 byte message
// buffer, and building with the errno_optimize tag removes the inline
// message buffer and the formatted constructors and keeps a single
// frame per error. Other sizes are not selectable at build time. A
// shallower backtrace is set per error at run time with Value.Limit:
//
//	errno.NewInt(&dst, errno.EIO).Limit(3)
//
// The
// goroutine-local convenience layer lives in the localerr package;
// building with the errno_noslot tag makes importing it a compile
// error.
package errno

import "github.com/secureworks/errno/internal/constraints"

var _ = constraints.Go121
