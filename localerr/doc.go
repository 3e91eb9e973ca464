// Package localerr is the goroutine-local convenience layer of errno:
// an implicit error channel in the spirit of the C errno variable.
//
// Go has no goroutine-local storage, so the channel is an explicit
// Slot owned by one goroutine: one errno.Value and the handle to the
// current error. Slots are never shared, which is what makes them safe
// without locking. A Slot reaches the functions of a call chain through
// a context (NewContext, FromContext), and a Group gives each of its
// goroutines a Slot of its own.
//
// The package refuses to build with the errno_noslot tag, for programs
// that want every error stored explicitly.
package localerr

import "github.com/secureworks/errno/internal/constraints"

var _ = constraints.SlotLayer
