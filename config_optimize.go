//go:build errno_optimize

package errno

// The size-optimized configuration drops the inline message buffer and
// keeps only the origin frame. Formatted constructors are not compiled.
const (
	MaxMessage = 0
	MaxFrames  = 1
	Optimized  = true
)
