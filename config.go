//go:build !errno_optimize

package errno

const (
	// MaxMessage is the capacity in bytes of the inline buffer that
	// holds a formatted message. Longer messages are truncated.
	MaxMessage = 255

	// MaxFrames is the backtrace capacity of every Value.
	MaxFrames = 16

	// Optimized reports whether the size-optimized configuration, set
	// with the errno_optimize build tag, is in effect.
	Optimized = false
)
