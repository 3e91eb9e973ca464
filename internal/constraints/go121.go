//go:build go1.21

package constraints

// Go121 is only available when compiled with Go v1.21 or more.
const Go121 = uint8(0)
