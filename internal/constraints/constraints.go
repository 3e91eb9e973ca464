// Package constraints should only be used as a blank reference. When
// referenced it will cause `go build` to fail with an obvious and clean
// message if the constraints defined in the package are not met:
//
//	var _ = constraints.Go121     // root package
//	var _ = constraints.SlotLayer // goroutine-local layer
package constraints
