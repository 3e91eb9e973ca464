//go:build !errno_noslot

package constraints

// SlotLayer is only available when the errno_noslot build tag is unset.
// Building the localerr package with the tag set fails on this symbol.
const SlotLayer = uint8(0)
