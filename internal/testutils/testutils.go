// Package testutils holds assertions shared by the errno test suites.
package testutils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertLinesMatch breaks up a rendered dump into lines and matches each
// with the anchored regex at the same position. An empty pattern only
// matches an empty line.
func AssertLinesMatch(t testing.TB, got string, patterns ...string) {
	t.Helper()

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if !assert.Lenf(t, lines, len(patterns), "line count of:\n%s", got) {
		return
	}
	for i, p := range patterns {
		if p == "" {
			assert.Emptyf(t, lines[i], "line %d", i+1)
			continue
		}
		assert.Regexpf(t, "^(?:"+p+")$", lines[i], "line %d", i+1)
	}
}

// AssertNoAllocs fails the test when fn allocates on the heap.
func AssertNoAllocs(t testing.TB, fn func()) {
	t.Helper()

	if testing.CoverMode() != "" {
		t.Skip("coverage instrumentation allocates")
	}
	allocs := testing.AllocsPerRun(100, fn)
	require.Zerof(t, allocs, "%v allocations per run", allocs)
}
