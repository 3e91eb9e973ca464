//go:build !errno_optimize

package errno_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secureworks/errno"
)

//go:noinline
func bar(dst *errno.Value) *errno.Value {
	return errno.NewString(dst, errno.EINVAL, "Something went wrong in bar")
}

//go:noinline
func foo(dst *errno.Value) *errno.Value {
	if err := bar(dst); errno.Try(err) {
		return err
	}
	return nil
}

//go:noinline
func count(dst *errno.Value) int {
	return errno.Return(-1, bar(dst))
}

//go:noinline
func acquire(dst *errno.Value, name string, fail bool) *errno.Value {
	if fail {
		return errno.NewString(dst, errno.EBUSY, name)
	}
	return nil
}

// openBoth acquires a then b; failing on b releases a first.
//
//go:noinline
func openBoth(dst *errno.Value, failAt int, released *[]string) (err *errno.Value) {
	if err = acquire(dst, "a", failAt == 1); errno.Try(err) {
		goto out
	}
	if err = acquire(dst, "b", failAt == 2); errno.Try(err) {
		goto releaseA
	}
	return nil

releaseA:
	*released = append(*released, "a")
out:
	return err
}

func functions(v *errno.Value) []string {
	var names []string
	for _, f := range v.Frames() {
		names = append(names, f.Function)
	}
	return names
}

func TestTry(t *testing.T) {
	var dst errno.Value
	v := foo(&dst)

	require.NotNil(t, v)
	assert.Equal(t, []string{"bar", "foo"}, functions(v))
	assert.Equal(t, "propagate_test.go", v.Frames()[1].File)
	assert.Greater(t, v.Frames()[1].Line, v.Frames()[0].Line)
}

func TestTry_Nil(t *testing.T) {
	assert.False(t, errno.Try(nil))
}

func TestTry_StagedCleanup(t *testing.T) {
	cases := []struct {
		failAt   int
		released []string
		frames   []string
	}{
		{failAt: 0},
		{failAt: 1, frames: []string{"acquire", "openBoth"}},
		{failAt: 2, released: []string{"a"}, frames: []string{"acquire", "openBoth"}},
	}
	for _, tt := range cases {
		var dst errno.Value
		var released []string

		err := openBoth(&dst, tt.failAt, &released)

		assert.Equal(t, tt.released, released, "failAt=%d", tt.failAt)
		if tt.frames == nil {
			assert.Nil(t, err, "failAt=%d", tt.failAt)
			continue
		}
		require.NotNil(t, err, "failAt=%d", tt.failAt)
		assert.Equal(t, tt.frames, functions(err), "failAt=%d", tt.failAt)
	}
}

func TestTryCatch(t *testing.T) {
	var dst errno.Value
	var caught *errno.Value

	ok := errno.TryCatch(bar(&dst), func(v *errno.Value) { caught = v })

	assert.True(t, ok)
	require.Same(t, &dst, caught)
	assert.Equal(t, []string{"bar", "TestTryCatch"}, functions(caught))

	caught = nil
	assert.False(t, errno.TryCatch(nil, func(v *errno.Value) { caught = v }))
	assert.Nil(t, caught)
}

func TestReturn(t *testing.T) {
	var dst errno.Value

	assert.Equal(t, -1, count(&dst))
	assert.Equal(t, []string{"bar", "count"}, functions(&dst))

	assert.Equal(t, "ok", errno.Return("ok", nil))
}

func TestWrap(t *testing.T) {
	var dst errno.Value
	v := errno.MakeInt(&dst, errno.EIO, siteBar)

	got, want := errno.Wrap(v), errno.Caller()

	require.Same(t, v, got)
	assert.Equal(t, []errno.Frame{siteBar, want}, v.Frames())
	assert.Nil(t, errno.Wrap(nil))
}

//go:noinline
func wrapHelper(v *errno.Value) {
	errno.WrapAt(v, 1)
}

func TestWrapAt(t *testing.T) {
	var dst errno.Value
	v := errno.MakeInt(&dst, errno.EIO, siteBar)

	wrapHelper(v)

	assert.Equal(t, []string{"bar", "TestWrapAt"}, functions(v))
	assert.Nil(t, errno.WrapAt(nil, 0))
}

func TestWrap_LimitedDepth(t *testing.T) {
	var dst errno.Value
	v := errno.MakeInt(&dst, errno.EINVAL, siteBar).Limit(3)

	var wrapped []errno.Frame
	for i := 0; i < 5; i++ {
		errno.Wrap(v)
		here := errno.Caller()
		if i < 2 {
			wrapped = append(wrapped, here)
		}
	}

	assert.Equal(t, 3, v.Trace().Len())
	assert.True(t, v.Trace().Full())
	require.Len(t, v.Frames(), 3)
	assert.Equal(t, siteBar, v.Frames()[0])
	for i, f := range wrapped {
		assert.Equal(t, f.Function, v.Frames()[i+1].Function)
		assert.Equal(t, f.Line-1, v.Frames()[i+1].Line)
	}
}

func TestAddFrame_Nil(t *testing.T) {
	assert.Nil(t, errno.AddFrame(nil, siteBar))
}
