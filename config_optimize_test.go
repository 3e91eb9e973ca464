//go:build errno_optimize

package errno_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/secureworks/errno"
)

func TestOptimized_Config(t *testing.T) {
	assert.True(t, errno.Optimized)
	assert.Equal(t, 0, errno.MaxMessage)
	assert.Equal(t, 1, errno.MaxFrames)
}

func TestOptimized_OriginOnly(t *testing.T) {
	var dst errno.Value
	v := errno.MakeInt(&dst, errno.EINVAL, siteBar)

	assert.True(t, errno.Try(v))
	assert.Same(t, v, errno.Wrap(v))
	assert.Equal(t, -1, errno.Return(-1, v))
	assert.Equal(t, []errno.Frame{siteBar}, v.Frames())

	assert.Equal(t, ""+
		"====== ERROR DUMP ======\n"+
		"Error code: 22\n"+
		"Error desc: "+errno.EINVAL.Description()+"\n"+
		"------------------------\n"+
		" Backtrace:\n"+
		"   [00] a.c:bar:10\n",
		string(v.AppendDump(nil)))
}
