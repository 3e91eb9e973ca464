package localerr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secureworks/errno"
	"github.com/secureworks/errno/internal/testutils"
	"github.com/secureworks/errno/localerr"
)

//go:noinline
func failInt(s *localerr.Slot) *errno.Value {
	return s.NewInt(errno.EIO)
}

func openConfig(s *localerr.Slot) int {
	if failInt(s) != nil {
		return localerr.Return(s, -1)
	}
	return 3
}

func TestSlot_Zero(t *testing.T) {
	var s localerr.Slot

	assert.Nil(t, s.Current())
	assert.NoError(t, s.Err())
	assert.Nil(t, s.Wrap())

	var buf [64]byte
	n, err := s.Dump(buf[:])
	assert.Zero(t, n)
	assert.NoError(t, err)
}

func TestSlot_NewInt(t *testing.T) {
	var s localerr.Slot

	v := s.NewInt(errno.EINVAL)
	require.NotNil(t, v)
	assert.Same(t, v, s.Current())
	assert.Equal(t, errno.KindInt, v.Kind())
	assert.Equal(t, "TestSlot_NewInt", v.Trace().At(0).Function)
	assert.Equal(t, "slot_test.go", v.Trace().At(0).File)

	err := s.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, errno.EINVAL)
}

func TestSlot_NewString(t *testing.T) {
	var s localerr.Slot

	v := s.NewString(errno.EPERM, "denied")
	assert.Equal(t, errno.KindString, v.Kind())
	assert.Equal(t, "denied", v.Message())
	assert.Equal(t, "denied", s.Err().Error())
}

func TestSlot_Reuse(t *testing.T) {
	var s localerr.Slot

	first := s.NewInt(errno.EIO)
	second := s.NewString(errno.EBUSY, "busy")

	assert.Same(t, first, second)
	assert.Equal(t, errno.EBUSY, s.Current().Code())
	assert.Equal(t, 1, s.Current().Trace().Len())
}

func TestSlot_Wrap(t *testing.T) {
	if errno.MaxFrames < 2 {
		t.Skip("needs a trace of at least two frames")
	}
	var s localerr.Slot

	failInt(&s)
	v := s.Wrap()

	require.Same(t, s.Current(), v)
	require.Equal(t, 2, v.Trace().Len())
	assert.Equal(t, "failInt", v.Trace().At(0).Function)
	assert.Equal(t, "TestSlot_Wrap", v.Trace().At(1).Function)
}

func TestSlot_Return(t *testing.T) {
	if errno.MaxFrames < 2 {
		t.Skip("needs a trace of at least two frames")
	}
	var s localerr.Slot

	assert.Equal(t, -1, openConfig(&s))
	frames := s.Current().Frames()
	require.Len(t, frames, 2)
	assert.Equal(t, "failInt", frames[0].Function)
	assert.Equal(t, "openConfig", frames[1].Function)
}

func TestSlot_Clear(t *testing.T) {
	var s localerr.Slot

	s.NewInt(errno.EIO)
	s.Clear()

	assert.Nil(t, s.Current())
	assert.NoError(t, s.Err())
	assert.Nil(t, s.Wrap())
	assert.Equal(t, 0, localerr.Return(&s, 0))
}

func TestSlot_Dump(t *testing.T) {
	var s localerr.Slot
	v := s.NewString(errno.EINVAL, "bad flag")

	var buf [512]byte
	n, err := s.Dump(buf[:])
	require.NoError(t, err)
	assert.Equal(t, string(v.AppendDump(nil)), string(buf[:n]))

	n, err = s.Dump(buf[:8])
	assert.Equal(t, 8, n)
	assert.ErrorIs(t, err, errno.ErrNoBuffer)
}

func TestSlot_NoAllocs(t *testing.T) {
	var s localerr.Slot

	testutils.AssertNoAllocs(t, func() {
		failInt(&s)
		s.Wrap()
		_ = localerr.Return(&s, -1)
		s.Clear()
	})
}
