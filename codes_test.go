package errno_test

import (
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/secureworks/errno"
)

func TestCode_Description(t *testing.T) {
	assert.Equal(t, "success", errno.OK.Description())
	assert.Equal(t, syscall.EINVAL.Error(), errno.EINVAL.Description())
	assert.Equal(t, errno.EINVAL.Description(), errno.EINVAL.Error())
}

func TestCode_Name(t *testing.T) {
	assert.Equal(t, "OK", errno.OK.Name())
	assert.Equal(t, "EINVAL", errno.EINVAL.Name())
	assert.Equal(t, "ENOENT", errno.ENOENT.String())
	assert.Equal(t, "E65000", errno.Code(65000).Name())
}

func TestParseCode(t *testing.T) {
	cases := []struct {
		in   string
		want errno.Code
		ok   bool
	}{
		{in: "22", want: 22, ok: true},
		{in: "0", want: errno.OK, ok: true},
		{in: "OK", want: errno.OK, ok: true},
		{in: "EINVAL", want: errno.EINVAL, ok: true},
		{in: "ENOBUFS", want: errno.ENOBUFS, ok: true},
		{in: "ENOPE"},
		{in: "70000"},
		{in: "E999", want: 999, ok: true},
		{in: "E"},
		{in: "E0"},
		{in: "E-1"},
		{in: ""},
	}
	for _, tt := range cases {
		got, ok := errno.ParseCode(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseCode_Name(t *testing.T) {
	for _, c := range []errno.Code{errno.OK, errno.EINVAL, errno.ENOBUFS, 999, 65000} {
		got, ok := errno.ParseCode(c.Name())
		assert.True(t, ok, c.Name())
		assert.Equal(t, c, got, c.Name())
	}
}

func TestCode_Sentinel(t *testing.T) {
	var err error = errno.ENOBUFS
	assert.True(t, errors.Is(err, errno.ErrNoBuffer))
	assert.False(t, errors.Is(err, errno.EINVAL))
}
