package errno_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/secureworks/errno"
)

// Callers to build up a call stack in tests.

type CallerStruct struct{}

func (c *CallerStruct) PtrFrameCaller(skip int) errno.Frame {
	return FrameCallerAt(skip)
}

func (c CallerStruct) FrameCaller() errno.Frame {
	return errno.Caller()
}

func FrameCallerAt(skip int) errno.Frame {
	return errno.CallerAt(skip)
}

func TestCaller(t *testing.T) {
	f := errno.Caller()
	assert.Equal(t, "TestCaller", f.Function)
	assert.Equal(t, "callers_test.go", f.File)
	assert.NotZero(t, f.Line)
}

func TestCaller_Methods(t *testing.T) {
	c := new(CallerStruct)

	assert.Equal(t, "CallerStruct.FrameCaller", c.FrameCaller().Function)
	assert.Equal(t, "FrameCallerAt", c.PtrFrameCaller(0).Function)
	assert.Equal(t, "(*CallerStruct).PtrFrameCaller", c.PtrFrameCaller(1).Function)
	assert.Equal(t, "TestCaller_Methods", c.PtrFrameCaller(2).Function)
}

func TestCaller_Closure(t *testing.T) {
	f := func() errno.Frame { return errno.Caller() }()
	assert.Equal(t, "TestCaller_Closure.func1", f.Function)
}
