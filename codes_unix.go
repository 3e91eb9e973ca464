//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package errno

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// Common codes. Values are the host platform's.
const (
	EPERM     = Code(unix.EPERM)
	ENOENT    = Code(unix.ENOENT)
	EINTR     = Code(unix.EINTR)
	EIO       = Code(unix.EIO)
	EBADF     = Code(unix.EBADF)
	EAGAIN    = Code(unix.EAGAIN)
	ENOMEM    = Code(unix.ENOMEM)
	EACCES    = Code(unix.EACCES)
	EFAULT    = Code(unix.EFAULT)
	EBUSY     = Code(unix.EBUSY)
	EEXIST    = Code(unix.EEXIST)
	ENOTDIR   = Code(unix.ENOTDIR)
	EISDIR    = Code(unix.EISDIR)
	EINVAL    = Code(unix.EINVAL)
	ENOSPC    = Code(unix.ENOSPC)
	ERANGE    = Code(unix.ERANGE)
	ENOSYS    = Code(unix.ENOSYS)
	ENOBUFS   = Code(unix.ENOBUFS)
	ENOTSUP   = Code(unix.ENOTSUP)
	ETIMEDOUT = Code(unix.ETIMEDOUT)
	ECANCELED = Code(unix.ECANCELED)
)

func describe(c Code) string { return syscall.Errno(c).Error() }

func name(c Code) string { return unix.ErrnoName(syscall.Errno(c)) }
