//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package errno

import "syscall"

// Common codes. Platforms without an errno table use the Linux values.
const (
	EPERM     Code = 1
	ENOENT    Code = 2
	EINTR     Code = 4
	EIO       Code = 5
	EBADF     Code = 9
	EAGAIN    Code = 11
	ENOMEM    Code = 12
	EACCES    Code = 13
	EFAULT    Code = 14
	EBUSY     Code = 16
	EEXIST    Code = 17
	ENOTDIR   Code = 20
	EISDIR    Code = 21
	EINVAL    Code = 22
	ENOSPC    Code = 28
	ERANGE    Code = 34
	ENOSYS    Code = 38
	ENOBUFS   Code = 105
	ENOTSUP   Code = 95
	ETIMEDOUT Code = 110
	ECANCELED Code = 125
)

var names = map[Code]string{
	EPERM: "EPERM", ENOENT: "ENOENT", EINTR: "EINTR", EIO: "EIO",
	EBADF: "EBADF", EAGAIN: "EAGAIN", ENOMEM: "ENOMEM", EACCES: "EACCES",
	EFAULT: "EFAULT", EBUSY: "EBUSY", EEXIST: "EEXIST", ENOTDIR: "ENOTDIR",
	EISDIR: "EISDIR", EINVAL: "EINVAL", ENOSPC: "ENOSPC", ERANGE: "ERANGE",
	ENOSYS: "ENOSYS", ENOBUFS: "ENOBUFS", ENOTSUP: "ENOTSUP",
	ETIMEDOUT: "ETIMEDOUT", ECANCELED: "ECANCELED",
}

func describe(c Code) string { return syscall.Errno(c).Error() }

func name(c Code) string { return names[c] }
