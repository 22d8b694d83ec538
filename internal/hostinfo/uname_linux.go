//go:build linux

package hostinfo

import "golang.org/x/sys/unix"

// unameInfo fills the kernel identification fields from uname(2).
func unameInfo() (Info, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return Info{}, err
	}
	return Info{
		Kernel:  charsToString(u.Sysname[:]),
		Release: charsToString(u.Release[:]),
		Arch:    charsToString(u.Machine[:]),
	}, nil
}

// charsToString converts a NUL-terminated utsname field to a Go string.
func charsToString(cs []byte) string {
	for i, c := range cs {
		if c == 0 {
			return string(cs[:i])
		}
	}
	return string(cs)
}
