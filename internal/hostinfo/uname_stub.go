//go:build !linux

package hostinfo

import "runtime"

// unameInfo falls back to build-time identification on platforms without
// a procfs to sample anyway.
func unameInfo() (Info, error) {
	return Info{
		Kernel: runtime.GOOS,
		Arch:   runtime.GOARCH,
	}, nil
}
