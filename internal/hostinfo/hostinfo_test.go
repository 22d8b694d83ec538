package hostinfo

import (
	"testing"
	"time"
)

func TestBanner(t *testing.T) {
	info := Info{
		Kernel:   "Linux",
		Release:  "6.1.0-18-amd64",
		Hostname: "build-04",
		Arch:     "x86_64",
		CPUCount: 16,
	}

	got := info.Banner(time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC))
	want := "Linux 6.1.0-18-amd64 (build-04) \t08/29/2026 \t_x86_64_\t(16 CPU)"
	if got != want {
		t.Errorf("Banner() = %q, want %q", got, want)
	}
}
