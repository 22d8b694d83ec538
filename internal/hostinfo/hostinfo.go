// Package hostinfo gathers the one-time host identification printed as a
// banner line before the first report: kernel name and release, hostname,
// machine architecture, and logical CPU count.
package hostinfo

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
)

// Info identifies the host being sampled.
type Info struct {
	Kernel   string
	Release  string
	Hostname string
	Arch     string
	CPUCount int
}

// Collect gathers host identification. The uname fields come from the
// platform-specific implementation; the logical CPU count from gopsutil.
func Collect(ctx context.Context) (Info, error) {
	info, err := unameInfo()
	if err != nil {
		return Info{}, fmt.Errorf("reading uname: %w", err)
	}

	hostname, err := os.Hostname()
	if err != nil {
		return Info{}, fmt.Errorf("reading hostname: %w", err)
	}
	info.Hostname = hostname

	count, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return Info{}, fmt.Errorf("counting CPUs: %w", err)
	}
	info.CPUCount = count

	return info, nil
}

// Banner renders the Info as a single report banner line for the given day.
func (i Info) Banner(now time.Time) string {
	return fmt.Sprintf("%s %s (%s) \t%s \t_%s_\t(%d CPU)",
		i.Kernel, i.Release, i.Hostname, now.Format("01/02/2006"), i.Arch, i.CPUCount)
}
