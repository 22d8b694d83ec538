// Package report renders derived metrics as aligned tabular reports and
// drives the sample/sleep/emit cycle.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/sysreport/iostat/internal/hostinfo"
	"github.com/sysreport/iostat/internal/metrics"
)

// Writer renders report sections as fixed-width columns on an io.Writer.
type Writer struct {
	out      io.Writer
	extended bool
	unit     string
}

// NewWriter creates a Writer. extended selects the extended device layout;
// megabytes switches the throughput column headers from kB to MB.
func NewWriter(out io.Writer, extended, megabytes bool) *Writer {
	unit := "kB"
	if megabytes {
		unit = "MB"
	}
	return &Writer{out: out, extended: extended, unit: unit}
}

// Banner prints the one-time host identification line.
func (w *Writer) Banner(info hostinfo.Info, now time.Time) {
	fmt.Fprintf(w.out, "%s\n\n", info.Banner(now))
}

// CPUSection prints the avg-cpu block: title, column header, one value row.
func (w *Writer) CPUSection(u metrics.CPUUtilization) {
	fmt.Fprintln(w.out, "avg-cpu:")
	fmt.Fprintf(w.out, "%6s %6s %6s %6s %6s %6s\n",
		"%user", "%sys", "%iowait", "%steal", "%idle", "%irq")
	fmt.Fprintf(w.out, "%6.2f %6.2f %6.2f %6.2f %6.2f %6.2f\n",
		u.User, u.System, u.IOWait, u.Steal, u.Idle, u.IRQ)
	fmt.Fprintln(w.out)
}

// DeviceSection prints the device block in report order: title, column
// header, one row per device name.
func (w *Writer) DeviceSection(names []string, rates map[string]metrics.DeviceRates) {
	fmt.Fprintln(w.out, "Device:")
	if w.extended {
		fmt.Fprintf(w.out, "%-12s %8s %8s %10s %10s %8s %8s %7s %7s %6s\n",
			"Device", "r/s", "w/s", "r"+w.unit+"/s", "w"+w.unit+"/s",
			"rrqm/s", "wrqm/s", "await", "svctm", "%util")
	} else {
		fmt.Fprintf(w.out, "%-12s %8s %10s %10s\n",
			"Device", "tps", w.unit+"_read/s", w.unit+"_wrtn/s")
	}
	for _, name := range names {
		w.deviceRow(name, rates[name])
	}
	fmt.Fprintln(w.out)
}

func (w *Writer) deviceRow(name string, r metrics.DeviceRates) {
	if w.extended {
		fmt.Fprintf(w.out, "%-12s %8.2f %8.2f %10.2f %10.2f %8.2f %8.2f %7.2f %7.2f %6.2f\n",
			name, r.ReadsPerSec, r.WritesPerSec, r.ReadPerSec, r.WrittenPerSec,
			r.ReadMergesPerSec, r.WriteMergesPerSec, r.AwaitMs, r.ServiceTimeMs, r.UtilPercent)
	} else {
		fmt.Fprintf(w.out, "%-12s %8.2f %10.2f %10.2f\n",
			name, r.TPS, r.ReadPerSec, r.WrittenPerSec)
	}
}
