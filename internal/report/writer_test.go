package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sysreport/iostat/internal/hostinfo"
	"github.com/sysreport/iostat/internal/metrics"
)

func TestWriterBasicLayout(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, false, false)

	w.DeviceSection([]string{"sda"}, map[string]metrics.DeviceRates{
		"sda": {TPS: 15.0, ReadPerSec: 512.0, WrittenPerSec: 128.5},
	})

	out := buf.String()
	if !strings.Contains(out, "Device:") {
		t.Error("missing section title")
	}
	for _, col := range []string{"tps", "kB_read/s", "kB_wrtn/s"} {
		if !strings.Contains(out, col) {
			t.Errorf("missing column header %q in %q", col, out)
		}
	}
	if !strings.Contains(out, "sda") || !strings.Contains(out, "512.00") || !strings.Contains(out, "128.50") {
		t.Errorf("missing device row values in %q", out)
	}
}

func TestWriterExtendedLayout(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true, false)

	w.DeviceSection([]string{"nvme0n1"}, map[string]metrics.DeviceRates{
		"nvme0n1": {ReadsPerSec: 5, WritesPerSec: 3, UtilPercent: 42.5},
	})

	out := buf.String()
	for _, col := range []string{"r/s", "w/s", "rkB/s", "wkB/s", "rrqm/s", "wrqm/s", "await", "svctm", "%util"} {
		if !strings.Contains(out, col) {
			t.Errorf("missing column header %q in %q", col, out)
		}
	}
	if !strings.Contains(out, "42.50") {
		t.Errorf("missing utilization value in %q", out)
	}
}

func TestWriterMegabyteHeaders(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf, false, true).DeviceSection(nil, nil)
	if !strings.Contains(buf.String(), "MB_read/s") {
		t.Errorf("basic header = %q, want MB unit", buf.String())
	}

	buf.Reset()
	NewWriter(&buf, true, true).DeviceSection(nil, nil)
	if !strings.Contains(buf.String(), "rMB/s") {
		t.Errorf("extended header = %q, want MB unit", buf.String())
	}
}

func TestWriterCPUSection(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, false, false)

	w.CPUSection(metrics.CPUUtilization{User: 28.57, System: 20.0, IOWait: 2.86, Idle: 57.14})

	out := buf.String()
	if !strings.Contains(out, "avg-cpu:") {
		t.Error("missing avg-cpu title")
	}
	for _, col := range []string{"%user", "%sys", "%iowait", "%steal", "%idle", "%irq"} {
		if !strings.Contains(out, col) {
			t.Errorf("missing column header %q in %q", col, out)
		}
	}
	if !strings.Contains(out, "28.57") || !strings.Contains(out, "57.14") {
		t.Errorf("missing percentage values in %q", out)
	}
}

func TestWriterBanner(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, false, false)

	info := hostinfo.Info{Kernel: "Linux", Release: "6.1.0", Hostname: "box", Arch: "x86_64", CPUCount: 8}
	w.Banner(info, time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))

	want := "Linux 6.1.0 (box) \t08/29/2026 \t_x86_64_\t(8 CPU)\n\n"
	if buf.String() != want {
		t.Errorf("banner = %q, want %q", buf.String(), want)
	}
}
