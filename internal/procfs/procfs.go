// Package procfs implements the counter snapshot provider on top of the
// proc filesystem. It reads the aggregate CPU line of /proc/stat and the
// per-device lines of /proc/diskstats into typed counter snapshots.
package procfs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sysreport/iostat/internal/stats"
)

// DefaultRoot is the mount point of the proc filesystem.
const DefaultRoot = "/proc"

// Provider reads counter snapshots from the proc filesystem. The root
// is configurable so tests can point it at a fixture directory.
type Provider struct {
	root   string
	logger *zap.Logger
}

// New creates a Provider reading from /proc.
func New(logger *zap.Logger) *Provider {
	return NewWithRoot(DefaultRoot, logger)
}

// NewWithRoot creates a Provider reading from an alternate proc root.
func NewWithRoot(root string, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{root: root, logger: logger}
}

// CPUCounters reads the aggregate CPU time counters. An unreadable
// source file is an error; a missing aggregate line yields zero counters.
func (p *Provider) CPUCounters() (stats.CPUCounters, error) {
	path := filepath.Join(p.root, "stat")
	data, err := os.ReadFile(path)
	if err != nil {
		return stats.CPUCounters{}, fmt.Errorf("reading %s: %w", path, err)
	}
	c := parseCPUStat(string(data))
	p.logger.Debug("Read CPU counters", zap.Uint64("total_ticks", c.Total()))
	return c, nil
}

// DiskCounters reads the per-device I/O counters, filtered down to whole
// disks. An unreadable source file is an error.
func (p *Provider) DiskCounters() (stats.DeviceMap, error) {
	path := filepath.Join(p.root, "diskstats")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	m := parseDiskStats(string(data))
	p.logger.Debug("Read disk counters", zap.Int("devices", len(m)))
	return m, nil
}

// parseCPUStat extracts the aggregate "cpu " line. Missing trailing
// fields and unparsable numerics default to zero.
func parseCPUStat(content string) stats.CPUCounters {
	for _, line := range strings.Split(content, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] != "cpu" {
			continue
		}
		return stats.CPUCounters{
			User:    field(fields, 1),
			Nice:    field(fields, 2),
			System:  field(fields, 3),
			Idle:    field(fields, 4),
			IOWait:  field(fields, 5),
			IRQ:     field(fields, 6),
			SoftIRQ: field(fields, 7),
			Steal:   field(fields, 8),
		}
	}
	return stats.CPUCounters{}
}

// parseDiskStats extracts one DiskCounters entry per whole-disk line.
// Layout per line: major minor name then eleven counters. Short lines
// keep the fields they have; the rest default to zero.
func parseDiskStats(content string) stats.DeviceMap {
	m := make(stats.DeviceMap)
	for _, line := range strings.Split(content, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		name := fields[2]
		if stats.IsPartition(name) {
			continue
		}
		m[name] = stats.DiskCounters{
			ReadsCompleted:   field(fields, 3),
			ReadsMerged:      field(fields, 4),
			SectorsRead:      field(fields, 5),
			ReadTimeMs:       field(fields, 6),
			WritesCompleted:  field(fields, 7),
			WritesMerged:     field(fields, 8),
			SectorsWritten:   field(fields, 9),
			WriteTimeMs:      field(fields, 10),
			IOInProgress:     field(fields, 11),
			IOTimeMs:         field(fields, 12),
			WeightedIOTimeMs: field(fields, 13),
		}
	}
	return m
}

// field returns fields[i] parsed as an unsigned counter, or zero when
// the field is absent or malformed.
func field(fields []string, i int) uint64 {
	if i >= len(fields) {
		return 0
	}
	v, err := strconv.ParseUint(fields[i], 10, 64)
	if err != nil {
		return 0
	}
	return v
}
