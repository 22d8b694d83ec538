package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/sysreport/iostat/internal/config"
	"github.com/sysreport/iostat/internal/hostinfo"
	"github.com/sysreport/iostat/internal/metrics"
	"github.com/sysreport/iostat/internal/stats"
)

// SnapshotProvider supplies point-in-time counter snapshots. Any failure
// is treated as fatal by the cycle: the backing sources are kernel
// interfaces that are expected to be always present, and masking a read
// failure would corrupt the delta math.
type SnapshotProvider interface {
	CPUCounters() (stats.CPUCounters, error)
	DiskCounters() (stats.DeviceMap, error)
}

// Runner drives the report cycle: snapshot, sleep, snapshot, delta,
// derive, emit. It owns the previous snapshot pair and replaces it each
// iteration; no snapshot survives beyond one iteration lag.
type Runner struct {
	provider SnapshotProvider
	cfg      *config.Config
	writer   *Writer
	logger   *zap.Logger

	// sleep is replaceable so tests can run the cycle without waiting.
	sleep func(time.Duration)
}

// NewRunner creates a Runner emitting reports to out.
func NewRunner(provider SnapshotProvider, cfg *config.Config, out io.Writer, logger *zap.Logger) *Runner {
	return &Runner{
		provider: provider,
		cfg:      cfg,
		writer:   NewWriter(out, cfg.Report.Extended, cfg.Report.Megabytes),
		logger:   logger,
		sleep:    time.Sleep,
	}
}

// PrintBanner prints the one-time host identification line ahead of the
// first report.
func (r *Runner) PrintBanner(info hostinfo.Info) {
	r.writer.Banner(info, time.Now())
}

// Run executes the report cycle until the configured count is exhausted.
// A count of zero runs until the context is cancelled. Cancellation is
// only consulted between iterations, never mid-sleep. Any snapshot
// failure aborts the run immediately.
func (r *Runner) Run(ctx context.Context) error {
	interval := r.cfg.Report.Interval.Duration
	remaining := r.cfg.Report.Count
	unbounded := remaining == 0

	r.logger.Info("Starting report cycle",
		zap.Duration("interval", interval),
		zap.Uint("count", remaining))

	prevCPU, prevDisk, err := r.snapshot()
	if err != nil {
		return err
	}

	if !r.cfg.Report.OmitFirst {
		// The first report is the snapshot deltaed against an all-zero
		// baseline, which for cumulative and gauge fields alike is the
		// snapshot itself. Elapsed is fixed at 1.0 so the since-boot
		// counters display as plain values.
		r.emit(prevCPU, prevDisk, 1.0)
		if !unbounded {
			remaining--
			if remaining == 0 {
				return nil
			}
		}
	}

	elapsed := interval.Seconds()
	for {
		r.sleep(interval)
		if ctx.Err() != nil {
			r.logger.Info("Report cycle cancelled")
			return nil
		}

		curCPU, curDisk, err := r.snapshot()
		if err != nil {
			return err
		}

		r.emit(curCPU.Delta(prevCPU), curDisk.Delta(prevDisk), elapsed)

		prevCPU, prevDisk = curCPU, curDisk

		if !unbounded {
			remaining--
			if remaining == 0 {
				return nil
			}
		}
	}
}

// snapshot takes one CPU/disk counter pair.
func (r *Runner) snapshot() (stats.CPUCounters, stats.DeviceMap, error) {
	cpu, err := r.provider.CPUCounters()
	if err != nil {
		return stats.CPUCounters{}, nil, fmt.Errorf("taking CPU snapshot: %w", err)
	}
	disk, err := r.provider.DiskCounters()
	if err != nil {
		return stats.CPUCounters{}, nil, fmt.Errorf("taking disk snapshot: %w", err)
	}
	return cpu, disk, nil
}

// emit derives display metrics from one delta pair and prints the
// selected report sections.
func (r *Runner) emit(cpuDelta stats.CPUCounters, diskDelta stats.DeviceMap, elapsedSec float64) {
	if r.cfg.ShowCPU() {
		r.writer.CPUSection(metrics.CPUPercentages(cpuDelta))
	}

	if r.cfg.ShowDevice() {
		names := diskDelta.Names()
		rates := make(map[string]metrics.DeviceRates, len(names))
		for _, name := range names {
			rates[name] = metrics.DeriveDeviceRates(diskDelta[name], elapsedSec, r.cfg.UnitDivisor())
		}
		r.writer.DeviceSection(names, rates)
	}

	r.logger.Debug("Emitted report",
		zap.Float64("elapsed_sec", elapsedSec),
		zap.Int("devices", len(diskDelta)))
}
