// Package metrics derives reportable rates and percentages from delta
// snapshots. All functions are pure: a delta plus an elapsed interval in,
// display values out.
package metrics

import "github.com/sysreport/iostat/internal/stats"

// SectorSize is the fixed kernel sector unit for the sector counters, in bytes.
const SectorSize = 512

// CPUUtilization holds the six CPU percentages of one report row.
type CPUUtilization struct {
	User   float64
	System float64
	IOWait float64
	Steal  float64
	Idle   float64
	IRQ    float64
}

// CPUPercentages converts a CPU counter delta into percentages of the
// delta total. When the total is zero (no ticks elapsed) all six outputs
// are zero rather than dividing by zero.
func CPUPercentages(delta stats.CPUCounters) CPUUtilization {
	total := float64(delta.Total())
	if total == 0 {
		return CPUUtilization{}
	}
	return CPUUtilization{
		User:   float64(delta.User+delta.Nice) / total * 100.0,
		System: float64(delta.System) / total * 100.0,
		IOWait: float64(delta.IOWait) / total * 100.0,
		Steal:  float64(delta.Steal) / total * 100.0,
		Idle:   float64(delta.Idle) / total * 100.0,
		IRQ:    float64(delta.IRQ+delta.SoftIRQ) / total * 100.0,
	}
}

// DeviceRates holds the derived per-device metrics of one report row.
// ReadPerSec/WrittenPerSec are in kB/s or MB/s depending on the unit
// divisor used to derive them.
type DeviceRates struct {
	ReadsPerSec   float64
	WritesPerSec  float64
	TPS           float64
	ReadPerSec    float64
	WrittenPerSec float64

	// Extended-mode metrics.
	ReadMergesPerSec  float64
	WriteMergesPerSec float64
	AwaitMs           float64
	ServiceTimeMs     float64
	UtilPercent       float64
}

// DeriveDeviceRates converts a per-device counter delta into rates over
// the elapsed interval. unitDivisor selects the throughput unit: 1 for
// kilobytes, 1024 for megabytes. A non-positive elapsed yields zero rates.
func DeriveDeviceRates(delta stats.DiskCounters, elapsedSec, unitDivisor float64) DeviceRates {
	if elapsedSec <= 0 {
		return DeviceRates{}
	}

	r := DeviceRates{
		ReadsPerSec:       float64(delta.ReadsCompleted) / elapsedSec,
		WritesPerSec:      float64(delta.WritesCompleted) / elapsedSec,
		ReadPerSec:        float64(delta.SectorsRead) * SectorSize / 1024.0 / elapsedSec / unitDivisor,
		WrittenPerSec:     float64(delta.SectorsWritten) * SectorSize / 1024.0 / elapsedSec / unitDivisor,
		ReadMergesPerSec:  float64(delta.ReadsMerged) / elapsedSec,
		WriteMergesPerSec: float64(delta.WritesMerged) / elapsedSec,
	}
	r.TPS = r.ReadsPerSec + r.WritesPerSec

	totalIOs := delta.ReadsCompleted + delta.WritesCompleted
	if totalIOs > 0 {
		r.AwaitMs = float64(delta.ReadTimeMs+delta.WriteTimeMs) / float64(totalIOs)
		r.ServiceTimeMs = float64(delta.IOTimeMs) / float64(totalIOs)
	}

	util := float64(delta.IOTimeMs) / (elapsedSec * 1000.0) * 100.0
	if util > 100.0 {
		util = 100.0
	}
	r.UtilPercent = util

	return r
}
