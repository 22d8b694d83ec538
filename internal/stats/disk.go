package stats

import "sort"

// DiskCounters holds the per-device block I/O counters from the kernel.
// All fields are cumulative since boot except IOInProgress, which is an
// instantaneous gauge of operations outstanding at sampling time.
type DiskCounters struct {
	ReadsCompleted   uint64
	ReadsMerged      uint64
	SectorsRead      uint64
	ReadTimeMs       uint64
	WritesCompleted  uint64
	WritesMerged     uint64
	SectorsWritten   uint64
	WriteTimeMs      uint64
	IOInProgress     uint64 // gauge, not cumulative
	IOTimeMs         uint64
	WeightedIOTimeMs uint64
}

// Delta returns the difference between d and a previous sample of the
// same device. Cumulative fields use saturating subtraction; the
// IOInProgress gauge carries the current value verbatim, since
// subtracting a gauge across samples is meaningless.
func (d DiskCounters) Delta(prev DiskCounters) DiskCounters {
	return DiskCounters{
		ReadsCompleted:   saturatingSub(d.ReadsCompleted, prev.ReadsCompleted),
		ReadsMerged:      saturatingSub(d.ReadsMerged, prev.ReadsMerged),
		SectorsRead:      saturatingSub(d.SectorsRead, prev.SectorsRead),
		ReadTimeMs:       saturatingSub(d.ReadTimeMs, prev.ReadTimeMs),
		WritesCompleted:  saturatingSub(d.WritesCompleted, prev.WritesCompleted),
		WritesMerged:     saturatingSub(d.WritesMerged, prev.WritesMerged),
		SectorsWritten:   saturatingSub(d.SectorsWritten, prev.SectorsWritten),
		WriteTimeMs:      saturatingSub(d.WriteTimeMs, prev.WriteTimeMs),
		IOInProgress:     d.IOInProgress,
		IOTimeMs:         saturatingSub(d.IOTimeMs, prev.IOTimeMs),
		WeightedIOTimeMs: saturatingSub(d.WeightedIOTimeMs, prev.WeightedIOTimeMs),
	}
}

// DeviceMap maps a device name to its counters for one snapshot.
type DeviceMap map[string]DiskCounters

// Delta pairs devices by name and returns their per-device deltas.
// A device present in only one of the two snapshots is excluded from
// the result: it either just appeared or just vanished, and no
// meaningful delta exists for this interval.
func (m DeviceMap) Delta(prev DeviceMap) DeviceMap {
	out := make(DeviceMap, len(m))
	for name, cur := range m {
		p, ok := prev[name]
		if !ok {
			continue
		}
		out[name] = cur.Delta(p)
	}
	return out
}

// Names returns the device names in sorted order for stable report output.
func (m DeviceMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
