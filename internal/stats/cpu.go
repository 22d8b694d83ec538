// Package stats defines the counter snapshot model: cumulative CPU
// time-accounting counters, per-device block I/O counters, and the delta
// arithmetic between consecutive snapshots.
package stats

// CPUCounters holds the aggregate CPU time counters from the kernel,
// in ticks accumulated since boot. All fields are cumulative.
type CPUCounters struct {
	User    uint64
	Nice    uint64
	System  uint64
	Idle    uint64
	IOWait  uint64
	IRQ     uint64
	SoftIRQ uint64
	Steal   uint64
}

// Total returns the sum of all eight counters. It is used only as a
// divisor when computing percentages.
func (c CPUCounters) Total() uint64 {
	return c.User + c.Nice + c.System + c.Idle + c.IOWait + c.IRQ + c.SoftIRQ + c.Steal
}

// Delta returns the per-field difference between c and a previous sample.
// Subtraction saturates at zero, so a counter reset (e.g. reboot) yields
// a zero delta for that field instead of wraparound garbage.
func (c CPUCounters) Delta(prev CPUCounters) CPUCounters {
	return CPUCounters{
		User:    saturatingSub(c.User, prev.User),
		Nice:    saturatingSub(c.Nice, prev.Nice),
		System:  saturatingSub(c.System, prev.System),
		Idle:    saturatingSub(c.Idle, prev.Idle),
		IOWait:  saturatingSub(c.IOWait, prev.IOWait),
		IRQ:     saturatingSub(c.IRQ, prev.IRQ),
		SoftIRQ: saturatingSub(c.SoftIRQ, prev.SoftIRQ),
		Steal:   saturatingSub(c.Steal, prev.Steal),
	}
}

func saturatingSub(cur, prev uint64) uint64 {
	if cur < prev {
		return 0
	}
	return cur - prev
}
