package stats

import (
	"reflect"
	"testing"
)

func TestDiskCountersDelta(t *testing.T) {
	prev := DiskCounters{
		ReadsCompleted:  100,
		SectorsRead:     2000,
		ReadTimeMs:      50,
		WritesCompleted: 30,
		SectorsWritten:  600,
		IOTimeMs:        400,
	}
	cur := DiskCounters{
		ReadsCompleted:  110,
		SectorsRead:     4048,
		ReadTimeMs:      75,
		WritesCompleted: 35,
		SectorsWritten:  900,
		IOTimeMs:        500,
	}

	d := cur.Delta(prev)
	if d.ReadsCompleted != 10 || d.SectorsRead != 2048 || d.ReadTimeMs != 25 {
		t.Errorf("read deltas = %d/%d/%d, want 10/2048/25",
			d.ReadsCompleted, d.SectorsRead, d.ReadTimeMs)
	}
	if d.WritesCompleted != 5 || d.SectorsWritten != 300 {
		t.Errorf("write deltas = %d/%d, want 5/300", d.WritesCompleted, d.SectorsWritten)
	}
	if d.IOTimeMs != 100 {
		t.Errorf("IOTimeMs delta = %d, want 100", d.IOTimeMs)
	}
}

func TestDiskCountersDeltaGaugePassThrough(t *testing.T) {
	// IOInProgress is a gauge: the delta must carry the current value
	// verbatim no matter what the previous sample held.
	tests := []struct {
		prev, cur uint64
	}{
		{0, 5},
		{5, 0},
		{100, 3},
		{3, 3},
	}
	for _, tt := range tests {
		d := DiskCounters{IOInProgress: tt.cur}.Delta(DiskCounters{IOInProgress: tt.prev})
		if d.IOInProgress != tt.cur {
			t.Errorf("gauge delta with prev=%d cur=%d = %d, want %d",
				tt.prev, tt.cur, d.IOInProgress, tt.cur)
		}
	}
}

func TestDiskCountersDeltaSaturates(t *testing.T) {
	prev := DiskCounters{ReadsCompleted: 500, WritesCompleted: 200}
	cur := DiskCounters{ReadsCompleted: 10, WritesCompleted: 250}

	d := cur.Delta(prev)
	if d.ReadsCompleted != 0 {
		t.Errorf("ReadsCompleted delta = %d, want 0 after reset", d.ReadsCompleted)
	}
	if d.WritesCompleted != 50 {
		t.Errorf("WritesCompleted delta = %d, want 50", d.WritesCompleted)
	}
}

func TestDeviceMapDeltaPairsByName(t *testing.T) {
	prev := DeviceMap{
		"sda": {ReadsCompleted: 10},
		"sdb": {ReadsCompleted: 20},
	}
	cur := DeviceMap{
		"sda":     {ReadsCompleted: 15},
		"nvme0n1": {ReadsCompleted: 99}, // just appeared, no previous sample
	}

	d := cur.Delta(prev)
	if len(d) != 1 {
		t.Fatalf("Delta() has %d devices, want 1", len(d))
	}
	got, ok := d["sda"]
	if !ok {
		t.Fatal("Delta() missing sda")
	}
	if got.ReadsCompleted != 5 {
		t.Errorf("sda ReadsCompleted delta = %d, want 5", got.ReadsCompleted)
	}
	if _, ok := d["nvme0n1"]; ok {
		t.Error("unpaired device nvme0n1 must be excluded from the delta")
	}
	if _, ok := d["sdb"]; ok {
		t.Error("vanished device sdb must be excluded from the delta")
	}
}

func TestDeviceMapNamesSorted(t *testing.T) {
	m := DeviceMap{"sdb": {}, "nvme0n1": {}, "sda": {}}
	want := []string{"nvme0n1", "sda", "sdb"}
	if got := m.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
