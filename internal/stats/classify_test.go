package stats

import "testing"

func TestIsPartition(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"sda", false},
		{"sda1", true},
		{"sdb", false},
		{"sdb12", true},
		{"sdab", false},
		{"sd", false},
		{"hda", false},
		{"hda2", true},
		{"vda", false},
		{"vdc3", true},
		{"nvme0n1", false},
		{"nvme0n1p1", true},
		{"nvme1n1p12", true},
		{"loop0", false},
		{"loop7", false},
		{"loop0p1", true},
		// Unknown naming families are always reported as whole disks.
		{"dm-0", false},
		{"md0", false},
		{"sr0", false},
		{"mmcblk0", false},
		{"zram0", false},
	}

	for _, tt := range tests {
		if got := IsPartition(tt.name); got != tt.want {
			t.Errorf("IsPartition(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
