package stats

import "strings"

// IsPartition reports whether a block device name refers to a partition
// rather than a whole disk. Whole disks are reported; their partitions
// are suppressed so throughput is not double-counted. A name matching
// none of the known naming families is treated as a whole disk, so
// unusual virtual or network block devices are never hidden.
func IsPartition(name string) bool {
	// NVMe namespaces end in a "p<digits>" suffix for partitions:
	// nvme0n1 is a disk, nvme0n1p1 a partition.
	if strings.Contains(name, "nvme") && strings.Contains(name, "p") {
		segs := strings.Split(name, "p")
		last := segs[len(segs)-1]
		if last != "" && allDigits(last) {
			return true
		}
	}

	// SCSI/SATA/IDE/virtio naming: sda1, hdb2, vdc3 are partitions of
	// sda, hdb, vdc.
	if strings.HasPrefix(name, "sd") || strings.HasPrefix(name, "hd") || strings.HasPrefix(name, "vd") {
		if len(name) > 3 && allDigits(name[3:]) {
			return true
		}
		return false
	}

	// Loop devices: loop0p1 is a partition of loop0. The separator must
	// come after the prefix, which itself ends in 'p'.
	if strings.HasPrefix(name, "loop") && strings.Contains(name[4:], "p") {
		return true
	}

	return false
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
