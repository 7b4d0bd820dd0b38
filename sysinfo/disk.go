package sysinfo

import "syscall"

// diskUsePercent measures used space on the volume at path as a
// percentage, rounded to 2 decimal places. Any failure (permission,
// unsupported platform, I/O error) yields DiskUnavailable; this path
// must never take down the whole snapshot.
func diskUsePercent(path string) float64 {
	var fs syscall.Statfs_t
	if err := syscall.Statfs(path, &fs); err != nil {
		return DiskUnavailable
	}

	total := fs.Blocks * uint64(fs.Bsize)
	if total == 0 {
		return DiskUnavailable
	}

	// Bavail counts blocks available to unprivileged users, matching
	// what df reports as usable space.
	used := total - fs.Bavail*uint64(fs.Bsize)
	return Round2(float64(used) / float64(total) * 100)
}
