package sysinfo

import (
	"os"
	"strconv"
	"strings"
)

// loadAverages reads the 1- and 5-minute load averages from
// /proc/loadavg. Both values are zero when the file is missing or
// malformed (non-Linux hosts).
func loadAverages() (load1, load5 float64) {
	data, err := os.ReadFile("/proc/loadavg")
	if err != nil {
		return 0, 0
	}

	fields := strings.Fields(string(data))
	if len(fields) < 2 {
		return 0, 0
	}

	load1, _ = strconv.ParseFloat(fields[0], 64)
	load5, _ = strconv.ParseFloat(fields[1], 64)
	return load1, load5
}

// systemMemory reads total and available memory in bytes from
// /proc/meminfo. MemAvailable is preferred for the free figure, with
// MemFree as the fallback on older kernels. Both values are zero when
// the file cannot be read.
func systemMemory() (total, free uint64) {
	data, err := os.ReadFile("/proc/meminfo")
	if err != nil {
		return 0, 0
	}

	var memFree uint64
	for _, line := range strings.Split(string(data), "\n") {
		key, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		switch key {
		case "MemTotal":
			total = parseMeminfoKB(rest)
		case "MemAvailable":
			free = parseMeminfoKB(rest)
		case "MemFree":
			memFree = parseMeminfoKB(rest)
		}
	}

	if free == 0 {
		free = memFree
	}
	return total, free
}

// parseMeminfoKB parses a meminfo value of the form " 16384256 kB" and
// returns it in bytes.
func parseMeminfoKB(s string) uint64 {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	kb, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0
	}
	return kb * 1024
}
