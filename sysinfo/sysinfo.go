package sysinfo

import (
	"context"
	"math"
	"os"
	"runtime"
	"time"
)

// DiskUnavailable is the sentinel reported when disk usage cannot be
// measured. The rest of the snapshot is still populated.
const DiskUnavailable = -1

// Metrics is a point-in-time snapshot of process and host health.
// Field names follow the composite report wire contract.
type Metrics struct {
	// ProcessMemoryUsedPercent is process heap in use relative to total
	// system memory.
	ProcessMemoryUsedPercent float64 `json:"process_memory_used_percent"`

	// UptimeMinutes is how long this process has been running.
	UptimeMinutes float64 `json:"uptime_minutes"`

	// CPUOneMinuteAveragePercent is the 1-minute load average
	// normalized by logical CPU count.
	CPUOneMinuteAveragePercent float64 `json:"cpu_one_minute_average_percent"`

	// CPUFiveMinuteAveragePercent is the 5-minute load average
	// normalized by logical CPU count.
	CPUFiveMinuteAveragePercent float64 `json:"cpu_five_minute_average_percent"`

	// Hostname is the host's reported name.
	Hostname string `json:"hostname"`

	// OSFreeMemoryMB is the memory available to the OS, in megabytes.
	OSFreeMemoryMB float64 `json:"os_free_memory_mb"`

	// DiskRootUsePercent is used space on the watched volume, or
	// DiskUnavailable when the measurement failed.
	DiskRootUsePercent float64 `json:"disk_root_use_percent"`
}

// CollectorConfig configures a Collector.
type CollectorConfig struct {
	// DiskPath is the volume to measure. Default: "/".
	DiskPath string
}

// Collector gathers host metrics. The zero-config collector watches the
// root volume.
type Collector struct {
	diskPath string
}

// processStart anchors uptime. Read-only after init.
var processStart = time.Now()

// NewCollector creates a host metrics collector.
func NewCollector(config ...CollectorConfig) *Collector {
	diskPath := "/"
	if len(config) > 0 && config[0].DiskPath != "" {
		diskPath = config[0].DiskPath
	}
	return &Collector{diskPath: diskPath}
}

// Collect takes a best-effort snapshot of all metrics. Every metric is a
// single attempt with no retry, and no individual failure aborts the
// snapshot: disk degrades to the DiskUnavailable sentinel, memory and
// load values degrade to zero.
//
// The disk query is the one metric that touches the filesystem, so it
// runs in its own goroutine while the in-memory metrics are read.
func (c *Collector) Collect(ctx context.Context) Metrics {
	diskCh := make(chan float64, 1)
	go func() {
		diskCh <- diskUsePercent(c.diskPath)
	}()

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	totalMem, freeMem := systemMemory()
	if totalMem == 0 {
		// No OS reading available; fall back to memory obtained from
		// the OS by the runtime, as a denominator of last resort.
		totalMem = stats.Sys
	}

	var memPercent float64
	if totalMem > 0 {
		memPercent = float64(stats.HeapInuse) / float64(totalMem) * 100
	}

	load1, load5 := loadAverages()
	cpus := float64(runtime.NumCPU())

	m := Metrics{
		ProcessMemoryUsedPercent:    Round2(memPercent),
		UptimeMinutes:               Round2(time.Since(processStart).Seconds() / 60),
		CPUOneMinuteAveragePercent:  Round2(load1 / cpus * 100),
		CPUFiveMinuteAveragePercent: Round2(load5 / cpus * 100),
		OSFreeMemoryMB:              Round2(float64(freeMem) / (1024 * 1024)),
	}

	if hostname, err := os.Hostname(); err == nil {
		m.Hostname = hostname
	}

	select {
	case disk := <-diskCh:
		m.DiskRootUsePercent = disk
	case <-ctx.Done():
		m.DiskRootUsePercent = DiskUnavailable
	}

	return m
}

// Round2 rounds to 2 decimal places, the precision of every percentage
// and minute field in the composite report.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
