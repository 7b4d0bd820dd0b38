// Package sysinfo takes best-effort snapshots of process and host
// health: heap usage relative to system memory, process uptime, CPU load
// averages, hostname, available memory, and disk usage on a watched
// volume.
//
// Every metric is a single attempt. Readings that cannot be taken
// degrade individually — disk to the DiskUnavailable sentinel, memory
// and load figures to zero — and a snapshot as a whole never fails.
package sysinfo
