// Package observe provides observability primitives for probe execution.
//
// It is a pure instrumentation library: no probing, no transport, no I/O
// beyond exporter setup. Consumers wire the observer into the monitor so
// every check evaluation is traced, measured, and logged.
package observe
