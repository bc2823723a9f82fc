// Package sim provides the tick-driven CPU scheduling engine for cpusim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - job.go: Job lifecycle (pending → queued → running → completed)
//   - scheduler.go: the four policies and the ordering keys they sort by
//   - simulator.go: the tick loop, context switches and idle ticks
//
// # Architecture
//
// The sim package owns the engine and its data types; supporting packages
// live alongside it:
//   - sim/workload/: job files (CSV, YAML), validation and synthetic generation
//   - sim/trace/: per-job outcome records and run summaries
//
// A run is single-threaded and deterministic: the same descriptors and
// policy always produce the same event sequence.
//
// # Key Interfaces
//
//   - Scheduler: admission order, ready-queue order and the yield decision
//   - TraceSink: receives one Event per clock tick (tick, context switch, idle)
package sim
