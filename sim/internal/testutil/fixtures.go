// Package testutil provides shared test infrastructure for the cpusim packages.
// It holds job fixtures as plain rows (no dependency on sim/, so sim's own
// tests can import it) and small file helpers.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Row is a job descriptor: (process number, arrival, burst, priority).
type Row struct {
	PID      int
	Arrival  int64
	Burst    int64
	Priority int
}

// TwoJobsFCFS is the two-job FCFS scenario: P1 runs 1-5, P2 waits 4 ticks.
func TwoJobsFCFS() []Row {
	return []Row{
		{PID: 1, Arrival: 0, Burst: 5, Priority: 1},
		{PID: 2, Arrival: 1, Burst: 3, Priority: 2},
	}
}

// EqualBursts has three simultaneous arrivals with equal bursts, listed
// out of process-number order.
func EqualBursts() []Row {
	return []Row{
		{PID: 3, Arrival: 0, Burst: 2, Priority: 1},
		{PID: 1, Arrival: 0, Burst: 2, Priority: 1},
		{PID: 2, Arrival: 0, Burst: 2, Priority: 1},
	}
}

// PriorityPreemption has a long low-priority job interrupted by an urgent arrival at tick 2.
func PriorityPreemption() []Row {
	return []Row{
		{PID: 1, Arrival: 0, Burst: 6, Priority: 5},
		{PID: 2, Arrival: 2, Burst: 2, Priority: 1},
	}
}

// Classroom is a ten-job mixed workload with staggered arrivals, priority
// ties and equal bursts, used for cross-algorithm property tests.
func Classroom() []Row {
	return []Row{
		{PID: 1, Arrival: 0, Burst: 8, Priority: 3},
		{PID: 2, Arrival: 0, Burst: 4, Priority: 1},
		{PID: 3, Arrival: 1, Burst: 9, Priority: 4},
		{PID: 4, Arrival: 2, Burst: 5, Priority: 2},
		{PID: 5, Arrival: 3, Burst: 2, Priority: 2},
		{PID: 6, Arrival: 5, Burst: 4, Priority: 5},
		{PID: 7, Arrival: 6, Burst: 1, Priority: 1},
		{PID: 8, Arrival: 6, Burst: 7, Priority: 3},
		{PID: 9, Arrival: 9, Burst: 3, Priority: 2},
		{PID: 10, Arrival: 12, Burst: 6, Priority: 1},
	}
}

// WithGap has an idle stretch between the first job's completion and the next arrival.
func WithGap() []Row {
	return []Row{
		{PID: 1, Arrival: 0, Burst: 2, Priority: 1},
		{PID: 2, Arrival: 5, Burst: 3, Priority: 1},
	}
}

// CSV renders rows as a job CSV document with a header row.
func CSV(rows []Row) string {
	var sb strings.Builder
	sb.WriteString("process_number,arrival_time,burst_time,priority\n")
	for _, r := range rows {
		fmt.Fprintf(&sb, "%d,%d,%d,%d\n", r.PID, r.Arrival, r.Burst, r.Priority)
	}
	return sb.String()
}

// YAML renders rows as a YAML job document.
func YAML(rows []Row) string {
	var sb strings.Builder
	sb.WriteString("jobs:\n")
	for _, r := range rows {
		fmt.Fprintf(&sb, "  - process_number: %d\n    arrival_time: %d\n    burst_time: %d\n    priority: %d\n",
			r.PID, r.Arrival, r.Burst, r.Priority)
	}
	return sb.String()
}

// WriteFile writes content to name inside a fresh temp dir and returns the path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}
