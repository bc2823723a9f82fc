// Package workload supplies job descriptors to the simulator: it loads them
// from CSV or YAML job files, validates them, and generates synthetic lists.
package workload

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cpusim/cpusim/sim"
)

// Format is a job file encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the job file format from its extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported job file extension %q; valid: .csv, .yaml, .yml", filepath.Ext(path))
	}
}

// LoadJobs reads and validates a job file, dispatching on its extension.
func LoadJobs(path string) ([]sim.JobSpec, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	var specs []sim.JobSpec
	switch format {
	case FormatCSV:
		specs, err = LoadCSV(path)
	case FormatYAML:
		specs, err = LoadYAML(path)
	}
	if err != nil {
		return nil, err
	}
	if err := Validate(specs); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return specs, nil
}

// SaveJobs writes specs to path in the format implied by its extension.
func SaveJobs(specs []sim.JobSpec, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	switch format {
	case FormatCSV:
		return SaveCSV(specs, path)
	default:
		return SaveYAML(specs, path)
	}
}

// Validate checks the job source contract: non-negative arrival, positive
// burst, unique process numbers. An empty list is valid.
func Validate(specs []sim.JobSpec) error {
	seen := make(map[int]int, len(specs))
	for i, s := range specs {
		prefix := fmt.Sprintf("job[%d] (PID %d)", i, s.ProcessNumber)
		if s.ArrivalTime < 0 {
			return fmt.Errorf("%s: arrival_time must be non-negative, got %d", prefix, s.ArrivalTime)
		}
		if s.BurstTime <= 0 {
			return fmt.Errorf("%s: burst_time must be positive, got %d", prefix, s.BurstTime)
		}
		if first, dup := seen[s.ProcessNumber]; dup {
			return fmt.Errorf("%s: duplicate process_number, first used by job[%d]", prefix, first)
		}
		seen[s.ProcessNumber] = i
	}
	return nil
}
