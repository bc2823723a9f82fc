package sim

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cpusim/cpusim/sim/trace"
)

// RunConfig holds a simulation run, loadable from a YAML file.
// Nil pointer fields mean "not set in YAML" so CLI flags can tell an
// explicit zero from an omission. String fields use empty string for "not set".
type RunConfig struct {
	Algorithm string    `yaml:"algorithm"` // ordinal "1".."4" or name; empty = ask interactively
	Quantum   *int64    `yaml:"quantum"`   // round-robin slice; nil = DefaultQuantum
	JobsFile  string    `yaml:"jobs_file"` // CSV or YAML job list
	Jobs      []JobSpec `yaml:"jobs"`      // inline job list (exclusive with JobsFile)
	LogLevel  string    `yaml:"log_level"`
	Trace     string    `yaml:"trace"` // "none", "switches", "ticks"
	Output    string    `yaml:"output"` // summary format: "text" or "json"
}

// ValidOutputFormats is the set of recognized summary formats.
var ValidOutputFormats = map[string]bool{"": true, "text": true, "json": true}

// LoadRunConfig reads and parses a YAML run configuration file.
// Unknown keys are rejected so typos surface as errors.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	var cfg RunConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing run config %s: %w", path, err)
	}
	return &cfg, nil
}

// QuantumOrDefault returns the configured quantum, or DefaultQuantum if unset.
func (c *RunConfig) QuantumOrDefault() int64 {
	if c.Quantum == nil {
		return DefaultQuantum
	}
	return *c.Quantum
}

// Validate checks names and parameter ranges. An empty Algorithm is valid
// (the caller prompts for one); it is resolved with ParseAlgorithm.
func (c *RunConfig) Validate() error {
	if c.Algorithm != "" {
		if _, err := ParseAlgorithm(c.Algorithm); err != nil {
			return err
		}
	}
	if c.Quantum != nil && *c.Quantum < 1 {
		return fmt.Errorf("quantum %d: %w", *c.Quantum, ErrInvalidQuantum)
	}
	if c.JobsFile != "" && len(c.Jobs) > 0 {
		return errors.New("jobs_file and inline jobs are mutually exclusive")
	}
	if !trace.IsValidLevel(c.Trace) {
		return fmt.Errorf("unknown trace level %q", c.Trace)
	}
	if !ValidOutputFormats[c.Output] {
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	return nil
}
