package workload

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cpusim/cpusim/sim"
)

// JobFile is the top-level structure of a YAML job file.
type JobFile struct {
	Jobs []sim.JobSpec `yaml:"jobs"`
}

// LoadYAML reads a YAML job file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadYAML(path string) ([]sim.JobSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	specs, err := ReadYAML(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return specs, nil
}

// ReadYAML parses a YAML job document from r. An empty document yields no jobs.
func ReadYAML(r io.Reader) ([]sim.JobSpec, error) {
	var file JobFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing job YAML: %w", err)
	}
	if file.Jobs == nil {
		return []sim.JobSpec{}, nil
	}
	return file.Jobs, nil
}

// SaveYAML writes specs as a YAML job file.
func SaveYAML(specs []sim.JobSpec, path string) error {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, specs); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing job file: %w", err)
	}
	return nil
}

// WriteYAML encodes specs as a YAML job document.
func WriteYAML(w io.Writer, specs []sim.JobSpec) error {
	if specs == nil {
		specs = []sim.JobSpec{}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(JobFile{Jobs: specs}); err != nil {
		return fmt.Errorf("marshaling jobs: %w", err)
	}
	return encoder.Close()
}
