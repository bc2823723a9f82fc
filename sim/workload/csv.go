package workload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cpusim/cpusim/sim"
)

// CSV column headers for job files, in canonical column order.
var jobColumns = []string{"process_number", "arrival_time", "burst_time", "priority"}

// LoadCSV reads a job CSV file. The first row is a header naming the four
// columns; names are matched case-insensitively so columns may appear in
// any order. Extra columns are ignored.
func LoadCSV(path string) ([]sim.JobSpec, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening job file: %w", err)
	}
	defer func() { _ = file.Close() }()

	specs, err := ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return specs, nil
}

// ReadCSV parses job rows from r. Blank rows are skipped.
func ReadCSV(r io.Reader) ([]sim.JobSpec, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []sim.JobSpec{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	specs := make([]sim.JobSpec, 0)
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row %d: %w", line, err)
		}
		if isBlank(row) {
			continue
		}
		spec, err := parseJobRow(row, index)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// columnIndex maps each required column name to its position in header.
func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(jobColumns))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if key != name {
			logrus.Debugf("normalized CSV header %q to %q", name, key)
		}
		if _, dup := index[key]; dup {
			return nil, fmt.Errorf("duplicate CSV column %q", key)
		}
		index[key] = i
	}
	for _, col := range jobColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing CSV column %q; want %s", col, strings.Join(jobColumns, ","))
		}
	}
	return index, nil
}

func parseJobRow(row []string, index map[string]int) (sim.JobSpec, error) {
	field := func(col string) (int64, error) {
		i := index[col]
		if i >= len(row) {
			return 0, fmt.Errorf("missing %s", col)
		}
		v, err := strconv.ParseInt(strings.TrimSpace(row[i]), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", col, err)
		}
		return v, nil
	}
	pid, err := field("process_number")
	if err != nil {
		return sim.JobSpec{}, err
	}
	arrival, err := field("arrival_time")
	if err != nil {
		return sim.JobSpec{}, err
	}
	burst, err := field("burst_time")
	if err != nil {
		return sim.JobSpec{}, err
	}
	priority, err := field("priority")
	if err != nil {
		return sim.JobSpec{}, err
	}
	return sim.JobSpec{
		ProcessNumber: int(pid),
		ArrivalTime:   arrival,
		BurstTime:     burst,
		Priority:      int(priority),
	}, nil
}

func isBlank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// SaveCSV writes specs as a job CSV file with a header row.
func SaveCSV(specs []sim.JobSpec, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating job file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := WriteCSV(file, specs); err != nil {
		return err
	}
	return file.Close()
}

// WriteCSV writes a header row followed by one row per spec.
func WriteCSV(w io.Writer, specs []sim.JobSpec) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(jobColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, s := range specs {
		row := []string{
			strconv.Itoa(s.ProcessNumber),
			strconv.FormatInt(s.ArrivalTime, 10),
			strconv.FormatInt(s.BurstTime, 10),
			strconv.Itoa(s.Priority),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for PID %d: %w", s.ProcessNumber, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
