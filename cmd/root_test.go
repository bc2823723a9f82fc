package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/cpusim/cpusim/sim"
)

func runWith(t *testing.T, stdin string, kv ...string) (string, error) {
	t.Helper()
	setFlags(t, runCmd, kv...)
	var out bytes.Buffer
	runCmd.SetOut(&out)
	runCmd.SetIn(strings.NewReader(stdin))
	t.Cleanup(func() {
		runCmd.SetOut(nil)
		runCmd.SetIn(nil)
	})
	err := runSimulation(runCmd)
	return out.String(), err
}

func TestRunSimulation_FCFS_PrintsTraceAndSummary(t *testing.T) {
	// GIVEN P1 (0,5) and P2 (1,3) in a CSV file
	jobs := writeFile(t, "jobs.csv", twoJobsCSV)

	// WHEN run under FCFS
	out, err := runWith(t, "", "algorithm", "1", "jobs", jobs)

	// THEN the trace matches the tick accounting and the summary follows
	require.NoError(t, err)
	assert.Contains(t, out, "# Time Unit 1: PID 1 executes. 4 instructions left. Q=1.\nPID 2 wait=0. \n")
	assert.Contains(t, out, "# Time Unit 5: PID 1 executes. Last instruction. Q=1.\nPID 2 wait=4. \n")
	assert.Contains(t, out, "# Time Unit 6: Context switch.\n# Time Unit 7: PID 2 executes. 2 instructions left. Q=0.\n")
	assert.Contains(t, out, "# Time Unit 9: PID 2 executes. Last instruction. Q=0.\n")
	assert.NotContains(t, out, "# Time Unit 10")
	assert.Contains(t, out, "=== Simulation Metrics ===")
	assert.Contains(t, out, "Algorithm            : fcfs")
}

func TestRunSimulation_InvalidAlgorithm_FailsBeforeLoadingJobs(t *testing.T) {
	// GIVEN an out-of-range selection and a job file that does not exist
	_, err := runWith(t, "", "algorithm", "5", "jobs", "/nonexistent/jobs.csv")

	// THEN the selection error is reported, not the missing file
	require.Error(t, err)
	assert.ErrorIs(t, err, sim.ErrUnknownAlgorithm)
	assert.NotContains(t, err.Error(), "nonexistent")
}

func TestRunSimulation_NoAlgorithm_ShowsMenu(t *testing.T) {
	jobs := writeFile(t, "jobs.csv", twoJobsCSV)

	out, err := runWith(t, "2\n", "jobs", jobs, "trace", "none")

	require.NoError(t, err)
	assert.Contains(t, out, "Welcome to CPU Scheduler\nThe following algorithms are available\n")
	assert.Contains(t, out, "1. FirstInFirstOut\n2. ShortestJobFirst\n3. Priority\n4. RoundRobin\n")
	assert.Contains(t, out, "Select a number: ")
	assert.Contains(t, out, "Algorithm            : sjf")
	assert.NotContains(t, out, "# Time Unit")
}

func TestRunSimulation_MenuInvalidSelection_ReturnsError(t *testing.T) {
	jobs := writeFile(t, "jobs.csv", twoJobsCSV)
	_, err := runWith(t, "9\n", "jobs", jobs)
	assert.ErrorIs(t, err, sim.ErrUnknownAlgorithm)
}

func TestRunSimulation_JSONOutput_IsParseable(t *testing.T) {
	jobs := writeFile(t, "jobs.csv", twoJobsCSV)

	out, err := runWith(t, "", "algorithm", "fcfs", "jobs", jobs, "output", "json")

	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &parsed), "stdout must be pure JSON")
	assert.Equal(t, "fcfs", parsed["algorithm"])
	assert.Equal(t, float64(9), parsed["elapsed_ticks"])
}

func TestRunSimulation_TraceSwitches_OmitsTickLines(t *testing.T) {
	jobs := writeFile(t, "jobs.csv", twoJobsCSV)

	out, err := runWith(t, "", "algorithm", "fcfs", "jobs", jobs, "trace", "switches")

	require.NoError(t, err)
	assert.Contains(t, out, "# Time Unit 6: Context switch.")
	assert.NotContains(t, out, "executes")
}

func TestRunSimulation_MissingJobFile_ReturnsError(t *testing.T) {
	_, err := runWith(t, "", "algorithm", "fcfs", "jobs", t.TempDir()+"/missing.csv")
	assert.Error(t, err)
}

func TestRunSimulation_ConfigWithInlineJobs(t *testing.T) {
	// GIVEN a run file selecting round-robin with quantum 2 and inline jobs
	cfg := writeFile(t, "run.yaml", `
algorithm: rr
quantum: 2
trace: none
jobs:
  - {process_number: 1, arrival_time: 0, burst_time: 3, priority: 1}
  - {process_number: 2, arrival_time: 0, burst_time: 3, priority: 1}
`)

	out, err := runWith(t, "", "config", cfg)

	require.NoError(t, err)
	assert.Contains(t, out, "Algorithm            : round-robin")
	// P1 2, switch, P2 2, switch, P1 1, switch, P2 1
	assert.Contains(t, out, "Context Switches     : 3")
}

func TestResolveRunConfig_FlagsOverrideOnlyWhenChanged(t *testing.T) {
	cfgPath := writeFile(t, "run.yaml", "algorithm: priority\nquantum: 3\njobs_file: a.csv\noutput: json\n")

	// WHEN only --config is set THEN file values win over flag defaults
	setFlags(t, runCmd, "config", cfgPath)
	cfg, err := resolveRunConfig(runCmd)
	require.NoError(t, err)
	assert.Equal(t, "priority", cfg.Algorithm)
	assert.Equal(t, int64(3), cfg.QuantumOrDefault())
	assert.Equal(t, "a.csv", cfg.JobsFile)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "warn", cfg.LogLevel)

	// WHEN flags are set explicitly THEN they override the file
	setFlags(t, runCmd, "config", cfgPath, "algorithm", "sjf", "quantum", "5", "jobs", "b.yaml")
	cfg, err = resolveRunConfig(runCmd)
	require.NoError(t, err)
	assert.Equal(t, "sjf", cfg.Algorithm)
	assert.Equal(t, int64(5), cfg.QuantumOrDefault())
	assert.Equal(t, "b.yaml", cfg.JobsFile)
}

func TestResolveRunConfig_ZeroQuantum_Rejected(t *testing.T) {
	setFlags(t, runCmd, "algorithm", "rr", "quantum", "0")
	_, err := resolveRunConfig(runCmd)
	assert.ErrorIs(t, err, sim.ErrInvalidQuantum)
}

func TestResolveRunConfig_DefaultJobsFile(t *testing.T) {
	setFlags(t, runCmd)
	cfg, err := resolveRunConfig(runCmd)
	require.NoError(t, err)
	assert.Equal(t, "jobs.csv", cfg.JobsFile)
	assert.Equal(t, sim.DefaultQuantum, cfg.QuantumOrDefault())
}
