// Tracks simulation-wide and per-job scheduling metrics such as
// waiting time, turnaround, context switches and idle ticks.

package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/cpusim/cpusim/sim/trace"
)

// Metrics aggregates statistics about the simulation for final reporting.
type Metrics struct {
	RunID     string // Random identifier for correlating logs; not part of the trace
	Algorithm string

	CompletedJobs   int
	BusyTicks       int64 // Ticks that executed a job
	IdleTicks       int64 // Ticks with an empty ready queue
	ContextSwitches int
	Preemptions     int // Segments that ended before completion
	Dispatches      int
	SimEndedTime    int64

	Jobs []trace.JobRecord // In completion order
}

// NewMetrics returns an empty Metrics with a fresh RunID.
func NewMetrics() *Metrics {
	return &Metrics{
		RunID: uuid.NewString(),
		Jobs:  make([]trace.JobRecord, 0),
	}
}

func (m *Metrics) recordCompletion(j *Job) {
	m.CompletedJobs++
	m.Jobs = append(m.Jobs, trace.JobRecord{
		ProcessNumber:  j.ProcessNumber,
		Priority:       j.Priority,
		ArrivalTime:    j.ArrivalTime,
		BurstTime:      j.BurstTime,
		FirstRunTime:   j.FirstRunTime,
		CompletionTime: j.CompletionTime,
		WaitedTime:     j.WaitedTime,
		Dispatches:     j.Dispatches,
	})
}

// Summary aggregates the completed job records.
func (m *Metrics) Summary() *trace.RunSummary {
	return trace.Summarize(m.Jobs, m.SimEndedTime)
}

// CPUUtilization is the fraction of elapsed ticks that executed a job.
func (m *Metrics) CPUUtilization() float64 {
	if m.SimEndedTime == 0 {
		return 0
	}
	return float64(m.BusyTicks) / float64(m.SimEndedTime)
}

// MetricsOutput is the JSON form of Metrics.
type MetricsOutput struct {
	RunID           string            `json:"run_id"`
	Algorithm       string            `json:"algorithm"`
	CompletedJobs   int               `json:"completed_jobs"`
	ElapsedTicks    int64             `json:"elapsed_ticks"`
	BusyTicks       int64             `json:"busy_ticks"`
	IdleTicks       int64             `json:"idle_ticks"`
	ContextSwitches int               `json:"context_switches"`
	Preemptions     int               `json:"preemptions"`
	CPUUtilization  float64           `json:"cpu_utilization"`
	Summary         *trace.RunSummary `json:"summary"`
	Jobs            []trace.JobRecord `json:"jobs"`
}

// Output converts Metrics into its JSON form.
func (m *Metrics) Output() MetricsOutput {
	return MetricsOutput{
		RunID:           m.RunID,
		Algorithm:       m.Algorithm,
		CompletedJobs:   m.CompletedJobs,
		ElapsedTicks:    m.SimEndedTime,
		BusyTicks:       m.BusyTicks,
		IdleTicks:       m.IdleTicks,
		ContextSwitches: m.ContextSwitches,
		Preemptions:     m.Preemptions,
		CPUUtilization:  m.CPUUtilization(),
		Summary:         m.Summary(),
		Jobs:            m.Jobs,
	}
}

// WriteJSON writes the indented JSON form of Metrics to w.
func (m *Metrics) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(m.Output(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling metrics: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	return nil
}

// Print displays aggregated metrics at the end of the simulation:
// one row per job in completion order, then run-wide averages.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Algorithm            : %s\n", m.Algorithm)
	fmt.Fprintf(w, "Completed Jobs       : %d\n", m.CompletedJobs)
	if m.CompletedJobs == 0 {
		return
	}
	s := m.Summary()
	fmt.Fprintf(w, "Elapsed Ticks        : %s (busy %s, idle %s)\n",
		humanize.Comma(m.SimEndedTime), humanize.Comma(m.BusyTicks), humanize.Comma(m.IdleTicks))
	fmt.Fprintf(w, "Context Switches     : %d\n", m.ContextSwitches)
	fmt.Fprintf(w, "Preemptions          : %d\n", m.Preemptions)
	fmt.Fprintf(w, "CPU Utilization      : %.2f%%\n", 100*m.CPUUtilization())
	fmt.Fprintf(w, "Average Waiting      : %.2f ticks (stddev %.2f)\n", s.MeanWaiting, s.StdDevWaiting)
	fmt.Fprintf(w, "Average Turnaround   : %.2f ticks\n", s.MeanTurnaround)
	fmt.Fprintf(w, "Average Response     : %.2f ticks\n", s.MeanResponse)
	fmt.Fprintf(w, "Max Waiting          : %d ticks (PID %d)\n", s.MaxWaiting, s.MaxWaitingJob)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PID\tARRIVAL\tBURST\tPRIORITY\tFINISHED\tWAITED\tTURNAROUND\tRESPONSE")
	for _, r := range m.Jobs {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			r.ProcessNumber, r.ArrivalTime, r.BurstTime, r.Priority,
			r.CompletionTime, r.WaitedTime, r.TurnaroundTime(), r.ResponseTime())
	}
	_ = tw.Flush()
}
