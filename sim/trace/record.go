// Package trace provides per-run outcome records and their aggregation.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// JobRecord captures the outcome of one completed job.
type JobRecord struct {
	ProcessNumber  int   `json:"process_number"`
	Priority       int   `json:"priority"`
	ArrivalTime    int64 `json:"arrival_time"`
	BurstTime      int64 `json:"burst_time"`
	FirstRunTime   int64 `json:"first_run_time"`
	CompletionTime int64 `json:"completion_time"`
	WaitedTime     int64 `json:"waited_time"`
	Dispatches     int   `json:"dispatches"`
}

// TurnaroundTime is the span from arrival to completion.
func (r JobRecord) TurnaroundTime() int64 {
	return r.CompletionTime - r.ArrivalTime
}

// ResponseTime is the span from arrival to first dispatch.
func (r JobRecord) ResponseTime() int64 {
	return r.FirstRunTime - r.ArrivalTime
}

// UnchargedTime is the part of the turnaround that was neither running nor
// charged as wait: context-switch ticks that handed the CPU to this job, and
// a context-switch tick it arrived during (admission waits for the next tick).
func (r JobRecord) UnchargedTime() int64 {
	return r.TurnaroundTime() - r.BurstTime - r.WaitedTime
}
