package sim

import (
	"github.com/cpusim/cpusim/sim/internal/testutil"
)

// specsFromRows converts shared fixture rows into job descriptors.
func specsFromRows(rows []testutil.Row) []JobSpec {
	specs := make([]JobSpec, len(rows))
	for i, r := range rows {
		specs[i] = JobSpec{ProcessNumber: r.PID, ArrivalTime: r.Arrival, BurstTime: r.Burst, Priority: r.Priority}
	}
	return specs
}

// runScenario runs rows under the given algorithm and returns the finished
// simulator together with every recorded event.
func runScenario(a Algorithm, quantum int64, rows []testutil.Row) (*Simulator, *Recorder) {
	rec := NewRecorder()
	s := NewSimulator(specsFromRows(rows), NewScheduler(a, quantum), rec)
	s.Run()
	return s, rec
}

// runningTimeline lists, for ticks 1..end, the process number that executed
// each tick (-1 for context-switch and idle ticks).
func runningTimeline(rec *Recorder, end int64) []int {
	out := make([]int, 0, end)
	for t := int64(1); t <= end; t++ {
		out = append(out, rec.RunningAt(t))
	}
	return out
}

// completionOrder returns process numbers in completion order.
func completionOrder(s *Simulator) []int {
	ids := make([]int, len(s.Metrics.Jobs))
	for i, r := range s.Metrics.Jobs {
		ids[i] = r.ProcessNumber
	}
	return ids
}
