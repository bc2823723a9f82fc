package trace

import (
	"math"
	"sort"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat"
)

// RunSummary aggregates statistics over the JobRecords of one run.
type RunSummary struct {
	Jobs           int     `json:"jobs"`
	Makespan       int64   `json:"makespan"`
	MeanWaiting    float64 `json:"mean_waiting"`
	StdDevWaiting  float64 `json:"stddev_waiting"` // population standard deviation
	MeanTurnaround float64 `json:"mean_turnaround"`
	MeanResponse   float64 `json:"mean_response"`
	P50Waiting     float64 `json:"p50_waiting"`
	P90Waiting     float64 `json:"p90_waiting"`
	P90Turnaround  float64 `json:"p90_turnaround"`
	MaxWaiting     int64   `json:"max_waiting"`
	MaxWaitingJob  int     `json:"max_waiting_job"` // process number; first in record order on ties
	Throughput     float64 `json:"throughput"`      // completed jobs per tick
}

// Summarize computes aggregate statistics from job records and the final clock.
// Safe for nil or empty records (returns zero-value fields).
func Summarize(records []JobRecord, makespan int64) *RunSummary {
	summary := &RunSummary{Makespan: makespan}
	if len(records) == 0 {
		return summary
	}
	summary.Jobs = len(records)

	waits := make([]int64, 0, len(records))
	waitSamples := make([]float64, 0, len(records))
	turnarounds := make([]float64, 0, len(records))
	responses := make([]float64, 0, len(records))
	summary.MaxWaitingJob = records[0].ProcessNumber
	summary.MaxWaiting = records[0].WaitedTime
	for _, r := range records {
		waits = append(waits, r.WaitedTime)
		waitSamples = append(waitSamples, float64(r.WaitedTime))
		turnarounds = append(turnarounds, float64(r.TurnaroundTime()))
		responses = append(responses, float64(r.ResponseTime()))
		if r.WaitedTime > summary.MaxWaiting {
			summary.MaxWaiting = r.WaitedTime
			summary.MaxWaitingJob = r.ProcessNumber
		}
	}
	summary.MeanWaiting, summary.StdDevWaiting = stat.PopMeanStdDev(waitSamples, nil)
	summary.MeanTurnaround = stat.Mean(turnarounds, nil)
	summary.MeanResponse = stat.Mean(responses, nil)

	sort.Slice(waits, func(i, j int) bool { return waits[i] < waits[j] })
	summary.P50Waiting = Percentile(waits, 50)
	summary.P90Waiting = Percentile(waits, 90)
	sort.Float64s(turnarounds)
	summary.P90Turnaround = Percentile(turnarounds, 90)

	if makespan > 0 {
		summary.Throughput = float64(len(records)) / float64(makespan)
	}
	return summary
}

// Percentile returns the p-th percentile of sorted data using linear
// interpolation between closest ranks. Returns 0 for empty data.
func Percentile[T constraints.Integer | constraints.Float](sorted []T, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	rank := p / 100.0 * float64(n-1)
	lowerIdx := int(math.Floor(rank))
	upperIdx := int(math.Ceil(rank))
	if upperIdx >= n {
		return float64(sorted[n-1])
	}
	if lowerIdx == upperIdx {
		return float64(sorted[lowerIdx])
	}
	lower, upper := sorted[lowerIdx], sorted[upperIdx]
	return float64(lower) + float64(upper-lower)*(rank-float64(lowerIdx))
}
