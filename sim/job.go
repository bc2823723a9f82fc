// Defines the Job struct that models a single process in the scheduling simulation.
// Tracks the fixed descriptor fields plus remaining work and accumulated wait.

package sim

import (
	"fmt"
)

// JobState represents the lifecycle state of a job.
// A job moves pending → queued → running and back to queued on preemption,
// until it ends in completed.
type JobState string

const (
	StatePending   JobState = "pending"
	StateQueued    JobState = "queued"
	StateRunning   JobState = "running"
	StateCompleted JobState = "completed"
)

// JobSpec is an immutable job descriptor as supplied by a job source.
type JobSpec struct {
	ProcessNumber int   `yaml:"process_number"` // Unique identifier, also the last tie-break key
	ArrivalTime   int64 `yaml:"arrival_time"`   // Tick at which the job may enter the ready queue
	BurstTime     int64 `yaml:"burst_time"`     // Total CPU ticks required (must be > 0)
	Priority      int   `yaml:"priority"`       // Lower value = more urgent
}

// Job models one process's lifecycle in the simulation.
// The embedded JobSpec never changes after construction; only the runtime
// fields below it are mutated, and only by the owning Simulator.
type Job struct {
	JobSpec

	State         JobState // pending, queued, running, completed
	RemainingTime int64    // Ticks of work left, 0 <= RemainingTime <= BurstTime
	WaitedTime    int64    // Ticks spent queued while another job held the CPU

	FirstRunTime   int64 // Clock value at first dispatch (-1 until dispatched)
	CompletionTime int64 // Clock value of the tick that ran the last instruction
	Dispatches     int   // Number of times the job was handed the CPU
}

func newJob(spec JobSpec) *Job {
	if spec.BurstTime <= 0 {
		panic(fmt.Sprintf("job %d: burst time must be positive, got %d", spec.ProcessNumber, spec.BurstTime))
	}
	return &Job{
		JobSpec:       spec,
		State:         StatePending,
		RemainingTime: spec.BurstTime,
		FirstRunTime:  -1,
	}
}

// run executes one unit of work.
func (j *Job) run() {
	if j.RemainingTime <= 0 {
		panic(fmt.Sprintf("job %d: run called with no work left", j.ProcessNumber))
	}
	j.RemainingTime--
}

func (j *Job) wait() {
	j.WaitedTime++
}

// Completed reports whether the job has executed its last instruction.
func (j *Job) Completed() bool {
	return j.State == StateCompleted
}

// TurnaroundTime is the span from arrival to completion. Zero until completed.
func (j *Job) TurnaroundTime() int64 {
	if !j.Completed() {
		return 0
	}
	return j.CompletionTime - j.ArrivalTime
}

// ResponseTime is the span from arrival to first dispatch. Zero until dispatched.
func (j *Job) ResponseTime() int64 {
	if j.FirstRunTime < 0 {
		return 0
	}
	return j.FirstRunTime - j.ArrivalTime
}

// This method returns a human-readable string representation of a Job.
func (j Job) String() string {
	return fmt.Sprintf("Job: (PID: %d, State: %s, Remaining: %d/%d, Waited: %d, ArrivalTime: %d, Priority: %d)",
		j.ProcessNumber, j.State, j.RemainingTime, j.BurstTime, j.WaitedTime, j.ArrivalTime, j.Priority)
}
