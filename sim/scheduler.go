package sim

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Algorithm identifies one of the four scheduling strategies.
// The numeric values are the ordinals shown by the selection menu.
type Algorithm int

const (
	AlgorithmFCFS Algorithm = iota + 1
	AlgorithmSJF
	AlgorithmPriority
	AlgorithmRoundRobin
)

// DefaultQuantum is the round-robin time slice when none is configured.
const DefaultQuantum int64 = 4

// ErrUnknownAlgorithm is returned by ParseAlgorithm for unrecognized selections.
var ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")

// ErrInvalidQuantum is returned when a round-robin quantum is not positive.
var ErrInvalidQuantum = errors.New("quantum must be at least 1 tick")

var algorithmNames = map[Algorithm]string{
	AlgorithmFCFS:       "fcfs",
	AlgorithmSJF:        "sjf",
	AlgorithmPriority:   "priority",
	AlgorithmRoundRobin: "round-robin",
}

var algorithmTitles = map[Algorithm]string{
	AlgorithmFCFS:       "FirstInFirstOut",
	AlgorithmSJF:        "ShortestJobFirst",
	AlgorithmPriority:   "Priority",
	AlgorithmRoundRobin: "RoundRobin",
}

// algorithmAliases maps accepted selection strings to algorithms.
var algorithmAliases = map[string]Algorithm{
	"fcfs":        AlgorithmFCFS,
	"fifo":        AlgorithmFCFS,
	"sjf":         AlgorithmSJF,
	"priority":    AlgorithmPriority,
	"round-robin": AlgorithmRoundRobin,
	"rr":          AlgorithmRoundRobin,
}

// Algorithms returns every algorithm in ordinal order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmFCFS, AlgorithmSJF, AlgorithmPriority, AlgorithmRoundRobin}
}

// String returns the canonical flag name ("fcfs", "sjf", "priority", "round-robin").
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Title returns the name shown in the interactive menu.
func (a Algorithm) Title() string {
	return algorithmTitles[a]
}

// IsValidAlgorithm returns true if a is one of the four known algorithms.
func IsValidAlgorithm(a Algorithm) bool {
	_, ok := algorithmNames[a]
	return ok
}

// ParseAlgorithm accepts an ordinal ("1".."4") or a name (case-insensitive).
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if a := Algorithm(n); IsValidAlgorithm(a) {
			return a, nil
		}
		return 0, fmt.Errorf("selection %d out of range 1-%d: %w", n, len(algorithmNames), ErrUnknownAlgorithm)
	}
	if a, ok := algorithmAliases[s]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownAlgorithm)
}

// Scheduler is the policy consulted by the Simulator.
// The set of implementations is closed: FCFSScheduler, SJFScheduler,
// PriorityScheduler and RoundRobinScheduler. Implementations sort in-place
// with sort.SliceStable so equal keys keep their relative order.
type Scheduler interface {
	// Algorithm identifies the policy.
	Algorithm() Algorithm
	// OrderArrivals sorts the jobs into the order in which simultaneous
	// arrivals are admitted to the ready queue.
	OrderArrivals(jobs []*Job)
	// OrderQueue reorders the ready queue after each tick and admission batch.
	OrderQueue(jobs []*Job)
	// ShouldYield reports whether the running job must give up the CPU after
	// having run ran ticks in its current segment. queue is already ordered.
	ShouldYield(running *Job, ran int64, queue *ReadyQueue) bool
}

// FCFSScheduler runs jobs to completion in admission order.
type FCFSScheduler struct{}

func (f *FCFSScheduler) Algorithm() Algorithm { return AlgorithmFCFS }

func (f *FCFSScheduler) OrderArrivals(_ []*Job) {
	// No-op: descriptor order
}

func (f *FCFSScheduler) OrderQueue(_ []*Job) {
	// No-op: FIFO order preserved from enqueue order
}

func (f *FCFSScheduler) ShouldYield(_ *Job, _ int64, _ *ReadyQueue) bool { return false }

// SJFScheduler sorts the ready queue by burst time (ascending, shortest first),
// then by arrival time (ascending), then by process number (ascending).
// Non-preemptive: the order only decides who runs next.
// Warning: SJF can starve long jobs under sustained arrivals.
type SJFScheduler struct{}

func (s *SJFScheduler) Algorithm() Algorithm { return AlgorithmSJF }

func (s *SJFScheduler) OrderArrivals(_ []*Job) {}

func (s *SJFScheduler) OrderQueue(jobs []*Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return shorterJob(jobs[i], jobs[j])
	})
}

func (s *SJFScheduler) ShouldYield(_ *Job, _ int64, _ *ReadyQueue) bool { return false }

func shorterJob(a, b *Job) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ProcessNumber < b.ProcessNumber
}

// PriorityScheduler sorts the ready queue by priority (ascending, lower = more urgent),
// then by arrival time (ascending), then by process number (ascending).
// Preemptive: the running job yields as soon as the queue head sorts strictly before it.
type PriorityScheduler struct{}

func (p *PriorityScheduler) Algorithm() Algorithm { return AlgorithmPriority }

func (p *PriorityScheduler) OrderArrivals(_ []*Job) {}

func (p *PriorityScheduler) OrderQueue(jobs []*Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return moreUrgent(jobs[i], jobs[j])
	})
}

func (p *PriorityScheduler) ShouldYield(running *Job, _ int64, queue *ReadyQueue) bool {
	head := queue.Peek()
	return head != nil && moreUrgent(head, running)
}

// moreUrgent is a total order over distinct jobs, so a resumed job and a
// fresh arrival with equal priority never tie.
func moreUrgent(a, b *Job) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ProcessNumber < b.ProcessNumber
}

// RoundRobinScheduler grants each dispatch at most Quantum ticks.
// Arrivals are admitted by (arrival time, burst time, process number);
// the ready queue itself is strict FIFO.
type RoundRobinScheduler struct {
	Quantum int64
}

func (r *RoundRobinScheduler) Algorithm() Algorithm { return AlgorithmRoundRobin }

func (r *RoundRobinScheduler) OrderArrivals(jobs []*Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		if jobs[i].ArrivalTime != jobs[j].ArrivalTime {
			return jobs[i].ArrivalTime < jobs[j].ArrivalTime
		}
		if jobs[i].BurstTime != jobs[j].BurstTime {
			return jobs[i].BurstTime < jobs[j].BurstTime
		}
		return jobs[i].ProcessNumber < jobs[j].ProcessNumber
	})
}

func (r *RoundRobinScheduler) OrderQueue(_ []*Job) {
	// No-op: admissions and expired slices join the tail
}

func (r *RoundRobinScheduler) ShouldYield(_ *Job, ran int64, _ *ReadyQueue) bool {
	return ran >= r.Quantum
}

// NewScheduler creates a Scheduler for the given algorithm.
// quantum is only used by round-robin; a value < 1 there panics, as does an
// unknown algorithm. Callers validate with ParseAlgorithm / RunConfig.Validate first.
func NewScheduler(a Algorithm, quantum int64) Scheduler {
	if !IsValidAlgorithm(a) {
		panic(fmt.Sprintf("unknown algorithm %d", int(a)))
	}
	switch a {
	case AlgorithmFCFS:
		return &FCFSScheduler{}
	case AlgorithmSJF:
		return &SJFScheduler{}
	case AlgorithmPriority:
		return &PriorityScheduler{}
	case AlgorithmRoundRobin:
		if quantum < 1 {
			panic(fmt.Sprintf("round-robin quantum %d: %v", quantum, ErrInvalidQuantum))
		}
		return &RoundRobinScheduler{Quantum: quantum}
	default:
		panic(fmt.Sprintf("unhandled algorithm %q", a))
	}
}
