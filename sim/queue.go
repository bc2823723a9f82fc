// Implements the ReadyQueue, which holds all jobs eligible to run but not running.
// Jobs are enqueued on admission and on preemption.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue is an ordered view over the jobs waiting for the CPU.
// It never owns job data: entries point into the Registry, and a job is
// present iff its State is StateQueued.
type ReadyQueue struct {
	queue []*Job
}

// Enqueue adds a job to the back of the ready queue.
func (rq *ReadyQueue) Enqueue(j *Job) {
	if j.State != StatePending && j.State != StateRunning {
		panic(fmt.Sprintf("Enqueue: job %d in state %s", j.ProcessNumber, j.State))
	}
	j.State = StateQueued
	rq.queue = append(rq.queue, j)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, j := range rq.queue {
		fmt.Fprintf(&sb, "%d", j.ProcessNumber)
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of jobs in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Peek returns the job at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *Job {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers within the
// sim package may iterate over it but MUST NOT append to or reslice it.
// For reordering, use Reorder() instead.
func (rq *ReadyQueue) Items() []*Job {
	return rq.queue
}

// Reorder applies fn to the queue contents, allowing in-place reordering.
// Scheduler.OrderQueue is the primary consumer:
//
//	rq.Reorder(scheduler.OrderQueue)
//
// fn MUST NOT change the slice length (no append/delete).
func (rq *ReadyQueue) Reorder(fn func([]*Job)) {
	if fn == nil {
		panic("Reorder: fn must not be nil")
	}
	n := len(rq.queue)
	fn(rq.queue)
	if len(rq.queue) != n {
		panic(fmt.Sprintf("Reorder: fn changed queue length from %d to %d", n, len(rq.queue)))
	}
}

// Dequeue removes the job at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *Job {
	if len(rq.queue) == 0 {
		return nil
	}
	j := rq.queue[0]
	rq.queue[0] = nil
	rq.queue = rq.queue[1:]
	return j
}

// Snapshot copies the (process number, waited time) pairs in queue order,
// skipping the first skip entries.
func (rq *ReadyQueue) Snapshot(skip int) []JobWait {
	if skip >= len(rq.queue) {
		return []JobWait{}
	}
	out := make([]JobWait, 0, len(rq.queue)-skip)
	for _, j := range rq.queue[skip:] {
		out = append(out, JobWait{ProcessNumber: j.ProcessNumber, WaitedTime: j.WaitedTime})
	}
	return out
}
