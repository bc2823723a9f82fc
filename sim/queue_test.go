package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func queuedJobs(pids ...int) (*ReadyQueue, []*Job) {
	rq := &ReadyQueue{}
	jobs := make([]*Job, len(pids))
	for i, pid := range pids {
		jobs[i] = newJob(JobSpec{ProcessNumber: pid, BurstTime: 1})
		rq.Enqueue(jobs[i])
	}
	return rq, jobs
}

func TestReadyQueue_Peek_NonEmpty_ReturnsFront(t *testing.T) {
	// GIVEN a queue with jobs [1, 2]
	rq, jobs := queuedJobs(1, 2)

	// WHEN Peek() is called
	got := rq.Peek()

	// THEN it returns the front element without removing it
	if got != jobs[0] {
		t.Errorf("Peek: got %v, want PID 1", got)
	}
	if rq.Len() != 2 {
		t.Errorf("Peek modified queue length: got %d, want 2", rq.Len())
	}
}

func TestReadyQueue_Peek_Empty_ReturnsNil(t *testing.T) {
	rq := &ReadyQueue{}
	if got := rq.Peek(); got != nil {
		t.Errorf("Peek on empty queue: got %v, want nil", got)
	}
	if got := rq.Dequeue(); got != nil {
		t.Errorf("Dequeue on empty queue: got %v, want nil", got)
	}
}

func TestReadyQueue_Enqueue_MarksQueued_DequeueIsFIFO(t *testing.T) {
	rq, jobs := queuedJobs(3, 1, 2)

	for _, j := range jobs {
		assert.Equal(t, StateQueued, j.State)
	}
	assert.Equal(t, "[3 1 2]", rq.String())
	assert.Same(t, jobs[0], rq.Dequeue())
	assert.Same(t, jobs[1], rq.Dequeue())
	assert.Equal(t, 1, rq.Len())
}

func TestReadyQueue_Enqueue_TwiceWithoutDequeue_Panics(t *testing.T) {
	// GIVEN a job already in the queue
	rq, jobs := queuedJobs(1)

	// WHEN it is enqueued again THEN membership is violated and the queue panics
	assert.Panics(t, func() { rq.Enqueue(jobs[0]) })
}

func TestReadyQueue_Enqueue_CompletedJob_Panics(t *testing.T) {
	j := newJob(JobSpec{ProcessNumber: 1, BurstTime: 1})
	j.State = StateCompleted
	assert.Panics(t, func() { (&ReadyQueue{}).Enqueue(j) })
}

func TestReadyQueue_Reorder_AppliesFunction(t *testing.T) {
	// GIVEN a queue [1, 2, 3]
	rq, _ := queuedJobs(1, 2, 3)

	// WHEN Reorder reverses the slice in place
	rq.Reorder(func(jobs []*Job) {
		for i, k := 0, len(jobs)-1; i < k; i, k = i+1, k-1 {
			jobs[i], jobs[k] = jobs[k], jobs[i]
		}
	})

	// THEN the queue reflects the new order
	assert.Equal(t, []int{3, 2, 1}, jobIDs(rq.Items()))
}

func TestReadyQueue_Reorder_NilFunction_Panics(t *testing.T) {
	rq, _ := queuedJobs(1)
	assert.Panics(t, func() { rq.Reorder(nil) })
}

func TestReadyQueue_Snapshot_SkipsLeadingEntries(t *testing.T) {
	rq, jobs := queuedJobs(4, 5, 6)
	jobs[1].WaitedTime = 2
	jobs[2].WaitedTime = 7

	assert.Equal(t, []JobWait{{4, 0}, {5, 2}, {6, 7}}, rq.Snapshot(0))
	assert.Equal(t, []JobWait{{5, 2}, {6, 7}}, rq.Snapshot(1))
	assert.Empty(t, rq.Snapshot(3))
	assert.NotNil(t, rq.Snapshot(5))
}

func TestReadyQueue_Snapshot_IsACopy(t *testing.T) {
	// GIVEN a snapshot taken before a job waits
	rq, jobs := queuedJobs(1)
	snap := rq.Snapshot(0)

	// WHEN the job accrues more wait
	jobs[0].wait()

	// THEN the snapshot keeps the old value
	assert.Equal(t, int64(0), snap[0].WaitedTime)
	assert.Equal(t, int64(1), rq.Snapshot(0)[0].WaitedTime)
}
