package sim

import "fmt"

// Registry owns every Job of a single simulation run.
// Jobs are created once from the descriptors and are never removed;
// the ready queue and the simulation loop hold pointers into it.
type Registry struct {
	jobs       []*Job       // descriptor order
	byPID      map[int]*Job // process number -> job
	unfinished int
}

// NewRegistry builds a Job for every descriptor, preserving order.
// The descriptors are copied; the caller's slice is never mutated.
// Panics on a non-positive burst time or a duplicate process number:
// job sources validate descriptors before a run is constructed.
func NewRegistry(specs []JobSpec) *Registry {
	r := &Registry{
		jobs:  make([]*Job, 0, len(specs)),
		byPID: make(map[int]*Job, len(specs)),
	}
	for _, spec := range specs {
		if _, dup := r.byPID[spec.ProcessNumber]; dup {
			panic(fmt.Sprintf("NewRegistry: duplicate process number %d", spec.ProcessNumber))
		}
		j := newJob(spec)
		r.jobs = append(r.jobs, j)
		r.byPID[spec.ProcessNumber] = j
	}
	r.unfinished = len(r.jobs)
	return r
}

// Jobs returns the jobs in descriptor order.
// The returned slice is the registry's internal storage; callers MUST NOT modify it.
func (r *Registry) Jobs() []*Job {
	return r.jobs
}

// Len returns the number of jobs in the registry.
func (r *Registry) Len() int {
	return len(r.jobs)
}

// Unfinished returns the number of jobs that have not completed yet.
func (r *Registry) Unfinished() int {
	return r.unfinished
}

// Job looks up a job by process number. Returns nil if absent.
func (r *Registry) Job(processNumber int) *Job {
	return r.byPID[processNumber]
}

func (r *Registry) markCompleted(j *Job, now int64) {
	if j.Completed() {
		panic(fmt.Sprintf("markCompleted: job %d already completed", j.ProcessNumber))
	}
	j.State = StateCompleted
	j.CompletionTime = now
	r.unfinished--
}
