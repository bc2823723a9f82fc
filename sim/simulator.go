// sim/simulator.go
package sim

import (
	"github.com/sirupsen/logrus"
)

// Simulator is the core object that holds simulation time, job state, and the tick loop.
// A Simulator runs once; it owns its Registry and ReadyQueue exclusively.
type Simulator struct {
	Clock int64
	// Registry owns every job of the run
	Registry *Registry
	// ReadyQ holds admitted jobs that are not running, in scheduler order.
	// The running job is never in ReadyQ.
	ReadyQ    *ReadyQueue
	Scheduler Scheduler
	Metrics   *Metrics

	sink     TraceSink
	arrivals []*Job // registry jobs in admission order
	ran      bool
}

// NewSimulator builds a run over a copy of specs.
// A nil sink discards events.
func NewSimulator(specs []JobSpec, scheduler Scheduler, sink TraceSink) *Simulator {
	if scheduler == nil {
		panic("NewSimulator: scheduler must not be nil")
	}
	if sink == nil {
		sink = discardSink{}
	}
	reg := NewRegistry(specs)
	arrivals := append([]*Job(nil), reg.Jobs()...)
	scheduler.OrderArrivals(arrivals)

	s := &Simulator{
		Clock:     0,
		Registry:  reg,
		ReadyQ:    &ReadyQueue{},
		Scheduler: scheduler,
		Metrics:   NewMetrics(),
		sink:      sink,
		arrivals:  arrivals,
	}
	s.Metrics.Algorithm = scheduler.Algorithm().String()
	return s
}

// Run drives the clock until every job has completed.
// An empty job list produces no ticks and no events.
func (sim *Simulator) Run() {
	if sim.ran {
		panic("Run: simulator already ran")
	}
	sim.ran = true
	if sim.Registry.Len() == 0 {
		logrus.Infof("No jobs to schedule; %s run is empty", sim.Metrics.Algorithm)
		return
	}
	logrus.WithField("run", sim.Metrics.RunID).Infof("Starting %s simulation with %d jobs", sim.Metrics.Algorithm, sim.Registry.Len())

	sim.admitAndOrder()
	for sim.Registry.Unfinished() > 0 {
		if sim.ReadyQ.Len() == 0 {
			sim.idle()
			continue
		}
		last := sim.dispatch()
		if head := sim.ReadyQ.Peek(); head != nil && head != last {
			sim.contextSwitch()
		}
	}

	sim.Metrics.SimEndedTime = sim.Clock
	logrus.WithField("run", sim.Metrics.RunID).Infof("[tick %07d] Simulation ended", sim.Clock)
}

// dispatch hands the CPU to the queue head and runs it until its segment
// ends. Returns the job that ran.
func (sim *Simulator) dispatch() *Job {
	job := sim.ReadyQ.Dequeue()
	job.State = StateRunning
	job.Dispatches++
	if job.FirstRunTime < 0 {
		job.FirstRunTime = sim.Clock
	}
	sim.Metrics.Dispatches++
	logrus.Debugf("[tick %07d] Dispatch PID %d (%d left, queue=%v)", sim.Clock, job.ProcessNumber, job.RemainingTime, sim.ReadyQ)

	var ran int64
	for {
		sim.tick(job)
		ran++
		if job.RemainingTime == 0 {
			sim.Registry.markCompleted(job, sim.Clock)
			sim.Metrics.recordCompletion(job)
			logrus.Debugf("[tick %07d] PID %d completed (waited %d)", sim.Clock, job.ProcessNumber, job.WaitedTime)
			return job
		}
		if sim.Scheduler.ShouldYield(job, ran, sim.ReadyQ) {
			sim.ReadyQ.Enqueue(job)
			sim.ReadyQ.Reorder(sim.Scheduler.OrderQueue)
			sim.Metrics.Preemptions++
			logrus.Debugf("[tick %07d] PID %d yields after %d ticks (%d left)", sim.Clock, job.ProcessNumber, ran, job.RemainingTime)
			return job
		}
	}
}

// tick advances the clock by one unit of execution for the running job.
// Order: clock, run, wait, admit, reorder, emit.
func (sim *Simulator) tick(running *Job) {
	sim.Clock++
	running.run()
	for _, j := range sim.ReadyQ.Items() {
		j.wait()
	}
	sim.admitAndOrder()
	sim.Metrics.BusyTicks++

	sim.sink.Record(&TickEvent{
		Time:          sim.Clock,
		ProcessNumber: running.ProcessNumber,
		RemainingTime: running.RemainingTime,
		QueueLength:   sim.ReadyQ.Len(),
		Queue:         sim.ReadyQ.Snapshot(0),
	})
}

// contextSwitch charges one tick to every queued job except the new head.
func (sim *Simulator) contextSwitch() {
	sim.Clock++
	items := sim.ReadyQ.Items()
	for _, j := range items[1:] {
		j.wait()
	}
	sim.Metrics.ContextSwitches++
	logrus.Debugf("[tick %07d] Context switch to PID %d", sim.Clock, items[0].ProcessNumber)

	sim.sink.Record(&ContextSwitchEvent{
		Time:    sim.Clock,
		Next:    items[0].ProcessNumber,
		Waiting: sim.ReadyQ.Snapshot(1),
	})
}

// idle advances the clock while no admitted job is ready.
func (sim *Simulator) idle() {
	sim.Clock++
	admitted := sim.admitAndOrder()
	sim.Metrics.IdleTicks++
	sim.sink.Record(&IdleEvent{Time: sim.Clock, Admitted: admitted})
}

// admitAndOrder admits every pending job whose arrival time has been
// reached, in the scheduler's admission order, then reorders the queue.
// Returns the process numbers admitted.
func (sim *Simulator) admitAndOrder() []int {
	var admitted []int
	for _, j := range sim.arrivals {
		if j.State == StatePending && j.ArrivalTime <= sim.Clock {
			sim.ReadyQ.Enqueue(j)
			admitted = append(admitted, j.ProcessNumber)
		}
	}
	if len(admitted) > 0 {
		logrus.Debugf("[tick %07d] Admitted %v", sim.Clock, admitted)
	}
	sim.ReadyQ.Reorder(sim.Scheduler.OrderQueue)
	return admitted
}
