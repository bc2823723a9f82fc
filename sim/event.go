package sim

import "fmt"

// EventKind names the kind of a trace event.
type EventKind string

const (
	KindTick          EventKind = "tick"
	KindContextSwitch EventKind = "context-switch"
	KindIdle          EventKind = "idle"
)

// Event defines the interface for all trace events emitted by the Simulator.
// Each event carries the clock value (in ticks) of the tick it describes.
type Event interface {
	Timestamp() int64
	Kind() EventKind
}

// JobWait is a (process number, accumulated wait) pair captured at emit time.
type JobWait struct {
	ProcessNumber int
	WaitedTime    int64
}

// TickEvent reports one tick of execution.
type TickEvent struct {
	Time          int64     // Clock after the tick
	ProcessNumber int       // Job that executed this tick
	RemainingTime int64     // Work left after the tick
	QueueLength   int       // Ready queue length after admissions
	Queue         []JobWait // Ready queue contents in order
}

// Timestamp returns the clock value of the TickEvent.
func (e *TickEvent) Timestamp() int64 {
	return e.Time
}

func (e *TickEvent) Kind() EventKind { return KindTick }

// RemainingDescription returns "N instructions left", or "Last instruction"
// when the tick completed the job.
func (e *TickEvent) RemainingDescription() string {
	if e.RemainingTime == 0 {
		return "Last instruction"
	}
	return fmt.Sprintf("%d instructions left", e.RemainingTime)
}

// ContextSwitchEvent reports the extra tick charged when control moves to Next.
// Waiting lists every queued job except Next, after its wait was charged.
type ContextSwitchEvent struct {
	Time    int64
	Next    int
	Waiting []JobWait
}

// Timestamp returns the clock value of the ContextSwitchEvent.
func (e *ContextSwitchEvent) Timestamp() int64 {
	return e.Time
}

func (e *ContextSwitchEvent) Kind() EventKind { return KindContextSwitch }

// IdleEvent reports a tick with no job to run. Admitted lists the jobs that
// arrived during the tick.
type IdleEvent struct {
	Time     int64
	Admitted []int
}

// Timestamp returns the clock value of the IdleEvent.
func (e *IdleEvent) Timestamp() int64 {
	return e.Time
}

func (e *IdleEvent) Kind() EventKind { return KindIdle }

// TraceSink receives every event of a run, in emission order.
// Implementations MUST NOT retain or modify the Simulator's jobs; events
// carry copies of the values they report.
type TraceSink interface {
	Record(ev Event)
}

// TraceSinkFunc adapts a function to the TraceSink interface.
type TraceSinkFunc func(ev Event)

func (f TraceSinkFunc) Record(ev Event) { f(ev) }

// MultiSink fans each event out to every sink in order.
type MultiSink []TraceSink

func (m MultiSink) Record(ev Event) {
	for _, s := range m {
		s.Record(ev)
	}
}

// Recorder is a TraceSink that keeps every event in memory.
type Recorder struct {
	Events []Event
}

// NewRecorder creates a Recorder ready for recording.
func NewRecorder() *Recorder {
	return &Recorder{Events: make([]Event, 0)}
}

// Record appends an event.
func (r *Recorder) Record(ev Event) {
	r.Events = append(r.Events, ev)
}

// Ticks returns the recorded TickEvents in order.
func (r *Recorder) Ticks() []*TickEvent {
	var out []*TickEvent
	for _, ev := range r.Events {
		if t, ok := ev.(*TickEvent); ok {
			out = append(out, t)
		}
	}
	return out
}

// ContextSwitches returns the recorded ContextSwitchEvents in order.
func (r *Recorder) ContextSwitches() []*ContextSwitchEvent {
	var out []*ContextSwitchEvent
	for _, ev := range r.Events {
		if cs, ok := ev.(*ContextSwitchEvent); ok {
			out = append(out, cs)
		}
	}
	return out
}

// RunningAt returns the process number that executed the tick ending at
// time t, or -1 if no job ran then.
func (r *Recorder) RunningAt(t int64) int {
	for _, ev := range r.Events {
		if tick, ok := ev.(*TickEvent); ok && tick.Time == t {
			return tick.ProcessNumber
		}
	}
	return -1
}

type discardSink struct{}

func (discardSink) Record(Event) {}
