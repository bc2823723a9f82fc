package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTickEvent_RemainingDescription(t *testing.T) {
	assert.Equal(t, "Last instruction", (&TickEvent{RemainingTime: 0}).RemainingDescription())
	assert.Equal(t, "1 instructions left", (&TickEvent{RemainingTime: 1}).RemainingDescription())
	assert.Equal(t, "12 instructions left", (&TickEvent{RemainingTime: 12}).RemainingDescription())
}

func TestEvent_Kinds(t *testing.T) {
	events := []Event{
		&TickEvent{Time: 1},
		&ContextSwitchEvent{Time: 2},
		&IdleEvent{Time: 3},
	}
	want := []EventKind{KindTick, KindContextSwitch, KindIdle}
	for i, ev := range events {
		assert.Equal(t, want[i], ev.Kind())
		assert.Equal(t, int64(i+1), ev.Timestamp())
	}
}

func TestMultiSink_FansOutInOrder(t *testing.T) {
	// GIVEN a recorder and a counting function sink
	rec := NewRecorder()
	var seen []int64
	sink := MultiSink{rec, TraceSinkFunc(func(ev Event) { seen = append(seen, ev.Timestamp()) })}

	// WHEN two events are recorded
	sink.Record(&TickEvent{Time: 1, ProcessNumber: 4})
	sink.Record(&ContextSwitchEvent{Time: 2, Next: 5})

	// THEN both sinks see both events in order
	assert.Len(t, rec.Events, 2)
	assert.Equal(t, []int64{1, 2}, seen)
}

func TestRecorder_Filters(t *testing.T) {
	rec := NewRecorder()
	rec.Record(&TickEvent{Time: 1, ProcessNumber: 1})
	rec.Record(&ContextSwitchEvent{Time: 2, Next: 2})
	rec.Record(&TickEvent{Time: 3, ProcessNumber: 2})
	rec.Record(&IdleEvent{Time: 4})

	assert.Len(t, rec.Ticks(), 2)
	assert.Len(t, rec.ContextSwitches(), 1)
	assert.Equal(t, 1, rec.RunningAt(1))
	assert.Equal(t, -1, rec.RunningAt(2))
	assert.Equal(t, 2, rec.RunningAt(3))
	assert.Equal(t, -1, rec.RunningAt(4))
	assert.Equal(t, -1, rec.RunningAt(99))
}

func TestNewSimulator_NilSink_Discards(t *testing.T) {
	s := NewSimulator([]JobSpec{{ProcessNumber: 1, BurstTime: 2}}, NewScheduler(AlgorithmFCFS, DefaultQuantum), nil)
	assert.NotPanics(t, s.Run)
	assert.Equal(t, int64(2), s.Clock)
}
