package cmd

import (
	"fmt"
	"io"
	"strings"

	sim "github.com/cpusim/cpusim/sim"
	"github.com/cpusim/cpusim/sim/trace"
)

// ConsoleSink prints trace events as human-readable lines:
//
//	# Time Unit 3: PID 1 executes. 2 instructions left. Q=1.
//	PID 2 wait=2.
//	# Time Unit 6: Context switch.
type ConsoleSink struct {
	w     io.Writer
	level trace.Level
}

// NewConsoleSink writes to w. LevelSwitches drops per-tick lines;
// LevelNone drops everything.
func NewConsoleSink(w io.Writer, level trace.Level) *ConsoleSink {
	return &ConsoleSink{w: w, level: level}
}

func (c *ConsoleSink) Record(ev sim.Event) {
	if c.level == trace.LevelNone {
		return
	}
	switch e := ev.(type) {
	case *sim.TickEvent:
		if c.level != trace.LevelTicks {
			return
		}
		fmt.Fprintf(c.w, "# Time Unit %d: PID %d executes. %s. Q=%d.\n",
			e.Time, e.ProcessNumber, e.RemainingDescription(), e.QueueLength)
		c.printWaits(e.Queue)
	case *sim.ContextSwitchEvent:
		fmt.Fprintf(c.w, "# Time Unit %d: Context switch.\n", e.Time)
		c.printWaits(e.Waiting)
	case *sim.IdleEvent:
		fmt.Fprintf(c.w, "# Time Unit %d: Idle. Q=%d.\n", e.Time, len(e.Admitted))
	}
}

// printWaits writes one line listing every waiting job, or nothing.
func (c *ConsoleSink) printWaits(waits []sim.JobWait) {
	if len(waits) == 0 {
		return
	}
	var sb strings.Builder
	for _, w := range waits {
		fmt.Fprintf(&sb, "PID %d wait=%d. ", w.ProcessNumber, w.WaitedTime)
	}
	fmt.Fprintln(c.w, sb.String())
}
