// Package timing measures a single execution of an operation.
package timing

import (
	"fmt"
	"time"
)

// Measurement is the outcome of one timed execution.
type Measurement struct {
	Label   string
	Elapsed time.Duration
	// User and System are the CPU times consumed by the process while the
	// operation ran. Both are zero where the platform does not report them.
	User   time.Duration
	System time.Duration
}

// Run executes fn exactly once and measures the wall time between start and
// completion. fn's error is returned unchanged; the measurement is still
// filled in.
func Run(label string, fn func() error) (Measurement, error) {
	user0, sys0 := cpuTime()
	start := time.Now()

	err := fn()

	elapsed := time.Since(start)
	user1, sys1 := cpuTime()

	return Measurement{
		Label:   label,
		Elapsed: elapsed,
		User:    user1 - user0,
		System:  sys1 - sys0,
	}, err
}

// Value returns the elapsed time truncated to whole milliseconds when it is at
// least one millisecond, otherwise truncated to whole microseconds.
func (m Measurement) Value() (int64, string) {
	return FormatDuration(m.Elapsed)
}

// String renders "<label>: total_time=<value><unit>".
func (m Measurement) String() string {
	v, unit := m.Value()
	return fmt.Sprintf("%s: total_time=%d%s", m.Label, v, unit)
}

// FormatDuration splits d into a value and a unit ("ms" or "us").
func FormatDuration(d time.Duration) (int64, string) {
	if ms := d.Milliseconds(); ms >= 1 {
		return ms, "ms"
	}
	return d.Microseconds(), "us"
}
