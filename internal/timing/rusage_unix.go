//go:build unix

package timing

import (
	"time"

	"golang.org/x/sys/unix"
)

// cpuTime returns the user and system CPU time consumed by the process.
func cpuTime() (user, system time.Duration) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, 0
	}
	return time.Duration(ru.Utime.Nano()), time.Duration(ru.Stime.Nano())
}
