package sortbench

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/hupe1980/sortbench/internal/timing"
	"github.com/hupe1980/sortbench/model"
)

// Result describes one completed run.
type Result struct {
	Mode Mode
	Seed uint64
	// Size is the number of generated records.
	Size int
	// Rank is k after clamping to Size.
	Rank int
	// Ordered is the length of the prefix the strategy guarantees sorted.
	Ordered int
	Elapsed time.Duration
	User    time.Duration
	System  time.Duration
	// Keys are the leading keys of the ordered prefix, ascending.
	Keys []model.Key
}

func (r *Result) measurement() timing.Measurement {
	return timing.Measurement{
		Label:   string(r.Mode),
		Elapsed: r.Elapsed,
		User:    r.User,
		System:  r.System,
	}
}

// TimingLine renders "<mode>: total_time=<value><unit>".
func (r *Result) TimingLine() string {
	return r.measurement().String()
}

// KeysLine renders the reported keys separated by single spaces.
func (r *Result) KeysLine() string {
	var sb strings.Builder
	for i, k := range r.Keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatUint(uint64(k), 10))
	}
	return sb.String()
}

// WriteTo writes the timing line followed by the keys line.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "%s\n%s\n", r.TimingLine(), r.KeysLine())
	return int64(n), err
}
