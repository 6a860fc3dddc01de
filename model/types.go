package model

import (
	"fmt"
	"unsafe"
)

const (
	// FloatCount is the number of float payload fields in a Record.
	FloatCount = 10
	// StringCount is the number of string payload fields in a Record.
	StringCount = 20
	// StringLen is the length in bytes of every string payload field.
	StringLen = 20
)

// Key is the value records are ordered by.
type Key uint64

// Record is a fixed-shape composite value.
//
// Only Key takes part in ordering; Floats and Strings are payload that gives
// the record a realistic size. Records are filled in place and moved only by
// swapping, never duplicated.
type Record struct {
	Key     Key
	Floats  [FloatCount]float64
	Strings [StringCount]string
}

// Size is the in-memory footprint of one Record including its string bytes.
const Size = int64(unsafe.Sizeof(Record{})) + StringCount*StringLen

// Less reports whether r orders before o.
func (r *Record) Less(o *Record) bool {
	return r.Key < o.Key
}

// String returns a short representation of the record.
func (r *Record) String() string {
	return fmt.Sprintf("Record(%d)", r.Key)
}

// Keys returns the keys of recs in order.
func Keys(recs []Record) []Key {
	out := make([]Key, len(recs))
	for i := range recs {
		out[i] = recs[i].Key
	}
	return out
}
