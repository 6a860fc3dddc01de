package sortbench

import (
	"fmt"
	"strings"
)

// Mode selects one ordering strategy and the collection it runs over.
type Mode string

const (
	// ModeSort fully orders inline records.
	ModeSort Mode = "sort"
	// ModePartialSort orders the k smallest inline records with a heap.
	ModePartialSort Mode = "partial_sort"
	// ModeQuickSelSort selects the k smallest inline records, then sorts them.
	ModeQuickSelSort Mode = "quickselsort"
	// ModeSortIndexes fully orders a permutation of record positions.
	ModeSortIndexes Mode = "sort_indexes"
	// ModePartialSortIndexes orders the first k positions of a permutation.
	ModePartialSortIndexes Mode = "partial_sort_indexes"
	// ModePartialSortPtr orders the k smallest records through arena handles.
	ModePartialSortPtr Mode = "partial_sort_ptr"
)

// Indirection describes how a mode reaches the records it orders.
type Indirection int

const (
	// Direct reorders records stored inline.
	Direct Indirection = iota
	// Index reorders positions into an untouched record slice.
	Index
	// Pointer reorders handles to individually allocated records.
	Pointer
)

func (i Indirection) String() string {
	switch i {
	case Direct:
		return "direct"
	case Index:
		return "index"
	case Pointer:
		return "pointer"
	default:
		return fmt.Sprintf("Indirection(%d)", int(i))
	}
}

// Modes returns every supported mode in a stable order.
func Modes() []Mode {
	return []Mode{
		ModeSort,
		ModePartialSort,
		ModeQuickSelSort,
		ModeSortIndexes,
		ModePartialSortIndexes,
		ModePartialSortPtr,
	}
}

// ParseMode returns the Mode named by s.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
	return m, nil
}

// Valid reports whether m names a supported strategy.
func (m Mode) Valid() bool {
	switch m {
	case ModeSort, ModePartialSort, ModeQuickSelSort,
		ModeSortIndexes, ModePartialSortIndexes, ModePartialSortPtr:
		return true
	default:
		return false
	}
}

// Partial reports whether m orders only the first k positions.
func (m Mode) Partial() bool {
	switch m {
	case ModePartialSort, ModeQuickSelSort, ModePartialSortIndexes, ModePartialSortPtr:
		return true
	default:
		return false
	}
}

// Indirection returns how m reaches its records.
func (m Mode) Indirection() Indirection {
	switch m {
	case ModeSortIndexes, ModePartialSortIndexes:
		return Index
	case ModePartialSortPtr:
		return Pointer
	default:
		return Direct
	}
}

// ModeList joins all supported mode names with sep.
func ModeList(sep string) string {
	modes := Modes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return strings.Join(names, sep)
}
