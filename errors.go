package sortbench

import (
	"errors"
	"fmt"

	"github.com/hupe1980/sortbench/internal/verify"
	"github.com/hupe1980/sortbench/model"
)

var (
	// ErrUnknownMode is returned for a mode string that names no strategy.
	ErrUnknownMode = errors.New("unknown mode")
	// ErrInvalidSize is returned when the collection size is not positive.
	ErrInvalidSize = errors.New("size must be positive")
	// ErrInvalidRank is returned when rank k is not positive.
	ErrInvalidRank = errors.New("rank must be positive")
	// ErrInvalidPreview is returned when the preview length is negative.
	ErrInvalidPreview = errors.New("preview must not be negative")
)

// ErrOrderViolation indicates that the ordered prefix is not strictly
// ascending.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrOrderViolation struct {
	Mode     Mode
	Position int
	Prev     model.Key
	Next     model.Key
	cause    error
}

func (e *ErrOrderViolation) Error() string {
	return fmt.Sprintf("%s: order violated at position %d: %d >= %d", e.Mode, e.Position, e.Prev, e.Next)
}

func (e *ErrOrderViolation) Unwrap() error { return e.cause }

// ErrBadPermutation indicates that an index-indirection run left an index
// slice that is not a permutation of the record positions.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrBadPermutation struct {
	Mode     Mode
	Position int
	cause    error
}

func (e *ErrBadPermutation) Error() string {
	return fmt.Sprintf("%s: index is not a permutation at position %d", e.Mode, e.Position)
}

func (e *ErrBadPermutation) Unwrap() error { return e.cause }

func translateError(mode Mode, err error) error {
	if err == nil {
		return nil
	}

	var oe *verify.OrderError
	if errors.As(err, &oe) {
		return &ErrOrderViolation{Mode: mode, Position: oe.Position, Prev: oe.Prev, Next: oe.Next, cause: err}
	}
	var pe *verify.PermutationError
	if errors.As(err, &pe) {
		return &ErrBadPermutation{Mode: mode, Position: pe.Position, cause: err}
	}

	return fmt.Errorf("%s: %w", mode, err)
}
