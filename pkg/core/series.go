package core

import (
	"fmt"

	"github.com/raykavin/tsutil/pkg/array"
	"golang.org/x/exp/constraints"
)

// Word is the set of 64-bit wide element types a step resample can carry.
// Datetimes travel as int64 nanoseconds.
type Word interface {
	~int64 | ~uint64 | ~float64
}

// TimeSeries is a named value series observed on an integer time axis
// Times must be non-decreasing and positionally aligned with Values
type TimeSeries struct {
	Name     string    `json:"name"`
	Times    []int64   `json:"times"`
	Values   []float64 `json:"values"`
	Datetime bool      `json:"datetime"` // Times are Unix nanoseconds
}

// Len returns the number of observations in the series
func (s TimeSeries) Len() int {
	return len(s.Times)
}

// Validate checks the structural invariants of the series
func (s TimeSeries) Validate() error {
	if len(s.Times) != len(s.Values) {
		return fmt.Errorf("%w: series %q has %d times and %d values",
			ErrInvalidArgument, s.Name, len(s.Times), len(s.Values))
	}

	if !IsNonDecreasing(s.Times) {
		return fmt.Errorf("%w: series %q times must be non-decreasing", ErrInvalidArgument, s.Name)
	}

	return nil
}

// Arrays returns the time axis (datetime or int64) and the float64 values as tagged arrays
func (s TimeSeries) Arrays() (times, values array.Array) {
	if s.Datetime {
		return array.UnixNanos(s.Times), array.Float64s(s.Values)
	}
	return array.Int64s(s.Times), array.Float64s(s.Values)
}

// IsNonDecreasing reports whether every element is greater than or equal to its predecessor
func IsNonDecreasing[T constraints.Ordered](values []T) bool {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}
	return true
}

// maxGridPrealloc bounds the capacity reserved up front by Grid
const maxGridPrealloc = 1 << 16

// Grid builds an evenly spaced axis starting at start and stopping at or before end
// A non-positive step or an end before start yields an empty axis
func Grid(start, end, step int64) []int64 {
	if step <= 0 || end < start {
		return []int64{}
	}

	// end >= start, so the unsigned difference is the exact span even when end-start
	// does not fit in an int64
	count := (uint64(end)-uint64(start))/uint64(step) + 1
	grid := make([]int64, 0, min(count, maxGridPrealloc))

	for t := start; ; t += step {
		grid = append(grid, t)
		if uint64(end)-uint64(t) < uint64(step) {
			break
		}
	}

	return grid
}
