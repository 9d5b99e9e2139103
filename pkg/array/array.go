// Package array holds kind-tagged one or more dimensional buffers.
// It is the boundary representation for callers that resolve element types at runtime.
package array

import (
	"errors"
	"fmt"
	"time"
)

var ErrShapeMismatch = errors.New("shape does not match element count")

// Array is a read-only view over a typed backing slice plus a shape
type Array struct {
	kind  Kind
	shape []int
	data  any
}

func newArray(kind Kind, n int, data any) Array {
	return Array{kind: kind, shape: []int{n}, data: data}
}

// Int32s wraps a 32-bit integer slice
func Int32s(values []int32) Array {
	return newArray(Int32, len(values), values)
}

// Int64s wraps a 64-bit integer slice
func Int64s(values []int64) Array {
	return newArray(Int64, len(values), values)
}

// Uint64s wraps an unsigned 64-bit integer slice
func Uint64s(values []uint64) Array {
	return newArray(Uint64, len(values), values)
}

// Float32s wraps a 32-bit float slice
func Float32s(values []float32) Array {
	return newArray(Float32, len(values), values)
}

// Float64s wraps a 64-bit float slice
func Float64s(values []float64) Array {
	return newArray(Float64, len(values), values)
}

// UnixNanos wraps instants already expressed as Unix nanoseconds
func UnixNanos(values []int64) Array {
	return newArray(Datetime, len(values), values)
}

// Datetimes converts instants to Unix nanoseconds
func Datetimes(times []time.Time) Array {
	nanos := make([]int64, len(times))
	for i, t := range times {
		nanos[i] = t.UnixNano()
	}
	return UnixNanos(nanos)
}

// Kind returns the element kind
func (a Array) Kind() Kind {
	return a.kind
}

// Shape returns a copy of the array dimensions
func (a Array) Shape() []int {
	return append([]int(nil), a.shape...)
}

// NDim returns the number of dimensions
func (a Array) NDim() int {
	return len(a.shape)
}

// Len returns the size of the first dimension, 0 for an empty array
func (a Array) Len() int {
	if len(a.shape) == 0 {
		return 0
	}
	return a.shape[0]
}

// Size returns the total number of elements
func (a Array) Size() int {
	if len(a.shape) == 0 {
		return 0
	}
	size := 1
	for _, dim := range a.shape {
		size *= dim
	}
	return size
}

// Reshape returns a view of the same elements with other dimensions
func (a Array) Reshape(shape ...int) (Array, error) {
	size := 1
	for _, dim := range shape {
		if dim < 0 {
			return Array{}, fmt.Errorf("%w: negative dimension %d", ErrShapeMismatch, dim)
		}
		size *= dim
	}

	if len(shape) == 0 || size != a.Size() {
		return Array{}, fmt.Errorf("%w: %v for %d elements", ErrShapeMismatch, shape, a.Size())
	}

	return Array{kind: a.kind, shape: append([]int(nil), shape...), data: a.data}, nil
}

// Int64s returns the backing slice of an Int64 or Datetime array, nil otherwise
func (a Array) Int64s() []int64 {
	if !a.kind.IsInt64Like() {
		return nil
	}
	return a.data.([]int64)
}

// Uint64s returns the backing slice of a Uint64 array, nil otherwise
func (a Array) Uint64s() []uint64 {
	if a.kind != Uint64 {
		return nil
	}
	return a.data.([]uint64)
}

// Float64s returns the backing slice of a Float64 array, nil otherwise
func (a Array) Float64s() []float64 {
	if a.kind != Float64 {
		return nil
	}
	return a.data.([]float64)
}

// Times converts a Datetime array back to UTC instants, nil for other kinds
func (a Array) Times() []time.Time {
	if a.kind != Datetime {
		return nil
	}

	nanos := a.data.([]int64)
	times := make([]time.Time, len(nanos))
	for i, ns := range nanos {
		times[i] = time.Unix(0, ns).UTC()
	}
	return times
}

// String returns a short description such as "float64[3]"
func (a Array) String() string {
	return fmt.Sprintf("%s%v", a.kind, a.shape)
}
