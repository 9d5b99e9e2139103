// Package tsutil resamples time-indexed series and measures their maximum drawdown.
//
// The functions in this package accept kind-tagged arrays, check element kinds,
// widths, dimensionality and lengths once, then dispatch to the typed kernels in
// pkg/resample and pkg/metric. A rejected input returns an error wrapping
// core.ErrInvalidArgument before any output is allocated.
//
// Every function is pure: inputs are never modified, nothing is retained between
// calls, and calls over independent inputs may run concurrently.
package tsutil

import (
	"github.com/raykavin/tsutil/pkg/array"
	"github.com/raykavin/tsutil/pkg/metric"
	"github.com/raykavin/tsutil/pkg/resample"
)

// Resample holds the latest value observed at or before each sample time.
// times and sampleTimes must be int64 or datetime arrays; values may hold any
// 64-bit element kind and the result has that same kind. Samples before the first
// source time take the zero value of the kind.
func Resample(times, values, sampleTimes array.Array, opts ...Option) (array.Array, error) {
	err := validate(
		checkInt64Like("times", times),
		checkInt64Like("sample times", sampleTimes),
		check64Bits("values", values),
		checkNDim("times", times),
		checkNDim("values", values),
		checkNDim("sample times", sampleTimes),
		checkSameLength(times, values),
	)
	if err != nil {
		return array.Array{}, err
	}

	if err := checkOrder(opts, times, sampleTimes); err != nil {
		return array.Array{}, err
	}

	t, st := times.Int64s(), sampleTimes.Int64s()
	switch values.Kind() {
	case array.Int64:
		return array.Int64s(resample.Step(t, values.Int64s(), st)), nil
	case array.Datetime:
		return array.UnixNanos(resample.Step(t, values.Int64s(), st)), nil
	case array.Uint64:
		return array.Uint64s(resample.Step(t, values.Uint64s(), st)), nil
	default:
		return array.Float64s(resample.Step(t, values.Float64s(), st)), nil
	}
}

// ResampleInterp linearly interpolates float64 values at each sample time.
// Samples before the first source time yield 0 and samples at or after the last
// source time yield the last value.
func ResampleInterp(times, values, sampleTimes array.Array, opts ...Option) (array.Array, error) {
	err := validate(
		checkInt64Like("times", times),
		checkInt64Like("sample times", sampleTimes),
		checkFloat64("values", values),
		checkNDim("times", times),
		checkNDim("values", values),
		checkNDim("sample times", sampleTimes),
		checkSameLength(times, values),
	)
	if err != nil {
		return array.Array{}, err
	}

	if err := checkOrder(opts, times, sampleTimes); err != nil {
		return array.Array{}, err
	}

	return array.Float64s(resample.Interp(times.Int64s(), values.Float64s(), sampleTimes.Int64s())), nil
}

// MaxDD returns the maximum drawdown of a float64 series, 0 for an empty series
func MaxDD(values array.Array) (float64, error) {
	if err := validate(checkFloat64("values", values), checkNDim("values", values)); err != nil {
		return 0, err
	}

	return metric.MaxDrawdown(values.Float64s()), nil
}
