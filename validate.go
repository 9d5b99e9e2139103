package tsutil

import (
	"fmt"

	"github.com/raykavin/tsutil/pkg/array"
	"github.com/raykavin/tsutil/pkg/core"
)

// check is a deferred precondition; it returns nil when satisfied
type check func() error

// validate runs checks in order and returns the first violation
func validate(checks ...check) error {
	for _, c := range checks {
		if err := c(); err != nil {
			return err
		}
	}
	return nil
}

func invalid(name, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", core.ErrInvalidArgument, name, fmt.Sprintf(format, args...))
}

func checkInt64Like(name string, a array.Array) check {
	return func() error {
		if !a.Kind().IsInt64Like() {
			return invalid(name, "array must be int64 or datetime64, got %s", a.Kind())
		}
		return nil
	}
}

func check64Bits(name string, a array.Array) check {
	return func() error {
		if a.Kind().ItemSize() != 8 {
			return invalid(name, "array must have 64-bit elements, got %s", a.Kind())
		}
		return nil
	}
}

func checkFloat64(name string, a array.Array) check {
	return func() error {
		if a.Kind() != array.Float64 {
			return invalid(name, "array must be float64, got %s", a.Kind())
		}
		return nil
	}
}

func checkNDim(name string, a array.Array) check {
	return func() error {
		if a.NDim() != 1 {
			return invalid(name, "ndim must be 1, got %d", a.NDim())
		}
		return nil
	}
}

func checkSameLength(times, values array.Array) check {
	return func() error {
		if times.Len() != values.Len() {
			return invalid("values", "length %d does not match times length %d", values.Len(), times.Len())
		}
		return nil
	}
}

// checkOrder rejects decreasing time axes when WithOrderCheck is set
func checkOrder(opts []Option, times, sampleTimes array.Array) error {
	if !newSettings(opts).orderCheck {
		return nil
	}

	if !core.IsNonDecreasing(times.Int64s()) {
		return invalid("times", "must be non-decreasing")
	}

	if !core.IsNonDecreasing(sampleTimes.Int64s()) {
		return invalid("sample times", "must be non-decreasing")
	}

	return nil
}
