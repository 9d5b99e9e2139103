package tsutil_test

import (
	"errors"
	"fmt"

	"github.com/raykavin/tsutil"
	"github.com/raykavin/tsutil/pkg/array"
	"github.com/raykavin/tsutil/pkg/core"
)

func ExampleResample() {
	out, err := tsutil.Resample(
		array.Int64s([]int64{0, 10, 20}),
		array.Float64s([]float64{1, 2, 3}),
		array.Int64s([]int64{-5, 0, 5, 15, 25}),
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(out.Float64s())
	// Output: [0 1 1 2 3]
}

func ExampleResampleInterp() {
	out, err := tsutil.ResampleInterp(
		array.Int64s([]int64{0, 10}),
		array.Float64s([]float64{0, 10}),
		array.Int64s([]int64{5}),
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(out.Float64s())
	// Output: [5]
}

func ExampleMaxDD() {
	dd, _ := tsutil.MaxDD(array.Float64s([]float64{10, 8, 12, 3, 7}))
	fmt.Println(dd)

	_, err := tsutil.MaxDD(array.Int64s([]int64{10, 8}))
	fmt.Println(errors.Is(err, core.ErrInvalidArgument), err)
	// Output:
	// 9
	// true invalid argument: values: array must be float64, got int64
}
