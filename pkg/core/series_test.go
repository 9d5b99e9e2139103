package core

import (
	"errors"
	"math"
	"testing"

	"github.com/raykavin/tsutil/pkg/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSeries_Validate(t *testing.T) {
	require.NoError(t, TimeSeries{Times: []int64{1, 1, 2}, Values: []float64{0, 0, 0}}.Validate())
	require.NoError(t, TimeSeries{}.Validate())

	err := TimeSeries{Name: "x", Times: []int64{1, 2}, Values: []float64{0}}.Validate()
	require.True(t, errors.Is(err, ErrInvalidArgument))

	err = TimeSeries{Name: "x", Times: []int64{2, 1}, Values: []float64{0, 0}}.Validate()
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Contains(t, err.Error(), "non-decreasing")
}

func TestTimeSeries_Arrays(t *testing.T) {
	series := TimeSeries{Times: []int64{1, 2}, Values: []float64{3, 4}}

	times, values := series.Arrays()
	assert.Equal(t, array.Int64, times.Kind())
	assert.Equal(t, array.Float64, values.Kind())
	assert.Equal(t, []float64{3, 4}, values.Float64s())

	series.Datetime = true
	times, _ = series.Arrays()
	assert.Equal(t, array.Datetime, times.Kind())
	assert.Equal(t, []int64{1, 2}, times.Int64s())
}

func TestIsNonDecreasing(t *testing.T) {
	assert.True(t, IsNonDecreasing([]int64{}))
	assert.True(t, IsNonDecreasing([]int64{-1, 0, 0, 5}))
	assert.False(t, IsNonDecreasing([]int64{0, 5, 4}))
	assert.True(t, IsNonDecreasing([]string{"a", "b"}))
}

func TestGrid(t *testing.T) {
	tests := []struct {
		name             string
		start, end, step int64
		expected         []int64
	}{
		{"inclusive end", 0, 10, 5, []int64{0, 5, 10}},
		{"stops before end", 0, 9, 4, []int64{0, 4, 8}},
		{"single point", 3, 3, 1, []int64{3}},
		{"end before start", 5, 0, 1, []int64{}},
		{"zero step", 0, 10, 0, []int64{}},
		{"near max int64", 9223372036854775800, 9223372036854775807, 5, []int64{9223372036854775800, 9223372036854775805}},
		{"near min int64", math.MinInt64, math.MinInt64 + 3, 5, []int64{math.MinInt64}},
		{"max int64 step", math.MinInt64, math.MaxInt64, math.MaxInt64, []int64{math.MinInt64, -1, math.MaxInt64 - 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Grid(tt.start, tt.end, tt.step))
		})
	}
}

func TestGrid_WideRange(t *testing.T) {
	// end-start does not fit in an int64
	var grid []int64
	require.NotPanics(t, func() {
		grid = Grid(-9_000_000_000_000_000_000, 9_000_000_000_000_000_000, 100_000_000_000_000_000)
	})

	require.Len(t, grid, 181)
	assert.Equal(t, int64(-9_000_000_000_000_000_000), grid[0])
	assert.Equal(t, int64(0), grid[90])
	assert.Equal(t, int64(9_000_000_000_000_000_000), grid[180])
	assert.True(t, IsNonDecreasing(grid))
}
