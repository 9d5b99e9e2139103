package array

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	tests := []struct {
		kind      Kind
		name      string
		itemSize  int
		int64Like bool
	}{
		{Int32, "int32", 4, false},
		{Int64, "int64", 8, true},
		{Uint64, "uint64", 8, false},
		{Float32, "float32", 4, false},
		{Float64, "float64", 8, false},
		{Datetime, "datetime64", 8, true},
		{Invalid, "invalid", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.itemSize, tt.kind.ItemSize())
			assert.Equal(t, tt.int64Like, tt.kind.IsInt64Like())
		})
	}
}

func TestArray_Accessors(t *testing.T) {
	a := Float64s([]float64{1, 2, 3})
	assert.Equal(t, Float64, a.Kind())
	assert.Equal(t, 1, a.NDim())
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, []float64{1, 2, 3}, a.Float64s())
	assert.Nil(t, a.Int64s())
	assert.Nil(t, a.Uint64s())
	assert.Equal(t, "float64[3]", a.String())

	assert.Equal(t, []int64{4}, Int64s([]int64{4}).Int64s())
	assert.Equal(t, []uint64{5}, Uint64s([]uint64{5}).Uint64s())
	assert.Equal(t, Int32, Int32s(nil).Kind())
	assert.Equal(t, Float32, Float32s(nil).Kind())

	var zero Array
	assert.Equal(t, Invalid, zero.Kind())
	assert.Equal(t, 0, zero.NDim())
	assert.Equal(t, 0, zero.Len())
}

func TestArray_Datetimes(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	times := []time.Time{start, start.Add(time.Hour)}

	a := Datetimes(times)
	require.Equal(t, Datetime, a.Kind())
	assert.Equal(t, []int64{start.UnixNano(), start.Add(time.Hour).UnixNano()}, a.Int64s())
	assert.Equal(t, times, a.Times())
	assert.Nil(t, Int64s([]int64{1}).Times())
}

func TestArray_Reshape(t *testing.T) {
	a := Int64s([]int64{1, 2, 3, 4, 5, 6})

	m, err := a.Reshape(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.NDim())
	assert.Equal(t, []int{2, 3}, m.Shape())
	assert.Equal(t, 6, m.Size())
	assert.Equal(t, 2, m.Len())

	// Shape returns a copy
	m.Shape()[0] = 99
	assert.Equal(t, []int{2, 3}, m.Shape())

	_, err = a.Reshape(4, 2)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = a.Reshape()
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = a.Reshape(-2, -3)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
