package feed

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/raykavin/tsutil/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_DefaultColumns(t *testing.T) {
	series, err := Read(strings.NewReader("time,value\n1,1.5\n3,2.5\n"))
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 3}, series.Times)
	assert.Equal(t, []float64{1.5, 2.5}, series.Values)
	assert.False(t, series.Datetime)
}

func TestRead_WithoutHeader(t *testing.T) {
	series, err := Read(strings.NewReader("10,1\n20,2\n"), WithName("raw"))
	require.NoError(t, err)

	assert.Equal(t, "raw", series.Name)
	assert.Equal(t, []int64{10, 20}, series.Times)
	assert.Equal(t, []float64{1, 2}, series.Values)
}

func TestRead_CandleFile(t *testing.T) {
	// Files written by the candle downloader: time,open,close,low,high,volume
	content := "time,open,close,low,high,volume\n" +
		"1600000000,10,11,9,12,100\n" +
		"1600000060,11,10.5,10,11.5,80\n"

	series, err := Read(strings.NewReader(content), WithValueColumn("Close"), WithTimeUnit(time.Second))
	require.NoError(t, err)

	assert.True(t, series.Datetime)
	assert.Equal(t, []float64{11, 10.5}, series.Values)
	assert.Equal(t, time.Unix(1600000060, 0).UnixNano(), series.Times[1])
}

func TestRead_TimeUnitOverflow(t *testing.T) {
	day := 24 * time.Hour

	// 106751 days is the last whole day representable in int64 nanoseconds
	series, err := Read(strings.NewReader("106751,1\n-106751,2\n"), WithTimeUnit(day))
	require.NoError(t, err)
	assert.Equal(t, []int64{106751 * int64(day), -106751 * int64(day)}, series.Times)

	for _, content := range []string{"106752,1\n", "-106752,1\n", "1700000000,1\n"} {
		_, err := Read(strings.NewReader(content), WithTimeUnit(day))
		assert.ErrorIs(t, err, ErrTimeFormat, content)
	}
}

func TestRead_RFC3339(t *testing.T) {
	content := "2024-01-01T00:00:00Z,1\n2024-01-01T01:00:00Z,2\n"

	series, err := Read(strings.NewReader(content))
	require.NoError(t, err)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, series.Datetime)
	assert.Equal(t, []int64{start.UnixNano(), start.Add(time.Hour).UnixNano()}, series.Times)
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		opts     []Option
		expected error
	}{
		{"empty", "", nil, ErrEmptyFeed},
		{"missing value column", "time,close\n1,2\n", nil, ErrMissingColumn},
		{"missing custom column", "time,value\n1,2\n", []Option{WithTimeColumn("ts")}, ErrMissingColumn},
		{"bad time", "time,value\n1,2\nnope,3\n", nil, ErrTimeFormat},
		{"mixed time formats", "1,2\n2024-01-01T00:00:00Z,3\n", nil, ErrTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.content), tt.opts...)
			require.ErrorIs(t, err, tt.expected)
		})
	}

	_, err := Read(strings.NewReader("time,value\n1,abc\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseTimeUnit(t *testing.T) {
	unit, err := ParseTimeUnit("1ms")
	require.NoError(t, err)
	assert.Equal(t, time.Millisecond, unit)

	unit, err = ParseTimeUnit("1d")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, unit)

	_, err = ParseTimeUnit("soon")
	assert.Error(t, err)

	_, err = ParseTimeUnit("0s")
	assert.Error(t, err)
}

func TestWriteRead_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "equity.csv")

	series := &core.TimeSeries{
		Times:    []int64{time.Unix(10, 5).UnixNano(), time.Unix(20, 0).UnixNano()},
		Values:   []float64{100.25, 99},
		Datetime: true,
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, series))
	assert.Equal(t, "time,value\n1970-01-01T00:00:10.000000005Z,100.25\n1970-01-01T00:00:20Z,99\n", buf.String())

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	loaded, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "equity", loaded.Name)
	assert.Equal(t, series.Times, loaded.Times)
	assert.Equal(t, series.Values, loaded.Values)
	assert.True(t, loaded.Datetime)

	_, err = ReadFile(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWrite_LengthMismatch(t *testing.T) {
	err := Write(&bytes.Buffer{}, &core.TimeSeries{Times: []int64{1}})
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}
