// Package feed reads and writes time series as CSV.
package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/raykavin/tsutil/pkg/core"
	"github.com/raykavin/tsutil/pkg/logger"
	"github.com/samber/lo"
	"github.com/xhit/go-str2duration/v2"
)

var (
	ErrEmptyFeed     = errors.New("empty feed")
	ErrMissingColumn = errors.New("missing column")
	ErrTimeFormat    = errors.New("invalid time")

	// Columns assumed when the file carries no header row
	defaultHeader = []string{"time", "value"}
)

const (
	DefaultTimeColumn  = "time"
	DefaultValueColumn = "value"
)

// Reader options
type options struct {
	name        string
	timeColumn  string
	valueColumn string
	unit        time.Duration
	log         logger.Logger
}

type Option func(*options)

// WithName sets the series name, by default the file base name for ReadFile
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithTimeColumn selects the column holding timestamps
func WithTimeColumn(column string) Option {
	return func(o *options) {
		o.timeColumn = column
	}
}

// WithValueColumn selects the column holding values, e.g. "close" for candle files
func WithValueColumn(column string) Option {
	return func(o *options) {
		o.valueColumn = column
	}
}

// WithTimeUnit marks integer timestamps as instants counted in unit since the Unix
// epoch. They are converted to nanoseconds and the series is flagged as datetime.
func WithTimeUnit(unit time.Duration) Option {
	return func(o *options) {
		o.unit = unit
	}
}

// WithLogger sets the logger used for diagnostics
func WithLogger(log logger.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// ParseTimeUnit parses a unit such as "1s", "1ms" or "1d"
func ParseTimeUnit(unit string) (time.Duration, error) {
	d, err := str2duration.ParseDuration(unit)
	if err != nil {
		return 0, fmt.Errorf("invalid time unit %q: %w", unit, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid time unit %q: must be positive", unit)
	}
	return d, nil
}

// ReadFile opens path and reads a series from it
func ReadFile(path string, opts ...Option) (*core.TimeSeries, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Read(file, append([]Option{WithName(name)}, opts...)...)
}

// Read parses a CSV time series. The header row is optional: when the first cell
// is already a timestamp the columns are taken as "time,value". Time cells are either
// integers or RFC3339 instants; RFC3339 marks the series as datetime.
func Read(r io.Reader, opts ...Option) (*core.TimeSeries, error) {
	o := &options{
		timeColumn:  DefaultTimeColumn,
		valueColumn: DefaultValueColumn,
		log:         logger.Nop{},
	}
	for _, opt := range opts {
		opt(o)
	}

	lines, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		return nil, ErrEmptyFeed
	}

	header, hasHeader := parseHeader(lines[0])
	if hasHeader {
		lines = lines[1:]
	}

	timeIdx, valueIdx, err := columnIndexes(header, o.timeColumn, o.valueColumn)
	if err != nil {
		return nil, err
	}

	series := &core.TimeSeries{
		Name:     o.name,
		Times:    make([]int64, 0, len(lines)),
		Values:   make([]float64, 0, len(lines)),
		Datetime: o.unit > 0,
	}

	var rfc3339 bool
	for i, line := range lines {
		row := i + 1
		if hasHeader {
			row++
		}

		if len(line) <= timeIdx || len(line) <= valueIdx {
			return nil, fmt.Errorf("line %d: %w", row, ErrMissingColumn)
		}

		t, isDatetime, err := parseTime(line[timeIdx], o.unit)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", row, err)
		}

		if i == 0 {
			rfc3339 = isDatetime
		} else if isDatetime != rfc3339 && o.unit == 0 {
			return nil, fmt.Errorf("line %d: %w: mixed integer and RFC3339 times", row, ErrTimeFormat)
		}
		series.Datetime = series.Datetime || isDatetime

		value, err := strconv.ParseFloat(strings.TrimSpace(line[valueIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", row, err)
		}

		series.Times = append(series.Times, t)
		series.Values = append(series.Values, value)
	}

	o.log.WithFields(map[string]any{
		"series":   series.Name,
		"rows":     series.Len(),
		"datetime": series.Datetime,
	}).Debug("series loaded")

	return series, nil
}

// parseHeader normalises the first row and reports whether it is a header
func parseHeader(first []string) ([]string, bool) {
	if _, _, err := parseTime(first[0], 0); err == nil {
		return defaultHeader, false
	}

	return lo.Map(first, func(column string, _ int) string {
		return strings.ToLower(strings.TrimSpace(column))
	}), true
}

func columnIndexes(header []string, timeColumn, valueColumn string) (int, int, error) {
	timeIdx := lo.IndexOf(header, strings.ToLower(timeColumn))
	if timeIdx < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMissingColumn, timeColumn)
	}

	valueIdx := lo.IndexOf(header, strings.ToLower(valueColumn))
	if valueIdx < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMissingColumn, valueColumn)
	}

	return timeIdx, valueIdx, nil
}

// parseTime reads an integer tick or an RFC3339 instant. Integers are scaled by unit
// when it is set.
func parseTime(cell string, unit time.Duration) (int64, bool, error) {
	cell = strings.TrimSpace(cell)

	if tick, err := strconv.ParseInt(cell, 10, 64); err == nil {
		if unit > 0 {
			if tick > math.MaxInt64/int64(unit) || tick < math.MinInt64/int64(unit) {
				return 0, false, fmt.Errorf("%w: %q overflows at unit %s", ErrTimeFormat, cell, unit)
			}
			return tick * int64(unit), false, nil
		}
		return tick, false, nil
	}

	ts, err := time.Parse(time.RFC3339Nano, cell)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", ErrTimeFormat, cell)
	}

	return ts.UnixNano(), true, nil
}

// Write encodes a series as "time,value" rows. Datetime series are written as
// RFC3339 instants in UTC.
func Write(w io.Writer, series *core.TimeSeries) error {
	if len(series.Times) != len(series.Values) {
		return fmt.Errorf("%w: %d times for %d values", core.ErrInvalidArgument, len(series.Times), len(series.Values))
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(defaultHeader); err != nil {
		return err
	}

	for i, t := range series.Times {
		if err := writer.Write([]string{
			formatTime(t, series.Datetime),
			strconv.FormatFloat(series.Values[i], 'f', -1, 64),
		}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatTime(t int64, datetime bool) string {
	if datetime {
		return time.Unix(0, t).UTC().Format(time.RFC3339Nano)
	}
	return strconv.FormatInt(t, 10)
}
