package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/raykavin/tsutil"
	"github.com/raykavin/tsutil/pkg/array"
	"github.com/raykavin/tsutil/pkg/core"
	"github.com/raykavin/tsutil/pkg/feed"
	"github.com/spf13/cobra"
	"github.com/xhit/go-str2duration/v2"
)

type resampleFlags struct {
	source string
	at     string
	start  string
	end    string
	every  string
	output string
	interp bool
	strict bool
}

func buildResampleCmd(a *app) *cobra.Command {
	flags := &resampleFlags{}

	resampleCmd := &cobra.Command{
		Use:   "resample",
		Short: "Resample a series onto another time axis",
		Long: "Resample a series onto the time axis of another file (--at) or onto an evenly\n" +
			"spaced grid (--start, --end, --every). Values hold forward by default; --interp\n" +
			"interpolates linearly between observations.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runResample(cmd, flags)
		},
	}

	resampleCmd.Flags().StringVarP(&flags.source, "source", "s", "", "Source series file, or store:NAME")
	resampleCmd.Flags().StringVarP(&flags.at, "at", "a", "", "Series file (or store:NAME) whose times are the sample axis")
	resampleCmd.Flags().StringVar(&flags.start, "start", "", "First sample time (integer tick or RFC3339)")
	resampleCmd.Flags().StringVar(&flags.end, "end", "", "Last sample time (integer tick or RFC3339)")
	resampleCmd.Flags().StringVarP(&flags.every, "every", "e", "", "Sample spacing (ticks, or a duration such as 1h or 1d)")
	resampleCmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default stdout)")
	resampleCmd.Flags().BoolVarP(&flags.interp, "interp", "i", false, "Interpolate linearly instead of holding values")
	resampleCmd.Flags().BoolVar(&flags.strict, "strict", false, "Reject time axes that are not non-decreasing")

	resampleCmd.MarkFlagRequired("source")
	resampleCmd.MarkFlagsMutuallyExclusive("at", "start")

	return resampleCmd
}

func (a *app) runResample(cmd *cobra.Command, flags *resampleFlags) error {
	series, err := a.loadSeries(flags.source)
	if err != nil {
		return err
	}

	samples, datetime, err := a.sampleAxis(flags)
	if err != nil {
		return err
	}

	if datetime != series.Datetime {
		a.log.Warnf("source %s and sample axis use different time kinds", series.Name)
	}

	times, values := series.Arrays()
	sampleTimes := array.Int64s(samples)
	if datetime {
		sampleTimes = array.UnixNanos(samples)
	}

	var opts []tsutil.Option
	if flags.strict {
		opts = append(opts, tsutil.WithOrderCheck())
	}

	resampleFn := tsutil.Resample
	if flags.interp {
		resampleFn = tsutil.ResampleInterp
	}

	out, err := resampleFn(times, values, sampleTimes, opts...)
	if err != nil {
		return err
	}

	a.log.WithFields(map[string]any{
		"series":  series.Name,
		"source":  series.Len(),
		"samples": len(samples),
		"interp":  flags.interp,
	}).Info("series resampled")

	result := &core.TimeSeries{
		Name:     series.Name,
		Times:    samples,
		Values:   out.Float64s(),
		Datetime: datetime,
	}

	return writeSeries(cmd.OutOrStdout(), flags.output, result)
}

// sampleAxis builds the sample times from --at or from the grid flags
func (a *app) sampleAxis(flags *resampleFlags) ([]int64, bool, error) {
	if flags.at != "" {
		axis, err := a.loadSeries(flags.at)
		if err != nil {
			return nil, false, err
		}
		return axis.Times, axis.Datetime, nil
	}

	if flags.start == "" || flags.end == "" || flags.every == "" {
		return nil, false, errors.New("either --at or all of --start, --end and --every must be provided")
	}

	return parseGrid(flags.start, flags.end, flags.every)
}

// parseGrid reads either integer ticks with an integer step, or RFC3339 bounds with
// a duration step
func parseGrid(start, end, every string) ([]int64, bool, error) {
	startTick, errStart := strconv.ParseInt(start, 10, 64)
	endTick, errEnd := strconv.ParseInt(end, 10, 64)
	if errStart == nil && errEnd == nil {
		step, err := strconv.ParseInt(every, 10, 64)
		if err != nil {
			return nil, false, fmt.Errorf("invalid step %q for integer ticks: %w", every, err)
		}
		return core.Grid(startTick, endTick, step), false, nil
	}

	startTime, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return nil, false, fmt.Errorf("invalid start time: %w", err)
	}

	endTime, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return nil, false, fmt.Errorf("invalid end time: %w", err)
	}

	step, err := str2duration.ParseDuration(every)
	if err != nil {
		return nil, false, fmt.Errorf("invalid step: %w", err)
	}

	return core.Grid(startTime.UnixNano(), endTime.UnixNano(), int64(step)), true, nil
}

// writeSeries writes CSV to path, or to stdout when path is empty
func writeSeries(stdout io.Writer, path string, series *core.TimeSeries) error {
	if path == "" {
		return feed.Write(stdout, series)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := feed.Write(file, series); err != nil {
		return err
	}
	return file.Close()
}
