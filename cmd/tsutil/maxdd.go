package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/StudioSol/set"
	"github.com/aybabtme/uniplot/histogram"
	"github.com/olekukonko/tablewriter"
	"github.com/raykavin/tsutil"
	"github.com/raykavin/tsutil/pkg/array"
	"github.com/raykavin/tsutil/pkg/core"
	"github.com/raykavin/tsutil/pkg/metric"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

const histogramBins = 15

type maxDDFlags struct {
	hist     bool
	progress bool
}

// drawdownReport is one row of the maxdd table
type drawdownReport struct {
	series   *core.TimeSeries
	maxDD    float64
	relative float64
	detail   metric.Drawdown
}

func buildMaxDDCmd(a *app) *cobra.Command {
	flags := &maxDDFlags{}

	maxDDCmd := &cobra.Command{
		Use:   "maxdd SOURCE...",
		Short: "Report the maximum drawdown of one or more series",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMaxDD(cmd, flags, args)
		},
	}

	maxDDCmd.Flags().BoolVar(&flags.hist, "hist", false, "Print a histogram of the underwater curve of each series")
	maxDDCmd.Flags().BoolVarP(&flags.progress, "progress", "p", false, "Show a progress bar while reading sources")

	return maxDDCmd
}

func (a *app) runMaxDD(cmd *cobra.Command, flags *maxDDFlags, args []string) error {
	sources := set.NewLinkedHashSetString(args...)

	var bar *progressbar.ProgressBar
	if flags.progress {
		bar = progressbar.NewOptions(sources.Length(),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("maxdd"),
			progressbar.OptionShowCount(),
		)
	}

	reports := make([]drawdownReport, 0, sources.Length())
	for source := range sources.Iter() {
		report, err := a.measure(source)
		if err != nil {
			return fmt.Errorf("%s: %w", source, err)
		}
		reports = append(reports, report)

		if bar != nil {
			if err := bar.Add(1); err != nil {
				a.log.Warnf("update progressbar fail: %v", err)
			}
		}
	}

	if bar != nil {
		if err := bar.Finish(); err != nil {
			a.log.Warnf("finish progressbar fail: %v", err)
		}
	}

	out := cmd.OutOrStdout()
	renderDrawdowns(out, reports)

	if flags.hist {
		for _, report := range reports {
			fmt.Fprintf(out, "\n%s underwater curve\n", report.series.Name)
			hist := histogram.Hist(histogramBins, metric.Drawdowns(report.series.Values))
			if err := histogram.Fprint(out, hist, histogram.Linear(10)); err != nil {
				return err
			}
		}
	}

	return nil
}

// measure loads one source and computes its drawdown figures
func (a *app) measure(source string) (drawdownReport, error) {
	series, err := a.loadSeries(source)
	if err != nil {
		return drawdownReport{}, err
	}

	maxDD, err := tsutil.MaxDD(array.Float64s(series.Values))
	if err != nil {
		return drawdownReport{}, err
	}

	a.log.WithField("series", series.Name).Debugf("max drawdown %.6f", maxDD)

	return drawdownReport{
		series:   series,
		maxDD:    maxDD,
		relative: metric.RelativeMaxDrawdown(series.Values),
		detail:   metric.MaxDrawdownDetail(series.Values),
	}, nil
}

func renderDrawdowns(out io.Writer, reports []drawdownReport) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Series", "Points", "Max DD", "Rel DD", "Peak", "Trough"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, report := range reports {
		table.Append([]string{
			report.series.Name,
			strconv.Itoa(report.series.Len()),
			fmt.Sprintf("%.4f", report.maxDD),
			fmt.Sprintf("%.2f %%", report.relative*100),
			pointTime(report.series, report.detail.PeakIndex),
			pointTime(report.series, report.detail.TroughIndex),
		})
	}

	table.Render()
}

// pointTime formats the time of the observation at idx, "-" when there is none
func pointTime(series *core.TimeSeries, idx int) string {
	if idx < 0 || idx >= series.Len() {
		return "-"
	}

	if series.Datetime {
		return time.Unix(0, series.Times[idx]).UTC().Format(time.RFC3339)
	}
	return strconv.FormatInt(series.Times[idx], 10)
}
