package zerolog

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/goterm/term"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Options configures New
type Options struct {
	Level      string // zerolog level name, e.g. "info"
	TimeLayout string // layout of the console timestamp column
	Colored    bool
	JSON       bool // raw JSON lines instead of the console layout
}

// New builds a logger writing to out and wraps it in an Adapter
func New(out io.Writer, opts Options) (*Adapter, error) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}
	zerolog.SetGlobalLevel(level)

	if opts.JSON {
		l := zerolog.New(out).With().Timestamp().Logger()
		return NewAdapter(&l), nil
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    !opts.Colored,
		TimeFormat: opts.TimeLayout,
	}

	if opts.Colored {
		output.FormatLevel = formatLevel
		output.FormatCaller = formatCaller
		output.FormatTimestamp = func(i interface{}) string {
			return formatTimestamp(i, opts.TimeLayout)
		}
	}

	l := zerolog.New(output).
		With().
		Timestamp().
		CallerWithSkipFrameCount(3).
		Logger()

	return NewAdapter(&l), nil
}

func formatLevel(i interface{}) string {
	level, ok := i.(string)
	if !ok {
		return term.Whitef("[UNK]")
	}

	switch level {
	case zerolog.LevelTraceValue:
		return term.Cyanf("[TRC]")
	case zerolog.LevelDebugValue:
		return term.Cyanf("[DBG]")
	case zerolog.LevelInfoValue:
		return term.Greenf("[INF]")
	case zerolog.LevelWarnValue:
		return term.Yellowf("[WAR]")
	case zerolog.LevelErrorValue:
		return term.Redf("[ERR]")
	default:
		return term.Whitef("[UNK]")
	}
}

func formatCaller(i interface{}) string {
	const maxFileSize = 18

	fname, ok := i.(string)
	if !ok || len(fname) == 0 {
		return ""
	}

	caller := filepath.Base(fname)
	file, line, found := strings.Cut(caller, ":")
	if !found {
		return caller
	}

	if len(file) > maxFileSize {
		file = file[:maxFileSize]
	}

	return term.Yellowf("[%-*s:%4s]", maxFileSize, file, line)
}

func formatTimestamp(i interface{}, layout string) string {
	raw, ok := i.(string)
	if !ok {
		return term.Cyanf("[%v]", i)
	}

	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		raw = ts.In(time.Local).Format(layout)
	}

	return term.Cyanf("[%s]", raw)
}
