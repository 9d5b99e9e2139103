// Package logger declares the logging contract used by the feed, storage and CLI layers.
package logger

type Level int8

const (
	Disabled   Level = -1   // Disabled turns logging off.
	TraceLevel Level = iota // TraceLevel is used for per-row parsing details.
	DebugLevel              // DebugLevel is used for debugging information.
	InfoLevel               // InfoLevel is used for informational messages.
	WarnLevel               // WarnLevel is used for recoverable problems.
	ErrorLevel              // ErrorLevel is used for failed operations.
	NoLevel                 // NoLevel is used when the level is unknown.
)

type Logger interface {
	WithField(key string, value any) Logger  // WithField returns a logger with the given key-value pair.
	WithFields(fields map[string]any) Logger // WithFields returns a logger with the given fields.
	WithError(err error) Logger              // WithError returns a logger carrying err.

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	SetLevel(level Level)
	GetLevel() Level
}

// Nop discards everything; it is the default for library components
type Nop struct{}

func (n Nop) WithField(string, any) Logger { return n }
func (n Nop) WithFields(map[string]any) Logger { return n }
func (n Nop) WithError(error) Logger { return n }
func (Nop) Debug(...any) {}
func (Nop) Info(...any) {}
func (Nop) Warn(...any) {}
func (Nop) Error(...any) {}
func (Nop) Debugf(string, ...any) {}
func (Nop) Infof(string, ...any) {}
func (Nop) Warnf(string, ...any) {}
func (Nop) Errorf(string, ...any) {}
func (Nop) SetLevel(Level) {}
func (Nop) GetLevel() Level { return Disabled }
