// Package logger provides per-component loggers with a colored prefix,
// backed by logrus.
package logger

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

const colorReset = "\033[0m"

// Logger writes leveled, structured messages tagged with a component name.
type Logger struct {
	entry *logrus.Entry
}

// New creates a Logger that prefixes every line with [component] in the
// given terminal color and writes to out.
func New(component, color string, out io.Writer) (*Logger, error) {
	if component == "" {
		return nil, errors.New("logger: component name is required")
	}
	if out == nil {
		return nil, errors.New("logger: output writer is required")
	}

	base := logrus.New()
	base.SetOutput(out)
	base.SetFormatter(&prefixFormatter{
		prefix: color + "[" + component + "]" + colorReset + " ",
		inner: &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		},
	})

	return &Logger{entry: logrus.NewEntry(base)}, nil
}

// SetLevel sets the minimum level by name (debug, info, warning, error).
func (l *Logger) SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.entry.Logger.SetLevel(lvl)
	return nil
}

// WithFields returns a Logger that attaches fields to every message.
func (l *Logger) WithFields(fields logrus.Fields) *Logger {
	return &Logger{entry: l.entry.WithFields(fields)}
}

// Info logs at info level.
func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string) {
	l.entry.Debug(msg)
}

// Warning logs at warning level.
func (l *Logger) Warning(msg string) {
	l.entry.Warn(msg)
}

// Error logs at error level.
func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

type prefixFormatter struct {
	prefix string
	inner  logrus.Formatter
}

func (f *prefixFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	line, err := f.inner.Format(entry)
	if err != nil {
		return nil, err
	}
	return append([]byte(f.prefix), line...), nil
}
