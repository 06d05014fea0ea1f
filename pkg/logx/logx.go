// Package logx wraps logrus behind a small package-level API so callers
// don't depend on the logging backend directly.
package logx

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Fields is a set of structured log fields
type Fields = logrus.Fields

// Level controls log verbosity
type Level uint32

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLevel sets the global log level
func SetLevel(level Level) {
	switch level {
	case LevelError:
		log.SetLevel(logrus.ErrorLevel)
	case LevelWarn:
		log.SetLevel(logrus.WarnLevel)
	case LevelDebug:
		log.SetLevel(logrus.DebugLevel)
	case LevelTrace:
		log.SetLevel(logrus.TraceLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
}

// WithField returns an entry with a single structured field attached
func WithField(key string, value any) *logrus.Entry {
	return log.WithField(key, value)
}

// WithFields returns an entry with the given fields attached
func WithFields(fields Fields) *logrus.Entry {
	return log.WithFields(fields)
}

// WithError returns an entry with the error attached under the "error" key
func WithError(err error) *logrus.Entry {
	return log.WithError(err)
}

func Trace(args ...any)                 { log.Trace(args...) }
func Debug(args ...any)                 { log.Debug(args...) }
func Info(args ...any)                  { log.Info(args...) }
func Warn(args ...any)                  { log.Warn(args...) }
func Error(args ...any)                 { log.Error(args...) }
func Fatal(args ...any)                 { log.Fatal(args...) }
func Debugf(format string, args ...any) { log.Debugf(format, args...) }
func Infof(format string, args ...any)  { log.Infof(format, args...) }
func Warnf(format string, args ...any)  { log.Warnf(format, args...) }
func Errorf(format string, args ...any) { log.Errorf(format, args...) }
func Fatalf(format string, args ...any) { log.Fatalf(format, args...) }
