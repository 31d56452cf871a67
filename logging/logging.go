// Package logging provides the leveled, structured logger used by the command line tools.
package logging

import (
	"io"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Logger is the logging interface of this module. The library packages never log; the CLI does.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Error(args ...interface{})

	SetLevel(level Level)
	GetLevel() Level
	// Sublogger returns a logger named "<name>.<subname>" that shares the appenders of this one.
	Sublogger(subname string) Logger
	Sync() error
}

// NewWriterLogger returns a new logger that outputs logs at or above `level` to `writer` in UTC.
func NewWriterLogger(name string, level Level, writer io.Writer) Logger {
	return &impl{name, NewAtomicLevelAt(level), []Appender{NewWriterAppender(writer)}}
}

// NewObservedTestLogger returns a Debug+ logger that writes to the test object and also saves every
// entry to an in memory observer, so tests can assert on what was logged.
func NewObservedTestLogger(tb testing.TB) (Logger, *observer.ObservedLogs) {
	observerCore, observedLogs := observer.New(zap.LevelEnablerFunc(zapcore.DebugLevel.Enabled))
	return &impl{"", NewAtomicLevelAt(DEBUG), []Appender{NewTestAppender(tb), observerCore}}, observedLogs
}
