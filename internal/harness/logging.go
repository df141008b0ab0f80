package harness

import (
	"fmt"
	"os"
)

// Logger is the leveled logging interface the harness reports through. The
// harness only ever calls the interface; any implementation (including a
// no-op) must leave the run's pass/fail partition unaffected.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Verbose(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
}

// LogLevel controls which StderrLogger messages are emitted.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelVerbose
	LevelInfo
	LevelWarn
	LevelError
)

// StderrLogger writes leveled messages with structured fields to stderr.
type StderrLogger struct {
	level LogLevel
}

// NewStderrLogger creates a logger that suppresses messages below level.
func NewStderrLogger(level LogLevel) *StderrLogger {
	return &StderrLogger{level: level}
}

func (l *StderrLogger) log(level LogLevel, tag, msg string, fields []interface{}) {
	if level < l.level {
		return
	}
	if len(fields) == 0 {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", tag, msg)
		return
	}
	fmt.Fprintf(os.Stderr, "[%s] %s %v\n", tag, msg, fields)
}

func (l *StderrLogger) Debug(msg string, fields ...interface{}) {
	l.log(LevelDebug, "DEBUG", msg, fields)
}

func (l *StderrLogger) Verbose(msg string, fields ...interface{}) {
	l.log(LevelVerbose, "VERBOSE", msg, fields)
}

func (l *StderrLogger) Info(msg string, fields ...interface{}) {
	l.log(LevelInfo, "INFO", msg, fields)
}

func (l *StderrLogger) Warn(msg string, fields ...interface{}) {
	l.log(LevelWarn, "WARN", msg, fields)
}

func (l *StderrLogger) Error(msg string, fields ...interface{}) {
	l.log(LevelError, "ERROR", msg, fields)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, ...interface{})   {}
func (NopLogger) Verbose(string, ...interface{}) {}
func (NopLogger) Info(string, ...interface{})    {}
func (NopLogger) Warn(string, ...interface{})    {}
func (NopLogger) Error(string, ...interface{})   {}
