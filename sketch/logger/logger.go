// Package logger adds levels and prefixes on top of a line-oriented sink
// such as hal.Logger.
package logger

import (
	"fmt"
	"strings"
	"time"
)

// Sink writes newline-delimited log lines. hal.Logger satisfies it.
type Sink interface {
	WriteLineString(s string)
}

// Level is a logging severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel accepts debug, info, warn (or warning) and error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger formats leveled lines. A nil *Logger discards everything.
type Logger struct {
	sink     Sink
	minLevel Level
	prefix   string
	now      func() time.Time
}

func New(sink Sink, minLevel Level) *Logger {
	return &Logger{sink: sink, minLevel: minLevel, now: time.Now}
}

// WithPrefix returns a sub-logger; prefixes nest as "a/b".
func (l *Logger) WithPrefix(prefix string) *Logger {
	if l == nil {
		return nil
	}
	p := prefix
	if l.prefix != "" {
		p = l.prefix + "/" + prefix
	}
	return &Logger{sink: l.sink, minLevel: l.minLevel, prefix: p, now: l.now}
}

func (l *Logger) Enabled(level Level) bool {
	return l != nil && l.sink != nil && level >= l.minLevel
}

func (l *Logger) log(level Level, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	var b strings.Builder
	b.WriteString(l.now().Format("15:04:05.000"))
	b.WriteByte(' ')
	b.WriteString(level.String())
	b.WriteByte(' ')
	if l.prefix != "" {
		b.WriteString("[" + l.prefix + "] ")
	}
	fmt.Fprintf(&b, format, args...)
	l.sink.WriteLineString(b.String())
}

func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }
