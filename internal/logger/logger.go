package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// Level orders log records by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a config string to a Level, defaulting to info.
func ParseLevel(lvl string) Level {
	switch strings.ToLower(lvl) {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes timestamped, leveled records to a log file, optionally
// mirroring them to stderr. Stdout stays clean for the batch output and
// stderr for progress markers, so the mirror is only enabled for
// verbose runs.
type Logger struct {
	out    *log.Logger
	file   *os.File
	mirror io.Writer
	level  Level
}

// New opens (or appends to) the log file at path.
func New(path string, level Level, mirrorStderr bool) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := &Logger{
		out:   log.New(f, "", 0),
		file:  f,
		level: level,
	}
	if mirrorStderr {
		l.mirror = os.Stderr
	}
	return l, nil
}

// NewWriter builds a Logger backed by an arbitrary writer. Used by
// tests and by Discard.
func NewWriter(w io.Writer, level Level) *Logger {
	return &Logger{out: log.New(w, "", 0), level: level}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return NewWriter(io.Discard, LevelError+1)
}

// Close releases the underlying log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *Logger) log(lvl Level, tag, format string, v ...any) {
	if lvl < l.level {
		return
	}

	msg := fmt.Sprintf("%s [%s] %s",
		time.Now().Format("2006-01-02 15:04:05"), tag, fmt.Sprintf(format, v...))

	l.out.Println(msg)
	if l.mirror != nil {
		fmt.Fprintln(l.mirror, msg)
	}
}

func (l *Logger) Debug(format string, v ...any) { l.log(LevelDebug, "DEBUG", format, v...) }
func (l *Logger) Info(format string, v ...any)  { l.log(LevelInfo, "INFO", format, v...) }
func (l *Logger) Warn(format string, v ...any)  { l.log(LevelWarn, "WARN", format, v...) }
func (l *Logger) Error(format string, v ...any) { l.log(LevelError, "ERROR", format, v...) }
