// Package logger provides a prefixed, colored logger for a single component.
package logger

import (
	"errors"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-tiles/config"
	"github.com/beka-birhanu/vinom-tiles/service/i"
)

var (
	ErrNilWriter   = errors.New("logger writer is nil")
	ErrEmptyPrefix = errors.New("logger prefix is empty")
)

var _ i.Logger = &Logger{}

// Logger writes "[PREFIX] [LEVEL] message" lines with ANSI colors.
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a logger for the named component writing to w.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Discard returns a logger that drops every message.
func Discard() *Logger {
	return &Logger{prefix: "DISCARD", out: log.New(io.Discard, "", 0)}
}

// Info implements i.Logger.
func (l *Logger) Info(msg string) {
	l.write(config.LogInfoColor, "INFO", msg)
}

// Warning implements i.Logger.
func (l *Logger) Warning(msg string) {
	l.write(config.LogWarningColor, "WARNING", msg)
}

// Error implements i.Logger.
func (l *Logger) Error(msg string) {
	l.write(config.LogErrorColor, "ERROR", msg)
}

func (l *Logger) write(levelColor, level, msg string) {
	l.out.Printf("%s[%s]%s %s[%s]%s %s", l.color, l.prefix, config.LogColorReset, levelColor, level, config.LogColorReset, msg)
}
