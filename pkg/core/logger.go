package core

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// ZerologLogger implements Logger on top of a zerolog.Logger
type ZerologLogger struct {
	log   zerolog.Logger
	level zerolog.Level
}

// NewZerologLogger creates a Logger that writes Printf calls at info level
func NewZerologLogger(log zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{log: log, level: zerolog.InfoLevel}
}

// WithLevel returns a copy of the logger that writes at the given level
func (zl *ZerologLogger) WithLevel(level zerolog.Level) *ZerologLogger {
	return &ZerologLogger{log: zl.log, level: level}
}

// Printf implements Logger
func (zl *ZerologLogger) Printf(format string, args ...interface{}) {
	zl.log.WithLevel(zl.level).Msg(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}

// NopLogger returns a Logger that discards everything
func NopLogger() Logger {
	return NewZerologLogger(zerolog.Nop())
}
