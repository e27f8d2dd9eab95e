package log

import (
	"io"
	"log"
	"os"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

// EnvLevel names the environment variable consulted by FromEnv.
const EnvLevel = "SKETCHTONE_LOG_LEVEL"

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
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

func LevelFromString(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "NONE", "OFF":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Logger writes leveled lines of the form "LEVEL: [COMPONENT] message".
// Loggers derived with With share the parent's output and level.
type Logger struct {
	logger *log.Logger
	level  *Level
	tag    string
}

func New(out io.Writer, level Level) *Logger {
	lv := level
	return &Logger{
		logger: log.New(out, "", 0), // No prefix, handled by format string
		level:  &lv,
	}
}

// FromEnv builds a stderr logger whose level comes from EnvLevel, falling
// back to def when the variable is unset.
func FromEnv(def Level) *Logger {
	if s, ok := os.LookupEnv(EnvLevel); ok {
		def = LevelFromString(s)
	}
	return New(os.Stderr, def)
}

// With returns a logger that tags every line with component.
func (l *Logger) With(component string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{
		logger: l.logger,
		level:  l.level,
		tag:    "[" + strings.ToUpper(component) + "] ",
	}
}

func (l *Logger) printf(lv Level, format string, v ...interface{}) {
	if l == nil || *l.level > lv {
		return
	}
	l.logger.Printf(lv.String()+": "+l.tag+format, v...)
}

func (l *Logger) Debugf(format string, v ...interface{}) { l.printf(LevelDebug, format, v...) }
func (l *Logger) Infof(format string, v ...interface{})  { l.printf(LevelInfo, format, v...) }
func (l *Logger) Warnf(format string, v ...interface{})  { l.printf(LevelWarn, format, v...) }
func (l *Logger) Errorf(format string, v ...interface{}) { l.printf(LevelError, format, v...) }

func (l *Logger) SetLevel(level Level) {
	*l.level = level
}

func (l *Logger) Level() Level {
	return *l.level
}
