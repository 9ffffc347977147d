package log

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
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
	case "INFO", "WARN", "WARNING":
		return LevelInfo
	case "ERROR":
		return LevelError
	case "NONE", "OFF":
		return LevelNone
	default:
		return LevelDebug // Default to DEBUG
	}
}

// logrusLevel maps our levels onto logrus. Warnings share the Info threshold,
// so LevelInfo maps to logrus' Info (which lets Warn through as well).
func (l Level) logrusLevel() logrus.Level {
	switch l {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelInfo:
		return logrus.InfoLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.PanicLevel // nothing below panic is emitted
	}
}

// Logger is a levelled logger backed by logrus. Child loggers created with
// WithField share the parent's output and level.
type Logger struct {
	entry *logrus.Entry
	level *Level
}

func New(out io.Writer, level Level) *Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	l.SetLevel(level.logrusLevel())
	lv := level
	return &Logger{entry: logrus.NewEntry(l), level: &lv}
}

// WithField returns a child logger that tags every line with key=value.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value), level: l.level}
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	l.entry.Debugf(format, v...)
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.entry.Infof(format, v...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.entry.Errorf(format, v...)
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	l.entry.Warnf(format, v...)
}

func (l *Logger) SetLevel(level Level) {
	*l.level = level
	l.entry.Logger.SetLevel(level.logrusLevel())
}

func (l *Logger) Level() Level {
	return *l.level
}
