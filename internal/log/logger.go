package log

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/footprint-tools/climux/internal/domain"
)

// Level is the severity of a log entry.
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

func (l Level) logrus() logrus.Level {
	switch l {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelInfo:
		return logrus.InfoLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.WarnLevel
	}
}

// ParseLevel converts a string to a Level.
// Valid values: "debug", "info", "warn", "error" (case insensitive).
// Returns LevelWarn if the string is not recognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

// lineFormatter renders "[2006-01-02 15:04:05] LEVEL: message".
type lineFormatter struct{}

func (lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("[")
	b.WriteString(e.Time.Format("2006-01-02 15:04:05"))
	b.WriteString("] ")
	b.WriteString(levelName(e.Level))
	b.WriteString(": ")
	b.WriteString(strings.TrimRight(e.Message, "\n"))
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func levelName(l logrus.Level) string {
	switch l {
	case logrus.DebugLevel, logrus.TraceLevel:
		return LevelDebug.String()
	case logrus.InfoLevel:
		return LevelInfo.String()
	case logrus.WarnLevel:
		return LevelWarn.String()
	default:
		return LevelError.String()
	}
}

// Logger writes leveled lines to a file (or any writer) through logrus.
// It is safe for concurrent use.
type Logger struct {
	mu      sync.Mutex
	backend *logrus.Logger
	closer  io.Closer
	enabled bool
}

var (
	defaultLogger   *Logger
	defaultLoggerMu sync.RWMutex
)

// Init opens logPath and installs it as the package-level logger.
// Calling Init again replaces (and closes) the previous logger.
func Init(logPath string, minLevel Level) error {
	l, err := New(logPath, minLevel)
	if err != nil {
		return err
	}
	SetDefault(l)
	return nil
}

// SetDefault installs l as the package-level logger.
func SetDefault(l *Logger) {
	defaultLoggerMu.Lock()
	prev := defaultLogger
	defaultLogger = l
	defaultLoggerMu.Unlock()

	if prev != nil && prev != l {
		_ = prev.Close()
	}
}

// New creates a logger appending to logPath, created with 0600 permissions.
func New(logPath string, minLevel Level) (*Logger, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	// Tighten permissions on a pre-existing file before opening it
	if info, err := os.Stat(logPath); err == nil {
		if info.Mode().Perm() != 0600 {
			if err := os.Chmod(logPath, 0600); err != nil {
				return nil, fmt.Errorf("chmod existing log file: %w", err)
			}
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := NewTo(file, minLevel)
	l.closer = file
	return l, nil
}

// NewTo creates a logger writing to w. Closing it does not close w.
func NewTo(w io.Writer, minLevel Level) *Logger {
	backend := logrus.New()
	backend.SetOutput(w)
	backend.SetLevel(minLevel.logrus())
	backend.SetFormatter(lineFormatter{})

	return &Logger{
		backend: backend,
		enabled: true,
	}
}

// Close releases the underlying file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	c := l.closer
	l.closer = nil
	l.enabled = false
	return c.Close()
}

// SetEnabled turns logging on or off.
func (l *Logger) SetEnabled(enabled bool) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if l == nil || l.backend == nil {
		return
	}

	l.mu.Lock()
	enabled := l.enabled
	l.mu.Unlock()
	if !enabled {
		return
	}

	l.backend.Logf(level.logrus(), format, args...)
}

// Debug logs at debug level.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, format, args...)
}

// Info logs at info level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

// Warn logs at warn level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, format, args...)
}

// Error logs at error level.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}

func current() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// Debug logs to the package-level logger.
func Debug(format string, args ...interface{}) {
	current().Debug(format, args...)
}

// Info logs to the package-level logger.
func Info(format string, args ...interface{}) {
	current().Info(format, args...)
}

// Warn logs to the package-level logger.
func Warn(format string, args ...interface{}) {
	current().Warn(format, args...)
}

// Error logs to the package-level logger.
func Error(format string, args ...interface{}) {
	current().Error(format, args...)
}

// GetLogger returns the package-level logger, nil until Init succeeds.
// Packages without an injected domain.Logger log through it.
func GetLogger() *Logger {
	return current()
}

// NopLogger is a logger that discards all messages.
// Useful for testing or when logging is disabled.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (NopLogger) Close() error             { return nil }

var _ domain.Logger = (*Logger)(nil)
var _ domain.Logger = NopLogger{}
