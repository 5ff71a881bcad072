package domain

import (
	"io"
)

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Print prints to the output without a trailing newline.
	Print(args ...any) (int, error)

	// Pager displays content through a pager if appropriate.
	Pager(content string)
}

// Shell is the output sink handed down the dispatch chain. Exactly one
// Shell exists per invocation and it is passed by reference, so writes
// happen in call order.
type Shell interface {
	OutputWriter

	// SetVerbose toggles verbose output.
	SetVerbose(verbose bool)

	// Verbose reports whether verbose output is on.
	Verbose() bool

	// Verbosef prints only when verbose output is on.
	Verbosef(format string, args ...any)

	// Status prints a right-aligned status tag followed by a message.
	Status(tag, message string)

	// Warn prints a warning to the error stream.
	Warn(message string)

	// Error prints a single error line to the error stream.
	Error(err error)

	// ErrorFull prints err and every cause it wraps to the error stream.
	ErrorFull(err error)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string
}

// Application represents the main application context with all dependencies.
type Application struct {
	Name   string
	Config ConfigProvider
	Logger Logger
	Shell  Shell
	Styler Styler
}
