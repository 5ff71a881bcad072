package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/footprint-tools/climux/internal/domain"
	"github.com/footprint-tools/climux/internal/ui/style"
)

// Shell implements domain.Shell on top of an out and an err writer.
// One Shell serves one invocation.
type Shell struct {
	out           io.Writer
	err           io.Writer
	verbose       bool
	pagerDisabled bool
	pagerOverride string
	configGetter  func(string) (string, bool)
	envGetter     func(string) string
	styler        domain.Styler
}

// ShellOption configures a Shell.
type ShellOption func(*Shell)

// WithPagerDisabled disables the pager.
func WithPagerDisabled() ShellOption {
	return func(s *Shell) {
		s.pagerDisabled = true
	}
}

// WithPagerOverride sets a pager command override.
func WithPagerOverride(cmd string) ShellOption {
	return func(s *Shell) {
		s.pagerOverride = cmd
	}
}

// WithConfigGetter sets the config getter function.
func WithConfigGetter(fn func(string) (string, bool)) ShellOption {
	return func(s *Shell) {
		s.configGetter = fn
	}
}

// WithEnvGetter sets the environment variable getter function.
func WithEnvGetter(fn func(string) string) ShellOption {
	return func(s *Shell) {
		s.envGetter = fn
	}
}

// WithStyler sets the styler used for status tags and diagnostics.
func WithStyler(st domain.Styler) ShellOption {
	return func(s *Shell) {
		s.styler = st
	}
}

// NewShell creates a Shell bound to stdout and stderr.
func NewShell(opts ...ShellOption) *Shell {
	return NewShellTo(os.Stdout, os.Stderr, opts...)
}

// NewShellTo creates a Shell writing to out and errOut.
func NewShellTo(out, errOut io.Writer, opts ...ShellOption) *Shell {
	s := &Shell{
		out:       out,
		err:       errOut,
		envGetter: os.Getenv,
		styler:    style.NopStyler{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Write implements io.Writer.
func (s *Shell) Write(p []byte) (n int, err error) {
	return s.out.Write(p)
}

// Printf formats and prints to the output.
func (s *Shell) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(s.out, format, args...)
}

// Println prints a line to the output.
func (s *Shell) Println(args ...any) (int, error) {
	return fmt.Fprintln(s.out, args...)
}

// Print prints to the output.
func (s *Shell) Print(args ...any) (int, error) {
	return fmt.Fprint(s.out, args...)
}

// SetVerbose toggles verbose output.
func (s *Shell) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// Verbose reports whether verbose output is on.
func (s *Shell) Verbose() bool {
	return s.verbose
}

// Verbosef prints a line only when verbose output is on.
func (s *Shell) Verbosef(format string, args ...any) {
	if !s.verbose {
		return
	}
	line := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	_, _ = io.WriteString(s.out, line)
}

// statusWidth right-aligns status tags, e.g. "   Compiling foo".
const statusWidth = 12

// Status prints a right-aligned tag followed by message.
func (s *Shell) Status(tag, message string) {
	pad := ""
	if n := statusWidth - len(tag); n > 0 {
		pad = strings.Repeat(" ", n)
	}
	_, _ = fmt.Fprintf(s.err, "%s%s %s\n", pad, s.styler.Success(tag), message)
}

// Warn prints "warning: message" to the error stream.
func (s *Shell) Warn(message string) {
	_, _ = fmt.Fprintf(s.err, "%s %s\n", s.styler.Warning("warning:"), message)
}

// Error prints "error: <err>" to the error stream.
func (s *Shell) Error(err error) {
	if err == nil {
		return
	}
	_, _ = fmt.Fprintf(s.err, "%s %s\n", s.styler.Error("error:"), err)
}

// ErrorFull prints err followed by a "Caused by:" section listing every
// error it wraps, outermost first. Wrapped text repeated at the end of an
// outer message (the "outer: inner" shape of %w) is trimmed.
func (s *Shell) ErrorFull(err error) {
	if err == nil {
		return
	}

	chain := causeChain(err)
	_, _ = fmt.Fprintf(s.err, "%s %s\n", s.styler.Error("error:"), chain[0])
	if len(chain) == 1 {
		return
	}

	_, _ = fmt.Fprintf(s.err, "\n%s\n", s.styler.Header("Caused by:"))
	for _, msg := range chain[1:] {
		_, _ = fmt.Fprintf(s.err, "  %s\n", msg)
	}
}

// causeChain flattens err into display messages, depth first.
func causeChain(err error) []string {
	var out []string
	var walk func(e error)
	walk = func(e error) {
		causes := unwrapAll(e)
		msg := e.Error()
		texts := make([]string, 0, len(causes))
		for _, c := range causes {
			texts = append(texts, c.Error())
			msg = strings.TrimSuffix(msg, ": "+c.Error())
		}
		// errors.Join carries no text of its own
		if len(causes) > 1 && msg == strings.Join(texts, "\n") {
			msg = ""
		}
		if msg != "" {
			out = append(out, msg)
		}
		for _, c := range causes {
			walk(c)
		}
	}
	walk(err)

	if len(out) == 0 {
		out = append(out, err.Error())
	}
	return out
}

func unwrapAll(err error) []error {
	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		var causes []error
		for _, c := range multi.Unwrap() {
			if c != nil {
				causes = append(causes, c)
			}
		}
		return causes
	}
	if c := errors.Unwrap(err); c != nil {
		return []error{c}
	}
	return nil
}

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// IsTerminal reports whether the Shell's output is a terminal.
func (s *Shell) IsTerminal() bool {
	return IsTerminal(s.out)
}

var _ domain.Shell = (*Shell)(nil)
