// Package decoder implements dispatchers.Decoder on top of docopt usage
// texts.
package decoder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"unicode"

	"github.com/docopt/docopt-go"

	"github.com/footprint-tools/climux/internal/dispatchers"
	"github.com/footprint-tools/climux/internal/domain"
	"github.com/footprint-tools/climux/internal/log"
	"github.com/footprint-tools/climux/internal/usage"
)

// Docopt decodes tokens against a docopt usage text and binds the result
// into a tagged record. Every failure is terminal: it is printed to Err and
// Exit is called with the usage.Error exit code.
type Docopt struct {
	Out    io.Writer
	Err    io.Writer
	Exit   func(code int) // must not return
	Logger domain.Logger

	// OptionsFirst stops option parsing at the first positional token, so
	// everything after a top-level <command> lands in <args>.
	OptionsFirst bool

	// SkipHelpFlags leaves -h/--help to the caller instead of printing the
	// usage text and exiting 0.
	SkipHelpFlags bool
}

// Option configures a Docopt.
type Option func(*Docopt)

// WithOutput sets the writers for help text and diagnostics.
func WithOutput(out, errOut io.Writer) Option {
	return func(d *Docopt) {
		d.Out = out
		d.Err = errOut
	}
}

// WithExit replaces os.Exit.
func WithExit(exit func(code int)) Option {
	return func(d *Docopt) {
		d.Exit = exit
	}
}

// WithLogger logs decode decisions at debug level.
func WithLogger(l domain.Logger) Option {
	return func(d *Docopt) {
		d.Logger = l
	}
}

// New returns a decoder for subcommand usage texts: options may appear
// anywhere and a declared --help prints the usage and exits 0.
func New(opts ...Option) *Docopt {
	d := &Docopt{
		Out:    os.Stdout,
		Err:    os.Stderr,
		Exit:   os.Exit,
		Logger: log.NopLogger{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewTopLevel returns a decoder for a tool's top-level usage text: options
// come first and --help is reported to the router rather than handled.
func NewTopLevel(opts ...Option) *Docopt {
	d := New(opts...)
	d.OptionsFirst = true
	d.SkipHelpFlags = true
	return d
}

// Decode implements dispatchers.Decoder.
func (d *Docopt) Decode(usageText string, argv []string, version string, into any) {
	if argv == nil {
		// docopt reads os.Args for a nil argv
		argv = []string{}
	}

	handled := false
	parser := &docopt.Parser{
		OptionsFirst:  d.OptionsFirst,
		SkipHelpFlags: d.SkipHelpFlags,
		HelpHandler: func(err error, output string) {
			handled = true
			if err != nil {
				d.Abort(invalidArguments(err, output, unknownOptions(usageText, argv, d.OptionsFirst)))
				return
			}
			// --help or --version
			d.Logger.Debug("decoder: printing help or version and exiting")
			_, _ = fmt.Fprintln(d.Out, output)
			d.Exit(0)
		},
	}

	opts, err := parser.ParseArgs(usageText, argv, version)
	if handled {
		return
	}
	if err != nil {
		d.Abort(usage.InvalidUsageSpec(err))
		return
	}

	pruneCommandWords(opts, into)
	if err := opts.Bind(into); err != nil {
		d.Abort(usage.RecordMismatch(into, err))
		return
	}

	d.Logger.Debug("decoder: bound %d keys into %T", len(opts), into)
}

// Abort prints err with its usage excerpt and exits with its exit code.
func (d *Docopt) Abort(err *usage.Error) {
	d.Logger.Debug("decoder: abort kind=%d code=%d: %s", err.Kind, err.GetExitCode(), err.Message)
	_, _ = fmt.Fprintln(d.Err, err.Render())
	d.Exit(err.GetExitCode())
}

// invalidArguments splits docopt's "message\nusage" output. docopt gives
// no message when the tokens simply fail to match; unknown names the
// options the usage text never declares, if any.
func invalidArguments(err error, output string, unknown []string) *usage.Error {
	detail := ""
	var userErr *docopt.UserError
	if errors.As(err, &userErr) {
		detail = userErr.Error()
	}
	excerpt := strings.TrimSpace(strings.TrimPrefix(output, detail))
	if detail == "" && len(unknown) > 0 {
		return usage.UnknownOption(excerpt, unknown...)
	}
	return usage.InvalidArguments(detail, excerpt)
}

// pruneCommandWords drops literal command keys ("sum" in "tool sum <a>")
// that into has no field for. Unmapped options and arguments are left in
// place so Bind still reports them.
func pruneCommandWords(opts docopt.Opts, into any) {
	fields := recordKeys(into)
	for key := range opts {
		if !isCommandWord(key) {
			continue
		}
		if fields[key] || fields[titleWord(key)] {
			continue
		}
		delete(opts, key)
	}
}

// recordKeys collects docopt tags and untagged exported field names of the
// struct into points at.
func recordKeys(into any) map[string]bool {
	keys := make(map[string]bool)

	v := reflect.ValueOf(into)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return keys
	}

	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() || field.Anonymous {
			continue
		}
		tag := field.Tag.Get("docopt")
		if tag == "" {
			keys[field.Name] = true
			continue
		}
		for _, t := range strings.Split(tag, ",") {
			keys[t] = true
		}
	}
	return keys
}

// isCommandWord reports whether key is a literal command rather than an
// option ("--x", "-x"), an argument ("<x>", "X") or "--".
func isCommandWord(key string) bool {
	if key == "" || strings.HasPrefix(key, "-") {
		return false
	}
	if strings.HasPrefix(key, "<") && strings.HasSuffix(key, ">") {
		return false
	}
	return strings.ToUpper(key) != key
}

// titleWord mirrors docopt's field guess for a command: "sum" -> "Sum".
func titleWord(key string) string {
	lower := []rune(strings.ToLower(key))
	lower[0] = unicode.ToUpper(lower[0])
	return string(lower)
}

var _ dispatchers.Decoder = (*Docopt)(nil)
