package app

import (
	"os"

	"github.com/footprint-tools/climux/internal/dispatchers"
	"github.com/footprint-tools/climux/internal/domain"
	"github.com/footprint-tools/climux/internal/log"
	"github.com/footprint-tools/climux/internal/usage"
)

// topLevelArgs is the record the top-level usage text decodes into.
type topLevelArgs struct {
	Command string   `docopt:"<command>"`
	Args    []string `docopt:"<args>"`
	Help    bool     `docopt:"help,--help"`
	List    bool     `docopt:"--list"`
	Verbose bool     `docopt:"--verbose"`
	Version bool     `docopt:"--version"`
}

// aborter is implemented by decoders that can report a usage.Error and
// terminate the way they do for their own parse failures.
type aborter interface {
	Abort(err *usage.Error)
}

// Runner drives one invocation of a tool: decode the top-level arguments,
// reject unknown commands, route, report.
type Runner struct {
	Name    string
	Usage   string // top-level usage text
	Version string // printed by --version when non-empty

	Table *dispatchers.Table

	// Decoder decodes subcommand usage texts.
	Decoder dispatchers.Decoder

	// TopLevelDecoder decodes Usage; Decoder is used when nil.
	TopLevelDecoder dispatchers.Decoder

	Logger domain.Logger
}

func (r *Runner) logger() domain.Logger {
	if r.Logger == nil {
		return log.NopLogger{}
	}
	return r.Logger
}

func (r *Runner) topLevelDecoder() dispatchers.Decoder {
	if r.TopLevelDecoder != nil {
		return r.TopLevelDecoder
	}
	return r.Decoder
}

// Decode runs the top-level decode step and validates the selected command.
// The second result is a non-zero exit code when decoding could not
// terminate the process itself.
func (r *Runner) Decode(argv []string, sh domain.Shell) (dispatchers.TopLevel, int) {
	var rec topLevelArgs
	r.topLevelDecoder().Decode(r.Usage, argv, r.Version, &rec)

	parsed := dispatchers.TopLevel{
		Selected: dispatchers.Selector(rec.Command),
		Args:     rec.Args,
		Help:     rec.Help,
		List:     rec.List,
		Verbose:  rec.Verbose,
	}

	if parsed.HasSelection() && !r.Table.Has(parsed.Selected) {
		suggestions := dispatchers.FindSimilarCommands(rec.Command, r.Table, dispatchers.DefaultSuggestions)
		uerr := usage.UnknownCommand(r.Name, rec.Command, suggestions...)
		r.logger().Debug("runner: unknown command %q, suggestions %q", rec.Command, suggestions)

		if a, ok := r.topLevelDecoder().(aborter); ok {
			a.Abort(uerr)
		}
		// Only reached when the decoder does not terminate
		sh.Error(uerr)
		return parsed, uerr.GetExitCode()
	}

	return parsed, 0
}

// Run executes one invocation against argv (without the program name)
// and returns the process exit status.
func (r *Runner) Run(argv []string, sh domain.Shell) int {
	lg := r.logger()
	lg.Debug("runner: %s argv=%q", r.Name, argv)

	parsed, code := r.Decode(argv, sh)
	if code != 0 {
		return code
	}

	sh.SetVerbose(parsed.Verbose)

	router := &dispatchers.Router{
		Usage:   r.Usage,
		Table:   r.Table,
		Decoder: r.Decoder,
		Logger:  lg,
	}

	outcome, err := router.Resolve(parsed, sh)
	if err != nil {
		lg.Error("runner: %s %s failed: %v", r.Name, parsed.Selected, err)
		sh.ErrorFull(err)
		return dispatchers.ExitFailure
	}

	lg.Debug("runner: outcome=%s exit=%d", outcome.Action, outcome.ExitCode)
	return outcome.ExitCode
}

// Main runs the invocation described by os.Args against application's
// shell and logger.
func (r *Runner) Main(application *domain.Application) int {
	if r.Logger == nil {
		r.Logger = application.Logger
	}
	return r.Run(os.Args[1:], application.Shell)
}
