package dispatchers

import (
	"strings"

	"github.com/footprint-tools/climux/internal/domain"
	"github.com/footprint-tools/climux/internal/log"
)

// Router turns a decoded top-level invocation into an Outcome.
type Router struct {
	Usage   string // top-level usage text
	Table   *Table
	Decoder Decoder
	Logger  domain.Logger
}

func (r *Router) logger() domain.Logger {
	if r.Logger == nil {
		return log.NopLogger{}
	}
	return r.Logger
}

// Resolve applies, first match wins: help, list, dispatch to the selected
// command, plain usage. Help and list return ExitEarly unless help names a
// command. A command's error is returned unchanged.
func (r *Router) Resolve(parsed TopLevel, sh domain.Shell) (Outcome, error) {
	lg := r.logger()

	if parsed.Help {
		if parsed.HasSelection() {
			entry := r.Table.mustLookup(parsed.Selected)
			lg.Debug("router: help for %q", parsed.Selected)
			_, _ = sh.Println(entry.Spec.Help())
			return Outcome{Action: ActionCommandHelp}, nil
		}

		lg.Debug("router: top-level help")
		_, _ = sh.Println(strings.TrimSpace(r.Usage))
		return Outcome{Action: ActionUsage, ExitCode: ExitEarly}, nil
	}

	if parsed.List {
		lg.Debug("router: listing %d commands", r.Table.Len())
		_, _ = sh.Print(FormatList(r.Table))
		return Outcome{Action: ActionList, ExitCode: ExitEarly}, nil
	}

	if parsed.HasSelection() {
		entry := r.Table.mustLookup(parsed.Selected)
		argv := entry.Forward(parsed.Args)
		lg.Debug("router: dispatch %q argv=%q", parsed.Selected, argv)
		return Outcome{Action: ActionDispatch}, entry.Invoke(r.Decoder, argv, sh)
	}

	lg.Debug("router: no command selected")
	_, _ = sh.Println(r.Usage)
	return Outcome{Action: ActionUsage}, nil
}
