package dispatchers

import "github.com/footprint-tools/climux/internal/domain"

// Selector is the top-level token naming a registered command.
type Selector string

// Invoker decodes argv into a fresh record of one concrete command type
// and executes it.
type Invoker func(dec Decoder, argv []string, sh domain.Shell) error

// RouteEntry binds a selector to a command.
type RouteEntry struct {
	Selector Selector
	Spec     CommandSpec
	Invoke   Invoker
}

// Route builds a RouteEntry from a factory returning a new, zero-valued
// record on every call. The factory runs once here to capture its CommandSpec and
// once per invocation.
func Route(sel Selector, factory func() Command) RouteEntry {
	return RouteEntry{
		Selector: sel,
		Spec:     SpecOf(factory()),
		Invoke: func(dec Decoder, argv []string, sh domain.Shell) error {
			cmd := factory()
			dec.Decode(cmd.Usage(), argv, "", cmd)
			return cmd.Execute(sh)
		},
	}
}

// DisplayName is the name shown in listings: the command name, or the
// selector for anonymous commands.
func (e RouteEntry) DisplayName() string {
	if e.Spec.Anonymous() {
		return string(e.Selector)
	}
	return e.Spec.Name
}

// Forward builds the tokens handed to the command's decoder: args, with
// the command name in front when the command is named.
func (e RouteEntry) Forward(args []string) []string {
	if e.Spec.Anonymous() {
		return append([]string(nil), args...)
	}
	out := make([]string, 0, len(args)+1)
	out = append(out, e.Spec.Name)
	return append(out, args...)
}
