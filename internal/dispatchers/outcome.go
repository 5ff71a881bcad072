package dispatchers

// Action is what the router decided to do.
type Action int

const (
	ActionUsage Action = iota
	ActionCommandHelp
	ActionList
	ActionDispatch
)

func (a Action) String() string {
	switch a {
	case ActionUsage:
		return "usage"
	case ActionCommandHelp:
		return "command-help"
	case ActionList:
		return "list"
	case ActionDispatch:
		return "dispatch"
	default:
		return "unknown"
	}
}

const (
	// ExitEarly terminates after top-level help or a listing (255 on POSIX).
	ExitEarly = -1

	// ExitFailure terminates after a command returned an error.
	ExitFailure = 1
)

// Outcome is the router's decision. A non-zero ExitCode asks the caller to
// terminate with that code.
type Outcome struct {
	Action   Action
	ExitCode int
}

// Terminate reports whether the caller should exit with ExitCode.
func (o Outcome) Terminate() bool {
	return o.ExitCode != 0
}
