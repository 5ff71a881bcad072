package dispatchers

// TopLevel is the decoded top-level invocation, built once per process.
type TopLevel struct {
	Selected Selector // "" when no command was given
	Args     []string // tokens after the command token
	Help     bool
	List     bool
	Verbose  bool
}

// HasSelection reports whether a command token was given.
func (p TopLevel) HasSelection() bool {
	return p.Selected != ""
}
