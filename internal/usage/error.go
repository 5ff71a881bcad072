package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidArguments
	ErrUnknownCommand
	ErrInvalidUsageSpec
	ErrRecordMismatch
	ErrInvalidConfigKey
)

// Exit codes:
//
//	Exit 1: User input errors
//	  - Unknown errors
//	  - Arguments that do not match the usage text
//	  - Unknown command
//	  - Invalid config key
//
//	Exit 2: Programming errors in the tool itself
//	  - Usage text that is not a valid usage document
//	  - Options record that does not fit the usage text
var exitCodes = map[ErrorKind]int{
	ErrUnknown:          1,
	ErrInvalidArguments: 1,
	ErrUnknownCommand:   1,
	ErrInvalidUsageSpec: 2,
	ErrRecordMismatch:   2,
	ErrInvalidConfigKey: 1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	Usage    string // usage excerpt printed after Message, may be empty
	ExitCode int    // computed from Kind if zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Render returns the message followed by the usage excerpt, if any.
func (e *Error) Render() string {
	if e.Usage == "" {
		return e.Message
	}
	return e.Message + "\n\n" + e.Usage
}

var _ error = (*Error)(nil)
