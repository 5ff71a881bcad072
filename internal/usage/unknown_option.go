package usage

import "strings"

// UnknownOption is returned when the tokens carry options the usage text
// does not declare.
func UnknownOption(excerpt string, options ...string) *Error {
	msg := "unknown option " + strings.Join(options, ", ")
	if len(options) > 1 {
		msg = "unknown options " + strings.Join(options, ", ")
	}
	return &Error{
		Kind:    ErrInvalidArguments,
		Message: msg,
		Usage:   excerpt,
	}
}
