package usage

import "fmt"

// InvalidUsageSpec is returned when a usage text is not a valid usage
// document. It points at the tool, not the user.
func InvalidUsageSpec(cause error) *Error {
	return &Error{
		Kind:    ErrInvalidUsageSpec,
		Message: fmt.Sprintf("malformed usage text: %v", cause),
	}
}

// RecordMismatch is returned when decoded options cannot be stored in the
// command's record type.
func RecordMismatch(record any, cause error) *Error {
	return &Error{
		Kind:    ErrRecordMismatch,
		Message: fmt.Sprintf("options do not fit %T: %v", record, cause),
	}
}
