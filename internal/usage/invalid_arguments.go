package usage

// InvalidArguments is returned when the tokens do not match the usage text.
// detail is the parser's diagnostic and excerpt the usage section to show.
func InvalidArguments(detail, excerpt string) *Error {
	msg := detail
	if msg == "" {
		msg = "Invalid arguments."
	}
	return &Error{
		Kind:    ErrInvalidArguments,
		Message: msg,
		Usage:   excerpt,
	}
}

// InvalidConfigKey is returned for a key that no setting recognises.
func InvalidConfigKey(tool, key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: tool + ": unknown config key '" + key + "'. See '" + tool + " config --list'.",
	}
}
