package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when the selected command is not registered.
// Suggestions, when present, are listed git-style.
func UnknownCommand(tool, command string, suggestions ...string) *Error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: '%s' is not a %s command. See '%s --list'.", tool, command, tool, tool)

	switch len(suggestions) {
	case 0:
	case 1:
		b.WriteString("\n\nThe most similar command is\n\t" + suggestions[0])
	default:
		b.WriteString("\n\nThe most similar commands are")
		for _, s := range suggestions {
			b.WriteString("\n\t" + s)
		}
	}

	return &Error{
		Kind:    ErrUnknownCommand,
		Message: b.String(),
	}
}
