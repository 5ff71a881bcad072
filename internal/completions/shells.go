package completions

import (
	"fmt"
	"io"
	"strings"
)

// Shell is a supported completion target.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Shells lists the supported shells.
var Shells = []Shell{ShellBash, ShellZsh, ShellFish}

// ParseShell validates a shell name.
func ParseShell(name string) (Shell, error) {
	s := Shell(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Shells {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("unsupported shell %q (want bash, zsh or fish)", name)
}

// Generate returns the completion script for shell.
func Generate(shell Shell, spec Spec) (string, error) {
	switch shell {
	case ShellBash:
		return GenerateBash(spec), nil
	case ShellZsh:
		return GenerateZsh(spec), nil
	case ShellFish:
		return GenerateFish(spec), nil
	default:
		return "", fmt.Errorf("unsupported shell %q", shell)
	}
}

// Write writes the completion script for shell to w.
func Write(w io.Writer, shell Shell, spec Spec) error {
	script, err := Generate(shell, spec)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, script)
	return err
}

// SourceInstructions returns the line that loads completions for tool.
func SourceInstructions(shell Shell, tool string) string {
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s completions %s)"`, tool, shell)
	case ShellFish:
		return fmt.Sprintf(`%s completions fish | source`, tool)
	default:
		return ""
	}
}

// RcFile returns the rc file path for the given shell
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}
