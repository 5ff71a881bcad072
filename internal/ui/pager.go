// Package ui provides the output sink shared by every command, including
// pager support.
//
// SECURITY NOTE: The pager functionality intentionally allows execution of
// arbitrary commands specified via config or $PAGER. This is standard
// behavior for CLI tools (similar to git, less, man) and requires local
// access to exploit. Users should only configure pagers they trust.
package ui

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/footprint-tools/climux/internal/log"
)

const defaultPager = "less -FRSX"

// Pager displays content through a pager if appropriate.
//
// Precedence:
//  1. pager disabled → direct output
//  2. output not a TTY → direct output
//  3. override → uses override, "cat" bypasses
//  4. config "pager" → uses configured pager, "cat" bypasses
//  5. $PAGER env var → uses env pager, "cat" bypasses
//  6. Default: "less -FRSX"
func (s *Shell) Pager(content string) {
	if s.pagerDisabled || !IsTerminal(s.out) {
		_, _ = fmt.Fprint(s.out, content)
		return
	}

	s.runPagerCmd(s.pagerCommand(), content)
}

// pagerCommand picks the pager command line by precedence.
func (s *Shell) pagerCommand() string {
	if s.pagerOverride != "" {
		return s.pagerOverride
	}
	if s.configGetter != nil {
		if configPager, ok := s.configGetter("pager"); ok && configPager != "" {
			return configPager
		}
	}
	if s.envGetter != nil {
		if envPager := s.envGetter("PAGER"); envPager != "" {
			return envPager
		}
	}
	return defaultPager
}

func isBypassPager(cmd string) bool {
	return strings.TrimSpace(cmd) == "cat"
}

// splitPager parses a pager command line with shell quoting rules,
// e.g. `less -R --prompt="page %d"`.
func splitPager(cmd string) ([]string, error) {
	return shellwords.Parse(cmd)
}

func (s *Shell) runPagerCmd(pagerCmd string, content string) {
	if isBypassPager(pagerCmd) {
		_, _ = fmt.Fprint(s.out, content)
		return
	}

	parts, err := splitPager(pagerCmd)
	if err != nil || len(parts) == 0 {
		log.Warn("pager: cannot parse %q: %v", pagerCmd, err)
		_, _ = fmt.Fprint(s.out, content)
		return
	}

	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = s.out
	cmd.Stderr = s.err

	if err := cmd.Run(); err != nil {
		log.Warn("pager: %q failed, writing directly: %v", pagerCmd, err)
		_, _ = fmt.Fprint(s.out, content)
	}
}
