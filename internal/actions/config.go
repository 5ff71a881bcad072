package actions

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/climux/internal/dispatchers"
	"github.com/footprint-tools/climux/internal/domain"
	"github.com/footprint-tools/climux/internal/usage"
)

const configUsage = `Reads and writes settings in the rc file.

Usage:
  calc config [--list]
  calc config <key> [<value>]
  calc config --unset <key>

Options:
  -l, --list  List every setting
  --unset     Remove a setting, restoring its default
  -h, --help  Show this help
`

// Config gets, sets, unsets and lists settings.
type Config struct {
	List  bool   `docopt:"--list"`
	Unset bool   `docopt:"--unset"`
	Key   string `docopt:"<key>"`
	Value string `docopt:"<value>"`

	deps Deps
}

func NewConfig(deps Deps) func() dispatchers.Command {
	return func() dispatchers.Command { return &Config{deps: deps} }
}

func (c *Config) Name() string  { return "config" }
func (c *Config) Usage() string { return configUsage }

func (c *Config) Execute(sh domain.Shell) error {
	if c.Key == "" {
		return c.list(sh)
	}

	if !domain.IsValidConfigKey(c.Key) {
		return usage.InvalidConfigKey(c.deps.Tool, c.Key)
	}

	switch {
	case c.Unset:
		if err := c.deps.Config.Unset(c.Key); err != nil {
			return fmt.Errorf("unset %s: %w", c.Key, err)
		}
		sh.Verbosef("unset %s", c.Key)
		return nil
	case c.Value != "":
		if err := c.deps.Config.Set(c.Key, c.Value); err != nil {
			return fmt.Errorf("set %s: %w", c.Key, err)
		}
		sh.Verbosef("set %s=%s", c.Key, c.Value)
		return nil
	default:
		value, _ := c.deps.Config.Get(c.Key)
		_, err := sh.Println(value)
		return err
	}
}

func (c *Config) list(sh domain.Shell) error {
	values, err := c.deps.Config.GetAll()
	if err != nil {
		return err
	}

	var b strings.Builder
	section := ""
	for _, key := range domain.VisibleConfigKeys() {
		value, ok := values[key.Name]
		if key.HideIfEmpty && (!ok || value == "") {
			continue
		}
		if key.Section != section {
			if section != "" {
				b.WriteString("\n")
			}
			section = key.Section
			b.WriteString(c.header("# " + section))
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s=%s\n", key.Name, value)
	}

	sh.Pager(b.String())
	return nil
}

func (c *Config) header(text string) string {
	if c.deps.Styler == nil {
		return text
	}
	return c.deps.Styler.Header(text)
}
