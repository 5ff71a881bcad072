package config

import (
	"fmt"

	"github.com/footprint-tools/climux/internal/domain"
	"github.com/footprint-tools/climux/internal/log"
	"github.com/footprint-tools/climux/internal/paths"
)

// Provider reads and edits one application's rc file and implements
// domain.ConfigProvider.
type Provider struct {
	app  string
	path string
}

// NewProvider creates a provider for the rc file of app.
func NewProvider(app string) (*Provider, error) {
	path, err := paths.ConfigFilePath(app)
	if err != nil {
		return nil, fmt.Errorf("config: locate rc file: %w", err)
	}
	return &Provider{app: app, path: path}, nil
}

// NewProviderAt creates a provider for an explicit rc file path.
func NewProviderAt(app, path string) *Provider {
	return &Provider{app: app, path: path}
}

// Path returns the rc file path.
func (p *Provider) Path() string {
	return p.path
}

// Get returns the value for a configuration key, falling back to its default.
func (p *Provider) Get(key string) (string, bool) {
	cfg, _ := Load(p.path)
	value, ok := cfg[key]
	return value, ok
}

// GetAll returns all configuration values merged over defaults.
func (p *Provider) GetAll() (map[string]string, error) {
	return Load(p.path)
}

// Set sets a configuration value.
func (p *Provider) Set(key, value string) error {
	return p.edit(func(lines []string) []string {
		lines, _ = Set(lines, key, value)
		return lines
	})
}

// Unset removes a configuration value.
func (p *Provider) Unset(key string) error {
	return p.edit(func(lines []string) []string {
		lines, _ = Unset(lines, key)
		return lines
	})
}

func (p *Provider) edit(fn func([]string) []string) error {
	err := WithLock(p.path, func() error {
		lines, err := ReadLines(p.path)
		if err != nil {
			return fmt.Errorf("config: read %s: %w", p.path, err)
		}
		if len(lines) == 0 {
			log.Debug("config: initializing %s", p.path)
			lines = initializeDefaults(p.app)
		}
		return WriteLines(p.path, fn(lines))
	})
	if err != nil {
		log.Error("config: edit %s: %v", p.path, err)
		return err
	}
	log.Info("config: wrote %s", p.path)
	return nil
}

var _ domain.ConfigProvider = (*Provider)(nil)
