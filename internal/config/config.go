// Package config loads the navtree configuration file.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/navtree/internal/keymap"
	"github.com/oakwood-commons/navtree/pkg/settings"
)

//go:embed default_config.yaml
var embeddedDefaultConfig []byte

// Output formats understood by commands that print results.
const (
	OutputTable = "table"
	OutputTree  = "tree"
	OutputYAML  = "yaml"
	OutputJSON  = "json"
)

// OutputFormats lists every output format.
var OutputFormats = []string{OutputTable, OutputTree, OutputYAML, OutputJSON}

// File is the merged configuration.
type File struct {
	Keymap   KeymapConfig   `yaml:"keymap" json:"keymap"`
	Theme    ThemeConfig    `yaml:"theme" json:"theme"`
	Output   string         `yaml:"output" json:"output"`
	Explorer ExplorerConfig `yaml:"explorer" json:"explorer"`
}

// KeymapConfig selects the key mode and extra bindings.
type KeymapConfig struct {
	Mode     string            `yaml:"mode" json:"mode"`
	Bindings map[string]string `yaml:"bindings" json:"bindings"`
}

// ThemeConfig holds colour strings for tree rendering.
type ThemeConfig struct {
	Focused string `yaml:"focused" json:"focused"`
	Path    string `yaml:"path" json:"path"`
	Idle    string `yaml:"idle" json:"idle"`
}

// ExplorerConfig tunes the interactive explorer.
type ExplorerConfig struct {
	LogLines int `yaml:"log_lines" json:"log_lines"`
}

// DefaultYAML returns a copy of the embedded default config.
func DefaultYAML() []byte {
	return append([]byte(nil), embeddedDefaultConfig...)
}

// Default parses the embedded default config.
func Default() (File, error) {
	var cfg File
	if err := decodeInto(embeddedDefaultConfig, &cfg); err != nil {
		return cfg, fmt.Errorf("decode embedded default config: %w", err)
	}
	return cfg, nil
}

// Load merges the config file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (File, error) {
	cfg, err := Default()
	if err != nil {
		return cfg, err
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := decodeInto(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeInto(data []byte, cfg *File) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(cfg)
}

// Validate reports every invalid value.
func (f File) Validate() error {
	var errs []error
	if mode := f.Keymap.Mode; mode != "" && !keymap.IsValidMode(mode) {
		errs = append(errs, fmt.Errorf("keymap.mode %q is not one of arrows, vim, emacs", mode))
	} else if _, err := keymap.New(keymap.Mode(mode), f.Keymap.Bindings); err != nil {
		errs = append(errs, fmt.Errorf("keymap.bindings: %w", err))
	}
	if f.Output != "" && !slices.Contains(OutputFormats, f.Output) {
		errs = append(errs, fmt.Errorf("output %q is not one of %s", f.Output, strings.Join(OutputFormats, ", ")))
	}
	if f.Explorer.LogLines < 0 {
		errs = append(errs, errors.New("explorer.log_lines must not be negative"))
	}
	return errors.Join(errs...)
}

// NewKeymap builds the configured keymap. A non-empty mode replaces the
// configured one.
func (f File) NewKeymap(mode string) (*keymap.Keymap, error) {
	if mode == "" {
		mode = f.Keymap.Mode
	}
	return keymap.New(keymap.Mode(mode), f.Keymap.Bindings)
}

// ResolvePath returns explicit if set, otherwise
// $XDG_CONFIG_HOME/navtree/config.yaml or ~/.config/navtree/config.yaml
// when that file exists, otherwise "".
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	candidate := ""
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		candidate = filepath.Join(xdg, settings.CliBinaryName, "config.yaml")
	} else if home, err := os.UserHomeDir(); err == nil {
		candidate = filepath.Join(home, ".config", settings.CliBinaryName, "config.yaml")
	}
	if candidate != "" {
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
	}
	return ""
}
