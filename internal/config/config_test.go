package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/navtree/internal/keymap"
	"github.com/oakwood-commons/navtree/pkg/navtree"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "arrows", cfg.Keymap.Mode)
	assert.Equal(t, OutputTable, cfg.Output)
	assert.Equal(t, "114", cfg.Theme.Focused)
	assert.Equal(t, 8, cfg.Explorer.LogLines)
	assert.NoError(t, cfg.Validate())
	assert.NotEmpty(t, DefaultYAML())
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, "keymap:\n  mode: vim\n  bindings:\n    x: close\ntheme:\n  path: \"#ff8800\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "vim", cfg.Keymap.Mode)
	assert.Equal(t, map[string]string{"x": "close"}, cfg.Keymap.Bindings)
	assert.Equal(t, "#ff8800", cfg.Theme.Path)
	assert.Equal(t, "114", cfg.Theme.Focused, "unset keys keep defaults")
	assert.Equal(t, OutputTable, cfg.Output)

	km, err := cfg.NewKeymap("")
	require.NoError(t, err)
	assert.Equal(t, keymap.ModeVim, km.Mode())
	ev, ok := km.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, navtree.Event("close"), ev)

	km, err = cfg.NewKeymap("emacs")
	require.NoError(t, err)
	assert.Equal(t, keymap.ModeEmacs, km.Mode())
}

func TestLoadEmptyPathAndEmptyFile(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, def, cfg)

	cfg, err = Load(writeConfig(t, "\n"))
	require.NoError(t, err)
	assert.Equal(t, def, cfg)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "unknown key", body: "colour: red\n", want: "decode config"},
		{name: "bad mode", body: "keymap:\n  mode: function\n", want: `keymap.mode "function"`},
		{name: "bad binding", body: "keymap:\n  bindings:\n    <Hyper>: down\n", want: "keymap.bindings"},
		{name: "bad output", body: "output: csv\n", want: `output "csv"`},
		{name: "negative log lines", body: "explorer:\n  log_lines: -1\n", want: "log_lines"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "/explicit.yaml", ResolvePath("/explicit.yaml"))

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	assert.Empty(t, ResolvePath(""))

	dir := filepath.Join(xdg, "navtree")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: json\n"), 0o600))
	assert.Equal(t, path, ResolvePath(""))
}
