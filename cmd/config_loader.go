package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/navtree/internal/config"
	"github.com/oakwood-commons/navtree/internal/keymap"
	"github.com/oakwood-commons/navtree/internal/layout"
	"github.com/oakwood-commons/navtree/internal/render"
	"github.com/oakwood-commons/navtree/pkg/logger"
	"github.com/oakwood-commons/navtree/pkg/navtree"
	"github.com/oakwood-commons/navtree/pkg/settings"
)

// runConfig is everything a command needs from flags and the config file.
type runConfig struct {
	run    *settings.Run
	path   string
	file   config.File
	keymap *keymap.Keymap
	theme  render.Theme
}

// loadRunConfig merges the config file over the embedded defaults and
// applies flag overrides from the run settings in ctx.
func loadRunConfig(ctx context.Context) (*runConfig, error) {
	run := settings.FromContextOrDefault(ctx)
	path := config.ResolvePath(run.ConfigFile)
	file, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	km, err := file.NewKeymap(run.KeyMode)
	if err != nil {
		return nil, err
	}
	if path != "" {
		logger.FromContext(ctx).V(1).Info("loaded config", "path", path)
	}
	return &runConfig{
		run:    run,
		path:   path,
		file:   file,
		keymap: km,
		theme:  render.ThemeFromColors(file.Theme.Focused, file.Theme.Path, file.Theme.Idle),
	}, nil
}

// effectiveOutput returns the flag value when set, else the configured
// default.
func (rc *runConfig) effectiveOutput(cmd *cobra.Command, flag *outputFormat) string {
	if f := cmd.Flags().Lookup("output"); (f != nil && f.Changed) || rc.file.Output == "" {
		return flag.String()
	}
	return rc.file.Output
}

// loadLayout reads, validates and builds a layout file, then applies an
// explicit initial focus path when one is given.
func loadLayout(ctx context.Context, path, focus string, observe func(*navtree.Node) navtree.NotifyFunc) (*layout.Tree, error) {
	lgr := logger.WithValues(logger.FromContext(ctx), logger.LayoutKey, path)
	doc, err := layout.LoadFile(path)
	if err != nil {
		return nil, err
	}
	tree, err := layout.Build(doc, layout.BuildOptions{Logger: *lgr, Observe: observe})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if focus != "" {
		ids := layout.SplitPath(focus)
		if _, err := tree.Lookup(ids...); err != nil {
			return nil, fmt.Errorf("--focus %q: %w", focus, err)
		}
		if err := tree.Root.FocusPath(ids...); err != nil {
			return nil, fmt.Errorf("--focus %q: %w", focus, err)
		}
	}
	lgr.V(1).Info("layout built", "focused", tree.Root.FocusedPath())
	return tree, nil
}
