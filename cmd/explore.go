package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oakwood-commons/navtree/internal/layout"
	"github.com/oakwood-commons/navtree/internal/replay"
	"github.com/oakwood-commons/navtree/internal/ui"
)

var (
	exploreFocus string
	exploreWatch bool
)

// stdinIsTerminal is swapped in tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var exploreCmd = &cobra.Command{
	Use:   "explore LAYOUT",
	Short: "Navigate a layout interactively",
	Long: `Explore opens a full-screen view of the layout's navigation tree. Key presses
go through the configured keymap and are resolved against the tree; the
focused path is highlighted and every focus notification is logged.

With --watch the layout is rebuilt whenever the file is saved; a layout that
fails to load leaves the previous tree in place.

Press ? for help and q to quit.`,
	Example: "  navtree explore examples/dashboard.yaml\n  navtree explore examples/menu.yaml --keymap vim --focus body/c2",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !stdinIsTerminal() {
			return errors.New("explore needs an interactive terminal; use 'navtree replay' for scripted runs")
		}
		ctx := cmd.Context()
		rc, err := loadRunConfig(ctx)
		if err != nil {
			return err
		}
		rec := replay.NewRecorder()
		load := func() (*layout.Tree, error) {
			return loadLayout(ctx, args[0], exploreFocus, rec.Observe)
		}
		tree, err := load()
		if err != nil {
			return err
		}
		opts := ui.Options{
			Theme:    rc.theme,
			NoColor:  rc.run.NoColor,
			LogLines: rc.file.Explorer.LogLines,
		}
		if exploreWatch {
			w, err := ui.NewWatcher(args[0])
			if err != nil {
				return err
			}
			defer w.Close()
			opts.Watch, opts.Reload = w, load
		}
		return ui.Run(ctx, ui.New(tree, rec, rc.keymap, opts))
	},
}

func init() { //nolint:gochecknoinits
	exploreCmd.Flags().StringVar(&exploreFocus, "focus", "", "initial focus path relative to the root, e.g. body/c2")
	exploreCmd.Flags().BoolVar(&exploreWatch, "watch", false, "reload the layout when the file changes")
}
