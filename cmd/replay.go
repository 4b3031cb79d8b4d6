package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/navtree/internal/config"
	"github.com/oakwood-commons/navtree/internal/layout"
	"github.com/oakwood-commons/navtree/internal/render"
	"github.com/oakwood-commons/navtree/internal/replay"
	"github.com/oakwood-commons/navtree/pkg/logger"
	"github.com/oakwood-commons/navtree/pkg/navtree"
)

var (
	replayPress  []string
	replayFocus  string
	replayOutput = newOutputFormat(config.OutputTable)
)

var replayCmd = &cobra.Command{
	Use:   "replay LAYOUT [EVENT...]",
	Short: "Apply a sequence of events to a layout and report each step",
	Long: `Replay builds the layout, then resolves each event in order and reports the
outcome, the focused path afterwards and every focus notification fired.

Events are given as arguments (up, down, left, right, enter, back or any custom
name; commas separate several in one argument) and/or as key presses with
--press, which go through the configured keymap. Arguments come first.`,
	Example: "  navtree replay examples/menu.yaml down right enter\n  navtree replay examples/menu.yaml --press '<Down><Right>' -o json\n  navtree replay examples/dashboard.yaml --keymap vim --press jjl -o tree",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rc, err := loadRunConfig(ctx)
		if err != nil {
			return err
		}

		events, err := replay.ParseEvents(args[1:])
		if err != nil {
			return flagError{err: err}
		}
		if len(replayPress) > 0 {
			pressed, err := rc.keymap.Events(replayPress)
			if err != nil {
				return flagError{err: err}
			}
			events = append(events, pressed...)
		}

		rec := replay.NewRecorder()
		tree, err := loadLayout(ctx, args[0], replayFocus, rec.Observe)
		if err != nil {
			return err
		}

		ctx = logger.WithLogger(ctx, logger.WithValues(logger.FromContext(ctx), logger.LayoutKey, args[0]))
		out := cmd.OutOrStdout()
		format := rc.effectiveOutput(cmd, replayOutput)
		if format == config.OutputTree {
			return replayTrees(ctx, out, tree, rec, rc, events)
		}

		report, err := replay.Run(ctx, tree.Root, rec, events)
		if err != nil {
			return err
		}
		report.Layout = args[0]
		return printReport(out, report, format)
	},
}

func printReport(w io.Writer, report *replay.Report, format string) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	}
	_, err := fmt.Fprint(w, render.Steps(report))
	return err
}

// replayTrees prints the tree before the first event and after every step.
func replayTrees(ctx context.Context, w io.Writer, tree *layout.Tree, rec *replay.Recorder, rc *runConfig, events []navtree.Event) error {
	opts := render.TreeOptions{Theme: rc.theme, NoColor: rc.run.NoColor, Kind: tree.Kind}
	fmt.Fprintf(w, "initial\n%s", render.Tree(tree.Root, opts))
	for i, ev := range events {
		if err := ctx.Err(); err != nil {
			return err
		}
		step := replay.Apply(tree.Root, rec, i+1, ev)
		header := fmt.Sprintf("#%d %s: %s", step.Index, step.Event, step.Outcome)
		if step.Target != "" {
			header += " -> " + step.Target
		}
		fmt.Fprintf(w, "\n%s\n%s", header, render.Tree(tree.Root, opts))
	}
	return nil
}

func init() { //nolint:gochecknoinits
	replayCmd.Flags().StringArrayVar(&replayPress, "press", nil, "key presses routed through the keymap. Use <Key> for special keys (e.g. <Down>, <CR>, <Esc>, <C-n>); literal characters press themselves")
	replayCmd.Flags().StringVar(&replayFocus, "focus", "", "initial focus path relative to the root, e.g. body/c2 (overrides focused: true in the layout)")
	replayCmd.Flags().VarP(replayOutput, "output", "o", replayOutput.usage())
}
