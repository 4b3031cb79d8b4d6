package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/navtree/internal/render"
	"github.com/oakwood-commons/navtree/pkg/navtree"
)

var validatePrint bool

var validateCmd = &cobra.Command{
	Use:   "validate LAYOUT...",
	Short: "Check layout files",
	Long: `Validate decodes each layout, checks resolver kinds, grid columns, rects and
CEL expressions, and builds the tree. Every problem in a file is reported, not
just the first.`,
	Example: "  navtree validate examples/*.yaml\n  navtree validate examples/menu.toml --print",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rc, err := loadRunConfig(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		var failed []error
		for _, path := range args {
			tree, err := loadLayout(ctx, path, "", nil)
			if err != nil {
				failed = append(failed, err)
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: invalid\n%v\n", path, err)
				continue
			}
			if rc.run.IsQuiet {
				continue
			}
			count := 0
			tree.Walk(func(*navtree.Node) { count++ })
			fmt.Fprintf(out, "%s: ok (%d nodes)\n", path, count)
			if validatePrint {
				fmt.Fprint(out, render.Tree(tree.Root, render.TreeOptions{Theme: rc.theme, NoColor: rc.run.NoColor, Kind: tree.Kind}))
			}
		}
		if len(failed) > 0 {
			return fmt.Errorf("%d of %d layouts invalid: %w", len(failed), len(args), errors.Join(failed...))
		}
		return nil
	},
}

func init() { //nolint:gochecknoinits
	validateCmd.Flags().BoolVar(&validatePrint, "print", false, "print the tree of each valid layout")
}
