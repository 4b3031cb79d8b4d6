package cmd

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/spf13/cobra"

	"github.com/oakwood-commons/navtree/internal/cel"
)

//go:embed docs/layout.md
var layoutReference []byte

var (
	docsHTML      bool
	docsFunctions bool
)

var docsCmd = &cobra.Command{
	Use:     "docs",
	Short:   "Print the layout file reference",
	Example: "  navtree docs\n  navtree docs --html > layout.html\n  navtree docs --functions",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		if docsFunctions {
			fns, err := cel.Functions()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, strings.Join(fns, "\n"))
			return nil
		}
		if docsHTML {
			_, err := out.Write(renderReferenceHTML(layoutReference))
			return err
		}
		_, err := out.Write(layoutReference)
		return err
	},
}

// renderReferenceHTML converts markdown into a standalone HTML page.
func renderReferenceHTML(md []byte) []byte {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse(md)

	htmlFlags := html.CommonFlags | html.HrefTargetBlank | html.CompletePage
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags, Title: "navtree layout files"})
	return markdown.Render(doc, renderer)
}

func init() { //nolint:gochecknoinits
	docsCmd.Flags().BoolVar(&docsHTML, "html", false, "render the reference as an HTML page")
	docsCmd.Flags().BoolVar(&docsFunctions, "functions", false, "list the CEL functions available to expr nodes")
}
