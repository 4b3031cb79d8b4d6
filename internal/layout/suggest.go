package layout

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/oakwood-commons/navtree/pkg/navtree"
)

// closest returns the candidate with the smallest edit distance to name, or
// "" when none is close enough to be a likely typo.
func closest(name string, candidates []string) string {
	limit := max(2, len(name)/3)
	best, bestDist := "", limit+1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// didYouMean formats a suggestion suffix for an error message.
func didYouMean(name string, candidates []string) string {
	if c := closest(name, candidates); c != "" {
		return fmt.Sprintf(" (did you mean %q?)", c)
	}
	return ""
}

// Lookup finds the node at path below the root. Unknown ids are reported
// with the closest sibling id when there is one.
func (t *Tree) Lookup(path ...string) (*navtree.Node, error) {
	node := t.Root
	for i, id := range path {
		ch, ok := node.Child(id)
		if !ok {
			at := strings.Join(append([]string{t.Root.ID()}, path[:i]...), "/")
			return nil, fmt.Errorf("%w: %q under %q%s", navtree.ErrUnknownNode, id, at, didYouMean(id, node.ChildIDs()))
		}
		node = ch
	}
	return node, nil
}
