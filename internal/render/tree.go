package render

import (
	"github.com/xlab/treeprint"

	"github.com/oakwood-commons/navtree/pkg/navtree"
)

// Markers put in front of node ids.
const (
	MarkerFocused = "●"
	MarkerPath    = "○"
)

type nodeState int

const (
	stateIdle nodeState = iota
	statePath
	stateFocused
)

// TreeOptions controls Tree.
type TreeOptions struct {
	Theme   Theme
	NoColor bool
	// Kind, when set, labels every node with its resolver kind.
	Kind func(n *navtree.Node) string
}

// Tree draws the subtree under root with the focused path marked.
func Tree(root *navtree.Node, opts TreeOptions) string {
	var deepest *navtree.Node
	if root.IsFocused() {
		deepest = root
		if n, ok := root.FocusedNode(true); ok {
			deepest = n
		}
	}

	tree := treeprint.NewWithRoot(opts.label(root, deepest))
	if opts.Kind != nil {
		tree.SetMetaValue(opts.Kind(root))
	}
	opts.addChildren(tree, root, deepest)
	return tree.String()
}

func (o TreeOptions) addChildren(branch treeprint.Tree, n, deepest *navtree.Node) {
	for _, ch := range n.Children() {
		label := o.label(ch, deepest)
		var next treeprint.Tree
		switch {
		case o.Kind != nil && ch.Len() > 0:
			next = branch.AddMetaBranch(o.Kind(ch), label)
		case o.Kind != nil:
			next = branch.AddMetaNode(o.Kind(ch), label)
		case ch.Len() > 0:
			next = branch.AddBranch(label)
		default:
			next = branch.AddNode(label)
		}
		o.addChildren(next, ch, deepest)
	}
}

func (o TreeOptions) label(n, deepest *navtree.Node) string {
	state := stateIdle
	text := n.ID()
	switch {
	case n == deepest:
		state = stateFocused
		text = MarkerFocused + " " + text
	case n.IsFocused():
		state = statePath
		text = MarkerPath + " " + text
	}
	if o.NoColor {
		return text
	}
	return o.Theme.style(state).Render(text)
}
