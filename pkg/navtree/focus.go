package navtree

import (
	"fmt"
	"strings"
)

// FocusPath focuses the descendant of n named by path, or n itself when the
// path is empty. The path is rebased onto the root before it is committed,
// so the whole chain from the root down to the target becomes the focused
// path and any descendants of the target lose focus.
//
// If any id along the path does not exist the call fails with
// ErrUnknownNode and no node is touched.
func (n *Node) FocusPath(path ...string) error {
	full := append(n.Path(), path...)
	root := n.Root()

	node := root
	for i, id := range full {
		ch, ok := node.children[id]
		if !ok {
			root.log.Info("cannot focus unknown node", "warning", true, "path", full, "id", id)
			return fmt.Errorf("focus %q at %q: %w", id, strings.Join(full[:i], "/"), ErrUnknownNode)
		}
		node = ch
	}

	root.commit(full)
	return nil
}

// Unfocus removes n and its focused descendants from the focused path.
// Unfocusing a root revokes focus from the whole tree; unfocusing any other
// focused node moves focus to its parent. Unfocusing a node that is not on
// the focused path does nothing.
func (n *Node) Unfocus() error {
	if n.parent == nil {
		n.generation++
		n.propagate(nil, false)
		return nil
	}
	if !n.IsFocused() {
		return nil
	}
	return n.parent.FocusPath()
}

// commit enters path from the root. It must only be called on a root with a
// path that has already been validated.
func (n *Node) commit(path []string) {
	n.generation++
	n.propagate(path, true)
}

// propagate notifies n and moves its focused child pointer. When entering,
// path holds the ids below n; when leaving, path is ignored and the whole
// previously focused branch below n is revoked top-down.
func (n *Node) propagate(path []string, entering bool) {
	n.active = entering
	if n.notify != nil {
		if entering {
			n.notify(append([]string{}, path...), true)
		} else {
			n.notify(nil, false)
		}
	}

	next := ""
	if entering && len(path) > 0 {
		next, path = path[0], path[1:]
	}
	if next != "" {
		// The path was validated up front, but a sink may have changed the tree.
		if _, ok := n.children[next]; !ok {
			n.log.Info("cannot focus unknown node", "warning", true, "parent", n.id, "id", next)
			return
		}
	}

	if n.focused != "" && n.focused != next {
		if prev, ok := n.children[n.focused]; ok {
			prev.propagate(nil, false)
		}
	}

	n.focused = next
	if next != "" {
		n.children[next].propagate(path, true)
	}
}
