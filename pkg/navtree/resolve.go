package navtree

// Outcome classifies the result of Resolve.
type Outcome int

const (
	// NotHandled means no node took the event; the tree is unchanged.
	NotHandled Outcome = iota
	// Committed means the target was focused by the engine.
	Committed
	// Unchanged means the target is already on the focused path and no
	// commit was needed.
	Unchanged
	// Overridden means a resolver changed focus itself while the event was
	// being resolved; the engine did not commit its own target.
	Overridden
)

func (o Outcome) String() string {
	switch o {
	case Committed:
		return "committed"
	case Unchanged:
		return "unchanged"
	case Overridden:
		return "overridden"
	default:
		return "not-handled"
	}
}

// Handled reports whether the event resulted in a target node.
func (o Outcome) Handled() bool {
	return o == Committed || o == Unchanged
}

// Resolve turns ev into a focus target for the whole tree n belongs to, no
// matter which node it is called on.
//
// Starting at the deepest focused node (or the root when nothing is
// focused), the event bubbles up until some resolver absorbs it or names a
// child. From that child it then drills down while resolvers keep naming
// children. The node reached is committed with FocusPath and returned.
//
// If a resolver changes focus itself during the call, resolution stops and
// the outcome is Overridden. Only a commit counts: a FocusPath from a
// resolver that fails, e.g. on an unknown id, changes nothing and resolution
// carries on. While Resolve runs, structural changes to the
// tree fail with ErrResolving and nested Resolve calls are not handled.
func (n *Node) Resolve(ev Event) (*Node, Outcome) {
	root := n.Root()
	if root.resolving {
		root.log.Info("nested resolve ignored", "warning", true, "event", ev)
		return nil, NotHandled
	}

	target, changed, overridden := root.guardedTraverse(ev)

	switch {
	case overridden:
		root.log.V(1).Info("resolution overridden by explicit focus", "event", ev)
		return nil, Overridden
	case target == nil || target == root:
		root.log.V(1).Info("event not handled", "event", ev)
		return nil, NotHandled
	case !changed:
		return target, Unchanged
	}

	root.commit(target.Path())
	root.log.V(1).Info("focus committed", "event", ev, "path", target.Path())
	return target, Committed
}

func (n *Node) guardedTraverse(ev Event) (*Node, bool, bool) {
	n.resolving = true
	defer func() { n.resolving = false }()
	return n.traverse(ev)
}

// traverse runs both resolution phases on a root. changed is false when the
// target already is where focus sits.
func (n *Node) traverse(ev Event) (target *Node, changed, overridden bool) {
	gen := n.generation
	start, ok := n.FocusedNode(true)
	if !ok {
		start = n
	}

	// Phase 1: bubble up from the deepest focused node.
	node := start
	for {
		d := node.decide(ev)
		if n.generation != gen {
			return nil, false, true
		}
		if d.Absorbed() {
			return node, node != start, false
		}
		if ch, ok := node.descendant(d); ok {
			node = ch
			break
		}
		if node.parent == nil {
			return nil, false, false
		}
		node = node.parent
	}

	if node.parent.focused == node.id {
		return node, false, false
	}

	// Phase 2: drill down from the chosen child.
	for {
		d := node.decide(ev)
		if n.generation != gen {
			return nil, false, true
		}
		ch, ok := node.descendant(d)
		if !ok {
			return node, true, false
		}
		node = ch
	}
}

func (n *Node) decide(ev Event) Decision {
	r := n.resolver
	if r == nil {
		r = Default
	}
	d := r.Resolve(ev, n)
	n.log.V(1).Info("resolver decision", "node", n.id, "event", ev, "decision", d.String())
	return d
}

// descendant returns the child named by a Descend decision.
func (n *Node) descendant(d Decision) (*Node, bool) {
	id, ok := d.Target()
	if !ok {
		return nil, false
	}
	return n.Child(id)
}
