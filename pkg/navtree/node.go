package navtree

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/go-logr/logr"
)

// NotifyFunc receives focus changes for a single node. When the node is on
// the newly committed focused path it is called with the part of the path
// below it (possibly empty) and focused set. When the node loses focus it is
// called with a nil path and focused unset.
//
// Notifications are unconditional: a node is notified on every commit that
// passes through it, even if its own state does not change.
type NotifyFunc func(path []string, focused bool)

// Node is a navigable region. Nodes form a tree; a node owns its children and
// holds a non-owning reference to its parent.
type Node struct {
	id       string
	parent   *Node
	children map[string]*Node
	order    []string // child ids in insertion order
	focused  string   // id of the focused child, "" if none
	active   bool     // set from the node's own notifications

	resolver Resolver
	notify   NotifyFunc
	geometry GeometryFunc
	log      logr.Logger

	// Only meaningful on a root.
	generation uint64
	resolving  bool
}

// Option configures a Node at construction time.
type Option func(*Node)

// WithResolver sets the node's resolver. Nodes without one use Default.
func WithResolver(r Resolver) Option {
	return func(n *Node) {
		n.resolver = r
	}
}

// WithNotify sets the node's focus change sink.
func WithNotify(fn NotifyFunc) Option {
	return func(n *Node) {
		n.notify = fn
	}
}

// WithGeometry sets the node's geometry provider, used by Spatial.
func WithGeometry(fn GeometryFunc) Option {
	return func(n *Node) {
		n.geometry = fn
	}
}

// WithLogger sets the logger for the node. Children created afterwards
// inherit it.
func WithLogger(lgr logr.Logger) Option {
	return func(n *Node) {
		n.log = lgr
	}
}

// New creates the root of a new tree.
func New(id string, opts ...Option) *Node {
	n := &Node{
		id:       id,
		children: make(map[string]*Node),
		log:      logr.Discard(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Node) String() string {
	return fmt.Sprintf("(Node %q #ch=%d)", n.id, len(n.order))
}

// ID returns the node's id. It never changes after creation.
func (n *Node) ID() string {
	return n.id
}

// Parent returns the parent node, or nil for a root or a removed node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Root walks up to the root of the tree n belongs to.
func (n *Node) Root() *Node {
	node := n
	for node.parent != nil {
		node = node.parent
	}
	return node
}

// Path returns the ids from the root (exclusive) down to n.
func (n *Node) Path() []string {
	var path []string
	for node := n; node.parent != nil; node = node.parent {
		path = append(path, node.id)
	}
	slices.Reverse(path)
	return path
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.order)
}

// ChildIDs returns the ids of all children in insertion order.
func (n *Node) ChildIDs() []string {
	return slices.Clone(n.order)
}

// Children returns all children in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.order))
	for _, id := range n.order {
		out = append(out, n.children[id])
	}
	return out
}

// Child returns the direct child with the given id.
func (n *Node) Child(id string) (*Node, bool) {
	ch, ok := n.children[id]
	return ch, ok
}

// FocusedChildID returns the id of the focused child, if any.
func (n *Node) FocusedChildID() (string, bool) {
	return n.focused, n.focused != ""
}

// IsFocused reports whether n lies on the focused path. A root is focused
// once a commit has entered it and until it is unfocused.
func (n *Node) IsFocused() bool {
	if n.parent == nil {
		return n.active
	}
	return n.parent.focused == n.id && n.parent.IsFocused()
}

// Logger returns the logger the node was created with.
func (n *Node) Logger() logr.Logger {
	return n.log
}

// Resolving reports whether a Resolve call is running on n's tree.
func (n *Node) Resolving() bool {
	return n.Root().resolving
}

// SetResolver replaces the node's resolver. It must be called before the
// first Resolve that should observe it, and never from inside a resolver.
func (n *Node) SetResolver(r Resolver) error {
	if n.Resolving() {
		return fmt.Errorf("set resolver on %q: %w", n.id, ErrResolving)
	}
	n.resolver = r
	return nil
}

// SetNotify replaces the node's focus change sink.
func (n *Node) SetNotify(fn NotifyFunc) error {
	if n.Resolving() {
		return fmt.Errorf("set notify on %q: %w", n.id, ErrResolving)
	}
	n.notify = fn
	return nil
}

// SetGeometry replaces the node's geometry provider. Bindings usually call
// it once the underlying element has been laid out.
func (n *Node) SetGeometry(fn GeometryFunc) error {
	if n.Resolving() {
		return fmt.Errorf("set geometry on %q: %w", n.id, ErrResolving)
	}
	n.geometry = fn
	return nil
}

// AddChild creates a child node and appends it to n's children. An empty id
// requests an automatically assigned one. A duplicate id is logged and
// replaced by an automatically assigned one; the returned node carries the
// id actually used.
func (n *Node) AddChild(id string, opts ...Option) (*Node, error) {
	if n.Resolving() {
		return nil, fmt.Errorf("add child %q to %q: %w", id, n.id, ErrResolving)
	}
	if id == "" {
		id = n.nextID()
	} else if _, taken := n.children[id]; taken {
		assigned := n.nextID()
		n.log.Info("duplicate node id, assigning a new one", "warning", true, "parent", n.id, "id", id, "assigned", assigned)
		id = assigned
	}

	child := &Node{
		id:       id,
		parent:   n,
		children: make(map[string]*Node),
		log:      n.log,
	}
	for _, opt := range opts {
		opt(child)
	}
	n.children[id] = child
	n.order = append(n.order, id)
	return child, nil
}

// RemoveChild detaches the child with the given id. Removing an unknown id
// does nothing. If the child was focused, n is left without a focused child;
// focus is not moved elsewhere and no notifications fire.
func (n *Node) RemoveChild(id string) error {
	if n.Resolving() {
		return fmt.Errorf("remove child %q from %q: %w", id, n.id, ErrResolving)
	}
	child, ok := n.children[id]
	if !ok {
		return nil
	}
	if n.focused == id {
		n.focused = ""
	}
	child.parent = nil
	child.active = false
	delete(n.children, id)
	if i := slices.Index(n.order, id); i >= 0 {
		n.order = slices.Delete(n.order, i, i+1)
	}
	return nil
}

// nextID returns the lowest positive integer id not taken by a child.
func (n *Node) nextID() string {
	for i := 1; ; i++ {
		id := strconv.Itoa(i)
		if _, taken := n.children[id]; !taken {
			return id
		}
	}
}

// Node looks up a descendant by a path of ids relative to n. An empty path
// returns n itself.
func (n *Node) Node(path ...string) (*Node, bool) {
	node := n
	for _, id := range path {
		ch, ok := node.children[id]
		if !ok {
			return nil, false
		}
		node = ch
	}
	return node, true
}

// FocusedPath returns the chain of focused child ids from n downwards. It is
// empty when n has no focused child.
func (n *Node) FocusedPath() []string {
	path := []string{}
	for node := n; node.focused != ""; node = node.children[node.focused] {
		path = append(path, node.focused)
	}
	return path
}

// FocusedNode returns the focused child of n, or with deep set the deepest
// focused descendant.
func (n *Node) FocusedNode(deep bool) (*Node, bool) {
	node, ok := n.children[n.focused]
	if !ok {
		return nil, false
	}
	if !deep {
		return node, true
	}
	for node.focused != "" {
		node = node.children[node.focused]
	}
	return node, true
}
