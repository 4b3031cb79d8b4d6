package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-logr/logr"

	"github.com/oakwood-commons/navtree/internal/cel"
	"github.com/oakwood-commons/navtree/pkg/navtree"
)

// BuildOptions configures Build.
type BuildOptions struct {
	Logger logr.Logger
	// Observe, when set, is asked for a notification sink for every node.
	Observe func(n *navtree.Node) navtree.NotifyFunc
}

// Tree is a built layout.
type Tree struct {
	Root *navtree.Node
	Doc  *Document
	// Kinds records the resolver kind of every node.
	Kinds map[*navtree.Node]string
	// Rects holds the declared geometry of every node that has one.
	Rects map[*navtree.Node]Rect
}

// Build validates doc and creates its navigation tree. Nodes marked focused
// are focused afterwards, the last one in document order winning.
func Build(doc *Document, opts BuildOptions) (*Tree, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	lgr := opts.Logger
	if lgr.GetSink() == nil {
		lgr = logr.Discard()
	}

	t := &Tree{
		Doc:   doc,
		Kinds: make(map[*navtree.Node]string),
		Rects: make(map[*navtree.Node]Rect),
	}
	rootOpts, err := t.nodeOptions(doc.Root)
	if err != nil {
		return nil, err
	}
	t.Root = navtree.New(rootLabel(doc.Root), append(rootOpts, navtree.WithLogger(lgr))...)
	t.record(t.Root, doc.Root)

	var defaultFocus *navtree.Node
	if doc.Root.Focused {
		defaultFocus = t.Root
	}
	if err := t.addChildren(t.Root, doc.Root.Children, &defaultFocus); err != nil {
		return nil, err
	}

	if opts.Observe != nil {
		var observeErr error
		t.Walk(func(n *navtree.Node) {
			if observeErr != nil {
				return
			}
			if fn := opts.Observe(n); fn != nil {
				observeErr = n.SetNotify(fn)
			}
		})
		if observeErr != nil {
			return nil, fmt.Errorf("failed to attach observer: %w", observeErr)
		}
	}

	if defaultFocus != nil {
		if err := t.Root.FocusPath(defaultFocus.Path()...); err != nil {
			return nil, fmt.Errorf("failed to apply default focus: %w", err)
		}
		lgr.V(1).Info("applied default focus", "path", defaultFocus.Path())
	}
	return t, nil
}

func (t *Tree) addChildren(parent *navtree.Node, specs []Spec, defaultFocus **navtree.Node) error {
	ids := childIDs(specs)
	for i, s := range specs {
		opts, err := t.nodeOptions(s)
		if err != nil {
			return err
		}
		n, err := parent.AddChild(ids[i], opts...)
		if err != nil {
			return fmt.Errorf("failed to add %q under %q: %w", ids[i], parent.ID(), err)
		}
		t.record(n, s)
		if s.Focused {
			*defaultFocus = n
		}
		if err := t.addChildren(n, s.Children, defaultFocus); err != nil {
			return err
		}
	}
	return nil
}

// childIDs returns the id each child is added with. Unnamed children get
// the lowest free positive integer, skipping every id written explicitly on
// a sibling, so an explicit id is never taken by an earlier unnamed child.
func childIDs(specs []Spec) []string {
	taken := make(map[string]bool, len(specs))
	for _, s := range specs {
		if s.ID != "" {
			taken[s.ID] = true
		}
	}
	ids := make([]string, len(specs))
	next := 1
	for i, s := range specs {
		if s.ID != "" {
			ids[i] = s.ID
			continue
		}
		for taken[strconv.Itoa(next)] {
			next++
		}
		ids[i] = strconv.Itoa(next)
		taken[ids[i]] = true
	}
	return ids
}

func (t *Tree) record(n *navtree.Node, s Spec) {
	t.Kinds[n] = s.Kind()
	if s.Rect != nil {
		t.Rects[n] = *s.Rect
	}
}

func (t *Tree) nodeOptions(s Spec) ([]navtree.Option, error) {
	var opts []navtree.Option
	r, err := resolverFor(s)
	if err != nil {
		return nil, err
	}
	if r != nil {
		opts = append(opts, navtree.WithResolver(r))
	}
	if s.Rect != nil && !s.Hidden {
		rect := navtree.Rect{Left: s.Rect.Left, Right: s.Rect.Right, Top: s.Rect.Top, Bottom: s.Rect.Bottom}
		opts = append(opts, navtree.WithGeometry(func() (navtree.Rect, bool) {
			return rect, true
		}))
	}
	return opts, nil
}

// resolverFor maps a spec onto its resolver. Default nodes get none so the
// engine applies navtree.Default.
func resolverFor(s Spec) (navtree.Resolver, error) {
	switch s.Kind() {
	case KindVertical:
		return navtree.Vertical, nil
	case KindHorizontal:
		return navtree.Horizontal, nil
	case KindGrid:
		return navtree.Grid{Cols: s.Cols}, nil
	case KindSpatial:
		return navtree.Spatial, nil
	case KindExpr:
		r, err := cel.Compile(s.Expr)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", s.ID, err)
		}
		return r, nil
	}
	return nil, nil
}

// Walk visits every node depth first, parents before children, in
// insertion order.
func (t *Tree) Walk(fn func(n *navtree.Node)) {
	var visit func(n *navtree.Node)
	visit = func(n *navtree.Node) {
		fn(n)
		for _, ch := range n.Children() {
			visit(ch)
		}
	}
	visit(t.Root)
}

// Kind returns the resolver kind recorded for n.
func (t *Tree) Kind(n *navtree.Node) string {
	if k, ok := t.Kinds[n]; ok {
		return k
	}
	return KindDefault
}

// SplitPath splits a slash separated path of ids relative to the root,
// e.g. "body/c2". Empty segments are dropped.
func SplitPath(s string) []string {
	var out []string
	for _, part := range strings.Split(s, "/") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
