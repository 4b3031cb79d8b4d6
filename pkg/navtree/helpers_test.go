package navtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type notification struct {
	node    string
	path    []string
	focused bool
}

type recorder struct {
	calls []notification
}

func (r *recorder) sink(id string) NotifyFunc {
	return func(path []string, focused bool) {
		r.calls = append(r.calls, notification{node: id, path: path, focused: focused})
	}
}

func (r *recorder) reset() {
	r.calls = nil
}

func (r *recorder) count(id string) int {
	n := 0
	for _, c := range r.calls {
		if c.node == id {
			n++
		}
	}
	return n
}

func (r *recorder) nodes() []string {
	out := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		out = append(out, c.node)
	}
	return out
}

type shape struct {
	id       string
	children []shape
}

// newTestTree builds:
//
//	root
//	├── a
//	│   ├── e
//	│   │   └── g
//	│   └── f
//	│       └── h
//	├── b
//	│   └── i
//	│       └── j
//	│           └── k
//	└── c
func newTestTree(t *testing.T, rec *recorder) *Node {
	t.Helper()
	layout := []shape{
		{id: "a", children: []shape{
			{id: "e", children: []shape{{id: "g"}}},
			{id: "f", children: []shape{{id: "h"}}},
		}},
		{id: "b", children: []shape{
			{id: "i", children: []shape{{id: "j", children: []shape{{id: "k"}}}}},
		}},
		{id: "c"},
	}
	root := New("root", WithNotify(rec.sink("root")))
	fill(t, root, layout, rec)
	return root
}

func fill(t *testing.T, parent *Node, layout []shape, rec *recorder) {
	t.Helper()
	for _, s := range layout {
		ch, err := parent.AddChild(s.id, WithNotify(rec.sink(s.id)))
		require.NoError(t, err)
		fill(t, ch, s.children, rec)
	}
}

func mustNode(t *testing.T, n *Node, path ...string) *Node {
	t.Helper()
	node, ok := n.Node(path...)
	require.True(t, ok, "node %v", path)
	return node
}

func constant(d Decision, calls *int) Resolver {
	return ResolverFunc(func(Event, *Node) Decision {
		*calls++
		return d
	})
}

func fixed(r Rect) GeometryFunc {
	return func() (Rect, bool) { return r, true }
}
