package navtree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFocusChild(t *testing.T) {
	parent := New("")
	child, err := parent.AddChild("")
	require.NoError(t, err)

	_, ok := parent.FocusedChildID()
	assert.False(t, ok)

	require.NoError(t, parent.FocusPath(child.ID()))
	id, ok := parent.FocusedChildID()
	require.True(t, ok)
	assert.Equal(t, child.ID(), id)
}

func TestFocusPathRoundTrip(t *testing.T) {
	root := newTestTree(t, &recorder{})

	paths := [][]string{
		{"a", "e", "g"},
		{"b", "i", "j", "k"},
		{"c"},
		{"a", "f"},
		{},
	}
	for _, path := range paths {
		require.NoError(t, root.FocusPath(path...))
		assert.Equal(t, path, root.FocusedPath())
	}
}

func TestFocusSelfRevokesChildren(t *testing.T) {
	root := newTestTree(t, &recorder{})
	require.NoError(t, root.FocusPath("a", "e", "g"))

	require.NoError(t, mustNode(t, root, "a").FocusPath())
	assert.Equal(t, []string{"a"}, root.FocusedPath())
}

func TestFocusFromDescendant(t *testing.T) {
	root := newTestTree(t, &recorder{})

	require.NoError(t, mustNode(t, root, "a", "e", "g").FocusPath())
	assert.Equal(t, []string{"a", "e", "g"}, root.FocusedPath())

	require.NoError(t, mustNode(t, root, "b").FocusPath("i", "j"))
	assert.Equal(t, []string{"b", "i", "j"}, root.FocusedPath())
}

func TestFocusUnknownIsAtomic(t *testing.T) {
	rec := &recorder{}
	root := newTestTree(t, rec)
	require.NoError(t, root.FocusPath("a", "e", "g"))
	rec.reset()

	err := root.FocusPath("b", "i", "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownNode))
	assert.Contains(t, err.Error(), "missing")

	assert.Empty(t, rec.calls)
	assert.Equal(t, []string{"a", "e", "g"}, root.FocusedPath())
}

func TestNotifyOnLostFocus(t *testing.T) {
	parent := New("")
	child, err := parent.AddChild("")
	require.NoError(t, err)
	require.NoError(t, parent.FocusPath(child.ID()))

	rec := &recorder{}
	require.NoError(t, child.SetNotify(rec.sink("child")))

	require.NoError(t, parent.FocusPath())
	require.Len(t, rec.calls, 1)
	assert.False(t, rec.calls[0].focused)
	assert.Nil(t, rec.calls[0].path)
}

func TestNotifySkipsUnaffectedNodes(t *testing.T) {
	parent := New("")
	child, err := parent.AddChild("")
	require.NoError(t, err)
	child2, err := parent.AddChild("")
	require.NoError(t, err)

	rec := &recorder{}
	require.NoError(t, child.SetNotify(rec.sink("child")))

	require.NoError(t, parent.FocusPath(child2.ID()))
	require.NoError(t, parent.FocusPath())
	assert.Empty(t, rec.calls)
}

func TestNotifyEnteredPath(t *testing.T) {
	rec := &recorder{}
	root := newTestTree(t, rec)

	require.NoError(t, root.FocusPath("a", "e", "g"))

	assert.Equal(t, []notification{
		{node: "root", path: []string{"a", "e", "g"}, focused: true},
		{node: "a", path: []string{"e", "g"}, focused: true},
		{node: "e", path: []string{"g"}, focused: true},
		{node: "g", path: []string{}, focused: true},
	}, rec.calls)
}

func TestNotifyExitedPath(t *testing.T) {
	rec := &recorder{}
	root := newTestTree(t, rec)
	require.NoError(t, root.FocusPath("a", "e", "g"))
	rec.reset()

	require.NoError(t, root.FocusPath())

	assert.Equal(t, []notification{
		{node: "root", path: []string{}, focused: true},
		{node: "a"},
		{node: "e"},
		{node: "g"},
	}, rec.calls)
}

func TestNotifyOrderAtDivergence(t *testing.T) {
	rec := &recorder{}
	root := newTestTree(t, rec)
	require.NoError(t, root.FocusPath("a", "e", "g"))
	rec.reset()

	require.NoError(t, root.FocusPath("a", "f", "h"))

	// a is the divergence node: it sees the new path, then the old branch
	// is revoked top-down, then the new branch is entered top-down.
	assert.Equal(t, []string{"root", "a", "e", "g", "f", "h"}, rec.nodes())
	for _, id := range []string{"root", "a", "e", "g", "f", "h"} {
		assert.Equal(t, 1, rec.count(id), id)
	}
	assert.Zero(t, rec.count("b"))
	assert.Zero(t, rec.count("c"))
}

func TestNotifyIsUnconditional(t *testing.T) {
	rec := &recorder{}
	root := newTestTree(t, rec)
	require.NoError(t, root.FocusPath("c"))
	require.NoError(t, root.FocusPath("c"))

	assert.Equal(t, 2, rec.count("root"))
	assert.Equal(t, 2, rec.count("c"))
}

func TestNotifyPathIsACopy(t *testing.T) {
	root := New("root")
	a, err := root.AddChild("a")
	require.NoError(t, err)
	_, err = a.AddChild("b")
	require.NoError(t, err)

	require.NoError(t, root.SetNotify(func(path []string, _ bool) {
		for i := range path {
			path[i] = "clobbered"
		}
	}))

	require.NoError(t, root.FocusPath("a", "b"))
	assert.Equal(t, []string{"a", "b"}, root.FocusedPath())
}

func TestUnfocus(t *testing.T) {
	rec := &recorder{}
	root := newTestTree(t, rec)
	require.NoError(t, root.FocusPath("a", "e", "g"))

	require.NoError(t, mustNode(t, root, "a", "e").Unfocus())
	assert.Equal(t, []string{"a"}, root.FocusedPath())

	rec.reset()
	require.NoError(t, mustNode(t, root, "b").Unfocus())
	assert.Empty(t, rec.calls, "unfocusing a node off the focused path is a no-op")

	require.NoError(t, root.Unfocus())
	assert.Empty(t, root.FocusedPath())
	assert.False(t, root.IsFocused())
	assert.Equal(t, []notification{{node: "root"}, {node: "a"}}, rec.calls)
}
