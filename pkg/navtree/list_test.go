package navtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlat(t *testing.T, r Resolver, ids ...string) *Node {
	t.Helper()
	root := New("root", WithResolver(r))
	for _, id := range ids {
		_, err := root.AddChild(id)
		require.NoError(t, err)
	}
	return root
}

func TestListResolve(t *testing.T) {
	tests := []struct {
		name    string
		list    List
		focused string
		event   Event
		want    Decision
	}{
		{"down from first", Vertical, "a", Down, Descend("b")},
		{"up from middle", Vertical, "b", Up, Descend("a")},
		{"down at end", Vertical, "c", Down, Pass},
		{"up at start", Vertical, "a", Up, Pass},
		{"down unfocused", Vertical, "", Down, Descend("a")},
		{"up unfocused", Vertical, "", Up, Descend("c")},
		{"other event unfocused", Vertical, "", Enter, Descend("a")},
		{"other event focused", Vertical, "b", Enter, Pass},
		{"cross axis focused", Vertical, "b", Right, Pass},
		{"right", Horizontal, "a", Right, Descend("b")},
		{"left at start", Horizontal, "a", Left, Pass},
		{"horizontal ignores down", Horizontal, "a", Down, Pass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newFlat(t, tt.list, "a", "b", "c")
			if tt.focused != "" {
				require.NoError(t, root.FocusPath(tt.focused))
			}
			assert.Equal(t, tt.want, tt.list.Resolve(tt.event, root))
		})
	}
}

func TestListEmpty(t *testing.T) {
	root := New("root")
	assert.Equal(t, Pass, Vertical.Resolve(Down, root))
	assert.Equal(t, Pass, Vertical.Resolve(Enter, root))
}

func TestGridResolve(t *testing.T) {
	ids := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
	tests := []struct {
		name    string
		focused string
		event   Event
		want    Decision
	}{
		{"left", "5", Left, Descend("4")},
		{"right", "5", Right, Descend("6")},
		{"up", "5", Up, Descend("2")},
		{"down", "5", Down, Descend("8")},
		{"left edge", "4", Left, Pass},
		{"right edge", "6", Right, Pass},
		{"top edge", "2", Up, Pass},
		{"bottom edge", "8", Down, Pass},
		{"unfocused right", "", Right, Descend("1")},
		{"unfocused down", "", Down, Descend("1")},
		{"unfocused left", "", Left, Descend("3")},
		{"other event", "5", Enter, Pass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := Grid{Cols: 3}
			root := newFlat(t, grid, ids...)
			if tt.focused != "" {
				require.NoError(t, root.FocusPath(tt.focused))
			}
			assert.Equal(t, tt.want, grid.Resolve(tt.event, root))
		})
	}
}

func TestGridRaggedLastRow(t *testing.T) {
	grid := Grid{Cols: 3}
	root := newFlat(t, grid, "1", "2", "3", "4", "5")
	require.NoError(t, root.FocusPath("3"))

	assert.Equal(t, Pass, grid.Resolve(Down, root), "no cell below the third column")

	require.NoError(t, root.FocusPath("5"))
	assert.Equal(t, Pass, grid.Resolve(Right, root))
	assert.Equal(t, Descend("4"), grid.Resolve(Left, root))
	assert.Equal(t, Descend("2"), grid.Resolve(Up, root))
}

func TestGridScenario(t *testing.T) {
	root := newFlat(t, Grid{Cols: 3}, "1", "2", "3", "4", "5", "6", "7", "8", "9")
	require.NoError(t, root.FocusPath("5"))

	target, outcome := root.Resolve(Left)
	require.Equal(t, Committed, outcome)
	assert.Equal(t, "4", target.ID())

	require.NoError(t, root.FocusPath("5"))
	target, outcome = root.Resolve(Up)
	require.Equal(t, Committed, outcome)
	assert.Equal(t, "2", target.ID())
}
