package cel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/navtree/pkg/navtree"
)

func newList(t *testing.T) *navtree.Node {
	t.Helper()
	root := navtree.New("root")
	for _, id := range []string{"a", "b", "c"} {
		_, err := root.AddChild(id)
		require.NoError(t, err)
	}
	return root
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		wantErr bool
	}{
		{name: "string literal", expr: `"a"`},
		{name: "conditional", expr: `event == "down" ? children[0] : ""`},
		{name: "ext strings", expr: `id.upperAscii()`},
		{name: "syntax error", expr: `event ==`, wantErr: true},
		{name: "unknown variable", expr: `nope`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Compile(tt.expr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expr, r.Expr())
		})
	}
}

func TestResolverDecisions(t *testing.T) {
	tests := []struct {
		name  string
		expr  string
		event navtree.Event
		want  navtree.Decision
	}{
		{name: "string descends", expr: `"b"`, event: navtree.Down, want: navtree.Descend("b")},
		{name: "empty string passes", expr: `""`, event: navtree.Down, want: navtree.Pass},
		{name: "null absorbs", expr: `null`, event: navtree.Down, want: navtree.Absorb},
		{name: "true absorbs", expr: `true`, event: navtree.Down, want: navtree.Absorb},
		{name: "false passes", expr: `false`, event: navtree.Down, want: navtree.Pass},
		{name: "index descends", expr: `2`, event: navtree.Down, want: navtree.Descend("c")},
		{name: "index out of range", expr: `3`, event: navtree.Down, want: navtree.Pass},
		{name: "negative index", expr: `-1`, event: navtree.Down, want: navtree.Pass},
		{name: "unsupported type passes", expr: `1.5`, event: navtree.Down, want: navtree.Pass},
		{name: "event bound", expr: `event == "enter" ? "a" : ""`, event: navtree.Enter, want: navtree.Descend("a")},
		{name: "children bound", expr: `children[size(children) - 1]`, event: navtree.Up, want: navtree.Descend("c")},
		{name: "no focused child", expr: `focused == "" && index == -1`, event: navtree.Up, want: navtree.Absorb},
		{name: "eval error passes", expr: `children[5]`, event: navtree.Up, want: navtree.Pass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Compile(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Resolve(tt.event, newList(t)))
		})
	}
}

func TestResolverWrapsAround(t *testing.T) {
	r, err := Compile(`event == "down" ? children[(index + 1) % size(children)] : ""`)
	require.NoError(t, err)

	root := newList(t)
	require.NoError(t, root.SetResolver(r))
	require.NoError(t, root.FocusPath("c"))

	target, outcome := root.Resolve(navtree.Down)
	assert.Equal(t, navtree.Committed, outcome)
	assert.Equal(t, "a", target.ID())
	assert.Equal(t, []string{"a"}, root.FocusedPath())
	assert.True(t, target.IsFocused())
}

func TestFunctions(t *testing.T) {
	fns, err := Functions()
	require.NoError(t, err)
	require.NotEmpty(t, fns)

	joined := make(map[string]bool, len(fns))
	for _, f := range fns {
		assert.NotContains(t, f, "_+_")
		joined[f] = true
	}
	assert.True(t, joined["string.upperAscii() -> string"], "expected strings extension")
	assert.IsIncreasing(t, fns)
}
