package cel

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/oakwood-commons/navtree/pkg/navtree"
)

// Resolver is a navtree.Resolver backed by a compiled CEL program.
type Resolver struct {
	expr string
	prg  cel.Program
}

// Compile parses and type-checks expr in the default environment.
func Compile(expr string) (*Resolver, error) {
	env, err := NewEnv()
	if err != nil {
		return nil, err
	}
	return CompileWithEnv(env, expr)
}

// CompileWithEnv compiles expr in a caller supplied environment, which must
// declare the variables NewEnv declares.
func CompileWithEnv(env *cel.Env, expr string) (*Resolver, error) {
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compilation error: %w", issues.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	return &Resolver{expr: expr, prg: prg}, nil
}

// Expr returns the source expression.
func (r *Resolver) Expr() string {
	return r.expr
}

// Resolve implements navtree.Resolver. Evaluation errors are logged on the
// node's logger and treated as Pass.
func (r *Resolver) Resolve(ev navtree.Event, n *navtree.Node) navtree.Decision {
	children := n.ChildIDs()
	focused, _ := n.FocusedChildID()
	index := -1
	for i, id := range children {
		if id == focused {
			index = i
			break
		}
	}

	val, _, err := r.prg.Eval(map[string]any{
		VarEvent:    string(ev),
		VarID:       n.ID(),
		VarFocused:  focused,
		VarIndex:    index,
		VarChildren: children,
		VarActive:   n.IsFocused(),
	})
	if err != nil {
		n.Logger().Info("expression evaluation failed", "warning", true, "node", n.ID(), "expr", r.expr, "error", err.Error())
		return navtree.Pass
	}
	return decision(val, children)
}

// decision maps an expression result onto a navtree.Decision.
func decision(val ref.Val, children []string) navtree.Decision {
	switch v := val.(type) {
	case types.String:
		if v == "" {
			return navtree.Pass
		}
		return navtree.Descend(string(v))
	case types.Int:
		if v < 0 || int(v) >= len(children) {
			return navtree.Pass
		}
		return navtree.Descend(children[v])
	case types.Null:
		return navtree.Absorb
	case types.Bool:
		if v {
			return navtree.Absorb
		}
		return navtree.Pass
	}
	return navtree.Pass
}
