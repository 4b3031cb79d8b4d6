// Package cel lets layout nodes decide navigation with CEL expressions.
//
// An expression is evaluated once per event with these variables bound:
//
//	event     string        the event being resolved, e.g. "down"
//	id        string        id of the node the expression belongs to
//	focused   string        id of the focused child, "" when none
//	index     int           position of the focused child, -1 when none
//	children  list(string)  child ids in insertion order
//	active    bool          whether the node is on the focused path
//
// The result selects the decision: a string names a child to descend into
// ("" passes), an int selects a child by position, null absorbs the event,
// and a bool passes when false and absorbs when true.
package cel

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/decls"
	"github.com/google/cel-go/common/types"
	celext "github.com/google/cel-go/ext"
)

// Variable names bound for every evaluation.
const (
	VarEvent    = "event"
	VarID       = "id"
	VarFocused  = "focused"
	VarIndex    = "index"
	VarChildren = "children"
	VarActive   = "active"
)

// NewEnv creates the CEL environment resolver expressions are compiled in.
// Additional options can extend it, e.g. with custom functions.
func NewEnv(opts ...cel.EnvOption) (*cel.Env, error) {
	allOpts := make([]cel.EnvOption, 0, 10+len(opts))
	allOpts = append(allOpts,
		cel.Variable(VarEvent, cel.StringType),
		cel.Variable(VarID, cel.StringType),
		cel.Variable(VarFocused, cel.StringType),
		cel.Variable(VarIndex, cel.IntType),
		cel.Variable(VarChildren, cel.ListType(cel.StringType)),
		cel.Variable(VarActive, cel.BoolType),
		celext.Strings(),
		celext.Lists(),
		celext.Math(),
	)
	allOpts = append(allOpts, opts...)
	env, err := cel.NewEnv(allOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	return env, nil
}

// Functions lists the functions available to resolver expressions, one
// usage line per overload, sorted.
func Functions() ([]string, error) {
	env, err := NewEnv()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	out := make([]string, 0, 100)
	add := func(entry string) {
		if !seen[entry] {
			seen[entry] = true
			out = append(out, entry)
		}
	}
	for _, fn := range env.Functions() {
		if isOperator(fn.Name()) {
			continue
		}
		for _, o := range fn.OverloadDecls() {
			add(usageFromOverload(fn.Name(), o))
		}
	}
	for _, m := range env.Macros() {
		if isOperator(m.Function()) {
			continue
		}
		add(m.Function() + "() (macro)")
	}
	sort.Strings(out)
	return out, nil
}

// isOperator filters out operator-style declarations.
func isOperator(name string) bool {
	if strings.HasPrefix(name, "@") {
		return true
	}
	if strings.HasPrefix(name, "_") && strings.HasSuffix(name, "_") {
		return true
	}
	switch name {
	case "!_", "-_", "@in", "_[_]":
		return true
	}
	return false
}

func typeLabel(t *types.Type) string {
	if t == nil {
		return "any"
	}
	if name := t.DeclaredTypeName(); name != "" {
		return name
	}
	if name := t.TypeName(); name != "" {
		return name
	}
	return "any"
}

func usageFromOverload(name string, o *decls.OverloadDecl) string {
	params := o.ArgTypes()
	labels := make([]string, len(params))
	for i, p := range params {
		labels[i] = typeLabel(p)
	}
	call := name + "(" + strings.Join(labels, ", ") + ")"
	if o.IsMemberFunction() && len(labels) > 0 {
		call = labels[0] + "." + name + "(" + strings.Join(labels[1:], ", ") + ")"
	}
	if o.ResultType() != nil {
		call += " -> " + typeLabel(o.ResultType())
	}
	return call
}
