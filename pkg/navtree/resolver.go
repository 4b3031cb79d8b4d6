package navtree

import "fmt"

type decisionKind uint8

const (
	pass decisionKind = iota
	absorb
	descend
)

// Decision is what a Resolver answers for one event at one node: pass the
// event on, absorb it at the node, or descend into a child.
type Decision struct {
	kind decisionKind
	id   string
}

var (
	// Pass reports the event as not handled. It is the zero Decision.
	Pass = Decision{}
	// Absorb stops resolution at the node that returned it.
	Absorb = Decision{kind: absorb}
)

// Descend asks resolution to continue at the child with the given id. An id
// that does not name a current child is treated like Pass.
func Descend(id string) Decision {
	return Decision{kind: descend, id: id}
}

// Target returns the child id of a Descend decision.
func (d Decision) Target() (string, bool) {
	return d.id, d.kind == descend
}

// Absorbed reports whether d is Absorb.
func (d Decision) Absorbed() bool {
	return d.kind == absorb
}

// Passed reports whether d is Pass.
func (d Decision) Passed() bool {
	return d.kind == pass
}

func (d Decision) String() string {
	switch d.kind {
	case absorb:
		return "absorb"
	case descend:
		return fmt.Sprintf("descend(%s)", d.id)
	default:
		return "pass"
	}
}

// Resolver decides how a node handles an event. Resolvers must not keep
// state between calls; everything they need is read from the node.
type Resolver interface {
	Resolve(ev Event, n *Node) Decision
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(ev Event, n *Node) Decision

// Resolve calls f(ev, n).
func (f ResolverFunc) Resolve(ev Event, n *Node) Decision {
	return f(ev, n)
}

// Default is used for nodes without a resolver. Nodes with several children
// navigate spatially. Otherwise an unfocused node selects its only child, or
// absorbs the event when it has none, and a focused node passes.
var Default Resolver = ResolverFunc(defaultResolve)

func defaultResolve(ev Event, n *Node) Decision {
	if n.Len() > 1 {
		return Spatial.Resolve(ev, n)
	}
	if n.IsFocused() {
		return Pass
	}
	if n.Len() == 1 {
		return Descend(n.order[0])
	}
	return Absorb
}
