package navtree

import "math"

// Rect is the bounding box of a laid out element, in any consistent unit
// with y growing downwards.
type Rect struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Width returns Right-Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom-Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Empty reports a rect with no extent, which is how invisible elements are
// reported by most layout engines.
func (r Rect) Empty() bool {
	return r.Width() == 0 && r.Height() == 0
}

// Point is a position in the same space as Rect.
type Point struct {
	X float64
	Y float64
}

// Edge returns the midpoint of the edge facing the direction of ev.
func (r Rect) Edge(ev Event) Point {
	midX := r.Left + r.Width()/2
	midY := r.Top + r.Height()/2
	switch ev {
	case Left:
		return Point{X: r.Left, Y: midY}
	case Right:
		return Point{X: r.Right, Y: midY}
	case Up:
		return Point{X: midX, Y: r.Top}
	case Down:
		return Point{X: midX, Y: r.Bottom}
	}
	return Point{X: midX, Y: midY}
}

// GeometryFunc reports the current bounding box of a node's element. It
// returns false when the element is not laid out.
type GeometryFunc func() (Rect, bool)

// Geometry returns the node's bounding box. Nodes without a provider, nodes
// whose provider reports nothing and nodes with an empty box have none.
func (n *Node) Geometry() (Rect, bool) {
	if n.geometry == nil {
		return Rect{}, false
	}
	r, ok := n.geometry()
	if !ok || r.Empty() {
		return Rect{}, false
	}
	return r, true
}

var opposite = map[Event]Event{
	Left:  Right,
	Right: Left,
	Up:    Down,
	Down:  Up,
}

// Spatial picks the child closest to the current position in the direction
// of a directional event. The current position is the facing edge of the
// focused child, or of the deepest focused node in the tree when the node
// has no focused child, or the origin. Each candidate is measured at its
// opposite edge; candidates that are not strictly ahead are skipped, and
// ties go to the child added first. Non-directional events pass.
var Spatial Resolver = ResolverFunc(spatialResolve)

func spatialResolve(ev Event, n *Node) Decision {
	back, ok := opposite[ev]
	if !ok {
		return Pass
	}

	source, ok := n.FocusedNode(false)
	if !ok {
		source, _ = n.Root().FocusedNode(true)
	}
	var from Point
	if source != nil {
		if r, ok := source.Geometry(); ok {
			from = r.Edge(ev)
		}
	}

	var (
		best     string
		bestDist float64
		found    bool
	)
	for _, id := range n.order {
		ch := n.children[id]
		if ch == source {
			continue
		}
		r, ok := ch.Geometry()
		if !ok {
			continue
		}
		to := r.Edge(back)
		if !ahead(ev, from, to) {
			continue
		}
		dist := math.Hypot(to.X-from.X, to.Y-from.Y)
		if !found || dist < bestDist {
			best, bestDist, found = id, dist, true
		}
	}

	if !found {
		return Pass
	}
	return Descend(best)
}

func ahead(ev Event, from, to Point) bool {
	switch ev {
	case Left:
		return to.X < from.X
	case Right:
		return to.X > from.X
	case Up:
		return to.Y < from.Y
	case Down:
		return to.Y > from.Y
	}
	return false
}
