package navtree

// List moves between children in insertion order. Prev and Next are the
// events that step backwards and forwards; movement stops at either end.
// Any other event selects the first child when nothing is focused yet and
// passes otherwise.
type List struct {
	Prev Event
	Next Event
}

var (
	// Vertical is a List driven by Up and Down.
	Vertical = List{Prev: Up, Next: Down}
	// Horizontal is a List driven by Left and Right.
	Horizontal = List{Prev: Left, Next: Right}
)

// Resolve implements Resolver.
func (l List) Resolve(ev Event, n *Node) Decision {
	focused, _ := n.FocusedChildID()
	switch ev {
	case l.Prev:
		return step(n.order, focused, -1)
	case l.Next:
		return step(n.order, focused, 1)
	}
	if focused != "" || n.Len() == 0 {
		return Pass
	}
	return Descend(n.order[0])
}

// Grid lays children out row by row in Cols columns. Left and Right move
// within the focused child's row, Up and Down within its column; movement
// never wraps. Without a focused child the first row and column are used.
type Grid struct {
	Cols int
}

// Resolve implements Resolver.
func (g Grid) Resolve(ev Event, n *Node) Decision {
	cols := max(g.Cols, 1)
	focused, _ := n.FocusedChildID()
	pos := -1
	for i, id := range n.order {
		if id == focused {
			pos = i
			break
		}
	}

	switch ev {
	case Left, Right:
		row := 0
		if pos >= 0 {
			row = pos / cols
		}
		start := row * cols
		if start >= len(n.order) {
			return Pass
		}
		end := min(start+cols, len(n.order))
		return step(n.order[start:end], focused, direction(ev, Left))
	case Up, Down:
		col := 0
		if pos >= 0 {
			col = pos % cols
		}
		var column []string
		for i := col; i < len(n.order); i += cols {
			column = append(column, n.order[i])
		}
		return step(column, focused, direction(ev, Up))
	}
	return Pass
}

func direction(ev, backwards Event) int {
	if ev == backwards {
		return -1
	}
	return 1
}

// step moves one position from current within ids. Without a current id it
// lands on the first id moving forwards and the last moving backwards.
func step(ids []string, current string, dir int) Decision {
	pos := -1
	for i, id := range ids {
		if current != "" && id == current {
			pos = i
			break
		}
	}

	next := pos + dir
	if pos == -1 {
		next = 0
		if dir < 0 {
			next = len(ids) - 1
		}
	}
	if next < 0 || next >= len(ids) {
		return Pass
	}
	return Descend(ids[next])
}
