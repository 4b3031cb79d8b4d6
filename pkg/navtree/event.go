package navtree

// Event is an input token fed to Resolve. The engine never interprets it;
// only resolvers do. The constants below are the values understood by the
// built-in resolvers.
type Event string

const (
	Up    Event = "up"
	Down  Event = "down"
	Left  Event = "left"
	Right Event = "right"
	Enter Event = "enter"
	Back  Event = "back"
)

// Directional reports whether ev is one of the four arrow events.
func (ev Event) Directional() bool {
	switch ev {
	case Up, Down, Left, Right:
		return true
	}
	return false
}
