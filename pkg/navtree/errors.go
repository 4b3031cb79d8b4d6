package navtree

import "errors"

var (
	// ErrUnknownNode is returned when a path names an id that is not a child
	// of the node it is looked up on.
	ErrUnknownNode = errors.New("unknown node")

	// ErrResolving is returned by tree mutations attempted while Resolve is
	// running on the same tree.
	ErrResolving = errors.New("resolution in progress")
)
