// Package navtree implements hierarchical focus management for tree-shaped
// user interfaces.
//
// A tree of Nodes models navigable regions. Exactly one root-to-leaf chain of
// nodes is focused at a time: every node keeps a pointer to its focused child,
// and the chain of those pointers starting at the root is the focused path.
//
// Input is fed to the tree as opaque Events through Resolve. Resolution runs
// in two phases. It first bubbles up from the deepest focused node, asking
// each node's Resolver what to do with the event, until some node either
// absorbs it or names a child to descend into. It then drills down from that
// child for as long as resolvers keep naming children. The node it ends on is
// committed as the new focus target.
//
// Committing focus notifies every affected node exactly once through its
// NotifyFunc: nodes on the entered path receive the remaining path, nodes on
// the exited branch receive a defocus.
//
// The package ships a small library of resolvers: ordered lists (Vertical,
// Horizontal), fixed-column grids (Grid) and a geometry based nearest
// neighbour search (Spatial). Nodes without a resolver use Default.
//
// Nothing in this package is safe for concurrent use. Resolve and the focus
// operations run synchronously to completion on the calling goroutine.
package navtree
