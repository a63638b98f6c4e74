package tree

// Action is a function type to operate on tree nodes during a walk.
// If an action returns an error for a node, descending the branch below
// this node is aborted.
type Action[T any] func(id ID, payload T) error

// TopDown traverses a (sub-)tree starting at (and including) node start.
// The traversal guarantees that parents are always processed before
// their children, and children are processed in order.
//
// The list of children of a node is captured before the node's children are
// visited, i.e., actions may restructure the tree below the current node
// without disturbing the walk. Nodes which go stale during the walk are skipped.
//
// TopDown returns the last error an action returned, if any.
func TopDown[T any](a *Arena[T], start ID, action Action[T]) error {
	if action == nil {
		return nil
	}
	var lasterr error
	var walk func(id ID)
	walk = func(id ID) {
		payload, ok := a.Get(id)
		if !ok {
			return
		}
		if err := action(id, payload); err != nil {
			tracer().Debugf("tree walk: action for node %s returned %v", id, err)
			lasterr = err
			return // do not descend further
		}
		for _, ch := range a.Children(id) {
			walk(ch)
		}
	}
	walk(start)
	return lasterr
}

// Descendants returns all descendants of a node in pre-order. The start node
// is not included.
func Descendants[T any](a *Arena[T], start ID) []ID {
	var ids []ID
	TopDown(a, start, func(id ID, _ T) error {
		if id != start {
			ids = append(ids, id)
		}
		return nil
	})
	return ids
}

// Ancestors returns the chain of ancestors of a node, nearest first.
func Ancestors[T any](a *Arena[T], id ID) []ID {
	var ids []ID
	p, ok := a.Parent(id)
	for ok {
		ids = append(ids, p)
		p, ok = a.Parent(p)
	}
	return ids
}
