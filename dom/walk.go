package dom

// Walk traverses the subtree starting at (and including) id in pre-order,
// depth first. If fn returns false for a node, the children of this node
// are skipped.
//
// Walk does not protect against cycles; hosts are expected to be trees.
func Walk(h Host, id NodeID, fn func(NodeID) bool) {
	if h == nil || id == NoNode || fn == nil {
		return
	}
	stack := []NodeID{id}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			continue
		}
		children := h.Children(n)
		for i := len(children) - 1; i >= 0; i-- { // push in reverse to keep document order
			if children[i] != NoNode {
				stack = append(stack, children[i])
			}
		}
	}
}

// Descendants returns all descendants of id in pre-order, not including id.
func Descendants(h Host, id NodeID) []NodeID {
	var r []NodeID
	Walk(h, id, func(n NodeID) bool {
		if n != id {
			r = append(r, n)
		}
		return true
	})
	tracer().Debugf("%d descendants for node %s", len(r), id)
	return r
}
