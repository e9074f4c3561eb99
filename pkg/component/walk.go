package component

// Walk returns every component reachable from root, exactly once, with
// every parent appearing before its children and siblings in declared
// order. The traversal is an explicit-stack pre-order so that arbitrarily
// deep trees cannot exhaust the call stack.
//
// Reversing the result (see [Reversed]) yields the children-before-parents
// order the bottom-up sizing pass runs in.
func Walk(root Component) []Component {
	var out []Component

	stack := []Component{root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur)

		// Push in reverse so the first child is popped first.
		children := TreeChildren(cur)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return out
}

// Reversed returns a reversed copy of order.
func Reversed(order []Component) []Component {
	out := make([]Component, len(order))
	for i, c := range order {
		out[len(order)-1-i] = c
	}
	return out
}
