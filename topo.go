package autograd

// Direction selects the ordering returned by TopoSort.
type Direction int

const (
	// Descending is root-first: every node appears strictly before all of
	// its operands. This is the order a backward pass consumes.
	Descending Direction = iota
	// Ascending is the raw depth-first post-order. Leaves tend to appear
	// first, though that is not guaranteed for graphs with shared nodes.
	Ascending
)

// TopoSort linearizes the graph rooted at root into a topological order.
// The traversal is a depth-first search with an identity-keyed visited set:
// operands are visited in their fixed order before the node itself is
// appended, so each node is finalized exactly once even when it is
// reachable over several paths. The sort never touches gradients and is
// deterministic for a fixed graph, so repeated calls return the same order.
func TopoSort(root *Value, dir Direction) []*Value {
	var stack []*Value
	visited := make(map[uint64]bool)

	var visit func(*Value)
	visit = func(node *Value) {
		if visited[node.id] {
			return
		}
		visited[node.id] = true
		for _, child := range node.prev {
			visit(child)
		}
		stack = append(stack, node)
	}
	visit(root)

	if dir == Ascending {
		return stack
	}
	for i, j := 0, len(stack)-1; i < j; i, j = i+1, j-1 {
		stack[i], stack[j] = stack[j], stack[i]
	}
	return stack
}
