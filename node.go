package singlie

// Node is a single cell of a list: a value and a link to the next node.
// Both fields are writable. A node obtained through List.Node is an alias
// into the list's chain, rewiring Next bypasses the list's bookkeeping.
type Node[T any] struct {
	Value T
	Next  *Node[T]
}

func NewNode[T any](value T) *Node[T] {
	return &Node[T]{Value: value}
}
