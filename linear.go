package singlie

// linear keeps the chain nil-terminated. Appending and prepending already
// leave a nil link at the end, so most hooks have nothing to do.
type linear[T any] struct{}

func (linear[T]) topology() Topology {
	return Linear
}

func (linear[T]) linkFirstNode(l *List[T], n *Node[T]) {}

func (linear[T]) linkNewHead(l *List[T], n *Node[T]) {}

func (linear[T]) linkNewLast(l *List[T], n *Node[T]) {}

func (linear[T]) updateHeadLinks(l *List[T]) {}

func (linear[T]) updateLastLinks(l *List[T], last *Node[T]) {
	last.Next = nil
}

func (linear[T]) shouldClearOnHeadRemoval(l *List[T], next *Node[T]) bool {
	return next == nil
}

// NewLinear creates a nil-terminated list holding values in order.
func NewLinear[T any](values ...T) *List[T] {
	return New[T](Linear, values...)
}

// ToLinear returns a new linear list with the same values in the same order.
// The copy is built through the linear list's own Append and shares no nodes
// with l.
func (l *List[T]) ToLinear() *List[T] {
	out := NewLinear[T]()
	l.walk(func(n *Node[T]) bool {
		out.Append(n.Value)
		return true
	})
	return out
}
