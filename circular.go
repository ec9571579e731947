package singlie

// circular keeps last.Next == head at all times. A single node list is a
// self-loop.
type circular[T any] struct{}

func (circular[T]) topology() Topology {
	return Circular
}

func (circular[T]) linkFirstNode(l *List[T], n *Node[T]) {
	n.Next = n
}

func (circular[T]) linkNewHead(l *List[T], n *Node[T]) {
	l.last.Next = n
}

func (circular[T]) linkNewLast(l *List[T], n *Node[T]) {
	n.Next = l.head
}

func (circular[T]) updateHeadLinks(l *List[T]) {
	l.last.Next = l.head
}

func (circular[T]) updateLastLinks(l *List[T], last *Node[T]) {
	last.Next = l.head
}

// the only node whose successor is the head itself is a lone self-loop
func (circular[T]) shouldClearOnHeadRemoval(l *List[T], next *Node[T]) bool {
	return next == l.head
}

// NewCircular creates a ring holding values in order.
func NewCircular[T any](values ...T) *List[T] {
	return New[T](Circular, values...)
}

// ToCircular returns a new circular list with the same values in the same
// order. The ring is built through the circular list's own Append and shares
// no nodes with l.
func (l *List[T]) ToCircular() *List[T] {
	out := NewCircular[T]()
	l.walk(func(n *Node[T]) bool {
		out.Append(n.Value)
		return true
	})
	return out
}
