package singlie

// Map returns a new list of l's topology holding fn applied to every value.
// It's a function rather than a method because the element type may change.
func Map[T any, U any](l *List[T], fn func(value T) U) *List[U] {
	out := New[U](l.Topology())
	l.walk(func(n *Node[T]) bool {
		out.Append(fn(n.Value))
		return true
	})
	return out
}

// Reduce folds the values from head to last, starting with initial.
func Reduce[T any, U any](l *List[T], fn func(acc U, value T) U, initial U) U {
	acc := initial
	l.walk(func(n *Node[T]) bool {
		acc = fn(acc, n.Value)
		return true
	})
	return acc
}

func Includes[T comparable](l *List[T], value T) bool {
	return IndexOf(l, value) != -1
}

// IndexOf returns the position of the first value equal to value, or -1.
func IndexOf[T comparable](l *List[T], value T) int {
	return l.IndexFunc(func(v T) bool {
		return v == value
	})
}
