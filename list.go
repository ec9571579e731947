// A generic singly linked list with a linear or circular topology
package singlie

import (
	"fmt"
	"iter"
	"strings"
)

// List is a singly linked list. Its topology is chosen at construction and
// never changes, see NewLinear and NewCircular. The zero value is an empty
// linear list.
//
// A List is not safe for concurrent use. Callbacks handed to ForEach, Filter,
// Map, Reduce, All or Values must not mutate the list they are iterating,
// doing so is undefined.
type List[T any] struct {
	head   *Node[T]
	last   *Node[T]
	length int
	links  linker[T]
}

// InsertOptions describes an Insert. Every value is inserted, in order, at
// Index.
type InsertOptions[T any] struct {
	Values []T
	Index  int
}

type SetOptions[T any] struct {
	Value T
	Index int
}

// New creates a list of the given topology holding values in order.
func New[T any](topology Topology, values ...T) *List[T] {
	l := &List[T]{links: linkerFor[T](topology)}
	return l.Append(values...)
}

func (l *List[T]) linker() linker[T] {
	if l.links == nil {
		l.links = linear[T]{}
	}
	return l.links
}

// Head returns the first node, or nil when the list is empty.
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Last returns the final node, or nil when the list is empty.
func (l *List[T]) Last() *Node[T] {
	return l.last
}

func (l *List[T]) Len() int {
	return l.length
}

func (l *List[T]) Topology() Topology {
	return l.linker().topology()
}

func (l *List[T]) IsLinear() bool {
	return l.Topology() == Linear
}

func (l *List[T]) IsCircular() bool {
	return l.Topology() == Circular
}

func (l *List[T]) IsEmpty() bool {
	return l.length == 0
}

func (l *List[T]) inBounds(index int) bool {
	return index >= 0 && index < l.length
}

// Append adds each value to the end of the list, in argument order.
func (l *List[T]) Append(values ...T) *List[T] {
	for _, value := range values {
		if l.length == 0 {
			l.initialize(value)
			continue
		}
		node := NewNode(value)
		l.last.Next = node
		l.last = node
		l.linker().linkNewLast(l, node)
		l.length++
	}
	return l
}

// Prepend makes each value the new head, in argument order. Prepend(b, a)
// therefore leaves a at the front.
func (l *List[T]) Prepend(values ...T) *List[T] {
	for _, value := range values {
		if l.length == 0 {
			l.initialize(value)
			continue
		}
		node := &Node[T]{Value: value, Next: l.head}
		l.head = node
		l.linker().linkNewHead(l, node)
		l.length++
	}
	return l
}

// Insert places each of opts.Values at opts.Index, one after the other. An
// index of 0 prepends and an index equal to the current length appends.
// Since every value goes to the same index, inserting several values in the
// middle of the list leaves them in reverse order.
// The list is returned unchanged along with an error if the index is outside
// [0, Len()].
func (l *List[T]) Insert(opts InsertOptions[T]) (*List[T], error) {
	index := opts.Index
	if index < 0 || index > l.length {
		return l, outOfRange(index, l.length)
	}
	for _, value := range opts.Values {
		switch index {
		case 0:
			l.Prepend(value)
		case l.length:
			l.Append(value)
		default:
			prev := l.nodeAt(index - 1)
			prev.Next = &Node[T]{Value: value, Next: prev.Next}
			l.length++
		}
	}
	return l, nil
}

// Remove drops the node at index. Removing the only node empties the list.
func (l *List[T]) Remove(index int) (*List[T], error) {
	if !l.inBounds(index) {
		return l, outOfRange(index, l.length)
	}
	switch index {
	case 0:
		l.removeHead()
	case l.length - 1:
		l.removeLast()
	default:
		prev := l.nodeAt(index - 1)
		node := prev.Next
		prev.Next = node.Next
		node.Next = nil
		l.length--
	}
	return l, nil
}

// Clear empties the list. Nodes previously returned by Node are left as they
// were.
func (l *List[T]) Clear() *List[T] {
	l.head = nil
	l.last = nil
	l.length = 0
	return l
}

func (l *List[T]) Get(index int) (T, error) {
	node, err := l.Node(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return node.Value, nil
}

// Set replaces the value at opts.Index in place.
func (l *List[T]) Set(opts SetOptions[T]) (*List[T], error) {
	node, err := l.Node(opts.Index)
	if err != nil {
		return l, err
	}
	node.Value = opts.Value
	return l, nil
}

// Node returns the node at index. The node is live: writing its Value is
// visible through the list, rewiring its Next is the caller's responsibility.
func (l *List[T]) Node(index int) (*Node[T], error) {
	if !l.inBounds(index) {
		return nil, outOfRange(index, l.length)
	}
	return l.nodeAt(index), nil
}

// ForEach calls fn with every value from head to last.
func (l *List[T]) ForEach(fn func(value T)) *List[T] {
	l.walk(func(n *Node[T]) bool {
		fn(n.Value)
		return true
	})
	return l
}

// Filter returns a new list of the same topology holding the values for
// which keep returns true.
func (l *List[T]) Filter(keep func(value T) bool) *List[T] {
	out := l.empty()
	l.walk(func(n *Node[T]) bool {
		if keep(n.Value) {
			out.Append(n.Value)
		}
		return true
	})
	return out
}

// Reverse returns a new list of the same topology with the values in
// reverse order. l is not modified.
func (l *List[T]) Reverse() *List[T] {
	out := l.empty()
	l.walk(func(n *Node[T]) bool {
		out.Prepend(n.Value)
		return true
	})
	return out
}

// Clone returns a copy of the list made of fresh nodes.
func (l *List[T]) Clone() *List[T] {
	out := l.empty()
	l.walk(func(n *Node[T]) bool {
		out.Append(n.Value)
		return true
	})
	return out
}

func (l *List[T]) ContainsFunc(match func(value T) bool) bool {
	return l.IndexFunc(match) != -1
}

// IndexFunc returns the position of the first value matching, or -1.
func (l *List[T]) IndexFunc(match func(value T) bool) int {
	found, i := -1, 0
	l.walk(func(n *Node[T]) bool {
		if match(n.Value) {
			found = i
			return false
		}
		i++
		return true
	})
	return found
}

// ToSlice copies the values into a newly allocated slice.
func (l *List[T]) ToSlice() []T {
	values := make([]T, 0, l.length)
	l.walk(func(n *Node[T]) bool {
		values = append(values, n.Value)
		return true
	})
	return values
}

// Join formats each value with fmt and puts sep between them.
func (l *List[T]) Join(sep string) string {
	var sb strings.Builder
	first := true
	l.walk(func(n *Node[T]) bool {
		if !first {
			sb.WriteString(sep)
		}
		first = false
		fmt.Fprint(&sb, n.Value)
		return true
	})
	return sb.String()
}

func (l *List[T]) String() string {
	return l.Join(",")
}

// All iterates over positions and values from head to last.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		l.walk(func(n *Node[T]) bool {
			if !yield(i, n.Value) {
				return false
			}
			i++
			return true
		})
	}
}

func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.walk(func(n *Node[T]) bool {
			return yield(n.Value)
		})
	}
}

func (l *List[T]) initialize(value T) {
	node := NewNode(value)
	l.head = node
	l.last = node
	l.linker().linkFirstNode(l, node)
	l.length++
}

func (l *List[T]) removeHead() {
	head := l.head
	next := head.Next
	if l.linker().shouldClearOnHeadRemoval(l, next) {
		head.Next = nil
		l.Clear()
		return
	}
	l.head = next
	l.linker().updateHeadLinks(l)
	head.Next = nil
	l.length--
}

func (l *List[T]) removeLast() {
	last := l.last
	prev := l.nodeAt(l.length - 2)
	l.last = prev
	l.linker().updateLastLinks(l, prev)
	last.Next = nil
	l.length--
}

// nodeAt assumes index has been validated.
func (l *List[T]) nodeAt(index int) *Node[T] {
	node := l.head
	for i := 0; i < index; i++ {
		node = node.Next
	}
	return node
}

// walk visits nodes from the head until fn returns false, the chain ends, or
// it wraps around to the head again. Termination compares node identity, not
// the length counter.
func (l *List[T]) walk(fn func(n *Node[T]) bool) {
	head := l.head
	for n := head; n != nil; n = n.Next {
		if !fn(n) || n.Next == head {
			return
		}
	}
}

func (l *List[T]) empty() *List[T] {
	return &List[T]{links: l.linker()}
}
