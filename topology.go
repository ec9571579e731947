package singlie

import (
	"strings"

	"github.com/pkg/errors"
)

// Topology is the linking discipline of a list, fixed when the list is created.
type Topology int

const (
	// Linear lists end with a nil link.
	Linear Topology = iota
	// Circular lists link their last node back to the head.
	Circular
)

func (t Topology) String() string {
	switch t {
	case Linear:
		return "linear"
	case Circular:
		return "circular"
	}
	return "unknown"
}

func ParseTopology(s string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return Linear, nil
	case "circular":
		return Circular, nil
	}
	return Linear, errors.Errorf("unknown topology %q", s)
}

// linker holds the moments where the two topologies diverge. The List core
// calls into it only after it has updated head, last and the plain forward
// links itself.
type linker[T any] interface {
	topology() Topology

	// empty -> one node
	linkFirstNode(l *List[T], n *Node[T])

	// n was just made the head of a non-empty list
	linkNewHead(l *List[T], n *Node[T])

	// n was just made the last node of a non-empty list
	linkNewLast(l *List[T], n *Node[T])

	// the old head was dropped and l.head already points at its successor
	updateHeadLinks(l *List[T])

	// the old last node was dropped, last is its predecessor
	updateLastLinks(l *List[T], last *Node[T])

	// whether dropping the head, whose successor is next, empties the list
	shouldClearOnHeadRemoval(l *List[T], next *Node[T]) bool
}

func linkerFor[T any](t Topology) linker[T] {
	if t == Circular {
		return circular[T]{}
	}
	return linear[T]{}
}
