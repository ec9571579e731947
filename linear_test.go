package singlie

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/karlseguin/singlie/assert"
)

func Test_Linear_LastIsNilTerminated(t *testing.T) {
	l := NewLinear(1)
	assert.Nil(t, l.Head().Next)

	l.Append(2, 3)
	last, _ := l.Node(2)
	assert.Nil(t, last.Next)

	l.Prepend(0)
	l.Remove(3)
	last, _ = l.Node(l.Len() - 1)
	assert.Nil(t, last.Next)
	assertList(t, l, 0, 1, 2)
}

func Test_Linear_ToCircular(t *testing.T) {
	l := NewLinear("a", "b", "c")
	c := l.ToCircular()
	assert.True(t, c.IsCircular())
	assertList(t, c, "a", "b", "c")
	assertList(t, l, "a", "b", "c")
	assertDisjoint(t, l, c)

	assertList(t, NewLinear[string]().ToCircular())
}

func Test_Linear_RoundTrip(t *testing.T) {
	l := NewLinear(5, 4, 3, 2, 1)
	back := l.ToCircular().ToLinear()
	assert.True(t, back.IsLinear())
	if diff := cmp.Diff(l.ToSlice(), back.ToSlice()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func Test_Linear_ToLinearCopies(t *testing.T) {
	l := NewLinear(1, 2)
	copied := l.ToLinear()
	assertList(t, copied, 1, 2)
	assertDisjoint(t, l, copied)
}

// Traversal stops on identity, so a chain rewired into a ring through a node
// handle still terminates.
func Test_Linear_TraversalSurvivesRewiredRing(t *testing.T) {
	l := NewLinear(1, 2, 3)
	last, _ := l.Node(2)
	last.Next = l.Head()

	assert.List(t, l.ToSlice(), []int{1, 2, 3})
	assert.Equal(t, l.Join(" "), "1 2 3")
	assert.Equal(t, IndexOf(l, 4), -1)
}
