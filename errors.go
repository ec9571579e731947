package singlie

import (
	"github.com/pkg/errors"
)

// ErrIndexOutOfRange is returned by Get, Node, Set, Remove and Insert when the
// index falls outside the list. Returned errors wrap it, use errors.Is.
var ErrIndexOutOfRange = errors.New("list index out of bounds")

func outOfRange(index int, length int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", index, length)
}
