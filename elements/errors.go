package elements

import (
	"errors"

	"github.com/alekLukanen/errs"
)

var (
	ErrColumnInvalid        = errors.New("column invalid")
	ErrGroupInvalid         = errors.New("group invalid")
	ErrOverlappingGroups    = errors.New("overlapping groups")
	ErrUnsupportedListValue = errors.New("unsupported list value type")
	ErrIndexOutOfBounds     = errors.New("index out of bounds")
	ErrInvalidSize          = errors.New("invalid size")
)

/*
* Attaches a stack trace to err. The stack error only unwraps to the
* errors passed to errs.Wrap, so err is passed again to keep its
* sentinel reachable through errors.Is.
 */
func WithStack(err error) error {
	return errs.Wrap(errs.NewStackError(err), err)
}
