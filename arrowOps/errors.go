package arrowops

import (
	"errors"

	"github.com/alekLukanen/colops/elements"
)

var (
	ErrUnsupportedDataType  = errors.New("unsupported data type")
	ErrLengthMismatch       = errors.New("length mismatch")
	ErrInvalidGroupSize     = errors.New("invalid group size")
	ErrSelectorContainsNull = errors.New("selector contains null")

	// shared with elements so partition and mask helpers match the same sentinel
	ErrIndexOutOfBounds = elements.ErrIndexOutOfBounds
	ErrInvalidSize      = elements.ErrInvalidSize
)
