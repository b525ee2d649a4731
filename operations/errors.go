package operations

import "errors"

var (
	ErrAssignGroupsFailed  = errors.New("assign groups failed")
	ErrScatterFailed       = errors.New("scatter failed")
	ErrRemoveMissingFailed = errors.New("remove missing failed")
)
