package arrowops

import (
	"fmt"
)

/*
* Converts an external 1-based position into an internal 0-based index.
* This is the only place where 1-based positions are handled, every
* algorithm in this package works on 0-based indexes.
 */
func toZeroBased[T integer](pos T, size int) (int, error) {
	if pos < 1 || int64(pos) > int64(size) {
		return 0, fmt.Errorf("%w| position %d outside of [1, %d]", ErrIndexOutOfBounds, pos, size)
	}
	return int(pos) - 1, nil
}

func toZeroBasedArray[T integer, E valueArray[T]](positions E, size int) ([]int, error) {
	indexes := make([]int, positions.Len())
	for i := range indexes {
		if positions.IsNull(i) {
			return nil, fmt.Errorf("%w| null position at selector index %d", ErrSelectorContainsNull, i)
		}
		idx, err := toZeroBased(positions.Value(i), size)
		if err != nil {
			return nil, fmt.Errorf("%w| selector index: %d", err, i)
		}
		indexes[i] = idx
	}
	return indexes, nil
}
