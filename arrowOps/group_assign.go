package arrowops

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/alekLukanen/colops/elements"
)

/*
* Returns an int32 array of length totalRows holding the 1-based group
* label of each row. Rows not referenced by any group are labeled 0.
*
* Groups are written from last to first, so if a position is shared by
* more than one group the lowest group label wins. Callers are expected
* to supply disjoint groups, see elements.PartitionCoverage for a
* strict check.
 */
func AssignGroups(mem *memory.GoAllocator, partition elements.Partition, totalRows int) (*array.Int32, error) {
	if totalRows < 0 {
		return nil, elements.WithStack(fmt.Errorf("%w| total rows must not be negative, got %d", ErrInvalidSize, totalRows))
	}

	labels := make([]int32, totalRows)
	for g := len(partition) - 1; g >= 0; g-- {
		group := partition[g]
		if group.Positions == nil || group.Size < 0 || group.Size > group.Positions.Len() {
			return nil, elements.WithStack(invalidGroupSizeErr(group, g))
		}

		label := int32(g + 1)
		for i := group.Size - 1; i >= 0; i-- {
			if group.Positions.IsNull(i) {
				return nil, elements.WithStack(
					fmt.Errorf("%w| group %d has a null position at index %d", ErrIndexOutOfBounds, label, i),
				)
			}
			idx, err := toZeroBased(group.Positions.Value(i), totalRows)
			if err != nil {
				return nil, elements.WithStack(fmt.Errorf("%w| group: %d, index: %d", err, label, i))
			}
			labels[idx] = label
		}
	}

	b := array.NewInt32Builder(mem)
	defer b.Release()
	b.AppendValues(labels, nil)
	return b.NewInt32Array(), nil
}

func invalidGroupSizeErr(group elements.Group, g int) error {
	if group.Positions == nil {
		return fmt.Errorf("%w| group %d has no positions", ErrInvalidGroupSize, g+1)
	}
	return fmt.Errorf(
		"%w| group %d has size %d but only %d positions",
		ErrInvalidGroupSize, g+1, group.Size, group.Positions.Len(),
	)
}

// Returns the 1-based positions of the rows that no group was assigned to.
func UnassignedRows(labels *array.Int32) *roaring.Bitmap {
	unassigned := roaring.New()
	for i := 0; i < labels.Len(); i++ {
		if labels.IsValid(i) && labels.Value(i) == 0 {
			unassigned.Add(uint32(i + 1))
		}
	}
	return unassigned
}
