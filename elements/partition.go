package elements

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
)

/*
* A group of 1-based row positions. Only the first Size positions are
* read, the remainder of the array is unused capacity.
 */
type Group struct {
	Positions *array.Int32
	Size      int
}

func NewGroup(positions *array.Int32) Group {
	return Group{
		Positions: positions,
		Size:      positions.Len(),
	}
}

func NewGroupWithSize(positions *array.Int32, size int) Group {
	return Group{
		Positions: positions,
		Size:      size,
	}
}

func (obj Group) IsValid() error {
	if obj.Positions == nil {
		return fmt.Errorf("%w| group has no positions", ErrGroupInvalid)
	}
	if obj.Size < 0 || obj.Size > obj.Positions.Len() {
		return fmt.Errorf(
			"%w| size %d outside of positions length %d",
			ErrGroupInvalid, obj.Size, obj.Positions.Len(),
		)
	}
	return nil
}

// Partition is an ordered list of groups. The label of a group is its
// 1-based index in the list.
type Partition []Group

func NewPartitionFromSlices(mem *memory.GoAllocator, groups ...[]int32) Partition {
	partition := make(Partition, len(groups))
	for idx, positions := range groups {
		b := array.NewInt32Builder(mem)
		b.AppendValues(positions, nil)
		partition[idx] = NewGroup(b.NewInt32Array())
		b.Release()
	}
	return partition
}

/*
* Builds a partition from a list<int32> array where each list entry
* holds the positions of one group.
 */
func PartitionFromList(list *array.List) (Partition, error) {
	values, ok := list.ListValues().(*array.Int32)
	if !ok {
		return nil, WithStack(
			fmt.Errorf("%w| list values have type %s", ErrUnsupportedListValue, list.ListValues().DataType()),
		)
	}

	partition := make(Partition, list.Len())
	for idx := 0; idx < list.Len(); idx++ {
		start, end := list.ValueOffsets(idx)
		positions := array.NewSlice(values, start, end).(*array.Int32)
		partition[idx] = NewGroup(positions)
	}
	return partition, nil
}

func (obj Partition) Release() {
	for _, group := range obj {
		if group.Positions != nil {
			group.Positions.Release()
		}
	}
}

func (obj Partition) Validate() error {
	for idx, group := range obj {
		if err := group.IsValid(); err != nil {
			return WithStack(fmt.Errorf("%w| group %d", err, idx+1))
		}
	}
	return nil
}

/*
* Returns the union of all valid positions in the partition. Fails
* when a position belongs to more than one group, or is not a
* positive position.
 */
func PartitionCoverage(partition Partition) (*roaring.Bitmap, error) {
	if err := partition.Validate(); err != nil {
		return nil, err
	}

	coverage := roaring.New()
	for idx, group := range partition {
		for i := 0; i < group.Size; i++ {
			if group.Positions.IsNull(i) || group.Positions.Value(i) < 1 {
				return nil, WithStack(
					fmt.Errorf("%w| group %d has an invalid position at index %d", ErrIndexOutOfBounds, idx+1, i),
				)
			}
			pos := uint32(group.Positions.Value(i))
			if !coverage.CheckedAdd(pos) {
				return nil, WithStack(
					fmt.Errorf("%w| position %d repeated in group %d", ErrOverlappingGroups, pos, idx+1),
				)
			}
		}
	}
	return coverage, nil
}

/*
* Builds a boolean mask of length size with true at every 1-based
* position in the bitmap.
 */
func MaskFromBitmap(mem *memory.GoAllocator, positions *roaring.Bitmap, size int) (*array.Boolean, error) {
	if size < 0 {
		return nil, WithStack(fmt.Errorf("%w| mask size must not be negative, got %d", ErrInvalidSize, size))
	}
	if !positions.IsEmpty() && (positions.Minimum() < 1 || int(positions.Maximum()) > size) {
		return nil, WithStack(
			fmt.Errorf("%w| bitmap positions must lie in [1, %d]", ErrIndexOutOfBounds, size),
		)
	}

	mask := make([]bool, size)
	it := positions.Iterator()
	for it.HasNext() {
		mask[it.Next()-1] = true
	}

	b := array.NewBooleanBuilder(mem)
	defer b.Release()
	b.AppendValues(mask, nil)
	return b.NewBooleanArray(), nil
}
