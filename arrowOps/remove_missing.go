package arrowops

import (
	"fmt"
	"math"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/alekLukanen/colops/elements"
)

/*
* Removes the missing entries from the column while keeping the order of
* the remaining entries. Nulls are missing for every kind, NaN values are
* missing for real columns as well.
*
* If nothing is missing the same column is returned and its array is
* retained once more, so the caller always owns one reference to the
* result. Otherwise a new array is built and the field metadata is
* copied without the length dependent keys.
 */
func RemoveMissing(mem *memory.GoAllocator, column elements.Column) (elements.Column, error) {
	if err := column.IsValid(); err != nil {
		return elements.Column{}, elements.WithStack(err)
	}

	kind := column.Kind()
	if kind == elements.KindUnsupported {
		return elements.Column{}, elements.WithStack(
			fmt.Errorf("%w| type '%s' passed to RemoveMissing", ErrUnsupportedDataType, column.Data.DataType().Name()),
		)
	}

	isMissing := missingTest(column.Data)
	n := column.Len()
	k := 0
	for i := 0; i < n; i++ {
		if isMissing(i) {
			k++
		}
	}
	if k == 0 {
		column.Data.Retain()
		return column, nil
	}

	keep := make([]uint32, 0, n-k)
	for i := 0; i < n; i++ {
		if !isMissing(i) {
			keep = append(keep, uint32(i))
		}
	}

	ib := array.NewUint32Builder(mem)
	defer ib.Release()
	ib.AppendValues(keep, nil)
	indices := ib.NewUint32Array()
	defer indices.Release()

	compacted, err := TakeArray(mem, column.Data, indices)
	if err != nil {
		return elements.Column{}, elements.WithStack(fmt.Errorf("%w| column: %s", err, column.Name()))
	}

	field := arrow.Field{
		Name:     column.Field.Name,
		Type:     compacted.DataType(),
		Nullable: column.Field.Nullable,
		Metadata: elements.CopyMostMetadata(column.Field.Metadata),
	}
	return elements.NewColumn(field, compacted), nil
}

func missingTest(arr arrow.Array) func(int) bool {
	switch arr := arr.(type) {
	case *array.Float64:
		return func(i int) bool {
			return arr.IsNull(i) || math.IsNaN(arr.Value(i))
		}
	case *array.Float32:
		return func(i int) bool {
			return arr.IsNull(i) || math.IsNaN(float64(arr.Value(i)))
		}
	default:
		return arr.IsNull
	}
}
