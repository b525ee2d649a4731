package arrowops

import (
	"fmt"
	"math"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/alekLukanen/colops/elements"
)

type SelectorMode int

const (
	SelectorModePositional SelectorMode = iota
	SelectorModeMask
)

func (obj SelectorMode) String() string {
	if obj == SelectorModeMask {
		return "mask"
	}
	return "positional"
}

/*
* A normalized row selector. sources[t] is the 0-based source row that
* is written to target row t, or -1 when the target row gets the fill
* value.
 */
type scatterPlan struct {
	mode      SelectorMode
	sources   []int
	sourceLen int
}

func newScatterPlan(selector arrow.Array, targetSize int) (*scatterPlan, error) {
	if targetSize < 0 {
		return nil, elements.WithStack(fmt.Errorf("%w| target size must not be negative, got %d", ErrInvalidSize, targetSize))
	}

	switch selector.DataType().ID() {
	case arrow.INT32:
		return newPositionalPlan[int32](selector.(*array.Int32), targetSize)
	case arrow.INT64:
		return newPositionalPlan[int64](selector.(*array.Int64), targetSize)
	case arrow.BOOL:
		return newMaskPlan(selector.(*array.Boolean), targetSize)
	default:
		return nil, elements.WithStack(
			fmt.Errorf(
				"%w| selector must be integer positions or a logical mask, got %s",
				ErrUnsupportedDataType, selector.DataType().Name(),
			),
		)
	}
}

func newPositionalPlan[T integer, E valueArray[T]](positions E, targetSize int) (*scatterPlan, error) {
	destinations, err := toZeroBasedArray[T](positions, targetSize)
	if err != nil {
		return nil, elements.WithStack(err)
	}

	sources := make([]int, targetSize)
	for t := range sources {
		sources[t] = -1
	}
	for i, dst := range destinations {
		sources[dst] = i
	}
	return &scatterPlan{mode: SelectorModePositional, sources: sources, sourceLen: len(destinations)}, nil
}

func newMaskPlan(mask *array.Boolean, targetSize int) (*scatterPlan, error) {
	if mask.Len() != targetSize {
		return nil, elements.WithStack(
			fmt.Errorf("%w| mask has length %d but the target size is %d", ErrLengthMismatch, mask.Len(), targetSize),
		)
	}

	sources := make([]int, targetSize)
	k := 0
	for t := 0; t < targetSize; t++ {
		if mask.IsNull(t) {
			return nil, elements.WithStack(fmt.Errorf("%w| null mask value at index %d", ErrSelectorContainsNull, t))
		}
		if mask.Value(t) {
			sources[t] = k
			k++
		} else {
			sources[t] = -1
		}
	}
	return &scatterPlan{mode: SelectorModeMask, sources: sources, sourceLen: k}, nil
}

/*
* Scatters every column of the record into a new record with targetSize
* rows. The selector is either an int32/int64 array of 1-based target
* positions, one per source row, or a boolean mask of length targetSize
* whose true slots consume the source rows in order. Target rows not
* written get the fill value, a NaN fill leaves them null.
*
* Output columns are always float64. Field metadata is copied from each
* source column and the schema metadata from the source record.
 */
func ScatterRecord(mem *memory.GoAllocator, record arrow.Record, targetSize int, selector arrow.Array, fill float64) (arrow.Record, error) {
	record.Retain()
	defer record.Release()

	plan, err := newScatterPlan(selector, targetSize)
	if err != nil {
		return nil, err
	}

	fields := make([]arrow.Field, record.NumCols())
	columns := make([]arrow.Array, record.NumCols())
	defer func() {
		for _, col := range columns {
			if col != nil {
				col.Release()
			}
		}
	}()

	for i := 0; i < int(record.NumCols()); i++ {
		scattered, err := scatterColumn(mem, plan, elements.NewColumnFromRecord(record, i), fill)
		if err != nil {
			return nil, err
		}
		fields[i] = scattered.Field
		columns[i] = scattered.Data
	}

	schema := arrow.NewSchema(fields, elements.CopySchemaMetadata(record.Schema()))
	return array.NewRecord(schema, columns, int64(targetSize)), nil
}

// Scatters a single column, see ScatterRecord.
func ScatterArray(mem *memory.GoAllocator, column elements.Column, targetSize int, selector arrow.Array, fill float64) (elements.Column, error) {
	plan, err := newScatterPlan(selector, targetSize)
	if err != nil {
		return elements.Column{}, err
	}
	return scatterColumn(mem, plan, column, fill)
}

func scatterColumn(mem *memory.GoAllocator, plan *scatterPlan, column elements.Column, fill float64) (elements.Column, error) {
	if column.Len() != plan.sourceLen {
		return elements.Column{}, elements.WithStack(
			fmt.Errorf(
				"%w| column '%s' has %d rows but the %s selector supplies %d",
				ErrLengthMismatch, column.Name(), column.Len(), plan.mode, plan.sourceLen,
			),
		)
	}

	values, err := float64Values(column.Data)
	if err != nil {
		return elements.Column{}, elements.WithStack(fmt.Errorf("%w| column: %s", err, column.Name()))
	}

	fillValid := !math.IsNaN(fill)
	out := make([]float64, len(plan.sources))
	valid := make([]bool, len(plan.sources))
	hasNulls := false
	for t, s := range plan.sources {
		if s < 0 {
			out[t] = fill
			valid[t] = fillValid
		} else {
			out[t] = values[s]
			valid[t] = column.Data.IsValid(s)
		}
		hasNulls = hasNulls || !valid[t]
	}
	if !hasNulls {
		valid = nil
	}

	b := array.NewFloat64Builder(mem)
	defer b.Release()
	b.AppendValues(out, valid)

	field := arrow.Field{
		Name:     column.Name(),
		Type:     arrow.PrimitiveTypes.Float64,
		Nullable: true,
		Metadata: elements.ShallowCopyMetadata(column.Field.Metadata),
	}
	return elements.NewColumn(field, b.NewFloat64Array()), nil
}

/*
* Reads the values of an integer, logical or real array as float64.
* The values of null slots are unspecified.
 */
func float64Values(arr arrow.Array) ([]float64, error) {
	switch arr.DataType().ID() {
	case arrow.BOOL:
		return booleanToFloat64(arr.(*array.Boolean)), nil
	case arrow.INT8:
		return nativeToFloat64[int8](arr.(*array.Int8)), nil
	case arrow.INT16:
		return nativeToFloat64[int16](arr.(*array.Int16)), nil
	case arrow.INT32:
		return nativeToFloat64[int32](arr.(*array.Int32)), nil
	case arrow.INT64:
		return nativeToFloat64[int64](arr.(*array.Int64)), nil
	case arrow.FLOAT32:
		return nativeToFloat64[float32](arr.(*array.Float32)), nil
	case arrow.FLOAT64:
		return arr.(*array.Float64).Float64Values(), nil
	default:
		return nil, fmt.Errorf("%w| cannot scatter values of type %s", ErrUnsupportedDataType, arr.DataType().Name())
	}
}

func nativeToFloat64[T number, E valueArray[T]](arr E) []float64 {
	values := make([]float64, arr.Len())
	for i := range values {
		values[i] = float64(arr.Value(i))
	}
	return values
}

func booleanToFloat64(arr *array.Boolean) []float64 {
	values := make([]float64, arr.Len())
	for i := range values {
		if arr.Value(i) {
			values[i] = 1
		}
	}
	return values
}
