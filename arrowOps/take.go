package arrowops

import (
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
)

/*
* Returns a new array holding the values of arr at the given 0-based
* indices, in the order of the indices. Null values stay null.
 */
func TakeArray(mem *memory.GoAllocator, arr arrow.Array, indices *array.Uint32) (arrow.Array, error) {
	switch arr.DataType().ID() {
	case arrow.BOOL:
		return takeArray[bool](array.NewBooleanBuilder(mem), arr.(*array.Boolean), indices), nil
	case arrow.INT8:
		return takeArray[int8](array.NewInt8Builder(mem), arr.(*array.Int8), indices), nil
	case arrow.INT16:
		return takeArray[int16](array.NewInt16Builder(mem), arr.(*array.Int16), indices), nil
	case arrow.INT32:
		return takeArray[int32](array.NewInt32Builder(mem), arr.(*array.Int32), indices), nil
	case arrow.INT64:
		return takeArray[int64](array.NewInt64Builder(mem), arr.(*array.Int64), indices), nil
	case arrow.UINT8:
		return takeArray[uint8](array.NewUint8Builder(mem), arr.(*array.Uint8), indices), nil
	case arrow.UINT16:
		return takeArray[uint16](array.NewUint16Builder(mem), arr.(*array.Uint16), indices), nil
	case arrow.UINT32:
		return takeArray[uint32](array.NewUint32Builder(mem), arr.(*array.Uint32), indices), nil
	case arrow.UINT64:
		return takeArray[uint64](array.NewUint64Builder(mem), arr.(*array.Uint64), indices), nil
	case arrow.FLOAT32:
		return takeArray[float32](array.NewFloat32Builder(mem), arr.(*array.Float32), indices), nil
	case arrow.FLOAT64:
		return takeArray[float64](array.NewFloat64Builder(mem), arr.(*array.Float64), indices), nil
	case arrow.STRING:
		return takeArray[string](array.NewStringBuilder(mem), arr.(*array.String), indices), nil
	case arrow.DICTIONARY:
		return takeDictionaryArray(mem, arr.(*array.Dictionary), indices)
	default:
		return nil, fmt.Errorf("%w| cannot take from type %s", ErrUnsupportedDataType, arr.DataType().Name())
	}
}

func takeArray[T comparable, E valueArray[T], B valueBuilder[T]](b B, arr E, indices *array.Uint32) arrow.Array {
	defer b.Release()
	b.Reserve(indices.Len())
	for i := 0; i < indices.Len(); i++ {
		idx := int(indices.Value(i))
		if arr.IsNull(idx) {
			b.AppendNull()
		} else {
			b.Append(arr.Value(idx))
		}
	}
	return b.NewArray()
}

// the dictionary itself is shared with the result, only the codes are taken
func takeDictionaryArray(mem *memory.GoAllocator, arr *array.Dictionary, indices *array.Uint32) (arrow.Array, error) {
	codes, err := TakeArray(mem, arr.Indices(), indices)
	if err != nil {
		return nil, err
	}
	defer codes.Release()
	return array.NewDictionaryArray(arr.DataType(), codes, arr.Dictionary()), nil
}
