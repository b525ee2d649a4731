package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/spf13/cobra"

	"github.com/alekLukanen/colops/elements"
)

// token used on the command line for a missing value
const naToken = "NA"

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	tokens := strings.Split(value, ",")
	for idx, token := range tokens {
		tokens[idx] = strings.TrimSpace(token)
	}
	return tokens
}

func parseFloatToken(token string) (float64, error) {
	if token == naToken {
		return math.NaN(), nil
	}
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, elements.WithStack(fmt.Errorf("%w| '%s' is not a number", ErrInvalidValue, token))
	}
	return value, nil
}

/*
* Parses one comma separated position list per group into a list<int32>
* array, one list entry per group, and splits it into a partition.
 */
func parseGroups(mem *memory.GoAllocator, groups []string) (elements.Partition, error) {
	b := array.NewListBuilder(mem, arrow.PrimitiveTypes.Int32)
	defer b.Release()
	vb := b.ValueBuilder().(*array.Int32Builder)

	for idx, group := range groups {
		b.Append(true)
		for _, token := range splitList(group) {
			pos, err := strconv.ParseInt(token, 10, 32)
			if err != nil {
				return nil, elements.WithStack(
					fmt.Errorf("%w| group %d position '%s' is not an integer", ErrInvalidValue, idx+1, token),
				)
			}
			vb.Append(int32(pos))
		}
	}

	list := b.NewListArray()
	defer list.Release()
	return elements.PartitionFromList(list)
}

/*
* Parses "name=v1,v2,..." column definitions into a record of float64
* columns. All columns must have the same number of values.
 */
func parseColumns(mem *memory.GoAllocator, columns []string) (arrow.Record, error) {
	if len(columns) == 0 {
		return nil, elements.WithStack(fmt.Errorf("%w| at least one column is required", ErrInvalidValue))
	}

	fields := make([]arrow.Field, len(columns))
	arrays := make([]arrow.Array, len(columns))
	defer func() {
		for _, arr := range arrays {
			if arr != nil {
				arr.Release()
			}
		}
	}()

	numRows := -1
	for idx, column := range columns {
		name, values, found := strings.Cut(column, "=")
		if !found || name == "" {
			return nil, elements.WithStack(fmt.Errorf("%w| column '%s' must be name=values", ErrInvalidValue, column))
		}
		col, err := parseValues(mem, name, elements.KindReal, splitList(values))
		if err != nil {
			return nil, err
		}
		if numRows >= 0 && col.Len() != numRows {
			err := elements.WithStack(
				fmt.Errorf("%w| column '%s' has %d values, expected %d", ErrInvalidValue, name, col.Len(), numRows),
			)
			col.Release()
			return nil, err
		}
		numRows = col.Len()
		fields[idx] = col.Field
		arrays[idx] = col.Data
	}

	return array.NewRecord(arrow.NewSchema(fields, nil), arrays, int64(numRows)), nil
}

// Parses the values of one column, NA tokens become nulls.
func parseValues(mem *memory.GoAllocator, name string, kind elements.Kind, tokens []string) (elements.Column, error) {
	var dtype arrow.DataType
	switch kind {
	case elements.KindInteger:
		dtype = arrow.PrimitiveTypes.Int32
	case elements.KindLogical:
		dtype = arrow.FixedWidthTypes.Boolean
	case elements.KindReal:
		dtype = arrow.PrimitiveTypes.Float64
	case elements.KindString:
		dtype = arrow.BinaryTypes.String
	default:
		return elements.Column{}, elements.WithStack(fmt.Errorf("%w| unsupported kind %s", ErrInvalidValue, kind))
	}
	b := array.NewBuilder(mem, dtype)
	defer b.Release()

	for _, token := range tokens {
		if token == naToken {
			b.AppendNull()
			continue
		}
		if err := b.AppendValueFromString(token); err != nil {
			return elements.Column{}, elements.WithStack(
				fmt.Errorf("%w| '%s' is not a valid %s value", ErrInvalidValue, token, kind),
			)
		}
	}

	field := arrow.Field{Name: name, Type: dtype, Nullable: true}
	return elements.NewColumn(field, b.NewArray()), nil
}

func buildSelector(mem *memory.GoAllocator, cmd *cobra.Command, size int) (arrow.Array, error) {
	if cmd.Flags().Changed("mask-positions") {
		positions, _ := cmd.Flags().GetInt32Slice("mask-positions")
		bitmap := roaring.New()
		for _, pos := range positions {
			if pos < 1 {
				return nil, elements.WithStack(
					fmt.Errorf("%w| mask position %d is not a positive integer", ErrInvalidValue, pos),
				)
			}
			bitmap.Add(uint32(pos))
		}
		mask, err := elements.MaskFromBitmap(mem, bitmap, size)
		if err != nil {
			return nil, err
		}
		return mask, nil
	}
	if cmd.Flags().Changed("mask") {
		mask, _ := cmd.Flags().GetBoolSlice("mask")
		b := array.NewBooleanBuilder(mem)
		defer b.Release()
		b.AppendValues(mask, nil)
		return b.NewArray(), nil
	}

	positions, _ := cmd.Flags().GetInt32Slice("positions")
	b := array.NewInt32Builder(mem)
	defer b.Release()
	b.AppendValues(positions, nil)
	return b.NewArray(), nil
}
