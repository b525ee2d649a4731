package main

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/stretchr/testify/assert"

	arrowops "github.com/alekLukanen/colops/arrowOps"
	"github.com/alekLukanen/colops/elements"
)

func runCommand(args ...string) (string, error) {
	root := newRootCommand()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestParseFloatToken(t *testing.T) {
	value, err := parseFloatToken("-1.5")
	assert.Nil(t, err)
	assert.Equal(t, -1.5, value)

	value, err = parseFloatToken("NA")
	assert.Nil(t, err)
	assert.True(t, math.IsNaN(value))

	_, err = parseFloatToken("abc")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestParseGroups(t *testing.T) {
	mem := memory.NewGoAllocator()

	partition, err := parseGroups(mem, []string{"1,3", " 2, 4 ,5"})
	if !assert.Nil(t, err) {
		return
	}
	defer partition.Release()

	assert.Len(t, partition, 2)
	assert.Equal(t, []int32{1, 3}, partition[0].Positions.Int32Values())
	assert.Equal(t, []int32{2, 4, 5}, partition[1].Positions.Int32Values())

	_, err = parseGroups(mem, []string{"1,x"})
	assert.ErrorIs(t, err, ErrInvalidValue)

	withEmpty, err := parseGroups(mem, []string{"2", ""})
	if !assert.Nil(t, err) {
		return
	}
	defer withEmpty.Release()
	assert.Len(t, withEmpty, 2)
	assert.Equal(t, 0, withEmpty[1].Size)
}

func TestParseValues(t *testing.T) {
	mem := memory.NewGoAllocator()

	column, err := parseValues(mem, "v", elements.KindInteger, []string{"1", "NA", "3"})
	if !assert.Nil(t, err) {
		return
	}
	defer column.Release()
	assert.Equal(t, elements.KindInteger, column.Kind())
	assert.Equal(t, 3, column.Len())
	assert.True(t, column.Data.IsNull(1))

	_, err = parseValues(mem, "v", elements.KindLogical, []string{"maybe"})
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = parseValues(mem, "v", elements.KindUnsupported, nil)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestParseColumns(t *testing.T) {
	mem := memory.NewGoAllocator()

	record, err := parseColumns(mem, []string{"a=1,2", "b=NA,4"})
	if !assert.Nil(t, err) {
		return
	}
	defer record.Release()
	assert.Equal(t, int64(2), record.NumCols())
	assert.Equal(t, "b", record.ColumnName(1))
	assert.True(t, record.Column(1).IsNull(0))
	assert.Equal(t, 4.0, record.Column(1).(*array.Float64).Value(1))

	_, err = parseColumns(mem, []string{"a=1,2", "b=3"})
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.ErrorContains(t, err, "column 'b' has 1 values, expected 2")

	_, err = parseColumns(mem, []string{"1,2"})
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestAssignGroupsCommand(t *testing.T) {
	out, err := runCommand("assign-groups", "--rows", "5", "--group", "1,3", "--group", "2,4,5")
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, "group: [1 2 1 2 2]\n", out)

	_, err = runCommand("assign-groups", "--rows", "3", "--group", "1,2", "--group", "2", "--strict")
	assert.ErrorIs(t, err, elements.ErrOverlappingGroups)
}

func TestScatterCommand(t *testing.T) {
	out, err := runCommand("scatter", "--size", "4", "--mask", "true,false,true,false", "--fill", "0", "--column", "a=10,20")
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, "a: [10 0 20 0]\n", out)

	out, err = runCommand("scatter", "--format", "json", "--size", "5", "--positions", "2,4,5", "--fill", "-1", "--column", "a=10,20,30")
	if !assert.Nil(t, err) {
		return
	}
	var result []jsonColumn
	if !assert.Nil(t, json.Unmarshal([]byte(out), &result)) {
		return
	}
	assert.Len(t, result, 1)
	assert.Equal(t, "a", result[0].Name)
	assert.Equal(t, "float64", result[0].Type)
	var values []float64
	assert.Nil(t, json.Unmarshal(result[0].Values, &values))
	assert.Equal(t, []float64{-1, 10, -1, 20, 30}, values)

	_, err = runCommand("scatter", "--size", "5", "--positions", "2,4,5", "--column", "a=10,20")
	assert.ErrorIs(t, err, arrowops.ErrLengthMismatch)

	_, err = runCommand("scatter", "--size", "3", "--column", "a=1,2", "--column", "b=3")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestScatterCommandMaskPositions(t *testing.T) {
	out, err := runCommand("scatter", "--size", "4", "--mask-positions", "3,1", "--fill", "0", "--column", "a=10,20")
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, "a: [10 0 20 0]\n", out)

	_, err = runCommand("scatter", "--size", "-1", "--mask-positions", "1", "--column", "a=10")
	assert.ErrorIs(t, err, elements.ErrInvalidSize)

	_, err = runCommand("scatter", "--size", "2", "--mask-positions", "3", "--column", "a=10")
	assert.ErrorIs(t, err, elements.ErrIndexOutOfBounds)

	_, err = runCommand("scatter", "--size", "2", "--mask-positions", "0", "--column", "a=10")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = runCommand("scatter", "--size", "2", "--mask-positions", "1", "--positions", "1", "--column", "a=10")
	assert.Error(t, err)
}

func TestRemoveMissingCommand(t *testing.T) {
	out, err := runCommand("remove-missing", "--kind", "integer", "1", "NA", "3", "NA", "5")
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, "x: [1 3 5]\n", out)

	out, err = runCommand("remove-missing", "--kind", "string", "--name", "s", "a", "b")
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, "s: [\"a\" \"b\"]\n", out)

	out, err = runCommand("remove-missing", "--kind", "integer", "1", "NA", "-3")
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, "x: [1 -3]\n", out)

	out, err = runCommand("remove-missing", "--kind", "real", "--", "-0.5", "NA")
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, "x: [-0.5]\n", out)
}
