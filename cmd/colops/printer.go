package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/apache/arrow/go/v17/arrow"
)

type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) *printer {
	return &printer{w: w, format: format}
}

type jsonColumn struct {
	Name   string          `json:"name"`
	Type   string          `json:"type"`
	Values json.RawMessage `json:"values"`
}

func (obj *printer) printArray(name string, arr arrow.Array) error {
	if obj.format == "json" {
		return obj.printJSON([]string{name}, []arrow.Array{arr})
	}
	_, err := fmt.Fprintf(obj.w, "%s: %v\n", name, arr)
	return err
}

func (obj *printer) printRecord(record arrow.Record) error {
	names := make([]string, record.NumCols())
	columns := make([]arrow.Array, record.NumCols())
	for i := range columns {
		names[i] = record.ColumnName(i)
		columns[i] = record.Column(i)
	}

	if obj.format == "json" {
		return obj.printJSON(names, columns)
	}
	for i := range columns {
		if _, err := fmt.Fprintf(obj.w, "%s: %v\n", names[i], columns[i]); err != nil {
			return err
		}
	}
	return nil
}

func (obj *printer) printJSON(names []string, columns []arrow.Array) error {
	result := make([]jsonColumn, len(columns))
	for i, arr := range columns {
		values, err := json.Marshal(arr)
		if err != nil {
			return err
		}
		result[i] = jsonColumn{Name: names[i], Type: arr.DataType().Name(), Values: values}
	}
	enc := json.NewEncoder(obj.w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
