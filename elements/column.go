package elements

import (
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"
)

// Column pairs an arrow array with the field describing it. The field
// carries the column name and its per-column metadata.
type Column struct {
	Field arrow.Field
	Data  arrow.Array
}

func NewColumn(field arrow.Field, data arrow.Array) Column {
	return Column{
		Field: field,
		Data:  data,
	}
}

func NewColumnFromRecord(record arrow.Record, idx int) Column {
	return Column{
		Field: record.Schema().Field(idx),
		Data:  record.Column(idx),
	}
}

func (obj Column) Name() string {
	return obj.Field.Name
}

func (obj Column) Kind() Kind {
	return KindOf(obj.Data.DataType())
}

func (obj Column) Len() int {
	return obj.Data.Len()
}

func (obj Column) Release() {
	if obj.Data != nil {
		obj.Data.Release()
	}
}

func (obj Column) IsValid() error {
	if obj.Data == nil {
		return fmt.Errorf("%w| column '%s' has no data", ErrColumnInvalid, obj.Field.Name)
	}
	if obj.Field.Type != nil && !arrow.TypeEqual(obj.Field.Type, obj.Data.DataType()) {
		return fmt.Errorf(
			"%w| column '%s' field type %s does not match data type %s",
			ErrColumnInvalid, obj.Field.Name, obj.Field.Type, obj.Data.DataType(),
		)
	}
	return nil
}
