package elements

import (
	"slices"

	"github.com/apache/arrow/go/v17/arrow"
)

// Metadata keys that describe the length or shape of a column. They are
// invalid once the number of rows changes.
var LengthDependentMetadataKeys = []string{"names", "dim", "dimnames"}

func ShallowCopyMetadata(md arrow.Metadata) arrow.Metadata {
	return arrow.NewMetadata(md.Keys(), md.Values())
}

/*
* Copies every metadata entry that stays meaningful when the length of
* the column changes. Shape keys such as "dim" are dropped while labels
* such as "levels" or "class" are kept.
 */
func CopyMostMetadata(md arrow.Metadata) arrow.Metadata {
	keys := make([]string, 0, md.Len())
	values := make([]string, 0, md.Len())
	for idx, key := range md.Keys() {
		if slices.Contains(LengthDependentMetadataKeys, key) {
			continue
		}
		keys = append(keys, key)
		values = append(values, md.Values()[idx])
	}
	return arrow.NewMetadata(keys, values)
}

func CopySchemaMetadata(schema *arrow.Schema) *arrow.Metadata {
	md := ShallowCopyMetadata(schema.Metadata())
	return &md
}
